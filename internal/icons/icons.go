package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play     string
	Pause    string
	Volume   string
	Muted    string
	Favorite string
	Recent   string
	Playlist string
	Search   string
	Voice    string
}

var (
	nerdIcons = Icons{
		Play:     "", // nf-fa-play
		Pause:    "", // nf-fa-pause
		Volume:   "", // nf-fa-volume_up
		Muted:    "", // nf-fa-volume_off
		Favorite: "󰣐",      // nf-md-heart
		Recent:   "", // nf-fa-history
		Playlist: "󰲸",      // nf-md-playlist_music
		Search:   "", // nf-fa-search
		Voice:    "", // nf-fa-microphone
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Volume:   "🔊",
		Muted:    "🔇",
		Favorite: "♥",
		Recent:   "🕘",
		Playlist: "📋",
		Search:   "🔍",
		Voice:    "🎤",
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Volume:   "vol",
		Muted:    "mute",
		Favorite: "*",
		Recent:   "",
		Playlist: "",
		Search:   "/",
		Voice:    "mic",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the icon of the play affordance.
func Play() string { return current.Play }

// Pause returns the icon of the pause affordance.
func Pause() string { return current.Pause }

// Volume returns the speaker icon, or the muted one at level 0.
func Volume(level float64) string {
	if level <= 0 {
		return current.Muted
	}
	return current.Volume
}

// Favorite returns the favorite/heart icon.
func Favorite() string {
	return current.Favorite
}

func Search() string { return current.Search }

func Voice() string { return current.Voice }

// FormatPanel prefixes a panel title with its icon.
// Panels without an icon in the current style keep the bare title.
func FormatPanel(icon, title string) string {
	if icon == "" {
		return title
	}
	return icon + " " + title
}

// PlaylistTitle returns the playlist panel title.
func PlaylistTitle() string { return FormatPanel(current.Playlist, "Playlist") }

// FavoritesTitle returns the favorites panel title.
func FavoritesTitle() string { return FormatPanel(current.Favorite, "Favorites") }

// RecentTitle returns the recently played panel title.
func RecentTitle() string { return FormatPanel(current.Recent, "Recently played") }
