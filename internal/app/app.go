package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/tunes/internal/controller"
	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/mpris"
	"github.com/llehouerou/tunes/internal/notify"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/speech"
	"github.com/llehouerou/tunes/internal/state"
	"github.com/llehouerou/tunes/internal/ui/searchbar"
	"github.com/llehouerou/tunes/internal/ui/tracklist"
)

// Focus identifies the panel receiving list keys.
type Focus int

const (
	FocusPlaylist Focus = iota
	FocusFavorites
	FocusRecent
	FocusSearch
)

// Publisher receives the player state after every change.
// *mpris.Adapter implements it.
type Publisher interface {
	Publish(mpris.Snapshot)
}

// Deps are the collaborators the model drives.
type Deps struct {
	Player     player.Interface
	Store      state.Interface
	Recognizer speech.Recognizer  // nil disables voice search
	NowPlaying *notify.NowPlaying // nil disables notifications
	Media      Publisher          // nil disables media key integration
	Catalog    string             // catalog source: file, directory or URL
}

// Model is the root bubbletea model.
type Model struct {
	ctrl       *controller.Controller
	store      state.Interface
	recognizer speech.Recognizer
	nowPlaying *notify.NowPlaying
	media      Publisher
	source     string

	playlist  tracklist.Model
	favorites tracklist.Model
	recent    tracklist.Model
	search    searchbar.Model
	help      help.Model

	listKeys   *keymap.Resolver
	searchKeys *keymap.Resolver

	focus    Focus
	lastList Focus // list panel to return to when a search is cancelled
	showHelp bool
	width    int
	height   int

	status    string
	statusErr bool
}

// New builds the model. A failure to read the saved lists is shown in the
// status line; the lists start empty.
func New(d Deps) Model {
	ctrl, err := controller.New(d.Player, d.Store)

	m := Model{
		ctrl:       ctrl,
		store:      d.Store,
		recognizer: d.Recognizer,
		nowPlaying: d.NowPlaying,
		media:      d.Media,
		source:     d.Catalog,
		playlist:   tracklist.New(icons.PlaylistTitle(), "Loading catalog..."),
		favorites:  tracklist.New(icons.FavoritesTitle(), "No favorites yet"),
		recent:     tracklist.New(icons.RecentTitle(), "Nothing played yet"),
		search:     searchbar.New(),
		help:       help.New(),
		listKeys:   keymap.ForContexts("global", "playback", "list"),
		searchKeys: keymap.ForContexts("search"),
	}
	m.playlist.SetFocused(true)

	if err != nil {
		m.setError(err)
	}
	m.refreshLists()
	return m
}

// Init starts the catalog fetch, the progress tick and the stderr watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(LoadCatalogCmd(m.source), TickCmd(), WatchStderr())
}

// Controller exposes the controller, mainly for tests.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// setError logs err and shows it in the status line.
func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	log.Error().Err(err).Msg("operation failed")
	m.status = err.Error()
	m.statusErr = true
}

// setStatus shows an informational message.
func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}
