package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".wav":  true,
	".ogg":  true,
}

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// IsAudioFile reports whether path has a playable extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanDir builds a catalog from every audio file below dir, sorted by path.
// Titles and artists come from embedded tags, falling back to the file name.
func ScanDir(ctx context.Context, dir string) (Catalog, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Unreadable entries are skipped so one bad folder does not hide the rest.
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if !d.IsDir() && IsAudioFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	tracks := make(Catalog, 0, len(paths))
	for _, p := range paths {
		tracks = append(tracks, readTrack(p))
	}
	return tracks, nil
}

func readTrack(path string) Track {
	t := Track{
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:  path,
		Image: FindCover(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return t
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return t
	}
	if title := strings.TrimSpace(m.Title()); title != "" {
		t.Title = title
	}
	t.Artist = m.Artist()
	return t
}

// FindCover looks for album art in the same directory as the track.
// Returns the path to the art file, or empty string if not found.
func FindCover(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// EmbeddedCover reads cover art embedded in an audio file's tags.
// Returns nil data if the file carries no picture.
func EmbeddedCover(path string) (data []byte, mimeType string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, "", err
	}

	pic := m.Picture()
	if pic == nil {
		return nil, "", nil
	}
	return pic.Data, pic.MIMEType, nil
}
