package notify

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/jpeg" // JPEG covers
	"image/png"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nfnt/resize"

	"github.com/llehouerou/tunes/internal/catalog"
)

// ThumbnailSize is the bounding box, in pixels, of notification icons.
const ThumbnailSize = 128

var errNoCover = errors.New("no cover art")

// Thumbnailer scales track covers down to small PNG files that
// notification servers can load by path.
type Thumbnailer struct {
	dir string
}

// NewThumbnailer stores thumbnails under $XDG_CACHE_HOME/tunes/covers.
func NewThumbnailer() (*Thumbnailer, error) {
	marker, err := xdg.CacheFile("tunes/covers/.keep")
	if err != nil {
		return nil, err
	}
	return &Thumbnailer{dir: filepath.Dir(marker)}, nil
}

// NewThumbnailerAt stores thumbnails in dir.
func NewThumbnailerAt(dir string) *Thumbnailer {
	return &Thumbnailer{dir: dir}
}

// Thumbnail returns the path of a cached thumbnail for t, creating it from
// the track's image or, failing that, the cover embedded in its audio file.
// Remote images are not fetched.
func (th *Thumbnailer) Thumbnail(t catalog.Track) (string, error) {
	key := t.Image
	if key == "" {
		key = t.Path
	}
	out := filepath.Join(th.dir, cacheName(key))
	if _, err := os.Stat(out); err == nil {
		return out, nil
	}

	data, err := coverBytes(t)
	if err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode cover: %w", err)
	}
	thumb := resize.Thumbnail(ThumbnailSize, ThumbnailSize, img, resize.Lanczos3)

	if err := os.MkdirAll(th.dir, 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, thumb); err != nil {
		f.Close()
		os.Remove(out)
		return "", err
	}
	return out, f.Close()
}

func coverBytes(t catalog.Track) ([]byte, error) {
	if t.Image != "" && !catalog.IsRemote(t.Image) {
		return os.ReadFile(t.Image)
	}
	if t.Path == "" || catalog.IsRemote(t.Path) {
		return nil, errNoCover
	}
	data, _, err := catalog.EmbeddedCover(t.Path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errNoCover
	}
	return data, nil
}

func cacheName(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("%x.png", h.Sum64())
}
