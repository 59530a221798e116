package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSource is the catalog location used when none is configured.
const DefaultSource = "songs.json"

// ErrEmptySource is returned when Load is called without a source.
var ErrEmptySource = errors.New("no catalog source")

// Load fetches the catalog from source exactly once.
// Source may be an http(s) URL serving a JSON array, a JSON file, or a
// directory of audio files. Relative locators inside a JSON catalog are
// resolved against the catalog's own location.
func Load(ctx context.Context, source string) (Catalog, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	if IsRemote(source) {
		return loadURL(ctx, source)
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return ScanDir(ctx, source)
	}
	return loadFile(source)
}

// IsRemote reports whether a locator points to an http(s) resource.
func IsRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

func loadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tracks, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		base = filepath.Dir(path)
	}
	for i := range tracks {
		tracks[i].Path = resolveFile(base, tracks[i].Path)
		tracks[i].Image = resolveFile(base, tracks[i].Image)
	}
	return tracks, nil
}

func loadURL(ctx context.Context, rawURL string) (Catalog, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", rawURL, resp.Status)
	}

	tracks, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	for i := range tracks {
		tracks[i].Path = resolveURL(base, tracks[i].Path)
		tracks[i].Image = resolveURL(base, tracks[i].Image)
	}
	return tracks, nil
}

// Decode reads a JSON array of track descriptors.
func Decode(r io.Reader) (Catalog, error) {
	var tracks Catalog
	if err := json.NewDecoder(r).Decode(&tracks); err != nil {
		return nil, err
	}
	if tracks == nil {
		tracks = Catalog{}
	}
	return tracks, nil
}

func resolveFile(base, locator string) string {
	if locator == "" || IsRemote(locator) || filepath.IsAbs(locator) {
		return locator
	}
	return filepath.Join(base, locator)
}

func resolveURL(base *url.URL, locator string) string {
	if locator == "" {
		return ""
	}
	ref, err := url.Parse(locator)
	if err != nil {
		return locator
	}
	return base.ResolveReference(ref).String()
}
