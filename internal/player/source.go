package player

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned for locators whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

var httpClient = &http.Client{Timeout: 30 * time.Second}

// memFile is an in-memory audio resource fetched from a URL.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func isRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// extension returns the lowercase file extension of a path or URL locator.
func extension(locator string) (string, error) {
	name := locator
	if isRemote(locator) {
		u, err := url.Parse(locator)
		if err != nil {
			return "", err
		}
		name = path.Base(u.Path)
	}
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case extMP3, extFLAC, extWAV, extOGG:
		return ext, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// open returns a seekable reader for a local path or an http(s) URL.
func open(locator string) (io.ReadCloser, error) {
	if !isRemote(locator) {
		return os.Open(locator)
	}

	resp, err := httpClient.Get(locator) //nolint:noctx // bounded by client timeout
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", locator, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", locator, err)
	}
	return memFile{bytes.NewReader(data)}, nil
}
