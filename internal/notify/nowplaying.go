package notify

import (
	"sync"

	"github.com/llehouerou/tunes/internal/catalog"
)

// nowPlayingTimeout keeps track-change popups short.
const nowPlayingTimeout = 4000

// NowPlaying shows one "now playing" notification that each track change
// replaces in place.
type NowPlaying struct {
	notifier Notifier
	thumbs   *Thumbnailer

	mu     sync.Mutex
	lastID uint32
}

// NewNowPlaying creates a track-change notifier. thumbs may be nil.
func NewNowPlaying(n Notifier, thumbs *Thumbnailer) *NowPlaying {
	return &NowPlaying{notifier: n, thumbs: thumbs}
}

// Show announces t. It may block on cover scaling and D-Bus.
func (p *NowPlaying) Show(t catalog.Track) error {
	icon := ""
	if p.thumbs != nil {
		// A track without usable cover art still gets a notification.
		if path, err := p.thumbs.Thumbnail(t); err == nil {
			icon = path
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.notifier.Notify(Notification{
		Title:      t.Title,
		Body:       t.Artist,
		Icon:       icon,
		Timeout:    nowPlayingTimeout,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}
