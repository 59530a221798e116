// Package notify shows desktop notifications over the freedesktop
// Notifications D-Bus interface, used for "now playing" popups.
package notify

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// AppName identifies tunes to the notification server.
const AppName = "Tunes"

// Notification is one popup.
type Notification struct {
	Title      string
	Body       string
	Icon       string // image file path or themed icon name
	Timeout    int32  // ms; -1 lets the server decide, 0 never expires
	ReplacesID uint32 // id of a popup to update in place, 0 for a new one
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its id. A disabled notifier returns 0, nil.
	Notify(n Notification) (uint32, error)
	// Close withdraws the popup with the given id.
	Close(id uint32) error
}

// noop is the notifier used when no notification server is reachable.
type noop struct{}

func (noop) Notify(Notification) (uint32, error) { return 0, nil }

func (noop) Close(uint32) error { return nil }
