//go:build linux

package notify

import (
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	busMethod = busName + ".Notify"
	busClose  = busName + ".CloseNotification"
)

type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without a session bus it returns a
// notifier that silently drops notifications.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noop{}, nil //nolint:nilerr // notifications are optional
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

func (b *busNotifier) Notify(n Notification) (uint32, error) {
	call := b.obj.Call(busMethod, 0, notifyArgs(n)...)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (b *busNotifier) Close(id uint32) error {
	return b.obj.Call(busClose, 0, id).Err
}

// notifyArgs builds the Notify call arguments:
// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout.
func notifyArgs(n Notification) []any {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(strings.ToLower(AppName)),
		"category":      dbus.MakeVariant("x-gnome.music"),
	}
	// Servers that ignore app_icon for file paths still honor image-path.
	if strings.HasPrefix(n.Icon, "/") {
		hints["image-path"] = dbus.MakeVariant("file://" + n.Icon)
	}

	return []any{
		AppName,
		n.ReplacesID,
		n.Icon,
		n.Title,
		n.Body,
		[]string{},
		hints,
		n.Timeout,
	}
}
