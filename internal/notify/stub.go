//go:build !linux

package notify

// New returns a notifier that drops everything; desktop notifications
// are only wired on Linux.
func New() (Notifier, error) {
	return noop{}, nil
}
