package notify

// Mock records notifications for tests.
type Mock struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

// NewMock creates a new mock notifier for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Notify(n Notification) (uint32, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.sent = append(m.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.nextID++
	return m.nextID, nil
}

func (m *Mock) Close(id uint32) error {
	m.closed = append(m.closed, id)
	return nil
}

// Test helpers

func (m *Mock) Sent() []Notification { return m.sent }

func (m *Mock) SetError(err error) { m.err = err }

// Verify Mock implements Notifier at compile time.
var _ Notifier = (*Mock)(nil)
