// Package notify is the toast channel: short, transient, user-facing messages
// that are separate from logs.
package notify

import "sync"

// Variant selects the visual treatment of a notification.
type Variant string

const (
	// Default is an informational toast.
	Default Variant = ""
	// Destructive marks a failure toast.
	Destructive Variant = "destructive"
)

// Notification is a single toast payload.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Sink receives notifications. Implementations must not block the caller;
// delivery is fire-and-forget and the return value of the underlying medium
// is never consumed.
type Sink interface {
	Notify(n Notification)
}

// Multi fans a notification out to several sinks in order.
type Multi []Sink

func (m Multi) Notify(n Notification) {
	for _, s := range m {
		s.Notify(n)
	}
}

// Memory records notifications for inspection in tests. Safe for use from
// multiple goroutines.
type Memory struct {
	mu            sync.Mutex
	notifications []Notification
}

func (m *Memory) Notify(n Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, n)
}

// All returns a copy of every notification received so far.
func (m *Memory) All() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.notifications...)
}
