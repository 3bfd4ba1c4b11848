package notify

import (
	"context"
	"sync"
)

// Delivery is one recorded call to RecordingNotifier.Notify.
type Delivery struct {
	Address string
	Event   NotificationEvent
}

// RecordingNotifier is an in-memory Notifier used by worker tests to
// assert exactly one notification fired, with the expected kind and
// address, without standing up a real transport.
type RecordingNotifier struct {
	mu         sync.Mutex
	Deliveries []Delivery
}

func (n *RecordingNotifier) Notify(_ context.Context, address string, event NotificationEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Deliveries = append(n.Deliveries, Delivery{Address: address, Event: event})
	return nil
}

// Count returns the number of notifications recorded so far.
func (n *RecordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Deliveries)
}
