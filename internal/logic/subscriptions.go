package logic

import "sync"

// SubscriptionList maps subscriber account ids to the ordered list of target
// account ids they watch. Purely additive: duplicates are allowed and there
// is no removal. All operations take the lock, so get-or-create-then-append
// never races with a concurrent append for the same subscriber.
type SubscriptionList struct {
	mu   sync.Mutex
	subs map[string][]string
}

func NewSubscriptionList() *SubscriptionList {
	return &SubscriptionList{subs: make(map[string][]string)}
}

// Add appends targetID to the subscriber's watch list and returns a copy of
// the full updated map.
func (s *SubscriptionList) Add(subscriberID, targetID string) map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[subscriberID] = append(s.subs[subscriberID], targetID)
	return s.copyLocked()
}

// Snapshot returns a copy of the current subscription map.
func (s *SubscriptionList) Snapshot() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyLocked()
}

// Targets returns a copy of one subscriber's watch list.
func (s *SubscriptionList) Targets(subscriberID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	targets := s.subs[subscriberID]
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}

func (s *SubscriptionList) copyLocked() map[string][]string {
	out := make(map[string][]string, len(s.subs))
	for id, targets := range s.subs {
		list := make([]string, len(targets))
		copy(list, targets)
		out[id] = list
	}
	return out
}
