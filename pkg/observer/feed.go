package observer

import "sync"

// Feed is a subscriber that keeps the most recent notifications in a bounded
// ring, newest first. Role dashboards read it to show a live event feed.
type Feed struct {
	mu    sync.Mutex
	limit int
	items []Notification
}

// NewFeed creates a feed retaining up to limit notifications.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 100
	}
	return &Feed{limit: limit}
}

// Update implements Subscriber.
func (f *Feed) Update(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	if len(f.items) > f.limit {
		f.items = f.items[len(f.items)-f.limit:]
	}
}

// Recent returns the retained notifications, newest first.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.items))
	for i, n := range f.items {
		out[len(f.items)-1-i] = n
	}
	return out
}
