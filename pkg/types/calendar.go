package types

import "sync"

// AvailabilityCalendar tracks a doctor's open days for booking. A date reads
// available only if it was explicitly added and not since removed. Absent
// dates and explicitly closed dates both read unavailable, but the two states
// are kept distinct in the backing map.
type AvailabilityCalendar struct {
	mu   sync.RWMutex
	days map[Date]bool
}

// NewAvailabilityCalendar creates an empty calendar.
func NewAvailabilityCalendar() *AvailabilityCalendar {
	return &AvailabilityCalendar{days: make(map[Date]bool)}
}

// Add marks the date open for booking. Idempotent.
func (c *AvailabilityCalendar) Add(date Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.days[date] = true
}

// Remove marks the date closed. A removed date is recorded as closed rather
// than deleted, distinguishing it from a date never offered.
func (c *AvailabilityCalendar) Remove(date Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.days[date] = false
}

// IsAvailable reports whether the date is open for booking.
func (c *AvailabilityCalendar) IsAvailable(date Date) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.days[date]
}

// OpenDates returns every date currently open for booking, in arbitrary order.
func (c *AvailabilityCalendar) OpenDates() []Date {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dates := make([]Date, 0, len(c.days))
	for d, open := range c.days {
		if open {
			dates = append(dates, d)
		}
	}
	return dates
}
