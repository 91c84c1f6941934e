package types

import "sync"

// Doctor is a user with a specialty, a running-average rating, and an
// availability calendar gating which days patients can book.
type Doctor struct {
	*User
	mu          sync.Mutex
	specialty   string
	rating      float64
	ratingCount int
	calendar    *AvailabilityCalendar
}

// NewDoctor creates a doctor with the given details and an empty calendar.
func NewDoctor(userID, password, name string, isMale bool, age int, email, specialty string, rating float64, ratingCount int) *Doctor {
	return &Doctor{
		User:        NewUser(userID, password, RoleDoctor, name, isMale, age, email),
		specialty:   specialty,
		rating:      rating,
		ratingCount: ratingCount,
		calendar:    NewAvailabilityCalendar(),
	}
}

// Specialty returns the doctor's specialty.
func (d *Doctor) Specialty() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.specialty
}

// SetSpecialty updates the doctor's specialty.
func (d *Doctor) SetSpecialty(specialty string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.specialty = specialty
}

// Rating returns the doctor's running-average rating.
func (d *Doctor) Rating() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rating
}

// RatingCount returns the number of ratings received.
func (d *Doctor) RatingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ratingCount
}

// ApplyRating folds a new score into the running average:
// newRating = (oldRating*ratingCount + score) / (ratingCount + 1).
func (d *Doctor) ApplyRating(score int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rating = (d.rating*float64(d.ratingCount) + float64(score)) / float64(d.ratingCount+1)
	d.ratingCount++
}

// Calendar returns the doctor's availability calendar.
func (d *Doctor) Calendar() *AvailabilityCalendar {
	return d.calendar
}
