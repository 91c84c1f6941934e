package types

import (
	"fmt"
	"sync"

	"github.com/electron-shaders/sc2002-proj/pkg/observer"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment represents one scheduled interaction between a patient and a
// doctor. It publishes a notification on every status mutation and on outcome
// attachment, so a patient dashboard subscribed at scheduling time learns of
// doctor decisions asynchronously.
//
// The store holds the canonical instance: re-fetching the same appointment
// yields the same pointer, so the subscription set survives repeated lookups.
type Appointment struct {
	observer.Publisher
	mu              sync.Mutex
	appointmentID   string
	patient         *Patient
	doctor          *Doctor
	date            Date
	status          AppointmentStatus
	outcomeRecordID string
	isRated         bool
}

// NewAppointment creates a PENDING appointment between the patient and doctor
// on the given day. The ID is stamped by the appointment store on insertion.
func NewAppointment(patient *Patient, doctor *Doctor, date Date) *Appointment {
	return &Appointment{
		patient: patient,
		doctor:  doctor,
		date:    date,
		status:  StatusPending,
	}
}

// RecordID implements store.Record.
func (a *Appointment) RecordID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.appointmentID
}

// SetRecordID implements store.Record.
func (a *Appointment) SetRecordID(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.appointmentID = id
}

// Patient returns the patient the appointment belongs to.
func (a *Appointment) Patient() *Patient {
	return a.patient
}

// Doctor returns the doctor the appointment is booked with.
func (a *Appointment) Doctor() *Doctor {
	return a.doctor
}

// Date returns the appointment day.
func (a *Appointment) Date() Date {
	return a.date
}

// Status returns the current lifecycle state.
func (a *Appointment) Status() AppointmentStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// SetStatus moves the appointment to the new state and notifies subscribers.
// The notification is published after the lock is released so a subscriber may
// re-enter the appointment.
func (a *Appointment) SetStatus(status AppointmentStatus) {
	a.mu.Lock()
	a.status = status
	id := a.appointmentID
	a.mu.Unlock()
	a.Publish(observer.NewMessage(fmt.Sprintf("Appointment %s is now %s", id, status)))
}

// OutcomeRecordID returns the ID of the attached outcome record, or the empty
// string if the appointment has not been completed.
func (a *Appointment) OutcomeRecordID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.outcomeRecordID
}

// AttachOutcomeRecord links the outcome record to the appointment and
// notifies subscribers. Set exactly once, at completion; never cleared.
func (a *Appointment) AttachOutcomeRecord(outcomeRecordID string) {
	a.mu.Lock()
	a.outcomeRecordID = outcomeRecordID
	id := a.appointmentID
	a.mu.Unlock()
	a.Publish(observer.NewMessage(fmt.Sprintf("Outcome record %s has been attached to appointment %s", outcomeRecordID, id)))
}

// IsRated reports whether the patient has already rated this appointment.
func (a *Appointment) IsRated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isRated
}

// MarkRated records that the appointment has been rated. One-way.
func (a *Appointment) MarkRated() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.isRated = true
}
