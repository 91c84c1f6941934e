package types

import "sync"

// PrescriptionStatus is the dispense state of one prescription line item.
type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "PENDING"
	PrescriptionDispensed PrescriptionStatus = "DISPENSED"
)

// Prescription is one medicine line item of an outcome record. Its dispense
// status moves one way, PENDING to DISPENSED.
type Prescription struct {
	mu       sync.Mutex
	medicine *Medicine
	status   PrescriptionStatus
}

// NewPrescription creates a PENDING prescription for the medicine.
func NewPrescription(medicine *Medicine) *Prescription {
	return &Prescription{medicine: medicine, status: PrescriptionPending}
}

// Medicine returns the prescribed medicine.
func (p *Prescription) Medicine() *Medicine {
	return p.medicine
}

// Status returns the dispense state.
func (p *Prescription) Status() PrescriptionStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// SetStatus replaces the dispense state.
func (p *Prescription) SetStatus(status PrescriptionStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
}

// AppointmentOutcomeRecord is the clinical result of a completed appointment:
// the appointment day, the service performed, the prescriptions in the
// doctor's entry order, and consultation notes. Created exactly once when a
// CONFIRMED appointment is completed; its identity is immutable, but the
// prescription statuses inside it are mutated by pharmacist action.
type AppointmentOutcomeRecord struct {
	mu            sync.Mutex
	recordID      string
	date          Date
	serviceType   string
	prescriptions []*Prescription
	notes         string
}

// NewAppointmentOutcomeRecord creates an outcome record. The date is copied
// from the appointment at completion time.
func NewAppointmentOutcomeRecord(date Date, serviceType string, prescriptions []*Prescription, notes string) *AppointmentOutcomeRecord {
	return &AppointmentOutcomeRecord{
		date:          date,
		serviceType:   serviceType,
		prescriptions: prescriptions,
		notes:         notes,
	}
}

// RecordID implements store.Record.
func (r *AppointmentOutcomeRecord) RecordID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recordID
}

// SetRecordID implements store.Record.
func (r *AppointmentOutcomeRecord) SetRecordID(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recordID = id
}

// Date returns the day of the appointment the record belongs to.
func (r *AppointmentOutcomeRecord) Date() Date {
	return r.date
}

// ServiceType returns the service performed.
func (r *AppointmentOutcomeRecord) ServiceType() string {
	return r.serviceType
}

// Prescriptions returns the prescription line items in entry order.
func (r *AppointmentOutcomeRecord) Prescriptions() []*Prescription {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Prescription(nil), r.prescriptions...)
}

// Prescription returns the line item at idx, or false if out of bounds.
func (r *AppointmentOutcomeRecord) Prescription(idx int) (*Prescription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx < 0 || idx >= len(r.prescriptions) {
		return nil, false
	}
	return r.prescriptions[idx], true
}

// Notes returns the consultation notes.
func (r *AppointmentOutcomeRecord) Notes() string {
	return r.notes
}
