package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/electron-shaders/sc2002-proj/pkg/observer"
)

type recordingSubscriber struct {
	received []observer.Notification
}

func (r *recordingSubscriber) Update(n observer.Notification) {
	r.received = append(r.received, n)
}

func newTestAppointment() *Appointment {
	patient := NewPatient("P0001", "password", "John Doe", true, "john@example.test", Date("1990-05-14"), "O+")
	doctor := newTestDoctor()
	a := NewAppointment(patient, doctor, Date("2024-06-01"))
	a.SetRecordID("AP000001")
	return a
}

func TestAppointment_StartsPending(t *testing.T) {
	a := newTestAppointment()
	assert.Equal(t, StatusPending, a.Status())
	assert.Empty(t, a.OutcomeRecordID())
	assert.False(t, a.IsRated())
}

func TestAppointment_SetStatusNotifiesSubscribers(t *testing.T) {
	a := newTestAppointment()
	sub := &recordingSubscriber{}
	a.Subscribe(sub)

	a.SetStatus(StatusConfirmed)

	assert.Equal(t, StatusConfirmed, a.Status())
	assert.Len(t, sub.received, 1)
	assert.Equal(t, "Appointment AP000001 is now CONFIRMED", sub.received[0].Message)
}

func TestAppointment_AttachOutcomeRecordNotifiesSubscribers(t *testing.T) {
	a := newTestAppointment()
	sub := &recordingSubscriber{}
	a.Subscribe(sub)

	a.AttachOutcomeRecord("R000001")

	assert.Equal(t, "R000001", a.OutcomeRecordID())
	assert.Len(t, sub.received, 1)
	assert.Equal(t, "Outcome record R000001 has been attached to appointment AP000001", sub.received[0].Message)
}

func TestOutcomeRecord_PrescriptionBounds(t *testing.T) {
	medicine := NewMedicine("M0001", "Paracetamol", 10, 5, false, 2.5)
	record := NewAppointmentOutcomeRecord(Date("2024-06-01"), "Consultation", []*Prescription{NewPrescription(medicine)}, "rest")

	p, ok := record.Prescription(0)
	assert.True(t, ok)
	assert.Equal(t, PrescriptionPending, p.Status())

	_, ok = record.Prescription(1)
	assert.False(t, ok)
	_, ok = record.Prescription(-1)
	assert.False(t, ok)
}

func TestStaffUpdates_NilFieldsKeepValues(t *testing.T) {
	doctor := newTestDoctor()

	name := "Lisa Cuddy"
	updates := &StaffUpdates{Name: &name}
	updates.ApplyToDoctor(doctor)

	assert.Equal(t, "Lisa Cuddy", doctor.Name())
	assert.Equal(t, "Diagnostics", doctor.Specialty())
	assert.Equal(t, 50, doctor.Age())
	assert.True(t, doctor.IsMale())
}

func TestMedicineUpdates_SetFieldsOverwrite(t *testing.T) {
	medicine := NewMedicine("M0001", "Paracetamol", 10, 5, false, 2.5)

	stock := 50
	price := 3.0
	updates := &MedicineUpdates{Stock: &stock, Price: &price}
	updates.Apply(medicine)

	assert.Equal(t, 50, medicine.Stock())
	assert.Equal(t, 5, medicine.LowStockThreshold())
	assert.InDelta(t, 3.0, medicine.Price(), 1e-9)
}
