package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/observer"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New("error")
}

type recordingSubscriber struct {
	received []observer.Notification
}

func (r *recordingSubscriber) Update(n observer.Notification) {
	r.received = append(r.received, n)
}

func newDoctor(name string) *types.Doctor {
	return types.NewDoctor("", "password", name, true, 40, name+"@hospital.test", "Cardiology", 0, 0)
}

func newPatient(name string) *types.Patient {
	return types.NewPatient("", "password", name, false, name+"@example.test", types.Date("1990-01-01"), "A+")
}

func TestStore_AddAssignsFormattedIDs(t *testing.T) {
	doctors := NewDoctorStore(testLogger())

	first := newDoctor("first")
	second := newDoctor("second")

	assert.Equal(t, "D001", doctors.Add(first))
	assert.Equal(t, "D002", doctors.Add(second))
	assert.Equal(t, "D001", first.RecordID())
	assert.Equal(t, "D002", second.RecordID())
}

func TestStore_IDFormatsPerCollection(t *testing.T) {
	log := testLogger()

	patients := NewPatientStore(log)
	assert.Equal(t, "P0001", patients.Add(newPatient("alice")))

	medicines := NewMedicineStore(log)
	assert.Equal(t, "M0001", medicines.Add(types.NewMedicine("", "Paracetamol", 10, 5, false, 2.5)))

	appointments := NewAppointmentStore(log)
	doctor := newDoctor("doc")
	doctor.SetRecordID("D001")
	patient := newPatient("bob")
	patient.SetRecordID("P0001")
	assert.Equal(t, "AP000001", appointments.Add(types.NewAppointment(patient, doctor, types.Date("2024-06-01"))))

	outcomes := NewOutcomeRecordStore(log)
	record := types.NewAppointmentOutcomeRecord(types.Date("2024-06-01"), "Consultation", nil, "")
	assert.Equal(t, "R000001", outcomes.Add(record))
}

func TestStaffStore_PrefixFollowsRole(t *testing.T) {
	staff := NewStaffStore(testLogger())

	pharmacist := types.NewUser("", "password", types.RolePharmacist, "Pharm", false, 30, "pharm@hospital.test")
	admin := types.NewUser("", "password", types.RoleAdministrator, "Admin", true, 40, "admin@hospital.test")

	assert.Equal(t, "P001", staff.Add(pharmacist))
	assert.Equal(t, "A002", staff.Add(admin))
}

func TestStore_IDsNeverReusedAfterRemove(t *testing.T) {
	doctors := NewDoctorStore(testLogger())

	doctors.Add(newDoctor("first"))
	doctors.Add(newDoctor("second"))
	doctors.Remove("D002")

	assert.Equal(t, "D003", doctors.Add(newDoctor("third")))
}

func TestStore_GetReturnsCanonicalInstance(t *testing.T) {
	doctors := NewDoctorStore(testLogger())
	doctor := newDoctor("first")
	id := doctors.Add(doctor)

	got, ok := doctors.Get(id)
	require.True(t, ok)
	assert.Same(t, doctor, got)

	_, ok = doctors.Get("D999")
	assert.False(t, ok)
}

func TestStore_RemoveUnknownIsNoOp(t *testing.T) {
	doctors := NewDoctorStore(testLogger())
	doctors.Remove("D001")
	assert.Equal(t, 0, doctors.Len())
}

func TestStore_UpdateAppliesInPlace(t *testing.T) {
	medicines := NewMedicineStore(testLogger())
	id := medicines.Add(types.NewMedicine("", "Paracetamol", 10, 5, false, 2.5))

	ok := medicines.Update(id, func(m *types.Medicine) {
		m.SetStock(42)
	})
	require.True(t, ok)

	medicine, _ := medicines.Get(id)
	assert.Equal(t, 42, medicine.Stock())

	assert.False(t, medicines.Update("M999", func(*types.Medicine) {}))
}

func TestStore_PutAdvancesCounter(t *testing.T) {
	patients := NewPatientStore(testLogger())

	loaded := newPatient("seeded")
	patients.Put("P0007", loaded)
	assert.Equal(t, "P0007", loaded.RecordID())

	assert.Equal(t, "P0008", patients.Add(newPatient("fresh")))
}

func TestAppointmentStore_PublishesAddAndRemoveEvents(t *testing.T) {
	appointments := NewAppointmentStore(testLogger())
	sub := &recordingSubscriber{}
	appointments.Subscribe(sub)

	doctor := newDoctor("doc")
	doctor.SetRecordID("D001")
	patient := newPatient("pat")
	patient.SetRecordID("P0001")

	id := appointments.Add(types.NewAppointment(patient, doctor, types.Date("2024-06-01")))
	appointments.Remove(id)

	require.Len(t, sub.received, 2)
	assert.Equal(t, fmt.Sprintf("Appointment (%s) is added under Doctor (D001)", id), sub.received[0].String())
	assert.Equal(t, fmt.Sprintf("Patient (P0001) removed Appointment (%s)", id), sub.received[1].String())
}

func TestOutcomeRecordStore_PublishesAddMessage(t *testing.T) {
	outcomes := NewOutcomeRecordStore(testLogger())
	sub := &recordingSubscriber{}
	outcomes.Subscribe(sub)

	outcomes.Add(types.NewAppointmentOutcomeRecord(types.Date("2024-06-01"), "Consultation", nil, ""))

	require.Len(t, sub.received, 1)
	assert.Equal(t, "Appointment outcome record R000001 has been added", sub.received[0].Message)
}
