package clinical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

type fixture struct {
	service      *Service
	appointments *store.AppointmentStore
	outcomes     *store.OutcomeRecordStore
	doctors      *store.DoctorStore
	patients     *store.PatientStore
}

func newFixture() *fixture {
	log := logger.New("error")
	f := &fixture{
		appointments: store.NewAppointmentStore(log),
		outcomes:     store.NewOutcomeRecordStore(log),
		doctors:      store.NewDoctorStore(log),
		patients:     store.NewPatientStore(log),
	}
	f.service = New(f.appointments, f.outcomes, f.doctors, f.patients, log)
	return f
}

func (f *fixture) addDoctor(name, specialty string, rating float64) *types.Doctor {
	doctor := types.NewDoctor("", "password", name, true, 45, "doc@hospital.test", specialty, rating, 1)
	f.doctors.Add(doctor)
	return doctor
}

func (f *fixture) addPatient(name string) *types.Patient {
	patient := types.NewPatient("", "password", name, false, "pat@example.test", types.Date("1990-01-01"), "B+")
	f.patients.Add(patient)
	return patient
}

func TestService_PatientsUnderCareIsDistinct(t *testing.T) {
	f := newFixture()
	doctor := f.addDoctor("Gregory House", "Diagnostics", 4)
	patient := f.addPatient("John Doe")
	other := f.addPatient("Jane Roe")

	f.appointments.Add(types.NewAppointment(patient, doctor, types.Date("2024-06-01")))
	f.appointments.Add(types.NewAppointment(patient, doctor, types.Date("2024-06-08")))
	f.appointments.Add(types.NewAppointment(other, doctor, types.Date("2024-06-15")))

	patients, err := f.service.PatientsUnderCare(doctor.RecordID())
	require.NoError(t, err)
	assert.ElementsMatch(t, []*types.Patient{patient, other}, patients)

	_, err = f.service.PatientsUnderCare("D999")
	assert.True(t, types.IsKind(err, types.ErrorKindNotFound))
}

func TestService_MedicalRecordAdditions(t *testing.T) {
	f := newFixture()
	patient := f.addPatient("John Doe")

	require.NoError(t, f.service.AddDiagnosis(patient.RecordID(), "Lupus"))
	require.NoError(t, f.service.AddPrescriptionNote(patient.RecordID(), "Prednisone 5mg"))
	require.NoError(t, f.service.AddTreatment(patient.RecordID(), "Physiotherapy"))

	assert.Equal(t, []string{"Lupus"}, patient.MedicalRecord().Diagnoses())
	assert.Equal(t, []string{"Prednisone 5mg"}, patient.MedicalRecord().Prescriptions())
	assert.Equal(t, []string{"Physiotherapy"}, patient.MedicalRecord().Treatments())

	err := f.service.AddDiagnosis("P9999", "Lupus")
	assert.True(t, types.IsKind(err, types.ErrorKindNotFound))
}

func TestService_OutcomeRecordForPatientChecksOwnership(t *testing.T) {
	f := newFixture()
	doctor := f.addDoctor("Gregory House", "Diagnostics", 4)
	patient := f.addPatient("John Doe")
	stranger := f.addPatient("Jane Roe")

	appointment := types.NewAppointment(patient, doctor, types.Date("2024-06-01"))
	f.appointments.Add(appointment)

	record := types.NewAppointmentOutcomeRecord(types.Date("2024-06-01"), "Consultation", nil, "")
	f.outcomes.Add(record)
	appointment.AttachOutcomeRecord(record.RecordID())

	got, err := f.service.OutcomeRecordForPatient(patient.RecordID(), appointment.RecordID())
	require.NoError(t, err)
	assert.Same(t, record, got)

	_, err = f.service.OutcomeRecordForPatient(stranger.RecordID(), appointment.RecordID())
	assert.True(t, types.IsKind(err, types.ErrorKindNotFound))
}

func TestService_OutcomeRecordForPatientWithoutOutcome(t *testing.T) {
	f := newFixture()
	doctor := f.addDoctor("Gregory House", "Diagnostics", 4)
	patient := f.addPatient("John Doe")

	appointment := types.NewAppointment(patient, doctor, types.Date("2024-06-01"))
	f.appointments.Add(appointment)

	_, err := f.service.OutcomeRecordForPatient(patient.RecordID(), appointment.RecordID())
	assert.True(t, types.IsKind(err, types.ErrorKindNotFound))
}

func TestService_SearchDoctorsSortsByRating(t *testing.T) {
	f := newFixture()
	low := f.addDoctor("Low Rated", "Cardiology", 2.5)
	high := f.addDoctor("High Rated", "Cardiology", 4.8)
	f.addDoctor("Other Field", "Neurology", 5.0)

	matched := f.service.SearchDoctors("cardiology")
	require.Len(t, matched, 2)
	assert.Same(t, high, matched[0])
	assert.Same(t, low, matched[1])

	assert.Empty(t, f.service.SearchDoctors("Dermatology"))
}
