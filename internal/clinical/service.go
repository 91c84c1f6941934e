package clinical

import (
	"sort"
	"strings"

	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// Service covers the clinical reads and medical-record writes that sit next
// to the appointment lifecycle: patients under a doctor's care, medical
// record additions, outcome record retrieval, and doctor search.
type Service struct {
	logger       *logger.Logger
	appointments *store.AppointmentStore
	outcomes     *store.OutcomeRecordStore
	doctors      *store.DoctorStore
	patients     *store.PatientStore
}

// New creates a clinical service.
func New(
	appointments *store.AppointmentStore,
	outcomes *store.OutcomeRecordStore,
	doctors *store.DoctorStore,
	patients *store.PatientStore,
	log *logger.Logger,
) *Service {
	return &Service{
		logger:       log,
		appointments: appointments,
		outcomes:     outcomes,
		doctors:      doctors,
		patients:     patients,
	}
}

// PatientsUnderCare returns the distinct patients appearing across the
// doctor's appointments, in arbitrary order.
func (s *Service) PatientsUnderCare(doctorID string) ([]*types.Patient, error) {
	if _, ok := s.doctors.Get(doctorID); !ok {
		return nil, types.NewNotFoundError(types.ErrCodeDoctorNotFound, "doctor not found")
	}

	seen := make(map[*types.Patient]struct{})
	for _, appointment := range s.appointments.List() {
		if appointment.Doctor().RecordID() == doctorID {
			seen[appointment.Patient()] = struct{}{}
		}
	}

	patients := make([]*types.Patient, 0, len(seen))
	for p := range seen {
		patients = append(patients, p)
	}
	return patients, nil
}

// AddDiagnosis appends a diagnosis to the patient's medical record.
func (s *Service) AddDiagnosis(patientID, diagnosis string) error {
	patient, ok := s.patients.Get(patientID)
	if !ok {
		return types.NewNotFoundError(types.ErrCodePatientNotFound, "patient not found")
	}
	patient.MedicalRecord().AddDiagnosis(diagnosis)
	s.logger.WithUserID(patientID).Info("Diagnosis added to medical record")
	return nil
}

// AddPrescriptionNote appends a prescription entry to the patient's medical
// record.
func (s *Service) AddPrescriptionNote(patientID, prescription string) error {
	patient, ok := s.patients.Get(patientID)
	if !ok {
		return types.NewNotFoundError(types.ErrCodePatientNotFound, "patient not found")
	}
	patient.MedicalRecord().AddPrescription(prescription)
	s.logger.WithUserID(patientID).Info("Prescription added to medical record")
	return nil
}

// AddTreatment appends a treatment to the patient's medical record.
func (s *Service) AddTreatment(patientID, treatment string) error {
	patient, ok := s.patients.Get(patientID)
	if !ok {
		return types.NewNotFoundError(types.ErrCodePatientNotFound, "patient not found")
	}
	patient.MedicalRecord().AddTreatment(treatment)
	s.logger.WithUserID(patientID).Info("Treatment added to medical record")
	return nil
}

// OutcomeRecordForPatient returns the outcome record of the patient's own
// appointment.
func (s *Service) OutcomeRecordForPatient(patientID, appointmentID string) (*types.AppointmentOutcomeRecord, error) {
	appointment, ok := s.appointments.Get(appointmentID)
	if !ok || appointment.Patient().RecordID() != patientID {
		return nil, types.NewNotFoundError(types.ErrCodeAppointmentNotFound, "appointment not found")
	}

	recordID := appointment.OutcomeRecordID()
	if recordID == "" {
		return nil, types.NewNotFoundError(types.ErrCodeOutcomeRecordNotFound, "outcome record not found")
	}

	record, ok := s.outcomes.Get(recordID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeOutcomeRecordNotFound, "outcome record not found")
	}
	return record, nil
}

// OutcomeRecord returns an outcome record by ID, for pharmacist review.
func (s *Service) OutcomeRecord(outcomeRecordID string) (*types.AppointmentOutcomeRecord, error) {
	record, ok := s.outcomes.Get(outcomeRecordID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeOutcomeRecordNotFound, "outcome record not found")
	}
	return record, nil
}

// SearchDoctors returns the doctors with the given specialty, best rated
// first.
func (s *Service) SearchDoctors(specialty string) []*types.Doctor {
	matched := make([]*types.Doctor, 0)
	for _, doctor := range s.doctors.List() {
		if strings.EqualFold(doctor.Specialty(), specialty) {
			matched = append(matched, doctor)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating() > matched[j].Rating()
	})
	return matched
}
