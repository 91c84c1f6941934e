package scheduling

import (
	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/monitoring"
	"github.com/electron-shaders/sc2002-proj/pkg/observer"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// Service owns the appointment lifecycle: the status state machine, the
// doctor-availability bookkeeping that must stay consistent with it, and the
// notification fan-out on every transition.
//
// Every operation validates all preconditions before the first mutation, so a
// failed call leaves every store in its prior state.
type Service struct {
	logger       *logger.Logger
	appointments *store.AppointmentStore
	outcomes     *store.OutcomeRecordStore
	doctors      *store.DoctorStore
	patients     *store.PatientStore
	sink         observer.Subscriber
}

// New creates a scheduling service. If sink is non-nil it is subscribed to
// the appointment and outcome record stores and to every appointment the
// service creates, standing in for the dashboard views of the interactive
// system.
func New(
	appointments *store.AppointmentStore,
	outcomes *store.OutcomeRecordStore,
	doctors *store.DoctorStore,
	patients *store.PatientStore,
	log *logger.Logger,
	sink observer.Subscriber,
) *Service {
	s := &Service{
		logger:       log,
		appointments: appointments,
		outcomes:     outcomes,
		doctors:      doctors,
		patients:     patients,
		sink:         sink,
	}
	if sink != nil {
		appointments.Subscribe(sink)
		outcomes.Subscribe(sink)
	}
	return s
}

// AppointmentSlots returns the doctor's open booking dates.
func (s *Service) AppointmentSlots(doctorID string) ([]types.Date, error) {
	doctor, ok := s.doctors.Get(doctorID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeDoctorNotFound, "doctor not found")
	}
	return doctor.Calendar().OpenDates(), nil
}

// Schedule books a PENDING appointment for the patient with the doctor on the
// given date and removes the date from the doctor's calendar.
func (s *Service) Schedule(patientID, doctorID string, date types.Date) (*types.Appointment, error) {
	patient, ok := s.patients.Get(patientID)
	if !ok {
		monitoring.RecordAppointmentTransition("schedule", "failure")
		return nil, types.NewNotFoundError(types.ErrCodePatientNotFound, "patient not found")
	}

	doctor, ok := s.doctors.Get(doctorID)
	if !ok {
		monitoring.RecordAppointmentTransition("schedule", "failure")
		return nil, types.NewNotFoundError(types.ErrCodeDoctorNotFound, "doctor not found")
	}

	if !doctor.Calendar().IsAvailable(date) {
		monitoring.RecordAppointmentTransition("schedule", "failure")
		return nil, types.NewUnavailableError(types.ErrCodeDoctorNotAvailable, "doctor not available on this date")
	}

	doctor.Calendar().Remove(date)
	appointment := types.NewAppointment(patient, doctor, date)
	if s.sink != nil {
		appointment.Subscribe(s.sink)
	}
	id := s.appointments.Add(appointment)

	s.logger.WithAppointment(id).WithField("user_id", patientID).Info("Appointment scheduled")
	monitoring.RecordAppointmentTransition("schedule", "success")
	return appointment, nil
}

// Accept confirms a PENDING appointment on behalf of its doctor.
func (s *Service) Accept(doctorID, appointmentID string) error {
	appointment, err := s.appointmentForDoctor(doctorID, appointmentID)
	if err != nil {
		monitoring.RecordAppointmentTransition("accept", "failure")
		return err
	}

	if appointment.Status() != types.StatusPending {
		monitoring.RecordAppointmentTransition("accept", "failure")
		return types.NewInvalidStateError(types.ErrCodeInvalidStatus, "cannot accept appointment: status is not PENDING")
	}

	appointment.SetStatus(types.StatusConfirmed)
	s.logger.WithAppointment(appointmentID).WithField("user_id", doctorID).Info("Appointment accepted")
	monitoring.RecordAppointmentTransition("accept", "success")
	return nil
}

// Decline cancels a PENDING appointment on behalf of its doctor and hands the
// date back to the doctor's calendar.
func (s *Service) Decline(doctorID, appointmentID string) error {
	appointment, err := s.appointmentForDoctor(doctorID, appointmentID)
	if err != nil {
		monitoring.RecordAppointmentTransition("decline", "failure")
		return err
	}

	if appointment.Status() != types.StatusPending {
		monitoring.RecordAppointmentTransition("decline", "failure")
		return types.NewInvalidStateError(types.ErrCodeInvalidStatus, "cannot decline appointment: status is not PENDING")
	}

	appointment.Doctor().Calendar().Add(appointment.Date())
	appointment.SetStatus(types.StatusCancelled)
	s.logger.WithAppointment(appointmentID).WithField("user_id", doctorID).Info("Appointment declined")
	monitoring.RecordAppointmentTransition("decline", "success")
	return nil
}

// Reschedule moves a PENDING or CONFIRMED appointment to a new date. The old
// appointment is removed from the store, the new date leaves the calendar,
// the old date returns to it, and a fresh PENDING appointment is created.
func (s *Service) Reschedule(patientID, appointmentID string, newDate types.Date) (*types.Appointment, error) {
	appointment, err := s.appointmentForPatient(patientID, appointmentID)
	if err != nil {
		monitoring.RecordAppointmentTransition("reschedule", "failure")
		return nil, err
	}

	status := appointment.Status()
	if status != types.StatusPending && status != types.StatusConfirmed {
		monitoring.RecordAppointmentTransition("reschedule", "failure")
		return nil, types.NewInvalidStateError(types.ErrCodeInvalidStatus, "cannot reschedule appointment: status is not PENDING or CONFIRMED")
	}

	doctor := appointment.Doctor()
	if !doctor.Calendar().IsAvailable(newDate) {
		monitoring.RecordAppointmentTransition("reschedule", "failure")
		return nil, types.NewUnavailableError(types.ErrCodeDoctorNotAvailable, "doctor not available on this date")
	}

	s.appointments.Remove(appointmentID)
	doctor.Calendar().Remove(newDate)
	doctor.Calendar().Add(appointment.Date())

	replacement := types.NewAppointment(appointment.Patient(), doctor, newDate)
	if s.sink != nil {
		replacement.Subscribe(s.sink)
	}
	id := s.appointments.Add(replacement)

	s.logger.WithAppointment(id).WithField("user_id", patientID).Info("Appointment rescheduled")
	monitoring.RecordAppointmentTransition("reschedule", "success")
	return replacement, nil
}

// Cancel marks a PENDING or CONFIRMED appointment CANCELLED on behalf of its
// patient and hands the date back to the doctor's calendar. The appointment
// stays in the store.
func (s *Service) Cancel(patientID, appointmentID string) error {
	appointment, err := s.appointmentForPatient(patientID, appointmentID)
	if err != nil {
		monitoring.RecordAppointmentTransition("cancel", "failure")
		return err
	}

	status := appointment.Status()
	if status != types.StatusPending && status != types.StatusConfirmed {
		monitoring.RecordAppointmentTransition("cancel", "failure")
		return types.NewInvalidStateError(types.ErrCodeInvalidStatus, "cannot cancel appointment: status is not PENDING or CONFIRMED")
	}

	appointment.Doctor().Calendar().Add(appointment.Date())
	appointment.SetStatus(types.StatusCancelled)
	s.logger.WithAppointment(appointmentID).WithField("user_id", patientID).Info("Appointment cancelled")
	monitoring.RecordAppointmentTransition("cancel", "success")
	return nil
}

// RecordOutcome completes a CONFIRMED appointment: it creates the outcome
// record, attaches it to the appointment, and moves the status to COMPLETED.
// Subscribers receive two notifications, outcome attachment first.
func (s *Service) RecordOutcome(doctorID, appointmentID, serviceType string, prescriptions []*types.Prescription, notes string) (*types.AppointmentOutcomeRecord, error) {
	appointment, err := s.appointmentForDoctor(doctorID, appointmentID)
	if err != nil {
		monitoring.RecordAppointmentTransition("complete", "failure")
		return nil, err
	}

	if appointment.Status() != types.StatusConfirmed {
		monitoring.RecordAppointmentTransition("complete", "failure")
		return nil, types.NewInvalidStateError(types.ErrCodeInvalidStatus, "cannot record outcome: status is not CONFIRMED")
	}

	record := types.NewAppointmentOutcomeRecord(appointment.Date(), serviceType, prescriptions, notes)
	recordID := s.outcomes.Add(record)
	appointment.AttachOutcomeRecord(recordID)
	appointment.SetStatus(types.StatusCompleted)

	s.logger.WithAppointment(appointmentID).WithField("user_id", doctorID).Info("Appointment outcome recorded")
	monitoring.RecordAppointmentTransition("complete", "success")
	return record, nil
}

// ProvideRating folds a score in [1,5] into the doctor's running average.
// Only legal once per COMPLETED, unrated appointment, by its patient. The
// range check runs before any lookup so an invalid score never touches state.
func (s *Service) ProvideRating(patientID, appointmentID string, score int) error {
	if score < 1 || score > 5 {
		return types.NewValidationError(types.ErrCodeInvalidRating, "invalid rating, rating should be between 1 and 5")
	}

	appointment, err := s.appointmentForPatient(patientID, appointmentID)
	if err != nil {
		return err
	}

	if appointment.Status() != types.StatusCompleted || appointment.IsRated() {
		return types.NewInvalidStateError(types.ErrCodeCannotRate, "cannot rate appointment")
	}

	appointment.Doctor().ApplyRating(score)
	appointment.MarkRated()
	s.logger.WithAppointment(appointmentID).WithField("user_id", patientID).Info("Doctor rated")
	return nil
}

// DispensePrescription marks the idx-th prescription of the outcome record
// DISPENSED and decrements the referenced medicine's stock by one. Only a
// PENDING prescription can be dispensed.
func (s *Service) DispensePrescription(outcomeRecordID string, idx int) error {
	record, ok := s.outcomes.Get(outcomeRecordID)
	if !ok {
		return types.NewNotFoundError(types.ErrCodeOutcomeRecordNotFound, "outcome record not found")
	}

	prescription, ok := record.Prescription(idx)
	if !ok {
		return types.NewValidationError(types.ErrCodeIndexOutOfBounds, "prescription index out of bounds")
	}

	if prescription.Status() != types.PrescriptionPending {
		return types.NewInvalidStateError(types.ErrCodeAlreadyDispensed, "prescription has already been dispensed")
	}

	prescription.Medicine().DecrementStock()
	prescription.SetStatus(types.PrescriptionDispensed)
	s.logger.WithField("outcome_record_id", outcomeRecordID).Info("Prescription dispensed")
	monitoring.RecordPrescriptionDispensed()
	return nil
}

// UpcomingAppointmentsForPatient lists the patient's PENDING and CONFIRMED
// appointments. Filtering is by literal status set; no date comparison.
func (s *Service) UpcomingAppointmentsForPatient(patientID string) ([]*types.Appointment, error) {
	if _, ok := s.patients.Get(patientID); !ok {
		return nil, types.NewNotFoundError(types.ErrCodePatientNotFound, "patient not found")
	}
	return s.filterAppointments(func(a *types.Appointment) bool {
		status := a.Status()
		return a.Patient().RecordID() == patientID &&
			(status == types.StatusPending || status == types.StatusConfirmed)
	}), nil
}

// PastAppointmentsForPatient lists the patient's COMPLETED and CANCELLED
// appointments.
func (s *Service) PastAppointmentsForPatient(patientID string) ([]*types.Appointment, error) {
	if _, ok := s.patients.Get(patientID); !ok {
		return nil, types.NewNotFoundError(types.ErrCodePatientNotFound, "patient not found")
	}
	return s.filterAppointments(func(a *types.Appointment) bool {
		status := a.Status()
		return a.Patient().RecordID() == patientID &&
			(status == types.StatusCompleted || status == types.StatusCancelled)
	}), nil
}

// UpcomingAppointmentsForDoctor lists the doctor's PENDING and CONFIRMED
// appointments.
func (s *Service) UpcomingAppointmentsForDoctor(doctorID string) ([]*types.Appointment, error) {
	if _, ok := s.doctors.Get(doctorID); !ok {
		return nil, types.NewNotFoundError(types.ErrCodeDoctorNotFound, "doctor not found")
	}
	return s.filterAppointments(func(a *types.Appointment) bool {
		status := a.Status()
		return a.Doctor().RecordID() == doctorID &&
			(status == types.StatusPending || status == types.StatusConfirmed)
	}), nil
}

// AllAppointments returns every appointment in the store, for the
// administrator's global feed.
func (s *Service) AllAppointments() []*types.Appointment {
	return s.appointments.List()
}

// GetAppointment returns the appointment with the given ID.
func (s *Service) GetAppointment(appointmentID string) (*types.Appointment, error) {
	appointment, ok := s.appointments.Get(appointmentID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeAppointmentNotFound, "appointment not found")
	}
	return appointment, nil
}

func (s *Service) filterAppointments(keep func(*types.Appointment) bool) []*types.Appointment {
	all := s.appointments.List()
	out := make([]*types.Appointment, 0, len(all))
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Service) appointmentForDoctor(doctorID, appointmentID string) (*types.Appointment, error) {
	appointment, ok := s.appointments.Get(appointmentID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeAppointmentNotFound, "appointment not found")
	}
	if appointment.Doctor().RecordID() != doctorID {
		return nil, types.NewNotAuthorizedError(types.ErrCodeNotAuthorized, "appointment does not belong to this doctor")
	}
	return appointment, nil
}

func (s *Service) appointmentForPatient(patientID, appointmentID string) (*types.Appointment, error) {
	appointment, ok := s.appointments.Get(appointmentID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeAppointmentNotFound, "appointment not found")
	}
	if appointment.Patient().RecordID() != patientID {
		return nil, types.NewNotAuthorizedError(types.ErrCodeNotAuthorized, "appointment does not belong to this patient")
	}
	return appointment, nil
}
