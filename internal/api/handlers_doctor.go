package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func (s *Server) setupDoctorRoutes(router *mux.Router) {
	doctor := router.PathPrefix("/doctor").Subrouter()
	doctor.Use(s.requireRole(types.RoleDoctor))

	doctor.HandleFunc("/appointments", s.doctorUpcomingHandler).Methods("GET")
	doctor.HandleFunc("/appointments/{id}/accept", s.acceptAppointmentHandler).Methods("POST")
	doctor.HandleFunc("/appointments/{id}/decline", s.declineAppointmentHandler).Methods("POST")
	doctor.HandleFunc("/appointments/{id}/outcome", s.recordOutcomeHandler).Methods("POST")
	doctor.HandleFunc("/availability", s.addAvailabilityHandler).Methods("POST")
	doctor.HandleFunc("/availability/{date}", s.removeAvailabilityHandler).Methods("DELETE")
	doctor.HandleFunc("/patients", s.patientsUnderCareHandler).Methods("GET")
	doctor.HandleFunc("/patients/{id}/diagnoses", s.addDiagnosisHandler).Methods("POST")
	doctor.HandleFunc("/patients/{id}/prescriptions", s.addPrescriptionNoteHandler).Methods("POST")
	doctor.HandleFunc("/patients/{id}/treatments", s.addTreatmentHandler).Methods("POST")
}

func (s *Server) doctorUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	appointments, err := s.scheduling.UpcomingAppointmentsForDoctor(claims.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, appointmentViews(appointments))
}

func (s *Server) acceptAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	if err := s.scheduling.Accept(claims.UserID, appointmentID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "appointment accepted"})
}

func (s *Server) declineAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	if err := s.scheduling.Decline(claims.UserID, appointmentID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "appointment declined"})
}

type outcomeRequest struct {
	ServiceType string   `json:"service_type"`
	MedicineIDs []string `json:"medicine_ids"`
	Notes       string   `json:"notes"`
}

// recordOutcomeHandler completes a confirmed appointment. Each medicine ID
// becomes one pending prescription on the outcome record.
func (s *Server) recordOutcomeHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	var req outcomeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	prescriptions := make([]*types.Prescription, 0, len(req.MedicineIDs))
	for _, medicineID := range req.MedicineIDs {
		medicine, err := s.inventory.Get(medicineID)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		prescriptions = append(prescriptions, types.NewPrescription(medicine))
	}

	record, err := s.scheduling.RecordOutcome(claims.UserID, appointmentID, req.ServiceType, prescriptions, req.Notes)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, record.Snapshot())
}

type availabilityRequest struct {
	Date string `json:"date"`
}

// addAvailabilityHandler opens a date on the caller's calendar.
func (s *Server) addAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req availabilityRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	doctor, ok := s.doctors.Get(claims.UserID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "doctor not found")
		return
	}

	doctor.Calendar().Add(date)
	s.writeJSON(w, http.StatusOK, doctor.Calendar().OpenDates())
}

// removeAvailabilityHandler closes a date on the caller's calendar.
func (s *Server) removeAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	date, err := types.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	doctor, ok := s.doctors.Get(claims.UserID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "doctor not found")
		return
	}

	doctor.Calendar().Remove(date)
	s.writeJSON(w, http.StatusOK, doctor.Calendar().OpenDates())
}

func (s *Server) patientsUnderCareHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	patients, err := s.clinical.PatientsUnderCare(claims.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	views := make([]types.PatientView, len(patients))
	for i, p := range patients {
		views[i] = p.Snapshot()
	}
	s.writeJSON(w, http.StatusOK, views)
}

type recordEntryRequest struct {
	Entry string `json:"entry"`
}

func (s *Server) addDiagnosisHandler(w http.ResponseWriter, r *http.Request) {
	s.addRecordEntry(w, r, s.clinical.AddDiagnosis)
}

func (s *Server) addPrescriptionNoteHandler(w http.ResponseWriter, r *http.Request) {
	s.addRecordEntry(w, r, s.clinical.AddPrescriptionNote)
}

func (s *Server) addTreatmentHandler(w http.ResponseWriter, r *http.Request) {
	s.addRecordEntry(w, r, s.clinical.AddTreatment)
}

func (s *Server) addRecordEntry(w http.ResponseWriter, r *http.Request, add func(patientID, entry string) error) {
	patientID := mux.Vars(r)["id"]

	var req recordEntryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Entry == "" {
		s.writeError(w, http.StatusBadRequest, "entry must not be empty")
		return
	}

	if err := add(patientID, req.Entry); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "medical record updated"})
}
