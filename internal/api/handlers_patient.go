package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/electron-shaders/sc2002-proj/internal/billing"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func (s *Server) setupPatientRoutes(router *mux.Router) {
	patient := router.PathPrefix("/patient").Subrouter()
	patient.Use(s.requireRole(types.RolePatient))

	patient.HandleFunc("/profile", s.patientProfileHandler).Methods("GET")
	patient.HandleFunc("/doctors", s.searchDoctorsHandler).Methods("GET")
	patient.HandleFunc("/doctors/{doctorId}/slots", s.doctorSlotsHandler).Methods("GET")
	patient.HandleFunc("/appointments", s.scheduleAppointmentHandler).Methods("POST")
	patient.HandleFunc("/appointments/upcoming", s.patientUpcomingHandler).Methods("GET")
	patient.HandleFunc("/appointments/past", s.patientPastHandler).Methods("GET")
	patient.HandleFunc("/appointments/{id}/reschedule", s.rescheduleAppointmentHandler).Methods("PUT")
	patient.HandleFunc("/appointments/{id}", s.cancelAppointmentHandler).Methods("DELETE")
	patient.HandleFunc("/appointments/{id}/rating", s.rateAppointmentHandler).Methods("POST")
	patient.HandleFunc("/appointments/{id}/outcome", s.patientOutcomeHandler).Methods("GET")
	patient.HandleFunc("/appointments/{id}/bill", s.patientBillHandler).Methods("GET")
}

// patientProfileHandler returns the caller's own record, medical history
// included.
func (s *Server) patientProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	patient, ok := s.patients.Get(claims.UserID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "patient not found")
		return
	}
	s.writeJSON(w, http.StatusOK, patient.Snapshot())
}

// searchDoctorsHandler lists doctors with the requested specialty, best rated
// first.
func (s *Server) searchDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")
	if specialty == "" {
		s.writeError(w, http.StatusBadRequest, "specialty query parameter is required")
		return
	}

	doctors := s.clinical.SearchDoctors(specialty)
	views := make([]types.DoctorView, len(doctors))
	for i, d := range doctors {
		views[i] = d.Snapshot()
	}
	s.writeJSON(w, http.StatusOK, views)
}

// doctorSlotsHandler lists a doctor's open booking dates.
func (s *Server) doctorSlotsHandler(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	slots, err := s.scheduling.AppointmentSlots(doctorID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, slots)
}

type scheduleRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
}

// scheduleAppointmentHandler books a new appointment for the caller.
func (s *Server) scheduleAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req scheduleRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	appointment, err := s.scheduling.Schedule(claims.UserID, req.DoctorID, date)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, appointment.Snapshot())
}

func (s *Server) patientUpcomingHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	appointments, err := s.scheduling.UpcomingAppointmentsForPatient(claims.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, appointmentViews(appointments))
}

func (s *Server) patientPastHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	appointments, err := s.scheduling.PastAppointmentsForPatient(claims.UserID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, appointmentViews(appointments))
}

type rescheduleRequest struct {
	Date string `json:"date"`
}

// rescheduleAppointmentHandler moves the caller's appointment to a new date.
// The reply carries the replacement appointment, which has a fresh ID.
func (s *Server) rescheduleAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	var req rescheduleRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	replacement, err := s.scheduling.Reschedule(claims.UserID, appointmentID, date)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, replacement.Snapshot())
}

func (s *Server) cancelAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	if err := s.scheduling.Cancel(claims.UserID, appointmentID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "appointment cancelled"})
}

type ratingRequest struct {
	Score int `json:"score"`
}

func (s *Server) rateAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	var req ratingRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if err := s.scheduling.ProvideRating(claims.UserID, appointmentID, req.Score); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "rating recorded"})
}

func (s *Server) patientOutcomeHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	record, err := s.clinical.OutcomeRecordForPatient(claims.UserID, appointmentID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record.Snapshot())
}

// patientBillHandler computes the bill over the appointment's outcome record.
func (s *Server) patientBillHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())
	appointmentID := mux.Vars(r)["id"]

	record, err := s.clinical.OutcomeRecordForPatient(claims.UserID, appointmentID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, billing.NewBill(record).Snapshot())
}

func appointmentViews(appointments []*types.Appointment) []types.AppointmentView {
	views := make([]types.AppointmentView, len(appointments))
	for i, a := range appointments {
		views[i] = a.Snapshot()
	}
	return views
}
