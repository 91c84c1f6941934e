package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func (s *Server) setupPharmacistRoutes(router *mux.Router) {
	pharmacist := router.PathPrefix("/pharmacist").Subrouter()
	pharmacist.Use(s.requireRole(types.RolePharmacist))

	pharmacist.HandleFunc("/outcome-records/{id}", s.outcomeRecordHandler).Methods("GET")
	pharmacist.HandleFunc("/outcome-records/{id}/prescriptions/{idx}/dispense", s.dispenseHandler).Methods("POST")
	pharmacist.HandleFunc("/medicines", s.listMedicinesHandler).Methods("GET")
	pharmacist.HandleFunc("/medicines/{id}/replenishment-request", s.submitReplenishmentHandler).Methods("POST")
}

func (s *Server) outcomeRecordHandler(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["id"]

	record, err := s.clinical.OutcomeRecord(recordID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record.Snapshot())
}

// dispenseHandler dispenses one prescription line of an outcome record. The
// index is zero-based.
func (s *Server) dispenseHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID := vars["id"]

	idx, err := strconv.Atoi(vars["idx"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid prescription index")
		return
	}

	if err := s.scheduling.DispensePrescription(recordID, idx); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "prescription dispensed"})
}

func (s *Server) listMedicinesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, medicineViews(s.inventory.List()))
}

func (s *Server) submitReplenishmentHandler(w http.ResponseWriter, r *http.Request) {
	medicineID := mux.Vars(r)["id"]

	if err := s.inventory.SubmitReplenishmentRequest(medicineID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "replenishment request submitted"})
}

func medicineViews(medicines []*types.Medicine) []types.MedicineView {
	views := make([]types.MedicineView, len(medicines))
	for i, m := range medicines {
		views[i] = m.Snapshot()
	}
	return views
}
