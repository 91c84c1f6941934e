package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func (s *Server) setupAdminRoutes(router *mux.Router) {
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(s.requireRole(types.RoleAdministrator))

	admin.HandleFunc("/appointments", s.allAppointmentsHandler).Methods("GET")
	admin.HandleFunc("/staff", s.searchStaffHandler).Methods("GET")
	admin.HandleFunc("/staff", s.addStaffHandler).Methods("POST")
	admin.HandleFunc("/staff/{id}", s.updateStaffHandler).Methods("PUT")
	admin.HandleFunc("/staff/{id}", s.removeStaffHandler).Methods("DELETE")
	admin.HandleFunc("/medicines", s.adminListMedicinesHandler).Methods("GET")
	admin.HandleFunc("/medicines", s.addMedicineHandler).Methods("POST")
	admin.HandleFunc("/medicines/{id}", s.updateMedicineHandler).Methods("PUT")
	admin.HandleFunc("/medicines/{id}", s.removeMedicineHandler).Methods("DELETE")
	admin.HandleFunc("/medicines/{id}/replenishment-approval", s.approveReplenishmentHandler).Methods("POST")
}

func (s *Server) allAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, appointmentViews(s.scheduling.AllAppointments()))
}

// searchStaffHandler filters hospital staff by one of role, name, age, or
// gender. With no filter it lists everyone.
func (s *Server) searchStaffHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if roleParam := query.Get("role"); roleParam != "" {
		role, ok := types.ParseUserRole(roleParam)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "invalid role")
			return
		}
		views, err := s.staff.SearchByRole(role)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, views)
		return
	}

	if name := query.Get("name"); name != "" {
		s.writeJSON(w, http.StatusOK, s.staff.SearchByName(name))
		return
	}

	if ageParam := query.Get("age"); ageParam != "" {
		age, err := strconv.Atoi(ageParam)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid age")
			return
		}
		s.writeJSON(w, http.StatusOK, s.staff.SearchByAge(age))
		return
	}

	if gender := query.Get("gender"); gender != "" {
		switch gender {
		case "male":
			s.writeJSON(w, http.StatusOK, s.staff.SearchByGender(true))
		case "female":
			s.writeJSON(w, http.StatusOK, s.staff.SearchByGender(false))
		default:
			s.writeError(w, http.StatusBadRequest, "invalid gender, expected male or female")
		}
		return
	}

	doctors, err := s.staff.SearchByRole(types.RoleDoctor)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	pharmacists, err := s.staff.SearchByRole(types.RolePharmacist)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	admins, err := s.staff.SearchByRole(types.RoleAdministrator)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	all := make([]types.UserView, 0, len(doctors)+len(pharmacists)+len(admins))
	all = append(all, doctors...)
	all = append(all, pharmacists...)
	all = append(all, admins...)
	s.writeJSON(w, http.StatusOK, all)
}

type addStaffRequest struct {
	Role      string `json:"role"`
	Name      string `json:"name"`
	IsMale    bool   `json:"is_male"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
}

// addStaffHandler creates a doctor, pharmacist, or administrator. New
// accounts start with the default password.
func (s *Server) addStaffHandler(w http.ResponseWriter, r *http.Request) {
	var req addStaffRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	role, ok := types.ParseUserRole(req.Role)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "invalid role")
		return
	}

	const defaultPassword = "password"

	if role == types.RoleDoctor {
		doctor := types.NewDoctor("", defaultPassword, req.Name, req.IsMale, req.Age, req.Email, req.Specialty, 0, 0)
		s.staff.AddDoctor(doctor)
		s.writeJSON(w, http.StatusCreated, doctor.Snapshot())
		return
	}

	user := types.NewUser("", defaultPassword, role, req.Name, req.IsMale, req.Age, req.Email)
	if _, err := s.staff.AddStaff(user); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, user.Snapshot())
}

func (s *Server) updateStaffHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var updates types.StaffUpdates
	if !s.decodeJSON(w, r, &updates) {
		return
	}

	if err := s.staff.Update(userID, &updates); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "staff member updated"})
}

func (s *Server) removeStaffHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	if err := s.staff.Remove(userID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "staff member removed"})
}

func (s *Server) adminListMedicinesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, medicineViews(s.inventory.List()))
}

type addMedicineRequest struct {
	Name              string  `json:"name"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Price             float64 `json:"price"`
}

func (s *Server) addMedicineHandler(w http.ResponseWriter, r *http.Request) {
	var req addMedicineRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "medicine name must not be empty")
		return
	}

	medicine := types.NewMedicine("", req.Name, req.Stock, req.LowStockThreshold, false, req.Price)
	s.inventory.Add(medicine)
	s.writeJSON(w, http.StatusCreated, medicine.Snapshot())
}

func (s *Server) updateMedicineHandler(w http.ResponseWriter, r *http.Request) {
	medicineID := mux.Vars(r)["id"]

	var updates types.MedicineUpdates
	if !s.decodeJSON(w, r, &updates) {
		return
	}

	if err := s.inventory.Update(medicineID, &updates); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "medicine updated"})
}

func (s *Server) removeMedicineHandler(w http.ResponseWriter, r *http.Request) {
	medicineID := mux.Vars(r)["id"]

	if err := s.inventory.Remove(medicineID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "medicine removed"})
}

func (s *Server) approveReplenishmentHandler(w http.ResponseWriter, r *http.Request) {
	medicineID := mux.Vars(r)["id"]

	if err := s.inventory.ApproveReplenishmentRequest(medicineID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "replenishment request approved"})
}
