package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/electron-shaders/sc2002-proj/internal/clinical"
	"github.com/electron-shaders/sc2002-proj/internal/inventory"
	"github.com/electron-shaders/sc2002-proj/internal/scheduling"
	"github.com/electron-shaders/sc2002-proj/internal/staff"
	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/config"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/monitoring"
	"github.com/electron-shaders/sc2002-proj/pkg/observer"
)

// Server exposes the role dashboards of the hospital system over HTTP. Each
// role gets its own subrouter; the acting user is the token subject, so
// patient and doctor routes never take the caller's own ID in the path.
type Server struct {
	logger     *logger.Logger
	cfg        *config.Config
	tokens     *TokenManager
	feed       *observer.Feed
	scheduling *scheduling.Service
	clinical   *clinical.Service
	inventory  *inventory.Service
	staff      *staff.Service
	doctors    *store.DoctorStore
	patients   *store.PatientStore
	staffStore *store.StaffStore
}

// Deps bundles the collaborators a Server needs.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	Feed       *observer.Feed
	Scheduling *scheduling.Service
	Clinical   *clinical.Service
	Inventory  *inventory.Service
	Staff      *staff.Service
	Doctors    *store.DoctorStore
	Patients   *store.PatientStore
	StaffStore *store.StaffStore
}

// NewServer creates the HTTP server facade.
func NewServer(deps Deps) *Server {
	return &Server{
		logger:     deps.Logger,
		cfg:        deps.Config,
		tokens:     NewTokenManager(deps.Config.JWT),
		feed:       deps.Feed,
		scheduling: deps.Scheduling,
		clinical:   deps.Clinical,
		inventory:  deps.Inventory,
		staff:      deps.Staff,
		doctors:    deps.Doctors,
		patients:   deps.Patients,
		staffStore: deps.StaffStore,
	}
}

// Router builds the full route tree with middleware applied.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestIDMiddleware)
	router.Use(s.loggingMiddleware)

	router.HandleFunc(s.cfg.Monitoring.HealthPath, s.healthHandler).Methods("GET")
	if s.cfg.Monitoring.Enabled {
		router.Handle(s.cfg.Monitoring.MetricsPath, monitoring.Handler()).Methods("GET")
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", s.loginHandler).Methods("POST")

	authed := api.PathPrefix("/").Subrouter()
	authed.Use(s.authMiddleware)
	s.setupAccountRoutes(authed)
	s.setupPatientRoutes(authed)
	s.setupDoctorRoutes(authed)
	s.setupPharmacistRoutes(authed)
	s.setupAdminRoutes(authed)

	s.logger.Info("HTTP routes configured")
	return router
}

// healthHandler reports liveness.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
