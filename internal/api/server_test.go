package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electron-shaders/sc2002-proj/internal/clinical"
	"github.com/electron-shaders/sc2002-proj/internal/inventory"
	"github.com/electron-shaders/sc2002-proj/internal/scheduling"
	"github.com/electron-shaders/sc2002-proj/internal/staff"
	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/config"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/observer"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

type testEnv struct {
	router   http.Handler
	doctors  *store.DoctorStore
	patients *store.PatientStore
	staff    *store.StaffStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.New("error")

	cfg := &config.Config{
		JWT:      config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 3600, Issuer: "hms-core"},
		LogLevel: "error",
		Monitoring: config.MonitoringConfig{
			Enabled:     false,
			MetricsPath: "/metrics",
			HealthPath:  "/health",
		},
	}

	doctors := store.NewDoctorStore(log)
	patients := store.NewPatientStore(log)
	staffStore := store.NewStaffStore(log)
	medicines := store.NewMedicineStore(log)
	appointments := store.NewAppointmentStore(log)
	outcomes := store.NewOutcomeRecordStore(log)
	feed := observer.NewFeed(50)

	server := NewServer(Deps{
		Config:     cfg,
		Logger:     log,
		Feed:       feed,
		Scheduling: scheduling.New(appointments, outcomes, doctors, patients, log, feed),
		Clinical:   clinical.New(appointments, outcomes, doctors, patients, log),
		Inventory:  inventory.New(medicines, log),
		Staff:      staff.New(doctors, staffStore, log),
		Doctors:    doctors,
		Patients:   patients,
		StaffStore: staffStore,
	})

	return &testEnv{
		router:   server.Router(),
		doctors:  doctors,
		patients: patients,
		staff:    staffStore,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, userID, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/auth/login", "", loginRequest{UserID: userID, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.AccessToken
}

func (e *testEnv) seedPatient() *types.Patient {
	patient := types.NewPatient("", "password", "John Doe", true, "john@example.test", types.Date("1990-05-14"), "O+")
	e.patients.Add(patient)
	return patient
}

func (e *testEnv) seedDoctor(dates ...types.Date) *types.Doctor {
	doctor := types.NewDoctor("", "password", "Gregory House", true, 50, "house@hospital.test", "Diagnostics", 0, 0)
	e.doctors.Add(doctor)
	for _, d := range dates {
		doctor.Calendar().Add(d)
	}
	return doctor
}

func TestServer_HealthEndpoint(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestServer_LoginFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedPatient()

	token := env.login(t, "P0001", "password")
	assert.NotEmpty(t, token)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "", loginRequest{UserID: "P0001", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/auth/login", "", loginRequest{UserID: "P9999", Password: "password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/patient/appointments/upcoming", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/patient/appointments/upcoming", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_RoleGateRejectsWrongRole(t *testing.T) {
	env := newTestEnv(t)
	env.seedPatient()
	token := env.login(t, "P0001", "password")

	rec := env.do(t, http.MethodGet, "/api/v1/admin/appointments", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_PatientSchedulingFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedPatient()
	env.seedDoctor(types.Date("2024-06-01"))
	token := env.login(t, "P0001", "password")

	rec := env.do(t, http.MethodGet, "/api/v1/patient/doctors/D001/slots", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-06-01")

	rec = env.do(t, http.MethodPost, "/api/v1/patient/appointments", token,
		scheduleRequest{DoctorID: "D001", Date: "2024-06-01"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view types.AppointmentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "AP000001", view.ID)
	assert.Equal(t, types.StatusPending, view.Status)

	// Booking the same date twice conflicts.
	rec = env.do(t, http.MethodPost, "/api/v1/patient/appointments", token,
		scheduleRequest{DoctorID: "D001", Date: "2024-06-01"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/patient/appointments/upcoming", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AP000001")
}

func TestServer_DoctorAcceptFlow(t *testing.T) {
	env := newTestEnv(t)
	env.seedPatient()
	env.seedDoctor(types.Date("2024-06-01"))
	patientToken := env.login(t, "P0001", "password")
	doctorToken := env.login(t, "D001", "password")

	rec := env.do(t, http.MethodPost, "/api/v1/patient/appointments", patientToken,
		scheduleRequest{DoctorID: "D001", Date: "2024-06-01"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/doctor/appointments/AP000001/accept", doctorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A second accept is an invalid transition.
	rec = env.do(t, http.MethodPost, "/api/v1/doctor/appointments/AP000001/accept", doctorToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_AdminStaffAndMedicineManagement(t *testing.T) {
	env := newTestEnv(t)
	admin := types.NewUser("", "password", types.RoleAdministrator, "Admin One", true, 40, "a1@hospital.test")
	env.staff.Add(admin)
	token := env.login(t, admin.RecordID(), "password")

	rec := env.do(t, http.MethodPost, "/api/v1/admin/staff", token, addStaffRequest{
		Role: "Doctor", Name: "Lisa Cuddy", IsMale: false, Age: 45, Email: "cuddy@hospital.test", Specialty: "Endocrinology",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/admin/medicines", token, addMedicineRequest{
		Name: "Paracetamol", Stock: 100, LowStockThreshold: 10, Price: 2.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var medicine types.MedicineView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &medicine))
	assert.Equal(t, "M0001", medicine.ID)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/medicines", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Paracetamol")

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/medicines/M0001", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/medicines/M0001", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedPatient()
	token := env.login(t, "P0001", "password")

	rec := env.do(t, http.MethodPut, "/api/v1/account/password", token,
		changePasswordRequest{OldPassword: "wrong", NewPassword: "next"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/account/password", token,
		changePasswordRequest{OldPassword: "password", NewPassword: "next"})
	require.Equal(t, http.StatusOK, rec.Code)

	env.login(t, "P0001", "next")
}
