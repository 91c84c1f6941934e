package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const staffCSV = `Staff ID,Name,Role,Gender,Age,Email,Specialty,Rating,Rating Count
D001,Gregory House,Doctor,Male,50,house@hospital.test,Diagnostics,4.5,120
D002,Lisa Cuddy,Doctor,Female,45,cuddy@hospital.test,Endocrinology,4.8,80
P001,Pharm One,Pharmacist,Female,30,p1@hospital.test,,0,0
A001,Admin One,Administrator,Male,40,a1@hospital.test,,0,0
D003,Broken Row,Doctor,Male,not-a-number,x@hospital.test,Cardiology,4.0,10
`

func TestLoader_LoadDoctors(t *testing.T) {
	path := writeTempCSV(t, "staff.csv", staffCSV)
	loader := NewLoader(logger.New("error"))
	doctors := store.NewDoctorStore(logger.New("error"))

	require.NoError(t, loader.LoadDoctors(path, doctors))

	// The malformed row is skipped; pharmacists and admins are ignored.
	assert.Equal(t, 2, doctors.Len())

	house, ok := doctors.Get("D001")
	require.True(t, ok)
	assert.Equal(t, "Gregory House", house.Name())
	assert.Equal(t, "Diagnostics", house.Specialty())
	assert.InDelta(t, 4.5, house.Rating(), 1e-9)
	assert.Equal(t, 120, house.RatingCount())
	assert.True(t, house.Login("password"))

	// The counter advanced past the highest loaded ID.
	fresh := types.NewDoctor("", "password", "New Doctor", true, 40, "new@hospital.test", "Neurology", 0, 0)
	assert.Equal(t, "D003", doctors.Add(fresh))
}

func TestLoader_LoadStaff(t *testing.T) {
	path := writeTempCSV(t, "staff.csv", staffCSV)
	loader := NewLoader(logger.New("error"))
	staff := store.NewStaffStore(logger.New("error"))

	require.NoError(t, loader.LoadStaff(path, staff))

	assert.Equal(t, 2, staff.Len())

	pharmacist, ok := staff.Get("P001")
	require.True(t, ok)
	assert.Equal(t, types.RolePharmacist, pharmacist.Role())

	admin, ok := staff.Get("A001")
	require.True(t, ok)
	assert.Equal(t, types.RoleAdministrator, admin.Role())
}

func TestLoader_LoadPatients(t *testing.T) {
	content := `Patient ID,Name,Date of Birth,Gender,Blood Type,Contact Information
P0001,John Doe,1990-05-14,Male,O+,john@example.test
P0002,Jane Roe,1985-11-30,Female,AB-,jane@example.test
P0003,Bad Date,14/05/1990,Male,O+,bad@example.test
`
	path := writeTempCSV(t, "patients.csv", content)
	loader := NewLoader(logger.New("error"))
	patients := store.NewPatientStore(logger.New("error"))

	require.NoError(t, loader.LoadPatients(path, patients))

	assert.Equal(t, 2, patients.Len())

	john, ok := patients.Get("P0001")
	require.True(t, ok)
	assert.Equal(t, types.Date("1990-05-14"), john.DateOfBirth())
	assert.Equal(t, "O+", john.BloodType())
	assert.True(t, john.IsMale())
}

func TestLoader_LoadMedicinesAssignsIDs(t *testing.T) {
	content := `Medicine Name,Initial Stock,Low Stock Level Alert,Price
Paracetamol,100,10,2.50
Ibuprofen,50,5,4.25
`
	path := writeTempCSV(t, "medicines.csv", content)
	loader := NewLoader(logger.New("error"))
	medicines := store.NewMedicineStore(logger.New("error"))

	require.NoError(t, loader.LoadMedicines(path, medicines))

	assert.Equal(t, 2, medicines.Len())

	paracetamol, ok := medicines.Get("M0001")
	require.True(t, ok)
	assert.Equal(t, "Paracetamol", paracetamol.Name())
	assert.Equal(t, 100, paracetamol.Stock())
	assert.Equal(t, 10, paracetamol.LowStockThreshold())
	assert.InDelta(t, 2.50, paracetamol.Price(), 1e-9)

	_, ok = medicines.Get("M0002")
	assert.True(t, ok)
}

func TestLoader_MissingFileIsAnError(t *testing.T) {
	loader := NewLoader(logger.New("error"))
	err := loader.LoadMedicines("does-not-exist.csv", store.NewMedicineStore(logger.New("error")))
	assert.Error(t, err)
}

func TestLoader_EmptyFileLoadsNothing(t *testing.T) {
	path := writeTempCSV(t, "medicines.csv", "")
	loader := NewLoader(logger.New("error"))
	medicines := store.NewMedicineStore(logger.New("error"))

	require.NoError(t, loader.LoadMedicines(path, medicines))
	assert.Equal(t, 0, medicines.Len())
}
