package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// defaultPassword is the initial credential every seeded account starts with.
const defaultPassword = "password"

// Loader populates the in-memory stores from flat CSV files once at startup.
// Rows that fail to parse are skipped, matching the tolerant behavior of the
// interactive system. Loading stamps caller-supplied IDs and advances each
// store's counter past the highest loaded ID.
type Loader struct {
	logger *logger.Logger
}

// NewLoader creates a seed loader.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log}
}

// LoadDoctors reads the staff file and loads rows with role Doctor.
// Columns: Staff ID, Name, Role, Gender, Age, Email, Specialty, Rating,
// Rating Count.
func (l *Loader) LoadDoctors(path string, doctors *store.DoctorStore) error {
	rows, err := readRows(path)
	if err != nil {
		return fmt.Errorf("failed to load doctors: %w", err)
	}

	loaded := 0
	for _, row := range rows {
		if len(row) < 9 || row[2] != "Doctor" {
			continue
		}
		isMale, ok := parseGender(row[3])
		if !ok {
			continue
		}
		age, err := strconv.Atoi(row[4])
		if err != nil {
			continue
		}
		rating, err := strconv.ParseFloat(row[7], 64)
		if err != nil {
			continue
		}
		ratingCount, err := strconv.Atoi(row[8])
		if err != nil {
			continue
		}

		doctor := types.NewDoctor(row[0], defaultPassword, row[1], isMale, age, row[5], row[6], rating, ratingCount)
		doctors.Put(row[0], doctor)
		loaded++
	}

	l.logger.WithField("count", loaded).Info("Doctors loaded from seed file")
	return nil
}

// LoadStaff reads the staff file and loads rows with role Pharmacist or
// Administrator.
func (l *Loader) LoadStaff(path string, staff *store.StaffStore) error {
	rows, err := readRows(path)
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}

	loaded := 0
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		role, ok := types.ParseUserRole(row[2])
		if !ok || (role != types.RolePharmacist && role != types.RoleAdministrator) {
			continue
		}
		isMale, ok := parseGender(row[3])
		if !ok {
			continue
		}
		age, err := strconv.Atoi(row[4])
		if err != nil {
			continue
		}

		user := types.NewUser(row[0], defaultPassword, role, row[1], isMale, age, row[5])
		staff.Put(row[0], user)
		loaded++
	}

	l.logger.WithField("count", loaded).Info("Staff loaded from seed file")
	return nil
}

// LoadPatients reads the patient file.
// Columns: Patient ID, Name, Date of Birth, Gender, Blood Type, Contact
// Information.
func (l *Loader) LoadPatients(path string, patients *store.PatientStore) error {
	rows, err := readRows(path)
	if err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}

	loaded := 0
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		dateOfBirth, err := types.ParseDate(row[2])
		if err != nil {
			continue
		}
		isMale, ok := parseGender(row[3])
		if !ok {
			continue
		}

		patient := types.NewPatient(row[0], defaultPassword, row[1], isMale, row[5], dateOfBirth, row[4])
		patients.Put(row[0], patient)
		loaded++
	}

	l.logger.WithField("count", loaded).Info("Patients loaded from seed file")
	return nil
}

// LoadMedicines reads the medicine file. The file carries no IDs; the store
// assigns them in row order.
// Columns: Medicine Name, Initial Stock, Low Stock Level Alert, Price.
func (l *Loader) LoadMedicines(path string, medicines *store.MedicineStore) error {
	rows, err := readRows(path)
	if err != nil {
		return fmt.Errorf("failed to load medicines: %w", err)
	}

	loaded := 0
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		stock, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		threshold, err := strconv.Atoi(row[2])
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			continue
		}

		medicines.Add(types.NewMedicine("", row[0], stock, threshold, false, price))
		loaded++
	}

	l.logger.WithField("count", loaded).Info("Medicines loaded from seed file")
	return nil
}

// readRows reads all data rows of a CSV file, skipping the header.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseGender(s string) (isMale bool, ok bool) {
	switch s {
	case "Male":
		return true, true
	case "Female":
		return false, true
	}
	return false, false
}
