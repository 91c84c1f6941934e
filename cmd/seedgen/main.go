package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// seedgen writes the CSV seed files the server loads at startup.

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var medicineNames = []string{
	"Paracetamol",
	"Ibuprofen",
	"Amoxicillin",
	"Metformin",
	"Atorvastatin",
	"Omeprazole",
	"Amlodipine",
	"Salbutamol",
	"Cetirizine",
	"Azithromycin",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	outDir := flag.String("out", "data", "output directory for seed files")
	doctorCount := flag.Int("doctors", 10, "number of doctors")
	pharmacistCount := flag.Int("pharmacists", 5, "number of pharmacists")
	adminCount := flag.Int("admins", 2, "number of administrators")
	patientCount := flag.Int("patients", 50, "number of patients")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	if err := writeStaff(*outDir, *doctorCount, *pharmacistCount, *adminCount); err != nil {
		log.Fatalf("write staff: %v", err)
	}
	if err := writePatients(*outDir, *patientCount); err != nil {
		log.Fatalf("write patients: %v", err)
	}
	if err := writeMedicines(*outDir); err != nil {
		log.Fatalf("write medicines: %v", err)
	}

	log.Printf("seed files written to %s", *outDir)
}

func writeStaff(outDir string, doctors, pharmacists, admins int) error {
	rows := [][]string{{"Staff ID", "Name", "Role", "Gender", "Age", "Email", "Specialty", "Rating", "Rating Count"}}

	for i := 1; i <= doctors; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("D%03d", i),
			gofakeit.Name(),
			"Doctor",
			gender(),
			strconv.Itoa(gofakeit.Number(28, 65)),
			gofakeit.Email(),
			specialties[gofakeit.Number(0, len(specialties)-1)],
			fmt.Sprintf("%.1f", gofakeit.Float64Range(2.5, 5.0)),
			strconv.Itoa(gofakeit.Number(0, 200)),
		})
	}
	for i := 1; i <= pharmacists; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("P%03d", i),
			gofakeit.Name(),
			"Pharmacist",
			gender(),
			strconv.Itoa(gofakeit.Number(25, 60)),
			gofakeit.Email(),
			"", "0", "0",
		})
	}
	for i := 1; i <= admins; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("A%03d", i),
			gofakeit.Name(),
			"Administrator",
			gender(),
			strconv.Itoa(gofakeit.Number(30, 60)),
			gofakeit.Email(),
			"", "0", "0",
		})
	}

	return writeCSV(filepath.Join(outDir, "staff.csv"), rows)
}

func writePatients(outDir string, count int) error {
	rows := [][]string{{"Patient ID", "Name", "Date of Birth", "Gender", "Blood Type", "Contact Information"}}

	for i := 1; i <= count; i++ {
		dob := gofakeit.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC),
		)
		rows = append(rows, []string{
			fmt.Sprintf("P%04d", i),
			gofakeit.Name(),
			dob.Format("2006-01-02"),
			gender(),
			bloodTypes[gofakeit.Number(0, len(bloodTypes)-1)],
			gofakeit.Email(),
		})
	}

	return writeCSV(filepath.Join(outDir, "patients.csv"), rows)
}

func writeMedicines(outDir string) error {
	rows := [][]string{{"Medicine Name", "Initial Stock", "Low Stock Level Alert", "Price"}}

	for _, name := range medicineNames {
		rows = append(rows, []string{
			name,
			strconv.Itoa(gofakeit.Number(20, 500)),
			strconv.Itoa(gofakeit.Number(5, 30)),
			fmt.Sprintf("%.2f", gofakeit.Float64Range(1.0, 80.0)),
		})
	}

	return writeCSV(filepath.Join(outDir, "medicines.csv"), rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func gender() string {
	if gofakeit.Bool() {
		return "Male"
	}
	return "Female"
}
