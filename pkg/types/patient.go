package types

import "sync"

// MedicalRecord holds the free-text clinical history of a patient. Entries
// keep insertion order.
type MedicalRecord struct {
	mu            sync.Mutex
	diagnoses     []string
	prescriptions []string
	treatments    []string
}

// NewMedicalRecord creates an empty medical record.
func NewMedicalRecord() *MedicalRecord {
	return &MedicalRecord{}
}

// AddDiagnosis appends a diagnosis entry.
func (m *MedicalRecord) AddDiagnosis(diagnosis string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.diagnoses = append(m.diagnoses, diagnosis)
}

// AddPrescription appends a prescription entry.
func (m *MedicalRecord) AddPrescription(prescription string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prescriptions = append(m.prescriptions, prescription)
}

// AddTreatment appends a treatment entry.
func (m *MedicalRecord) AddTreatment(treatment string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.treatments = append(m.treatments, treatment)
}

// Diagnoses returns a snapshot of the diagnosis entries.
func (m *MedicalRecord) Diagnoses() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.diagnoses...)
}

// Prescriptions returns a snapshot of the prescription entries.
func (m *MedicalRecord) Prescriptions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prescriptions...)
}

// Treatments returns a snapshot of the treatment entries.
func (m *MedicalRecord) Treatments() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.treatments...)
}

// Patient is a user with a date of birth, blood type, and medical record.
type Patient struct {
	*User
	dateOfBirth   Date
	bloodType     string
	medicalRecord *MedicalRecord
}

// NewPatient creates a patient with the given details.
func NewPatient(userID, password, name string, isMale bool, email string, dateOfBirth Date, bloodType string) *Patient {
	return &Patient{
		User:          NewUser(userID, password, RolePatient, name, isMale, 0, email),
		dateOfBirth:   dateOfBirth,
		bloodType:     bloodType,
		medicalRecord: NewMedicalRecord(),
	}
}

// DateOfBirth returns the patient's date of birth.
func (p *Patient) DateOfBirth() Date {
	return p.dateOfBirth
}

// BloodType returns the patient's blood type.
func (p *Patient) BloodType() string {
	return p.bloodType
}

// MedicalRecord returns the patient's medical record.
func (p *Patient) MedicalRecord() *MedicalRecord {
	return p.medicalRecord
}
