package types

// View structs are read-only JSON snapshots of the mutable entities, taken at
// response time. They keep the HTTP layer from reaching into entity internals.

// UserView is a snapshot of the shared user fields.
type UserView struct {
	ID     string   `json:"id"`
	Role   UserRole `json:"role"`
	Name   string   `json:"name"`
	IsMale bool     `json:"is_male"`
	Age    int      `json:"age"`
	Email  string   `json:"email"`
}

// Snapshot returns a read-only view of the user.
func (u *User) Snapshot() UserView {
	return UserView{
		ID:     u.RecordID(),
		Role:   u.Role(),
		Name:   u.Name(),
		IsMale: u.IsMale(),
		Age:    u.Age(),
		Email:  u.Email(),
	}
}

// DoctorView is a snapshot of a doctor, including open booking dates.
type DoctorView struct {
	UserView
	Specialty      string  `json:"specialty"`
	Rating         float64 `json:"rating"`
	RatingCount    int     `json:"rating_count"`
	AvailableDates []Date  `json:"available_dates"`
}

// Snapshot returns a read-only view of the doctor.
func (d *Doctor) Snapshot() DoctorView {
	return DoctorView{
		UserView:       d.User.Snapshot(),
		Specialty:      d.Specialty(),
		Rating:         d.Rating(),
		RatingCount:    d.RatingCount(),
		AvailableDates: d.Calendar().OpenDates(),
	}
}

// PatientView is a snapshot of a patient and their medical record.
type PatientView struct {
	UserView
	DateOfBirth   Date     `json:"date_of_birth"`
	BloodType     string   `json:"blood_type"`
	Diagnoses     []string `json:"diagnoses"`
	Prescriptions []string `json:"prescriptions"`
	Treatments    []string `json:"treatments"`
}

// Snapshot returns a read-only view of the patient.
func (p *Patient) Snapshot() PatientView {
	return PatientView{
		UserView:      p.User.Snapshot(),
		DateOfBirth:   p.DateOfBirth(),
		BloodType:     p.BloodType(),
		Diagnoses:     p.MedicalRecord().Diagnoses(),
		Prescriptions: p.MedicalRecord().Prescriptions(),
		Treatments:    p.MedicalRecord().Treatments(),
	}
}

// AppointmentView is a snapshot of an appointment.
type AppointmentView struct {
	ID              string            `json:"id"`
	PatientID       string            `json:"patient_id"`
	DoctorID        string            `json:"doctor_id"`
	Date            Date              `json:"date"`
	Status          AppointmentStatus `json:"status"`
	OutcomeRecordID string            `json:"outcome_record_id,omitempty"`
	IsRated         bool              `json:"is_rated"`
}

// Snapshot returns a read-only view of the appointment.
func (a *Appointment) Snapshot() AppointmentView {
	return AppointmentView{
		ID:              a.RecordID(),
		PatientID:       a.Patient().RecordID(),
		DoctorID:        a.Doctor().RecordID(),
		Date:            a.Date(),
		Status:          a.Status(),
		OutcomeRecordID: a.OutcomeRecordID(),
		IsRated:         a.IsRated(),
	}
}

// PrescriptionView is a snapshot of one prescription line item.
type PrescriptionView struct {
	MedicineID   string             `json:"medicine_id"`
	MedicineName string             `json:"medicine_name"`
	Price        float64            `json:"price"`
	Status       PrescriptionStatus `json:"status"`
}

// Snapshot returns a read-only view of the prescription.
func (p *Prescription) Snapshot() PrescriptionView {
	return PrescriptionView{
		MedicineID:   p.Medicine().RecordID(),
		MedicineName: p.Medicine().Name(),
		Price:        p.Medicine().Price(),
		Status:       p.Status(),
	}
}

// OutcomeRecordView is a snapshot of an outcome record.
type OutcomeRecordView struct {
	ID            string             `json:"id"`
	Date          Date               `json:"date"`
	ServiceType   string             `json:"service_type"`
	Prescriptions []PrescriptionView `json:"prescriptions"`
	Notes         string             `json:"notes"`
}

// Snapshot returns a read-only view of the outcome record.
func (r *AppointmentOutcomeRecord) Snapshot() OutcomeRecordView {
	prescriptions := r.Prescriptions()
	views := make([]PrescriptionView, len(prescriptions))
	for i, p := range prescriptions {
		views[i] = p.Snapshot()
	}
	return OutcomeRecordView{
		ID:            r.RecordID(),
		Date:          r.Date(),
		ServiceType:   r.ServiceType(),
		Prescriptions: views,
		Notes:         r.Notes(),
	}
}

// MedicineView is a snapshot of an inventory item.
type MedicineView struct {
	ID                        string  `json:"id"`
	Name                      string  `json:"name"`
	Stock                     int     `json:"stock"`
	LowStockThreshold         int     `json:"low_stock_threshold"`
	IsRequestingReplenishment bool    `json:"is_requesting_replenishment"`
	Price                     float64 `json:"price"`
}

// Snapshot returns a read-only view of the medicine.
func (m *Medicine) Snapshot() MedicineView {
	return MedicineView{
		ID:                        m.RecordID(),
		Name:                      m.Name(),
		Stock:                     m.Stock(),
		LowStockThreshold:         m.LowStockThreshold(),
		IsRequestingReplenishment: m.IsRequestingReplenishment(),
		Price:                     m.Price(),
	}
}
