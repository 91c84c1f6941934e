package types

// Update structs carry partial mutations. Every field is a pointer: nil means
// keep the stored value, non-nil means overwrite. The policy is uniform for
// all fields, including booleans and integers, replacing the original
// behavior where unset strings were skipped but gender and age were always
// overwritten.

// StaffUpdates is a partial update for a doctor or pharmacist record.
type StaffUpdates struct {
	Name      *string `json:"name,omitempty"`
	IsMale    *bool   `json:"is_male,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Email     *string `json:"email,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// Apply merges the set fields into the user.
func (u *StaffUpdates) Apply(user *User) {
	if u.Name != nil {
		user.SetName(*u.Name)
	}
	if u.IsMale != nil {
		user.SetIsMale(*u.IsMale)
	}
	if u.Age != nil {
		user.SetAge(*u.Age)
	}
	if u.Email != nil {
		user.UpdatePersonalInfo(*u.Email)
	}
}

// ApplyToDoctor merges the set fields into the doctor, including specialty.
func (u *StaffUpdates) ApplyToDoctor(doctor *Doctor) {
	u.Apply(doctor.User)
	if u.Specialty != nil {
		doctor.SetSpecialty(*u.Specialty)
	}
}

// MedicineUpdates is a partial update for a medicine record.
type MedicineUpdates struct {
	Stock             *int     `json:"stock,omitempty"`
	LowStockThreshold *int     `json:"low_stock_threshold,omitempty"`
	Price             *float64 `json:"price,omitempty"`
}

// Apply merges the set fields into the medicine.
func (u *MedicineUpdates) Apply(medicine *Medicine) {
	if u.Stock != nil {
		medicine.SetStock(*u.Stock)
	}
	if u.LowStockThreshold != nil {
		medicine.SetLowStockThreshold(*u.LowStockThreshold)
	}
	if u.Price != nil {
		medicine.SetPrice(*u.Price)
	}
}
