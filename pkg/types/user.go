package types

import "sync"

// UserRole identifies the dashboard role of a user.
type UserRole string

const (
	RolePatient       UserRole = "PATIENT"
	RoleDoctor        UserRole = "DOCTOR"
	RolePharmacist    UserRole = "PHARMACIST"
	RoleAdministrator UserRole = "ADMINISTRATOR"
)

// ParseUserRole maps the seed-file role column to a UserRole.
func ParseUserRole(s string) (UserRole, bool) {
	switch s {
	case "Patient":
		return RolePatient, true
	case "Doctor":
		return RoleDoctor, true
	case "Pharmacist":
		return RolePharmacist, true
	case "Administrator":
		return RoleAdministrator, true
	}
	return "", false
}

// User is the shared identity base for every account in the system. The only
// behavioral contract the core needs is identity, credential check, and
// personal-info mutation.
type User struct {
	mu       sync.Mutex
	userID   string
	password string
	role     UserRole
	name     string
	isMale   bool
	age      int
	email    string
}

// NewUser creates a user with the given details. The ID may be empty; stores
// stamp a generated ID on insertion.
func NewUser(userID, password string, role UserRole, name string, isMale bool, age int, email string) *User {
	return &User{
		userID:   userID,
		password: password,
		role:     role,
		name:     name,
		isMale:   isMale,
		age:      age,
		email:    email,
	}
}

// RecordID implements store.Record.
func (u *User) RecordID() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.userID
}

// SetRecordID implements store.Record. Called by the owning store on insertion.
func (u *User) SetRecordID(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.userID = id
}

// Role returns the user's role.
func (u *User) Role() UserRole {
	return u.role
}

// Name returns the user's name.
func (u *User) Name() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.name
}

// SetName updates the user's name.
func (u *User) SetName(name string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.name = name
}

// IsMale returns the gender flag, true for male.
func (u *User) IsMale() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.isMale
}

// SetIsMale updates the gender flag.
func (u *User) SetIsMale(isMale bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.isMale = isMale
}

// Age returns the user's age.
func (u *User) Age() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.age
}

// SetAge updates the user's age.
func (u *User) SetAge(age int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.age = age
}

// Email returns the user's contact email.
func (u *User) Email() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.email
}

// Login checks the supplied password against the stored credential.
func (u *User) Login(password string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.password == password
}

// ChangePassword replaces the stored credential.
func (u *User) ChangePassword(newPassword string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.password = newPassword
}

// UpdatePersonalInfo updates the user's contact email.
func (u *User) UpdatePersonalInfo(email string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.email = email
}
