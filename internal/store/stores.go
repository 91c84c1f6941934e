package store

import (
	"fmt"

	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/observer"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// Typed store aliases. ID formats are a store-level policy and must stay
// bit-exact: doctors D+3 digits, patients P+4, appointments AP+6, outcome
// records R+6, medicines M+4, staff P/A+3 by role.

type (
	DoctorStore        = Store[*types.Doctor]
	PatientStore       = Store[*types.Patient]
	StaffStore         = Store[*types.User]
	MedicineStore      = Store[*types.Medicine]
	AppointmentStore   = Store[*types.Appointment]
	OutcomeRecordStore = Store[*types.AppointmentOutcomeRecord]
)

// NewDoctorStore creates the doctor collection.
func NewDoctorStore(log *logger.Logger) *DoctorStore {
	return New[*types.Doctor]("doctors", "D", 3, log, nil, nil)
}

// NewPatientStore creates the patient collection.
func NewPatientStore(log *logger.Logger) *PatientStore {
	return New[*types.Patient]("patients", "P", 4, log, nil, nil)
}

// NewStaffStore creates the pharmacist/administrator collection. The ID
// prefix follows the record's role.
func NewStaffStore(log *logger.Logger) *StaffStore {
	prefix := func(rec *types.User) string {
		if rec.Role() == types.RoleAdministrator {
			return "A"
		}
		return "P"
	}
	return NewWithPrefixFunc[*types.User]("staff", prefix, 3, log, nil, nil)
}

// NewMedicineStore creates the medicine inventory collection.
func NewMedicineStore(log *logger.Logger) *MedicineStore {
	return New[*types.Medicine]("medicines", "M", 4, log, nil, nil)
}

// NewAppointmentStore creates the appointment collection. Additions and
// removals fan out to store subscribers (role dashboards wanting a global
// feed).
func NewAppointmentStore(log *logger.Logger) *AppointmentStore {
	onAdd := func(id string, rec *types.Appointment) (observer.Notification, bool) {
		return observer.NewEvent("Appointment", id, "is added under", "Doctor", rec.Doctor().RecordID()), true
	}
	onRemove := func(id string, rec *types.Appointment) (observer.Notification, bool) {
		return observer.NewEvent("Patient", rec.Patient().RecordID(), "removed", "Appointment", id), true
	}
	return New[*types.Appointment]("appointments", "AP", 6, log, onAdd, onRemove)
}

// NewOutcomeRecordStore creates the outcome record collection. Additions fan
// out to store subscribers (pharmacist dashboards).
func NewOutcomeRecordStore(log *logger.Logger) *OutcomeRecordStore {
	onAdd := func(id string, rec *types.AppointmentOutcomeRecord) (observer.Notification, bool) {
		return observer.NewMessage(fmt.Sprintf("Appointment outcome record %s has been added", id)), true
	}
	return New[*types.AppointmentOutcomeRecord]("outcome_records", "R", 6, log, onAdd, nil)
}
