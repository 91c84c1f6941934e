package types

import "fmt"

// ErrorKind categorizes domain failures so callers can match on the failure
// class without string comparison.
type ErrorKind string

const (
	ErrorKindNotFound      ErrorKind = "not_found"
	ErrorKindInvalidState  ErrorKind = "invalid_state"
	ErrorKindNotAuthorized ErrorKind = "not_authorized"
	ErrorKindUnavailable   ErrorKind = "unavailable"
	ErrorKindValidation    ErrorKind = "validation"
)

// DomainError is the structured error returned by every state-machine and
// controller operation. A failed operation leaves all stores unchanged.
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindNotFound, Code: code, Message: message}
}

// NewInvalidStateError creates a new invalid state error.
func NewInvalidStateError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindInvalidState, Code: code, Message: message}
}

// NewNotAuthorizedError creates a new not authorized error.
func NewNotAuthorizedError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindNotAuthorized, Code: code, Message: message}
}

// NewUnavailableError creates a new unavailable error.
func NewUnavailableError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindUnavailable, Code: code, Message: message}
}

// NewValidationError creates a new validation error.
func NewValidationError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindValidation, Code: code, Message: message}
}

// KindOf reports the kind of a domain error, or the empty string for foreign
// errors.
func KindOf(err error) ErrorKind {
	if de, ok := err.(*DomainError); ok {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// Common error codes
const (
	ErrCodePatientNotFound       = "PATIENT_NOT_FOUND"
	ErrCodeDoctorNotFound        = "DOCTOR_NOT_FOUND"
	ErrCodeStaffNotFound         = "STAFF_NOT_FOUND"
	ErrCodeAppointmentNotFound   = "APPOINTMENT_NOT_FOUND"
	ErrCodeOutcomeRecordNotFound = "OUTCOME_RECORD_NOT_FOUND"
	ErrCodeMedicineNotFound      = "MEDICINE_NOT_FOUND"
	ErrCodeDoctorNotAvailable    = "DOCTOR_NOT_AVAILABLE"
	ErrCodeNotAuthorized         = "NOT_AUTHORIZED"
	ErrCodeInvalidStatus         = "INVALID_STATUS"
	ErrCodeCannotRate            = "CANNOT_RATE"
	ErrCodeInvalidRating         = "INVALID_RATING"
	ErrCodeIndexOutOfBounds      = "INDEX_OUT_OF_BOUNDS"
	ErrCodeAlreadyDispensed      = "ALREADY_DISPENSED"
	ErrCodeStockNotLow           = "STOCK_NOT_LOW"
	ErrCodeInvalidRole           = "INVALID_ROLE"
	ErrCodeInvalidInput          = "INVALID_INPUT"
	ErrCodeLoginFailed           = "LOGIN_FAILED"
)
