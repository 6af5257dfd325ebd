package appointment

import "errors"

var (
	// ErrNotFound is returned when no appointment exists for the given id.
	ErrNotFound = errors.New("appointment not found")

	// ErrInvalid marks a request rejected by validation, as opposed to a
	// store failure. Wrapped with the field-level message.
	ErrInvalid = errors.New("invalid request")
)

// Appointment lifecycle states. An appointment is created booked and can
// only move to cancelled; cancelling again is a no-op.
const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

// Appointment maps to the appointments table. Date and Time are stored as
// plain strings and compared byte for byte; the service does no calendar
// parsing or timezone normalization.
type Appointment struct {
	ID        int64  `db:"id" json:"id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	DoctorID  int64  `db:"doctor_id" json:"doctor_id"`
	Date      string `db:"date" json:"date"`
	Time      string `db:"time" json:"time"`
	Reason    string `db:"reason" json:"reason"`
	Status    string `db:"status" json:"status"`
}

// CreateRequest is the payload accepted when booking an appointment. Any
// status supplied by the caller is ignored; new appointments are always
// booked.
type CreateRequest struct {
	PatientID int64  `json:"patient_id"`
	DoctorID  int64  `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}
