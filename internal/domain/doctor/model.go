package doctor

import "errors"

// ErrInvalid marks a request rejected by validation, as opposed to a
// store failure. Wrapped with the field-level message.
var ErrInvalid = errors.New("invalid request")

// Doctor maps to the doctors table. Names carry no uniqueness constraint;
// two doctors may share a name.
type Doctor struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// CreateRequest is the payload accepted when registering a doctor.
type CreateRequest struct {
	Name string `json:"name"`
}
