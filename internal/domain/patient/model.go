package patient

import "errors"

var (
	// ErrNotFound signals that no patient row matched the requested id.
	ErrNotFound = errors.New("patient not found")

	// ErrEmailTaken signals a unique-constraint violation on patient email.
	ErrEmailTaken = errors.New("patient email already registered")

	// ErrInvalid marks a request rejected by validation, as opposed to a
	// store failure. Wrapped with the field-level message.
	ErrInvalid = errors.New("invalid request")
)

// Patient maps to the patients table.
type Patient struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone"`
	Email string `db:"email" json:"email"`
}

// CreateRequest is the payload accepted when registering a patient. The id
// is always store-assigned; any id in the request body is ignored.
type CreateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
