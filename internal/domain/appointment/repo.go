package appointment

import "context"

// Repository is the persistence contract for appointments.
type Repository interface {
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	List(ctx context.Context, skip, limit int) ([]*Appointment, error)
	// Cancel marks the appointment cancelled and returns the updated row.
	// Cancelling a cancelled appointment succeeds without further effect.
	Cancel(ctx context.Context, id int64) (*Appointment, error)
	FindByDoctorAndDate(ctx context.Context, doctorID int64, date string) ([]*Appointment, error)
}
