package doctor

import "context"

// Repository is the persistence contract for doctors.
type Repository interface {
	Create(ctx context.Context, d *Doctor) (*Doctor, error)
	List(ctx context.Context, skip, limit int) ([]*Doctor, error)
}
