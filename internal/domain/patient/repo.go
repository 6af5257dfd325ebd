package patient

import "context"

// Repository persists patients. Implementations translate store-level
// failures into the package's domain errors: ErrEmailTaken for a duplicate
// email on Create, ErrNotFound for an empty point lookup.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context, skip, limit int) ([]*Patient, error)
}
