package doctor

import (
	"context"
	"fmt"
)

// Service carries doctor business logic on top of the repository.
type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) CreateDoctor(ctx context.Context, req *CreateRequest) (*Doctor, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	return s.doctors.Create(ctx, &Doctor{Name: req.Name})
}

func (s *Service) ListDoctors(ctx context.Context, skip, limit int) ([]*Doctor, error) {
	return s.doctors.List(ctx, skip, limit)
}
