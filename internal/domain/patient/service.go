package patient

import (
	"context"
	"fmt"
)

type Service struct {
	patients Repository
}

func NewService(repo Repository) *Service {
	return &Service{patients: repo}
}

// CreatePatient validates the request and inserts a new patient row. The
// store enforces email uniqueness; a violation surfaces as ErrEmailTaken.
func (s *Service) CreatePatient(ctx context.Context, req *CreateRequest) (*Patient, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalid)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalid)
	}

	p := &Patient{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, skip, limit int) ([]*Patient, error) {
	return s.patients.List(ctx, skip, limit)
}
