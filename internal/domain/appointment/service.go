package appointment

import (
	"context"
	"fmt"
)

// Service carries appointment business logic on top of the repository.
// It does not guard against double booking; overlapping appointments for
// the same doctor are accepted.
type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) CreateAppointment(ctx context.Context, req *CreateRequest) (*Appointment, error) {
	if req.PatientID == 0 {
		return nil, fmt.Errorf("%w: patient_id is required", ErrInvalid)
	}
	if req.DoctorID == 0 {
		return nil, fmt.Errorf("%w: doctor_id is required", ErrInvalid)
	}
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalid)
	}
	if req.Time == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalid)
	}
	a := &Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    StatusBooked,
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, skip, limit int) ([]*Appointment, error) {
	return s.appointments.List(ctx, skip, limit)
}

func (s *Service) CancelAppointment(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.Cancel(ctx, id)
}

func (s *Service) FindByDoctorAndDate(ctx context.Context, doctorID int64, date string) ([]*Appointment, error) {
	return s.appointments.FindByDoctorAndDate(ctx, doctorID, date)
}
