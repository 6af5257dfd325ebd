package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Postgres-backed appointment repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const appointmentCols = `id, patient_id, doctor_id, date, "time", reason, status`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, &a.Reason, &a.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO appointments (patient_id, doctor_id, date, "time", reason, status)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Reason, a.Status,
	)
	if err := row.Scan(&a.ID); err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id)
	return scanAppointment(row)
}

func (r *repoPG) List(ctx context.Context, skip, limit int) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) Cancel(ctx context.Context, id int64) (*Appointment, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE appointments SET status = $1 WHERE id = $2 RETURNING `+appointmentCols,
		StatusCancelled, id,
	)
	return scanAppointment(row)
}

func (r *repoPG) FindByDoctorAndDate(ctx context.Context, doctorID int64, date string) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE doctor_id = $1 AND date = $2`,
		doctorID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("find appointments by doctor and date: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*Appointment, error) {
	items := []*Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
