package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"pet-grooming-manager/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

// Lecturas con mascota y dueño joineados, orden por fecha ascendente.
const appointmentSelect = `
	SELECT
		a.id, a.pet_id, a.date_time, a.service_type, a.duration_minutes,
		a.status, a.notes, a.price, a.photos, a.created_at,
		p.id, p.name,
		c.id, c.first_name, c.last_name
	FROM appointments a
	JOIN pets p ON p.id = a.pet_id
	JOIN clients c ON c.id = p.client_id
`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	photos, err := marshalPhotos(a.Photos)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, pet_id, date_time, service_type, duration_minutes,
			status, notes, price, photos, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.PetID,
		a.DateTime,
		a.ServiceType,
		a.DurationMinutes,
		string(a.Status),
		a.Notes,
		toNullFloat(a.Price),
		photos,
		a.CreatedAt,
	)
	return err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, appointmentSelect+` WHERE a.id = $1`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.queryAppointments(ctx, appointmentSelect+` ORDER BY a.date_time ASC`)
}

func (r *AppointmentsRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	return r.queryAppointments(ctx, appointmentSelect+`
		WHERE a.date_time >= $1 AND a.date_time <= $2
		ORDER BY a.date_time ASC
	`, from, to)
}

func (r *AppointmentsRepo) Search(ctx context.Context, q string) ([]appointments.Appointment, error) {
	// La búsqueda cruza campos del turno y del join (mascota y dueño).
	return r.queryAppointments(ctx, appointmentSelect+`
		WHERE p.name ILIKE $1 ESCAPE '\'
		   OR c.first_name ILIKE $1 ESCAPE '\'
		   OR c.last_name ILIKE $1 ESCAPE '\'
		   OR a.service_type ILIKE $1 ESCAPE '\'
		ORDER BY a.date_time ASC
	`, likePattern(q))
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	photos, err := marshalPhotos(a.Photos)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			pet_id = $2,
			date_time = $3,
			service_type = $4,
			duration_minutes = $5,
			status = $6,
			notes = $7,
			price = $8,
			photos = $9
		WHERE id = $1
	`,
		a.ID,
		a.PetID,
		a.DateTime,
		a.ServiceType,
		a.DurationMinutes,
		string(a.Status),
		a.Notes,
		toNullFloat(a.Price),
		photos,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) queryAppointments(ctx context.Context, query string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var (
		a      appointments.Appointment
		ref    appointments.PetRef
		price  sql.NullFloat64
		photos []byte
	)
	err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.DateTime,
		&a.ServiceType,
		&a.DurationMinutes,
		&a.Status,
		&a.Notes,
		&price,
		&photos,
		&a.CreatedAt,
		&ref.ID,
		&ref.Name,
		&ref.Owner.ID,
		&ref.Owner.FirstName,
		&ref.Owner.LastName,
	)
	if err != nil {
		return appointments.Appointment{}, err
	}

	if price.Valid {
		v := price.Float64
		a.Price = &v
	}
	if len(photos) > 0 {
		var ph appointments.Photos
		if err := json.Unmarshal(photos, &ph); err != nil {
			return appointments.Appointment{}, err
		}
		a.Photos = &ph
	}
	a.Pet = &ref

	return a, nil
}

// photos es JSONB nullable; nil en Go => NULL en la tabla.
func marshalPhotos(p *appointments.Photos) (any, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
