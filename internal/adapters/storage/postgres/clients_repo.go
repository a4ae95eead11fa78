package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-grooming-manager/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

const clientColumns = `
	id, first_name, last_name, email, phone,
	address, notes, is_active, created_at
`

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (
			id, first_name, last_name, email, phone,
			address, notes, is_active, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Address,
		c.Notes,
		c.IsActive,
		c.CreatedAt,
	)
	return err
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clients.Client{}, clients.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = $1
	`, id)

	c, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return clients.Client{}, clients.ErrNotFound
		}
		return clients.Client{}, err
	}

	// Resumen de mascotas embebido, como el select con join por id.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species
		FROM pets
		WHERE client_id = $1
		ORDER BY name ASC
	`, id)
	if err != nil {
		return clients.Client{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p clients.PetSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Species); err != nil {
			return clients.Client{}, err
		}
		c.Pets = append(c.Pets, p)
	}

	return c, rows.Err()
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	return r.queryClients(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		ORDER BY last_name ASC, first_name ASC
	`)
}

func (r *ClientsRepo) Search(ctx context.Context, q string) ([]clients.Client, error) {
	return r.queryClients(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE first_name ILIKE $1 ESCAPE '\'
		   OR last_name ILIKE $1 ESCAPE '\'
		   OR email ILIKE $1 ESCAPE '\'
		ORDER BY last_name ASC, first_name ASC
	`, likePattern(q))
}

func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			phone = $5,
			address = $6,
			notes = $7,
			is_active = $8
		WHERE id = $1
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Address,
		c.Notes,
		c.IsActive,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		// El FK de pets frena el borrado de un cliente con mascotas;
		// sube como falla genérica, igual que cualquier error remoto.
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) queryClients(ctx context.Context, query string, args ...any) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (clients.Client, error) {
	var c clients.Client
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Notes,
		&c.IsActive,
		&c.CreatedAt,
	)
	return c, err
}
