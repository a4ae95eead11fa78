package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-grooming-manager/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// Lecturas siempre con el dueño joineado (FK obligatorio, join interno).
const petSelect = `
	SELECT
		p.id, p.name, p.species, p.breed, p.birth_date,
		p.weight, p.client_id, p.status, p.notes, p.created_at,
		c.id, c.first_name, c.last_name
	FROM pets p
	JOIN clients c ON c.id = p.client_id
`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, species, breed, birth_date,
			weight, client_id, status, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.BirthDate,
		p.Weight,
		p.ClientID,
		string(p.Status),
		p.Notes,
		p.CreatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, petSelect+` WHERE p.id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.queryPets(ctx, petSelect+` ORDER BY p.name ASC`)
}

func (r *PetsRepo) ListByClient(ctx context.Context, clientID string) ([]pets.Pet, error) {
	return r.queryPets(ctx, petSelect+` WHERE p.client_id = $1 ORDER BY p.name ASC`, clientID)
}

func (r *PetsRepo) Search(ctx context.Context, q string) ([]pets.Pet, error) {
	return r.queryPets(ctx, petSelect+`
		WHERE p.name ILIKE $1 ESCAPE '\'
		   OR p.breed ILIKE $1 ESCAPE '\'
		   OR p.species ILIKE $1 ESCAPE '\'
		ORDER BY p.name ASC
	`, likePattern(q))
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			birth_date = $5,
			weight = $6,
			client_id = $7,
			status = $8,
			notes = $9
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.BirthDate,
		p.Weight,
		p.ClientID,
		string(p.Status),
		p.Notes,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		// El FK de appointments frena el borrado de una mascota con turnos.
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) queryPets(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var o pets.Owner
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.BirthDate,
		&p.Weight,
		&p.ClientID,
		&p.Status,
		&p.Notes,
		&p.CreatedAt,
		&o.ID,
		&o.FirstName,
		&o.LastName,
	)
	if err != nil {
		return pets.Pet{}, err
	}
	p.Owner = &o
	return p, nil
}
