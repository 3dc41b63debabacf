package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrGymNotFound = errors.New("gym not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, g *Gym) error {
	query := `
		INSERT INTO gyms (gym_id, owner_name, phone, email, password_hash, gym_name, location, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	return r.db.GetContext(ctx, &g.CreatedAt, query,
		g.GymID, g.OwnerName, g.Phone, g.Email, g.PasswordHash,
		g.GymName, g.Location, g.Description, g.Status)
}

func (r *repository) GetByID(ctx context.Context, gymID string) (*Gym, error) {
	query := `
		SELECT gym_id, owner_name, phone, email, password_hash, gym_name, location, description, status, created_at
		FROM gyms
		WHERE gym_id = $1
	`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, gymID)
	if err == sql.ErrNoRows {
		return nil, ErrGymNotFound
	}
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Gym, error) {
	query := `
		SELECT gym_id, owner_name, phone, email, password_hash, gym_name, location, description, status, created_at
		FROM gyms
		WHERE email = $1
	`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrGymNotFound
	}
	if err != nil {
		return nil, err
	}

	return &g, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM gyms WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// SearchByLocation is a substring filter over the whole collection. Without a
// trigram index this is a sequential scan; fine at current scale, and the
// ILIKE predicate keeps the cost visible at the storage layer instead of
// filtering rows in application code.
func (r *repository) SearchByLocation(ctx context.Context, locationSubstring string) ([]Gym, error) {
	query := `
		SELECT gym_id, owner_name, phone, email, password_hash, gym_name, location, description, status, created_at
		FROM gyms
		WHERE location ILIKE '%' || $1 || '%' AND status = 'active'
		ORDER BY gym_name ASC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query, locationSubstring)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}
