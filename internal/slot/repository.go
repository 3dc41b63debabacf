package slot

import (
	"context"
	"database/sql"
	"errors"

	"gymbook/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSlotNotFound    = errors.New("time slot not found")
	ErrSlotUnavailable = errors.New("time slot already reserved")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, s *TimeSlot) error {
	query := `
		INSERT INTO time_slots (gym_id, slot_id, date, start_time, end_time, time_slot, capacity, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING created_at
	`

	s.IsAvailable = true
	return r.db.GetContext(ctx, &s.CreatedAt, query,
		s.GymID, s.SlotID, s.Date, s.StartTime, s.EndTime, s.Label, s.Capacity)
}

func (r *repository) GetByID(ctx context.Context, gymID, slotID string) (*TimeSlot, error) {
	query := `
		SELECT gym_id, slot_id, date, start_time, end_time, time_slot, capacity, is_available, created_at
		FROM time_slots
		WHERE gym_id = $1 AND slot_id = $2
	`

	var s TimeSlot
	err := r.db.GetContext(ctx, &s, query, gymID, slotID)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) ListAvailable(ctx context.Context, gymID, date string) ([]TimeSlot, error) {
	query := `
		SELECT gym_id, slot_id, date, start_time, end_time, time_slot, capacity, is_available, created_at
		FROM time_slots
		WHERE gym_id = $1 AND date = $2 AND is_available = TRUE
		ORDER BY start_time ASC
	`

	var slots []TimeSlot
	err := r.db.SelectContext(ctx, &slots, query, gymID, date)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]TimeSlot, error) {
	query := `
		SELECT gym_id, slot_id, date, start_time, end_time, time_slot, capacity, is_available, created_at
		FROM time_slots
		WHERE gym_id = $1
		ORDER BY date ASC, start_time ASC
	`

	var slots []TimeSlot
	err := r.db.SelectContext(ctx, &slots, query, gymID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

// TryReserve is the compare-and-swap the consistency contract hangs on: the
// availability check and the flip happen in one UPDATE, so two concurrent
// reservations of the same slot can never both see is_available = TRUE.
// A read-then-write here would reintroduce the double-booking race.
func (r *repository) TryReserve(ctx context.Context, gymID, slotID string) error {
	query := `
		UPDATE time_slots
		SET is_available = FALSE
		WHERE gym_id = $1 AND slot_id = $2 AND is_available = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, gymID, slotID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 1 {
		return nil
	}

	// Zero rows: either the slot is taken or the key never existed.
	exists, err := db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM time_slots WHERE gym_id = $1 AND slot_id = $2)`,
		gymID, slotID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSlotNotFound
	}

	return ErrSlotUnavailable
}

func (r *repository) Release(ctx context.Context, gymID, slotID string) error {
	query := `
		UPDATE time_slots
		SET is_available = TRUE
		WHERE gym_id = $1 AND slot_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, gymID, slotID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
