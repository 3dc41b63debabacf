package booking

import (
	"context"
	"database/sql"
	"errors"

	"gymbook/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (booking_id, gym_id, slot_id, user_name, user_phone, date, time_slot, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING booking_timestamp
	`

	return r.db.GetContext(ctx, &b.BookingTimestamp, query,
		b.BookingID, b.GymID, b.SlotID, b.UserName, b.UserPhone,
		b.Date, b.Label, b.Status)
}

func (r *repository) GetByID(ctx context.Context, bookingID string) (*Booking, error) {
	query := `
		SELECT booking_id, gym_id, slot_id, user_name, user_phone, date, time_slot, status, booking_timestamp
		FROM bookings
		WHERE booking_id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, bookingID)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// CancelConfirmed conditions the transition on the current status so two
// concurrent cancellations of the same booking cannot both report success
// and trigger a double slot release.
func (r *repository) CancelConfirmed(ctx context.Context, bookingID string) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE booking_id = $1 AND status = 'confirmed'
	`

	result, err := r.db.ExecContext(ctx, query, bookingID)
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

	exists, err := db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_id = $1)`, bookingID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookingNotFound
	}

	return ErrAlreadyCancelled
}

func (r *repository) ListByGym(ctx context.Context, gymID string) ([]Booking, error) {
	query := `
		SELECT booking_id, gym_id, slot_id, user_name, user_phone, date, time_slot, status, booking_timestamp
		FROM bookings
		WHERE gym_id = $1
		ORDER BY booking_timestamp DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, gymID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
