package booking

import "context"

// Repository is the Bookings collection of the store adapter. Creation is
// append-only under a fresh unique key; the only mutation is the conditional
// confirmed -> cancelled transition.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, bookingID string) (*Booking, error)

	// CancelConfirmed transitions status to cancelled iff it is currently
	// confirmed, as one atomic write. Returns nil on success,
	// ErrAlreadyCancelled when the precondition fails, ErrBookingNotFound
	// when the key is absent.
	CancelConfirmed(ctx context.Context, bookingID string) error

	ListByGym(ctx context.Context, gymID string) ([]Booking, error)
}
