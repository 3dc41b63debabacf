package booking

import (
	"context"
	"errors"
	"fmt"

	"gymbook/internal/logger"
	"gymbook/internal/metrics"
	"gymbook/internal/slot"

	"github.com/google/uuid"
)

var (
	// ErrSlotUnavailable is the expected lost-the-race outcome, not a fault:
	// another reservation won the slot first.
	ErrSlotUnavailable = errors.New("time slot is not available")
	ErrSlotNotFound    = errors.New("time slot not found")
)

// Engine owns the Booking lifecycle and the reserve/release protocol against
// the slot registry. The registry's TryReserve is the only concurrency
// control in the system; the engine never reads availability before writing.
type Engine interface {
	ReserveSession(ctx context.Context, req BookRequest) (*Booking, error)
	CancelBooking(ctx context.Context, gymID, bookingID string) (*Booking, error)
	ListBookingsForGym(ctx context.Context, gymID string) ([]Booking, error)
	ListSlotsForGym(ctx context.Context, gymID string) ([]slot.TimeSlot, error)
}

type engine struct {
	repo  Repository
	slots slot.Registry
}

func NewEngine(repo Repository, slots slot.Registry) Engine {
	return &engine{
		repo:  repo,
		slots: slots,
	}
}

// ReserveSession reserves the slot first and records the booking second. The
// slot flip has to win the race before any booking row exists; the reverse
// order could leave two confirmed bookings pointing at one slot.
func (e *engine) ReserveSession(ctx context.Context, req BookRequest) (*Booking, error) {
	if err := e.slots.TryReserve(ctx, req.GymID, req.SlotID); err != nil {
		switch {
		case errors.Is(err, slot.ErrSlotNotFound):
			metrics.RecordReservation("not_found")
			return nil, ErrSlotNotFound
		case errors.Is(err, slot.ErrSlotUnavailable):
			metrics.RecordReservation("conflict")
			return nil, ErrSlotUnavailable
		default:
			metrics.RecordReservation("error")
			return nil, fmt.Errorf("reserve slot: %w", err)
		}
	}

	b := &Booking{
		BookingID: uuid.NewString(),
		GymID:     req.GymID,
		SlotID:    req.SlotID,
		UserName:  req.UserName,
		UserPhone: req.UserPhone,
		Date:      req.Date,
		Label:     req.TimeSlot,
		Status:    StatusConfirmed,
	}

	if err := e.repo.Create(ctx, b); err != nil {
		// The slot is flipped but no booking records it. Roll the flip back
		// best-effort; if that also fails the slot stays falsely unavailable,
		// which a reconciliation sweep can repair. The reverse leak (an
		// available slot with a live booking) is never possible from here.
		e.compensate(ctx, req.GymID, req.SlotID)
		metrics.RecordReservation("error")
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	metrics.RecordReservation("confirmed")
	logger.Infof("Booking %s confirmed for slot %s/%s", b.BookingID, b.GymID, b.SlotID)

	return b, nil
}

func (e *engine) compensate(ctx context.Context, gymID, slotID string) {
	metrics.RecordCompensationRelease()
	if err := e.slots.Release(ctx, gymID, slotID); err != nil {
		logger.Errorf("Compensation release failed for slot %s/%s: %v", gymID, slotID, err)
	}
}

// CancelBooking marks the booking cancelled before releasing the slot. A
// crash between the two writes leaves a cancelled booking with a falsely
// unavailable slot, which is recoverable; releasing first could hand the
// slot to a second booking while the first is still confirmed.
func (e *engine) CancelBooking(ctx context.Context, gymID, bookingID string) (*Booking, error) {
	b, err := e.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			metrics.RecordCancellation("not_found")
		} else {
			metrics.RecordCancellation("error")
		}
		return nil, err
	}

	// Gyms may only cancel their own bookings; report foreign bookings as
	// absent rather than confirming they exist.
	if gymID != "" && b.GymID != gymID {
		metrics.RecordCancellation("not_found")
		return nil, ErrBookingNotFound
	}

	if err := e.repo.CancelConfirmed(ctx, bookingID); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyCancelled):
			metrics.RecordCancellation("already_cancelled")
		case errors.Is(err, ErrBookingNotFound):
			metrics.RecordCancellation("not_found")
		default:
			metrics.RecordCancellation("error")
		}
		return nil, err
	}

	b.Status = StatusCancelled

	if err := e.slots.Release(ctx, b.GymID, b.SlotID); err != nil {
		// The booking is cancelled either way; the stuck slot is left for
		// reconciliation rather than retried inline.
		metrics.RecordCancellation("error")
		logger.Errorf("Release after cancel failed for slot %s/%s: %v", b.GymID, b.SlotID, err)
		return b, fmt.Errorf("release slot after cancel: %w", err)
	}

	metrics.RecordCancellation("cancelled")
	logger.Infof("Booking %s cancelled, slot %s/%s released", b.BookingID, b.GymID, b.SlotID)

	return b, nil
}

func (e *engine) ListBookingsForGym(ctx context.Context, gymID string) ([]Booking, error) {
	return e.repo.ListByGym(ctx, gymID)
}

func (e *engine) ListSlotsForGym(ctx context.Context, gymID string) ([]slot.TimeSlot, error) {
	return e.slots.ListByGym(ctx, gymID)
}
