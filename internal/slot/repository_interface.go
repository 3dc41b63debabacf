package slot

import "context"

// Repository is the TimeSlots collection of the store adapter. TryReserve is
// the single conditional-update primitive the whole booking protocol leans
// on; everything else is plain keyed access.
type Repository interface {
	Create(ctx context.Context, s *TimeSlot) error
	GetByID(ctx context.Context, gymID, slotID string) (*TimeSlot, error)
	ListAvailable(ctx context.Context, gymID, date string) ([]TimeSlot, error)
	ListByGym(ctx context.Context, gymID string) ([]TimeSlot, error)

	// TryReserve flips is_available false iff it is currently true, as one
	// atomic storage write. Returns nil on success, ErrSlotUnavailable when
	// the precondition fails, ErrSlotNotFound when the key is absent.
	TryReserve(ctx context.Context, gymID, slotID string) error

	// Release flips is_available back to true. Idempotent: releasing an
	// already-available slot is a no-op, missing keys are ErrSlotNotFound.
	Release(ctx context.Context, gymID, slotID string) error
}
