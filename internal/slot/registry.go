package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymbook/internal/logger"
	"gymbook/internal/metrics"

	"github.com/google/uuid"
)

var ErrInvalidSlot = errors.New("invalid time slot")

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Registry owns the TimeSlot lifecycle. Only the booking engine toggles
// availability, and only through TryReserve / Release.
type Registry interface {
	CreateSlot(ctx context.Context, gymID string, req CreateTimeSlotRequest) (*TimeSlot, error)
	ListAvailable(ctx context.Context, gymID, date string) ([]TimeSlot, error)
	ListByGym(ctx context.Context, gymID string) ([]TimeSlot, error)
	TryReserve(ctx context.Context, gymID, slotID string) error
	Release(ctx context.Context, gymID, slotID string) error
}

type registry struct {
	repo Repository
}

func NewRegistry(repo Repository) Registry {
	return &registry{repo: repo}
}

func (r *registry) CreateSlot(ctx context.Context, gymID string, req CreateTimeSlotRequest) (*TimeSlot, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSlot)
	}

	start, err := time.Parse(timeLayout, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time must be HH:MM", ErrInvalidSlot)
	}

	end, err := time.Parse(timeLayout, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time must be HH:MM", ErrInvalidSlot)
	}

	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", ErrInvalidSlot)
	}

	if req.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", ErrInvalidSlot)
	}

	s := &TimeSlot{
		GymID:     gymID,
		SlotID:    uuid.NewString(),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Label:     req.StartTime + " - " + req.EndTime,
		Capacity:  req.Capacity,
	}

	if err := r.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	metrics.RecordSlotCreated()
	logger.Infof("Created slot %s for gym %s on %s (%s)", s.SlotID, gymID, s.Date, s.Label)

	return s, nil
}

func (r *registry) ListAvailable(ctx context.Context, gymID, date string) ([]TimeSlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSlot)
	}
	return r.repo.ListAvailable(ctx, gymID, date)
}

func (r *registry) ListByGym(ctx context.Context, gymID string) ([]TimeSlot, error) {
	return r.repo.ListByGym(ctx, gymID)
}

func (r *registry) TryReserve(ctx context.Context, gymID, slotID string) error {
	return r.repo.TryReserve(ctx, gymID, slotID)
}

func (r *registry) Release(ctx context.Context, gymID, slotID string) error {
	return r.repo.Release(ctx, gymID, slotID)
}
