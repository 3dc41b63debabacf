package search

import (
	"context"

	"gymbook/internal/gym"
	"gymbook/internal/metrics"
	"gymbook/internal/slot"
)

// Result pairs a matched gym with its open slots for the requested date.
type Result struct {
	Gym            gym.Summary     `json:"gym"`
	AvailableSlots []slot.TimeSlot `json:"available_slots"`
}

type Service interface {
	SearchGyms(ctx context.Context, locationSubstring, date string) ([]Result, error)
}

type service struct {
	gyms  gym.Repository
	slots slot.Registry
	cache *GymCache
}

// NewService composes the gym collection and the slot registry. cache may be
// nil, in which case every search goes straight to the store.
func NewService(gyms gym.Repository, slots slot.Registry, cache *GymCache) Service {
	return &service{
		gyms:  gyms,
		slots: slots,
		cache: cache,
	}
}

// SearchGyms is pure composition: no mutation anywhere on this path. Gym rows
// may come from the cache; availability never does.
func (s *service) SearchGyms(ctx context.Context, locationSubstring, date string) ([]Result, error) {
	var gyms []gym.Gym

	switch {
	case s.cache == nil:
		metrics.RecordSearch("bypass")
	default:
		if cached, ok := s.cache.Get(ctx, locationSubstring); ok {
			metrics.RecordSearch("hit")
			gyms = cached
		} else {
			metrics.RecordSearch("miss")
		}
	}

	if gyms == nil {
		found, err := s.gyms.SearchByLocation(ctx, locationSubstring)
		if err != nil {
			return nil, err
		}
		gyms = found

		if s.cache != nil {
			s.cache.Set(ctx, locationSubstring, gyms)
		}
	}

	results := make([]Result, 0, len(gyms))
	for i := range gyms {
		available, err := s.slots.ListAvailable(ctx, gyms[i].GymID, date)
		if err != nil {
			return nil, err
		}

		results = append(results, Result{
			Gym:            gyms[i].Summary(),
			AvailableSlots: available,
		})
	}

	return results, nil
}
