package gym

import "context"

// Repository is the Gyms collection of the store adapter: keyed gets and
// puts plus the two secondary-index queries (email lookup for login,
// location substring for search).
type Repository interface {
	Create(ctx context.Context, g *Gym) error
	GetByID(ctx context.Context, gymID string) (*Gym, error)
	FindByEmail(ctx context.Context, email string) (*Gym, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SearchByLocation(ctx context.Context, locationSubstring string) ([]Gym, error)
}
