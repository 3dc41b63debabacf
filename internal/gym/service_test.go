package gym

import (
	"context"
	"testing"

	"gymbook/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

type MockGymRepo struct{ mock.Mock }

func (m *MockGymRepo) Create(ctx context.Context, g *Gym) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGymRepo) GetByID(ctx context.Context, gymID string) (*Gym, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockGymRepo) FindByEmail(ctx context.Context, email string) (*Gym, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockGymRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockGymRepo) SearchByLocation(ctx context.Context, locationSubstring string) ([]Gym, error) {
	args := m.Called(ctx, locationSubstring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		OwnerName: "Jane Doe",
		Phone:     "555-0101",
		Email:     "jane@ironworks.example",
		Password:  "correct horse",
		GymName:   "Iron Works",
		Location:  "Downtown Springfield",
	}
}

func TestRegister(t *testing.T) {
	repo := new(MockGymRepo)
	repo.On("EmailExists", mock.Anything, "jane@ironworks.example").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*gym.Gym")).Return(nil)

	svc := NewService(repo, testSecret)
	g, access, refresh, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, g.GymID)
	assert.Equal(t, "active", g.Status)
	assert.NotEqual(t, "correct horse", g.PasswordHash)
	assert.True(t, auth.CheckPassword(g.PasswordHash, "correct horse"))
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := auth.ValidateToken(access, testSecret)
	require.NoError(t, err)
	assert.Equal(t, g.GymID, claims.GymID)

	repo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(MockGymRepo)
	repo.On("EmailExists", mock.Anything, "jane@ironworks.example").Return(true, nil)

	svc := NewService(repo, testSecret)
	_, _, _, err := svc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	stored := &Gym{
		GymID:        "g1",
		Email:        "jane@ironworks.example",
		PasswordHash: hash,
		GymName:      "Iron Works",
		Status:       "active",
	}

	repo := new(MockGymRepo)
	repo.On("FindByEmail", mock.Anything, "jane@ironworks.example").Return(stored, nil)

	svc := NewService(repo, testSecret)

	g, access, refresh, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@ironworks.example",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "g1", g.GymID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	repo := new(MockGymRepo)
	repo.On("FindByEmail", mock.Anything, "jane@ironworks.example").Return(&Gym{
		GymID:        "g1",
		PasswordHash: hash,
	}, nil)

	svc := NewService(repo, testSecret)

	_, _, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "jane@ironworks.example",
		Password: "wrong battery staple",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockGymRepo)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, ErrGymNotFound)

	svc := NewService(repo, testSecret)

	// unknown email and wrong password are indistinguishable to the caller
	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	repo := new(MockGymRepo)
	repo.On("EmailExists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, testSecret)
	g, _, refresh, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, g.GymID).Return(g, nil)

	access, got, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, g.GymID, got.GymID)

	claims, err := auth.ValidateToken(access, testSecret)
	require.NoError(t, err)
	assert.Equal(t, g.GymID, claims.GymID)
}
