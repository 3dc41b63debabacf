package gym

import (
	"context"
	"errors"

	"gymbook/internal/auth"
	"gymbook/internal/metrics"

	"github.com/google/uuid"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Gym, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*Gym, string, string, error)
	GetByID(ctx context.Context, gymID string) (*Gym, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *Gym, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Gym, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	g := &Gym{
		GymID:        uuid.NewString(),
		OwnerName:    req.OwnerName,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: passwordHash,
		GymName:      req.GymName,
		Location:     req.Location,
		Description:  req.Description,
		Status:       "active",
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, "", "", err
	}

	metrics.RecordGymRegistered()

	accessToken, refreshToken, err := auth.GenerateTokens(g.GymID, g.Email, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return g, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Gym, string, string, error) {
	g, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !auth.CheckPassword(g.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(g.GymID, g.Email, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return g, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, gymID string) (*Gym, error) {
	return s.repo.GetByID(ctx, gymID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *Gym, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	g, err := s.repo.GetByID(ctx, claims.GymID)
	if err != nil {
		return "", nil, ErrGymNotFound
	}

	return newAccessToken, g, nil
}
