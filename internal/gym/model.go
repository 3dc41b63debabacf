package gym

import "time"

// Gym is both the facility record and the owner account: the registering
// owner's contact info and credential live on the gym row, matching the
// single-owner model of the Gyms collection.
type Gym struct {
	GymID        string    `db:"gym_id" json:"gym_id"`
	OwnerName    string    `db:"owner_name" json:"owner_name"`
	Phone        string    `db:"phone" json:"phone"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	GymName      string    `db:"gym_name" json:"gym_name"`
	Location     string    `db:"location" json:"location"`
	Description  string    `db:"description" json:"description"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Summary is the public projection used in search results.
type Summary struct {
	GymID       string `json:"gym_id"`
	GymName     string `json:"gym_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	OwnerName   string `json:"owner_name"`
}

func (g *Gym) Summary() Summary {
	return Summary{
		GymID:       g.GymID,
		GymName:     g.GymName,
		Location:    g.Location,
		Description: g.Description,
		OwnerName:   g.OwnerName,
	}
}

type RegisterRequest struct {
	OwnerName   string `json:"owner_name" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	GymName     string `json:"gym_name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Gym          Gym    `json:"gym"`
}
