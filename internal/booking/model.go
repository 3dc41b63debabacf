package booking

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is append-only apart from the single confirmed -> cancelled
// transition. Date and the time_slot label are copied from the slot at
// reservation time so the booking stays readable if slot details ever move.
type Booking struct {
	BookingID        string    `db:"booking_id" json:"booking_id"`
	GymID            string    `db:"gym_id" json:"gym_id"`
	SlotID           string    `db:"slot_id" json:"slot_id"`
	UserName         string    `db:"user_name" json:"user_name"`
	UserPhone        string    `db:"user_phone" json:"user_phone"`
	Date             string    `db:"date" json:"date"`
	Label            string    `db:"time_slot" json:"time_slot"`
	Status           string    `db:"status" json:"status"`
	BookingTimestamp time.Time `db:"booking_timestamp" json:"booking_timestamp"`
}

type BookRequest struct {
	GymID     string `json:"gym_id" binding:"required"`
	SlotID    string `json:"slot_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	UserPhone string `json:"user_phone"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"time_slot"`
}
