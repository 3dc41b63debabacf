package slot

import "time"

// TimeSlot is keyed by the composite (gym_id, slot_id). Date and times are
// stored in their canonical string forms ("2006-01-02", "15:04"); HH:MM
// compares correctly as text, which the availability ordering relies on.
// Slots are never deleted: cancelled history stays queryable.
type TimeSlot struct {
	GymID       string    `db:"gym_id" json:"gym_id"`
	SlotID      string    `db:"slot_id" json:"slot_id"`
	Date        string    `db:"date" json:"date"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	Label       string    `db:"time_slot" json:"time_slot"`
	Capacity    int       `db:"capacity" json:"capacity"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateTimeSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
}
