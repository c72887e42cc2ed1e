package models

import "time"

// Task is one board entry. Day is the weekday column (0–6) and Position is
// the zero-based rank inside the (owner, day) bucket.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Day         int       `json:"day"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
}
