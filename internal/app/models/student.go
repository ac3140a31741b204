package models

import "time"

// Student represents a student row owned by the student service.
// The identifier is store-assigned and never mutated after creation.
type Student struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
