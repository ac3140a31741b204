package models

import "time"

// Course represents a course row owned by the course service.
type Course struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Credits   int32     `json:"credits"`
	Lecturer  string    `json:"lecturer"`
	CreatedAt time.Time `json:"created_at"`
}
