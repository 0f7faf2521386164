package models

import "time"

// User mirrors the external identity directory. This service only ever reads
// it to resolve a buyer or cart owner by id.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
