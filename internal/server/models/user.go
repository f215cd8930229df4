package models

import "time"

// User is a registered account. PasswordHash never leaves the server: it is
// excluded from JSON and must not be logged.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash []byte    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"-"`
}
