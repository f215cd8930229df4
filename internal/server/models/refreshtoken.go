package models

import "time"

// RefreshToken is an opaque server-side credential that lets a client obtain
// a new access token. Deleting it revokes the session.
type RefreshToken struct {
	Token   string    `bson:"_id"`
	UserID  string    `bson:"user_id"`
	Expires time.Time `bson:"expires"`
}
