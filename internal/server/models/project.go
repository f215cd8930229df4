package models

import "time"

// Project groups related work under a name, with the same status/due
// tracking as tasks.
type Project struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"-"`
	Name      string    `bson:"name" json:"name"`
	Status    Status    `bson:"status" json:"status"`
	Due       time.Time `bson:"due" json:"due"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProjectPatch describes a partial project update. Nil fields are left unchanged.
type ProjectPatch struct {
	Name   *string    `json:"name"`
	Status *Status    `json:"status"`
	Due    *time.Time `json:"due"`
}
