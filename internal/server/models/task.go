package models

import "time"

// Task is a single to-do item owned by a user.
type Task struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"-"`
	Title     string    `bson:"title" json:"title"`
	Status    Status    `bson:"status" json:"status"`
	Due       time.Time `bson:"due" json:"due"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// TaskPatch describes a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title  *string    `json:"title"`
	Status *Status    `json:"status"`
	Due    *time.Time `json:"due"`
}
