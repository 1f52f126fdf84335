package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	AssigneeID  primitive.ObjectID `json:"assignee_id" bson:"assignee_id,omitempty"`
	DueDate     string             `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Status      string             `json:"status" bson:"status,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type TaskCreatePayload struct {
	Title       string `json:"title" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	AssigneeID  string `json:"assignee_id" validate:"required"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type TaskUpdatePayload struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	AssigneeID  string `json:"assignee_id,omitempty"`
	DueDate     string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress done"`
}
