package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassSchedule struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	TrainerID      primitive.ObjectID `json:"trainer_id,omitempty" bson:"trainer_id,omitempty"`
	Date           string             `json:"date" bson:"date"` // tanggal MULAI jadwal
	StartTime      string             `json:"start_time" bson:"start_time"`
	EndTime        string             `json:"end_time" bson:"end_time"`
	Capacity       int                `json:"capacity" bson:"capacity"`
	Note           string             `json:"note,omitempty" bson:"note,omitempty"`
	RecurrenceRule string             `json:"recurrence_rule,omitempty" bson:"recurrence_rule,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type ClassScheduleCreatePayload struct {
	Name           string `json:"name" validate:"required,min=3,max=100"`
	TrainerID      string `json:"trainer_id" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity       int    `json:"capacity" validate:"required,gt=0"`
	Note           string `json:"note"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

type ClassScheduleUpdatePayload struct {
	Name           string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Date           string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime      string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime        string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Capacity       *int   `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Note           string `json:"note,omitempty"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
}

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
