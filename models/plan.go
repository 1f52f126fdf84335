package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Plan struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Sessions     int                `json:"sessions" bson:"sessions"`
	ValidityDays int                `json:"validity_days" bson:"validity_days"`
	Price        float64            `json:"price" bson:"price"`
	Type         string             `json:"type" bson:"type"`
	TrainerType  string             `json:"trainer_type,omitempty" bson:"trainer_type,omitempty"`
	Active       bool               `json:"active" bson:"active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type PlanCreatePayload struct {
	Name         string  `json:"name" validate:"required,min=3,max=100"`
	Sessions     int     `json:"sessions" validate:"required,gt=0"`
	ValidityDays int     `json:"validity_days" validate:"required,gt=0"`
	Price        float64 `json:"price" validate:"min=0"`
	Type         string  `json:"type" validate:"required,oneof=group personal member"`
	TrainerType  string  `json:"trainer_type" validate:"omitempty,oneof=personal general"`
	Active       *bool   `json:"active"`
}

type PlanUpdatePayload struct {
	Name         string   `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Sessions     *int     `json:"sessions,omitempty" validate:"omitempty,gt=0"`
	ValidityDays *int     `json:"validity_days,omitempty" validate:"omitempty,gt=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Type         string   `json:"type,omitempty" validate:"omitempty,oneof=group personal member"`
	TrainerType  string   `json:"trainer_type,omitempty" validate:"omitempty,oneof=personal general"`
	Active       *bool    `json:"active,omitempty"`
}
