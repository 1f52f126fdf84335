package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request mewakili pengajuan perpanjangan membership (renewal) atau
// booking kelas dari member. Status terminal setelah approved/rejected.
type Request struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MemberID        primitive.ObjectID `json:"member_id" bson:"member_id,omitempty"`
	PlanID          primitive.ObjectID `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	ClassScheduleID primitive.ObjectID `json:"class_schedule_id,omitempty" bson:"class_schedule_id,omitempty"`
	Kind            string             `json:"kind" bson:"kind,omitempty"`
	StartDate       string             `json:"start_date,omitempty" bson:"start_date,omitempty"`
	Status          string             `json:"status" bson:"status,omitempty"`
	Note            string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type RequestWithDetails struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	MemberID    primitive.ObjectID `json:"member_id" bson:"member_id"`
	PlanID      primitive.ObjectID `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	Kind        string             `json:"kind" bson:"kind"`
	StartDate   string             `json:"start_date,omitempty" bson:"start_date,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Note        string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	MemberName  string             `json:"member_name" bson:"member_name"`
	MemberEmail string             `json:"member_email" bson:"member_email"`
	PlanName    string             `json:"plan_name,omitempty" bson:"plan_name,omitempty"`
	PlanPrice   float64            `json:"plan_price,omitempty" bson:"plan_price,omitempty"`
}

type RequestCreatePayload struct {
	Kind            string `json:"kind" validate:"required,oneof=renewal booking"`
	PlanID          string `json:"plan_id" validate:"required_if=Kind renewal"`
	ClassScheduleID string `json:"class_schedule_id" validate:"required_if=Kind booking"`
	StartDate       string `json:"start_date" validate:"required_if=Kind renewal,omitempty,datetime=2006-01-02"`
	Note            string `json:"note" validate:"omitempty,max=500"`
}

type RequestDecisionPayload struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Note   string `json:"note,omitempty"`
}
