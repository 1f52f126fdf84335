package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name,omitempty"`
	Email        string             `json:"email" bson:"email,omitempty"`
	Password     string             `json:"password,omitempty" bson:"password,omitempty"`
	Role         string             `json:"role" bson:"role,omitempty"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Photo        string             `json:"photo,omitempty" bson:"photo,omitempty"`
	IsFirstLogin bool               `json:"is_first_login" bson:"isFirstLogin,omitempty"`

	// Profil kompensasi, hanya terisi untuk role staf
	Position              string  `json:"position,omitempty" bson:"position,omitempty"`
	HourlyRate            float64 `json:"hourly_rate,omitempty" bson:"hourly_rate,omitempty"`
	CommissionRatePercent float64 `json:"commission_rate_percent,omitempty" bson:"commission_rate_percent,omitempty"`
	FixedSalary           float64 `json:"fixed_salary,omitempty" bson:"fixed_salary,omitempty"`

	// Data keanggotaan, hanya terisi untuk role member
	Interest       string             `json:"interest,omitempty" bson:"interest,omitempty"`
	PlanID         primitive.ObjectID `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	MembershipFrom string             `json:"membership_from,omitempty" bson:"membership_from,omitempty"`
	MembershipTo   string             `json:"membership_to,omitempty" bson:"membership_to,omitempty"`
	Status         string             `json:"status,omitempty" bson:"status,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	Name                  string  `json:"name" validate:"required,min=3,max=100"`
	Email                 string  `json:"email" validate:"required,email"`
	Password              string  `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role                  string  `json:"role" validate:"required,oneof=admin staf member"`
	Phone                 string  `json:"phone" validate:"omitempty,min=8,max=20"`
	Address               string  `json:"address" validate:"omitempty,min=5,max=255"`
	Photo                 string  `json:"photo" validate:"omitempty,url"`
	Position              string  `json:"position"`
	HourlyRate            float64 `json:"hourly_rate" validate:"min=0"`
	CommissionRatePercent float64 `json:"commission_rate_percent" validate:"min=0,max=100"`
	FixedSalary           float64 `json:"fixed_salary" validate:"min=0"`
	Interest              string  `json:"interest" validate:"omitempty,oneof='Personal Training' 'Group Classes' General Both"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdatePayload struct {
	Name                  string   `json:"name,omitempty"`
	Email                 string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 string   `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Address               string   `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
	Photo                 string   `json:"photo,omitempty" validate:"omitempty,url"`
	Position              string   `json:"position,omitempty"`
	HourlyRate            *float64 `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
	CommissionRatePercent *float64 `json:"commission_rate_percent,omitempty" validate:"omitempty,min=0,max=100"`
	FixedSalary           *float64 `json:"fixed_salary,omitempty" validate:"omitempty,min=0"`
	Interest              string   `json:"interest,omitempty" validate:"omitempty,oneof='Personal Training' 'Group Classes' General Both"`
	PlanID                string   `json:"plan_id,omitempty"`
	Status                string   `json:"status,omitempty"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50,hasuppercase"`
}

type PlanCount struct {
	PlanName string `bson:"_id" json:"plan_name"`
	Count    int64  `bson:"count" json:"count"`
}

type DashboardStats struct {
	TotalMember         int64       `json:"total_member"`
	MemberAktif         int64       `json:"member_aktif"`
	TotalStaf           int64       `json:"total_staf"`
	TotalPlan           int64       `json:"total_plan"`
	PendingRequestCount int64       `json:"pending_request_count"`
	KehadiranHariIni    int64       `json:"kehadiran_hari_ini"`
	DistribusiPlan      []PlanCount `json:"distribusi_plan"`
	AktivitasTerbaru    []string    `json:"aktivitas_terbaru"`
}
