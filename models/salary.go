package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LedgerEntry struct {
	Label  string  `json:"label" bson:"label"`
	Amount float64 `json:"amount" bson:"amount"`
}

type SalaryRecord struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StaffID         primitive.ObjectID `json:"staff_id" bson:"staff_id,omitempty"`
	PeriodStart     string             `json:"period_start" bson:"period_start,omitempty"`
	PeriodEnd       string             `json:"period_end" bson:"period_end,omitempty"`
	HoursWorked     float64            `json:"hours_worked" bson:"hours_worked"`
	HourlyTotal     float64            `json:"hourly_total" bson:"hourly_total"`
	CommissionTotal float64            `json:"commission_total" bson:"commission_total"`
	FixedSalary     float64            `json:"fixed_salary" bson:"fixed_salary"`
	Bonuses         []LedgerEntry      `json:"bonuses" bson:"bonuses"`
	Deductions      []LedgerEntry      `json:"deductions" bson:"deductions"`
	NetPay          float64            `json:"net_pay" bson:"net_pay"`
	Status          string             `json:"status" bson:"status,omitempty"`
	PaidAt          *time.Time         `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type SalaryWithStaff struct {
	SalaryRecord `bson:",inline"`
	StaffName    string `json:"staff_name" bson:"staff_name"`
	StaffEmail   string `json:"staff_email" bson:"staff_email"`
	Position     string `json:"position,omitempty" bson:"position,omitempty"`
}

type SalaryCreatePayload struct {
	StaffID     string  `json:"staff_id" validate:"required"`
	PeriodStart string  `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string  `json:"period_end" validate:"required,datetime=2006-01-02,dategtefield=PeriodStart"`
	HoursWorked float64 `json:"hours_worked" validate:"min=0"`
	Notes       string  `json:"notes"`
}

type SalaryHoursUpdatePayload struct {
	HoursWorked float64 `json:"hours_worked" validate:"min=0"`
}

type LedgerEntryPayload struct {
	Label  string  `json:"label" validate:"required,min=1,max=100"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type SalaryStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=Generated Approved Paid"`
}
