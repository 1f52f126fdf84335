package reconcile

import (
	"errors"
	"time"

	"Sistem-Manajemen-Gym/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidTransition = errors.New("request sudah diproses, status approved/rejected bersifat final")

// Decision adalah keputusan admin atas sebuah request.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const dateLayout = "2006-01-02"

// SideEffects mendeskripsikan mutasi member yang harus diterapkan caller.
// Paket ini hanya memutuskan APA yang berubah, persistensinya urusan handler.
type SideEffects struct {
	UpdateMember   bool
	MemberID       primitive.ObjectID
	PlanID         primitive.ObjectID
	MembershipFrom string
	MembershipTo   string
	MemberStatus   string
}

// NewPendingRequest membangun request baru berstatus pending dengan kedua
// timestamp terisi. Timestamp wajib diisi di sini: field bson-nya omitempty,
// zero time akan hilang dari dokumen dan merusak sort created_at.
func NewPendingRequest(memberID primitive.ObjectID, kind, note string, now time.Time) models.Request {
	return models.Request{
		MemberID:  memberID,
		Kind:      kind,
		Status:    StatusPending,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ProcessRequest menjalankan transisi status pending -> approved/rejected.
// Request yang sudah terminal tidak pernah diproses ulang.
//
// Approval renewal menghasilkan side effect: plan aktif member diganti dan
// jendela membership dihitung dari start_date + validity_days plan. Approval
// booking sengaja TIDAK memutasi data member, hanya menandai request
// approved; kontrak side effect keduanya berbeda dan tidak boleh disatukan.
func ProcessRequest(req models.Request, decision Decision, plan *models.Plan) (models.Request, SideEffects, error) {
	if req.Status != StatusPending {
		return req, SideEffects{}, ErrInvalidTransition
	}

	now := time.Now()

	switch decision {
	case DecisionRejected:
		req.Status = StatusRejected
		req.UpdatedAt = now
		return req, SideEffects{}, nil

	case DecisionApproved:
		req.Status = StatusApproved
		req.UpdatedAt = now

		if req.Kind != "renewal" {
			return req, SideEffects{}, nil
		}

		effects := SideEffects{
			UpdateMember:   true,
			MemberID:       req.MemberID,
			PlanID:         req.PlanID,
			MembershipFrom: req.StartDate,
			MemberStatus:   "Active",
		}
		if plan != nil {
			effects.MembershipTo = addDays(req.StartDate, plan.ValidityDays)
		}
		return req, effects, nil

	default:
		return req, SideEffects{}, ErrInvalidTransition
	}
}

func addDays(dateStr string, days int) string {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, days).Format(dateLayout)
}
