package reconcile

import (
	"testing"
	"time"

	"Sistem-Manajemen-Gym/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProcessRequestRenewalApproved(t *testing.T) {
	memberID := primitive.NewObjectID()
	planID := primitive.NewObjectID()
	plan := &models.Plan{ID: planID, Name: "Member Umum", ValidityDays: 30}

	req := models.Request{
		MemberID:  memberID,
		PlanID:    planID,
		Kind:      "renewal",
		StartDate: "2024-01-01",
		Status:    StatusPending,
	}

	updated, effects, err := ProcessRequest(req, DecisionApproved, plan)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, updated.Status)
	assert.True(t, effects.UpdateMember)
	assert.Equal(t, memberID, effects.MemberID)
	assert.Equal(t, planID, effects.PlanID)
	assert.Equal(t, "2024-01-01", effects.MembershipFrom)
	assert.Equal(t, "2024-01-31", effects.MembershipTo)
	assert.Equal(t, "Active", effects.MemberStatus)
}

func TestProcessRequestBookingApproved(t *testing.T) {
	req := models.Request{
		MemberID: primitive.NewObjectID(),
		Kind:     "booking",
		Status:   StatusPending,
	}

	updated, effects, err := ProcessRequest(req, DecisionApproved, nil)
	require.NoError(t, err)

	// Approval booking tidak memutasi data member, hanya status request.
	assert.Equal(t, StatusApproved, updated.Status)
	assert.False(t, effects.UpdateMember)
	assert.Empty(t, effects.MembershipFrom)
}

func TestProcessRequestRejected(t *testing.T) {
	req := models.Request{
		MemberID: primitive.NewObjectID(),
		Kind:     "renewal",
		PlanID:   primitive.NewObjectID(),
		Status:   StatusPending,
	}

	updated, effects, err := ProcessRequest(req, DecisionRejected, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, updated.Status)
	assert.False(t, effects.UpdateMember)
}

func TestProcessRequestTerminalStates(t *testing.T) {
	for _, status := range []string{StatusApproved, StatusRejected} {
		t.Run(status, func(t *testing.T) {
			req := models.Request{
				MemberID: primitive.NewObjectID(),
				Kind:     "renewal",
				Status:   status,
			}

			updated, effects, err := ProcessRequest(req, DecisionApproved, nil)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, status, updated.Status)
			assert.False(t, effects.UpdateMember)
		})
	}
}

func TestProcessRequestUnknownDecision(t *testing.T) {
	req := models.Request{Status: StatusPending, Kind: "renewal"}

	_, _, err := ProcessRequest(req, Decision("maybe"), nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAddDaysAcrossMonthBoundary(t *testing.T) {
	plan := &models.Plan{ValidityDays: 90}
	req := models.Request{
		Kind:      "renewal",
		StartDate: "2024-12-15",
		Status:    StatusPending,
	}

	_, effects, err := ProcessRequest(req, DecisionApproved, plan)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", effects.MembershipTo)
}

func TestNewPendingRequest(t *testing.T) {
	memberID := primitive.NewObjectID()
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	req := NewPendingRequest(memberID, "renewal", "perpanjang sebulan", now)

	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, memberID, req.MemberID)
	assert.Equal(t, "renewal", req.Kind)
	assert.Equal(t, "perpanjang sebulan", req.Note)
	assert.Equal(t, now, req.CreatedAt)
	assert.Equal(t, now, req.UpdatedAt)
	assert.False(t, req.CreatedAt.IsZero())

	// field omitempty: timestamp harus benar-benar masuk dokumen tersimpan
	doc, err := bson.Marshal(req)
	require.NoError(t, err)
	var stored bson.M
	require.NoError(t, bson.Unmarshal(doc, &stored))
	assert.Contains(t, stored, "created_at")
	assert.Contains(t, stored, "updated_at")
}
