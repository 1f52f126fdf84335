package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sistem-Manajemen-Gym/models"
)

func TestValidateStructRegisterPayload(t *testing.T) {
	t.Run("payload valid", func(t *testing.T) {
		payload := models.UserRegisterPayload{
			Name:     "Budi Santoso",
			Email:    "budi@gmail.com",
			Password: "Rahasia123",
			Role:     "member",
			Interest: "Personal Training",
		}
		assert.Nil(t, ValidateStruct(payload))
	})

	t.Run("password tanpa huruf kapital", func(t *testing.T) {
		payload := models.UserRegisterPayload{
			Name:     "Budi Santoso",
			Email:    "budi@gmail.com",
			Password: "rahasia123",
			Role:     "member",
		}
		errs := ValidateStruct(payload)
		require.Len(t, errs, 1)
		assert.Equal(t, "hasuppercase", errs[0].Tag)
		assert.Equal(t, "Password harus mengandung setidaknya satu huruf kapital.", errs[0].Msg)
	})

	t.Run("role di luar daftar", func(t *testing.T) {
		payload := models.UserRegisterPayload{
			Name:     "Budi Santoso",
			Email:    "budi@gmail.com",
			Password: "Rahasia123",
			Role:     "supervisor",
		}
		errs := ValidateStruct(payload)
		require.Len(t, errs, 1)
		assert.Equal(t, "oneof", errs[0].Tag)
	})
}

func TestValidateStructRequestPayload(t *testing.T) {
	t.Run("renewal tanpa plan_id ditolak", func(t *testing.T) {
		payload := models.RequestCreatePayload{Kind: "renewal", StartDate: "2024-01-01"}
		errs := ValidateStruct(payload)
		require.Len(t, errs, 1)
		assert.Equal(t, "PlanID", errs[0].Field)
		assert.Equal(t, "required_if", errs[0].Tag)
	})

	t.Run("booking tanpa class_schedule_id ditolak", func(t *testing.T) {
		payload := models.RequestCreatePayload{Kind: "booking"}
		errs := ValidateStruct(payload)
		require.Len(t, errs, 1)
		assert.Equal(t, "ClassScheduleID", errs[0].Field)
	})

	t.Run("booking lengkap valid", func(t *testing.T) {
		payload := models.RequestCreatePayload{Kind: "booking", ClassScheduleID: "66b1f0a2e4b0c53d2f8a9b11"}
		assert.Nil(t, ValidateStruct(payload))
	})
}

func TestValidateStructSalaryPayloads(t *testing.T) {
	t.Run("periode terbalik ditolak", func(t *testing.T) {
		payload := models.SalaryCreatePayload{
			StaffID:     "66b1f0a2e4b0c53d2f8a9b11",
			PeriodStart: "2024-02-01",
			PeriodEnd:   "2024-01-01",
		}
		errs := ValidateStruct(payload)
		require.Len(t, errs, 1)
		assert.Equal(t, "dategtefield", errs[0].Tag)
		assert.Equal(t, "PeriodEnd", errs[0].Field)
	})

	t.Run("periode urut valid", func(t *testing.T) {
		payload := models.SalaryCreatePayload{
			StaffID:     "66b1f0a2e4b0c53d2f8a9b11",
			PeriodStart: "2024-01-01",
			PeriodEnd:   "2024-01-31",
		}
		assert.Nil(t, ValidateStruct(payload))
	})

	t.Run("periode satu hari valid", func(t *testing.T) {
		payload := models.SalaryCreatePayload{
			StaffID:     "66b1f0a2e4b0c53d2f8a9b11",
			PeriodStart: "2024-01-15",
			PeriodEnd:   "2024-01-15",
		}
		assert.Nil(t, ValidateStruct(payload))
	})

	t.Run("entri ledger dengan amount nol ditolak", func(t *testing.T) {
		payload := models.LedgerEntryPayload{Label: "Bonus target", Amount: 0}
		errs := ValidateStruct(payload)
		require.NotEmpty(t, errs)
		assert.Equal(t, "Amount", errs[0].Field)
	})

	t.Run("status di luar siklus ditolak", func(t *testing.T) {
		payload := models.SalaryStatusPayload{Status: "Cancelled"}
		errs := ValidateStruct(payload)
		require.Len(t, errs, 1)
		assert.Equal(t, "oneof", errs[0].Tag)
	})
}
