package eligibility

import (
	"testing"

	"Sistem-Manajemen-Gym/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleCatalog() []models.Plan {
	return []models.Plan{
		{ID: primitive.NewObjectID(), Name: "Kelas Grup Bulanan", Type: "group"},
		{ID: primitive.NewObjectID(), Name: "Personal Trainer 12x", Type: "personal"},
		{ID: primitive.NewObjectID(), Name: "Member Umum", Type: "member", TrainerType: "general"},
		{ID: primitive.NewObjectID(), Name: "Member Personal", Type: "member", TrainerType: "personal"},
	}
}

func TestEligiblePlans(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("Personal Training hanya plan personal", func(t *testing.T) {
		got := EligiblePlans(catalog, InterestPersonalTraining)
		require.Len(t, got, 1)
		assert.Equal(t, "Personal Trainer 12x", got[0].Name)
	})

	t.Run("Group Classes hanya plan group", func(t *testing.T) {
		got := EligiblePlans(catalog, InterestGroupClasses)
		require.Len(t, got, 1)
		assert.Equal(t, "Kelas Grup Bulanan", got[0].Name)
	})

	t.Run("General hanya member dengan trainer general", func(t *testing.T) {
		got := EligiblePlans(catalog, InterestGeneral)
		require.Len(t, got, 1)
		assert.Equal(t, "Member Umum", got[0].Name)
	})

	t.Run("Both mengembalikan seluruh katalog dalam urutan asli", func(t *testing.T) {
		got := EligiblePlans(catalog, InterestBoth)
		require.Len(t, got, len(catalog))
		for i := range catalog {
			assert.Equal(t, catalog[i].ID, got[i].ID)
		}
	})

	t.Run("Both dengan katalog kosong", func(t *testing.T) {
		got := EligiblePlans(nil, InterestBoth)
		assert.Empty(t, got)
	})

	t.Run("minat kosong menghasilkan slice kosong", func(t *testing.T) {
		got := EligiblePlans(catalog, "")
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("minat tidak dikenali menghasilkan slice kosong", func(t *testing.T) {
		assert.Empty(t, EligiblePlans(catalog, "Yoga"))
	})
}

func TestIsEligible(t *testing.T) {
	catalog := sampleCatalog()
	groupPlanID := catalog[0].ID.Hex()
	personalPlanID := catalog[1].ID.Hex()

	t.Run("plan masih eligible untuk minat lama", func(t *testing.T) {
		assert.True(t, IsEligible(catalog, InterestGroupClasses, groupPlanID))
	})

	t.Run("pilihan plan gugur saat minat berubah", func(t *testing.T) {
		assert.False(t, IsEligible(catalog, InterestPersonalTraining, groupPlanID))
		assert.True(t, IsEligible(catalog, InterestPersonalTraining, personalPlanID))
	})

	t.Run("minat kosong tidak pernah eligible", func(t *testing.T) {
		assert.False(t, IsEligible(catalog, "", groupPlanID))
	})
}
