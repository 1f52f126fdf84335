package eligibility

import (
	"Sistem-Manajemen-Gym/models"
)

// Kategori minat yang dikenali. Nilai lain menghasilkan daftar kosong.
const (
	InterestPersonalTraining = "Personal Training"
	InterestGroupClasses     = "Group Classes"
	InterestGeneral          = "General"
	InterestBoth             = "Both"
)

// EligiblePlans memetakan minat member ke subset plan yang boleh dipilih.
// Urutan katalog dipertahankan. Minat kosong atau tidak dikenali selalu
// menghasilkan slice kosong, tidak pernah seluruh katalog.
func EligiblePlans(catalog []models.Plan, interest string) []models.Plan {
	eligible := []models.Plan{}

	switch interest {
	case InterestPersonalTraining:
		for _, p := range catalog {
			if p.Type == "personal" {
				eligible = append(eligible, p)
			}
		}
	case InterestGroupClasses:
		for _, p := range catalog {
			if p.Type == "group" {
				eligible = append(eligible, p)
			}
		}
	case InterestGeneral:
		for _, p := range catalog {
			if p.Type == "member" && p.TrainerType == "general" {
				eligible = append(eligible, p)
			}
		}
	case InterestBoth:
		eligible = append(eligible, catalog...)
	}

	return eligible
}

// IsEligible memeriksa apakah planID masih termasuk plan yang boleh dipilih
// untuk minat tersebut. Dipakai caller untuk mereset pilihan plan member
// saat minatnya berubah.
func IsEligible(catalog []models.Plan, interest string, planID string) bool {
	for _, p := range EligiblePlans(catalog, interest) {
		if p.ID.Hex() == planID {
			return true
		}
	}
	return false
}
