package payroll

import (
	"testing"

	"Sistem-Manajemen-Gym/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyTotal(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		profile  Profile
		expected float64
	}{
		{"normal", 100, Profile{HourlyRate: 200}, 20000},
		{"rate nol", 40, Profile{HourlyRate: 0}, 0},
		{"jam nol", 0, Profile{HourlyRate: 150}, 0},
		{"jam negatif di-clamp", -5, Profile{HourlyRate: 150}, 0},
		{"jam pecahan", 7.5, Profile{HourlyRate: 100}, 750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HourlyTotal(tt.hours, tt.profile))
		})
	}
}

func TestCommissionTotal(t *testing.T) {
	t.Run("persen nol selalu 0", func(t *testing.T) {
		p := Profile{CommissionRatePercent: 0}
		assert.Equal(t, 0.0, CommissionTotal(99999, 5000, p))
	})

	t.Run("persen tidak diset selalu 0", func(t *testing.T) {
		assert.Equal(t, 0.0, CommissionTotal(20000, 5000, Profile{}))
	})

	t.Run("perhitungan normal", func(t *testing.T) {
		p := Profile{CommissionRatePercent: 10}
		assert.Equal(t, 2500.0, CommissionTotal(20000, 5000, p))
	})
}

func TestNetPay(t *testing.T) {
	t.Run("skenario lengkap", func(t *testing.T) {
		bonuses := []models.LedgerEntry{{Label: "Perf", Amount: 1000}}
		deductions := []models.LedgerEntry{{Label: "Tax", Amount: 500}}
		assert.Equal(t, 28000.0, NetPay(20000, 5000, 2500, bonuses, deductions))
	})

	t.Run("semua nol", func(t *testing.T) {
		assert.Equal(t, 0.0, NetPay(0, 0, 0, nil, nil))
	})

	t.Run("boleh negatif saat potongan melebihi pendapatan", func(t *testing.T) {
		deductions := []models.LedgerEntry{{Label: "Denda", Amount: 1500}}
		assert.Equal(t, -500.0, NetPay(1000, 0, 0, nil, deductions))
	})

	t.Run("additif terhadap bonus", func(t *testing.T) {
		bonuses := []models.LedgerEntry{{Label: "A", Amount: 100}}
		base := NetPay(500, 0, 0, bonuses, nil)
		extra := append(bonuses, models.LedgerEntry{Label: "B", Amount: 250})
		assert.Equal(t, base+250, NetPay(500, 0, 0, extra, nil))
	})
}

func TestAddEntry(t *testing.T) {
	t.Run("label kosong ditolak", func(t *testing.T) {
		_, err := AddEntry(nil, "   ", 100)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("amount nol ditolak", func(t *testing.T) {
		_, err := AddEntry(nil, "Bonus", 0)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("amount negatif ditolak", func(t *testing.T) {
		_, err := AddEntry(nil, "Bonus", -50)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("ledger tidak berubah saat entri ditolak", func(t *testing.T) {
		entries := []models.LedgerEntry{{Label: "X", Amount: 10}}
		out, err := AddEntry(entries, "", 100)
		assert.Error(t, err)
		assert.Equal(t, entries, out)
	})

	t.Run("urutan insert terjaga", func(t *testing.T) {
		entries, err := AddEntry(nil, "Pertama", 10)
		require.NoError(t, err)
		entries, err = AddEntry(entries, "Kedua", 20)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Pertama", entries[0].Label)
		assert.Equal(t, "Kedua", entries[1].Label)
	})
}

func TestRemoveEntry(t *testing.T) {
	entries := []models.LedgerEntry{
		{Label: "A", Amount: 1},
		{Label: "B", Amount: 2},
		{Label: "C", Amount: 3},
	}

	t.Run("hapus di tengah", func(t *testing.T) {
		out, err := RemoveEntry(entries, 1)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "A", out[0].Label)
		assert.Equal(t, "C", out[1].Label)
	})

	t.Run("index negatif", func(t *testing.T) {
		_, err := RemoveEntry(entries, -1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("index melebihi panjang", func(t *testing.T) {
		_, err := RemoveEntry(entries, 3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("round-trip hapus lalu tambah kembali", func(t *testing.T) {
		original := NetPay(0, 0, 0, entries, nil)

		out, err := RemoveEntry(entries, 1)
		require.NoError(t, err)
		out, err = AddEntry(out, "B", 2)
		require.NoError(t, err)

		assert.Equal(t, original, NetPay(0, 0, 0, out, nil))
	})
}

func TestRecompute(t *testing.T) {
	t.Run("skenario spek gaji", func(t *testing.T) {
		p := Profile{HourlyRate: 200, CommissionRatePercent: 10, FixedSalary: 5000}
		rec := &models.SalaryRecord{
			HoursWorked: 100,
			Bonuses:     []models.LedgerEntry{{Label: "Perf", Amount: 1000}},
			Deductions:  []models.LedgerEntry{{Label: "Tax", Amount: 500}},
		}

		Recompute(rec, p)

		assert.Equal(t, 20000.0, rec.HourlyTotal)
		assert.Equal(t, 2500.0, rec.CommissionTotal)
		assert.Equal(t, 28000.0, rec.NetPay)
	})

	t.Run("recompute setelah mutasi jam kerja", func(t *testing.T) {
		p := Profile{HourlyRate: 100}
		rec := &models.SalaryRecord{HoursWorked: 10}

		Recompute(rec, p)
		assert.Equal(t, 1000.0, rec.NetPay)

		rec.HoursWorked = 20
		Recompute(rec, p)
		assert.Equal(t, 2000.0, rec.NetPay)
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1000", 1000},
		{"  250.50  ", 250.5},
		{"abc", 0},
		{"", 0},
		{"NaN", 0},
		{"-75", -75},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "28000.00", FormatAmount(28000))
	assert.Equal(t, "0.30", FormatAmount(0.1+0.2))
	assert.Equal(t, "-500.00", FormatAmount(-500))
}

func TestCanAdvanceStatus(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		allowed bool
	}{
		{"generated ke approved", StatusGenerated, StatusApproved, true},
		{"approved ke paid", StatusApproved, StatusPaid, true},
		{"generated langsung ke paid", StatusGenerated, StatusPaid, false},
		{"mundur dari approved", StatusApproved, StatusGenerated, false},
		{"paid adalah status akhir", StatusPaid, StatusApproved, false},
		{"status sama ditolak", StatusApproved, StatusApproved, false},
		{"status saat ini tidak dikenal", "Draft", StatusApproved, false},
		{"status tujuan tidak dikenal", StatusGenerated, "Cancelled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanAdvanceStatus(tt.current, tt.next))
		})
	}
}
