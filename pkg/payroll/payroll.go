package payroll

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"Sistem-Manajemen-Gym/models"
)

var (
	ErrInvalidEntry    = errors.New("entri ledger tidak valid: label wajib diisi dan amount harus lebih dari 0")
	ErrIndexOutOfRange = errors.New("index entri ledger di luar jangkauan")
)

// Profile adalah profil kompensasi staf yang menjadi input perhitungan.
// Diambil dari field kompensasi pada models.User, read-only di sini.
type Profile struct {
	HourlyRate            float64
	CommissionRatePercent float64
	FixedSalary           float64
}

// ProfileFromUser mengambil profil kompensasi dari data staf.
func ProfileFromUser(u *models.User) Profile {
	return Profile{
		HourlyRate:            u.HourlyRate,
		CommissionRatePercent: u.CommissionRatePercent,
		FixedSalary:           u.FixedSalary,
	}
}

// HourlyTotal menghitung upah per jam: hoursWorked * hourlyRate.
// Jam kerja negatif di-clamp ke 0, bukan ditolak, supaya fungsi tetap total.
func HourlyTotal(hoursWorked float64, p Profile) float64 {
	if hoursWorked <= 0 || p.HourlyRate <= 0 {
		return 0
	}
	return hoursWorked * p.HourlyRate
}

// CommissionTotal menghitung komisi: (hourlyTotal + fixedSalary) * persen / 100.
// Mengembalikan 0 jika persentase komisi 0 atau tidak diset.
func CommissionTotal(hourlyTotal, fixedSalary float64, p Profile) float64 {
	if p.CommissionRatePercent <= 0 {
		return 0
	}
	return (hourlyTotal + fixedSalary) * p.CommissionRatePercent / 100
}

// SumLedger menjumlahkan seluruh amount pada ledger.
func SumLedger(entries []models.LedgerEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

// NetPay menghitung gaji bersih. Fungsi total dan deterministik: input yang
// tidak ada dianggap 0. Tidak ada pembatasan nilai minimum, net pay boleh
// negatif jika potongan melebihi pendapatan.
func NetPay(hourlyTotal, fixedSalary, commissionTotal float64, bonuses, deductions []models.LedgerEntry) float64 {
	return hourlyTotal + fixedSalary + commissionTotal + SumLedger(bonuses) - SumLedger(deductions)
}

// AddEntry menambahkan entri ke ledger dengan urutan terjaga.
// Label kosong (setelah trim) atau amount tidak positif ditolak.
func AddEntry(entries []models.LedgerEntry, label string, amount float64) ([]models.LedgerEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" || amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return entries, ErrInvalidEntry
	}
	return append(entries, models.LedgerEntry{Label: label, Amount: amount}), nil
}

// RemoveEntry menghapus entri ledger berdasarkan posisi.
func RemoveEntry(entries []models.LedgerEntry, index int) ([]models.LedgerEntry, error) {
	if index < 0 || index >= len(entries) {
		return entries, ErrIndexOutOfRange
	}
	out := make([]models.LedgerEntry, 0, len(entries)-1)
	out = append(out, entries[:index]...)
	out = append(out, entries[index+1:]...)
	return out, nil
}

// Urutan status catatan gaji. Hanya boleh maju satu langkah.
const (
	StatusGenerated = "Generated"
	StatusApproved  = "Approved"
	StatusPaid      = "Paid"
)

var statusRank = map[string]int{
	StatusGenerated: 0,
	StatusApproved:  1,
	StatusPaid:      2,
}

// CanAdvanceStatus melaporkan apakah transisi current -> next adalah satu
// langkah maju pada urutan Generated -> Approved -> Paid. Status yang tidak
// dikenal selalu ditolak.
func CanAdvanceStatus(current, next string) bool {
	cur, ok := statusRank[current]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}

// Recompute menurunkan ulang seluruh field hasil perhitungan pada SalaryRecord
// dari input mentahnya. Wajib dipanggil caller setiap ada mutasi (jam kerja
// berubah, entri ledger ditambah/dihapus) sebelum record disimpan.
func Recompute(rec *models.SalaryRecord, p Profile) {
	rec.HourlyTotal = HourlyTotal(rec.HoursWorked, p)
	rec.FixedSalary = p.FixedSalary
	rec.CommissionTotal = CommissionTotal(rec.HourlyTotal, p.FixedSalary, p)
	rec.NetPay = NetPay(rec.HourlyTotal, p.FixedSalary, rec.CommissionTotal, rec.Bonuses, rec.Deductions)
}

// ParseAmount mengubah input string dari form menjadi angka. Input yang tidak
// bisa diparse dinormalisasi menjadi 0, bukan error, karena validasi bentuk
// sudah menjadi tanggung jawab layer payload.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatAmount membulatkan ke 2 desimal hanya pada saat formatting.
// Akumulasi internal tetap memakai float64 tanpa pembulatan antara.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
