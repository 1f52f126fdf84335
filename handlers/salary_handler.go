package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/pkg/paseto"
	"Sistem-Manajemen-Gym/pkg/payroll"
	util "Sistem-Manajemen-Gym/pkg/utils"
	"Sistem-Manajemen-Gym/repository"
)

type SalaryHandler struct {
	salaryRepo repository.SalaryRepository
	userRepo   *repository.UserRepository
}

func NewSalaryHandler(salaryRepo repository.SalaryRepository, userRepo *repository.UserRepository) *SalaryHandler {
	return &SalaryHandler{
		salaryRepo: salaryRepo,
		userRepo:   userRepo,
	}
}

// loadStaff memastikan user ada dan memang staf, lalu mengembalikan profil kompensasinya.
func (h *SalaryHandler) loadStaff(ctx context.Context, staffID primitive.ObjectID) (*models.User, error) {
	staff, err := h.userRepo.FindUserByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil || staff.Role != "staf" {
		return nil, errors.New("staf tidak ditemukan")
	}
	return staff, nil
}

// CreateSalary godoc
// @Summary Create Salary Record
// @Description Membuat catatan gaji staf untuk satu periode. Seluruh field turunan dihitung dari profil kompensasi staf.
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param salary body models.SalaryCreatePayload true "Data catatan gaji baru"
// @Success 201 {object} models.SalaryRecord "Catatan gaji berhasil dibuat"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 404 {object} models.ErrorResponse "Staf tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Catatan gaji untuk periode ini sudah ada"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat catatan gaji"
// @Router /admin/salaries [post]
func (h *SalaryHandler) CreateSalary(c *fiber.Ctx) error {
	var payload models.SalaryCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	staffID, err := primitive.ObjectIDFromHex(payload.StaffID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format staff ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	staff, err := h.loadStaff(ctx, staffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staf tidak ditemukan"})
	}

	existing, err := h.salaryRepo.FindByStaffAndPeriod(ctx, staffID, payload.PeriodStart, payload.PeriodEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa catatan gaji: %v", err)})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Catatan gaji untuk staf dan periode ini sudah ada"})
	}

	rec := &models.SalaryRecord{
		StaffID:     staffID,
		PeriodStart: payload.PeriodStart,
		PeriodEnd:   payload.PeriodEnd,
		HoursWorked: payload.HoursWorked,
		Bonuses:     []models.LedgerEntry{},
		Deductions:  []models.LedgerEntry{},
		Status:      payroll.StatusGenerated,
		Notes:       payload.Notes,
	}
	payroll.Recompute(rec, payroll.ProfileFromUser(staff))

	if _, err := h.salaryRepo.Create(ctx, rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat catatan gaji: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Catatan gaji berhasil dibuat",
		"data":    rec,
	})
}

// GetAllSalaries godoc
// @Summary Get All Salaries
// @Description Mendapatkan semua catatan gaji beserta detail staf, dengan paginasi (admin only)
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Halaman" default(1)
// @Param limit query int false "Jumlah data per halaman" default(10)
// @Param status query string false "Filter berdasarkan status (Generated/Approved/Paid)"
// @Success 200 {object} object{data=[]models.SalaryWithStaff,total=int} "Daftar gaji berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil catatan gaji"
// @Router /admin/salaries [get]
func (h *SalaryHandler) GetAllSalaries(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	salaries, total, err := h.salaryRepo.FindAllWithStaff(ctx, filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil catatan gaji: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  salaries,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetSalaryByID godoc
// @Summary Get Salary by ID
// @Description Mendapatkan detail catatan gaji. Staf hanya bisa melihat gajinya sendiri.
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Success 200 {object} models.SalaryRecord "Catatan gaji ditemukan"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 403 {object} models.ErrorResponse "Akses ditolak"
// @Failure 404 {object} models.ErrorResponse "Catatan gaji tidak ditemukan"
// @Router /salaries/{id} [get]
func (h *SalaryHandler) GetSalaryByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID gaji tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	rec, err := h.salaryRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil catatan gaji: %v", err)})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catatan gaji tidak ditemukan"})
	}

	if claims.Role != "admin" && rec.StaffID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda hanya bisa melihat gaji Anda sendiri"})
	}

	return c.Status(fiber.StatusOK).JSON(rec)
}

// GetMySalaries godoc
// @Summary Get My Salaries
// @Description Mendapatkan seluruh catatan gaji milik staf yang sedang login
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SalaryRecord "Daftar gaji berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil catatan gaji"
// @Router /salaries/my [get]
func (h *SalaryHandler) GetMySalaries(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	salaries, err := h.salaryRepo.FindByStaffID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil catatan gaji: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(salaries)
}

// UpdateSalaryHours godoc
// @Summary Update Salary Hours
// @Description Memperbarui jam kerja pada catatan gaji. Seluruh field turunan dihitung ulang.
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Param hours body models.SalaryHoursUpdatePayload true "Jam kerja baru"
// @Success 200 {object} models.SalaryRecord "Jam kerja berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Catatan gaji tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Catatan gaji sudah dibayar dan tidak bisa diubah"
// @Router /admin/salaries/{id}/hours [patch]
func (h *SalaryHandler) UpdateSalaryHours(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID gaji tidak valid"})
	}

	var payload models.SalaryHoursUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.salaryRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catatan gaji tidak ditemukan"})
	}
	if rec.Status == payroll.StatusPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Catatan gaji sudah dibayar dan tidak bisa diubah"})
	}

	staff, err := h.loadStaff(ctx, rec.StaffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staf tidak ditemukan"})
	}

	rec.HoursWorked = payload.HoursWorked
	payroll.Recompute(rec, payroll.ProfileFromUser(staff))

	if _, err := h.salaryRepo.UpdateComputedFields(ctx, rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update jam kerja: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Jam kerja berhasil diupdate",
		"data":    rec,
	})
}

// AddLedgerEntry godoc
// @Summary Add Bonus or Deduction
// @Description Menambahkan entri bonus atau potongan ke catatan gaji. Net pay dihitung ulang.
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Param kind path string true "Jenis entri: bonuses atau deductions"
// @Param entry body models.LedgerEntryPayload true "Entri ledger baru"
// @Success 200 {object} models.SalaryRecord "Entri berhasil ditambahkan"
// @Failure 400 {object} models.ErrorResponse "Invalid request atau entri tidak valid"
// @Failure 404 {object} models.ErrorResponse "Catatan gaji tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Catatan gaji sudah dibayar"
// @Router /admin/salaries/{id}/{kind} [post]
func (h *SalaryHandler) AddLedgerEntry(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID gaji tidak valid"})
	}

	kind := c.Params("kind")
	if kind != "bonuses" && kind != "deductions" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jenis entri harus bonuses atau deductions"})
	}

	var payload models.LedgerEntryPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.salaryRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catatan gaji tidak ditemukan"})
	}
	if rec.Status == payroll.StatusPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Catatan gaji sudah dibayar dan tidak bisa diubah"})
	}

	if kind == "bonuses" {
		rec.Bonuses, err = payroll.AddEntry(rec.Bonuses, payload.Label, payload.Amount)
	} else {
		rec.Deductions, err = payroll.AddEntry(rec.Deductions, payload.Label, payload.Amount)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff, err := h.loadStaff(ctx, rec.StaffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staf tidak ditemukan"})
	}
	payroll.Recompute(rec, payroll.ProfileFromUser(staff))

	if _, err := h.salaryRepo.UpdateComputedFields(ctx, rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menambahkan entri: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Entri berhasil ditambahkan",
		"data":    rec,
	})
}

// RemoveLedgerEntry godoc
// @Summary Remove Bonus or Deduction
// @Description Menghapus entri bonus atau potongan berdasarkan posisinya. Net pay dihitung ulang.
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Param kind path string true "Jenis entri: bonuses atau deductions"
// @Param index path int true "Posisi entri (mulai dari 0)"
// @Success 200 {object} models.SalaryRecord "Entri berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "Invalid request atau index di luar jangkauan"
// @Failure 404 {object} models.ErrorResponse "Catatan gaji tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Catatan gaji sudah dibayar"
// @Router /admin/salaries/{id}/{kind}/{index} [delete]
func (h *SalaryHandler) RemoveLedgerEntry(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID gaji tidak valid"})
	}

	kind := c.Params("kind")
	if kind != "bonuses" && kind != "deductions" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "jenis entri harus bonuses atau deductions"})
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index harus berupa angka"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.salaryRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catatan gaji tidak ditemukan"})
	}
	if rec.Status == payroll.StatusPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Catatan gaji sudah dibayar dan tidak bisa diubah"})
	}

	if kind == "bonuses" {
		rec.Bonuses, err = payroll.RemoveEntry(rec.Bonuses, index)
	} else {
		rec.Deductions, err = payroll.RemoveEntry(rec.Deductions, index)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff, err := h.loadStaff(ctx, rec.StaffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staf tidak ditemukan"})
	}
	payroll.Recompute(rec, payroll.ProfileFromUser(staff))

	if _, err := h.salaryRepo.UpdateComputedFields(ctx, rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghapus entri: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Entri berhasil dihapus",
		"data":    rec,
	})
}

// UpdateSalaryStatus godoc
// @Summary Update Salary Status
// @Description Memperbarui status catatan gaji. Urutan status hanya maju: Generated -> Approved -> Paid.
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Param status body models.SalaryStatusPayload true "Status baru"
// @Success 200 {object} object{message=string} "Status berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Catatan gaji tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Transisi status tidak valid"
// @Router /admin/salaries/{id}/status [patch]
func (h *SalaryHandler) UpdateSalaryStatus(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID gaji tidak valid"})
	}

	var payload models.SalaryStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.salaryRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catatan gaji tidak ditemukan"})
	}

	if !payroll.CanAdvanceStatus(rec.Status, payload.Status) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Transisi status dari %s ke %s tidak valid", rec.Status, payload.Status),
		})
	}

	var paidAt *time.Time
	if payload.Status == payroll.StatusPaid {
		now := time.Now()
		paidAt = &now
	}

	if _, err := h.salaryRepo.UpdateStatus(ctx, objID, payload.Status, paidAt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update status: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Status gaji berhasil diupdate"})
}

// DeleteSalary godoc
// @Summary Delete Salary Record
// @Description Menghapus catatan gaji. Catatan yang sudah dibayar tidak bisa dihapus.
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Success 200 {object} object{message=string} "Catatan gaji berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Catatan gaji tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Catatan gaji sudah dibayar"
// @Router /admin/salaries/{id} [delete]
func (h *SalaryHandler) DeleteSalary(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID gaji tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	rec, err := h.salaryRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catatan gaji tidak ditemukan"})
	}
	if rec.Status == payroll.StatusPaid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Catatan gaji sudah dibayar dan tidak bisa dihapus"})
	}

	if _, err := h.salaryRepo.Delete(ctx, objID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghapus catatan gaji: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Catatan gaji berhasil dihapus"})
}
