package handlers

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/pkg/paseto"
	util "Sistem-Manajemen-Gym/pkg/utils"
	"Sistem-Manajemen-Gym/repository"
)

type AttendanceHandler struct {
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

// ScanQRCode godoc
// @Summary Scan QR Code
// @Description Member atau staf memindai QR Code harian untuk check-in, scan kedua pada hari yang sama menjadi check-out
// @Tags Attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scan body models.QRCodeScanPayload true "Nilai QR Code hasil scan"
// @Success 200 {object} object{message=string} "Berhasil check-out"
// @Success 201 {object} object{message=string} "Berhasil check-in"
// @Failure 400 {object} models.ErrorResponse "QR Code kadaluarsa atau tidak berlaku"
// @Failure 404 {object} models.ErrorResponse "QR Code tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Sudah check-in dan check-out hari ini"
// @Router /attendance/scan [post]
func (h *AttendanceHandler) ScanQRCode(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	var payload models.QRCodeScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid: " + err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	qrCode, err := h.repo.FindQRCodeByValue(ctx, payload.QRCodeValue)
	if err != nil || qrCode == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code tidak ditemukan atau tidak valid."})
	}

	if time.Now().After(qrCode.ExpiresAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR Code sudah kadaluarsa."})
	}

	today := time.Now().Format("2006-01-02")
	if qrCode.Date != today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR Code ini tidak berlaku untuk hari ini."})
	}

	userID := claims.UserID

	attendance, err := h.repo.FindAttendanceByUserAndDate(ctx, userID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa kehadiran."})
	}

	if attendance != nil {
		if attendance.CheckOut != "" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Anda sudah melakukan check-in dan check-out hari ini."})
		}
		checkOut := time.Now().Format("15:04")
		if _, err := h.repo.UpdateAttendanceCheckout(ctx, attendance.ID, checkOut); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal melakukan check-out."})
		}
		h.repo.MarkQRCodeAsUsed(ctx, qrCode.ID, userID)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Berhasil check-out pukul " + checkOut})
	}

	newAttendance := &models.Attendance{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      today,
		CheckIn:   time.Now().Format("15:04"),
		Status:    "Hadir",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := h.repo.CreateAttendance(ctx, newAttendance); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal melakukan check-in."})
	}

	h.repo.MarkQRCodeAsUsed(ctx, qrCode.ID, userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Berhasil check-in pukul " + newAttendance.CheckIn})
}

// GenerateQRCode godoc
// @Summary Generate Daily QR Code
// @Description Membuat QR Code absensi untuk hari ini (admin only). Jika sudah ada yang aktif, QR Code lama dipakai ulang.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,qr_code_image=string,expires_at=string} "QR Code berhasil dibuat"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat QR Code"
// @Router /admin/attendance/generate-qr [get]
func (h *AttendanceHandler) GenerateQRCode(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	today := time.Now()
	todayStr := today.Format("2006-01-02")

	// QR Code harian dipakai ulang selama masih berlaku
	existing, err := h.repo.FindActiveQRCodeByDate(ctx, todayStr)
	if err == nil && existing != nil {
		png, err := qrcode.Encode(existing.Code, qrcode.Medium, 256)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code."})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message":       "QR Code hari ini masih aktif",
			"qr_code_image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			"expires_at":    existing.ExpiresAt,
		})
	}

	uniqueCode := uuid.New().String()
	expiresAt := time.Date(today.Year(), today.Month(), today.Day(), 23, 0, 0, 0, today.Location())

	newQRCode := &models.QRCode{
		ID:        primitive.NewObjectID(),
		Code:      uniqueCode,
		Date:      todayStr,
		ExpiresAt: expiresAt,
		UsedBy:    []primitive.ObjectID{},
		CreatedAt: today,
	}

	if _, err := h.repo.CreateQRCode(ctx, newQRCode); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan data QR Code."})
	}

	png, err := qrcode.Encode(uniqueCode, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR Code berhasil dibuat",
		"qr_code_image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"expires_at":    expiresAt,
	})
}

// GetMyAttendanceHistory godoc
// @Summary Get My Attendance History
// @Description Mendapatkan riwayat kehadiran user yang sedang login
// @Tags Attendances
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Attendance "Riwayat kehadiran berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil riwayat kehadiran"
// @Router /attendance/my-history [get]
func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendanceHistory, err := h.repo.FindAttendanceByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat kehadiran"})
	}

	if attendanceHistory == nil {
		return c.Status(fiber.StatusOK).JSON([]models.Attendance{})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceHistory)
}

// GetAllAttendances godoc
// @Summary Get All Attendances
// @Description Mendapatkan daftar kehadiran beserta detail user dengan paginasi dan filter tanggal (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Halaman" default(1)
// @Param limit query int false "Jumlah data per halaman" default(10)
// @Param date query string false "Filter berdasarkan tanggal (YYYY-MM-DD)"
// @Success 200 {object} object{data=[]models.AttendanceWithUser,total=int} "Daftar kehadiran berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil daftar kehadiran"
// @Router /admin/attendance [get]
func (h *AttendanceHandler) GetAllAttendances(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if date := c.Query("date"); date != "" {
		filter["date"] = date
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	attendances, total, err := h.repo.GetAllAttendancesWithUserDetails(ctx, filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar kehadiran"})
	}

	if attendances == nil {
		attendances = []models.AttendanceWithUser{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  attendances,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetTodayAttendance godoc
// @Summary Get Today Attendance
// @Description Mendapatkan daftar kehadiran hari ini beserta detail user (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceWithUser "Daftar kehadiran hari ini"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil daftar kehadiran"
// @Router /admin/attendance/today [get]
func (h *AttendanceHandler) GetTodayAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	today := time.Now().Format("2006-01-02")
	attendances, _, err := h.repo.GetAllAttendancesWithUserDetails(ctx, bson.M{"date": today}, 1, 500)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar kehadiran"})
	}

	if attendances == nil {
		attendances = []models.AttendanceWithUser{}
	}

	return c.Status(fiber.StatusOK).JSON(attendances)
}
