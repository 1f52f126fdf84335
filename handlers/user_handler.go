package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/pkg/eligibility"
	"Sistem-Manajemen-Gym/pkg/paseto"
	util "Sistem-Manajemen-Gym/pkg/utils"
	"Sistem-Manajemen-Gym/repository"
)

type UserHandler struct {
	userRepo       *repository.UserRepository
	planRepo       repository.PlanRepository
	requestRepo    repository.RequestRepository
	attendanceRepo repository.AttendanceRepository
}

func NewUserHandler(
	userRepo *repository.UserRepository,
	planRepo repository.PlanRepository,
	requestRepo repository.RequestRepository,
	attendanceRepo repository.AttendanceRepository,
) *UserHandler {
	return &UserHandler{
		userRepo:       userRepo,
		planRepo:       planRepo,
		requestRepo:    requestRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GetUserByID godoc
// @Summary Get User by ID
// @Description Mendapatkan detail user berdasarkan ID (user hanya bisa melihat data diri sendiri, admin bisa melihat semua)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User "User berhasil ditemukan"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID format"
// @Failure 401 {object} models.ErrorResponse "Tidak terautentikasi"
// @Failure 403 {object} models.ErrorResponse "Akses ditolak - hanya bisa melihat data sendiri"
// @Failure 404 {object} models.ErrorResponse "User tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	userID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format user ID tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	// Selain admin, user hanya boleh membaca datanya sendiri
	if claims.Role != "admin" && claims.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda hanya bisa melihat data Anda sendiri"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mengambil user: %v", err)})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(user)
}

// GetAllUsers godoc
// @Summary Get All Users
// @Description Mendapatkan daftar semua user dengan paginasi dan filter berdasarkan role (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Halaman" default(1)
// @Param limit query int false "Jumlah data per halaman" default(10)
// @Param role query string false "Filter berdasarkan role (admin/staf/member)"
// @Success 200 {object} models.GetAllUsersSuccessResponse "Daftar user berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	users, total, err := h.userRepo.GetAllUsers(ctx, filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mengambil daftar user: %v", err)})
	}

	for i := range users {
		users[i].Password = ""
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UpdateUser godoc
// @Summary Update User
// @Description Memperbarui data user. Jika minat member berubah dan paket aktifnya tidak lagi sesuai, paket akan dilepas.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body models.UserUpdatePayload true "Data user yang akan diupdate"
// @Success 200 {object} models.UpdateUserSuccessResponse "User berhasil diupdate"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "User tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	idParam := c.Params("id")
	userID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format user ID tidak valid"})
	}

	var payload models.UserUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Email != "" {
		updateData["email"] = payload.Email
	}
	if payload.Phone != "" {
		updateData["phone"] = payload.Phone
	}
	if payload.Address != "" {
		updateData["address"] = payload.Address
	}
	if payload.Photo != "" {
		updateData["photo"] = payload.Photo
	}
	if payload.Position != "" {
		updateData["position"] = payload.Position
	}
	if payload.HourlyRate != nil {
		updateData["hourly_rate"] = *payload.HourlyRate
	}
	if payload.CommissionRatePercent != nil {
		updateData["commission_rate_percent"] = *payload.CommissionRatePercent
	}
	if payload.FixedSalary != nil {
		updateData["fixed_salary"] = *payload.FixedSalary
	}
	if payload.Status != "" {
		updateData["status"] = payload.Status
	}

	if payload.Interest != "" && payload.Interest != existing.Interest {
		updateData["interest"] = payload.Interest

		// Minat berubah: paket aktif yang tidak lagi memenuhi minat baru dilepas
		if !existing.PlanID.IsZero() {
			plans, err := h.planRepo.GetAllPlans(ctx, bson.M{"active": true})
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			if !eligibility.IsEligible(plans, payload.Interest, existing.PlanID.Hex()) {
				updateData["plan_id"] = primitive.NilObjectID
				updateData["membership_from"] = ""
				updateData["membership_to"] = ""
			}
		}
	}

	if payload.PlanID != "" {
		planID, err := primitive.ObjectIDFromHex(payload.PlanID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format plan ID tidak valid"})
		}
		updateData["plan_id"] = planID
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tidak ada data yang diupdate"})
	}

	result, err := h.userRepo.UpdateUser(ctx, userID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal update user: %v", err)})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User berhasil diupdate"})
}

// UploadProfilePhoto godoc
// @Summary Upload Profile Photo
// @Description Mengunggah foto profil untuk user yang sedang login
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "File foto profil (jpg/jpeg/png, max 2MB)"
// @Success 200 {object} models.UpdateUserSuccessResponse "Foto profil berhasil diunggah"
// @Failure 400 {object} models.ErrorResponse "File tidak valid"
// @Failure 500 {object} models.ErrorResponse "Gagal menyimpan file"
// @Router /users/profile-photo [post]
func (h *UserHandler) UploadProfilePhoto(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file foto wajib diunggah"})
	}

	if file.Size > 2*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ukuran file maksimal 2MB"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format file harus jpg, jpeg, atau png"})
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	savePath := filepath.Join("./uploads", filename)

	if err := c.SaveFile(file, savePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal menyimpan file"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	photoURL := "/uploads/" + filename
	if _, err := h.userRepo.UpdateUser(ctx, claims.UserID, bson.M{"photo": photoURL}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal update foto profil"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Foto profil berhasil diunggah",
		"photo":   photoURL,
	})
}

// DeleteUser godoc
// @Summary Delete User
// @Description Menghapus user berdasarkan ID (admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.DeleteUserSuccessResponse "User berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID format"
// @Failure 404 {object} models.ErrorResponse "User tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	idParam := c.Params("id")
	userID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format user ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal menghapus user: %v", err)})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User berhasil dihapus"})
}

// GetDashboardStats godoc
// @Summary Get Dashboard Stats
// @Description Mendapatkan statistik dashboard: jumlah member, staf, request pending, kehadiran hari ini, dan distribusi paket (admin only)
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats "Statistik dashboard berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/dashboard-stats [get]
func (h *UserHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	totalMembers, err := h.userRepo.CountUsers(ctx, bson.M{"role": "member"})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal menghitung member"})
	}

	totalStaff, err := h.userRepo.CountUsers(ctx, bson.M{"role": "staf"})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal menghitung staf"})
	}

	activeMembers, err := h.userRepo.CountUsers(ctx, bson.M{"role": "member", "status": "Active"})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal menghitung member aktif"})
	}

	pendingRequests, err := h.requestRepo.CountPending(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal menghitung request pending"})
	}

	today := time.Now().Format("2006-01-02")
	attendanceToday, err := h.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal menghitung kehadiran hari ini"})
	}

	totalPlans, err := h.planRepo.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal menghitung paket"})
	}

	planDistribution, err := h.userRepo.PlanDistribution(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal mengambil distribusi paket"})
	}

	stats := models.DashboardStats{
		TotalMember:         totalMembers,
		MemberAktif:         activeMembers,
		TotalStaf:           totalStaff,
		TotalPlan:           totalPlans,
		PendingRequestCount: pendingRequests,
		KehadiranHariIni:    attendanceToday,
		DistribusiPlan:      planDistribution,
		AktivitasTerbaru:    []string{},
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
