package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/pkg/paseto"
	"Sistem-Manajemen-Gym/pkg/reconcile"
	util "Sistem-Manajemen-Gym/pkg/utils"
	"Sistem-Manajemen-Gym/repository"
)

type RequestHandler struct {
	requestRepo  repository.RequestRepository
	planRepo     repository.PlanRepository
	userRepo     *repository.UserRepository
	scheduleRepo *repository.ClassScheduleRepository
}

func NewRequestHandler(
	requestRepo repository.RequestRepository,
	planRepo repository.PlanRepository,
	userRepo *repository.UserRepository,
	scheduleRepo *repository.ClassScheduleRepository,
) *RequestHandler {
	return &RequestHandler{
		requestRepo:  requestRepo,
		planRepo:     planRepo,
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
	}
}

// CreateRequest godoc
// @Summary Create Request
// @Description Member mengajukan perpanjangan membership (renewal) atau booking kelas. Request masuk dengan status pending.
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RequestCreatePayload true "Data pengajuan"
// @Success 201 {object} object{message=string,id=string} "Pengajuan berhasil dibuat"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 404 {object} models.ErrorResponse "Paket atau jadwal kelas tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat pengajuan"
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	var payload models.RequestCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	req := reconcile.NewPendingRequest(claims.UserID, payload.Kind, payload.Note, time.Now())
	newRequest := &req

	switch payload.Kind {
	case "renewal":
		planID, err := primitive.ObjectIDFromHex(payload.PlanID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format plan ID tidak valid"})
		}
		plan, err := h.planRepo.GetPlanByID(ctx, planID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if plan == nil || !plan.Active {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paket tidak ditemukan atau tidak aktif"})
		}
		newRequest.PlanID = planID
		newRequest.StartDate = payload.StartDate

	case "booking":
		scheduleID, err := primitive.ObjectIDFromHex(payload.ClassScheduleID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format class schedule ID tidak valid"})
		}
		schedule, err := h.scheduleRepo.FindByID(ctx, scheduleID)
		if err != nil || schedule == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal kelas tidak ditemukan"})
		}
		newRequest.ClassScheduleID = scheduleID
	}

	result, err := h.requestRepo.Create(ctx, newRequest)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat pengajuan: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pengajuan berhasil dibuat dan menunggu persetujuan admin",
		"id":      result.InsertedID,
	})
}

// GetMyRequests godoc
// @Summary Get My Requests
// @Description Mendapatkan riwayat pengajuan milik member yang sedang login
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Request "Daftar pengajuan berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil pengajuan"
// @Router /requests/my [get]
func (h *RequestHandler) GetMyRequests(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	requests, err := h.requestRepo.FindByMemberID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil pengajuan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

// GetAllRequests godoc
// @Summary Get All Requests
// @Description Mendapatkan semua pengajuan beserta detail member dan paket (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter berdasarkan status (pending/approved/rejected)"
// @Param kind query string false "Filter berdasarkan jenis (renewal/booking)"
// @Success 200 {array} models.RequestWithDetails "Daftar pengajuan berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil pengajuan"
// @Router /admin/requests [get]
func (h *RequestHandler) GetAllRequests(c *fiber.Ctx) error {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if kind := c.Query("kind"); kind != "" {
		filter["kind"] = kind
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	requests, err := h.requestRepo.FindAll(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil pengajuan: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

// DecideRequest godoc
// @Summary Approve or Reject Request
// @Description Admin memutuskan sebuah pengajuan. Persetujuan renewal memperbarui membership member; persetujuan booking hanya menandai request. Keputusan bersifat final.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param decision body models.RequestDecisionPayload true "Keputusan admin"
// @Success 200 {object} object{message=string} "Pengajuan berhasil diproses"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Pengajuan tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Pengajuan sudah diproses sebelumnya"
// @Failure 500 {object} models.ErrorResponse "Gagal memproses pengajuan"
// @Router /admin/requests/{id}/decide [patch]
func (h *RequestHandler) DecideRequest(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID pengajuan tidak valid"})
	}

	var payload models.RequestDecisionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	request, err := h.requestRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan tidak ditemukan"})
	}

	var plan *models.Plan
	if request.Kind == "renewal" {
		plan, err = h.planRepo.GetPlanByID(ctx, request.PlanID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if plan == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paket pada pengajuan sudah tidak ada"})
		}
	}

	updated, effects, err := reconcile.ProcessRequest(*request, reconcile.Decision(payload.Status), plan)
	if err != nil {
		if errors.Is(err, reconcile.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.requestRepo.UpdateStatus(ctx, objID, updated.Status, payload.Note); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memproses pengajuan: %v", err)})
	}

	if effects.UpdateMember {
		_, err := h.userRepo.ApplyMembership(ctx, effects.MemberID, effects.PlanID,
			effects.MembershipFrom, effects.MembershipTo, effects.MemberStatus)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memperbarui membership member: %v", err)})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Pengajuan berhasil diproses dengan keputusan %s", updated.Status),
	})
}
