package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/pkg/eligibility"
	util "Sistem-Manajemen-Gym/pkg/utils"
	"Sistem-Manajemen-Gym/repository"
)

type PlanHandler struct {
	planRepo repository.PlanRepository
}

func NewPlanHandler(planRepo repository.PlanRepository) *PlanHandler {
	return &PlanHandler{
		planRepo: planRepo,
	}
}

// CreatePlan godoc
// @Summary Create Plan
// @Description Menambahkan paket membership baru (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body models.PlanCreatePayload true "Data paket baru"
// @Success 201 {object} object{message=string,id=string} "Paket berhasil ditambahkan"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 409 {object} models.ErrorResponse "Nama paket sudah ada"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat paket"
// @Router /admin/plans [post]
func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var payload models.PlanCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.planRepo.FindPlanByName(ctx, payload.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa paket: %v", err)})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama paket sudah ada"})
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	newPlan := &models.Plan{
		Name:         payload.Name,
		Sessions:     payload.Sessions,
		ValidityDays: payload.ValidityDays,
		Price:        payload.Price,
		Type:         payload.Type,
		TrainerType:  payload.TrainerType,
		Active:       active,
	}

	result, err := h.planRepo.CreatePlan(ctx, newPlan)
	if err != nil {
		if err.Error() == "nama plan sudah ada" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama paket sudah ada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat paket: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Paket berhasil ditambahkan",
		"id":      result.InsertedID,
	})
}

// GetAllPlans godoc
// @Summary Get All Plans
// @Description Mendapatkan daftar semua paket membership. Gunakan query active=true untuk hanya paket aktif.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter paket aktif saja"
// @Success 200 {array} models.Plan "Daftar paket berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil paket"
// @Router /plans [get]
func (h *PlanHandler) GetAllPlans(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if c.Query("active") == "true" {
		filter["active"] = true
	}

	plans, err := h.planRepo.GetAllPlans(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil paket: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(plans)
}

// GetEligiblePlans godoc
// @Summary Get Eligible Plans
// @Description Mendapatkan daftar paket aktif yang sesuai dengan minat member. Minat yang tidak dikenal menghasilkan daftar kosong.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interest query string true "Minat member (Personal Training / Group Classes / General / Both)"
// @Success 200 {array} models.Plan "Daftar paket yang sesuai"
// @Failure 400 {object} models.ErrorResponse "Parameter interest wajib diisi"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil paket"
// @Router /plans/eligible [get]
func (h *PlanHandler) GetEligiblePlans(c *fiber.Ctx) error {
	interest := c.Query("interest")
	if interest == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parameter interest wajib diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	plans, err := h.planRepo.GetAllPlans(ctx, bson.M{"active": true})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil paket: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(eligibility.EligiblePlans(plans, interest))
}

// GetPlanByID godoc
// @Summary Get Plan by ID
// @Description Mendapatkan detail paket berdasarkan ID
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} models.Plan "Paket berhasil ditemukan"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Paket tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil paket"
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlanByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID paket tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	plan, err := h.planRepo.GetPlanByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil paket: %v", err)})
	}
	if plan == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paket tidak ditemukan"})
	}
	return c.Status(fiber.StatusOK).JSON(plan)
}

// UpdatePlan godoc
// @Summary Update Plan
// @Description Memperbarui paket membership berdasarkan ID (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param plan body models.PlanUpdatePayload true "Data paket untuk diupdate"
// @Success 200 {object} object{message=string} "Paket berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body, ID format, atau validation error"
// @Failure 404 {object} models.ErrorResponse "Paket tidak ditemukan"
// @Failure 409 {object} models.ErrorResponse "Nama paket sudah ada"
// @Failure 500 {object} models.ErrorResponse "Gagal mengupdate paket"
// @Router /admin/plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID paket tidak valid"})
	}

	var payload models.PlanUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	updateData := bson.M{}
	if payload.Name != "" {
		existing, err := h.planRepo.FindPlanByName(ctx, payload.Name)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa paket: %v", err)})
		}
		if existing != nil && existing.ID != objID {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Nama paket sudah ada"})
		}
		updateData["name"] = payload.Name
	}
	if payload.Sessions != nil {
		updateData["sessions"] = *payload.Sessions
	}
	if payload.ValidityDays != nil {
		updateData["validity_days"] = *payload.ValidityDays
	}
	if payload.Price != nil {
		updateData["price"] = *payload.Price
	}
	if payload.Type != "" {
		updateData["type"] = payload.Type
	}
	if payload.TrainerType != "" {
		updateData["trainer_type"] = payload.TrainerType
	}
	if payload.Active != nil {
		updateData["active"] = *payload.Active
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada data untuk diupdate"})
	}

	result, err := h.planRepo.UpdatePlan(ctx, objID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengupdate paket: %v", err)})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paket tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Paket berhasil diupdate"})
}

// DeletePlan godoc
// @Summary Delete Plan
// @Description Menghapus paket membership berdasarkan ID (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} object{message=string} "Paket berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Paket tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal menghapus paket"
// @Router /admin/plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID paket tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.planRepo.DeletePlan(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghapus paket: %v", err)})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Paket tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Paket berhasil dihapus"})
}
