package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Gym/models"
	"Sistem-Manajemen-Gym/pkg/paseto"
	util "Sistem-Manajemen-Gym/pkg/utils"
	"Sistem-Manajemen-Gym/repository"
)

type TaskHandler struct {
	taskRepo repository.TaskRepository
	userRepo *repository.UserRepository
}

func NewTaskHandler(taskRepo repository.TaskRepository, userRepo *repository.UserRepository) *TaskHandler {
	return &TaskHandler{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTask godoc
// @Summary Create Task
// @Description Membuat tugas operasional baru untuk staf (admin only)
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body models.TaskCreatePayload true "Data tugas baru"
// @Success 201 {object} object{message=string,id=string} "Tugas berhasil dibuat"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 404 {object} models.ErrorResponse "Staf tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat tugas"
// @Router /admin/tasks [post]
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var payload models.TaskCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	assigneeID, err := primitive.ObjectIDFromHex(payload.AssigneeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format assignee ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	assignee, err := h.userRepo.FindUserByID(ctx, assigneeID)
	if err != nil || assignee == nil || assignee.Role != "staf" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staf tidak ditemukan"})
	}

	newTask := &models.Task{
		Title:       payload.Title,
		Description: payload.Description,
		AssigneeID:  assigneeID,
		DueDate:     payload.DueDate,
		Status:      "open",
	}

	result, err := h.taskRepo.Create(ctx, newTask)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat tugas: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Tugas berhasil dibuat",
		"id":      result.InsertedID,
	})
}

// GetAllTasks godoc
// @Summary Get All Tasks
// @Description Mendapatkan semua tugas dengan filter status atau assignee (admin only)
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter berdasarkan status (open/in_progress/done)"
// @Param assignee_id query string false "Filter berdasarkan staf yang ditugaskan"
// @Success 200 {array} models.Task "Daftar tugas berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil tugas"
// @Router /admin/tasks [get]
func (h *TaskHandler) GetAllTasks(c *fiber.Ctx) error {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if assignee := c.Query("assignee_id"); assignee != "" {
		assigneeID, err := primitive.ObjectIDFromHex(assignee)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format assignee ID tidak valid"})
		}
		filter["assignee_id"] = assigneeID
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	tasks, err := h.taskRepo.FindAll(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil tugas: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(tasks)
}

// GetMyTasks godoc
// @Summary Get My Tasks
// @Description Mendapatkan daftar tugas milik staf yang sedang login
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Task "Daftar tugas berhasil diambil"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil tugas"
// @Router /tasks/my [get]
func (h *TaskHandler) GetMyTasks(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.taskRepo.FindByAssigneeID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil tugas: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(tasks)
}

// UpdateTask godoc
// @Summary Update Task
// @Description Memperbarui tugas. Admin bisa mengubah semua field, staf hanya boleh mengubah status tugas miliknya sendiri.
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param task body models.TaskUpdatePayload true "Data tugas untuk diupdate"
// @Success 200 {object} object{message=string} "Tugas berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "Akses ditolak"
// @Failure 404 {object} models.ErrorResponse "Tugas tidak ditemukan"
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tugas tidak valid"})
	}

	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi"})
	}

	var payload models.TaskUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	task, err := h.taskRepo.FindByID(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if task == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tugas tidak ditemukan"})
	}

	updateData := bson.M{}

	if claims.Role == "admin" {
		if payload.Title != "" {
			updateData["title"] = payload.Title
		}
		if payload.Description != "" {
			updateData["description"] = payload.Description
		}
		if payload.DueDate != "" {
			updateData["due_date"] = payload.DueDate
		}
		if payload.AssigneeID != "" {
			assigneeID, err := primitive.ObjectIDFromHex(payload.AssigneeID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format assignee ID tidak valid"})
			}
			updateData["assignee_id"] = assigneeID
		}
	} else {
		// Staf hanya boleh mengubah status tugas miliknya sendiri
		if task.AssigneeID != claims.UserID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: tugas ini bukan milik Anda"})
		}
		if payload.Title != "" || payload.Description != "" || payload.DueDate != "" || payload.AssigneeID != "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Staf hanya boleh mengubah status tugas"})
		}
	}

	if payload.Status != "" {
		updateData["status"] = payload.Status
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada data untuk diupdate"})
	}

	result, err := h.taskRepo.Update(ctx, objID, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengupdate tugas: %v", err)})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tugas tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Tugas berhasil diupdate"})
}

// DeleteTask godoc
// @Summary Delete Task
// @Description Menghapus tugas berdasarkan ID (admin only)
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} object{message=string} "Tugas berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.ErrorResponse "Tugas tidak ditemukan"
// @Router /admin/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tugas tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.taskRepo.Delete(ctx, objID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghapus tugas: %v", err)})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tugas tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Tugas berhasil dihapus"})
}
