package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Gym/models"
	util "Sistem-Manajemen-Gym/pkg/utils"
	"Sistem-Manajemen-Gym/repository"
)

type ClassScheduleHandler struct {
	scheduleRepo *repository.ClassScheduleRepository
	userRepo     *repository.UserRepository
}

func NewClassScheduleHandler(scheduleRepo *repository.ClassScheduleRepository, userRepo *repository.UserRepository) *ClassScheduleHandler {
	return &ClassScheduleHandler{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
	}
}

// CreateClassSchedule godoc
// @Summary Create Class Schedule
// @Description Menambahkan jadwal kelas baru, bisa sekali jalan atau berulang lewat recurrence rule (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schedule body models.ClassScheduleCreatePayload true "Data jadwal kelas baru"
// @Success 201 {object} object{message=string,data=models.ClassSchedule} "Jadwal kelas berhasil ditambahkan"
// @Failure 400 {object} models.ValidationErrorResponse "Format data tidak valid"
// @Failure 404 {object} models.ErrorResponse "Trainer tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal menyimpan jadwal kelas"
// @Router /admin/class-schedules [post]
func (h *ClassScheduleHandler) CreateClassSchedule(c *fiber.Ctx) error {
	var payload models.ClassScheduleCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	trainerID, err := primitive.ObjectIDFromHex(payload.TrainerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format trainer ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	trainer, err := h.userRepo.FindUserByID(ctx, trainerID)
	if err != nil || trainer == nil || trainer.Role != "staf" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer tidak ditemukan"})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Recurrence rule tidak valid", "details": err.Error()})
		}
	}

	schedule := models.ClassSchedule{
		ID:             primitive.NewObjectID(),
		Name:           payload.Name,
		TrainerID:      trainerID,
		Date:           strings.TrimSpace(payload.Date),
		StartTime:      strings.TrimSpace(payload.StartTime),
		EndTime:        strings.TrimSpace(payload.EndTime),
		Capacity:       payload.Capacity,
		Note:           payload.Note,
		RecurrenceRule: payload.RecurrenceRule,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	created, err := h.scheduleRepo.Create(ctx, &schedule)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal kelas", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Jadwal kelas berhasil ditambahkan", "data": created})
}

// GetClassScheduleByID godoc
// @Summary Get Class Schedule by ID
// @Description Mendapatkan satu aturan jadwal kelas berdasarkan ID
// @Tags ClassSchedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class Schedule ID"
// @Success 200 {object} object{data=models.ClassSchedule} "Jadwal kelas ditemukan"
// @Failure 400 {object} models.ErrorResponse "ID jadwal kelas tidak valid"
// @Failure 404 {object} models.ErrorResponse "Jadwal kelas tidak ditemukan"
// @Router /class-schedules/{id} [get]
func (h *ClassScheduleHandler) GetClassScheduleByID(c *fiber.Ctx) error {
	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jadwal kelas tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	schedule, err := h.scheduleRepo.FindByID(ctx, objectID)
	if err != nil {
		if err.Error() == "jadwal tidak ditemukan" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal kelas tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal kelas", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": schedule})
}

// GetAllClassSchedules godoc
// @Summary Get All Class Schedules
// @Description Mendapatkan jadwal kelas yang sudah diekspansi per tanggal dalam rentang start_date..end_date. Jadwal berulang diekspansi dari recurrence rule, hari libur nasional dilewati.
// @Tags ClassSchedules
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Tanggal awal (YYYY-MM-DD)"
// @Param end_date query string true "Tanggal akhir (YYYY-MM-DD)"
// @Success 200 {object} object{data=[]models.ClassSchedule} "Daftar jadwal kelas"
// @Failure 400 {object} models.ErrorResponse "Format tanggal tidak valid"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil jadwal kelas"
// @Router /class-schedules [get]
func (h *ClassScheduleHandler) GetAllClassSchedules(c *fiber.Ctx) error {
	layout := "2006-01-02"

	startDate, err := time.Parse(layout, c.Query("start_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format start_date tidak valid"})
	}
	endDate, err := time.Parse(layout, c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format end_date tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	scheduleRules, err := h.scheduleRepo.FindAllWithFilter(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil aturan jadwal kelas"})
	}

	holidayMap, err := util.GetHolidayMap(startDate.Format("2006"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data hari libur"})
	}
	if startDate.Year() != endDate.Year() {
		nextYearHolidays, _ := util.GetHolidayMap(endDate.Format("2006"))
		for date, val := range nextYearHolidays {
			holidayMap[date] = val
		}
	}

	finalSchedules := []models.ClassSchedule{}

	for _, rule := range scheduleRules {
		if rule.RecurrenceRule != "" {
			rOption, err := rrule.StrToROption(rule.RecurrenceRule)
			if err != nil {
				continue
			}

			ruleStartDate, _ := time.Parse(layout, rule.Date)
			rOption.Dtstart = ruleStartDate

			rr, err := rrule.NewRRule(*rOption)
			if err != nil {
				continue
			}

			ruleSet := rrule.Set{}
			ruleSet.RRule(rr)

			for _, instance := range ruleSet.Between(startDate, endDate, true) {
				instanceDateStr := instance.Format(layout)
				if !holidayMap[instanceDateStr] {
					finalSchedules = append(finalSchedules, models.ClassSchedule{
						ID:             rule.ID,
						Name:           rule.Name,
						TrainerID:      rule.TrainerID,
						Date:           instanceDateStr,
						StartTime:      rule.StartTime,
						EndTime:        rule.EndTime,
						Capacity:       rule.Capacity,
						Note:           rule.Note,
						RecurrenceRule: rule.RecurrenceRule,
					})
				}
			}
		} else {
			ruleDate, _ := time.Parse(layout, rule.Date)
			if (ruleDate.After(startDate) || ruleDate.Equal(startDate)) && (ruleDate.Before(endDate) || ruleDate.Equal(endDate)) {
				if !holidayMap[rule.Date] {
					finalSchedules = append(finalSchedules, rule)
				}
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": finalSchedules})
}

// GetHolidays godoc
// @Summary Get National Holidays
// @Description Mendapatkan daftar hari libur nasional untuk frontend kalender
// @Tags ClassSchedules
// @Produce json
// @Security BearerAuth
// @Param year query string false "Tahun (default tahun berjalan)"
// @Success 200 {array} models.Holiday "Daftar hari libur"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil data hari libur"
// @Router /class-schedules/holidays [get]
func (h *ClassScheduleHandler) GetHolidays(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		year = time.Now().Format("2006")
	}

	holidays, err := util.GetExternalHolidays(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data hari libur", "details": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(holidays)
}

// UpdateClassSchedule godoc
// @Summary Update Class Schedule
// @Description Memperbarui aturan jadwal kelas, termasuk recurrence rule-nya (admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class Schedule ID"
// @Param schedule body models.ClassScheduleUpdatePayload true "Data jadwal kelas untuk diupdate"
// @Success 200 {object} object{message=string} "Jadwal kelas berhasil diperbarui"
// @Failure 400 {object} models.ValidationErrorResponse "Format data tidak valid"
// @Failure 404 {object} models.ErrorResponse "Jadwal kelas tidak ditemukan"
// @Router /admin/class-schedules/{id} [put]
func (h *ClassScheduleHandler) UpdateClassSchedule(c *fiber.Ctx) error {
	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jadwal kelas tidak valid"})
	}

	var payload models.ClassScheduleUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data tidak valid", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Recurrence rule tidak valid", "details": err.Error()})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := h.scheduleRepo.UpdateByID(ctx, objectID, &payload); err != nil {
		if strings.Contains(err.Error(), "jadwal tidak ditemukan") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal kelas tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui jadwal kelas", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Jadwal kelas berhasil diperbarui"})
}

// DeleteClassSchedule godoc
// @Summary Delete Class Schedule
// @Description Menghapus aturan jadwal kelas berdasarkan ID (admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class Schedule ID"
// @Success 200 {object} object{message=string} "Jadwal kelas berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "ID jadwal kelas tidak valid"
// @Failure 404 {object} models.ErrorResponse "Jadwal kelas tidak ditemukan"
// @Router /admin/class-schedules/{id} [delete]
func (h *ClassScheduleHandler) DeleteClassSchedule(c *fiber.Ctx) error {
	objectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jadwal kelas tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.scheduleRepo.DeleteByID(ctx, objectID); err != nil {
		if strings.Contains(err.Error(), "jadwal tidak ditemukan") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal kelas tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jadwal kelas", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Jadwal kelas berhasil dihapus"})
}
