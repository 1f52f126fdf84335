package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Manajemen-Gym/config/middleware"
	_ "Sistem-Manajemen-Gym/docs"
	"Sistem-Manajemen-Gym/handlers"
	"Sistem-Manajemen-Gym/repository"
)

func SetupRoutes(app *fiber.App) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	planRepo := repository.NewPlanRepository()
	salaryRepo := repository.NewSalaryRepository()
	requestRepo := repository.NewRequestRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	scheduleRepo := repository.NewClassScheduleRepository()
	taskRepo := repository.NewTaskRepository()

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo, planRepo, requestRepo, attendanceRepo)
	planHandler := handlers.NewPlanHandler(planRepo)
	salaryHandler := handlers.NewSalaryHandler(salaryRepo, userRepo)
	requestHandler := handlers.NewRequestHandler(requestRepo, planRepo, userRepo, scheduleRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo)
	scheduleHandler := handlers.NewClassScheduleHandler(scheduleRepo, userRepo)
	taskHandler := handlers.NewTaskHandler(taskRepo, userRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem Manajemen Gym API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", "./uploads")

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)
	authGroup.Post("/register", middleware.AuthMiddleware(), middleware.AdminMiddleware(), authHandler.Register)

	// User routes
	protectedUserGroup := api.Group("/users", middleware.AuthMiddleware())
	protectedUserGroup.Post("/change-password", authHandler.ChangePassword)
	protectedUserGroup.Post("/profile-photo", userHandler.UploadProfilePhoto)
	protectedUserGroup.Get("/:id", userHandler.GetUserByID)

	// Plan routes (katalog bisa dilihat semua user yang login)
	planGroup := api.Group("/plans", middleware.AuthMiddleware())
	planGroup.Get("/", planHandler.GetAllPlans)
	planGroup.Get("/eligible", planHandler.GetEligiblePlans)
	planGroup.Get("/:id", planHandler.GetPlanByID)

	// Salary routes untuk staf
	salaryGroup := api.Group("/salaries", middleware.AuthMiddleware(), middleware.StaffMiddleware())
	salaryGroup.Get("/my", salaryHandler.GetMySalaries)
	salaryGroup.Get("/:id", salaryHandler.GetSalaryByID)

	// Request routes untuk member
	requestGroup := api.Group("/requests", middleware.AuthMiddleware())
	requestGroup.Post("/", requestHandler.CreateRequest)
	requestGroup.Get("/my", requestHandler.GetMyRequests)

	// Attendance routes
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Post("/scan", attendanceHandler.ScanQRCode)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendanceHistory)

	// Class schedule routes (kalender kelas bisa dilihat semua user yang login)
	scheduleGroup := api.Group("/class-schedules", middleware.AuthMiddleware())
	scheduleGroup.Get("/", scheduleHandler.GetAllClassSchedules)
	scheduleGroup.Get("/holidays", scheduleHandler.GetHolidays)
	scheduleGroup.Get("/:id", scheduleHandler.GetClassScheduleByID)

	// Task routes untuk staf
	taskGroup := api.Group("/tasks", middleware.AuthMiddleware(), middleware.StaffMiddleware())
	taskGroup.Get("/my", taskHandler.GetMyTasks)
	taskGroup.Patch("/:id", taskHandler.UpdateTask)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.Get("/users", userHandler.GetAllUsers)
	adminGroup.Put("/users/:id", userHandler.UpdateUser)
	adminGroup.Delete("/users/:id", userHandler.DeleteUser)
	adminGroup.Get("/dashboard-stats", userHandler.GetDashboardStats)

	adminGroup.Post("/plans", planHandler.CreatePlan)
	adminGroup.Put("/plans/:id", planHandler.UpdatePlan)
	adminGroup.Delete("/plans/:id", planHandler.DeletePlan)

	adminGroup.Post("/salaries", salaryHandler.CreateSalary)
	adminGroup.Get("/salaries", salaryHandler.GetAllSalaries)
	adminGroup.Patch("/salaries/:id/hours", salaryHandler.UpdateSalaryHours)
	adminGroup.Patch("/salaries/:id/status", salaryHandler.UpdateSalaryStatus)
	adminGroup.Post("/salaries/:id/:kind", salaryHandler.AddLedgerEntry)
	adminGroup.Delete("/salaries/:id/:kind/:index", salaryHandler.RemoveLedgerEntry)
	adminGroup.Delete("/salaries/:id", salaryHandler.DeleteSalary)

	adminGroup.Get("/requests", requestHandler.GetAllRequests)
	adminGroup.Patch("/requests/:id/decide", requestHandler.DecideRequest)

	adminGroup.Get("/attendance", attendanceHandler.GetAllAttendances)
	adminGroup.Get("/attendance/generate-qr", attendanceHandler.GenerateQRCode)
	adminGroup.Get("/attendance/today", attendanceHandler.GetTodayAttendance)

	adminGroup.Post("/class-schedules", scheduleHandler.CreateClassSchedule)
	adminGroup.Put("/class-schedules/:id", scheduleHandler.UpdateClassSchedule)
	adminGroup.Delete("/class-schedules/:id", scheduleHandler.DeleteClassSchedule)

	adminGroup.Post("/tasks", taskHandler.CreateTask)
	adminGroup.Get("/tasks", taskHandler.GetAllTasks)
	adminGroup.Delete("/tasks/:id", taskHandler.DeleteTask)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
