package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NomadRelief/stall-scheduler/internal/cache"
	"github.com/NomadRelief/stall-scheduler/internal/config"
	"github.com/NomadRelief/stall-scheduler/internal/handlers"
	infraRepo "github.com/NomadRelief/stall-scheduler/internal/infra/repository"
	"github.com/NomadRelief/stall-scheduler/internal/middleware"
	"github.com/NomadRelief/stall-scheduler/internal/notify"
	"github.com/NomadRelief/stall-scheduler/internal/storage"
	ucAppointment "github.com/NomadRelief/stall-scheduler/internal/usecase/appointment"
	ucHistory "github.com/NomadRelief/stall-scheduler/internal/usecase/history"
)

type Dependencies struct {
	DB    *gorm.DB
	Cache *cache.Client
	Cfg   *config.Config
}

// RegisterRoutes wires the singletons and the route table. It returns the
// sweep usecase so the caller can hand it to the cron scheduler.
func RegisterRoutes(r *gin.Engine, deps Dependencies) *ucHistory.Sweep {

	db := deps.DB
	cfg := deps.Cfg

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	notifier := notify.New(db, deps.Cache)
	dispatcher := notify.NewDispatcher(notifier)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	bookNearestUC := ucAppointment.NewBookNearest(appointmentRepo, dispatcher)
	bookDirectedUC := ucAppointment.NewBookDirected(appointmentRepo, dispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	transitionUC := ucAppointment.NewTransition(appointmentRepo, dispatcher)
	listByDateUC := ucAppointment.NewListByDate(appointmentRepo)

	sweepUC := ucHistory.NewSweep(appointmentRepo, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	companyHandler := handlers.NewCompanyHandler(db)
	trailerHandler := handlers.NewTrailerHandler(db, uploader)
	stallHandler := handlers.NewStallHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		bookNearestUC,
		bookDirectedUC,
		availabilityUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		transitionUC,
		listByDateUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(db, deps.Cache)
	notificationHandler := handlers.NewNotificationHandler(db)
	historyHandler := handlers.NewHistoryHandler(db, sweepUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/public/:slug/availability", bookingHandler.AvailabilityForClient)
		api.POST("/appointments", bookingHandler.CreateAuto)
		api.POST("/bookings", bookingHandler.CreateDirected)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/company", companyHandler.GetMeCompany)
			secured.PATCH("/me/company", companyHandler.UpdateMeCompany)

			secured.GET("/me/trailers", trailerHandler.List)
			secured.POST("/me/trailers", trailerHandler.Create)
			secured.PATCH("/me/trailers/:id", trailerHandler.Update)
			secured.POST("/me/trailers/:id/photo", trailerHandler.UploadPhoto)

			secured.GET("/me/stalls", stallHandler.List)
			secured.POST("/me/stalls", stallHandler.Create)
			secured.PATCH("/me/stalls/:id", stallHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/me/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/dashboard", dashboardHandler.Grid)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			secured.GET("/me/history", historyHandler.List)
			secured.POST("/me/history/sweep", middleware.AdminOnly(), historyHandler.RunSweep)
		}
	}

	return sweepUC
}
