package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/naimkchao/barbershop-backend/internal/audit"
	"github.com/naimkchao/barbershop-backend/internal/config"
	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/handlers"
	"github.com/naimkchao/barbershop-backend/internal/infra/cache"
	"github.com/naimkchao/barbershop-backend/internal/infra/repository"
	"github.com/naimkchao/barbershop-backend/internal/infra/storage"
	"github.com/naimkchao/barbershop-backend/internal/middleware"
	"github.com/naimkchao/barbershop-backend/internal/notify"
	ucBooking "github.com/naimkchao/barbershop-backend/internal/usecase/booking"
)

type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Cache    *cache.Cache
	Storage  *storage.S3Storage
	Notifier *notify.Service
	Loc      *time.Location
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	repo := repository.NewBookingGormRepository(d.DB)
	auditDispatcher := audit.NewDispatcher(audit.New(d.DB))

	slotCfg := domain.SlotConfig{
		Open:            d.Cfg.OpenTime,
		Close:           d.Cfg.CloseTime,
		IntervalMinutes: d.Cfg.IntervalMinutes,
	}

	availability := ucBooking.NewGetAvailableSlots(repo, d.Loc, slotCfg)
	createBooking := ucBooking.NewCreateBooking(repo, availability, d.Loc, auditDispatcher, d.Notifier)
	updateStatus := ucBooking.NewUpdateBookingStatus(repo, auditDispatcher)

	authHandler := handlers.NewAuthHandler(d.DB, d.Cfg)
	bookingHandler := handlers.NewBookingHandler(d.DB, d.Cache, availability, createBooking)
	adminBookings := handlers.NewAdminBookingHandler(d.DB, updateStatus, d.Loc)
	services := handlers.NewServiceHandler(d.DB, d.Cache)
	team := handlers.NewTeamHandler(d.DB, d.Cache)
	media := handlers.NewMediaHandler(d.DB, d.Storage)
	dashboard := handlers.NewDashboardHandler(d.DB, d.Loc)
	auditLogs := handlers.NewAuditLogsHandler(d.DB)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ------------------------------------------------------
	// Public site
	// ------------------------------------------------------
	public := r.Group("/api/public")
	{
		public.GET("/services", bookingHandler.ListServices)
		public.GET("/barbers", bookingHandler.ListBarbers)
		public.GET("/availability", bookingHandler.GetAvailableSlots)
		public.POST("/bookings", bookingHandler.CreateBooking)
		public.GET("/bookings/:id", bookingHandler.GetBooking)
		public.POST("/media", media.Upload)
	}

	// ------------------------------------------------------
	// Auth
	// ------------------------------------------------------
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ------------------------------------------------------
	// Admin
	// ------------------------------------------------------
	admin := r.Group("/api/me")
	admin.Use(middleware.AuthMiddleware(d.Cfg))
	{
		admin.GET("/bookings", adminBookings.ListBookings)
		admin.GET("/bookings/:id", adminBookings.GetBooking)
		admin.PATCH("/bookings/:id/status", adminBookings.UpdateStatus)
		admin.GET("/bookings/schedule.pdf", adminBookings.DaySchedulePDF)

		admin.GET("/services", services.List)
		admin.GET("/services/:id", services.Get)
		admin.POST("/services", services.Create)
		admin.PUT("/services/:id", services.Update)
		admin.DELETE("/services/:id", services.Delete)

		admin.GET("/team", team.List)
		admin.GET("/team/:id", team.Get)
		admin.POST("/team", team.Create)
		admin.PUT("/team/:id", team.Update)
		admin.DELETE("/team/:id", team.Delete)

		admin.GET("/media", media.List)
		admin.GET("/media/:id", media.Get)
		admin.POST("/media", media.Upload)

		admin.GET("/dashboard", dashboard.Stats)
		admin.GET("/audit-logs", auditLogs.List)
	}
}
