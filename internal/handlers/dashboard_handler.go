package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

type DashboardHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewDashboardHandler(db *gorm.DB, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{db: db, loc: loc}
}

type popularService struct {
	ServiceID uint   `json:"service_id"`
	Name      string `json:"name"`
	Count     int64  `json:"count"`
}

// Stats backs the admin dashboard: today's load, upcoming volume,
// realized revenue and the most booked services.
func (h *DashboardHandler) Stats(c *gin.Context) {
	now := time.Now().In(h.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	tomorrow := today.AddDate(0, 0, 1)

	var todayCount int64
	if err := h.db.Model(&models.Booking{}).
		Where(
			"start_time >= ? AND start_time < ? AND status IN ?",
			today.UTC(), tomorrow.UTC(), []string{"pending", "confirmed"},
		).
		Count(&todayCount).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	var upcomingCount int64
	if err := h.db.Model(&models.Booking{}).
		Where("start_time >= ? AND status IN ?", now.UTC(), []string{"pending", "confirmed"}).
		Count(&upcomingCount).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	// Revenue counts completed appointments only.
	var revenue float64
	if err := h.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.status = ?", "completed").
		Scan(&revenue).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	var noShows int64
	if err := h.db.Model(&models.Booking{}).
		Where("status = ?", "no_show").
		Count(&noShows).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	var popular []popularService
	if err := h.db.Model(&models.Booking{}).
		Select("bookings.service_id, services.name, COUNT(*) AS count").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.status IN ?", []string{"confirmed", "completed"}).
		Group("bookings.service_id, services.name").
		Order("count DESC").
		Limit(5).
		Scan(&popular).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_bookings":    todayCount,
		"upcoming_bookings": upcomingCount,
		"total_revenue":     revenue,
		"no_shows":          noShows,
		"popular_services":  popular,
	})
}
