package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/naimkchao/barbershop-backend/internal/domain/booking"
	"github.com/naimkchao/barbershop-backend/internal/docs"
	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/httpresp"
	"github.com/naimkchao/barbershop-backend/internal/middleware"
	"github.com/naimkchao/barbershop-backend/internal/models"
	ucBooking "github.com/naimkchao/barbershop-backend/internal/usecase/booking"
)

type AdminBookingHandler struct {
	db           *gorm.DB
	updateStatus *ucBooking.UpdateBookingStatus
	loc          *time.Location
}

func NewAdminBookingHandler(
	db *gorm.DB,
	updateStatus *ucBooking.UpdateBookingStatus,
	loc *time.Location,
) *AdminBookingHandler {
	return &AdminBookingHandler{db: db, updateStatus: updateStatus, loc: loc}
}

////////////////////////////////////////////////////////
// LIST
////////////////////////////////////////////////////////

// ListBookings supports optional filters: date (YYYY-MM-DD, salon
// time), barber_id and status, with page/limit pagination.
func (h *AdminBookingHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := h.db.Model(&models.Booking{}).
		Preload("Barber").
		Preload("Service")

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		dayEnd := day.AddDate(0, 0, 1)
		query = query.Where("start_time >= ? AND start_time < ?", day.UTC(), dayEnd.UTC())
	}

	if barberIDStr := c.Query("barber_id"); barberIDStr != "" {
		barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
			return
		}
		query = query.Where("barber_id = ?", uint(barberID))
	}

	if status := c.Query("status"); status != "" {
		if !domain.IsValidStatus(domain.Status(status)) {
			httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	var bookings []models.Booking
	if err := query.
		Order("start_time ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  bookings,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *AdminBookingHandler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("Barber").
		Preload("Service").
		Preload("ReferencePhoto").
		First(&b, uint(id)).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}

////////////////////////////////////////////////////////
// STATUS
////////////////////////////////////////////////////////

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	var actorID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if uid, ok := v.(uint); ok {
			actorID = &uid
		}
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), uint(id), domain.Status(req.Status), actorID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Write(c, http.StatusConflict, "invalid_state", "This status change is not allowed.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Could not update booking status.")
		}
		return
	}

	httpresp.OK(c, b)
}

////////////////////////////////////////////////////////
// DAY SCHEDULE PDF
////////////////////////////////////////////////////////

func (h *AdminBookingHandler) DaySchedulePDF(c *gin.Context) {
	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")
	if dateStr == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Barber and date are required.")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(barberID)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	dayEnd := day.AddDate(0, 0, 1)
	var bookings []models.Booking
	if err := h.db.
		Preload("Service").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ? AND status IN ?",
			barber.ID, day.UTC(), dayEnd.UTC(), []string{"pending", "confirmed", "completed"},
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	pdf, err := docs.BuildDaySchedulePDF(dateStr, &barber, bookings, h.loc)
	if err != nil {
		httperr.Internal(c, "failed_to_render_pdf", "Could not render the schedule.")
		return
	}

	filename := fmt.Sprintf("schedule-%s-%s.pdf", barber.Slug, dateStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
