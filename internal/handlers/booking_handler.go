package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/httpresp"
	"github.com/naimkchao/barbershop-backend/internal/infra/cache"
	"github.com/naimkchao/barbershop-backend/internal/metrics"
	"github.com/naimkchao/barbershop-backend/internal/models"
	ucBooking "github.com/naimkchao/barbershop-backend/internal/usecase/booking"
)

const (
	cacheKeyServices = "public:services"
	cacheKeyBarbers  = "public:barbers"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	db           *gorm.DB
	cache        *cache.Cache
	availability *ucBooking.GetAvailableSlots
	create       *ucBooking.CreateBooking
}

func NewBookingHandler(
	db *gorm.DB,
	c *cache.Cache,
	availability *ucBooking.GetAvailableSlots,
	create *ucBooking.CreateBooking,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		cache:        c,
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Comments      string `json:"comments"`

	ReferencePhotoID *uint `json:"reference_photo_id"`
	Agreement        bool  `json:"agreement"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *BookingHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if h.cache.GetJSON(c.Request.Context(), cacheKeyServices, &services) {
		httpresp.List(c, services)
		return
	}

	if err := h.db.
		Preload("Image").
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), cacheKeyServices, services)
	httpresp.List(c, services)
}

func (h *BookingHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if h.cache.GetJSON(c.Request.Context(), cacheKeyBarbers, &barbers) {
		httpresp.List(c, barbers)
		return
	}

	if err := h.db.
		Preload("Photo").
		Where("active = ?", true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), cacheKeyBarbers, barbers)
	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")

	if barberIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barber and date are required.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(barberID), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not compute available slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BarberID:         req.BarberID,
		ServiceID:        req.ServiceID,
		Date:             req.Date,
		Time:             req.Time,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		Phone:            req.Phone,
		Comments:         req.Comments,
		ReferencePhotoID: req.ReferencePhotoID,
		Agreement:        req.Agreement,
	})
	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	metrics.BookingsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"id": b.ID})
}

func mapCreateBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_unavailable"):
		// same message whether the pre-check or the unique index lost
		metrics.BookingConflicts.Inc()
		httperr.Write(c, http.StatusConflict, "slot_unavailable", "Selected slot is no longer available.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
	case httperr.IsBusiness(err, "agreement_required"):
		httperr.BadRequest(c, "agreement_required", "You must accept the terms to book.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
	case httperr.IsBusiness(err, "missing_customer_info"):
		httperr.BadRequest(c, "missing_customer_info", "Name and phone are required.")
	case httperr.IsBusiness(err, "invalid_request"):
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
	case httperr.IsBusiness(err, "invalid_date"),
		httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking. Please try again later.")
	}
}

////////////////////////////////////////////////////////
// CONFIRMATION PAGE
////////////////////////////////////////////////////////

func (h *BookingHandler) GetBooking(c *gin.Context) {
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
