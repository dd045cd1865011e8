package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/httpresp"
	"github.com/naimkchao/barbershop-backend/internal/infra/cache"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

// ServiceHandler is the admin CRUD for the service catalog. The public
// read path lives on BookingHandler; writes here invalidate its cache.
type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewServiceHandler(db *gorm.DB, c *cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c}
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration" binding:"required"`
	ImageID     *uint   `json:"image_id"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Slug        *string  `json:"slug"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *string  `json:"duration"`
	ImageID     *uint    `json:"image_id"`
	Active      *bool    `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Preload("Image").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.Preload("Image").First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		ImageID:     req.ImageID,
		Active:      true,
	}
	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyServices)
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Slug != nil {
		svc.Slug = *req.Slug
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.ImageID != nil {
		svc.ImageID = req.ImageID
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyServices)
	httpresp.OK(c, svc)
}

// Delete soft-disables; bookings keep their service reference.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	res := h.db.Model(&models.Service{}).
		Where("id = ?", uint(id)).
		Update("active", false)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyServices)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
