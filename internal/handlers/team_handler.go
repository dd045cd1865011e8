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

// TeamHandler is the admin CRUD for barbers.
type TeamHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewTeamHandler(db *gorm.DB, c *cache.Cache) *TeamHandler {
	return &TeamHandler{db: db, cache: c}
}

type CreateBarberRequest struct {
	Name            string `json:"name" binding:"required"`
	Slug            string `json:"slug" binding:"required"`
	Position        string `json:"position"`
	Rank            string `json:"rank"`
	Experience      string `json:"experience"`
	Description     string `json:"description"`
	Specializations string `json:"specializations"`
	PhotoID         *uint  `json:"photo_id"`
}

type UpdateBarberRequest struct {
	Name            *string `json:"name"`
	Slug            *string `json:"slug"`
	Position        *string `json:"position"`
	Rank            *string `json:"rank"`
	Experience      *string `json:"experience"`
	Description     *string `json:"description"`
	Specializations *string `json:"specializations"`
	PhotoID         *uint   `json:"photo_id"`
	Active          *bool   `json:"active"`
}

func (h *TeamHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Preload("Photo").
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *TeamHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.Preload("Photo").First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}
	httpresp.OK(c, barber)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber data.")
		return
	}

	barber := models.Barber{
		Name:            req.Name,
		Slug:            req.Slug,
		Position:        req.Position,
		Rank:            req.Rank,
		Experience:      req.Experience,
		Description:     req.Description,
		Specializations: req.Specializations,
		PhotoID:         req.PhotoID,
		Active:          true,
	}
	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyBarbers)
	c.JSON(http.StatusCreated, barber)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber data.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Slug != nil {
		barber.Slug = *req.Slug
	}
	if req.Position != nil {
		barber.Position = *req.Position
	}
	if req.Rank != nil {
		barber.Rank = *req.Rank
	}
	if req.Experience != nil {
		barber.Experience = *req.Experience
	}
	if req.Description != nil {
		barber.Description = *req.Description
	}
	if req.Specializations != nil {
		barber.Specializations = *req.Specializations
	}
	if req.PhotoID != nil {
		barber.PhotoID = req.PhotoID
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update barber.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyBarbers)
	httpresp.OK(c, barber)
}

// Delete deactivates the barber so existing bookings stay readable.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	res := h.db.Model(&models.Barber{}).
		Where("id = ?", uint(id)).
		Update("active", false)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyBarbers)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
