package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naimkchao/barbershop-backend/internal/httperr"
	"github.com/naimkchao/barbershop-backend/internal/httpresp"
	"github.com/naimkchao/barbershop-backend/internal/infra/storage"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type MediaHandler struct {
	db      *gorm.DB
	storage *storage.S3Storage
}

func NewMediaHandler(db *gorm.DB, s *storage.S3Storage) *MediaHandler {
	return &MediaHandler{db: db, storage: s}
}

// Upload accepts a multipart image, converts it to webp and stores it
// on S3. Used for customer reference photos and admin gallery uploads.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Images must be under 10 MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}

	converted, err := storage.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image", "Only JPEG and PNG images are supported.")
		return
	}

	key := fmt.Sprintf("media/%s/%s.webp", time.Now().UTC().Format("2006/01"), uuid.NewString())
	url, err := h.storage.Upload(c.Request.Context(), key, converted, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Could not store the image.")
		return
	}

	media := models.Media{
		Key:      key,
		URL:      url,
		Alt:      c.PostForm("alt"),
		MimeType: "image/webp",
		Size:     int64(len(converted)),
	}
	if err := h.db.Create(&media).Error; err != nil {
		httperr.Internal(c, "failed_to_save_media", "Could not store the image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"doc": media})
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_media_id", "Invalid media id.")
		return
	}

	var media models.Media
	if err := h.db.First(&media, uint(id)).Error; err != nil {
		httperr.NotFound(c, "media_not_found", "Media not found.")
		return
	}
	httpresp.OK(c, media)
}

func (h *MediaHandler) List(c *gin.Context) {
	var media []models.Media
	if err := h.db.Order("id DESC").Limit(200).Find(&media).Error; err != nil {
		httperr.Internal(c, "failed_to_list_media", "Could not load media.")
		return
	}
	httpresp.List(c, media)
}
