package models

import "time"

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"size:100;uniqueIndex" json:"slug"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `json:"price"`

	// Human-entered duration text, e.g. "30 minutes" or "1 hour".
	// Parsed to minutes by domain/booking.ParseDuration; unparseable
	// values fall back to 30 minutes.
	Duration string `gorm:"size:50" json:"duration"`

	ImageID *uint  `json:"image_id"`
	Image   *Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"image"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
