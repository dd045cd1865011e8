package models

import "time"

type Media struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key      string `gorm:"size:255;uniqueIndex;not null" json:"key"`
	URL      string `gorm:"size:500;not null" json:"url"`
	Alt      string `gorm:"size:255" json:"alt"`
	MimeType string `gorm:"size:50" json:"mime_type"`
	Size     int64  `json:"size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
