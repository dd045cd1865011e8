package models

import "time"

type Barber struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Position   string `gorm:"size:50;default:'Barber'" json:"position"`
	Rank       string `gorm:"size:50;default:'Senior'" json:"rank"`
	Experience string `gorm:"size:50" json:"experience"`

	Description     string `gorm:"size:500" json:"description"`
	Specializations string `gorm:"size:255" json:"specializations"`

	PhotoID *uint  `json:"photo_id"`
	Photo   *Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"photo"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
