package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"not null;index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Absolute instants, stored in UTC. The partial unique index on
	// (barber_id, start_time) is created in internal/db because gorm
	// tags cannot express the WHERE clause.
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	Phone         string `gorm:"size:20;not null" json:"phone"`
	Comments      string `gorm:"size:500" json:"comments"`

	ReferencePhotoID *uint  `json:"reference_photo_id"`
	ReferencePhoto   *Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"reference_photo"`

	Status    string `gorm:"size:20;default:'pending'" json:"status"`
	Agreement bool   `gorm:"not null" json:"agreement"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
