package models

import "time"

// Pricing mode is a tagged variant chosen at service-definition time:
// a service is either duration-priced (stays measured in hours/nights)
// or slot-priced (fixed daily time windows). Exactly one child table
// applies, selected by PricingMode.
const (
	PricingModeDuration = "duration"
	PricingModeTimeSlot = "time_slot"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`
	Capacity    int    `json:"capacity"`
	Active      bool   `gorm:"default:true" json:"active"`

	PricingMode string `gorm:"size:20;not null" json:"pricing_mode"`

	Durations []ServiceDuration `gorm:"constraint:OnDelete:CASCADE" json:"durations,omitempty"`
	TimeSlots []ServiceTimeSlot `gorm:"constraint:OnDelete:CASCADE" json:"time_slots,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceDuration struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"index" json:"service_id"`

	Label string  `gorm:"size:50" json:"label"`
	Hours int     `gorm:"not null" json:"hours"`
	Price float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceTimeSlot struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"index" json:"service_id"`

	Label string `gorm:"size:50" json:"label"`
	// HH:MM wall-clock times; a slot whose end precedes its start
	// crosses midnight into the next day.
	StartTime string  `gorm:"size:5;not null" json:"start_time"`
	EndTime   string  `gorm:"size:5;not null" json:"end_time"`
	Price     float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
