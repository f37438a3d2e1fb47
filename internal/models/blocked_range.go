package models

import "time"

// BlockedRange is an admin-declared period during which booking is
// disallowed. Boundaries are inclusive and compared at day resolution.
// Ranges are created and hard-deleted by staff, never mutated.
type BlockedRange struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	Reason string `gorm:"size:255;not null" json:"reason"`

	// Empty service list with AppliesToAllServices set restricts every
	// service; otherwise only the listed ones.
	AppliesToAllServices bool                  `gorm:"default:false" json:"applies_to_all_services"`
	Services             []BlockedRangeService `gorm:"constraint:OnDelete:CASCADE" json:"services,omitempty"`

	CreatedByID *uint     `json:"created_by_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BlockedRangeService struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	BlockedRangeID uint `gorm:"index" json:"blocked_range_id"`
	ServiceID      uint `gorm:"index" json:"service_id"`
}
