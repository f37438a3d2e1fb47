package models

import "time"

type PromoCode struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code       string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	PercentOff float64 `gorm:"not null" json:"percent_off"`
	Active     bool    `gorm:"default:true" json:"active"`

	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
