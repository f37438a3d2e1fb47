package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Human-facing identifier, TRR-YYYYMMDD-NNN. Uniqueness is enforced
	// here as a hard constraint; the per-day counter is best-effort.
	FormalID string `gorm:"size:20;uniqueIndex;not null" json:"formal_id"`

	// Capability token for unauthenticated confirmation/payment pages.
	Hash string `gorm:"size:64;uniqueIndex;not null" json:"-"`

	ServiceID uint    `gorm:"index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	GuestName  string `gorm:"size:100;not null" json:"guest_name"`
	GuestPhone string `gorm:"size:20;not null" json:"guest_phone"`
	GuestEmail string `gorm:"size:100" json:"guest_email"`
	GuestCount int    `gorm:"default:1" json:"guest_count"`
	Notes      string `gorm:"size:255" json:"notes"`

	CheckIn  time.Time `gorm:"index" json:"check_in"`
	CheckOut time.Time `json:"check_out"`

	Status        string `gorm:"size:20;default:'PENDING'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	// Filename of the uploaded GCash receipt; storage itself lives behind
	// an external collaborator, only the reference is kept.
	ReceiptFilename string `gorm:"size:255" json:"receipt_filename,omitempty"`

	TotalPrice        float64 `json:"total_price"`
	DiscountAmount    float64 `json:"discount_amount"`
	DownpaymentAmount float64 `json:"downpayment_amount"`
	PromoCode         string  `gorm:"size:50" json:"promo_code,omitempty"`

	IsMultiAmenity           bool   `gorm:"default:false" json:"is_multi_amenity"`
	MultiAmenityGroupID      string `gorm:"size:36;index" json:"multi_amenity_group_id,omitempty"`
	MultiAmenityIndex        int    `json:"multi_amenity_index"`
	MultiAmenityTotal        int    `json:"multi_amenity_total"`
	MultiAmenityGroupPrimary bool   `gorm:"default:false" json:"multi_amenity_group_primary"`

	RescheduleStatus           string     `gorm:"size:20;default:'NONE'" json:"reschedule_status"`
	RescheduleProposedCheckIn  *time.Time `json:"reschedule_proposed_check_in,omitempty"`
	RescheduleProposedCheckOut *time.Time `json:"reschedule_proposed_check_out,omitempty"`
	RescheduleReason           string     `gorm:"size:255" json:"reschedule_reason,omitempty"`

	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
