package dto

import "time"

type ReservationListDTO struct {
	ID            uint      `json:"id"`
	FormalID      string    `json:"formal_id"`
	ServiceName   string    `json:"service_name"`
	GuestName     string    `json:"guest_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	GroupID       string    `json:"group_id,omitempty"`
}
