package reservation

import (
	"context"
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Blocked ranges --------
	ListBlockedRangesForService(
		ctx context.Context,
		serviceID uint,
	) ([]models.BlockedRange, error)

	// -------- Reservations (availability) --------
	ListBlockingReservations(
		ctx context.Context,
		serviceID uint,
	) ([]models.Reservation, error)

	// -------- Reservations (create) --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	MaxFormalSequence(
		ctx context.Context,
		day string,
	) (int, error)

	// -------- Reservations (lookup) --------
	GetReservationByID(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	GetReservationByHash(
		ctx context.Context,
		hash string,
	) (*models.Reservation, error)

	ListGroupMembers(
		ctx context.Context,
		groupID string,
	) ([]models.Reservation, error)

	// -------- Reservations (state change) --------
	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// -------- Promo --------
	GetPromoByCode(
		ctx context.Context,
		code string,
	) (*models.PromoCode, error)

	// -------- Listings --------
	ListReservationsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
		status string,
	) ([]models.Reservation, error)
}
