package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/models"
	"github.com/TerraRicaResort/resort-booking/internal/sequence"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ReservationGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Durations").
		Preload("TimeSlots").
		First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Reservation (availability scan)
// --------------------------------------------------

func (r *ReservationGormRepository) ListBlockingReservations(
	ctx context.Context,
	serviceID uint,
) ([]models.Reservation, error) {

	var rs []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("id", "check_in", "check_out", "status").
		Where(
			"service_id = ? AND status NOT IN ?",
			serviceID,
			[]string{
				string(domain.StatusCancelled),
				string(domain.StatusRejected),
				string(domain.StatusCart),
			},
		).
		Order("check_in ASC").
		Find(&rs).Error; err != nil {
		return nil, err
	}

	return rs, nil
}

// --------------------------------------------------
// Reservation (create / formal id)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// MaxFormalSequence re-reads the highest NNN suffix issued for the given
// day (YYYYMMDD). Collision recovery depends on this being a fresh read.
func (r *ReservationGormRepository) MaxFormalSequence(
	ctx context.Context,
	day string,
) (int, error) {

	prefix := sequence.FormalIDPrefix + "-" + day + "-"

	var max *int
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("MAX(CAST(RIGHT(formal_id, 3) AS INTEGER))").
		Where("formal_id LIKE ?", prefix+"%").
		Scan(&max).Error; err != nil {
		return 0, err
	}

	if max == nil {
		return 0, nil
	}
	return *max, nil
}

var _ sequence.MaxScanner = (*ReservationGormRepository)(nil)

// --------------------------------------------------
// Reservation (lookup)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&res, id).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) GetReservationByHash(
	ctx context.Context,
	hash string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("hash = ?", hash).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) ListGroupMembers(
	ctx context.Context,
	groupID string,
) ([]models.Reservation, error) {

	var rs []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("multi_amenity_group_id = ?", groupID).
		Order("multi_amenity_index ASC").
		Find(&rs).Error; err != nil {
		return nil, err
	}

	return rs, nil
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// --------------------------------------------------
// Promo
// --------------------------------------------------

func (r *ReservationGormRepository) GetPromoByCode(
	ctx context.Context,
	code string,
) (*models.PromoCode, error) {

	var promo models.PromoCode
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&promo).Error; err != nil {
		return nil, err
	}

	return &promo, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
	status string,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Where("check_in >= ? AND check_in < ?", start, end)

	if status != "" {
		q = q.Where("status = ?", status)
	} else {
		// CART drafts never surface in listings
		q = q.Where("status <> ?", string(domain.StatusCart))
	}

	var rs []models.Reservation
	if err := q.Order("check_in ASC").Find(&rs).Error; err != nil {
		return nil, err
	}

	return rs, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
