package repository

import (
	"context"

	"github.com/TerraRicaResort/resort-booking/internal/models"
)

// --------------------------------------------------
// Blocked ranges
// --------------------------------------------------

func (r *ReservationGormRepository) ListBlockedRangesForService(
	ctx context.Context,
	serviceID uint,
) ([]models.BlockedRange, error) {

	var ranges []models.BlockedRange
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where(
			"applies_to_all_services = true OR id IN (?)",
			r.db.Model(&models.BlockedRangeService{}).
				Select("blocked_range_id").
				Where("service_id = ?", serviceID),
		).
		Order("start_date ASC").
		Find(&ranges).Error; err != nil {
		return nil, err
	}

	return ranges, nil
}
