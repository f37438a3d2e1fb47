package reservation

import (
	"context"
	"log"
	"time"

	"github.com/TerraRicaResort/resort-booking/internal/audit"
	domain "github.com/TerraRicaResort/resort-booking/internal/domain/reservation"
	"github.com/TerraRicaResort/resort-booking/internal/models"
	"github.com/TerraRicaResort/resort-booking/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

// ApplyGroupAction resolves the full multi-amenity group from any member
// and moves every member to the identical status/paymentStatus target.
// The writes are sequential with no cross-row transaction, so the only
// consistency backstop is verification-after-write: members that did not
// reach the target are reported explicitly, never squashed to success.
type ApplyGroupAction struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewApplyGroupAction(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifier *notify.Dispatcher,
) *ApplyGroupAction {
	return &ApplyGroupAction{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ApplyGroupAction) Execute(
	ctx context.Context,
	reservationID uint,
	action domain.GroupAction,
	actorID *uint,
) ([]uint, error) {

	ref, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	// The target pair comes from the referenced reservation so the whole
	// group converges on the same state.
	target, err := domain.TargetFor(ref, action)
	if err != nil {
		return nil, err
	}

	members, err := uc.members(ctx, ref.MultiAmenityGroupID, ref.IsMultiAmenity, reservationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	affected := make([]uint, 0, len(members))

	for i := range members {
		m := &members[i]
		affected = append(affected, m.ID)

		domain.ApplyTarget(m, target, now)
		if err := uc.repo.UpdateReservation(ctx, m); err != nil {
			// keep going; verification below reports what actually landed
			log.Printf("group action %s: update failed for reservation %d: %v", action, m.ID, err)
		}
	}

	if err := uc.verify(ctx, ref.MultiAmenityGroupID, ref.IsMultiAmenity, affected, target); err != nil {
		return affected, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "reservation_" + string(action),
		Entity:   "reservation",
		EntityID: &reservationID,
		Metadata: map[string]any{"affected": affected},
	})

	uc.notify.Dispatch(notify.Message{
		Event:      string(action),
		FormalID:   ref.FormalID,
		GuestEmail: ref.GuestEmail,
		Detail:     string(target.Status),
	})

	return affected, nil
}

func (uc *ApplyGroupAction) members(
	ctx context.Context,
	groupID string,
	isGroup bool,
	reservationID uint,
) ([]models.Reservation, error) {

	if isGroup && groupID != "" {
		return uc.repo.ListGroupMembers(ctx, groupID)
	}

	ref, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return []models.Reservation{*ref}, nil
}

func (uc *ApplyGroupAction) verify(
	ctx context.Context,
	groupID string,
	isGroup bool,
	affected []uint,
	target domain.ActionTarget,
) error {

	var failed []uint

	if isGroup && groupID != "" {
		fresh, err := uc.repo.ListGroupMembers(ctx, groupID)
		if err != nil {
			// cannot confirm convergence; surface every member as suspect
			return &domain.PartialGroupError{GroupID: groupID, FailedIDs: affected}
		}
		for i := range fresh {
			if !domain.AtTarget(&fresh[i], target) {
				failed = append(failed, fresh[i].ID)
			}
		}
	} else {
		for _, id := range affected {
			fresh, err := uc.repo.GetReservationByID(ctx, id)
			if err != nil || !domain.AtTarget(fresh, target) {
				failed = append(failed, id)
			}
		}
	}

	if len(failed) > 0 {
		return &domain.PartialGroupError{GroupID: groupID, FailedIDs: failed}
	}
	return nil
}
