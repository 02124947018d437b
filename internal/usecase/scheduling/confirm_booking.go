package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

type ConfirmBookingInput struct {
	BarberID    uuid.UUID
	DateTime    string
	ClientName  string
	ClientPhone string
}

type ConfirmBooking struct {
	clock

	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *ConfirmBooking {
	return &ConfirmBooking{
		clock: newClock(),
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute moves the matching NCNF booking to CONF. A second call for the same
// booking finds nothing to confirm.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	in ConfirmBookingInput,
) (*models.Scheduling, error) {

	start, err := timezone.ParseInstant(uc.loc, in.DateTime)
	if err != nil {
		return nil, domain.ErrInvalidDateTime
	}
	start = start.Truncate(time.Minute)

	now := uc.now().In(uc.loc)

	key := domain.ConfirmationKey{
		ProviderID:  in.BarberID,
		Day:         timezone.Day(start),
		Slot:        timezone.Clock(start),
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
	}

	s, err := uc.repo.Confirm(ctx, key, func(target *models.Scheduling, confirmed []time.Time) error {
		if err := domain.CheckCollision(target.DateTime, confirmed); err != nil {
			return err
		}
		return domain.Confirm(target, now)
	}, now)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &in.BarberID,
		Action:   audit.ActionSchedulingConfirmed,
		Entity:   audit.EntityScheduling,
		EntityID: &s.ID,
	})

	return s, nil
}
