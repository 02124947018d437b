package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

type ExecuteBooking struct {
	clock

	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewExecuteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *ExecuteBooking {
	return &ExecuteBooking{
		clock: newClock(),
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *ExecuteBooking) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	schedulingID uint,
) (*models.Scheduling, error) {

	s, err := uc.repo.GetSchedulingForBarber(ctx, schedulingID, barberID)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.loc)
	if err := domain.Execute(s, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateState(ctx, s, domain.StateConfirmed, now); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   audit.ActionSchedulingExecuted,
		Entity:   audit.EntityScheduling,
		EntityID: &s.ID,
	})

	return s, nil
}
