package scheduling

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SubmitBookingInput struct {
	Provider    string
	DateTime    string
	ClientName  string
	ClientPhone string
	WorkType    string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	clock

	repo      domain.Repository
	holidays  domain.HolidayChecker
	validator domain.Validator
	audit     *audit.Dispatcher
	loc       *time.Location
}

func NewSubmitBooking(
	repo domain.Repository,
	holidays domain.HolidayChecker,
	validator domain.Validator,
	audit *audit.Dispatcher,
	loc *time.Location,
) *SubmitBooking {
	return &SubmitBooking{
		clock:     newClock(),
		repo:      repo,
		holidays:  holidays,
		validator: validator,
		audit:     audit,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitBooking) Execute(
	ctx context.Context,
	in SubmitBookingInput,
) (*models.Scheduling, error) {

	// --------------------------------------------------
	// Provider
	// --------------------------------------------------
	barber, err := uc.repo.FindBarberByName(ctx, in.Provider)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date / time in the business time zone
	// --------------------------------------------------
	start, err := timezone.ParseInstant(uc.loc, in.DateTime)
	if err != nil {
		return nil, domain.ErrInvalidDateTime
	}
	start = start.Truncate(time.Minute)

	// Remote lookup stays outside the store transaction.
	holiday := uc.holidays.IsHoliday(ctx, start)

	// --------------------------------------------------
	// Decide and insert atomically
	// --------------------------------------------------
	draft := &models.Scheduling{
		ProviderID:  barber.ID,
		DateTime:    start,
		Day:         timezone.Day(start),
		Slot:        timezone.Clock(start),
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		State:       string(domain.InitialState()),
	}

	now := uc.now().In(uc.loc)
	req := domain.Request{
		DateTime:    start,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		WorkType:    in.WorkType,
		Holiday:     holiday,
	}

	err = uc.repo.Submit(ctx, draft, func(snap domain.DaySnapshot) error {
		code, err := uc.validator.Validate(req, snap, now)
		if err != nil {
			return err
		}
		draft.WorkType = code
		return nil
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			uc.audit.Dispatch(audit.Event{
				BarberID: &barber.ID,
				Action:   audit.ActionSchedulingRejected,
				Entity:   audit.EntityScheduling,
				Metadata: map[string]any{
					"reason":    be.Code,
					"date_time": start,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarberID: &barber.ID,
		Action:   audit.ActionSchedulingCreated,
		Entity:   audit.EntityScheduling,
		EntityID: &draft.ID,
	})

	return draft, nil
}
