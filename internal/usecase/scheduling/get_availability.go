package scheduling

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	holidays domain.HolidayChecker
	loc      *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	holidays domain.HolidayChecker,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		holidays: holidays,
		loc:      loc,
	}
}

// Execute returns the free slots of providerName on date's calendar day.
// Holidays and closed days come back as a plan with that status and no slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	providerName string,
	date time.Time,
) (domain.DayPlan, error) {

	barber, err := uc.repo.FindBarberByName(ctx, providerName)
	if err != nil {
		return domain.DayPlan{}, err
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)

	if uc.holidays.IsHoliday(ctx, day) {
		return domain.HolidayPlan(day), nil
	}

	plan := domain.GenerateSlots(day)
	if !plan.IsOpen() {
		return plan, nil
	}

	confirmed, err := uc.repo.ListConfirmedForDay(ctx, barber.ID, timezone.Day(day))
	if err != nil {
		return domain.DayPlan{}, err
	}

	taken := make([]time.Time, 0, len(confirmed))
	for _, s := range confirmed {
		taken = append(taken, s.DateTime)
	}

	return plan.WithoutTaken(taken), nil
}
