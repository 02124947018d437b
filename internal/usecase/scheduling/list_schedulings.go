package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/dto"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

type ListSchedulingsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListSchedulingsByDate(repo domain.Repository, loc *time.Location) *ListSchedulingsByDate {
	return &ListSchedulingsByDate{repo: repo, loc: loc}
}

func (uc *ListSchedulingsByDate) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date time.Time,
) ([]dto.SchedulingListDTO, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 0, 1)

	list, err := uc.repo.ListSchedulingsForPeriod(ctx, barberID, timezone.Day(start), timezone.Day(end))
	if err != nil {
		return nil, err
	}
	return toListDTO(list, uc.loc), nil
}

type ListSchedulingsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListSchedulingsByMonth(repo domain.Repository, loc *time.Location) *ListSchedulingsByMonth {
	return &ListSchedulingsByMonth{repo: repo, loc: loc}
}

func (uc *ListSchedulingsByMonth) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	year int,
	month int,
) ([]dto.SchedulingListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	list, err := uc.repo.ListSchedulingsForPeriod(ctx, barberID, timezone.Day(start), timezone.Day(end))
	if err != nil {
		return nil, err
	}
	return toListDTO(list, uc.loc), nil
}

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context, barberID uuid.UUID) ([]domain.Client, error) {
	return uc.repo.ListClients(ctx, barberID)
}

func toListDTO(list []models.Scheduling, loc *time.Location) []dto.SchedulingListDTO {
	out := make([]dto.SchedulingListDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SchedulingListDTO{
			ID:          s.ID,
			DateTime:    s.DateTime.In(loc),
			Slot:        s.Slot,
			State:       s.State,
			StateLabel:  domain.State(s.State).Label(),
			Confirmed:   s.Confirmed,
			ClientName:  s.ClientName,
			ClientPhone: s.ClientPhone,
			WorkType:    domain.WorkTypeLabel(s.WorkType),
		})
	}
	return out
}
