package scheduling

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/holiday"
	"github.com/BruksfildServices01/barber-schedule/internal/infra/repository"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
	"github.com/BruksfildServices01/barber-schedule/internal/testutil"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

var brt = time.FixedZone("BRT", -3*60*60)

type fixture struct {
	barber *models.Barber

	availability *GetAvailability
	submit       *SubmitBooking
	confirm      *ConfirmBooking
	execute      *ExecuteBooking
	byDate       *ListSchedulingsByDate
	byMonth      *ListSchedulingsByMonth
	clients      *ListClients
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := testutil.NewDB(t)
	repo := repository.NewSchedulingGormRepository(gdb)

	cal := holiday.NewCalendar(holiday.Static{
		{Date: "2024-09-07", Name: "Independência do Brasil", Type: "national"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	now := func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, brt) }

	f := &fixture{
		barber:       testutil.SeedBarber(t, gdb, "Alice"),
		availability: NewGetAvailability(repo, cal, brt),
		submit:       NewSubmitBooking(repo, cal, domain.NewValidator("+55"), nil, brt),
		confirm:      NewConfirmBooking(repo, nil, brt),
		execute:      NewExecuteBooking(repo, nil, brt),
		byDate:       NewListSchedulingsByDate(repo, brt),
		byMonth:      NewListSchedulingsByMonth(repo, brt),
		clients:      NewListClients(repo),
	}
	f.submit.SetClock(now)
	f.confirm.SetClock(now)
	f.execute.SetClock(now)

	return f
}

func (f *fixture) book(t *testing.T, at, name, phone string) *models.Scheduling {
	t.Helper()

	s, err := f.submit.Execute(context.Background(), SubmitBookingInput{
		Provider:    "Alice",
		DateTime:    at,
		ClientName:  name,
		ClientPhone: phone,
		WorkType:    "Corte",
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) confirmAt(at, name, phone string) (*models.Scheduling, error) {
	return f.confirm.Execute(context.Background(), ConfirmBookingInput{
		BarberID:    f.barber.ID,
		DateTime:    at,
		ClientName:  name,
		ClientPhone: phone,
	})
}

func slotClocks(plan domain.DayPlan) []string {
	out := make([]string, 0, len(plan.Slots))
	for _, s := range plan.Slots {
		out = append(out, timezone.Clock(s))
	}
	return out
}

func TestSubmit_StoresNotConfirmed(t *testing.T) {
	f := newFixture(t)

	s := f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")

	assert.NotZero(t, s.ID)
	assert.Equal(t, string(domain.StateNotConfirmed), s.State)
	assert.False(t, s.Confirmed)
	assert.Equal(t, "CT", s.WorkType)
	assert.Equal(t, "2024-06-10", s.Day)
	assert.Equal(t, "10:00", s.Slot)
}

func TestSubmit_CollisionWithConfirmed(t *testing.T) {
	f := newFixture(t)

	f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")
	_, err := f.confirmAt("2024-06-10T10:00", "John Smith", "+5511999998888")
	require.NoError(t, err)

	_, err = f.submit.Execute(context.Background(), SubmitBookingInput{
		Provider:    "Alice",
		DateTime:    "2024-06-10T10:15",
		ClientName:  "Mary Jones",
		ClientPhone: "+5511977776666",
		WorkType:    "Barba",
	})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	s := f.book(t, "2024-06-10T11:00", "Mary Jones", "+5511977776666")
	_, err = f.confirmAt("2024-06-10T11:00", s.ClientName, s.ClientPhone)
	assert.NoError(t, err)
}

func TestSubmit_UnconfirmedNeverBlocks(t *testing.T) {
	f := newFixture(t)

	f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")
	f.book(t, "2024-06-10T10:00", "Mary Jones", "+5511977776666")
}

func TestSubmit_DuplicatePerDay(t *testing.T) {
	f := newFixture(t)

	f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")

	_, err := f.submit.Execute(context.Background(), SubmitBookingInput{
		Provider:    "Alice",
		DateTime:    "2024-06-10T15:00",
		ClientName:  "John Smith",
		ClientPhone: "+5511999998888",
		WorkType:    "Barba",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestSubmit_Rejections(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   SubmitBookingInput
		want error
	}{
		{
			name: "unknown provider",
			in:   SubmitBookingInput{Provider: "Zed", DateTime: "2024-06-10T10:00"},
			want: domain.ErrProviderNotFound,
		},
		{
			name: "bad date",
			in:   SubmitBookingInput{Provider: "Alice", DateTime: "amanhã"},
			want: domain.ErrInvalidDateTime,
		},
		{
			name: "past",
			in:   SubmitBookingInput{Provider: "Alice", DateTime: "2024-05-31T10:00", ClientName: "John Smith", ClientPhone: "+5511999998888", WorkType: "Corte"},
			want: domain.ErrPastDate,
		},
		{
			name: "sunday",
			in:   SubmitBookingInput{Provider: "Alice", DateTime: "2024-06-09T10:00", ClientName: "John Smith", ClientPhone: "+5511999998888", WorkType: "Corte"},
			want: domain.ErrClosedDay,
		},
		{
			name: "holiday",
			in:   SubmitBookingInput{Provider: "Alice", DateTime: "2024-09-07T10:00", ClientName: "John Smith", ClientPhone: "+5511999998888", WorkType: "Corte"},
			want: domain.ErrHoliday,
		},
		{
			name: "lunch",
			in:   SubmitBookingInput{Provider: "Alice", DateTime: "2024-06-10T12:00", ClientName: "John Smith", ClientPhone: "+5511999998888", WorkType: "Corte"},
			want: domain.ErrOutsideHours,
		},
		{
			name: "work type",
			in:   SubmitBookingInput{Provider: "Alice", DateTime: "2024-06-10T10:00", ClientName: "John Smith", ClientPhone: "+5511999998888", WorkType: "Selecionar"},
			want: domain.ErrInvalidWorkType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.submit.Execute(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfirm_Twice(t *testing.T) {
	f := newFixture(t)
	f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")

	s, err := f.confirmAt("2024-06-10T10:00", "John Smith", "+5511999998888")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateConfirmed), s.State)
	assert.True(t, s.Confirmed)

	_, err = f.confirmAt("2024-06-10T10:00", "John Smith", "+5511999998888")
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestConfirm_StaggeredPending(t *testing.T) {
	f := newFixture(t)
	f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")
	f.book(t, "2024-06-10T10:15", "Mary Jones", "+5511977776666")

	_, err := f.confirmAt("2024-06-10T10:00", "John Smith", "+5511999998888")
	require.NoError(t, err)

	_, err = f.confirmAt("2024-06-10T10:15", "Mary Jones", "+5511977776666")
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestConfirmedBookingsStayApart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phones := []string{"+5511900000001", "+5511900000002", "+5511900000003", "+5511900000004", "+5511900000005", "+5511900000006"}
	times := []string{"09:00", "09:15", "09:30", "09:45", "10:00", "10:20"}

	for i, tm := range times {
		at := "2024-06-10T" + tm
		_, err := f.submit.Execute(ctx, SubmitBookingInput{
			Provider: "Alice", DateTime: at, ClientName: "Client Number", ClientPhone: phones[i], WorkType: "Corte",
		})
		if err != nil {
			continue
		}
		_, _ = f.confirmAt(at, "Client Number", phones[i])
	}

	list, err := f.byDate.Execute(ctx, f.barber.ID, time.Date(2024, 6, 10, 0, 0, 0, 0, brt))
	require.NoError(t, err)

	var confirmed []time.Time
	for _, s := range list {
		if s.Confirmed {
			confirmed = append(confirmed, s.DateTime)
		}
	}
	require.NotEmpty(t, confirmed)
	for i := range confirmed {
		for j := i + 1; j < len(confirmed); j++ {
			diff := confirmed[i].Sub(confirmed[j])
			if diff < 0 {
				diff = -diff
			}
			assert.GreaterOrEqual(t, diff, domain.SlotStep)
		}
	}
}

func TestExecute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")

	_, err := f.execute.Execute(ctx, f.barber.ID, s.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.confirmAt("2024-06-10T10:00", "John Smith", "+5511999998888")
	require.NoError(t, err)

	// still days ahead: the slot stays held
	_, err = f.execute.Execute(ctx, f.barber.ID, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotStarted)

	plan, err := f.availability.Execute(ctx, "Alice", time.Date(2024, 6, 10, 0, 0, 0, 0, brt))
	require.NoError(t, err)
	assert.NotContains(t, slotClocks(plan), "10:00")

	_, err = f.submit.Execute(ctx, SubmitBookingInput{
		Provider:    "Alice",
		DateTime:    "2024-06-10T10:00",
		ClientName:  "Mary Jones",
		ClientPhone: "+5511977776666",
		WorkType:    "Corte",
	})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	f.execute.SetClock(func() time.Time { return time.Date(2024, 6, 10, 10, 40, 0, 0, brt) })

	done, err := f.execute.Execute(ctx, f.barber.ID, s.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateExecuted), done.State)
	assert.False(t, done.Confirmed)

	_, err = f.execute.Execute(ctx, f.barber.ID, s.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.execute.Execute(ctx, f.barber.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrSchedulingNotFound)
}

func TestAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")
	_, err := f.confirmAt("2024-06-10T10:00", "John Smith", "+5511999998888")
	require.NoError(t, err)
	// pending bookings stay visible
	f.book(t, "2024-06-10T14:00", "Mary Jones", "+5511977776666")

	plan, err := f.availability.Execute(ctx, "Alice", time.Date(2024, 6, 10, 0, 0, 0, 0, brt))
	require.NoError(t, err)
	assert.Equal(t, domain.DayOpen, plan.Status)
	assert.Equal(t, []string{
		"09:00", "09:30", "10:30", "11:00", "11:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
		"16:00", "16:30", "17:00", "17:30",
	}, slotClocks(plan))

	sunday, err := f.availability.Execute(ctx, "Alice", time.Date(2024, 6, 9, 0, 0, 0, 0, brt))
	require.NoError(t, err)
	assert.Equal(t, domain.DayClosed, sunday.Status)
	assert.Empty(t, sunday.Slots)

	hol, err := f.availability.Execute(ctx, "Alice", time.Date(2024, 9, 7, 0, 0, 0, 0, brt))
	require.NoError(t, err)
	assert.Equal(t, domain.DayHoliday, hol.Status)
	assert.Empty(t, hol.Slots)

	_, err = f.availability.Execute(ctx, "Nobody", time.Date(2024, 6, 10, 0, 0, 0, 0, brt))
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, "2024-06-10T10:00", "John Smith", "+5511999998888")
	f.book(t, "2024-06-11T09:00", "John Smith", "+5511999998888")
	f.book(t, "2024-06-15T09:30", "Mary Jones", "+5511977776666")

	day, err := f.byDate.Execute(ctx, f.barber.ID, time.Date(2024, 6, 10, 0, 0, 0, 0, brt))
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "Corte", day[0].WorkType)
	assert.Equal(t, "Not confirmed", day[0].StateLabel)

	month, err := f.byMonth.Execute(ctx, f.barber.ID, 2024, 6)
	require.NoError(t, err)
	assert.Len(t, month, 3)

	clients, err := f.clients.Execute(ctx, f.barber.ID)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, int64(2), clients[0].Bookings)
}
