package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
	"github.com/BruksfildServices01/barber-schedule/internal/testutil"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

var brt = time.FixedZone("BRT", -3*60*60)

func draftAt(providerID uuid.UUID, at time.Time, name, phone string) *models.Scheduling {
	return &models.Scheduling{
		ProviderID:  providerID,
		DateTime:    at,
		Day:         timezone.Day(at),
		Slot:        timezone.Clock(at),
		ClientName:  name,
		ClientPhone: phone,
		WorkType:    "CT",
		State:       string(domain.StateNotConfirmed),
	}
}

func approve(domain.DaySnapshot) error { return nil }

func keyOf(s *models.Scheduling) domain.ConfirmationKey {
	return domain.ConfirmationKey{
		ProviderID:  s.ProviderID,
		Day:         s.Day,
		Slot:        s.Slot,
		ClientName:  s.ClientName,
		ClientPhone: s.ClientPhone,
	}
}

func confirmGuard(now time.Time) domain.ConfirmGuard {
	return func(target *models.Scheduling, confirmed []time.Time) error {
		if err := domain.CheckCollision(target.DateTime, confirmed); err != nil {
			return err
		}
		return domain.Confirm(target, now)
	}
}

func TestFindBarberByName(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)

	got, err := repo.FindBarberByName(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "Alice", got.DisplayName())

	_, err = repo.FindBarberByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestSubmit_PassesSnapshotToDecide(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, brt)

	first := draftAt(b.ID, time.Date(2024, 6, 10, 10, 0, 0, 0, brt), "John Smith", "+5511999998888")
	require.NoError(t, repo.Submit(ctx, first, approve))
	_, err := repo.Confirm(ctx, keyOf(first), confirmGuard(now), now)
	require.NoError(t, err)

	var seen domain.DaySnapshot
	second := draftAt(b.ID, time.Date(2024, 6, 10, 11, 0, 0, 0, brt), "John Smith", "+5511999998888")
	err = repo.Submit(ctx, second, func(snap domain.DaySnapshot) error {
		seen = snap
		return domain.ErrDuplicateBooking
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
	assert.True(t, seen.ClientBooked)
	require.Len(t, seen.Confirmed, 1)
	assert.True(t, seen.Confirmed[0].Equal(first.DateTime))

	var count int64
	require.NoError(t, gdb.Model(&models.Scheduling{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmit_UnknownProvider(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewSchedulingGormRepository(gdb)

	err := repo.Submit(
		context.Background(),
		draftAt(uuid.New(), time.Date(2024, 6, 10, 10, 0, 0, 0, brt), "John Smith", "+5511999998888"),
		approve,
	)
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestSubmit_ClientDayIndexBackstop(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.Submit(ctx,
		draftAt(b.ID, time.Date(2024, 6, 10, 10, 0, 0, 0, brt), "John Smith", "+5511999998888"), approve))

	// decide approves blindly; the index still refuses the second row
	err := repo.Submit(ctx,
		draftAt(b.ID, time.Date(2024, 6, 10, 15, 0, 0, 0, brt), "John Smith", "+5511999998888"), approve)
	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)

	// another day is fine
	require.NoError(t, repo.Submit(ctx,
		draftAt(b.ID, time.Date(2024, 6, 11, 10, 0, 0, 0, brt), "John Smith", "+5511999998888"), approve))
}

func TestConfirm_ConfirmedSlotIndexBackstop(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, brt)
	at := time.Date(2024, 6, 10, 10, 0, 0, 0, brt)

	a := draftAt(b.ID, at, "John Smith", "+5511999998888")
	c := draftAt(b.ID, at, "Mary Jones", "+5511977776666")
	require.NoError(t, repo.Submit(ctx, a, approve))
	require.NoError(t, repo.Submit(ctx, c, approve))

	blind := func(target *models.Scheduling, _ []time.Time) error {
		return domain.Confirm(target, now)
	}

	_, err := repo.Confirm(ctx, keyOf(a), blind, now)
	require.NoError(t, err)

	_, err = repo.Confirm(ctx, keyOf(c), blind, now)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestConfirm_StaggeredPendingBookings(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, brt)

	a := draftAt(b.ID, time.Date(2024, 6, 10, 10, 0, 0, 0, brt), "John Smith", "+5511999998888")
	c := draftAt(b.ID, time.Date(2024, 6, 10, 10, 15, 0, 0, brt), "Mary Jones", "+5511977776666")
	require.NoError(t, repo.Submit(ctx, a, approve))
	require.NoError(t, repo.Submit(ctx, c, approve))

	got, err := repo.Confirm(ctx, keyOf(a), confirmGuard(now), now)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateConfirmed), got.State)
	assert.True(t, got.Confirmed)

	_, err = repo.Confirm(ctx, keyOf(c), confirmGuard(now), now)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	var stored models.Scheduling
	require.NoError(t, gdb.First(&stored, c.ID).Error)
	assert.Equal(t, string(domain.StateNotConfirmed), stored.State)
	assert.False(t, stored.Confirmed)
}

func TestConfirm_ConcurrentSingleWinner(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, brt)

	s := draftAt(b.ID, time.Date(2024, 6, 10, 10, 0, 0, 0, brt), "John Smith", "+5511999998888")
	require.NoError(t, repo.Submit(ctx, s, approve))

	const n = 8
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Confirm(ctx, keyOf(s), confirmGuard(now), now)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrTargetNotFound)
	}
	assert.Equal(t, 1, wins)
}

func TestConfirm_TargetNotFound(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, brt)

	_, err := repo.Confirm(context.Background(), domain.ConfirmationKey{
		ProviderID:  b.ID,
		Day:         "2024-06-10",
		Slot:        "10:00",
		ClientName:  "John Smith",
		ClientPhone: "+5511999998888",
	}, confirmGuard(now), now)

	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestUpdateState_CompareAndSwap(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	repo := NewSchedulingGormRepository(gdb)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, brt)

	s := draftAt(b.ID, time.Date(2024, 6, 10, 10, 0, 0, 0, brt), "John Smith", "+5511999998888")
	require.NoError(t, repo.Submit(ctx, s, approve))
	_, err := repo.Confirm(ctx, keyOf(s), confirmGuard(now), now)
	require.NoError(t, err)

	done := time.Date(2024, 6, 10, 10, 40, 0, 0, brt)

	loaded, err := repo.GetSchedulingForBarber(ctx, s.ID, b.ID)
	require.NoError(t, err)
	require.NoError(t, domain.Execute(loaded, done))
	require.NoError(t, repo.UpdateState(ctx, loaded, domain.StateConfirmed, done))

	stored, err := repo.GetSchedulingForBarber(ctx, s.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateExecuted), stored.State)
	assert.True(t, stored.UpdatedAt.Equal(done), "updated_at follows the caller's clock")

	// a stale copy still believes it is confirmed
	assert.ErrorIs(t, repo.UpdateState(ctx, loaded, domain.StateConfirmed, done), domain.ErrInvalidState)

	_, err = repo.GetSchedulingForBarber(ctx, s.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrSchedulingNotFound)
}

func TestListing(t *testing.T) {
	gdb := testutil.NewDB(t)
	b := testutil.SeedBarber(t, gdb, "Alice")
	other := testutil.SeedBarber(t, gdb, "Bruno")
	repo := NewSchedulingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.Submit(ctx, draftAt(b.ID, time.Date(2024, 6, 10, 14, 0, 0, 0, brt), "John Smith", "+5511999998888"), approve))
	require.NoError(t, repo.Submit(ctx, draftAt(b.ID, time.Date(2024, 6, 10, 9, 0, 0, 0, brt), "Mary Jones", "+5511977776666"), approve))
	require.NoError(t, repo.Submit(ctx, draftAt(b.ID, time.Date(2024, 7, 1, 9, 0, 0, 0, brt), "John Smith", "+5511999998888"), approve))
	require.NoError(t, repo.Submit(ctx, draftAt(other.ID, time.Date(2024, 6, 10, 9, 0, 0, 0, brt), "Paul Brown", "+5511966665555"), approve))

	june, err := repo.ListSchedulingsForPeriod(ctx, b.ID, "2024-06-01", "2024-07-01")
	require.NoError(t, err)
	require.Len(t, june, 2)
	assert.Equal(t, "09:00", june[0].Slot)
	assert.Equal(t, "14:00", june[1].Slot)

	clients, err := repo.ListClients(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Client{
		{Name: "John Smith", Phone: "+5511999998888", Bookings: 2},
		{Name: "Mary Jones", Phone: "+5511977776666", Bookings: 1},
	}, clients)

	confirmed, err := repo.ListConfirmedForDay(ctx, b.ID, "2024-06-10")
	require.NoError(t, err)
	assert.Empty(t, confirmed)
}
