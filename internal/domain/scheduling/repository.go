package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

// Decide inspects the day snapshot and either approves the pending write or
// returns the business error that blocks it.
type Decide func(snap DaySnapshot) error

// ConfirmGuard approves a confirmation of target given the other confirmed
// start times of its day.
type ConfirmGuard func(target *models.Scheduling, confirmed []time.Time) error

// Client is one distinct client a provider has bookings with.
type Client struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Bookings int64  `json:"bookings"`
}

type ConfirmationKey struct {
	ProviderID  uuid.UUID
	Day         string
	Slot        string
	ClientName  string
	ClientPhone string
}

type Repository interface {
	// -------- Provider --------
	FindBarberByName(ctx context.Context, name string) (*models.Barber, error)

	// -------- Availability --------
	ListConfirmedForDay(ctx context.Context, providerID uuid.UUID, day string) ([]models.Scheduling, error)

	// -------- Listing --------
	ListSchedulingsForPeriod(ctx context.Context, providerID uuid.UUID, fromDay, toDay string) ([]models.Scheduling, error)
	ListClients(ctx context.Context, providerID uuid.UUID) ([]Client, error)

	// -------- Atomic writes --------

	// Submit locks the provider, snapshots draft's day, runs decide and
	// inserts draft only if decide returns nil.
	Submit(ctx context.Context, draft *models.Scheduling, decide Decide) error

	// Confirm locks the provider, finds the NCNF booking matching key, runs
	// guard and swaps it to CONF.
	Confirm(ctx context.Context, key ConfirmationKey, guard ConfirmGuard, now time.Time) (*models.Scheduling, error)

	// -------- State change --------
	GetSchedulingForBarber(ctx context.Context, id uint, providerID uuid.UUID) (*models.Scheduling, error)

	// UpdateState persists s's state fields only while the row is still in
	// from; otherwise ErrInvalidState.
	UpdateState(ctx context.Context, s *models.Scheduling, from State, now time.Time) error
}
