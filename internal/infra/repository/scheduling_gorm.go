package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-schedule/internal/db"
	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *SchedulingGormRepository) FindBarberByName(
	ctx context.Context,
	name string,
) (*models.Barber, error) {

	var b models.Barber
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = barbers.user_id").
		Where("users.first_name = ?", name).
		Preload("User").
		First(&b).Error
	if err != nil {
		return nil, notFound(err, domain.ErrProviderNotFound)
	}
	return &b, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *SchedulingGormRepository) ListConfirmedForDay(
	ctx context.Context,
	providerID uuid.UUID,
	day string,
) ([]models.Scheduling, error) {

	var list []models.Scheduling
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND day = ? AND state = ?", providerID, day, string(domain.StateConfirmed)).
		Order("date_time ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list confirmed schedulings: %w", err)
	}
	return list, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

// ListSchedulingsForPeriod returns bookings with fromDay <= day < toDay.
func (r *SchedulingGormRepository) ListSchedulingsForPeriod(
	ctx context.Context,
	providerID uuid.UUID,
	fromDay string,
	toDay string,
) ([]models.Scheduling, error) {

	var list []models.Scheduling
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND day >= ? AND day < ?", providerID, fromDay, toDay).
		Order("date_time ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list schedulings: %w", err)
	}
	return list, nil
}

func (r *SchedulingGormRepository) ListClients(
	ctx context.Context,
	providerID uuid.UUID,
) ([]domain.Client, error) {

	var clients []domain.Client
	if err := r.db.WithContext(ctx).
		Model(&models.Scheduling{}).
		Select("client_name AS name, client_phone AS phone, COUNT(*) AS bookings").
		Where("provider_id = ?", providerID).
		Group("client_name, client_phone").
		Order("client_name ASC, client_phone ASC").
		Scan(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// --------------------------------------------------
// Atomic writes
// --------------------------------------------------

func (r *SchedulingGormRepository) Submit(
	ctx context.Context,
	draft *models.Scheduling,
	decide domain.Decide,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockProvider(tx, draft.ProviderID); err != nil {
			return err
		}

		confirmed, err := confirmedTimes(tx, draft.ProviderID, draft.Day, 0)
		if err != nil {
			return err
		}

		var booked int64
		if err := tx.Model(&models.Scheduling{}).
			Where("provider_id = ? AND day = ? AND client_phone = ?", draft.ProviderID, draft.Day, draft.ClientPhone).
			Count(&booked).Error; err != nil {
			return fmt.Errorf("count client bookings: %w", err)
		}

		if err := decide(domain.DaySnapshot{
			Confirmed:    confirmed,
			ClientBooked: booked > 0,
		}); err != nil {
			return err
		}

		return tx.Create(draft).Error
	})

	return translateWriteError(err)
}

func (r *SchedulingGormRepository) Confirm(
	ctx context.Context,
	key domain.ConfirmationKey,
	guard domain.ConfirmGuard,
	now time.Time,
) (*models.Scheduling, error) {

	var target models.Scheduling

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockProvider(tx, key.ProviderID); err != nil {
			return err
		}

		if err := tx.
			Where(
				"provider_id = ? AND day = ? AND slot = ? AND client_name = ? AND client_phone = ? AND state = ?",
				key.ProviderID, key.Day, key.Slot, key.ClientName, key.ClientPhone,
				string(domain.StateNotConfirmed),
			).
			First(&target).Error; err != nil {
			return notFound(err, domain.ErrTargetNotFound)
		}

		others, err := confirmedTimes(tx, key.ProviderID, key.Day, target.ID)
		if err != nil {
			return err
		}

		if err := guard(&target, others); err != nil {
			return err
		}

		res := tx.Model(&models.Scheduling{}).
			Where("id = ? AND state = ?", target.ID, string(domain.StateNotConfirmed)).
			Updates(map[string]any{
				"state":        target.State,
				"confirmed":    target.Confirmed,
				"confirmed_at": target.ConfirmedAt,
				"updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTargetNotFound
		}

		target.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, translateWriteError(err)
	}

	return &target, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *SchedulingGormRepository) GetSchedulingForBarber(
	ctx context.Context,
	id uint,
	providerID uuid.UUID,
) (*models.Scheduling, error) {

	var s models.Scheduling
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", id, providerID).
		First(&s).Error; err != nil {
		return nil, notFound(err, domain.ErrSchedulingNotFound)
	}
	return &s, nil
}

func (r *SchedulingGormRepository) UpdateState(
	ctx context.Context,
	s *models.Scheduling,
	from domain.State,
	now time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Scheduling{}).
		Where("id = ? AND state = ?", s.ID, string(from)).
		Updates(map[string]any{
			"state":        s.State,
			"confirmed":    s.Confirmed,
			"confirmed_at": s.ConfirmedAt,
			"executed_at":  s.ExecutedAt,
			"updated_at":   now,
		})
	if res.Error != nil {
		return fmt.Errorf("update scheduling state: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidState
	}
	s.UpdatedAt = now
	return nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

// lockProvider serialises writers per provider. SQLite has no row locks and
// relies on its single connection instead.
func lockProvider(tx *gorm.DB, providerID uuid.UUID) error {
	var b models.Barber
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", providerID).
		First(&b).Error
	if err != nil {
		return notFound(err, domain.ErrProviderNotFound)
	}
	return nil
}

func confirmedTimes(tx *gorm.DB, providerID uuid.UUID, day string, exclude uint) ([]time.Time, error) {
	q := tx.Model(&models.Scheduling{}).
		Where("provider_id = ? AND day = ? AND state = ?", providerID, day, string(domain.StateConfirmed))
	if exclude != 0 {
		q = q.Where("id <> ?", exclude)
	}

	var rows []models.Scheduling
	if err := q.Select("id", "date_time").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load confirmed schedulings: %w", err)
	}

	out := make([]time.Time, 0, len(rows))
	for _, s := range rows {
		out = append(out, s.DateTime)
	}
	return out, nil
}

func notFound(err error, business error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return business
	}
	return err
}

// translateWriteError maps a unique-index violation to the business error
// the pre-write check would have returned.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := httperr.AsBusiness(err); ok {
		return err
	}

	if index, ok := httperr.UniqueViolation(err); ok {
		if index == db.ClientDayIndex || strings.Contains(index, "client_phone") {
			return domain.ErrDuplicateBooking
		}
		return domain.ErrSlotTaken
	}

	return fmt.Errorf("write scheduling: %w", err)
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
