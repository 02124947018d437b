package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-schedule/internal/domain/barber"
	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

var (
	ErrUsernameTaken      = httperr.New("username_taken", "Nome de usuário já cadastrado.")
	ErrInvalidCredentials = httperr.New("invalid_credentials", "Usuário ou senha inválidos.")
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// CreateBarber inserts the user and its barber row together.
func (r *AccountGormRepository) CreateBarber(
	ctx context.Context,
	user *models.User,
	b *models.Barber,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		b.UserID = user.ID
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		b.User = *user
		return nil
	})
	return translateAccountError(err)
}

// FindByUsername loads the barber whose account has username. Unknown
// usernames come back as ErrInvalidCredentials.
func (r *AccountGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.Barber, error) {

	var b models.Barber
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = barbers.user_id").
		Where("users.username = ?", username).
		Preload("User").
		First(&b).Error
	if err != nil {
		return nil, notFound(err, ErrInvalidCredentials)
	}
	return &b, nil
}

func (r *AccountGormRepository) GetBarber(
	ctx context.Context,
	id uuid.UUID,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err, domain.ErrProviderNotFound)
	}
	return &b, nil
}

// SaveProfile persists the patchable fields of b and its user.
func (r *AccountGormRepository) SaveProfile(
	ctx context.Context,
	b *models.Barber,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Barber{}).
			Where("id = ?", b.ID).
			Update("phone_number", b.PhoneNumber).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", b.UserID).
			Updates(map[string]any{
				"first_name": b.User.FirstName,
				"last_name":  b.User.LastName,
			}).Error
	})
	return translateAccountError(err)
}

func translateAccountError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := httperr.AsBusiness(err); ok {
		return err
	}

	if index, ok := httperr.UniqueViolation(err); ok {
		if strings.Contains(index, "first_name") {
			return barber.ErrDisplayNameUsed
		}
		return ErrUsernameTaken
	}

	return fmt.Errorf("write account: %w", err)
}
