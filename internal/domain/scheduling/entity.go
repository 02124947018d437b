package scheduling

import (
	"time"

	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

// Confirm and Execute keep Confirmed equal to (State == CONF).
// Execute refuses a booking whose start time is still ahead of now.

func Confirm(s *models.Scheduling, now time.Time) error {
	if err := CanConfirm(State(s.State)); err != nil {
		return err
	}

	s.State = string(StateConfirmed)
	s.Confirmed = true
	s.ConfirmedAt = &now
	return nil
}

func Execute(s *models.Scheduling, now time.Time) error {
	if err := CanExecute(State(s.State)); err != nil {
		return err
	}
	if now.Before(s.DateTime) {
		return ErrNotStarted
	}

	s.State = string(StateExecuted)
	s.Confirmed = false
	s.ExecutedAt = &now
	return nil
}
