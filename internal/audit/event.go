package audit

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionSchedulingCreated   = "scheduling_created"
	ActionSchedulingRejected  = "scheduling_rejected"
	ActionSchedulingConfirmed = "scheduling_confirmed"
	ActionSchedulingExecuted  = "scheduling_executed"
	ActionProfileUpdated      = "profile_updated"
	ActionBarberRegistered    = "barber_registered"

	EntityScheduling = "scheduling"
	EntityBarber     = "barber"
)

type Event struct {
	BarberID *uuid.UUID
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Filter selects a page of audit rows. From is inclusive, To exclusive.
type Filter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}
