package scheduling

import (
	"context"
	"time"
)

// HolidayChecker answers whether a date is a national holiday. It must fail
// open: an unknown answer is false.
type HolidayChecker interface {
	IsHoliday(ctx context.Context, date time.Time) bool
}
