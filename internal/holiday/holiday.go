package holiday

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Holiday is one entry of a national holiday list.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// fetchTimeout bounds a shared year fetch, which outlives its callers.
const fetchTimeout = 10 * time.Second

// Source returns the holidays of a year.
type Source interface {
	Holidays(ctx context.Context, year int) ([]Holiday, error)
}

// Calendar answers holiday lookups from a per-year cache filled through a
// Source. A year is cached only once it has been fetched successfully.
type Calendar struct {
	source Source
	logger *slog.Logger

	mu    sync.RWMutex
	years map[int]map[string]string

	group singleflight.Group
}

func NewCalendar(source Source, logger *slog.Logger) *Calendar {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calendar{
		source: source,
		logger: logger,
		years:  make(map[int]map[string]string),
	}
}

// IsHoliday never fails: when the source cannot answer, the date is treated
// as a working day.
func (c *Calendar) IsHoliday(ctx context.Context, date time.Time) bool {
	_, ok := c.Lookup(ctx, date)
	return ok
}

// Lookup returns the holiday name for date, if any.
func (c *Calendar) Lookup(ctx context.Context, date time.Time) (string, bool) {
	days, err := c.year(ctx, date.Year())
	if err != nil {
		c.logger.Warn("holiday lookup failed, assuming working day",
			"year", date.Year(),
			"err", err,
		)
		return "", false
	}

	name, ok := days[date.Format("2006-01-02")]
	return name, ok
}

func (c *Calendar) year(ctx context.Context, year int) (map[string]string, error) {
	c.mu.RLock()
	days, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return days, nil
	}

	v, err, _ := c.group.Do(yearKey(year), func() (any, error) {
		// Waiters share this fetch, so one caller's cancellation must not end it.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		list, err := c.source.Holidays(fctx, year)
		if err != nil {
			return nil, err
		}

		days := make(map[string]string, len(list))
		for _, h := range list {
			days[h.Date] = h.Name
		}

		c.mu.Lock()
		c.years[year] = days
		c.mu.Unlock()

		return days, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]string), nil
}
