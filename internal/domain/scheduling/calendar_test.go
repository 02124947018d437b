package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoursFor(t *testing.T) {
	_, open := HoursFor(time.Sunday)
	assert.False(t, open)

	for _, d := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		h, open := HoursFor(d)
		assert.True(t, open, d.String())
		assert.Equal(t, 9*time.Hour, h.Open)
		assert.Equal(t, 18*time.Hour, h.Close)
		assert.True(t, h.HasLunch())
	}

	sat, open := HoursFor(time.Saturday)
	assert.True(t, open)
	assert.Equal(t, 13*time.Hour, sat.Close)
	assert.False(t, sat.HasLunch())
}

func TestHoursAdmits(t *testing.T) {
	weekday, _ := HoursFor(time.Monday)
	saturday, _ := HoursFor(time.Saturday)

	tests := []struct {
		name  string
		hours Hours
		tod   time.Duration
		want  bool
	}{
		{"before open", weekday, 8*time.Hour + 59*time.Minute, false},
		{"at open", weekday, 9 * time.Hour, true},
		{"lunch start", weekday, 12 * time.Hour, false},
		{"inside lunch", weekday, 12*time.Hour + 45*time.Minute, false},
		{"lunch end", weekday, 13 * time.Hour, true},
		{"last slot", weekday, 17*time.Hour + 30*time.Minute, true},
		{"at close", weekday, 18 * time.Hour, false},
		{"saturday noon", saturday, 12 * time.Hour, true},
		{"saturday close", saturday, 13 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hours.Admits(tt.tod))
		})
	}
}

func TestAtAndTimeOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	slot := At(date, 13*time.Hour+30*time.Minute)
	assert.Equal(t, time.Date(2024, 6, 10, 13, 30, 0, 0, loc), slot)
	assert.Equal(t, 13*time.Hour+30*time.Minute, TimeOfDay(slot))
}
