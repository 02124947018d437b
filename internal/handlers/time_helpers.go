package handlers

import (
	"strconv"
	"time"

	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
)

var (
	errInvalidDate  = httperr.New("invalid_date", "Data inválida.")
	errInvalidMonth = httperr.New("invalid_year_or_month", "Ano ou mês inválido.")
)

func parseDate(loc *time.Location, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errInvalidDate
	}
	d, err := timezone.ParseDate(loc, s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return d, nil
}

func parseYearMonth(yearStr, monthStr string) (int, int, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, errInvalidMonth
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errInvalidMonth
	}
	return year, month, nil
}
