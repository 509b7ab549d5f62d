package domain

import (
	"errors"
	"time"
)

// DefaultDays é a janela usada quando o parâmetro days não é informado
const DefaultDays = 30

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// DateRange representa um intervalo fechado [StartDate, EndDate]
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// LastDays monta o intervalo `now - days` .. `now`
func LastDays(now time.Time, days int) DateRange {
	return DateRange{
		StartDate: now.AddDate(0, 0, -days),
		EndDate:   now,
	}
}

func (d DateRange) Validate() error {
	if d.StartDate.After(d.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// Contains informa se t está dentro do intervalo, incluindo as bordas
func (d DateRange) Contains(t time.Time) bool {
	return !t.Before(d.StartDate) && !t.After(d.EndDate)
}
