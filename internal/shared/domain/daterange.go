package domain

import (
	"errors"
	"math/rand"
	"time"
)

// DateRange représente une période temporelle avec validation
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange crée un DateRange borné avec validation
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, errors.New("end cannot be before start")
	}
	return DateRange{start: start, end: end}, nil
}

// NewDateRangeFromDays crée un DateRange couvrant les N derniers jours
func NewDateRangeFromDays(days int) (DateRange, error) {
	if days < 0 {
		return DateRange{}, errors.New("days cannot be negative")
	}
	now := time.Now()
	return DateRange{
		start: now.AddDate(0, 0, -days),
		end:   now,
	}, nil
}

// Start retourne la date de début
func (dr DateRange) Start() time.Time {
	return dr.start
}

// End retourne la date de fin
func (dr DateRange) End() time.Time {
	return dr.end
}

// Days retourne la durée de la période en jours entiers
func (dr DateRange) Days() int {
	return int(dr.end.Sub(dr.start).Hours() / 24)
}

// RandomDateIn tire une date uniforme dans la période (granularité jour).
// Utilisé par le mode volume, qui répartit les commandes sans saisonnalité.
func (dr DateRange) RandomDateIn(r *rand.Rand) time.Time {
	days := dr.Days()
	if days <= 0 {
		return dr.start
	}
	return dr.start.AddDate(0, 0, r.Intn(days+1))
}

// Contains vérifie si une date est dans la période
func (dr DateRange) Contains(t time.Time) bool {
	return !t.Before(dr.start) && !t.After(dr.end)
}
