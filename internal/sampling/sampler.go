// Package sampling fournit le tirage pondéré pur utilisé par le pipeline de
// population. Le Sampler encapsule sa source aléatoire: injecté avec une
// graine fixe dans les tests, avec une graine horloge en production. Le
// contrat de reproductibilité ne porte PAS sur ces tirages libres, seulement
// sur les affectations dérivées des données de référence.
package sampling

import (
	"errors"
	"math/rand"
	"time"
)

// Sampler tire des valeurs selon des poids catégoriels.
type Sampler struct {
	r *rand.Rand
}

// New crée un Sampler avec une graine explicite (tests déterministes).
func New(seed int64) *Sampler {
	return &Sampler{r: rand.New(rand.NewSource(seed))}
}

// NewRandom crée un Sampler avec une graine horloge (production).
func NewRandom() *Sampler {
	return New(time.Now().UnixNano())
}

// Rand expose la source sous-jacente pour les tirages uniformes annexes
// (dates, jitter de prix) afin de garder une seule source par exécution.
func (s *Sampler) Rand() *rand.Rand {
	return s.r
}

// WeightedIndex retourne un indice i avec probabilité weights[i]/somme.
// Erreur si la liste est vide, si un poids est négatif, ou si la somme
// des poids est nulle.
func (s *Sampler) WeightedIndex(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, errors.New("weights cannot be empty")
	}

	var total float64
	for _, w := range weights {
		if w < 0 {
			return 0, errors.New("weights cannot be negative")
		}
		total += w
	}
	if total <= 0 {
		return 0, errors.New("total weight must be positive")
	}

	target := s.r.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i, nil
		}
	}
	// Arrondi flottant: retomber sur le dernier poids non nul.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

// Choose retourne une valeur de values selon les poids correspondants.
func Choose[T any](s *Sampler, values []T, weights []float64) (T, error) {
	var zero T
	if len(values) != len(weights) {
		return zero, errors.New("values and weights must have the same length")
	}
	i, err := s.WeightedIndex(weights)
	if err != nil {
		return zero, err
	}
	return values[i], nil
}

// Uniform tire un flottant uniforme dans [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Between tire un entier uniforme dans [lo, hi] inclus.
func (s *Sampler) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Float64 tire un flottant uniforme dans [0, 1).
func (s *Sampler) Float64() float64 {
	return s.r.Float64()
}

// YearWeights encapsule la table des poids annuels du référentiel.
// Les années non listées pèsent 1.0.
type YearWeights map[int]float64

// Weight retourne le poids d'une année, défaut 1.0.
func (yw YearWeights) Weight(year int) float64 {
	if w, ok := yw[year]; ok {
		return w
	}
	return 1.0
}

// ChooseYear tire une année fiscale dans [first, last] selon les poids.
func (yw YearWeights) ChooseYear(s *Sampler, first, last int) (int, error) {
	if last < first {
		return 0, errors.New("invalid year range")
	}
	years := make([]int, 0, last-first+1)
	weights := make([]float64, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
		weights = append(weights, yw.Weight(y))
	}
	return Choose(s, years, weights)
}
