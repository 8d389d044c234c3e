package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================================
// Tests: WeightedIndex
// ========================================

func TestWeightedIndex_EmptyWeights(t *testing.T) {
	s := New(1)
	_, err := s.WeightedIndex(nil)
	require.Error(t, err)
}

func TestWeightedIndex_NegativeWeight(t *testing.T) {
	s := New(1)
	_, err := s.WeightedIndex([]float64{10, -5, 20})
	require.Error(t, err)
}

func TestWeightedIndex_ZeroTotal(t *testing.T) {
	s := New(1)
	_, err := s.WeightedIndex([]float64{0, 0, 0})
	require.Error(t, err)
}

func TestWeightedIndex_SingleWeight(t *testing.T) {
	s := New(1)
	for i := 0; i < 100; i++ {
		idx, err := s.WeightedIndex([]float64{42})
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	}
}

// Un poids nul ne doit jamais être tiré.
func TestWeightedIndex_ZeroWeightNeverChosen(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		idx, err := s.WeightedIndex([]float64{50, 0, 50})
		require.NoError(t, err)
		assert.NotEqual(t, 1, idx)
	}
}

// À graine fixe, la séquence de tirages est identique entre deux samplers.
func TestWeightedIndex_DeterministicWithSeed(t *testing.T) {
	weights := []float64{10, 30, 60}
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		ia, err := a.WeightedIndex(weights)
		require.NoError(t, err)
		ib, err := b.WeightedIndex(weights)
		require.NoError(t, err)
		assert.Equal(t, ia, ib)
	}
}

// Une distribution 70/30 doit converger vers ses proportions sur un grand
// nombre de tirages (bande de tolérance large, le test reste déterministe
// par la graine).
func TestWeightedIndex_DistributionConverges(t *testing.T) {
	s := New(99)
	counts := make([]int, 2)
	const draws = 100000

	for i := 0; i < draws; i++ {
		idx, err := s.WeightedIndex([]float64{70, 30})
		require.NoError(t, err)
		counts[idx]++
	}

	ratio := float64(counts[0]) / float64(draws)
	assert.InDelta(t, 0.70, ratio, 0.02)
}

// ========================================
// Tests: Choose
// ========================================

func TestChoose_LengthMismatch(t *testing.T) {
	s := New(1)
	_, err := Choose(s, []string{"a", "b"}, []float64{1})
	require.Error(t, err)
}

func TestChoose_ReturnsWeightedValue(t *testing.T) {
	s := New(3)
	v, err := Choose(s, []string{"only"}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, "only", v)
}

// ========================================
// Tests: Uniform / Between
// ========================================

func TestUniform_WithinBounds(t *testing.T) {
	s := New(5)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(0.8, 1.2)
		assert.GreaterOrEqual(t, v, 0.8)
		assert.Less(t, v, 1.2)
	}
}

func TestBetween_Inclusive(t *testing.T) {
	s := New(5)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.Between(1, 5)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	// Les deux bornes doivent être atteignables.
	assert.True(t, seen[1])
	assert.True(t, seen[5])
}

func TestBetween_DegenerateRange(t *testing.T) {
	s := New(5)
	assert.Equal(t, 3, s.Between(3, 3))
}

// ========================================
// Tests: YearWeights
// ========================================

func TestYearWeights_DefaultWeight(t *testing.T) {
	yw := YearWeights{2024: 2.5}
	assert.Equal(t, 2.5, yw.Weight(2024))
	assert.Equal(t, 1.0, yw.Weight(2021))
}

func TestYearWeights_ChooseYearWithinRange(t *testing.T) {
	yw := YearWeights{2025: 5.0}
	s := New(11)
	for i := 0; i < 1000; i++ {
		year, err := yw.ChooseYear(s, 2020, 2026)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, year, 2020)
		assert.LessOrEqual(t, year, 2026)
	}
}

func TestYearWeights_InvalidRange(t *testing.T) {
	yw := YearWeights{}
	s := New(11)
	_, err := yw.ChooseYear(s, 2026, 2020)
	require.Error(t, err)
}

// Une année à poids nul ne doit jamais être tirée quand les autres pèsent.
func TestYearWeights_ZeroWeightYearNeverChosen(t *testing.T) {
	yw := YearWeights{2020: 0, 2021: 0, 2022: 0}
	s := New(13)
	for i := 0; i < 5000; i++ {
		year, err := yw.ChooseYear(s, 2020, 2026)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, year, 2023)
	}
}
