package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================================
// Tests: Round2
// ========================================

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.00, Round2(10.00*3*10/100.0))
	assert.Equal(t, 27.00, Round2(30.00-3.00))
	assert.Equal(t, 16.74, Round2(24.99*0.67))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 1.01, Round2(1.005000001))
	assert.Equal(t, -2.35, Round2(-2.345))
}

// ========================================
// Tests: Money
// ========================================

func TestNewMoney_Valid(t *testing.T) {
	m, err := NewMoney(12.345, "USD")
	require.NoError(t, err)
	assert.Equal(t, 12.35, m.Amount())
	assert.Equal(t, "USD", m.Currency())
}

func TestNewMoney_NegativeAmount(t *testing.T) {
	_, err := NewMoney(-1, "USD")
	require.Error(t, err)
}

func TestNewMoney_EmptyCurrency(t *testing.T) {
	_, err := NewMoney(10, "")
	require.Error(t, err)
}

func TestMoney_Add(t *testing.T) {
	a, _ := NewMoney(10.10, "USD")
	b, _ := NewMoney(5.25, "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 15.35, sum.Amount())
}

func TestMoney_AddDifferentCurrencies(t *testing.T) {
	a, _ := NewMoney(10, "USD")
	b, _ := NewMoney(10, "EUR")

	_, err := a.Add(b)
	require.Error(t, err)
}

func TestMoney_Multiply(t *testing.T) {
	m, _ := NewMoney(19.99, "USD")

	result, err := m.Multiply(3)
	require.NoError(t, err)
	assert.Equal(t, 59.97, result.Amount())

	_, err = m.Multiply(-1)
	require.Error(t, err)
}

func TestMoney_IsZero(t *testing.T) {
	zero, _ := NewMoney(0, "USD")
	assert.True(t, zero.IsZero())

	nonZero, _ := NewMoney(0.01, "USD")
	assert.False(t, nonZero.IsZero())
}

// ========================================
// Tests: Quantity
// ========================================

func TestNewQuantity(t *testing.T) {
	q, err := NewQuantity(5)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Value())
	assert.False(t, q.IsZero())

	_, err = NewQuantity(-1)
	require.Error(t, err)

	zero, err := NewQuantity(0)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}
