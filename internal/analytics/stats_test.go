package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zavagen/database"
	"zavagen/internal/generator"
	"zavagen/internal/sampling"
	"zavagen/internal/testhelpers"
)

// ========================================
// Tests: base vide
// ========================================

// Une base au schéma créé mais sans données doit produire un rapport de
// zéros, jamais une division par zéro.
func TestReporter_EmptyDatabase(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	r := NewReporter(db)

	counts, err := r.TableCounts()
	require.NoError(t, err)
	require.Len(t, counts, len(database.TableNames()))
	for _, tc := range counts {
		assert.Equal(t, int64(0), tc.Count, tc.Table)
	}

	global, err := r.GlobalStats()
	require.NoError(t, err)
	assert.Equal(t, 0.0, global.TotalRevenue)
	assert.Equal(t, 0.0, global.AvgItemValue)
	assert.Equal(t, 0.0, global.AvgOrderValue)
	assert.Equal(t, 0.0, global.OrdersPerCustomer)
	assert.Equal(t, 0.0, global.ItemsPerOrder)

	require.NoError(t, r.Print(testhelpers.TestLogger()))
}

// ========================================
// Tests: base peuplée
// ========================================

func populatedDB(t *testing.T) *Reporter {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	p := generator.New(db, testhelpers.TestLogger(), testhelpers.ReferenceSet(), sampling.New(42))
	_, err := p.Run(generator.Options{Customers: 80, Orders: 60, Mode: generator.ModeVolumeDriven})
	require.NoError(t, err)
	return NewReporter(db)
}

func TestReporter_GlobalStats(t *testing.T) {
	r := populatedDB(t)

	global, err := r.GlobalStats()
	require.NoError(t, err)

	assert.Greater(t, global.TotalRevenue, 0.0)
	assert.Greater(t, global.AvgItemValue, 0.0)
	assert.Greater(t, global.AvgOrderValue, 0.0)
	assert.Greater(t, global.OrdersPerCustomer, 0.0)
	assert.GreaterOrEqual(t, global.ItemsPerOrder, 1.0)
	// Une commande vaut au moins autant qu'une ligne.
	assert.GreaterOrEqual(t, global.AvgOrderValue, global.AvgItemValue)
}

func TestReporter_CategoryDistribution(t *testing.T) {
	r := populatedDB(t)

	stats, err := r.CategoryDistribution()
	require.NoError(t, err)
	require.Len(t, stats, 5)

	var total int64
	for _, cs := range stats {
		total += cs.Products
	}
	assert.Equal(t, int64(8), total)
	// Tri par nombre de produits décroissant.
	assert.Equal(t, "Hand Tools", stats[0].Category)
	assert.Equal(t, int64(3), stats[0].Products)
}

func TestReporter_SupplierDistribution(t *testing.T) {
	r := populatedDB(t)

	stats, err := r.SupplierDistribution()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Pacific Tool Supply", stats[0].Supplier)
	assert.Equal(t, int64(7), stats[0].Products)
	// Le produit sans fournisseur est regroupé à part.
	assert.Equal(t, "No supplier", stats[1].Supplier)
	assert.Equal(t, int64(1), stats[1].Products)
}

func TestReporter_StoreCustomerDistribution(t *testing.T) {
	r := populatedDB(t)

	stats, err := r.StoreCustomerDistribution()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	var totalPct float64
	var totalCustomers int64
	for _, st := range stats {
		totalPct += st.Percent
		totalCustomers += st.Customers
	}
	assert.Equal(t, int64(80), totalCustomers)
	assert.InDelta(t, 100.0, totalPct, 0.01)
}

func TestReporter_PrintPopulated(t *testing.T) {
	r := populatedDB(t)
	require.NoError(t, r.Print(testhelpers.TestLogger()))
}
