package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validStores = `{
	"stores": {
		"1": {
			"store_name": "Zava Retail Seattle",
			"rls_user_id": "11111111-1111-1111-1111-111111111111",
			"customer_distribution_weight": 70,
			"location": {"is_online": false, "city": "Seattle", "state": "WA"},
			"product_skus": ["HAND-SCR-001", "HAND-HAM-001"]
		},
		"2": {
			"store_name": "Zava Retail Online",
			"rls_user_id": "22222222-2222-2222-2222-222222222222",
			"customer_distribution_weight": 30,
			"location": {"is_online": true}
		}
	},
	"year_weights": {"2024": 2.0, "2025": 3.5}
}`

const validProducts = `{
	"products": [
		{
			"sku": "HAND-SCR-001",
			"name": "Phillips Screwdriver Set",
			"category": "Hand Tools",
			"subcategory": "Screwdrivers",
			"description": "12-piece set",
			"price": 24.99,
			"supplier_id": 1001,
			"stock_level": 40,
			"image_embedding": [0.1, 0.2, 0.3]
		},
		{
			"sku": "HAND-HAM-001",
			"name": "Claw Hammer",
			"category": "Hand Tools",
			"subcategory": "Hammers",
			"description": "16oz hammer",
			"price": 18.50,
			"supplier_id": 1001
		}
	]
}`

const validSuppliers = `{
	"1001": {
		"supplier_id": 1001,
		"supplier_name": "Pacific Tool Supply",
		"supplier_code": "PTS",
		"rating": 4.3,
		"lead_time_days": 12,
		"min_order_amount": 500,
		"contracts": [
			{
				"contract_number": "CTR-2024-001",
				"contract_status": "active",
				"start_date": "2024-01-01",
				"end_date": "2026-12-31",
				"contract_value": 250000,
				"payment_terms": "Net 45",
				"auto_renew": true
			}
		]
	}
}`

// writeReferenceDir matérialise les trois documents dans un répertoire
// temporaire, avec remplacement possible par document.
func writeReferenceDir(t *testing.T, stores, products, suppliers string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		StoresFile:    stores,
		ProductsFile:  products,
		SuppliersFile: suppliers,
	}
	for name, content := range files {
		if content == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

// ========================================
// Tests: chargement nominal
// ========================================

func TestLoad_ValidDocuments(t *testing.T) {
	dir := writeReferenceDir(t, validStores, validProducts, validSuppliers)

	set, err := NewLoader(dir).Load()
	require.NoError(t, err)

	require.Len(t, set.Stores, 2)
	assert.Equal(t, "Zava Retail Seattle", set.Stores[1].Name)
	assert.Equal(t, 70.0, set.Stores[1].Weight)
	assert.True(t, set.Stores[2].Location.IsOnline)

	require.Len(t, set.Products, 2)
	// L'ordre du catalogue est préservé.
	assert.Equal(t, "HAND-SCR-001", set.Products[0].SKU)
	assert.Equal(t, "HAND-HAM-001", set.Products[1].SKU)

	require.Len(t, set.Suppliers, 1)
	assert.Equal(t, "Pacific Tool Supply", set.Suppliers[1001].Name)
	require.Len(t, set.Suppliers[1001].Contracts, 1)

	assert.Equal(t, 2.0, set.YearWeights[2024])
	assert.Equal(t, 3.5, set.YearWeights[2025])
}

func TestLoad_StoreIDsSorted(t *testing.T) {
	dir := writeReferenceDir(t, validStores, validProducts, validSuppliers)

	set, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, set.StoreIDs())
}

func TestLoad_HasStoreAssignments(t *testing.T) {
	dir := writeReferenceDir(t, validStores, validProducts, validSuppliers)

	set, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.True(t, set.HasStoreAssignments())
}

func TestLoad_StockLevelHintDefault(t *testing.T) {
	dir := writeReferenceDir(t, validStores, validProducts, validSuppliers)

	set, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, 40, set.Products[0].StockLevelHint())
	assert.Equal(t, 25, set.Products[1].StockLevelHint())
}

// ========================================
// Tests: échecs de chargement
// ========================================

func TestLoad_MissingFile(t *testing.T) {
	dir := writeReferenceDir(t, validStores, validProducts, "")
	_, err := NewLoader(dir).Load()
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := writeReferenceDir(t, "{not json", validProducts, validSuppliers)
	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), StoresFile)
}

func TestLoad_EmptyStores(t *testing.T) {
	dir := writeReferenceDir(t, `{"stores": {}}`, validProducts, validSuppliers)
	_, err := NewLoader(dir).Load()
	require.Error(t, err)
}

func TestLoad_MissingRLSPrincipal(t *testing.T) {
	stores := `{"stores": {"1": {"store_name": "No RLS Store", "customer_distribution_weight": 50}}}`
	dir := writeReferenceDir(t, stores, validProducts, validSuppliers)

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rls_user_id found for store")
}

func TestLoad_MalformedRLSPrincipal(t *testing.T) {
	stores := `{"stores": {"1": {"store_name": "Bad RLS Store", "rls_user_id": "not-a-uuid", "customer_distribution_weight": 50}}}`
	dir := writeReferenceDir(t, stores, validProducts, validSuppliers)

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rls_user_id")
}

func TestLoad_NegativeStoreWeight(t *testing.T) {
	stores := `{"stores": {"1": {"store_name": "Bad Weight", "rls_user_id": "11111111-1111-1111-1111-111111111111", "customer_distribution_weight": -1}}}`
	dir := writeReferenceDir(t, stores, validProducts, validSuppliers)

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
}

func TestLoad_DuplicateSKU(t *testing.T) {
	products := `{"products": [
		{"sku": "DUP-001", "name": "A", "category": "C", "subcategory": "S", "price": 1},
		{"sku": "DUP-001", "name": "B", "category": "C", "subcategory": "S", "price": 2}
	]}`
	dir := writeReferenceDir(t, validStores, products, validSuppliers)

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sku")
}

func TestLoad_NegativePrice(t *testing.T) {
	products := `{"products": [{"sku": "NEG-001", "name": "A", "category": "C", "subcategory": "S", "price": -5}]}`
	dir := writeReferenceDir(t, validStores, products, validSuppliers)

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
}

func TestLoad_SupplierKeyMismatch(t *testing.T) {
	suppliers := `{"1001": {"supplier_id": 9999, "supplier_name": "Mismatch"}}`
	dir := writeReferenceDir(t, validStores, validProducts, suppliers)

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
}

// L'identifiant du fournisseur peut être porté par la clé seule.
func TestLoad_SupplierIDFilledFromKey(t *testing.T) {
	suppliers := `{"1001": {"supplier_name": "Key Only Supply"}}`
	dir := writeReferenceDir(t, validStores, validProducts, suppliers)

	set, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1001), set.Suppliers[1001].SupplierID)
}
