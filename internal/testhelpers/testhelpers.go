package testhelpers

import (
	"database/sql"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"zavagen/database"
	"zavagen/internal/reference"
)

// SetupTestDB crée un artefact SQLite jetable dans un répertoire temporaire,
// schéma inclus. Le fichier est détruit avec le répertoire en fin de test.
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "retail_test.db")
	db, err := database.Open(path)
	if err != nil {
		tb.Fatalf("Failed to open database: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	if err := database.CreateSchema(db); err != nil {
		tb.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// SetupTestDBAt crée un artefact au chemin donné, pour les tests qui
// comparent deux exécutions sur des fichiers distincts.
func SetupTestDBAt(tb testing.TB, path string) *sql.DB {
	tb.Helper()

	db, err := database.Open(path)
	if err != nil {
		tb.Fatalf("Failed to open database at %s: %v", path, err)
	}
	tb.Cleanup(func() { db.Close() })

	if err := database.CreateSchema(db); err != nil {
		tb.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// TestLogger retourne un logger silencieux pour les tests.
func TestLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func intPtr(v int) *int { return &v }

// ReferenceSet construit un référentiel canonique en mémoire: deux magasins
// à poids 70/30 avec listes de SKUs (un SKU partagé), huit produits dont
// deux avec embeddings, et un fournisseur à deux contrats.
func ReferenceSet() *reference.Set {
	return &reference.Set{
		Stores: map[int]reference.StoreConfig{
			1: {
				Name:      "Zava Retail Seattle",
				RLSUserID: "11111111-1111-1111-1111-111111111111",
				Weight:    70,
				Location:  reference.Location{IsOnline: false, City: "Seattle", State: "WA"},
				ProductSKUs: []string{
					"HAND-SCR-001", "HAND-HAM-001", "POWER-DRL-001", "GARD-SHV-001", "ELEC-WIR-001",
				},
			},
			2: {
				Name:      "Zava Retail Online",
				RLSUserID: "22222222-2222-2222-2222-222222222222",
				Weight:    30,
				Location:  reference.Location{IsOnline: true},
				ProductSKUs: []string{
					"HAND-SCR-001", "POWER-SAW-001", "PAINT-BRS-001",
				},
			},
		},
		Products: []reference.ProductEntry{
			{
				SKU: "HAND-SCR-001", Name: "Phillips Screwdriver Set", Category: "Hand Tools",
				Subcategory: "Screwdrivers", Description: "12-piece magnetic tip screwdriver set",
				Price: 24.99, SupplierID: 1001, StockLevel: intPtr(40),
				ImagePath:      "images/hand-scr-001.png",
				ImageEmbedding: []float64{0.12, -0.34, 0.56},
			},
			{
				SKU: "HAND-HAM-001", Name: "Claw Hammer 16oz", Category: "Hand Tools",
				Subcategory: "Hammers", Description: "Fiberglass handle claw hammer",
				Price: 18.50, SupplierID: 1001,
				DescriptionEmbedding: []float64{0.21, 0.43, -0.65},
			},
			{
				SKU: "POWER-DRL-001", Name: "Cordless Drill 18V", Category: "Power Tools",
				Subcategory: "Drills", Description: "18V brushless cordless drill with two batteries",
				Price: 129.00, SupplierID: 1001, StockLevel: intPtr(12),
			},
			{
				SKU: "POWER-SAW-001", Name: "Circular Saw 7in", Category: "Power Tools",
				Subcategory: "Saws", Description: "7.25 inch circular saw with laser guide",
				Price: 89.99, SupplierID: 1001,
			},
			{
				SKU: "GARD-SHV-001", Name: "Garden Shovel", Category: "Garden",
				Subcategory: "Digging", Description: "Steel blade garden shovel",
				Price: 22.00, SupplierID: 1001,
			},
			{
				SKU: "ELEC-WIR-001", Name: "Copper Wire 50ft", Category: "Electrical",
				Subcategory: "Wiring", Description: "12 gauge copper wire, 50 feet",
				Price: 34.75, SupplierID: 1001,
			},
			{
				SKU: "PAINT-BRS-001", Name: "Paint Brush Set", Category: "Paint",
				Subcategory: "Brushes", Description: "5-piece synthetic bristle brush set",
				Price: 14.25, SupplierID: 1001,
			},
			{
				SKU: "HAND-WRN-001", Name: "Adjustable Wrench", Category: "Hand Tools",
				Subcategory: "Wrenches", Description: "10 inch adjustable wrench",
				Price: 16.99,
			},
		},
		Suppliers: map[int64]reference.SupplierEntry{
			1001: {
				SupplierID:     1001,
				Name:           "Pacific Tool Supply",
				Code:           "PTS",
				ContactEmail:   "orders@pacifictool.example.com",
				ContactPhone:   "(206) 555-0147",
				Rating:         4.3,
				LeadTimeDays:   12,
				MinOrderAmount: 500,
				ESGCompliant:   true,
				ApprovedVendor: true,
				Contracts: []reference.Contract{
					{
						ContractNumber: "CTR-2024-001",
						ContractStatus: "active",
						StartDate:      "2024-01-01",
						EndDate:        "2026-12-31",
						ContractValue:  250000,
						PaymentTerms:   "Net 45",
						AutoRenew:      true,
					},
					{
						ContractNumber: "CTR-2022-007",
						ContractStatus: "expired",
						StartDate:      "2022-01-01",
						EndDate:        "2023-12-31",
						ContractValue:  180000,
						PaymentTerms:   "Net 30",
						AutoRenew:      false,
					},
				},
			},
		},
		YearWeights: map[int]float64{2024: 2.0, 2025: 3.0},
	}
}

// LegacyReferenceSet retourne le même référentiel sans aucune liste de SKUs
// par magasin, pour exercer le chemin d'inventaire en produit cartésien.
func LegacyReferenceSet() *reference.Set {
	set := ReferenceSet()
	for id, cfg := range set.Stores {
		cfg.ProductSKUs = nil
		set.Stores[id] = cfg
	}
	return set
}
