package reference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// Noms des trois documents de référence attendus dans le répertoire.
const (
	StoresFile    = "stores_reference.json"
	ProductsFile  = "product_data.json"
	SuppliersFile = "supplier_data.json"
)

// SuperManagerUUID est le principal RLS qui a accès à toutes les lignes.
var SuperManagerUUID = uuid.MustParse("00000000-0000-0000-0000-000000000000")

// Loader charge et valide les documents de référence d'un répertoire donné.
// Toute absence ou malformation est fatale: les étapes aval supposent la
// disponibilité totale des données, il n'y a pas de chargement partiel.
type Loader struct {
	dir string
}

// NewLoader crée un Loader pour le répertoire donné.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// storesDocument est la forme brute de stores_reference.json: magasins
// indexés par identifiant, plus la table des poids annuels consolidée.
type storesDocument struct {
	Stores      map[string]StoreConfig `json:"stores"`
	YearWeights map[string]float64     `json:"year_weights"`
}

// productsDocument est la forme brute de product_data.json.
type productsDocument struct {
	Products []ProductEntry `json:"products"`
}

// Load lit les trois documents et retourne le Set validé.
func (l *Loader) Load() (*Set, error) {
	set := &Set{
		Stores:      make(map[int]StoreConfig),
		Suppliers:   make(map[int64]SupplierEntry),
		YearWeights: make(map[int]float64),
	}

	if err := l.loadStores(set); err != nil {
		return nil, fmt.Errorf("erreur chargement %s: %w", StoresFile, err)
	}
	if err := l.loadProducts(set); err != nil {
		return nil, fmt.Errorf("erreur chargement %s: %w", ProductsFile, err)
	}
	if err := l.loadSuppliers(set); err != nil {
		return nil, fmt.Errorf("erreur chargement %s: %w", SuppliersFile, err)
	}

	return set, nil
}

func (l *Loader) loadStores(set *Set) error {
	var doc storesDocument
	if err := l.readJSON(StoresFile, &doc); err != nil {
		return err
	}
	if len(doc.Stores) == 0 {
		return errors.New("no stores defined")
	}

	for rawID, cfg := range doc.Stores {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return fmt.Errorf("invalid store id %q", rawID)
		}
		if cfg.Name == "" {
			return fmt.Errorf("store %d has no store_name", id)
		}
		if cfg.Weight < 0 {
			return fmt.Errorf("store %q has negative customer_distribution_weight", cfg.Name)
		}
		// Principal RLS obligatoire et bien formé: sans lui, la couche MCP
		// en aval ne peut pas appliquer la sécurité par ligne.
		if cfg.RLSUserID == "" {
			return fmt.Errorf("no rls_user_id found for store: %s", cfg.Name)
		}
		if _, err := uuid.Parse(cfg.RLSUserID); err != nil {
			return fmt.Errorf("invalid rls_user_id for store %s: %w", cfg.Name, err)
		}
		set.Stores[id] = cfg
	}

	for rawYear, weight := range doc.YearWeights {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			return fmt.Errorf("invalid year %q in year_weights", rawYear)
		}
		set.YearWeights[year] = weight
	}

	return nil
}

func (l *Loader) loadProducts(set *Set) error {
	var doc productsDocument
	if err := l.readJSON(ProductsFile, &doc); err != nil {
		return err
	}
	if len(doc.Products) == 0 {
		return errors.New("no products defined")
	}

	seen := make(map[string]bool, len(doc.Products))
	for _, p := range doc.Products {
		if p.SKU == "" {
			return fmt.Errorf("product %q has no sku", p.Name)
		}
		if seen[p.SKU] {
			return fmt.Errorf("duplicate sku in catalog: %s", p.SKU)
		}
		seen[p.SKU] = true
		if p.Price < 0 {
			return fmt.Errorf("product %s has negative price", p.SKU)
		}
		if p.Category == "" || p.Subcategory == "" {
			return fmt.Errorf("product %s has no category/subcategory", p.SKU)
		}
	}

	// L'ordre du catalogue est préservé tel quel: il fait partie du contrat
	// de reproductibilité des affectations dérivées.
	set.Products = doc.Products
	return nil
}

func (l *Loader) loadSuppliers(set *Set) error {
	var doc map[string]SupplierEntry
	if err := l.readJSON(SuppliersFile, &doc); err != nil {
		return err
	}
	if len(doc) == 0 {
		return errors.New("no suppliers defined")
	}

	for rawID, s := range doc {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid supplier id %q", rawID)
		}
		if s.SupplierID == 0 {
			s.SupplierID = id
		}
		if s.SupplierID != id {
			return fmt.Errorf("supplier key %d does not match supplier_id %d", id, s.SupplierID)
		}
		if s.Name == "" {
			return fmt.Errorf("supplier %d has no supplier_name", id)
		}
		set.Suppliers[id] = s
	}

	return nil
}

func (l *Loader) readJSON(name string, v interface{}) error {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return nil
}
