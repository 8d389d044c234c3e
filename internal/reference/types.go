package reference

import "sort"

// StoreConfig décrit un magasin du référentiel: poids de distribution client,
// principal de sécurité RLS (obligatoire), indicateur en ligne, et liste
// optionnelle de SKUs affectés (chemin déterministe de l'inventaire).
type StoreConfig struct {
	Name        string   `json:"store_name"`
	RLSUserID   string   `json:"rls_user_id"`
	Weight      float64  `json:"customer_distribution_weight"`
	Location    Location `json:"location"`
	ProductSKUs []string `json:"product_skus,omitempty"`
}

// Location localise un magasin. Seul le drapeau en ligne est exploité
// par le générateur, le reste est documentaire.
type Location struct {
	IsOnline bool   `json:"is_online"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}

// ProductEntry décrit une entrée du catalogue produit.
type ProductEntry struct {
	SKU                  string    `json:"sku"`
	Name                 string    `json:"name"`
	Category             string    `json:"category"`
	Subcategory          string    `json:"subcategory"`
	Description          string    `json:"description"`
	Price                float64   `json:"price"`
	SupplierID           int64     `json:"supplier_id"`
	StockLevel           *int      `json:"stock_level,omitempty"`
	MinimumOrderQuantity *int      `json:"minimum_order_quantity,omitempty"`
	ImagePath            string    `json:"image_path,omitempty"`
	ImageEmbedding       []float64 `json:"image_embedding,omitempty"`
	DescriptionEmbedding []float64 `json:"description_embedding,omitempty"`
}

// Contract décrit un contrat fournisseur du référentiel.
type Contract struct {
	ContractNumber string  `json:"contract_number"`
	ContractStatus string  `json:"contract_status"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	ContractValue  float64 `json:"contract_value"`
	PaymentTerms   string  `json:"payment_terms"`
	AutoRenew      bool    `json:"auto_renew"`
}

// SupplierEntry décrit un fournisseur du référentiel.
type SupplierEntry struct {
	SupplierID          int64      `json:"supplier_id"`
	Name                string     `json:"supplier_name"`
	Code                string     `json:"supplier_code"`
	ContactEmail        string     `json:"contact_email"`
	ContactPhone        string     `json:"contact_phone"`
	Rating              float64    `json:"rating"`
	LeadTimeDays        int        `json:"lead_time_days"`
	MinOrderAmount      float64    `json:"min_order_amount"`
	BulkDiscountPercent *float64   `json:"bulk_discount_percent,omitempty"`
	PaymentTerms        string     `json:"payment_terms,omitempty"`
	ESGCompliant        bool       `json:"esg_compliant"`
	ApprovedVendor      bool       `json:"approved_vendor"`
	PreferredVendor     bool       `json:"preferred_vendor"`
	Contracts           []Contract `json:"contracts,omitempty"`
}

// Set regroupe les trois documents de référence validés. Construit une seule
// fois par le Loader et passé explicitement au pipeline: aucun état global.
type Set struct {
	Stores      map[int]StoreConfig
	Products    []ProductEntry
	Suppliers   map[int64]SupplierEntry
	YearWeights map[int]float64
}

// StoreIDs retourne les identifiants de magasins triés par ordre croissant.
// L'itération des maps Go est aléatoire: le chemin déterministe de
// l'inventaire exige un ordre de parcours stable entre exécutions.
func (s *Set) StoreIDs() []int {
	ids := make([]int, 0, len(s.Stores))
	for id := range s.Stores {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SupplierIDs retourne les identifiants fournisseurs triés.
func (s *Set) SupplierIDs() []int64 {
	ids := make([]int64, 0, len(s.Suppliers))
	for id := range s.Suppliers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HasStoreAssignments indique si au moins un magasin déclare une liste
// explicite de SKUs. Sélectionne le chemin déterministe de l'inventaire.
func (s *Set) HasStoreAssignments() bool {
	for _, store := range s.Stores {
		if len(store.ProductSKUs) > 0 {
			return true
		}
	}
	return false
}

// StockLevelHint retourne l'indication de stock d'une entrée catalogue,
// ou la valeur par défaut (25) si absente.
func (p ProductEntry) StockLevelHint() int {
	if p.StockLevel != nil {
		return *p.StockLevel
	}
	return defaultStockLevel
}

// MinOrderQty retourne la quantité minimale de commande, défaut 10.
func (p ProductEntry) MinOrderQty() int {
	if p.MinimumOrderQuantity != nil {
		return *p.MinimumOrderQuantity
	}
	return defaultMinOrderQty
}

const (
	defaultStockLevel  = 25
	defaultMinOrderQty = 10
)
