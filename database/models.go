package database

import "time"

// ============================================================================
// MODÈLES DE DONNÉES - Base normalisée
// ============================================================================

// Store - Magasin (physique ou en ligne)
type Store struct {
	ID        int64  `json:"store_id"`
	Name      string `json:"store_name"`
	RLSUserID string `json:"rls_user_id"`
	IsOnline  bool   `json:"is_online"`
}

// Customer - Client
type Customer struct {
	ID             int64     `json:"customer_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	PrimaryStoreID int64     `json:"primary_store_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Category - Catégorie de produit
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"category_name"`
}

// ProductType - Sous-catégorie, unique par (catégorie, libellé)
type ProductType struct {
	ID         int64  `json:"type_id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"type_name"`
}

// Supplier - Fournisseur (identifiant fourni par le référentiel, pas auto-généré)
type Supplier struct {
	ID                    int64   `json:"supplier_id"`
	Name                  string  `json:"supplier_name"`
	Code                  string  `json:"supplier_code"`
	ContactEmail          string  `json:"contact_email,omitempty"`
	ContactPhone          string  `json:"contact_phone,omitempty"`
	City                  string  `json:"city,omitempty"`
	StateProvince         string  `json:"state_province,omitempty"`
	PostalCode            string  `json:"postal_code,omitempty"`
	Country               string  `json:"country,omitempty"`
	PaymentTerms          string  `json:"payment_terms,omitempty"`
	LeadTimeDays          int     `json:"lead_time_days"`
	MinimumOrderAmount    float64 `json:"minimum_order_amount"`
	BulkDiscountThreshold float64 `json:"bulk_discount_threshold"`
	BulkDiscountPercent   float64 `json:"bulk_discount_percent"`
	Rating                float64 `json:"supplier_rating"`
	ESGCompliant          bool    `json:"esg_compliant"`
	ApprovedVendor        bool    `json:"approved_vendor"`
	PreferredVendor       bool    `json:"preferred_vendor"`
}

// SupplierContract - Contrat rattaché à un fournisseur
type SupplierContract struct {
	ID             int64   `json:"contract_id"`
	SupplierID     int64   `json:"supplier_id"`
	ContractNumber string  `json:"contract_number"`
	ContractStatus string  `json:"contract_status"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	ContractValue  float64 `json:"contract_value"`
	PaymentTerms   string  `json:"payment_terms,omitempty"`
	AutoRenew      bool    `json:"auto_renew"`
}

// SupplierPerformance - Évaluation mensuelle synthétisée d'un fournisseur
type SupplierPerformance struct {
	ID              int64   `json:"performance_id"`
	SupplierID      int64   `json:"supplier_id"`
	EvaluationDate  string  `json:"evaluation_date"`
	CostScore       float64 `json:"cost_score"`
	QualityScore    float64 `json:"quality_score"`
	DeliveryScore   float64 `json:"delivery_score"`
	ComplianceScore float64 `json:"compliance_score"`
	OverallScore    float64 `json:"overall_score"`
	Notes           string  `json:"notes,omitempty"`
}

// Product - Produit du catalogue
type Product struct {
	ID                      int64   `json:"product_id"`
	SKU                     string  `json:"sku"`
	Name                    string  `json:"product_name"`
	CategoryID              int64   `json:"category_id"`
	TypeID                  int64   `json:"type_id"`
	SupplierID              *int64  `json:"supplier_id,omitempty"`
	Cost                    float64 `json:"cost"`
	BasePrice               float64 `json:"base_price"`
	GrossMarginPercent      float64 `json:"gross_margin_percent"`
	Description             string  `json:"product_description"`
	ProcurementLeadTimeDays int     `json:"procurement_lead_time_days"`
	MinimumOrderQuantity    int     `json:"minimum_order_quantity"`
	Discontinued            bool    `json:"discontinued"`
	ImageURL                string  `json:"image_url,omitempty"`
}

// InventoryRecord - Relation N-N magasin-produit avec niveau de stock
type InventoryRecord struct {
	StoreID    int64 `json:"store_id"`
	ProductID  int64 `json:"product_id"`
	StockLevel int   `json:"stock_level"`
}

// Order - Commande
type Order struct {
	ID         int64  `json:"order_id"`
	CustomerID int64  `json:"customer_id"`
	StoreID    int64  `json:"store_id"`
	OrderDate  string `json:"order_date"`
}

// OrderItem - Ligne de commande
type OrderItem struct {
	ID              int64   `json:"order_item_id"`
	OrderID         int64   `json:"order_id"`
	StoreID         int64   `json:"store_id"`
	ProductID       int64   `json:"product_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	TotalAmount     float64 `json:"total_amount"`
}

// ============================================================================
// MODÈLES POUR EXPORT PARQUET
// ============================================================================

// SaleParquet - Ligne de vente dénormalisée pour export Parquet
type SaleParquet struct {
	OrderDate    string  `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderID      int64   `parquet:"name=order_id, type=INT64"`
	SKU          string  `parquet:"name=sku, type=BYTE_ARRAY, convertedtype=UTF8"`
	ProductName  string  `parquet:"name=product_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerName string  `parquet:"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	StoreName    string  `parquet:"name=store_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity     int32   `parquet:"name=quantity, type=INT32"`
	UnitPrice    float64 `parquet:"name=unit_price, type=DOUBLE"`
	Discount     float64 `parquet:"name=discount_amount, type=DOUBLE"`
	TotalAmount  float64 `parquet:"name=total_amount, type=DOUBLE"`
}
