package database

import (
	"database/sql"
	"fmt"
)

// schemaStatements contient le DDL complet, dans l'ordre topologique des
// dépendances. Toutes les instructions sont idempotentes (IF NOT EXISTS):
// rejouer CreateSchema sur un artefact vide ou déjà initialisé est sans effet.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		store_id INTEGER PRIMARY KEY AUTOINCREMENT,
		store_name TEXT UNIQUE NOT NULL,
		rls_user_id TEXT NOT NULL,
		is_online INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT,
		primary_store_id INTEGER,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (primary_store_id) REFERENCES stores (store_id)
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		category_id INTEGER PRIMARY KEY AUTOINCREMENT,
		category_name TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS product_types (
		type_id INTEGER PRIMARY KEY AUTOINCREMENT,
		category_id INTEGER NOT NULL,
		type_name TEXT NOT NULL,
		UNIQUE (category_id, type_name),
		FOREIGN KEY (category_id) REFERENCES categories (category_id)
	)`,

	`CREATE TABLE IF NOT EXISTS suppliers (
		supplier_id INTEGER PRIMARY KEY,
		supplier_name TEXT NOT NULL,
		supplier_code TEXT NOT NULL,
		contact_email TEXT,
		contact_phone TEXT,
		address_line1 TEXT,
		address_line2 TEXT,
		city TEXT,
		state_province TEXT,
		postal_code TEXT,
		country TEXT,
		payment_terms TEXT,
		lead_time_days INTEGER NOT NULL DEFAULT 15,
		minimum_order_amount REAL NOT NULL DEFAULT 0,
		bulk_discount_threshold REAL NOT NULL DEFAULT 0,
		bulk_discount_percent REAL NOT NULL DEFAULT 0,
		supplier_rating REAL,
		esg_compliant INTEGER NOT NULL DEFAULT 0,
		approved_vendor INTEGER NOT NULL DEFAULT 0,
		preferred_vendor INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS supplier_contracts (
		contract_id INTEGER PRIMARY KEY AUTOINCREMENT,
		supplier_id INTEGER NOT NULL,
		contract_number TEXT NOT NULL,
		contract_status TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		contract_value REAL NOT NULL,
		payment_terms TEXT,
		auto_renew INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (supplier_id) REFERENCES suppliers (supplier_id)
	)`,

	`CREATE TABLE IF NOT EXISTS supplier_performance (
		performance_id INTEGER PRIMARY KEY AUTOINCREMENT,
		supplier_id INTEGER NOT NULL,
		evaluation_date DATE NOT NULL,
		cost_score REAL NOT NULL,
		quality_score REAL NOT NULL,
		delivery_score REAL NOT NULL,
		compliance_score REAL NOT NULL,
		overall_score REAL NOT NULL,
		notes TEXT,
		FOREIGN KEY (supplier_id) REFERENCES suppliers (supplier_id)
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		product_id INTEGER PRIMARY KEY AUTOINCREMENT,
		sku TEXT UNIQUE NOT NULL,
		product_name TEXT NOT NULL,
		category_id INTEGER NOT NULL,
		type_id INTEGER NOT NULL,
		supplier_id INTEGER,
		cost REAL NOT NULL,
		base_price REAL NOT NULL,
		gross_margin_percent REAL NOT NULL DEFAULT 33.00,
		product_description TEXT NOT NULL,
		procurement_lead_time_days INTEGER NOT NULL DEFAULT 15,
		minimum_order_quantity INTEGER NOT NULL DEFAULT 10,
		discontinued INTEGER NOT NULL DEFAULT 0,
		image_url TEXT,
		FOREIGN KEY (category_id) REFERENCES categories (category_id),
		FOREIGN KEY (type_id) REFERENCES product_types (type_id),
		FOREIGN KEY (supplier_id) REFERENCES suppliers (supplier_id)
	)`,

	`CREATE TABLE IF NOT EXISTS inventory (
		store_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		stock_level INTEGER NOT NULL CHECK (stock_level >= 0),
		PRIMARY KEY (store_id, product_id),
		FOREIGN KEY (store_id) REFERENCES stores (store_id),
		FOREIGN KEY (product_id) REFERENCES products (product_id)
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		store_id INTEGER NOT NULL,
		order_date DATE NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers (customer_id),
		FOREIGN KEY (store_id) REFERENCES stores (store_id)
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL,
		store_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		discount_percent INTEGER NOT NULL DEFAULT 0,
		discount_amount REAL NOT NULL DEFAULT 0,
		total_amount REAL NOT NULL CHECK (total_amount >= 0),
		FOREIGN KEY (order_id) REFERENCES orders (order_id),
		FOREIGN KEY (store_id) REFERENCES stores (store_id),
		FOREIGN KEY (product_id) REFERENCES products (product_id)
	)`,

	`CREATE TABLE IF NOT EXISTS product_image_embeddings (
		product_id INTEGER PRIMARY KEY,
		image_embedding TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (product_id) REFERENCES products (product_id)
	)`,

	`CREATE TABLE IF NOT EXISTS product_description_embeddings (
		product_id INTEGER PRIMARY KEY,
		description_embedding TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (product_id) REFERENCES products (product_id)
	)`,

	`CREATE TABLE IF NOT EXISTS approvers (
		approver_id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT UNIQUE NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		department TEXT NOT NULL,
		approval_limit REAL NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS company_policies (
		policy_id INTEGER PRIMARY KEY AUTOINCREMENT,
		policy_name TEXT NOT NULL,
		policy_type TEXT NOT NULL,
		policy_content TEXT NOT NULL,
		department TEXT,
		minimum_order_threshold REAL,
		approval_required INTEGER NOT NULL DEFAULT 0
	)`,
}

// indexStatements crée les index de performance utilisés par la couche MCP
// en aval. Séparés du DDL des tables pour rester lisibles.
var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_primary_store ON customers(primary_store_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_sku ON products(sku)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_type ON products(type_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_store ON orders(store_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_store ON inventory(store_id)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_product ON inventory(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_contracts_supplier ON supplier_contracts(supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_performance_supplier ON supplier_performance(supplier_id)`,
}

// CreateSchema crée toutes les tables et tous les index. Idempotent: peut
// être appelé sur un fichier vierge comme sur un artefact déjà initialisé.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("erreur création schéma: %w", err)
		}
	}
	for _, stmt := range indexStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("erreur création index: %w", err)
		}
	}
	return nil
}

// TableNames liste les tables du schéma, dans l'ordre de création.
// Utilisé par le reporter pour les comptages.
func TableNames() []string {
	return []string{
		"stores",
		"customers",
		"categories",
		"product_types",
		"suppliers",
		"supplier_contracts",
		"supplier_performance",
		"products",
		"inventory",
		"orders",
		"order_items",
		"product_image_embeddings",
		"product_description_embeddings",
		"approvers",
		"company_policies",
	}
}
