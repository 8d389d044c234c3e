// Package analytics relit l'artefact généré et en produit un rapport
// statistique: comptages par table, agrégats financiers globaux et
// distributions par catégorie, fournisseur et magasin.
package analytics

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"zavagen/database"
)

// TableCount associe une table à son nombre de lignes.
type TableCount struct {
	Table string
	Count int64
}

// GlobalStats regroupe les agrégats financiers du jeu de données.
type GlobalStats struct {
	TotalRevenue      float64
	AvgItemValue      float64
	AvgOrderValue     float64
	OrdersPerCustomer float64
	ItemsPerOrder     float64
}

// CategoryStat compte les produits d'une catégorie.
type CategoryStat struct {
	Category string
	Products int64
}

// SupplierStat compte les produits rattachés à un fournisseur.
type SupplierStat struct {
	Supplier string
	Products int64
}

// StoreStat compte les clients rattachés à un magasin.
type StoreStat struct {
	Store     string
	Customers int64
	Percent   float64
}

// Reporter interroge un artefact existant. Lecture seule: aucune méthode
// n'écrit dans la base.
type Reporter struct {
	db *sql.DB
}

// NewReporter crée un Reporter sur la base fournie.
func NewReporter(db *sql.DB) *Reporter {
	return &Reporter{db: db}
}

// TableCounts retourne le nombre de lignes de chaque table du schéma, dans
// l'ordre topologique de création.
func (r *Reporter) TableCounts() ([]TableCount, error) {
	counts := make([]TableCount, 0, len(database.TableNames()))
	for _, table := range database.TableNames() {
		var count int64
		if err := r.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			return nil, fmt.Errorf("erreur comptage table %s: %w", table, err)
		}
		counts = append(counts, TableCount{Table: table, Count: count})
	}
	return counts, nil
}

// GlobalStats calcule les agrégats financiers. Tous les dénominateurs sont
// gardés: une base vide produit des zéros, jamais une division par zéro.
func (r *Reporter) GlobalStats() (*GlobalStats, error) {
	stats := &GlobalStats{}

	var totalItems, totalOrders, totalCustomers int64
	err := r.db.QueryRow(`
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM order_items`).Scan(&stats.TotalRevenue, &totalItems)
	if err != nil {
		return nil, fmt.Errorf("erreur agrégats lignes de commande: %w", err)
	}

	if err := r.db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&totalOrders); err != nil {
		return nil, fmt.Errorf("erreur comptage commandes: %w", err)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&totalCustomers); err != nil {
		return nil, fmt.Errorf("erreur comptage clients: %w", err)
	}

	if totalItems > 0 {
		stats.AvgItemValue = stats.TotalRevenue / float64(totalItems)
	}
	if totalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(totalOrders)
		stats.ItemsPerOrder = float64(totalItems) / float64(totalOrders)
	}
	if totalCustomers > 0 {
		stats.OrdersPerCustomer = float64(totalOrders) / float64(totalCustomers)
	}

	return stats, nil
}

// CategoryDistribution retourne le nombre de produits par catégorie,
// catégories vides incluses.
func (r *Reporter) CategoryDistribution() ([]CategoryStat, error) {
	rows, err := r.db.Query(`
		SELECT c.category_name, COUNT(p.product_id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.category_id
		GROUP BY c.category_id, c.category_name
		ORDER BY COUNT(p.product_id) DESC, c.category_name`)
	if err != nil {
		return nil, fmt.Errorf("erreur distribution catégories: %w", err)
	}
	defer rows.Close()

	var stats []CategoryStat
	for rows.Next() {
		var cs CategoryStat
		if err := rows.Scan(&cs.Category, &cs.Products); err != nil {
			return nil, err
		}
		stats = append(stats, cs)
	}
	return stats, rows.Err()
}

// SupplierDistribution retourne le nombre de produits par fournisseur. Les
// produits sans fournisseur sont regroupés sous "No supplier".
func (r *Reporter) SupplierDistribution() ([]SupplierStat, error) {
	rows, err := r.db.Query(`
		SELECT COALESCE(s.supplier_name, 'No supplier'), COUNT(p.product_id)
		FROM products p
		LEFT JOIN suppliers s ON s.supplier_id = p.supplier_id
		GROUP BY s.supplier_id, s.supplier_name
		ORDER BY COUNT(p.product_id) DESC, COALESCE(s.supplier_name, 'No supplier')`)
	if err != nil {
		return nil, fmt.Errorf("erreur distribution fournisseurs: %w", err)
	}
	defer rows.Close()

	var stats []SupplierStat
	for rows.Next() {
		var ss SupplierStat
		if err := rows.Scan(&ss.Supplier, &ss.Products); err != nil {
			return nil, err
		}
		stats = append(stats, ss)
	}
	return stats, rows.Err()
}

// StoreCustomerDistribution retourne le nombre et la part de clients par
// magasin, magasins sans client inclus.
func (r *Reporter) StoreCustomerDistribution() ([]StoreStat, error) {
	rows, err := r.db.Query(`
		SELECT s.store_name, COUNT(c.customer_id)
		FROM stores s
		LEFT JOIN customers c ON c.primary_store_id = s.store_id
		GROUP BY s.store_id, s.store_name
		ORDER BY COUNT(c.customer_id) DESC, s.store_name`)
	if err != nil {
		return nil, fmt.Errorf("erreur distribution magasins: %w", err)
	}
	defer rows.Close()

	var stats []StoreStat
	var total int64
	for rows.Next() {
		var st StoreStat
		if err := rows.Scan(&st.Store, &st.Customers); err != nil {
			return nil, err
		}
		total += st.Customers
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range stats {
		if total > 0 {
			stats[i].Percent = float64(stats[i].Customers) / float64(total) * 100
		}
	}
	return stats, nil
}

// Print journalise le rapport complet sous forme de bannières lisibles.
func (r *Reporter) Print(log *zap.SugaredLogger) error {
	counts, err := r.TableCounts()
	if err != nil {
		return err
	}
	log.Infof("=====================================")
	log.Infof("📊 STATISTIQUES DU JEU DE DONNÉES")
	log.Infof("=====================================")
	for _, tc := range counts {
		log.Infof("  %-32s %d", tc.Table, tc.Count)
	}

	global, err := r.GlobalStats()
	if err != nil {
		return err
	}
	log.Infof("-------------------------------------")
	log.Infof("  Chiffre d'affaires total:  $%.2f", global.TotalRevenue)
	log.Infof("  Valeur moyenne par ligne:  $%.2f", global.AvgItemValue)
	log.Infof("  Valeur moyenne par commande: $%.2f", global.AvgOrderValue)
	log.Infof("  Commandes par client:      %.2f", global.OrdersPerCustomer)
	log.Infof("  Lignes par commande:       %.2f", global.ItemsPerOrder)

	categories, err := r.CategoryDistribution()
	if err != nil {
		return err
	}
	log.Infof("-------------------------------------")
	log.Infof("  Produits par catégorie:")
	for _, cs := range categories {
		log.Infof("    %-28s %d", cs.Category, cs.Products)
	}

	suppliers, err := r.SupplierDistribution()
	if err != nil {
		return err
	}
	log.Infof("  Produits par fournisseur:")
	for _, ss := range suppliers {
		log.Infof("    %-28s %d", ss.Supplier, ss.Products)
	}

	storeStats, err := r.StoreCustomerDistribution()
	if err != nil {
		return err
	}
	log.Infof("  Clients par magasin:")
	for _, st := range storeStats {
		log.Infof("    %-28s %d (%.1f%%)", st.Store, st.Customers, st.Percent)
	}
	log.Infof("=====================================")

	return nil
}
