package generator

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"zavagen/internal/shared/domain"
)

// insertStores insère un magasin par entrée du référentiel, dans l'ordre
// croissant des identifiants. Principal RLS vide = erreur fatale.
func (p *Pipeline) insertStores(report *Report) error {
	p.log.Infof("🏪 Génération des magasins...")

	err := p.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO stores (store_name, rls_user_id, is_online) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, id := range p.ref.StoreIDs() {
			cfg := p.ref.Stores[id]
			if cfg.RLSUserID == "" {
				return fmt.Errorf("no rls_user_id found for store: %s", cfg.Name)
			}
			if _, err := stmt.Exec(cfg.Name, cfg.RLSUserID, cfg.Location.IsOnline); err != nil {
				return err
			}
			report.Stores++
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Journaliser les principaux RLS pour la couche MCP en aval.
	rows, err := p.db.Query(`SELECT store_name, rls_user_id FROM stores ORDER BY store_name`)
	if err != nil {
		return err
	}
	defer rows.Close()
	p.log.Infof("Identifiants gérants (RLS):")
	for rows.Next() {
		var name, rls string
		if err := rows.Scan(&name, &rls); err != nil {
			return err
		}
		p.log.Infof("  %s: %s", name, rls)
	}

	p.log.Infof("   ✅ %d magasins créés", report.Stores)
	return rows.Err()
}

// insertCategories dérive les catégories de l'union des valeurs observées
// dans le catalogue produit, pas d'un fichier de taxonomie séparé.
func (p *Pipeline) insertCategories(report *Report) error {
	p.log.Infof("📂 Génération des catégories...")

	seen := make(map[string]bool)
	for _, prod := range p.ref.Products {
		seen[prod.Category] = true
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	err := p.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO categories (category_name) VALUES (?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, c := range categories {
			if _, err := stmt.Exec(c); err != nil {
				return err
			}
			report.Categories++
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.log.Infof("   ✅ %d catégories créées", report.Categories)
	return nil
}

// insertProductTypes dérive les paires (catégorie, sous-catégorie) du
// catalogue: tout type porté par un produit est ainsi représentable.
func (p *Pipeline) insertProductTypes(report *Report) error {
	p.log.Infof("📂 Génération des types de produits...")

	categoryIDs, err := p.categoryMapping()
	if err != nil {
		return err
	}

	type pair struct {
		category    string
		subcategory string
	}
	seen := make(map[pair]bool)
	for _, prod := range p.ref.Products {
		seen[pair{prod.Category, prod.Subcategory}] = true
	}
	pairs := make([]pair, 0, len(seen))
	for pr := range seen {
		pairs = append(pairs, pr)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].category != pairs[j].category {
			return pairs[i].category < pairs[j].category
		}
		return pairs[i].subcategory < pairs[j].subcategory
	})

	err = p.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO product_types (category_id, type_name) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, pr := range pairs {
			categoryID, ok := categoryIDs[pr.category]
			if !ok {
				return fmt.Errorf("category %q not found", pr.category)
			}
			if _, err := stmt.Exec(categoryID, pr.subcategory); err != nil {
				return err
			}
			report.ProductTypes++
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.log.Infof("   ✅ %d types de produits créés", report.ProductTypes)
	return nil
}

// insertSuppliers insère les fournisseurs du référentiel, leurs contrats,
// puis un historique de performance synthétisé: 3 à 7 évaluations mensuelles
// avec quatre scores composants bornés à [1.0, 5.0] et un score global à
// pondération fixe 0.30/0.30/0.25/0.15 (règle métier non configurable).
func (p *Pipeline) insertSuppliers(report *Report) error {
	p.log.Infof("📦 Génération des fournisseurs...")

	err := p.withTx(func(tx *sql.Tx) error {
		supplierStmt, err := tx.Prepare(`
			INSERT INTO suppliers (
				supplier_id, supplier_name, supplier_code, contact_email, contact_phone,
				address_line1, address_line2, city, state_province, postal_code, country,
				payment_terms, lead_time_days, minimum_order_amount,
				bulk_discount_threshold, bulk_discount_percent, supplier_rating,
				esg_compliant, approved_vendor, preferred_vendor
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer supplierStmt.Close()

		contractStmt, err := tx.Prepare(`
			INSERT INTO supplier_contracts (
				supplier_id, contract_number, contract_status, start_date, end_date,
				contract_value, payment_terms, auto_renew
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer contractStmt.Close()

		for _, id := range p.ref.SupplierIDs() {
			s := p.ref.Suppliers[id]

			paymentTerms := s.PaymentTerms
			if paymentTerms == "" {
				paymentTerms = "Net 30"
			}
			if len(s.Contracts) > 0 && s.Contracts[0].PaymentTerms != "" {
				paymentTerms = s.Contracts[0].PaymentTerms
			}

			bulkDiscount := 7.5
			if s.BulkDiscountPercent != nil {
				bulkDiscount = *s.BulkDiscountPercent
			}

			_, err := supplierStmt.Exec(
				s.SupplierID, s.Name, s.Code, s.ContactEmail, s.ContactPhone,
				"", "", "Seattle", "WA", "98000", "USA",
				paymentTerms, s.LeadTimeDays, s.MinOrderAmount,
				s.MinOrderAmount*5, bulkDiscount, s.Rating,
				s.ESGCompliant, s.ApprovedVendor, s.PreferredVendor,
			)
			if err != nil {
				return err
			}
			report.Suppliers++

			for _, c := range s.Contracts {
				_, err := contractStmt.Exec(
					s.SupplierID, c.ContractNumber, c.ContractStatus,
					c.StartDate, c.EndDate, c.ContractValue, c.PaymentTerms, c.AutoRenew,
				)
				if err != nil {
					return err
				}
				report.SupplierContracts++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.log.Infof("   ✅ %d fournisseurs et %d contrats créés", report.Suppliers, report.SupplierContracts)

	p.log.Infof("📊 Génération des évaluations de performance fournisseurs...")
	err = p.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO supplier_performance (
				supplier_id, evaluation_date, cost_score, quality_score,
				delivery_score, compliance_score, overall_score, notes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		monthStart := time.Now().UTC().Truncate(24 * time.Hour)
		monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)

		for _, id := range p.ref.SupplierIDs() {
			s := p.ref.Suppliers[id]
			evaluations := p.smp.Between(3, 7)

			for monthsAgo := 0; monthsAgo < evaluations; monthsAgo++ {
				evalDate := monthStart.AddDate(0, 0, -monthsAgo*30)

				costScore := clampScore(p.smp.Uniform(3.5, 4.8) + p.smp.Uniform(-0.3, 0.3))
				qualityScore := clampScore(p.smp.Uniform(3.2, 4.9) + p.smp.Uniform(-0.4, 0.4))
				deliveryScore := clampScore(p.smp.Uniform(3.0, 4.7) + p.smp.Uniform(-0.5, 0.5))
				complianceScore := clampScore(p.smp.Uniform(4.2, 5.0) + p.smp.Uniform(-0.2, 0.2))

				overall := costScore*0.30 + qualityScore*0.30 + deliveryScore*0.25 + complianceScore*0.15

				_, err := stmt.Exec(
					s.SupplierID, evalDate.Format("2006-01-02"),
					costScore, qualityScore, deliveryScore, complianceScore,
					overall, fmt.Sprintf("Monthly evaluation for %s", s.Name),
				)
				if err != nil {
					return err
				}
				report.SupplierEvaluations++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.log.Infof("   ✅ %d évaluations créées", report.SupplierEvaluations)
	return nil
}

// clampScore borne un score composant à [1.0, 5.0].
func clampScore(v float64) float64 {
	if v < 1.0 {
		return 1.0
	}
	if v > 5.0 {
		return 5.0
	}
	return v
}

// insertProducts insère les entrées du catalogue. Seule étape autorisée à
// ignorer silencieusement une ligne malformée: une erreur de curation du
// catalogue ne doit pas bloquer le reste du jeu de données. Les lignes
// ignorées sont comptées dans Report.ProductsSkipped.
func (p *Pipeline) insertProducts(report *Report) error {
	p.log.Infof("📦 Génération des produits...")

	categoryIDs, err := p.categoryMapping()
	if err != nil {
		return err
	}
	typeIDs, err := p.typeMapping()
	if err != nil {
		return err
	}

	err = p.withTx(func(tx *sql.Tx) error {
		return p.insertProductRows(tx, categoryIDs, typeIDs, report)
	})
	if err != nil {
		return err
	}

	p.log.Infof("   ✅ %d produits créés (%d ignorés)", report.Products, report.ProductsSkipped)
	return nil
}

// insertProductRows fait le travail d'insertion avec des mappings explicites,
// ce qui permet de tester le chemin d'ignorance avec un mapping incomplet.
func (p *Pipeline) insertProductRows(tx *sql.Tx, categoryIDs map[string]int64, typeIDs map[typeKey]int64, report *Report) error {
	stmt, err := tx.Prepare(`
		INSERT INTO products (
			sku, product_name, category_id, type_id, supplier_id,
			cost, base_price, gross_margin_percent, product_description,
			procurement_lead_time_days, minimum_order_quantity, discontinued, image_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, prod := range p.ref.Products {
		categoryID, ok := categoryIDs[prod.Category]
		if !ok {
			p.log.Warnf("⚠️ type introuvable pour %s/%s (sku %s), produit ignoré",
				prod.Category, prod.Subcategory, prod.SKU)
			report.ProductsSkipped++
			continue
		}
		typeID, ok := typeIDs[typeKey{categoryID, prod.Subcategory}]
		if !ok {
			p.log.Warnf("⚠️ type introuvable pour %s/%s (sku %s), produit ignoré",
				prod.Category, prod.Subcategory, prod.SKU)
			report.ProductsSkipped++
			continue
		}

		// Convention de marge brute fixe à 33%: Cost = Price × 0.67.
		basePrice := prod.Price
		cost := domain.Round2(basePrice * 0.67)

		leadTime := 15
		var supplierID interface{}
		if s, ok := p.ref.Suppliers[prod.SupplierID]; ok {
			leadTime = s.LeadTimeDays
			supplierID = prod.SupplierID
		}

		var imageURL interface{}
		if prod.ImagePath != "" {
			imageURL = strings.TrimPrefix(prod.ImagePath, "images/")
		}

		_, err := stmt.Exec(
			prod.SKU, prod.Name, categoryID, typeID, supplierID,
			cost, basePrice, 33.00, prod.Description,
			leadTime, prod.MinOrderQty(), false, imageURL,
		)
		if err != nil {
			return err
		}
		report.Products++
	}
	return nil
}

// populateEmbeddings rattache au produit (par SKU) les vecteurs d'embedding
// présents dans le catalogue, sérialisés en JSON. L'absence d'embedding est
// légale; clearExisting purge d'abord les deux tables.
func (p *Pipeline) populateEmbeddings(clearExisting bool, report *Report) error {
	p.log.Infof("🧬 Population des embeddings produits...")

	skuIDs, err := p.skuMapping()
	if err != nil {
		return err
	}

	return p.withTx(func(tx *sql.Tx) error {
		if clearExisting {
			if _, err := tx.Exec(`DELETE FROM product_image_embeddings`); err != nil {
				return err
			}
			if _, err := tx.Exec(`DELETE FROM product_description_embeddings`); err != nil {
				return err
			}
		}

		imageStmt, err := tx.Prepare(`INSERT INTO product_image_embeddings (product_id, image_embedding) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer imageStmt.Close()

		descStmt, err := tx.Prepare(`INSERT INTO product_description_embeddings (product_id, description_embedding) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer descStmt.Close()

		for _, prod := range p.ref.Products {
			productID, ok := skuIDs[prod.SKU]
			if !ok {
				continue
			}

			if len(prod.ImageEmbedding) > 0 {
				payload, err := json.Marshal(prod.ImageEmbedding)
				if err != nil {
					return err
				}
				if _, err := imageStmt.Exec(productID, string(payload)); err != nil {
					return err
				}
				report.ImageEmbeddings++
			}

			if len(prod.DescriptionEmbedding) > 0 {
				payload, err := json.Marshal(prod.DescriptionEmbedding)
				if err != nil {
					return err
				}
				if _, err := descStmt.Exec(productID, string(payload)); err != nil {
					return err
				}
				report.DescriptionEmbeddings++
			}
		}

		p.log.Infof("   ✅ %d embeddings image, %d embeddings description",
			report.ImageEmbeddings, report.DescriptionEmbeddings)
		return nil
	})
}

// insertCustomers génère les clients par lots de taille fixe, chaque lot
// étant commité séparément pour borner la mémoire et la taille des
// transactions. L'unicité des emails est garantie par construction via le
// numéro de séquence, pas par déduplication a posteriori.
func (p *Pipeline) insertCustomers(numCustomers, batchSize int, report *Report) error {
	p.log.Infof("👥 Génération de %d clients...", numCustomers)

	storeIDs, err := p.storeMapping()
	if err != nil {
		return err
	}
	if len(storeIDs) == 0 {
		return errors.New("no stores found, insert stores first")
	}

	// Poids de distribution par magasin, dans l'ordre stable des IDs.
	names := make([]string, 0, len(p.ref.Stores))
	weights := make([]float64, 0, len(p.ref.Stores))
	for _, id := range p.ref.StoreIDs() {
		cfg := p.ref.Stores[id]
		names = append(names, cfg.Name)
		weights = append(weights, cfg.Weight)
	}

	inserted := 0
	for inserted < numCustomers {
		chunk := batchSize
		if remaining := numCustomers - inserted; remaining < chunk {
			chunk = remaining
		}
		start := inserted

		err := p.withTx(func(tx *sql.Tx) error {
			stmt, err := tx.Prepare(`
				INSERT INTO customers (first_name, last_name, email, phone, primary_store_id)
				VALUES (?, ?, ?, ?, ?)`)
			if err != nil {
				return err
			}
			defer stmt.Close()

			for i := 1; i <= chunk; i++ {
				seq := start + i
				firstName, lastName := p.randomName()
				email := fmt.Sprintf("%s.%s.%d@example.com",
					strings.ToLower(firstName), strings.ToLower(lastName), seq)

				storeName, err := p.chooseStore(names, weights)
				if err != nil {
					return err
				}
				primaryStoreID := storeIDs[storeName]

				if _, err := stmt.Exec(firstName, lastName, email, p.randomPhone(), primaryStoreID); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		inserted += chunk
		report.Customers = inserted
		if inserted%10000 == 0 {
			p.log.Infof("   ... %d clients traités", inserted)
		}
	}

	// Journaliser la distribution des clients par magasin.
	rows, err := p.db.Query(`
		SELECT s.store_name, COUNT(c.customer_id) AS customer_count
		FROM stores s
		LEFT JOIN customers c ON c.primary_store_id = s.store_id
		GROUP BY s.store_id, s.store_name
		ORDER BY customer_count DESC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	p.log.Infof("Distribution des clients par magasin:")
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return err
		}
		pct := 0.0
		if numCustomers > 0 {
			pct = float64(count) / float64(numCustomers) * 100
		}
		p.log.Infof("  %s: %d clients (%.1f%%)", name, count, pct)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	p.log.Infof("   ✅ %d clients créés", report.Customers)
	return nil
}

// chooseStore tire un nom de magasin selon les poids de distribution.
func (p *Pipeline) chooseStore(names []string, weights []float64) (string, error) {
	i, err := p.smp.WeightedIndex(weights)
	if err != nil {
		return "", err
	}
	return names[i], nil
}

// insertInventory est l'étape critique pour la reproductibilité.
//
// Chemin déterministe: quand le référentiel fournit des listes de SKUs par
// magasin, les lignes d'inventaire sont exactement le produit de (magasin,
// liste de SKUs du magasin), avec le stock tiré de l'indication par SKU du
// catalogue (défaut 25). Deux exécutions sur le même référentiel produisent
// des paires (magasin, SKU) et des niveaux de stock identiques.
//
// Chemin hérité: sans aucune liste explicite, tous les produits sont
// affectés à tous les magasins avec un stock aléatoire libre (10 à 200).
// Ce chemin n'est pas reproductible et a le droit de varier.
func (p *Pipeline) insertInventory(report *Report) error {
	storeIDs, err := p.storeMapping()
	if err != nil {
		return err
	}
	skuIDs, err := p.skuMapping()
	if err != nil {
		return err
	}

	if p.ref.HasStoreAssignments() {
		p.log.Infof("📋 Génération de l'inventaire depuis les affectations par magasin...")

		stockHints := make(map[string]int, len(p.ref.Products))
		for _, prod := range p.ref.Products {
			stockHints[prod.SKU] = prod.StockLevelHint()
		}

		err = p.withTx(func(tx *sql.Tx) error {
			stmt, err := tx.Prepare(`INSERT INTO inventory (store_id, product_id, stock_level) VALUES (?, ?, ?)`)
			if err != nil {
				return err
			}
			defer stmt.Close()

			for _, id := range p.ref.StoreIDs() {
				cfg := p.ref.Stores[id]
				dbStoreID, ok := storeIDs[cfg.Name]
				if !ok {
					continue
				}
				for _, sku := range cfg.ProductSKUs {
					productID, ok := skuIDs[sku]
					if !ok {
						continue
					}
					if _, err := stmt.Exec(dbStoreID, productID, stockHints[sku]); err != nil {
						return err
					}
					report.InventoryRecords++
				}
			}
			return nil
		})
	} else {
		p.log.Infof("📋 Génération de l'inventaire en produit cartésien complet...")

		err = p.withTx(func(tx *sql.Tx) error {
			stmt, err := tx.Prepare(`INSERT INTO inventory (store_id, product_id, stock_level) VALUES (?, ?, ?)`)
			if err != nil {
				return err
			}
			defer stmt.Close()

			productIDs := make([]int64, 0, len(skuIDs))
			for _, id := range skuIDs {
				productIDs = append(productIDs, id)
			}
			sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

			storeDBIDs := make([]int64, 0, len(storeIDs))
			for _, id := range storeIDs {
				storeDBIDs = append(storeDBIDs, id)
			}
			sort.Slice(storeDBIDs, func(i, j int) bool { return storeDBIDs[i] < storeDBIDs[j] })

			for _, storeID := range storeDBIDs {
				for _, productID := range productIDs {
					if _, err := stmt.Exec(storeID, productID, p.smp.Between(10, 200)); err != nil {
						return err
					}
					report.InventoryRecords++
				}
			}
			return nil
		})
	}
	if err != nil {
		return err
	}

	p.log.Infof("   ✅ %d enregistrements d'inventaire créés", report.InventoryRecords)
	return nil
}

// insertSupportData insère un petit jeu fixe d'approbateurs et de politiques
// d'entreprise à seuils codés en dur. Ni aléatoire, ni dérivé du référentiel.
func (p *Pipeline) insertSupportData(report *Report) error {
	p.log.Infof("📋 Génération des données support...")

	return p.withTx(func(tx *sql.Tx) error {
		approvers := []struct {
			employeeID string
			fullName   string
			email      string
			department string
			limit      float64
		}{
			{"EXEC001", "Jane CEO", "jane.ceo@zavadiy.com", "Management", 1000000},
			{"DIR001", "John Finance Director", "john.director@zavadiy.com", "Finance", 250000},
			{"MGR001", "Mike Procurement Manager", "mike.proc@zavadiy.com", "Procurement", 50000},
		}

		approverStmt, err := tx.Prepare(`
			INSERT INTO approvers (employee_id, full_name, email, department, approval_limit, is_active)
			VALUES (?, ?, ?, ?, ?, 1)`)
		if err != nil {
			return err
		}
		defer approverStmt.Close()

		for _, a := range approvers {
			if _, err := approverStmt.Exec(a.employeeID, a.fullName, a.email, a.department, a.limit); err != nil {
				return err
			}
			report.Approvers++
		}

		policyStmt, err := tx.Prepare(`
			INSERT INTO company_policies (policy_name, policy_type, policy_content, department, minimum_order_threshold, approval_required)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer policyStmt.Close()

		policies := []struct {
			name       string
			policyType string
			content    string
			department string
			threshold  interface{}
			approval   bool
		}{
			{
				"Procurement Policy", "procurement",
				"All purchases over $5,000 require manager approval.",
				"Procurement", 5000.0, true,
			},
			{
				"Budget Authorization", "budget_authorization",
				"Spending limits: Manager $50K, Director $250K, Executive $1M+",
				"Finance", nil, true,
			},
		}

		for _, pol := range policies {
			if _, err := policyStmt.Exec(pol.name, pol.policyType, pol.content, pol.department, pol.threshold, pol.approval); err != nil {
				return err
			}
			report.Policies++
		}

		p.log.Infof("   ✅ %d approbateurs et %d politiques créés", report.Approvers, report.Policies)
		return nil
	})
}

// typeKey identifie un type de produit par (catégorie, libellé).
type typeKey struct {
	categoryID int64
	typeName   string
}

// categoryMapping relit la correspondance nom de catégorie → identifiant.
func (p *Pipeline) categoryMapping() (map[string]int64, error) {
	rows, err := p.db.Query(`SELECT category_id, category_name FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		m[name] = id
	}
	return m, rows.Err()
}

// typeMapping relit la correspondance (catégorie, libellé) → identifiant de type.
func (p *Pipeline) typeMapping() (map[typeKey]int64, error) {
	rows, err := p.db.Query(`SELECT type_id, category_id, type_name FROM product_types`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[typeKey]int64)
	for rows.Next() {
		var typeID, categoryID int64
		var name string
		if err := rows.Scan(&typeID, &categoryID, &name); err != nil {
			return nil, err
		}
		m[typeKey{categoryID, name}] = typeID
	}
	return m, rows.Err()
}

// skuMapping relit la correspondance SKU → identifiant produit.
func (p *Pipeline) skuMapping() (map[string]int64, error) {
	rows, err := p.db.Query(`SELECT product_id, sku FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]int64)
	for rows.Next() {
		var id int64
		var sku string
		if err := rows.Scan(&id, &sku); err != nil {
			return nil, err
		}
		m[sku] = id
	}
	return m, rows.Err()
}

// storeMapping relit la correspondance nom de magasin → identifiant.
func (p *Pipeline) storeMapping() (map[string]int64, error) {
	rows, err := p.db.Query(`SELECT store_id, store_name FROM stores`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		m[name] = id
	}
	return m, rows.Err()
}
