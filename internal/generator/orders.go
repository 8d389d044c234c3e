package generator

import (
	"database/sql"
	"errors"
	"time"

	"zavagen/internal/sampling"
	"zavagen/internal/shared/domain"
)

// Distributions du mode piloté par les clients, héritées de la lignée du
// générateur: nombre de commandes par client (0 à 5), nombre de lignes par
// commande (1 à 5) et quantité par ligne (1 à 5).
var (
	orderCountWeights = []float64{20, 40, 20, 10, 7, 3}
	itemCountWeights  = []float64{40, 30, 15, 10, 5}
	quantityWeights   = []float64{60, 25, 10, 3, 2}
)

// Tirage de remise du mode volume: trois chances sur six de ne pas avoir
// de remise, sinon 5, 10 ou 15 pour cent.
var volumeDiscounts = []int{0, 0, 0, 5, 10, 15}

const (
	firstFiscalYear = 2020
	lastFiscalYear  = 2026
	volumeWindow    = 730 // jours
)

// orderProduct est la vue minimale d'un produit pour la facturation.
type orderProduct struct {
	productID int64
	basePrice float64
}

// insertOrders génère les commandes et leurs lignes selon le mode demandé.
// Les deux modes partagent la facturation des lignes (computeOrderItem) et
// le gigotement de prix unitaire de ±20% autour du prix de base.
func (p *Pipeline) insertOrders(opts Options, report *Report) error {
	products, err := p.orderProducts()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return errors.New("no products found, insert products first")
	}

	customerIDs, err := p.customerIDs()
	if err != nil {
		return err
	}

	storeNames, storeWeights, storeIDsByName, err := p.storeDistribution()
	if err != nil {
		return err
	}

	switch opts.Mode {
	case ModeVolumeDriven:
		return p.insertVolumeOrders(opts, products, customerIDs, storeNames, storeWeights, storeIDsByName, report)
	default:
		return p.insertCustomerOrders(opts, products, customerIDs, storeNames, storeWeights, storeIDsByName, report)
	}
}

// insertCustomerOrders itère chaque client et tire son nombre de commandes
// (souvent zéro). Les dates sont tirées par année fiscale pondérée, mois 1
// à 12, jour 1 à 28 pour éviter les fins de mois invalides.
func (p *Pipeline) insertCustomerOrders(
	opts Options,
	products []orderProduct,
	customerIDs []int64,
	storeNames []string,
	storeWeights []float64,
	storeIDsByName map[string]int64,
	report *Report,
) error {
	p.log.Infof("🛒 Génération des commandes (mode %s)...", ModeCustomerDriven)

	yearWeights := sampling.YearWeights(p.ref.YearWeights)

	processed := 0
	for processed < len(customerIDs) {
		end := processed + opts.BatchSize
		if end > len(customerIDs) {
			end = len(customerIDs)
		}
		batch := customerIDs[processed:end]

		err := p.withTx(func(tx *sql.Tx) error {
			orderStmt, itemStmt, err := prepareOrderStatements(tx)
			if err != nil {
				return err
			}
			defer orderStmt.Close()
			defer itemStmt.Close()

			for _, customerID := range batch {
				numOrders, err := p.smp.WeightedIndex(orderCountWeights)
				if err != nil {
					return err
				}

				for o := 0; o < numOrders; o++ {
					year, err := yearWeights.ChooseYear(p.smp, firstFiscalYear, lastFiscalYear)
					if err != nil {
						return err
					}
					orderDate := time.Date(year, time.Month(p.smp.Between(1, 12)), p.smp.Between(1, 28), 0, 0, 0, 0, time.UTC)

					storeName, err := p.chooseStore(storeNames, storeWeights)
					if err != nil {
						return err
					}
					storeID := storeIDsByName[storeName]

					itemIdx, err := p.smp.WeightedIndex(itemCountWeights)
					if err != nil {
						return err
					}
					numItems := itemIdx + 1

					orderID, err := p.insertOrderRow(orderStmt, customerID, storeID, orderDate)
					if err != nil {
						return err
					}
					report.Orders++

					for i := 0; i < numItems; i++ {
						prod := products[p.smp.Between(0, len(products)-1)]

						qtyIdx, err := p.smp.WeightedIndex(quantityWeights)
						if err != nil {
							return err
						}
						quantity := qtyIdx + 1

						discount := 0
						if p.smp.Float64() < 0.15 {
							discount = []int{5, 10, 15, 20, 25}[p.smp.Between(0, 4)]
						}

						unitPrice := domain.Round2(prod.basePrice * p.smp.Uniform(0.8, 1.2))
						discountAmount, totalAmount := computeOrderItem(unitPrice, quantity, discount)

						_, err = itemStmt.Exec(orderID, storeID, prod.productID, quantity,
							unitPrice, discount, discountAmount, totalAmount)
						if err != nil {
							return err
						}
						report.OrderItems++
					}
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		processed = end
		if processed%10000 == 0 {
			p.log.Infof("   ... %d clients traités", processed)
		}
	}

	p.log.Infof("   ✅ %d commandes et %d lignes créées", report.Orders, report.OrderItems)
	return nil
}

// insertVolumeOrders génère directement un volume cible de commandes, datées
// uniformément dans la fenêtre glissante des deux dernières années. Client
// et magasin sont tirés indépendamment par commande.
func (p *Pipeline) insertVolumeOrders(
	opts Options,
	products []orderProduct,
	customerIDs []int64,
	storeNames []string,
	storeWeights []float64,
	storeIDsByName map[string]int64,
	report *Report,
) error {
	p.log.Infof("🛒 Génération de %d commandes (mode %s)...", opts.Orders, ModeVolumeDriven)

	if len(customerIDs) == 0 {
		return errors.New("no customers found, insert customers first")
	}

	window, err := domain.NewDateRangeFromDays(volumeWindow)
	if err != nil {
		return err
	}

	generated := 0
	for generated < opts.Orders {
		chunk := opts.BatchSize
		if remaining := opts.Orders - generated; remaining < chunk {
			chunk = remaining
		}

		err := p.withTx(func(tx *sql.Tx) error {
			orderStmt, itemStmt, err := prepareOrderStatements(tx)
			if err != nil {
				return err
			}
			defer orderStmt.Close()
			defer itemStmt.Close()

			for o := 0; o < chunk; o++ {
				customerID := customerIDs[p.smp.Between(0, len(customerIDs)-1)]
				orderDate := window.RandomDateIn(p.smp.Rand())

				storeName, err := p.chooseStore(storeNames, storeWeights)
				if err != nil {
					return err
				}
				storeID := storeIDsByName[storeName]

				orderID, err := p.insertOrderRow(orderStmt, customerID, storeID, orderDate)
				if err != nil {
					return err
				}
				report.Orders++

				numItems := p.smp.Between(1, 5)
				for i := 0; i < numItems; i++ {
					prod := products[p.smp.Between(0, len(products)-1)]
					quantity := p.smp.Between(1, 10)
					discount := volumeDiscounts[p.smp.Between(0, len(volumeDiscounts)-1)]

					unitPrice := domain.Round2(prod.basePrice * p.smp.Uniform(0.8, 1.2))
					discountAmount, totalAmount := computeOrderItem(unitPrice, quantity, discount)

					_, err = itemStmt.Exec(orderID, storeID, prod.productID, quantity,
						unitPrice, discount, discountAmount, totalAmount)
					if err != nil {
						return err
					}
					report.OrderItems++
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		generated += chunk
		if generated%10000 == 0 {
			p.log.Infof("   ... %d commandes générées", generated)
		}
	}

	p.log.Infof("   ✅ %d commandes et %d lignes créées", report.Orders, report.OrderItems)
	return nil
}

// computeOrderItem calcule le montant de remise et le total d'une ligne.
// La remise est arrondie au centime avant soustraction: le total est donc
// toujours cohérent avec le montant de remise stocké.
func computeOrderItem(unitPrice float64, quantity, discountPercent int) (discountAmount, totalAmount float64) {
	gross := unitPrice * float64(quantity)
	discountAmount = domain.Round2(gross * float64(discountPercent) / 100)
	totalAmount = domain.Round2(gross - discountAmount)
	return discountAmount, totalAmount
}

func prepareOrderStatements(tx *sql.Tx) (orderStmt, itemStmt *sql.Stmt, err error) {
	orderStmt, err = tx.Prepare(`INSERT INTO orders (customer_id, store_id, order_date) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, nil, err
	}
	itemStmt, err = tx.Prepare(`
		INSERT INTO order_items (order_id, store_id, product_id, quantity, unit_price, discount_percent, discount_amount, total_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		orderStmt.Close()
		return nil, nil, err
	}
	return orderStmt, itemStmt, nil
}

// insertOrderRow insère une commande et retourne son identifiant généré.
func (p *Pipeline) insertOrderRow(stmt *sql.Stmt, customerID, storeID int64, orderDate time.Time) (int64, error) {
	res, err := stmt.Exec(customerID, storeID, orderDate.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// orderProducts relit les produits non retirés avec leur prix de base.
func (p *Pipeline) orderProducts() ([]orderProduct, error) {
	rows, err := p.db.Query(`SELECT product_id, base_price FROM products WHERE discontinued = 0 ORDER BY product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []orderProduct
	for rows.Next() {
		var op orderProduct
		if err := rows.Scan(&op.productID, &op.basePrice); err != nil {
			return nil, err
		}
		products = append(products, op)
	}
	return products, rows.Err()
}

// customerIDs relit les identifiants clients dans l'ordre d'insertion.
func (p *Pipeline) customerIDs() ([]int64, error) {
	rows, err := p.db.Query(`SELECT customer_id FROM customers ORDER BY customer_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// storeDistribution retourne les noms et poids dans l'ordre stable des
// identifiants du référentiel, plus la table nom → identifiant en base.
func (p *Pipeline) storeDistribution() ([]string, []float64, map[string]int64, error) {
	storeIDsByName, err := p.storeMapping()
	if err != nil {
		return nil, nil, nil, err
	}

	names := make([]string, 0, len(p.ref.Stores))
	weights := make([]float64, 0, len(p.ref.Stores))
	for _, id := range p.ref.StoreIDs() {
		cfg := p.ref.Stores[id]
		names = append(names, cfg.Name)
		weights = append(weights, cfg.Weight)
	}
	return names, weights, storeIDsByName, nil
}
