// Package generator implémente le pipeline de population: une séquence
// ordonnée d'étapes d'insertion, chacune consommant les clés générées par
// les précédentes. Le pipeline est strictement séquentiel et mono-écrivain:
// chaque étape est commitée avant que la suivante ne démarre, car les étapes
// aval relisent les identifiants auto-assignés en base.
package generator

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"zavagen/internal/reference"
	"zavagen/internal/sampling"
)

// OrderMode sélectionne la stratégie de génération des commandes. Les deux
// modes coexistent dans la lignée du système mais ne se mélangent jamais:
// une invocation choisit un mode explicite et le rapport l'expose.
type OrderMode int

const (
	// ModeCustomerDriven itère les clients, tire un nombre de commandes par
	// client et pondère les années fiscales (distribution saisonnière).
	ModeCustomerDriven OrderMode = iota
	// ModeVolumeDriven tire directement un volume cible de commandes, datées
	// uniformément dans une fenêtre récente, sans pondération annuelle.
	ModeVolumeDriven
)

// String retourne le nom du mode.
func (m OrderMode) String() string {
	switch m {
	case ModeCustomerDriven:
		return "customer-driven"
	case ModeVolumeDriven:
		return "volume-driven"
	default:
		return "unknown"
	}
}

// ParseOrderMode convertit une valeur de drapeau CLI en OrderMode.
func ParseOrderMode(v string) (OrderMode, error) {
	switch v {
	case "customer", "customer-driven":
		return ModeCustomerDriven, nil
	case "volume", "volume-driven":
		return ModeVolumeDriven, nil
	default:
		return 0, fmt.Errorf("unknown order mode %q (use customer or volume)", v)
	}
}

// Options paramètre une exécution du pipeline.
type Options struct {
	Customers int       // nombre de clients à générer
	Orders    int       // volume cible de commandes (mode volume uniquement)
	Mode      OrderMode // stratégie de génération des commandes
	BatchSize int       // taille des lots d'insertion (défaut 1000)
}

// Report expose les comptages par étape d'une exécution. ProductsSkipped
// rend observable le nombre d'entrées catalogue ignorées pour
// (catégorie, sous-catégorie) non résolue.
type Report struct {
	Mode                  string
	Stores                int
	Categories            int
	ProductTypes          int
	Suppliers             int
	SupplierContracts     int
	SupplierEvaluations   int
	Products              int
	ProductsSkipped       int
	ImageEmbeddings       int
	DescriptionEmbeddings int
	Customers             int
	InventoryRecords      int
	Orders                int
	OrderItems            int
	Approvers             int
	Policies              int
}

// Pipeline orchestre les étapes de population. Toutes les dépendances sont
// injectées: données de référence, échantillonneur et base cible.
type Pipeline struct {
	db  *sql.DB
	log *zap.SugaredLogger
	ref *reference.Set
	smp *sampling.Sampler
}

// New crée un Pipeline prêt à exécuter.
func New(db *sql.DB, log *zap.SugaredLogger, ref *reference.Set, smp *sampling.Sampler) *Pipeline {
	return &Pipeline{db: db, log: log, ref: ref, smp: smp}
}

const defaultBatchSize = 1000

// Run exécute toutes les étapes dans l'ordre topologique des dépendances.
// Tout échec d'étape annule la transaction en cours et interrompt
// l'exécution: l'artefact est alors invalide et doit être régénéré.
func (p *Pipeline) Run(opts Options) (*Report, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	report := &Report{Mode: opts.Mode.String()}

	if err := p.insertStores(report); err != nil {
		return nil, fmt.Errorf("erreur étape magasins: %w", err)
	}
	if err := p.insertCategories(report); err != nil {
		return nil, fmt.Errorf("erreur étape catégories: %w", err)
	}
	if err := p.insertProductTypes(report); err != nil {
		return nil, fmt.Errorf("erreur étape types de produits: %w", err)
	}
	if err := p.insertSuppliers(report); err != nil {
		return nil, fmt.Errorf("erreur étape fournisseurs: %w", err)
	}
	if err := p.insertProducts(report); err != nil {
		return nil, fmt.Errorf("erreur étape produits: %w", err)
	}
	if err := p.populateEmbeddings(false, report); err != nil {
		return nil, fmt.Errorf("erreur étape embeddings: %w", err)
	}
	if err := p.insertCustomers(opts.Customers, opts.BatchSize, report); err != nil {
		return nil, fmt.Errorf("erreur étape clients: %w", err)
	}
	if err := p.insertInventory(report); err != nil {
		return nil, fmt.Errorf("erreur étape inventaire: %w", err)
	}
	if err := p.insertOrders(opts, report); err != nil {
		return nil, fmt.Errorf("erreur étape commandes: %w", err)
	}
	if err := p.insertSupportData(report); err != nil {
		return nil, fmt.Errorf("erreur étape données support: %w", err)
	}

	p.log.Infof("✅ Pipeline terminé (mode %s)", report.Mode)
	return report, nil
}

// PopulateEmbeddingsOnly repeuple uniquement les tables d'embeddings sur un
// artefact existant. clearExisting purge d'abord les lignes précédentes pour
// éviter toute accumulation de doublons.
func (p *Pipeline) PopulateEmbeddingsOnly(clearExisting bool) (*Report, error) {
	report := &Report{Mode: "embeddings-only"}
	if err := p.populateEmbeddings(clearExisting, report); err != nil {
		return nil, fmt.Errorf("erreur étape embeddings: %w", err)
	}
	return report, nil
}

// withTx exécute fn dans une transaction: rollback si erreur, commit sinon.
// Une étape = une transaction; un lot commité est un point de commit, pas
// une frontière de cohérence.
func (p *Pipeline) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
