package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zavagen/database"
	"zavagen/internal/analytics"
	"zavagen/internal/generator"
	"zavagen/internal/reference"
	"zavagen/internal/sampling"
)

type generateConfig struct {
	customers    int
	orders       int
	mode         string
	referenceDir string
	dbFile       string
}

var genCfg generateConfig

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full retail dataset into a fresh SQLite artifact",
	Long: `Deletes any existing artifact, recreates the schema and populates every table
from the reference documents: stores, categories, product types, suppliers with
contracts and performance history, products, embeddings, customers, inventory,
orders with line items, and approval support data.

A pre-existing artifact at the target path is always deleted first: a generated
dataset is rebuilt from scratch, never amended.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&genCfg.customers, "customers", 10000, "Number of customers to generate")
	generateCmd.Flags().IntVar(&genCfg.orders, "orders", 100000, "Target order volume (volume mode only)")
	generateCmd.Flags().StringVar(&genCfg.mode, "mode", "volume", "Order generation mode: customer or volume")
	generateCmd.Flags().StringVar(&genCfg.referenceDir, "reference-dir", "", "Reference document directory (or ZAVA_REFERENCE_DIR env)")
	generateCmd.Flags().StringVar(&genCfg.dbFile, "db", "", "SQLite artifact path (or ZAVA_DB_FILE env)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mode, err := generator.ParseOrderMode(genCfg.mode)
	if err != nil {
		return err
	}

	refDir := genCfg.referenceDir
	if refDir == "" {
		refDir = getEnv("ZAVA_REFERENCE_DIR", "data_reference")
	}
	ref, err := reference.NewLoader(refDir).Load()
	if err != nil {
		return err
	}
	log.Infof("📖 Référentiel chargé: %d magasins, %d produits, %d fournisseurs",
		len(ref.Stores), len(ref.Products), len(ref.Suppliers))
	log.Infof("🔑 Principal super manager (RLS): %s", reference.SuperManagerUUID)

	dbPath := database.Resolve(genCfg.dbFile)
	if database.Exists(dbPath) {
		log.Infof("🗑️ Suppression de l'artefact existant: %s", dbPath)
	}
	if err := database.Reset(dbPath); err != nil {
		return err
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.CreateSchema(db); err != nil {
		return err
	}

	log.Infof("🌱 Démarrage de la génération (mode %s) vers %s", mode, dbPath)

	pipeline := generator.New(db, log, ref, sampling.NewRandom())
	report, err := pipeline.Run(generator.Options{
		Customers: genCfg.customers,
		Orders:    genCfg.orders,
		Mode:      mode,
	})
	if err != nil {
		return err
	}

	if report.ProductsSkipped > 0 {
		log.Warnf("⚠️ %d entrées catalogue ignorées (type non résolu)", report.ProductsSkipped)
	}

	// Rapport de vérification final relu depuis la base, pas depuis les
	// compteurs du pipeline.
	if err := analytics.NewReporter(db).Print(log); err != nil {
		return fmt.Errorf("erreur rapport final: %w", err)
	}

	log.Infof("✅ Génération terminée: %s", dbPath)
	return nil
}
