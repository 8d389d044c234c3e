// Package cmd définit la surface CLI du générateur: generate, stats,
// embeddings et export. La configuration vient des drapeaux, avec repli sur
// les variables d'environnement chargées depuis .env.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "zavagen [command]",
	Short: "Synthetic retail dataset generator for the Zava DIY shop",
	Long: `Generates a complete relational retail dataset (stores, customers, products,
suppliers, inventory, orders) into a SQLite artifact, from JSON reference documents.
Store inventory assignments are reproducible across runs on the same reference data.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env est optionnel: son absence n'est pas une erreur.
		_ = godotenv.Load()

		var err error
		log, err = buildLogger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute lance la CLI. Toute erreur de commande produit un code de sortie
// non nul.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Errorf("❌ %v", err)
			_ = log.Sync()
		}
		os.Exit(1)
	}
}

// buildLogger construit le logger selon LOG_MODE: dev (par défaut, sortie
// console lisible) ou prod (JSON structuré).
func buildLogger() (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if getEnv("LOG_MODE", "dev") == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
