package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zavagen/database"
	"zavagen/internal/generator"
	"zavagen/internal/reference"
	"zavagen/internal/sampling"
)

type embeddingsConfig struct {
	clear        bool
	referenceDir string
	dbFile       string
}

var embCfg embeddingsConfig

var embeddingsCmd = &cobra.Command{
	Use:   "embeddings",
	Short: "Repopulate product embeddings on an existing artifact",
	Long: `Reattaches image and description embedding vectors from the product catalog
to an already generated artifact, without touching any other table. With
--clear, existing embedding rows are deleted first.`,
	RunE: runEmbeddings,
}

func init() {
	rootCmd.AddCommand(embeddingsCmd)

	embeddingsCmd.Flags().BoolVar(&embCfg.clear, "clear", false, "Delete existing embedding rows first")
	embeddingsCmd.Flags().StringVar(&embCfg.referenceDir, "reference-dir", "", "Reference document directory (or ZAVA_REFERENCE_DIR env)")
	embeddingsCmd.Flags().StringVar(&embCfg.dbFile, "db", "", "SQLite artifact path (or ZAVA_DB_FILE env)")
}

func runEmbeddings(cmd *cobra.Command, args []string) error {
	dbPath := database.Resolve(embCfg.dbFile)
	if !database.Exists(dbPath) {
		return fmt.Errorf("artefact introuvable: %s (lancer generate d'abord)", dbPath)
	}

	refDir := embCfg.referenceDir
	if refDir == "" {
		refDir = getEnv("ZAVA_REFERENCE_DIR", "data_reference")
	}
	ref, err := reference.NewLoader(refDir).Load()
	if err != nil {
		return err
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline := generator.New(db, log, ref, sampling.NewRandom())
	report, err := pipeline.PopulateEmbeddingsOnly(embCfg.clear)
	if err != nil {
		return err
	}

	log.Infof("✅ Embeddings repeuplés: %d image, %d description",
		report.ImageEmbeddings, report.DescriptionEmbeddings)
	return nil
}
