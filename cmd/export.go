package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"zavagen/database"
	"zavagen/internal/export"
)

type exportConfig struct {
	dbFile string
	outDir string
	days   int
}

var expCfg exportConfig

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recent sales to Parquet and table statistics to CSV",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&expCfg.dbFile, "db", "", "SQLite artifact path (or ZAVA_DB_FILE env)")
	exportCmd.Flags().StringVar(&expCfg.outDir, "out", ".", "Output directory for export files")
	exportCmd.Flags().IntVar(&expCfg.days, "days", 730, "Sales window in days")
}

func runExport(cmd *cobra.Command, args []string) error {
	dbPath := database.Resolve(expCfg.dbFile)
	if !database.Exists(dbPath) {
		return fmt.Errorf("artefact introuvable: %s (lancer generate d'abord)", dbPath)
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := os.MkdirAll(expCfg.outDir, 0o755); err != nil {
		return err
	}

	svc := export.NewService(db)

	parquetPath := filepath.Join(expCfg.outDir, "sales.parquet")
	rowCount, err := svc.ExportSalesParquet(parquetPath, expCfg.days)
	if err != nil {
		return err
	}
	log.Infof("📦 Export Parquet: %d lignes écrites dans %s", rowCount, parquetPath)

	statsCSV, err := svc.ExportStatsCSV()
	if err != nil {
		return err
	}
	csvPath := filepath.Join(expCfg.outDir, "stats.csv")
	if err := os.WriteFile(csvPath, statsCSV, 0o644); err != nil {
		return err
	}
	log.Infof("📊 Export CSV des statistiques: %s", csvPath)

	return nil
}
