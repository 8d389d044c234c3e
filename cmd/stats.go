package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zavagen/database"
	"zavagen/internal/analytics"
)

var statsDBFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics for an existing artifact",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsDBFile, "db", "", "SQLite artifact path (or ZAVA_DB_FILE env)")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := database.Resolve(statsDBFile)
	if !database.Exists(dbPath) {
		return fmt.Errorf("artefact introuvable: %s (lancer generate d'abord)", dbPath)
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	return analytics.NewReporter(db).Print(log)
}
