package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valenieksvladislavs/ScandiWebTest2025/app/importer"
	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/config"
	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/database"
	"github.com/valenieksvladislavs/ScandiWebTest2025/models"
)

var seedFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a catalog seed JSON file into the database",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&seedFile, "file", "f", "data/data.json", "path to the seed JSON file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	imp := importer.NewImporter(models.NewCatalogStore(db))
	if err := imp.RunFile(seedFile); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return nil
}
