package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "GraphQL storefront backend",
	Long: `Storefront serves a GraphQL API over the product catalog
(categories, products with attributes and prices) and accepts orders.

Use "serve" to run the API server and "import" to load a catalog seed
file into the database.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitLogger()
		// Populate the environment from .env when present; real env wins.
		_ = godotenv.Load()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
