package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/valenieksvladislavs/ScandiWebTest2025/app/graphql"
	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/config"
	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/database"
	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/server"
	"github.com/valenieksvladislavs/ScandiWebTest2025/models"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL API server",
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
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

	resolver := graphql.NewResolver(
		models.NewCategoriesRepository(db),
		models.NewProductsRepository(db),
		models.NewOrdersRepository(db),
	)
	schema, err := graphql.NewSchema(resolver)
	if err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}

	srv := server.New(db, graphql.NewHandler(schema))

	slog.Info("starting server", "addr", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
