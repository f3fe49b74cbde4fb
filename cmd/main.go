package main

import (
	"fmt"
	"os"

	"health-records-service/cmd/bootstrap"
	"health-records-service/config"
	"health-records-service/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "health-records",
		Short:         "Health records API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(migrateStep("up", "Apply pending migrations", func(m *database.Migrator) error {
		return m.Up()
	}))
	cmd.AddCommand(migrateStep("down", "Roll back the latest migration", func(m *database.Migrator) error {
		return m.Down()
	}))
	cmd.AddCommand(migrateStep("version", "Show the applied schema version", func(m *database.Migrator) error {
		version, dirty, ok, err := m.Version()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No migrations applied")
			return nil
		}
		fmt.Printf("Version %d (dirty: %t)\n", version, dirty)
		return nil
	}))

	return cmd
}

func migrateStep(use, short string, fn func(*database.Migrator) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := bootstrap.NewLogger(cfg.App)
			if err := bootstrap.Migrate(log, cfg.DB, fn); err != nil {
				return fmt.Errorf("migrate %s failed: %w", use, err)
			}
			return nil
		},
	}
}
