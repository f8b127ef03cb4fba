// Command umkm-admin runs maintenance tasks against the UMKM web database:
// applying the schema and managing admin accounts.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	commands "github.com/01moynul/umkm-web-golang/cmd/umkm-admin/internal/commands"
	"github.com/01moynul/umkm-web-golang/internal/config"
	"github.com/01moynul/umkm-web-golang/internal/database"
	"github.com/01moynul/umkm-web-golang/internal/logger"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:          "umkm-admin",
		Short:        "Maintenance tool for the UMKM web backend",
		SilenceUsage: true,
		Long: `umkm-admin reads the same environment (or .env file) as the API server.
DB_DSN must point at the MySQL database.`,
	}

	if err := commands.InitAdminCommands(rootCmd, connect); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}
	return rootCmd.Execute()
}

// connect opens the database only; the JWT and upload settings are not
// needed here, so the full config validation is skipped.
func connect(ctx context.Context) (*commands.Deps, func() error, error) {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	zl, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		return nil, nil, err
	}

	db, err := database.OpenDB(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	release := func() error {
		_ = zl.Sync()
		return db.Close()
	}
	return &commands.Deps{DB: db, Admins: store.New(db).Admins, Log: zl}, release, nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
