package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/haythamstudio/intake/internal/booking"
	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/cli"
	"github.com/haythamstudio/intake/internal/db"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/repository"
	"github.com/haythamstudio/intake/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.intake/intake.db
	dbPath := os.Getenv("INTAKE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".intake", "intake.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and services
	draftRepo := repository.NewSQLiteDraftRepo(database)
	apiClient := booking.NewClient(booking.LoadConfig())

	app := &cli.App{
		Inquiries: service.NewInquiryService(apiClient),
		Drafts:    service.NewDraftService(draftRepo),
		Catalog:   catalog.Default(),
		IDs:       domain.UUIDGenerator{},
	}

	// Detect interactive terminal for the wizard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
