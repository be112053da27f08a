package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dperalta/projecthub/internal/auth"
	"github.com/dperalta/projecthub/internal/cli"
	"github.com/dperalta/projecthub/internal/db"
	"github.com/dperalta/projecthub/internal/repository"
	"github.com/dperalta/projecthub/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local setups; missing file is fine.
	_ = godotenv.Load()

	dbPath := os.Getenv("PROJECTHUB_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".projecthub", "projecthub.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	personRepo := repository.NewSQLitePersonRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// First run seeds the admin account from the environment.
	if err := auth.SeedAdmin(context.Background(), userRepo,
		os.Getenv("PROJECTHUB_ADMIN_EMAIL"), os.Getenv("PROJECTHUB_ADMIN_PASSWORD")); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	refresh := service.NewRefreshService(projectRepo, personRepo)

	app := &cli.App{
		Auth:      auth.NewService(userRepo),
		Refresh:   refresh,
		Projects:  service.NewProjectService(projectRepo, refresh),
		Personnel: service.NewPersonnelService(personRepo, refresh),
		Dossier:   service.NewDossierService(projectRepo, refresh),
		Schedule:  service.NewScheduleService(projectRepo, refresh),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
