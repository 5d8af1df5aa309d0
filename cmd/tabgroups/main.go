package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tabgroups/internal/cli"
	"github.com/alexanderramin/tabgroups/internal/config"
	"github.com/alexanderramin/tabgroups/internal/db"
	"github.com/alexanderramin/tabgroups/internal/repository"
	"github.com/alexanderramin/tabgroups/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	nodeRepo := repository.NewSQLiteNodeRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel))
	}

	app := &cli.App{
		Trees:  service.NewTreeService(nodeRepo, uow, observers...),
		Moves:  service.NewMoveService(nodeRepo, observers...),
		Nodes:  service.NewNodeService(nodeRepo, uow),
		Config: cfg,
	}

	// Prompts and the browse view need a real terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).Execute()
}
