package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"hashnav/internal/config"
	"hashnav/internal/journal"
	"hashnav/internal/tui"
	"hashnav/route"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tbl := route.NewTable()
	routes := []struct{ name, pattern string }{
		{"home", "home"},
		{"users", "users/:id"},
		{"protected", "protected"},
		{"editForm", "editForm"},
		{"login", "login"},
		{"reports", "reports"},
		{"files", "files/*path"},
	}
	for _, r := range routes {
		if err := tbl.Add(r.name, r.pattern); err != nil {
			log.Fatalf("route %s: %v", r.name, err)
		}
	}

	var j *journal.Journal
	if cfg.Journal.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
			log.Fatalf("mkdir journal dir: %v", err)
		}
		if err := journal.RunMigrations(cfg.Journal.Path, "internal/journal/migrations"); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		db, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer db.Close()
		j = journal.New(db)
	}

	app := tui.New(ctx, cfg, tbl, j)
	defer app.Pipeline().Close()

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
