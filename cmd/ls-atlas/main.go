// Command ls-atlas is a terminal UI for exploring a 3D celestial catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/litescript/ls-atlas/internal/assets"
	"github.com/litescript/ls-atlas/internal/camera"
	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/logging"
	"github.com/litescript/ls-atlas/internal/scene"
	"github.com/litescript/ls-atlas/internal/state"
	"github.com/litescript/ls-atlas/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	snapshotPath string
	cardName     string
)

// Environment overrides, loaded from .env when present.
const (
	envCatalog = "LS_ATLAS_CATALOG"
	envAssets  = "LS_ATLAS_ASSETS"
)

const (
	defaultRefresh = 50 * time.Millisecond
	minRefresh     = 10 * time.Millisecond
	maxRefresh     = time.Second
)

func main() {
	// .env overlay: real environment wins over file values.
	_ = godotenv.Load()

	catalogPath := flag.String("catalog", os.Getenv(envCatalog), "Catalog JSON file (default: built-in catalog)")
	assetsDir := flag.String("assets", os.Getenv(envAssets), "Directory with detail asset JSON files")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	refresh := flag.Duration("refresh", defaultRefresh, "Camera frame interval (e.g., 50ms)")
	flag.BoolVar(&summaryMode, "summary", false, "Print resolution summary table instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON scene snapshot to file (use - for stdout)")
	flag.StringVar(&cardName, "card", "", "Show card for a specific entity (name or ID)")
	flag.Parse()

	// Validate frame interval
	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load the catalog
	entities, err := loadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Catalog loaded: %d entities", len(entities))

	// Asset loader: without an asset directory every entity falls back
	// to its palette proxy.
	var loader assets.Loader
	if *assetsDir != "" {
		loader = assets.NewFSLoader(*assetsDir)
	} else {
		loader = assets.NullLoader{}
	}

	resolver := scene.NewResolver(loader, logger.With("resolver"))

	// Headless mode: no TUI
	headless := summaryMode || snapshotPath != "" || cardName != ""
	if headless {
		if err := runHeadless(ctx, resolver, loader, entities); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal (use -summary or -snapshot-path for headless output)")
		os.Exit(1)
	}

	session := state.NewManager(entities, state.DefaultConfig())
	nav := camera.New(camera.DefaultConfig())
	model := ui.New(session, nav, logger).SetFrameInterval(*refresh)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Resolve visuals in the background; each outcome is pushed to the
	// UI as it lands so proxies appear without waiting for slow assets.
	go runResolveLoop(ctx, resolver, entities, p, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadCatalog reads a catalog file, or returns the built-in catalog
// when no path is given.
func loadCatalog(path string) ([]catalog.Entity, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	entities, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return entities, nil
}

func runResolveLoop(ctx context.Context, resolver *scene.Resolver, entities []catalog.Entity, p *tea.Program, logger *logging.Logger) {
	start := time.Now()
	for _, e := range entities {
		if ctx.Err() != nil {
			logger.Debug("Resolve loop shutting down")
			return
		}
		p.Send(ui.ResolvedMsg{Outcome: resolver.Resolve(ctx, e)})
	}
	logger.Debug("Resolved %d entities in %v", len(entities), time.Since(start))
	p.Send(ui.ResolveDoneMsg{})
}

// runHeadless resolves the whole catalog once and writes the requested
// reports without starting the TUI.
func runHeadless(ctx context.Context, resolver *scene.Resolver, loader assets.Loader, entities []catalog.Entity) error {
	outcomes := resolver.ResolveAll(ctx, entities)

	if cardName != "" {
		if !scene.WriteEntityCard(os.Stdout, outcomes, cardName) {
			return fmt.Errorf("no entity named %q", cardName)
		}
		return nil
	}

	if snapshotPath != "" {
		export := scene.ExportSnapshot(outcomes, loader.Name(), time.Now())
		if snapshotPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(snapshotPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if summaryMode {
		scene.WriteSummaryTable(os.Stdout, outcomes)
	}

	return nil
}
