// Command dictbuild flattens a Digital Pali Dictionary database into the
// flat JSON format the local backend consumes. It is intended to be run
// offline, once per dictionary release.
//
// Flags:
//
//	--db   source database file (overrides config)
//	--out  output JSON path (default: dictionary.primary_path from config)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/palitools/paligloss/internal/adapter/flatdict"
	"github.com/palitools/paligloss/internal/adapter/sqlite"
	"github.com/palitools/paligloss/internal/app"
	"github.com/palitools/paligloss/internal/config"
)

func main() {
	dbFlag := flag.String("db", "", "source database file")
	outFlag := flag.String("out", "", "output JSON path")
	flag.Parse()

	cfg, err := config.Read()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dbFlag != "" {
		cfg.Database.Path = *dbFlag
	}
	out := *outFlag
	if out == "" {
		out = cfg.Dictionary.PrimaryPath
	}
	if cfg.Database.Path == "" || out == "" {
		log.Fatal("both a source database (--db) and an output path (--out) are required")
	}

	logger := app.NewLogger(cfg.Log)

	// Full-table scans over a large dictionary; give it room.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := run(ctx, cfg.Database.Path, out, cfg.Database.MaxBindParams, logger); err != nil {
		logger.Error("build flat dictionary", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, dbPath, out string, maxBindParams int, logger *slog.Logger) error {
	store, err := sqlite.Open(ctx, dbPath, sqlite.WithMaxBindParams(maxBindParams))
	if err != nil {
		return err
	}
	defer store.Close()

	started := time.Now()
	entries, err := flatdict.Build(ctx, store)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmp := out + ".part"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, out); err != nil {
		os.Remove(tmp)
		return err
	}

	logger.Info("flat dictionary written",
		slog.String("path", out),
		slog.Int("entries", len(entries)),
		slog.Duration("took", time.Since(started)))
	return nil
}
