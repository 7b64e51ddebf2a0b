// Command paligloss glosses Pali text word by word against a dictionary.
//
// The text comes from --text, --file, or stdin, in that priority. The
// dictionary backend is either a Digital Pali Dictionary database file
// (--dict dpd) or flat JSON files (--dict local).
//
// Flags:
//
//	--text     text to gloss
//	--file     path to a file to gloss
//	--dict     backend: dpd or local (overrides config)
//	--db       database file path (overrides config)
//	--format   output format: compact or rich (overrides config)
//	--resume   print the previously saved session and exit
//	--debug    force debug logging
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/palitools/paligloss/internal/adapter/flatdict"
	"github.com/palitools/paligloss/internal/adapter/sqlite"
	"github.com/palitools/paligloss/internal/app"
	"github.com/palitools/paligloss/internal/config"
	"github.com/palitools/paligloss/internal/format"
	"github.com/palitools/paligloss/internal/resolver"
	"github.com/palitools/paligloss/internal/service/gloss"
	"github.com/palitools/paligloss/internal/session"
)

func main() {
	textFlag := flag.String("text", "", "text to gloss")
	fileFlag := flag.String("file", "", "path to a file to gloss")
	dictFlag := flag.String("dict", "", "dictionary backend: dpd or local")
	dbFlag := flag.String("db", "", "database file path")
	formatFlag := flag.String("format", "", "output format: compact or rich")
	resumeFlag := flag.Bool("resume", false, "print the saved session and exit")
	debugFlag := flag.Bool("debug", false, "force debug logging")
	flag.Parse()

	cfg, err := config.Read()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config; validation runs after overrides.
	if *dictFlag != "" {
		cfg.Dictionary.Backend = *dictFlag
	}
	if *dbFlag != "" {
		cfg.Database.Path = *dbFlag
	}
	if *formatFlag != "" {
		cfg.Output.Format = *formatFlag
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting", slog.String("version", app.BuildVersion()))

	os.Exit(run(cfg, logger, *textFlag, *fileFlag, *resumeFlag))
}

func run(cfg *config.Config, logger *slog.Logger, text, file string, resume bool) int {
	ctx := context.Background()

	render, err := format.ForName(cfg.Output.Format)
	if err != nil {
		logger.Error("select output format", slog.String("error", err.Error()))
		return 2
	}

	sessions := session.NewStore(cfg.Session.Path, logger)

	if resume {
		return printSaved(sessions, render, logger)
	}

	input, code := readInput(text, file, logger)
	if code != 0 {
		return code
	}

	svc, cleanup, err := buildService(ctx, cfg, logger)
	if err != nil {
		logger.Error("initialize backend", slog.String("error", err.Error()))
		return 1
	}
	defer cleanup()

	entries, err := svc.Gloss(ctx, input)
	if err != nil {
		logger.Error("gloss text", slog.String("error", err.Error()))
		return 1
	}

	rendered := render(entries)
	fmt.Print(rendered)

	if cfg.Session.Autosave {
		st := gloss.Collect(entries)
		err := sessions.Save(session.Session{
			DictName:  cfg.Dictionary.Backend,
			PaliText:  input,
			Generated: true,
			Gloss:     entries,
			Rendered:  rendered,
			Format:    cfg.Output.Format,
			Words:     st.Words,
			Found:     st.Resolved,
			Coverage:  st.Coverage,
		})
		if err != nil {
			// A failed save must not discard a successful gloss.
			logger.Warn("save session", slog.String("error", err.Error()))
		}
	}

	return 0
}

// buildService wires the configured backend behind the glossing service and
// returns a cleanup func releasing backend resources.
func buildService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*gloss.Service, func(), error) {
	switch cfg.Dictionary.Backend {
	case "local":
		loader := flatdict.NewLoader(cfg.Dictionary.PrimaryPath, cfg.Dictionary.GeneralPath, logger)
		dict, err := loader.Load(ctx)
		if err != nil {
			return nil, nil, err
		}
		return gloss.New(dict, logger), func() {}, nil

	default:
		store, err := sqlite.Open(ctx, cfg.Database.Path,
			sqlite.WithMaxBindParams(cfg.Database.MaxBindParams))
		if err != nil {
			return nil, nil, err
		}
		r := resolver.New(store, logger)
		return gloss.New(r, logger), func() { store.Close() }, nil
	}
}

// readInput picks the text source: --text, then --file, then stdin.
func readInput(text, file string, logger *slog.Logger) (string, int) {
	if text != "" {
		return text, 0
	}
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			logger.Error("read input file", slog.String("error", err.Error()))
			return "", 1
		}
		return string(raw), 0
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Error("read stdin", slog.String("error", err.Error()))
		return "", 1
	}
	if strings.TrimSpace(string(raw)) == "" {
		fmt.Fprintln(os.Stderr, "no input: pass --text, --file, or pipe text to stdin")
		return "", 2
	}
	return string(raw), 0
}

func printSaved(sessions *session.Store, render format.Func, logger *slog.Logger) int {
	saved, err := sessions.Load()
	if err != nil {
		logger.Error("load session", slog.String("error", err.Error()))
		return 1
	}
	if saved == nil {
		fmt.Fprintln(os.Stderr, "no saved session")
		return 1
	}

	fmt.Fprintf(os.Stderr, "saved %s (%s backend)\n",
		saved.SavedAt.UTC().Format(time.RFC3339), saved.DictName)
	fmt.Print(render(saved.Gloss))
	return 0
}
