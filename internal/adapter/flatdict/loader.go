package flatdict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/palitools/paligloss/internal/domain"
)

// Loader reads flat dictionary files lazily and memoizes the result for the
// life of the process. Concurrent first loads collapse into a single read;
// Reload swaps the dictionary atomically under readers.
type Loader struct {
	primaryPath string
	generalPath string
	log         *slog.Logger

	mu   sync.RWMutex
	dict *Dict
	sf   singleflight.Group
}

// NewLoader creates a loader for the given files. generalPath may be empty,
// leaving the general tier empty.
func NewLoader(primaryPath, generalPath string, log *slog.Logger) *Loader {
	return &Loader{primaryPath: primaryPath, generalPath: generalPath, log: log}
}

// Load returns the memoized dictionary, reading the files on first use.
func (l *Loader) Load(ctx context.Context) (*Dict, error) {
	l.mu.RLock()
	dict := l.dict
	l.mu.RUnlock()
	if dict != nil {
		return dict, nil
	}

	v, err, _ := l.sf.Do("load", func() (any, error) {
		return l.read(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dict), nil
}

// Reload re-reads the files unconditionally. In-flight readers keep the old
// dictionary until the swap.
func (l *Loader) Reload(ctx context.Context) (*Dict, error) {
	return l.read(ctx)
}

func (l *Loader) read(ctx context.Context) (*Dict, error) {
	primary, err := readTier(l.primaryPath)
	if err != nil {
		return nil, fmt.Errorf("primary dictionary: %w", err)
	}

	var general map[string]domain.FlatEntry
	if l.generalPath != "" {
		general, err = readTier(l.generalPath)
		if err != nil {
			return nil, fmt.Errorf("general dictionary: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dict := NewDict(primary, general)
	l.mu.Lock()
	l.dict = dict
	l.mu.Unlock()

	p, g := dict.Size()
	l.log.Info("flat dictionary loaded",
		slog.Int("primary_entries", p),
		slog.Int("general_entries", g))
	return dict, nil
}

// readTier parses one flat dictionary file: a JSON object mapping normalized
// words to entries.
func readTier(path string) (map[string]domain.FlatEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tier map[string]domain.FlatEntry
	if err := json.Unmarshal(raw, &tier); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tier, nil
}
