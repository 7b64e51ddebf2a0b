// Package session persists the last glossing run so interactive work can
// resume after a restart.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/palitools/paligloss/internal/domain"
)

// Session is one saved glossing run: the input, the assembled entries, the
// rendered text shown to the user, and the run totals.
type Session struct {
	SavedAt   time.Time           `json:"saved_at"`
	DictName  string              `json:"dict_name"`
	PaliText  string              `json:"pali_text"`
	Generated bool                `json:"generated"`
	Gloss     []domain.GlossEntry `json:"gloss"`
	Rendered  string              `json:"rendered,omitempty"`
	Format    string              `json:"format,omitempty"`
	Words     int                 `json:"words"`
	Found     int                 `json:"found"`
	// Coverage is a percentage in [0,100], as the gloss stats report it.
	Coverage float64 `json:"coverage"`
}

// Store reads and writes the session file. Writes go through a temp file and
// rename, so a crash mid-save never corrupts an existing session.
type Store struct {
	path string
	log  *slog.Logger
}

// NewStore creates a store persisting to path.
func NewStore(path string, log *slog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Save writes the session atomically, stamping SavedAt in UTC when unset.
func (s *Store) Save(sess Session) error {
	if sess.SavedAt.IsZero() {
		sess.SavedAt = time.Now().UTC()
	}

	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	tmp := s.path + ".part"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit session: %w", err)
	}

	s.log.Debug("session saved",
		slog.String("path", s.path),
		slog.Int("entries", len(sess.Gloss)))
	return nil
}

// Load returns the saved session, or nil when none exists. A file that does
// not parse is treated as no session; losing a stale session is better than
// refusing to start.
func (s *Store) Load() (*Session, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn("discarding unreadable session file",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return nil, nil
	}
	return &sess, nil
}

// Clear removes the session file; a missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
