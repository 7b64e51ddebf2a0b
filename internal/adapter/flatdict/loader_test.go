package flatdict

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	primary := writeFile(t, "pali.json",
		`{"dhamma": {"meaning": "teaching", "part_of_speech": "masc", "morphology": "", "root": "", "translation": "teaching"}}`)
	general := writeFile(t, "general.json",
		`{"ca": {"meaning": "and", "part_of_speech": "ind", "morphology": "", "root": "", "translation": "and"}}`)

	l := NewLoader(primary, general, slog.New(slog.DiscardHandler))
	dict, err := l.Load(context.Background())
	require.NoError(t, err)

	p, g := dict.Size()
	assert.Equal(t, 1, p)
	assert.Equal(t, 1, g)
}

func TestLoader_LoadIsMemoized(t *testing.T) {
	t.Parallel()

	primary := writeFile(t, "pali.json", `{}`)
	l := NewLoader(primary, "", slog.New(slog.DiscardHandler))

	first, err := l.Load(context.Background())
	require.NoError(t, err)

	// Deleting the file must not matter; the second load never touches disk.
	require.NoError(t, os.Remove(primary))

	second, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoader_ReloadReadsDisk(t *testing.T) {
	t.Parallel()

	primary := writeFile(t, "pali.json", `{}`)
	l := NewLoader(primary, "", slog.New(slog.DiscardHandler))

	_, err := l.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(primary, []byte(
		`{"ca": {"meaning": "and", "part_of_speech": "ind", "morphology": "", "root": "", "translation": "and"}}`), 0o644))

	dict, err := l.Reload(context.Background())
	require.NoError(t, err)
	p, _ := dict.Size()
	assert.Equal(t, 1, p)

	// Subsequent plain loads see the reloaded dictionary.
	again, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, dict, again)
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	l := NewLoader(filepath.Join(t.TempDir(), "nope.json"), "", slog.New(slog.DiscardHandler))
	_, err := l.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_MalformedJSON(t *testing.T) {
	t.Parallel()

	primary := writeFile(t, "pali.json", `{broken`)
	l := NewLoader(primary, "", slog.New(slog.DiscardHandler))
	_, err := l.Load(context.Background())
	assert.Error(t, err)
}
