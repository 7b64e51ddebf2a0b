package resolver

import (
	"strings"

	"github.com/palitools/paligloss/internal/domain"
)

// rootGroupNames maps the ten traditional Pali verbal-root classes to their
// names. Unknown group codes are displayed numerically without a name.
var rootGroupNames = map[string]string{
	"1":  "bhvādi",
	"2":  "adādi",
	"3":  "juhotyādi",
	"4":  "divādi",
	"5":  "svādi",
	"6":  "tudādi",
	"7":  "rudhādi",
	"8":  "tanādi",
	"9":  "kryādi",
	"10": "curādi",
}

// BuildRootLabel composes the display label for a verbal root: the bare
// "{sign}{key}" form, extended with "· {group} ({name})" when the root class
// is known. When the bare root already ends with the group code the code is
// not repeated. Returns "" when key is empty; callers substitute a
// placeholder.
func BuildRootLabel(sign, key, group string) string {
	if key == "" {
		return ""
	}

	base := sign + key
	group = strings.TrimSpace(group)
	if group == "" || domain.IsPlaceholder(group) {
		return base
	}

	name := rootGroupNames[group]
	if strings.HasSuffix(strings.TrimSpace(base), " "+group) {
		if name == "" {
			return base
		}
		return base + " (" + name + ")"
	}
	if name == "" {
		return base + " · " + group
	}
	return base + " · " + group + " (" + name + ")"
}

// BuildEtymologyLabel composes a human-readable derivation summary from the
// headword's derivation fields, joining the non-empty parts with " · ".
// Returns "" when all inputs are empty; callers substitute a placeholder.
func BuildEtymologyLabel(derivedFrom, construction, stem, pattern string) string {
	var parts []string
	if v := strings.TrimSpace(derivedFrom); v != "" {
		parts = append(parts, "from "+v)
	}
	if v := strings.TrimSpace(construction); v != "" {
		parts = append(parts, "construction: "+v)
	}
	if v := strings.TrimSpace(stem); v != "" {
		parts = append(parts, "stem: "+v)
	}
	if v := strings.TrimSpace(pattern); v != "" {
		parts = append(parts, "pattern: "+v)
	}
	return strings.Join(parts, " · ")
}

// JoinDeduped joins values with "; " after an order-preserving, case- and
// whitespace-insensitive deduplication. Empty values are skipped.
func JoinDeduped(values []string) string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(strings.Join(strings.Fields(v), " "))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return strings.Join(out, "; ")
}
