package sqlite

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/palitools/paligloss/internal/domain"
)

// headwordColumns lists every dpd_headwords column the engine reads, with
// COALESCE so nullable text columns scan as empty strings.
var headwordColumns = []string{
	"id",
	"COALESCE(lemma_1, '') AS lemma_1",
	"COALESCE(pos, '') AS pos",
	"COALESCE(grammar, '') AS grammar",
	"COALESCE(meaning_1, '') AS meaning_1",
	"COALESCE(meaning_2, '') AS meaning_2",
	"COALESCE(meaning_lit, '') AS meaning_lit",
	"COALESCE(root_key, '') AS root_key",
	"COALESCE(root_sign, '') AS root_sign",
	"COALESCE(sanskrit, '') AS sanskrit",
	"COALESCE(derived_from, '') AS derived_from",
	"COALESCE(construction, '') AS construction",
	"COALESCE(stem, '') AS stem",
	"COALESCE(pattern, '') AS pattern",
}

type headwordRow struct {
	ID           int64  `db:"id"`
	Lemma1       string `db:"lemma_1"`
	POS          string `db:"pos"`
	Grammar      string `db:"grammar"`
	Meaning1     string `db:"meaning_1"`
	Meaning2     string `db:"meaning_2"`
	MeaningLit   string `db:"meaning_lit"`
	RootKey      string `db:"root_key"`
	RootSign     string `db:"root_sign"`
	Sanskrit     string `db:"sanskrit"`
	DerivedFrom  string `db:"derived_from"`
	Construction string `db:"construction"`
	Stem         string `db:"stem"`
	Pattern      string `db:"pattern"`
}

func (r headwordRow) toDomain() domain.Headword {
	return domain.Headword{
		ID:           r.ID,
		Lemma:        r.Lemma1,
		POS:          r.POS,
		Grammar:      r.Grammar,
		Meaning1:     r.Meaning1,
		Meaning2:     r.Meaning2,
		MeaningLit:   r.MeaningLit,
		RootKey:      r.RootKey,
		RootSign:     r.RootSign,
		Sanskrit:     r.Sanskrit,
		DerivedFrom:  r.DerivedFrom,
		Construction: r.Construction,
		Stem:         r.Stem,
		Pattern:      r.Pattern,
	}
}

type lookupRow struct {
	LookupKey string `db:"lookup_key"`
	Headwords string `db:"headwords"`
	Grammar   string `db:"grammar"`
}

func (r lookupRow) toDomain() domain.LookupRecord {
	return domain.LookupRecord{
		LookupKey:   r.LookupKey,
		HeadwordIDs: decodeHeadwordIDs(r.Headwords),
		Grammar:     decodeGrammar(r.Grammar),
	}
}

type rootRow struct {
	Root      string `db:"root"`
	RootSign  string `db:"root_sign"`
	RootGroup string `db:"root_group"`
}

// LookupRecords returns the lookup rows for the given keys, chunked under
// the bind-parameter ceiling. Missing keys are simply absent from the
// result; order is not significant.
func (s *Store) LookupRecords(ctx context.Context, keys []string) ([]domain.LookupRecord, error) {
	out := make([]domain.LookupRecord, 0, len(keys))
	for _, part := range chunk(keys, s.maxBindParams) {
		query, args, err := sq.
			Select("lookup_key", "COALESCE(headwords, '') AS headwords", "COALESCE(grammar, '') AS grammar").
			From("lookup").
			Where(sq.Eq{"lookup_key": part}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build lookup query: %w", err)
		}

		var rows []lookupRow
		if err := sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
			return nil, mapError(err, "lookup")
		}
		for _, row := range rows {
			out = append(out, row.toDomain())
		}
	}
	return out, nil
}

// HeadwordsByID returns the headword rows for the given ids, chunked under
// the bind-parameter ceiling.
func (s *Store) HeadwordsByID(ctx context.Context, ids []int64) ([]domain.Headword, error) {
	out := make([]domain.Headword, 0, len(ids))
	for _, part := range chunk(ids, s.maxBindParams) {
		query, args, err := sq.
			Select(headwordColumns...).
			From("dpd_headwords").
			Where(sq.Eq{"id": part}).
			OrderBy("id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build headword query: %w", err)
		}

		var rows []headwordRow
		if err := sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
			return nil, mapError(err, "dpd_headwords")
		}
		for _, row := range rows {
			out = append(out, row.toDomain())
		}
	}
	return out, nil
}

// HeadwordsByLemma matches lemmas case-insensitively against lemma_1,
// chunked under the bind-parameter ceiling. Rows come back in id order so
// the first sense per lemma is deterministic.
func (s *Store) HeadwordsByLemma(ctx context.Context, lemmas []string) ([]domain.Headword, error) {
	probes := make([]string, 0, len(lemmas))
	for _, l := range lemmas {
		probes = append(probes, strings.ToLower(l))
	}

	out := make([]domain.Headword, 0, len(probes))
	for _, part := range chunk(probes, s.maxBindParams) {
		query, args, err := sq.
			Select(headwordColumns...).
			From("dpd_headwords").
			Where(sq.Eq{"lower(lemma_1)": part}).
			OrderBy("id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build lemma query: %w", err)
		}

		var rows []headwordRow
		if err := sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
			return nil, mapError(err, "dpd_headwords")
		}
		for _, row := range rows {
			out = append(out, row.toDomain())
		}
	}
	return out, nil
}

// RootsByKey returns the root rows for the given root keys. root_group is
// stored numerically and scans as text.
func (s *Store) RootsByKey(ctx context.Context, roots []string) ([]domain.Root, error) {
	out := make([]domain.Root, 0, len(roots))
	for _, part := range chunk(roots, s.maxBindParams) {
		query, args, err := sq.
			Select("root", "COALESCE(root_sign, '') AS root_sign", "COALESCE(CAST(root_group AS TEXT), '') AS root_group").
			From("dpd_roots").
			Where(sq.Eq{"root": part}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build roots query: %w", err)
		}

		var rows []rootRow
		if err := sqlscan.Select(ctx, s.db, &rows, query, args...); err != nil {
			return nil, mapError(err, "dpd_roots")
		}
		for _, row := range rows {
			out = append(out, domain.Root{Root: row.Root, RootSign: row.RootSign, RootGroup: row.RootGroup})
		}
	}
	return out, nil
}

// AllHeadwords streams every headword row, in id order, to fn. Used by the
// flat-dictionary builder; the engine's query path never full-scans.
func (s *Store) AllHeadwords(ctx context.Context, fn func(domain.Headword) error) error {
	query, _, err := sq.
		Select(headwordColumns...).
		From("dpd_headwords").
		OrderBy("id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build headword scan: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return mapError(err, "dpd_headwords")
	}
	defer rows.Close()

	scanner := sqlscan.NewRowScanner(rows)
	for rows.Next() {
		var row headwordRow
		if err := scanner.Scan(&row); err != nil {
			return mapError(err, "dpd_headwords")
		}
		if err := fn(row.toDomain()); err != nil {
			return err
		}
	}
	return mapError(rows.Err(), "dpd_headwords")
}

// AllLookups streams every lookup row to fn, in lookup_key order.
func (s *Store) AllLookups(ctx context.Context, fn func(domain.LookupRecord) error) error {
	query, _, err := sq.
		Select("lookup_key", "COALESCE(headwords, '') AS headwords", "COALESCE(grammar, '') AS grammar").
		From("lookup").
		OrderBy("lookup_key").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lookup scan: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return mapError(err, "lookup")
	}
	defer rows.Close()

	scanner := sqlscan.NewRowScanner(rows)
	for rows.Next() {
		var row lookupRow
		if err := scanner.Scan(&row); err != nil {
			return mapError(err, "lookup")
		}
		if err := fn(row.toDomain()); err != nil {
			return err
		}
	}
	return mapError(rows.Err(), "lookup")
}
