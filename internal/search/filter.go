// Package search ranks the visible search results against a filter term.
//
// Rows are indexed into an in-memory bleve index keyed by their position,
// with the title weighted above the channel and the channel above the
// description. The index is rebuilt only when the row set changes.
package search

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"
)

// FieldSeparator joins the fields of one filter target. See Target.
const FieldSeparator = "\x1f"

// Target encodes a row for Rank. The title comes first so that matched
// rune indexes line up with the title as rendered.
func Target(title, channel, description string) string {
	return strings.Join([]string{title, channel, description}, FieldSeparator)
}

type fields struct {
	title, channel, description string
}

func splitTarget(target string) fields {
	parts := strings.SplitN(target, FieldSeparator, 3)
	var f fields
	f.title = parts[0]
	if len(parts) > 1 {
		f.channel = parts[1]
	}
	if len(parts) > 2 {
		f.description = parts[2]
	}
	return f
}

// Match is one ranked target.
type Match struct {
	Index          int
	Score          float64
	MatchedIndexes []int
}

// Filter is safe for concurrent use.
type Filter struct {
	mu      sync.Mutex
	idx     bleve.Index
	indexed []string
}

func NewFilter() (*Filter, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating filter index: %w", err)
	}
	return &Filter{idx: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = false
	title.IncludeTermVectors = true

	channel := bleve.NewTextFieldMapping()
	channel.Analyzer = standard.Name
	channel.Store = false

	desc := bleve.NewTextFieldMapping()
	desc.Analyzer = standard.Name
	desc.Store = false
	desc.IncludeTermVectors = false

	dm.AddFieldMappingsAt("title", title)
	dm.AddFieldMappingsAt("channel", channel)
	dm.AddFieldMappingsAt("description", desc)

	im.DefaultMapping = dm
	return im
}

// Rank returns the targets matching term, best first. Ties keep target order.
// A term without letters or digits matches every target.
func (f *Filter) Rank(term string, targets []string) ([]Match, error) {
	tokens := tokenize(term)
	if len(tokens) == 0 {
		all := make([]Match, len(targets))
		for i := range targets {
			all[i] = Match{Index: i}
		}
		return all, nil
	}
	if len(targets) == 0 {
		return []Match{}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.reindex(targets); err != nil {
		return nil, err
	}

	req := bleve.NewSearchRequestOptions(buildQuery(tokens), len(targets), 0, false)
	res, err := f.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("filtering results: %w", err)
	}

	out := make([]Match, 0, len(res.Hits))
	for _, h := range res.Hits {
		i, err := strconv.Atoi(h.ID)
		if err != nil || i < 0 || i >= len(targets) {
			continue
		}
		out = append(out, Match{
			Index:          i,
			Score:          h.Score,
			MatchedIndexes: matchedRunes(splitTarget(targets[i]).title, tokens),
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].Index < out[b].Index
	})
	return out, nil
}

// buildQuery ORs per-token match and prefix queries across the row fields.
func buildQuery(tokens []string) bleveQuery.Query {
	boosts := []struct {
		field  string
		match  float64
		prefix float64
	}{
		{"title", 4.0, 3.5},
		{"channel", 2.0, 1.8},
		{"description", 1.0, 0.8},
	}

	var qs []bleveQuery.Query
	for _, tok := range tokens {
		for _, b := range boosts {
			qm := bleve.NewMatchQuery(tok)
			qm.SetField(b.field)
			qm.SetBoost(b.match)
			qs = append(qs, qm)

			qp := bleve.NewPrefixQuery(tok)
			qp.SetField(b.field)
			qp.SetBoost(b.prefix)
			qs = append(qs, qp)
		}
	}
	return bleve.NewDisjunctionQuery(qs...)
}

func (f *Filter) reindex(targets []string) error {
	if slices.Equal(f.indexed, targets) {
		return nil
	}

	batch := f.idx.NewBatch()
	for i := range f.indexed {
		batch.Delete(strconv.Itoa(i))
	}
	for i, target := range targets {
		fs := splitTarget(target)
		if err := batch.Index(strconv.Itoa(i), map[string]any{
			"title":       fs.title,
			"channel":     fs.channel,
			"description": fs.description,
		}); err != nil {
			return fmt.Errorf("indexing result %d: %w", i, err)
		}
	}
	if err := f.idx.Batch(batch); err != nil {
		return fmt.Errorf("indexing results: %w", err)
	}

	f.indexed = slices.Clone(targets)
	return nil
}

// docCount reports how many rows are indexed.
func (f *Filter) docCount() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, err := f.idx.DocCount()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (f *Filter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.idx.Close()
}
