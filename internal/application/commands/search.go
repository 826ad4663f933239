package commands

import (
	"context"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"slidedeck/internal/domain"
)

// SearchResult is a card matched by a search query
type SearchResult struct {
	CardID       string
	Title        string
	SectionTitle string
	Score        int
}

// SearchCardsCommand finds cards by fuzzy matching their titles
type SearchCardsCommand struct {
	reg   *domain.Registry
	Query string
}

// NewSearchCardsCommand creates a new SearchCardsCommand
func NewSearchCardsCommand(reg *domain.Registry, query string) *SearchCardsCommand {
	return &SearchCardsCommand{
		reg:   reg,
		Query: query,
	}
}

// Execute runs the search and returns results best match first
func (c *SearchCardsCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := Fold(strings.TrimSpace(c.Query))
	if query == "" || c.reg == nil {
		return nil, nil
	}

	targets := newCardTargets(c.reg)
	matches := fuzzy.FindFrom(query, targets)

	results := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := targets[m.Index]
		results = append(results, SearchResult{
			CardID:       t.card.ID,
			Title:        t.card.Title,
			SectionTitle: t.section,
			Score:        m.Score,
		})
	}
	return results, nil
}

type cardTarget struct {
	card    domain.Card
	section string
	folded  string
}

// cardTargets implements fuzzy.Source
type cardTargets []cardTarget

func newCardTargets(reg *domain.Registry) cardTargets {
	var out cardTargets
	for _, s := range reg.Sections() {
		for _, c := range s.Cards {
			out = append(out, cardTarget{
				card:    c,
				section: s.Title,
				folded:  Fold(c.Title + " " + s.Title + " " + c.ID),
			})
		}
	}
	return out
}

func (t cardTargets) String(i int) string { return t[i].folded }
func (t cardTargets) Len() int            { return len(t) }

// Fold lowercases s and strips diacritics so "doc quyen" matches "Độc quyền"
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	// đ has no decomposition
	out = strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
	return strings.ToLower(out)
}
