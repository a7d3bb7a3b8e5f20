package repository

import (
	"fmt"
	"strings"

	"github.com/atta-hamamah/MemberShift/internal/model"
)

// searchLimit caps every search result set. There is no pagination.
const searchLimit = 20

// Predicate is one filter condition. Expr uses ? markers, one per Arg;
// predicates are conjoined with AND when the query is rendered.
type Predicate struct {
	Expr string
	Args []interface{}
}

// BuildPredicates turns an optional-parameter set into an ordered list of
// predicates. The result depends only on the input: same filter, same
// predicates, always in the same order (type, category, query, location).
func BuildPredicates(f model.SearchFilter) []Predicate {
	var preds []Predicate

	if f.Type != "" {
		preds = append(preds, Predicate{Expr: "type = ?", Args: []interface{}{f.Type}})
	}
	if f.Category != "" {
		preds = append(preds, Predicate{Expr: "category = ?", Args: []interface{}{f.Category}})
	}
	if f.Query != "" {
		term := "%" + escapeLike(f.Query) + "%"
		preds = append(preds, Predicate{
			Expr: "(title ILIKE ? OR description ILIKE ?)",
			Args: []interface{}{term, term},
		})
	}
	// Online listings carry no address, so a location filter would match
	// nothing; it is dropped rather than rejected.
	if f.Location != "" && f.Type != model.TypeOnline {
		term := "%" + escapeLike(f.Location) + "%"
		preds = append(preds, Predicate{
			Expr: "(city ILIKE ? OR state ILIKE ? OR country ILIKE ?)",
			Args: []interface{}{term, term, term},
		})
	}
	return preds
}

// escapeLike escapes the ILIKE metacharacters % and _ so user input
// matches literally instead of acting as a wildcard.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// renderSearchQuery composes the final SELECT from the predicate list,
// numbering the placeholders $1..$n for Postgres.
func renderSearchQuery(preds []Predicate) (string, []interface{}) {
	var b strings.Builder
	b.WriteString("SELECT " + listingColumns + " FROM listings")

	var args []interface{}
	idx := 1
	for i, p := range preds {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		expr := p.Expr
		for range p.Args {
			expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", idx), 1)
			idx++
		}
		b.WriteString(expr)
		args = append(args, p.Args...)
	}

	b.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", searchLimit))
	return b.String(), args
}
