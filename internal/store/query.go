package store

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PageSize is the fixed page size requested from the remote API.
const PageSize = 10

// DefaultOrderBy keeps result order deterministic when no sort field is
// configured. Without it the remote cursor chain is unstable.
const DefaultOrderBy = "modifiedon desc"

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortSpec is the requested result ordering. An empty Field falls back to
// DefaultOrderBy.
type SortSpec struct {
	Field string
	Order string
}

// OrderBy renders the $orderby clause.
func (s SortSpec) OrderBy() string {
	if s.Field == "" {
		return DefaultOrderBy
	}
	order := s.Order
	if order != SortAsc && order != SortDesc {
		order = SortAsc
	}
	return fmt.Sprintf("%s %s", s.Field, order)
}

// FilterSet holds the committed search/category/state constraints.
// Nil Category/State means no constraint; negative values likewise, so the
// UI can use -1 as an "all" sentinel without growing a clause.
type FilterSet struct {
	Search   string
	Category *Category
	State    *State
}

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return f.Search == "" &&
		(f.Category == nil || *f.Category < 0) &&
		(f.State == nil || *f.State < 0)
}

// EscapeQuotes doubles single quotes so the term cannot terminate the
// string literal it is interpolated into.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Clauses builds the individual $filter clauses from the non-empty fields.
// Absent fields are omitted entirely rather than sent as wildcards.
func (f FilterSet) Clauses() []string {
	var clauses []string
	if f.State != nil && *f.State >= 0 {
		clauses = append(clauses, fmt.Sprintf("statecode eq %d", f.State.EnumIndex()))
	}
	if f.Search != "" {
		escaped := EscapeQuotes(f.Search)
		clauses = append(clauses, fmt.Sprintf("(contains(name,'%s') or contains(uniquename,'%s'))", escaped, escaped))
	}
	if f.Category != nil && *f.Category >= 0 {
		clauses = append(clauses, fmt.Sprintf("category eq %d", f.Category.EnumIndex()))
	}
	return clauses
}

// Filter renders the full $filter conjunction, or "" when no clause applies.
func (f FilterSet) Filter() string {
	return strings.Join(f.Clauses(), " and ")
}

// BuildQuery assembles the query parameters for a fresh (non-cursor) page
// request.
func BuildQuery(sort SortSpec, filter FilterSet, pageSize int) url.Values {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	q := url.Values{}
	q.Set("$top", strconv.Itoa(pageSize))
	q.Set("$count", "true")
	q.Set("$orderby", sort.OrderBy())
	if f := filter.Filter(); f != "" {
		q.Set("$filter", f)
	}
	return q
}
