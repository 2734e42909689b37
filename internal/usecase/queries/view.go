package queries

import (
	"sort"
	"strings"

	"pistachiohut/internal/pkg/errs"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrInvalidSortKey = errs.New("invalid sort key")
	ErrInvalidOrder   = errs.New("invalid sort order")
)

type SortKey string

const (
	SortPrice       SortKey = "price"
	SortPopularity  SortKey = "popularity"
	SortRating      SortKey = "rating"
	SortCategory    SortKey = "category"
	SortRecommended SortKey = "recommended"
)

func NewSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortRecommended, nil
	}
	key := SortKey(s)
	switch key {
	case SortPrice, SortPopularity, SortRating, SortCategory, SortRecommended:
		return key, nil
	default:
		return "", ErrInvalidSortKey
	}
}

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func NewOrder(s string) (Order, error) {
	if s == "" {
		return OrderAsc, nil
	}
	order := Order(s)
	switch order {
	case OrderAsc, OrderDesc:
		return order, nil
	default:
		return "", ErrInvalidOrder
	}
}

// View narrows and orders a catalog snapshot in memory. Pure and
// deterministic: the input slice is never mutated, ties keep their input
// order, and the recommended key always sorts by popularity descending no
// matter which order was requested.
func View(products []*ProductView, query string, key SortKey, order Order) []*ProductView {
	out := filterProducts(products, query)

	less := comparator(key)
	if order == OrderDesc && key != SortRecommended {
		asc := less
		less = func(a, b *ProductView) bool { return asc(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// filterProducts matches query as a case-insensitive substring of name or
// description. An empty query matches everything.
func filterProducts(products []*ProductView, query string) []*ProductView {
	out := make([]*ProductView, 0, len(products))
	if query == "" {
		return append(out, products...)
	}
	needle := strings.ToLower(query)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func comparator(key SortKey) func(a, b *ProductView) bool {
	switch key {
	case SortPrice:
		return func(a, b *ProductView) bool { return a.EffectivePriceCents() < b.EffectivePriceCents() }
	case SortPopularity:
		return func(a, b *ProductView) bool { return a.Popularity < b.Popularity }
	case SortRating:
		return func(a, b *ProductView) bool { return a.AverageRating < b.AverageRating }
	case SortCategory:
		collator := collate.New(language.English, collate.IgnoreCase)
		return func(a, b *ProductView) bool { return collator.CompareString(a.Category, b.Category) < 0 }
	default:
		// Recommended: most popular first.
		return func(a, b *ProductView) bool { return a.Popularity > b.Popularity }
	}
}
