package usecase

import "catalog_service/internal/domain"

// DefaultRelatedLimit is how many related products a detail page shows.
const DefaultRelatedLimit = 4

// Direction of travel through a cyclic sequence.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// ByID returns a copy of the product with the given id.
func ByID(products []domain.Product, id int) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Product{}, false
}

// Related returns up to limit products of the same category, excluding the
// product itself, in collection order.
func Related(products []domain.Product, product domain.Product, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := make([]domain.Product, 0, limit)
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.Category == product.Category && p.ID != product.ID {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Recommended returns the products flagged for the home page, in order.
func Recommended(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsRecommended {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Cycle moves one step from current in dir over a sequence of the given
// length, wrapping at both ends. current may be out of range (e.g. -1 for
// "no selection"); the result is always in [0, length), or 0 when length is 0.
func Cycle(length, current int, dir Direction) int {
	if length <= 0 {
		return 0
	}
	step := 0
	switch {
	case dir > 0:
		step = 1
	case dir < 0:
		step = -1
	}
	next := (current + step) % length
	if next < 0 {
		next += length
	}
	return next
}

// CycleIndex is Cycle over the length of seq.
func CycleIndex[T any](seq []T, current int, dir Direction) int {
	return Cycle(len(seq), current, dir)
}
