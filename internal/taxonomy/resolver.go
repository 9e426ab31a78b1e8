// Package taxonomy maps category identifiers (simple or composite taxonomy
// keys) to product subsets and display metadata. Every input, including
// unknown or malformed identifiers, has a defined result: an empty product
// list or placeholder metadata.
package taxonomy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"catalog_service/internal/domain"
)

// Predicate reports whether a product belongs to a taxonomy key.
type Predicate func(domain.Product) bool

var routes = buildRoutes()

func buildRoutes() map[string]Predicate {
	table := make(map[string]Predicate, len(domain.DepartmentKeys)+len(domain.SubcategoryKeys)+len(domain.EventKeys))
	for _, key := range domain.DepartmentKeys {
		display, _ := domain.DepartmentDisplayName(key)
		table[key] = func(p domain.Product) bool { return p.Category == display }
	}
	for _, key := range domain.SubcategoryKeys {
		display, _ := domain.SubcategoryDisplayName(key)
		table[key] = func(p domain.Product) bool { return p.Subcategory == display }
	}
	for _, event := range domain.EventKeys {
		table[string(event)] = func(p domain.Product) bool { return p.Event == event }
	}
	return table
}

// Split breaks a composite identifier "<parent>:<child>" apart. Only the first
// two segments are significant; "a:b:c" yields ("a", "b").
func Split(identifier string) (parent, child string, composite bool) {
	if !strings.Contains(identifier, domain.CompositeSeparator) {
		return "", "", false
	}
	parts := strings.Split(identifier, domain.CompositeSeparator)
	return parts[0], parts[1], true
}

// Known reports whether the identifier routes through the enumerated table
// (composite identifiers are always routable in shape).
func Known(identifier string) bool {
	if _, _, composite := Split(identifier); composite {
		return true
	}
	_, ok := routes[identifier]
	return ok
}

// ResolvePredicate returns the membership test for an identifier. Unknown
// identifiers get a predicate that matches nothing.
func ResolvePredicate(identifier string) Predicate {
	if parent, child, composite := Split(identifier); composite {
		return compositePredicate(parent, child)
	}
	if pred, ok := routes[identifier]; ok {
		return pred
	}
	return matchNone
}

// ResolveFilter returns the products matching the identifier, in source order.
// The result is never nil and never aliases the input slice.
func ResolveFilter(identifier string, products []domain.Product) []domain.Product {
	pred := ResolvePredicate(identifier)
	out := make([]domain.Product, 0)
	for _, p := range products {
		if pred(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ResolveMetadata returns the static metadata for an identifier. Composite
// identifiers are described by their child key; unknown keys get the
// placeholder with Name "Unknown" and a zero product count.
func ResolveMetadata(identifier string) domain.CategoryInfo {
	id := identifier
	if _, child, composite := Split(identifier); composite {
		id = child
	}
	if info, ok := domain.LookupCategory(id); ok {
		return info
	}
	return domain.UnknownCategory(id)
}

// SubcategoryDisplayName translates a child key of a composite identifier.
// Keys outside the table fall back to the key with its first letter upper-cased.
func SubcategoryDisplayName(child string) string {
	if name, ok := domain.SubcategoryDisplayName(child); ok {
		return name
	}
	return capitalize(child)
}

func compositePredicate(parent, child string) Predicate {
	if parent == "" || child == "" {
		return matchNone
	}
	display := SubcategoryDisplayName(child)
	return func(p domain.Product) bool {
		return strings.ToLower(p.Category) == parent && p.Subcategory == display
	}
}

func matchNone(domain.Product) bool { return false }

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
