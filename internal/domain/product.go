package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate applies the same tag rules as the gin request binding.
var validate = validator.New()

// WithID turns the draft into a stored product.
func (d ProductDraft) WithID(id int) Product {
	p := Product{
		ID:            id,
		Name:          d.Name,
		Category:      d.Category,
		Subcategory:   d.Subcategory,
		Event:         d.Event,
		Price:         d.Price,
		ImageURL:      d.ImageURL,
		Images:        d.Images,
		Colors:        d.Colors,
		Sizes:         d.Sizes,
		Description:   d.Description,
		Material:      d.Material,
		Care:          d.Care,
		IsRecommended: d.IsRecommended,
	}
	return p.Clone()
}

// Draft drops the id, e.g. to validate an update with the same rules as a create.
func (p Product) Draft() ProductDraft {
	c := p.Clone()
	return ProductDraft{
		Name:          c.Name,
		Category:      c.Category,
		Subcategory:   c.Subcategory,
		Event:         c.Event,
		Price:         c.Price,
		ImageURL:      c.ImageURL,
		Images:        c.Images,
		Colors:        c.Colors,
		Sizes:         c.Sizes,
		Description:   c.Description,
		Material:      c.Material,
		Care:          c.Care,
		IsRecommended: c.IsRecommended,
	}
}

// Clone returns a deep copy; slices are never shared with the receiver.
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string{}, p.Images...)
	c.Colors = append([]Color{}, p.Colors...)
	c.Sizes = append([]string{}, p.Sizes...)
	return c
}

// CloneProducts deep-copies a product sequence. The result is never nil.
func CloneProducts(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Clone())
	}
	return out
}

// ValidateProduct checks a draft against the closed taxonomy so that every
// stored product is reachable from at least its department and subcategory keys.
func ValidateProduct(d ProductDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProduct)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	if _, ok := DepartmentKey(d.Category); !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, d.Category)
	}
	if _, ok := SubcategoryKey(d.Subcategory); !ok {
		return fmt.Errorf("%w: unknown subcategory %q", ErrInvalidProduct, d.Subcategory)
	}
	if !DepartmentOffers(d.Category, d.Subcategory) {
		return fmt.Errorf("%w: category %q has no subcategory %q", ErrInvalidProduct, d.Category, d.Subcategory)
	}
	if !d.Event.Valid() {
		return fmt.Errorf("%w: unknown event %q", ErrInvalidProduct, d.Event)
	}
	for i, c := range d.Colors {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: color %d has no name", ErrInvalidProduct, i)
		}
		if err := validate.Var(c.Hex, "required,hexcolor"); err != nil {
			return fmt.Errorf("%w: color %q has invalid hex %q", ErrInvalidProduct, c.Name, c.Hex)
		}
	}
	return nil
}
