// Package seed holds the bundled default catalog and the static lookbook
// collections, embedded at build time.
package seed

import (
	"embed"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/goccy/go-yaml"
)

//go:embed data/*.yaml
var files embed.FS

// Products parses the bundled seed catalog. Every call returns a fresh slice.
func Products() ([]domain.Product, error) {
	var products []domain.Product
	if err := decode("data/catalog.yaml", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Collections parses the bundled lookbook, most recent collection first.
func Collections() ([]domain.Collection, error) {
	var collections []domain.Collection
	if err := decode("data/lookbook.yaml", &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// MustProducts is Products for process start-up, where a broken embedded
// file is a build defect.
func MustProducts() []domain.Product {
	products, err := Products()
	if err != nil {
		panic(err)
	}
	return products
}

// MustCollections is Collections for process start-up.
func MustCollections() []domain.Collection {
	collections, err := Collections()
	if err != nil {
		panic(err)
	}
	return collections
}

func decode(name string, out interface{}) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("could not read embedded %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not parse embedded %s: %w", name, err)
	}
	return nil
}
