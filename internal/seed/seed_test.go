package seed

import (
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := map[int]bool{}
	for _, p := range products {
		assert.Positive(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NoError(t, domain.ValidateProduct(p.Draft()), p.Name)
	}
}

func TestProducts_EveryProductRoutes(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)

	for _, p := range products {
		deptKey, ok := domain.DepartmentKey(p.Category)
		require.True(t, ok)
		subKey, ok := domain.SubcategoryKey(p.Subcategory)
		require.True(t, ok)

		found := false
		for _, match := range taxonomy.ResolveFilter(deptKey+":"+subKey, products) {
			if match.ID == p.ID {
				found = true
			}
		}
		assert.True(t, found, "%s is not reachable via %s:%s", p.Name, deptKey, subKey)
	}
}

func TestProducts_FreshSlices(t *testing.T) {
	a, err := Products()
	require.NoError(t, err)
	a[0].Name = "changed"

	b, err := Products()
	require.NoError(t, err)
	assert.NotEqual(t, "changed", b[0].Name)
}

func TestCollections(t *testing.T) {
	collections, err := Collections()
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, "2024_SS", collections[0].ID)
	assert.Len(t, collections[0].Looks, 5)
	assert.Equal(t, "PROD_123", collections[0].Looks[0].RelatedProducts[0].ProductID)
	assert.Equal(t, 101, collections[1].Looks[0].ID)
}
