package usecase

import (
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestByID(t *testing.T) {
	products := twoProductSeed()

	p, ok := ByID(products, 2)
	assert.True(t, ok)
	assert.Equal(t, "Women Dresses", p.Name)

	_, ok = ByID(products, 42)
	assert.False(t, ok)

	_, ok = ByID(nil, 1)
	assert.False(t, ok)
}

func TestRelated(t *testing.T) {
	products := []domain.Product{
		draft("Men", "Sweaters").WithID(1),
		draft("Women", "Dresses").WithID(2),
		draft("Men", "Coats").WithID(3),
		draft("Men", "Vests").WithID(4),
		draft("Men", "Bottoms").WithID(5),
		draft("Men", "Cardigans").WithID(6),
		draft("Men", "Sweaters").WithID(7),
	}

	t.Run("same category in order, self excluded, default limit", func(t *testing.T) {
		assert.Equal(t, []int{3, 4, 5, 6}, ids(Related(products, products[0], 0)))
	})
	t.Run("explicit limit", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, ids(Related(products, products[3], 2)))
	})
	t.Run("no peers", func(t *testing.T) {
		related := Related(products, products[1], DefaultRelatedLimit)
		assert.NotNil(t, related)
		assert.Empty(t, related)
	})
	t.Run("product not in collection", func(t *testing.T) {
		outsider := draft("Women", "Coats").WithID(99)
		assert.Equal(t, []int{2}, ids(Related(products, outsider, 4)))
	})
}

func TestRecommended(t *testing.T) {
	products := twoProductSeed()
	products[1].IsRecommended = true

	assert.Equal(t, []int{2}, ids(Recommended(products)))
	assert.NotNil(t, Recommended(nil))
}

func TestCycle(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		current int
		dir     Direction
		want    int
	}{
		{"forward", 5, 1, Forward, 2},
		{"forward wraps", 5, 4, Forward, 0},
		{"backward", 5, 3, Backward, 2},
		{"backward wraps", 5, 0, Backward, 4},
		{"no selection forward", 5, -1, Forward, 0},
		{"no selection backward", 5, -1, Backward, 3},
		{"out of range current", 5, 12, Forward, 3},
		{"single element", 1, 0, Forward, 0},
		{"empty", 0, 3, Forward, 0},
		{"negative length", -2, 0, Backward, 0},
		{"zero direction stays", 4, 2, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cycle(tt.length, tt.current, tt.dir))
		})
	}
}

func TestCycle_RoundTrip(t *testing.T) {
	for length := 1; length <= 6; length++ {
		for i := 0; i < length; i++ {
			assert.Equal(t, i, Cycle(length, Cycle(length, i, Forward), Backward))
			assert.Equal(t, i, Cycle(length, Cycle(length, i, Backward), Forward))
		}
	}
}

func TestCycleIndex(t *testing.T) {
	looks := []string{"a", "b", "c"}
	assert.Equal(t, 0, CycleIndex(looks, 2, Forward))
	assert.Equal(t, 2, CycleIndex(looks, 0, Backward))
	assert.Equal(t, 0, CycleIndex([]string(nil), 0, Forward))
}
