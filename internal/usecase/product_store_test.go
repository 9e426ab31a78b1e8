package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/seed"
	"catalog_service/internal/taxonomy"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "goyol_products"

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func draft(category, subcategory string) domain.ProductDraft {
	return domain.ProductDraft{
		Name:        category + " " + subcategory,
		Category:    category,
		Subcategory: subcategory,
		Price:       100,
		Colors:      []domain.Color{{Name: "Ivory", Hex: "#FFFFF0"}},
		Sizes:       []string{"S", "M"},
	}
}

func twoProductSeed() []domain.Product {
	return []domain.Product{
		draft("Men", "Sweaters").WithID(1),
		draft("Women", "Dresses").WithID(2),
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// failingSlot reads as empty and rejects every write.
type failingSlot struct{}

func (failingSlot) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (failingSlot) Set(context.Context, string, string) error       { return errors.New("disk full") }
func (failingSlot) Delete(context.Context, string) error            { return errors.New("disk full") }

func TestProductStore_LoadsSeedWhenNothingPersisted(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(ctx, repository.NewMemorySlot(), twoProductSeed(), testKey, quietLogger())

	assert.Equal(t, []int{1, 2}, ids(store.Products()))
	assert.Equal(t, LoadReport{Source: SourceSeed}, store.Report())
}

func TestProductStore_LoadsPersistedState(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlot()
	raw, err := EncodeCatalog([]domain.Product{draft("Accessories", "Hats").WithID(7)})
	require.NoError(t, err)
	require.NoError(t, slot.Set(ctx, testKey, raw))

	store := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())

	assert.Equal(t, []int{7}, ids(store.Products()))
	assert.Equal(t, SourcePersisted, store.Report().Source)
	assert.Empty(t, store.Report().Diagnostic)
}

func TestProductStore_EmptyArrayIsValidState(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlot()
	require.NoError(t, slot.Set(ctx, testKey, "[]"))

	store := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())

	assert.Empty(t, store.Products())
	assert.NotNil(t, store.Products())
	assert.Equal(t, SourcePersisted, store.Report().Source)

	added := store.Add(ctx, draft("Women", "Coats"))
	assert.Equal(t, 1, added.ID)
}

func TestProductStore_CorruptStateFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"blank", "   "},
		{"null", "null"},
		{"object", `{"id":1}`},
		{"syntax error", `[{"id":1,`},
		{"not json", "hello"},
		{"duplicate ids", `[{"id":3,"name":"a"},{"id":3,"name":"b"}]`},
		{"zero id", `[{"id":0,"name":"a"}]`},
		{"negative id", `[{"id":-4,"name":"a"}]`},
		{"wrong field type", `[{"id":"one"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			slot := repository.NewMemorySlot()
			require.NoError(t, slot.Set(ctx, testKey, tt.raw))

			store := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())

			assert.Equal(t, []int{1, 2}, ids(store.Products()))
			report := store.Report()
			assert.Equal(t, SourceSeed, report.Source)
			assert.NotEmpty(t, report.Diagnostic)
		})
	}
}

func TestProductStore_AddAssignsNextID(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(ctx, repository.NewMemorySlot(), twoProductSeed(), testKey, quietLogger())

	first := store.Add(ctx, draft("Accessories", "Scarves"))
	second := store.Add(ctx, draft("Accessories", "Gloves"))

	assert.Equal(t, 3, first.ID)
	assert.Equal(t, 4, second.ID)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(store.Products()))
}

func TestProductStore_AddUsesMaxNotLength(t *testing.T) {
	ctx := context.Background()
	seedProducts := []domain.Product{draft("Men", "Coats").WithID(10), draft("Men", "Vests").WithID(4)}
	store := NewProductStore(ctx, repository.NewMemorySlot(), seedProducts, testKey, quietLogger())

	assert.Equal(t, 11, store.Add(ctx, draft("Men", "Bottoms")).ID)
}

func TestProductStore_AddOnEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(ctx, repository.NewMemorySlot(), nil, testKey, quietLogger())

	assert.Equal(t, 1, store.Add(ctx, draft("Men", "Coats")).ID)
}

func TestProductStore_EveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlot()
	store := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())

	persisted := func() []domain.Product {
		raw, ok, err := slot.Get(ctx, testKey)
		require.NoError(t, err)
		require.True(t, ok)
		products, err := DecodeCatalog(raw)
		require.NoError(t, err)
		return products
	}

	added := store.Add(ctx, draft("Women", "Vests"))
	assert.Equal(t, store.Products(), persisted())

	added.Price = 555
	assert.True(t, store.Update(ctx, added))
	assert.Equal(t, store.Products(), persisted())

	assert.True(t, store.Remove(ctx, 1))
	assert.Equal(t, store.Products(), persisted())
	assert.Equal(t, []int{2, 3}, ids(persisted()))
}

func TestProductStore_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(ctx, repository.NewMemorySlot(), twoProductSeed(), testKey, quietLogger())

	changed := draft("Men", "Cardigans").WithID(1)
	changed.Name = "Renamed"
	require.True(t, store.Update(ctx, changed))

	products := store.Products()
	assert.Equal(t, []int{1, 2}, ids(products))
	assert.Equal(t, "Renamed", products[0].Name)
	assert.Equal(t, "Cardigans", products[0].Subcategory)
}

func TestProductStore_UnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlot()
	store := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())
	before := store.Products()

	assert.False(t, store.Update(ctx, draft("Men", "Coats").WithID(99)))
	assert.False(t, store.Remove(ctx, 99))
	assert.Equal(t, before, store.Products())

	// the collection is still written out
	_, ok, err := slot.Get(ctx, testKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProductStore_PersistFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(ctx, failingSlot{}, twoProductSeed(), testKey, quietLogger())

	added := store.Add(ctx, draft("Accessories", "Socks"))

	assert.Equal(t, 3, added.ID)
	assert.Equal(t, []int{1, 2, 3}, ids(store.Products()))
}

func TestProductStore_CancelledContextStillPersists(t *testing.T) {
	slot := repository.NewMemorySlot()
	store := NewProductStore(context.Background(), slot, twoProductSeed(), testKey, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	added := store.Add(ctx, draft("Accessories", "Hats"))
	assert.Equal(t, 3, added.ID)
	assert.True(t, store.Remove(ctx, 1))

	restarted := NewProductStore(context.Background(), slot, twoProductSeed(), testKey, quietLogger())
	assert.Equal(t, SourcePersisted, restarted.Report().Source)
	assert.Equal(t, []int{2, 3}, ids(restarted.Products()))
}

func TestProductStore_SnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(ctx, repository.NewMemorySlot(), twoProductSeed(), testKey, quietLogger())

	snapshot := store.Products()
	snapshot[0].Name = "mutated"
	snapshot[0].Sizes[0] = "XXL"

	fresh := store.Products()
	assert.Equal(t, "Men Sweaters", fresh[0].Name)
	assert.Equal(t, "S", fresh[0].Sizes[0])
}

func TestProductStore_Reset(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlot()
	store := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())
	store.Remove(ctx, 1)
	store.Remove(ctx, 2)
	require.Empty(t, store.Products())

	store.Reset(ctx)

	assert.Equal(t, []int{1, 2}, ids(store.Products()))
	reloaded := NewProductStore(ctx, slot, nil, testKey, quietLogger())
	assert.Equal(t, []int{1, 2}, ids(reloaded.Products()))
}

func TestProductStore_ConcurrentAddsGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(ctx, repository.NewMemorySlot(), twoProductSeed(), testKey, quietLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := draft("Women", "Sweaters")
			d.Name = fmt.Sprintf("knit %d", i)
			store.Add(ctx, d)
		}(i)
	}
	wg.Wait()

	seen := map[int]bool{}
	for _, p := range store.Products() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 22)
}

func TestCatalogCodec_RoundTrip(t *testing.T) {
	products := domain.CloneProducts(seed.MustProducts())

	raw, err := EncodeCatalog(products)
	require.NoError(t, err)
	decoded, err := DecodeCatalog(raw)
	require.NoError(t, err)

	assert.Equal(t, products, decoded)
}

func TestCatalogCodec_NilSlicesRoundTrip(t *testing.T) {
	bare := []domain.Product{{ID: 1, Name: "Plain Beanie", Category: "Accessories", Subcategory: "Hats"}}

	raw, err := EncodeCatalog(bare)
	require.NoError(t, err)
	assert.NotContains(t, raw, "null")

	decoded, err := DecodeCatalog(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.CloneProducts(bare), decoded)

	again, err := EncodeCatalog(decoded)
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestCatalogCodec_EncodesNilAsEmptyArray(t *testing.T) {
	raw, err := EncodeCatalog(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestStorefrontScenario(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlot()
	store := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())

	assert.Equal(t, []int{1}, ids(taxonomy.ResolveFilter("men", store.Products())))
	assert.Equal(t, []int{1}, ids(taxonomy.ResolveFilter("men:sweaters", store.Products())))
	assert.Empty(t, taxonomy.ResolveFilter("women:sweaters", store.Products()))

	store.Remove(ctx, 1)
	hat := store.Add(ctx, draft("Accessories", "Hats"))
	require.Equal(t, 3, hat.ID)

	assert.Empty(t, taxonomy.ResolveFilter("men", store.Products()))
	assert.Equal(t, []int{3}, ids(taxonomy.ResolveFilter("accessories:hats", store.Products())))
	assert.Equal(t, []int{3}, ids(taxonomy.ResolveFilter("hats", store.Products())))

	reloaded := NewProductStore(ctx, slot, twoProductSeed(), testKey, quietLogger())
	assert.Equal(t, SourcePersisted, reloaded.Report().Source)
	assert.Equal(t, []int{2, 3}, ids(reloaded.Products()))
	assert.Equal(t, store.Products(), reloaded.Products())
}
