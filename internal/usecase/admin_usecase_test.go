package usecase

import (
	"context"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T) (AdminUseCase, *ProductStore) {
	t.Helper()
	store := NewProductStore(context.Background(), repository.NewMemorySlot(), twoProductSeed(), testKey, quietLogger())
	return NewAdminUseCase(store, quietLogger()), store
}

func TestAdminUseCase_Create(t *testing.T) {
	uc, store := newAdmin(t)

	created, err := uc.Create(context.Background(), draft("Accessories", "Gloves"))

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, []int{1, 2, 3}, ids(store.Products()))
	assert.Equal(t, store.Products(), uc.List())
}

func TestAdminUseCase_CreateRejectsInvalidDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.ProductDraft
	}{
		{"unknown category", draft("Kids", "Sweaters")},
		{"subcategory outside department", draft("Men", "Dresses")},
		{"unknown subcategory", draft("Women", "Swimwear")},
		{"blank name", func() domain.ProductDraft { d := draft("Men", "Coats"); d.Name = "  "; return d }()},
		{"negative price", func() domain.ProductDraft { d := draft("Men", "Coats"); d.Price = -1; return d }()},
		{"bad color", func() domain.ProductDraft {
			d := draft("Men", "Coats")
			d.Colors = []domain.Color{{Name: "Red", Hex: "red"}}
			return d
		}()},
		{"unknown event", func() domain.ProductDraft { d := draft("Men", "Coats"); d.Event = "birthday"; return d }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store := newAdmin(t)

			_, err := uc.Create(context.Background(), tt.draft)

			assert.ErrorIs(t, err, domain.ErrInvalidProduct)
			assert.Equal(t, []int{1, 2}, ids(store.Products()))
		})
	}
}

func TestAdminUseCase_Update(t *testing.T) {
	uc, store := newAdmin(t)
	changed := draft("Women", "Coats").WithID(2)

	updated, err := uc.Update(context.Background(), changed)

	require.NoError(t, err)
	assert.Equal(t, changed, updated)
	p, ok := ByID(store.Products(), 2)
	require.True(t, ok)
	assert.Equal(t, "Coats", p.Subcategory)
}

func TestAdminUseCase_UpdateErrors(t *testing.T) {
	uc, store := newAdmin(t)
	ctx := context.Background()

	_, err := uc.Update(ctx, draft("Women", "Coats").WithID(77))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = uc.Update(ctx, draft("Women", "Coats").WithID(0))
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = uc.Update(ctx, draft("Men", "Dresses").WithID(1))
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)

	assert.Equal(t, twoProductSeed(), store.Products())
}

func TestAdminUseCase_Delete(t *testing.T) {
	uc, store := newAdmin(t)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, 1))
	assert.Equal(t, []int{2}, ids(store.Products()))

	assert.ErrorIs(t, uc.Delete(ctx, 1), domain.ErrProductNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, -3), domain.ErrInvalidID)
}
