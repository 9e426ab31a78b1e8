package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"catalog_service/internal/domain"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// LoadSource names where the store's collection came from at start-up.
type LoadSource string

const (
	SourcePersisted LoadSource = "persisted"
	SourceSeed      LoadSource = "seed"
)

// LoadReport records which source initialized the store and, when persisted
// state was rejected, why.
type LoadReport struct {
	Source     LoadSource `json:"source"`
	Diagnostic string     `json:"diagnostic,omitempty"`
}

var (
	errEmptyState    = errors.New("persisted catalog is empty")
	errNotArrayState = errors.New("persisted catalog is not a JSON array")
)

// ProductStore is the single ordered product collection of the storefront.
// Every mutation rewrites the whole collection into the slot before the
// write lock is released.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	report   LoadReport

	slot domain.Slot
	key  string
	seed []domain.Product
	log  *logrus.Logger
}

func NewProductStore(ctx context.Context, slot domain.Slot, seed []domain.Product, key string, logger *logrus.Logger) *ProductStore {
	s := &ProductStore{
		slot: slot,
		key:  key,
		seed: domain.CloneProducts(seed),
		log:  logger,
	}
	s.Load(ctx)
	return s
}

// Load replaces the in-memory collection with the persisted one, or with the
// seed catalog when nothing usable is persisted. NewProductStore calls it once.
func (s *ProductStore) Load(ctx context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.slot.Get(ctx, s.key)
	switch {
	case err != nil:
		s.useSeedLocked(fmt.Sprintf("could not read %q: %v", s.key, err))
	case !ok:
		s.useSeedLocked("")
	default:
		products, decodeErr := DecodeCatalog(raw)
		if decodeErr != nil {
			s.useSeedLocked(decodeErr.Error())
		} else {
			s.products = products
			s.report = LoadReport{Source: SourcePersisted}
			s.log.Infof("Use Case: Loaded %d products from persisted key %q", len(products), s.key)
		}
	}
	return domain.CloneProducts(s.products)
}

func (s *ProductStore) useSeedLocked(diagnostic string) {
	s.products = domain.CloneProducts(s.seed)
	s.report = LoadReport{Source: SourceSeed, Diagnostic: diagnostic}
	if diagnostic != "" {
		s.log.Warnf("Use Case: Discarding persisted catalog %q, using seed: %s", s.key, diagnostic)
		return
	}
	s.log.Infof("Use Case: No persisted catalog under %q, using %d seed products", s.key, len(s.products))
}

// Products returns a snapshot; callers may modify it freely.
func (s *ProductStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneProducts(s.products)
}

func (s *ProductStore) Report() LoadReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Add assigns the next id (one past the current maximum, 1 when empty),
// appends the product and persists.
func (s *ProductStore) Add(ctx context.Context, draft domain.ProductDraft) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product := draft.WithID(maxID + 1)
	s.products = append(s.products, product)
	s.log.Infof("Use Case: Added product '%s' with ID %d", product.Name, product.ID)
	s.persistLocked(ctx)
	return product.Clone()
}

// Update replaces the record with the same id, keeping its position. It
// reports whether a record was replaced; the collection is persisted either way.
func (s *ProductStore) Update(ctx context.Context, product domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product.Clone()
			replaced = true
			break
		}
	}
	if replaced {
		s.log.Infof("Use Case: Updated product ID %d", product.ID)
	} else {
		s.log.Warnf("Use Case: Update ignored, product ID %d not present", product.ID)
	}
	s.persistLocked(ctx)
	return replaced
}

// Remove drops the record with the given id and reports whether it existed.
func (s *ProductStore) Remove(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	if removed {
		s.log.Infof("Use Case: Removed product ID %d", id)
	} else {
		s.log.Warnf("Use Case: Remove ignored, product ID %d not present", id)
	}
	s.persistLocked(ctx)
	return removed
}

// Reset restores the seed catalog and persists it.
func (s *ProductStore) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = domain.CloneProducts(s.seed)
	s.log.Infof("Use Case: Catalog reset to %d seed products", len(s.products))
	s.persistLocked(ctx)
}

const persistTimeout = 5 * time.Second

// persistLocked must be called with mu held for writing. Failures are logged
// and the in-memory mutation stands. The write outlives cancellation of the
// caller's context so memory and slot never diverge.
func (s *ProductStore) persistLocked(ctx context.Context) {
	raw, err := EncodeCatalog(s.products)
	if err != nil {
		s.log.Errorf("Use Case: Failed to encode catalog: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := s.slot.Set(ctx, s.key, raw); err != nil {
		s.log.Errorf("Use Case: Failed to persist catalog under %q: %v", s.key, err)
	}
}

// EncodeCatalog serializes products into the persisted JSON array format.
// Nil slices are written as empty arrays, the form DecodeCatalog returns.
func EncodeCatalog(products []domain.Product) (string, error) {
	data, err := json.Marshal(domain.CloneProducts(products))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeCatalog parses persisted state. Anything other than a JSON array of
// products with positive, unique ids is rejected.
func DecodeCatalog(raw string) ([]domain.Product, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errEmptyState
	}
	if !strings.HasPrefix(trimmed, "[") {
		return nil, errNotArrayState
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(trimmed), &products); err != nil {
		return nil, fmt.Errorf("persisted catalog is corrupt: %w", err)
	}
	seen := make(map[int]struct{}, len(products))
	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("persisted product at index %d has non-positive id %d", i, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("persisted catalog has duplicate id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return domain.CloneProducts(products), nil
}
