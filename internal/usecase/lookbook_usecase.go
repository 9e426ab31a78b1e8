package usecase

import (
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// LookbookUseCase browses the static editorial collections.
type LookbookUseCase interface {
	Collections() []domain.Collection
	Collection(id string) (domain.Collection, bool)
	Look(collectionID string, lookID int) (domain.Look, error)
	Next(collectionID string, lookID int) (domain.Look, error)
	Prev(collectionID string, lookID int) (domain.Look, error)
}

type lookbookUseCase struct {
	collections []domain.Collection
	log         *logrus.Logger
}

// NewLookbookUseCase expects collections ordered most recent first.
func NewLookbookUseCase(collections []domain.Collection, logger *logrus.Logger) LookbookUseCase {
	return &lookbookUseCase{collections: collections, log: logger}
}

func (uc *lookbookUseCase) Collections() []domain.Collection {
	out := make([]domain.Collection, len(uc.collections))
	copy(out, uc.collections)
	return out
}

// Collection returns the collection with the given id, or the most recent one
// when id is unknown. ok is false only when there are no collections at all.
func (uc *lookbookUseCase) Collection(id string) (domain.Collection, bool) {
	for _, c := range uc.collections {
		if c.ID == id {
			return c, true
		}
	}
	if len(uc.collections) == 0 {
		return domain.Collection{}, false
	}
	if id != "" {
		uc.log.Warnf("Use Case: Unknown lookbook collection %q, showing %q", id, uc.collections[0].ID)
	}
	return uc.collections[0], true
}

func (uc *lookbookUseCase) Look(collectionID string, lookID int) (domain.Look, error) {
	c, _ := uc.Collection(collectionID)
	if i := lookIndex(c.Looks, lookID); i >= 0 {
		return c.Looks[i], nil
	}
	return domain.Look{}, fmt.Errorf("look %d in collection %q: %w", lookID, c.ID, domain.ErrLookNotFound)
}

func (uc *lookbookUseCase) Next(collectionID string, lookID int) (domain.Look, error) {
	return uc.step(collectionID, lookID, Forward)
}

func (uc *lookbookUseCase) Prev(collectionID string, lookID int) (domain.Look, error) {
	return uc.step(collectionID, lookID, Backward)
}

// step moves from lookID; an unknown lookID counts as index -1.
func (uc *lookbookUseCase) step(collectionID string, lookID int, dir Direction) (domain.Look, error) {
	c, _ := uc.Collection(collectionID)
	if len(c.Looks) == 0 {
		return domain.Look{}, fmt.Errorf("collection %q has no looks: %w", c.ID, domain.ErrLookNotFound)
	}
	return c.Looks[CycleIndex(c.Looks, lookIndex(c.Looks, lookID), dir)], nil
}

func lookIndex(looks []domain.Look, id int) int {
	for i, l := range looks {
		if l.ID == id {
			return i
		}
	}
	return -1
}
