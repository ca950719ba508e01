package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
	"github.com/journali/journal-api/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrItemNotFound covers both an absent item and an item owned by
	// another user. The two cases are reported identically so callers
	// cannot probe for the existence of other users' items.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidParent is returned when a payload references a parent
	// item that does not exist for the caller.
	ErrInvalidParent = errors.New("parent item not found")
)

// CrudService is the generic create/find/update/delete dispatcher
// shared by every item kind. It owns the two concerns that are
// identical across kinds: minting the item index row on create, and
// gating every other operation on ownership before touching the typed
// store.
type CrudService[R models.ChildRecord, C any, U any] struct {
	items repository.ItemRepository
	store repository.ChildStore[R, C, U]
}

// NewCrudService creates the dispatcher for one kind
func NewCrudService[R models.ChildRecord, C any, U any](items repository.ItemRepository, store repository.ChildStore[R, C, U]) *CrudService[R, C, U] {
	return &CrudService[R, C, U]{
		items: items,
		store: store,
	}
}

// Kind returns the kind discriminator this dispatcher serves
func (s *CrudService[R, C, U]) Kind() models.ItemKind {
	return s.store.Kind()
}

// Create mints a fresh id, builds the item index row owned by the
// caller, and writes it together with the child row atomically.
func (s *CrudService[R, C, U]) Create(ctx context.Context, payload C, callerID uuid.UUID) (*R, error) {
	item := &models.Item{
		ID:       uuid.New(),
		ItemType: s.store.Kind(),
		OwnerID:  callerID,
	}
	if parentID, parentKind, ok := s.store.ParentRef(payload); ok {
		item.ParentID = &parentID
		item.ParentType = &parentKind
	}

	record, err := s.store.Create(ctx, item, payload)
	if err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			return nil, ErrInvalidParent
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return record, nil
}

// Find returns the caller's item or ErrItemNotFound.
func (s *CrudService[R, C, U]) Find(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*R, error) {
	if !s.items.HasOwner(ctx, id, s.store.Kind(), callerID) {
		return nil, ErrItemNotFound
	}

	record, err := s.store.Find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return record, nil
}

// Update applies a partial update to the caller's item.
func (s *CrudService[R, C, U]) Update(ctx context.Context, id uuid.UUID, payload U, callerID uuid.UUID) (*R, error) {
	if !s.items.HasOwner(ctx, id, s.store.Kind(), callerID) {
		return nil, ErrItemNotFound
	}

	record, err := s.store.Update(ctx, id, payload)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return record, nil
}

// Delete removes the caller's item together with its index row.
func (s *CrudService[R, C, U]) Delete(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error {
	if !s.items.HasOwner(ctx, id, s.store.Kind(), callerID) {
		return ErrItemNotFound
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// resolve loads the concrete record behind an index row, without an
// ownership gate; callers list only rows already scoped to the owner.
func (s *CrudService[R, C, U]) resolve(ctx context.Context, id uuid.UUID) (models.ChildRecord, error) {
	record, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return *record, nil
}

// RegisterKind wires a dispatcher into the item service's kind
// registry, so heterogeneous child listings can resolve rows of this
// kind into their concrete records.
func RegisterKind[R models.ChildRecord, C any, U any](items *ItemService, svc *CrudService[R, C, U]) {
	items.resolvers[svc.Kind()] = svc.resolve
}
