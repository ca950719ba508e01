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

// ErrUnknownKind is returned when an index row carries a kind
// discriminator no registered store serves. It indicates a corrupt
// index, not caller error.
var ErrUnknownKind = errors.New("unknown item kind")

type childResolver func(ctx context.Context, id uuid.UUID) (models.ChildRecord, error)

// ItemService handles the operations that work on the item index
// across kinds: listing the resolved children of a parent and
// reparenting. Kind dispatch is table-driven; each CrudService
// registers its resolver under its discriminator.
type ItemService struct {
	items     repository.ItemRepository
	resolvers map[models.ItemKind]childResolver
}

// NewItemService creates a new ItemService with an empty kind registry
func NewItemService(items repository.ItemRepository) *ItemService {
	return &ItemService{
		items:     items,
		resolvers: make(map[models.ItemKind]childResolver),
	}
}

// FindByParent returns the caller's children of a parent, most
// recently created first, each resolved into its concrete record.
func (s *ItemService) FindByParent(ctx context.Context, parentID uuid.UUID, callerID uuid.UUID) ([]models.ResolvedChild, error) {
	rows, err := s.items.ListByParent(ctx, parentID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	children := make([]models.ResolvedChild, 0, len(rows))
	for _, row := range rows {
		resolve, ok := s.resolvers[row.ItemType]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, row.ItemType)
		}

		record, err := resolve(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve item %s: %w", row.ID, err)
		}

		children = append(children, models.ResolvedChild{
			Item:   row,
			Record: record,
		})
	}
	return children, nil
}

// UpdateParent repoints the caller's item at a new parent. The target
// must exist and belong to the caller.
func (s *ItemService) UpdateParent(ctx context.Context, id uuid.UUID, parentID uuid.UUID, parentKind models.ItemKind, callerID uuid.UUID) (*models.Item, error) {
	if !s.items.ParentExists(ctx, parentID, parentKind, callerID) {
		return nil, ErrInvalidParent
	}

	item, err := s.items.UpdateParent(ctx, id, callerID, parentID, parentKind)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update parent: %w", err)
	}
	return item, nil
}
