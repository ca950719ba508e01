package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrParentNotFound is returned when a create payload references a
	// parent item that does not exist for the owner.
	ErrParentNotFound = errors.New("child store: parent item not found")
	// ErrCreateItem is returned when writing the item index row fails
	// inside the create transaction.
	ErrCreateItem = errors.New("child store: create item row failed")
	// ErrCreateChild is returned when writing the child row fails
	// inside the create transaction.
	ErrCreateChild = errors.New("child store: create child row failed")
)

// ChildSpec describes how one concrete kind maps onto the item index:
// its discriminator, how a create payload becomes a child row, which
// fields an update payload touches, and where its parent reference
// lives. The four specs in child_specs.go are the entire per-kind
// surface; everything else is shared.
type ChildSpec[R models.ChildRecord, C any, U any] struct {
	Kind        models.ItemKind
	FromPayload func(item *models.Item, payload C) R
	Patch       func(payload U) map[string]any
	ParentRef   func(payload C) (uuid.UUID, models.ItemKind, bool)
}

// GormChildStore is a GORM implementation of ChildStore, shared by all
// kinds and parameterized by a ChildSpec.
type GormChildStore[R models.ChildRecord, C any, U any] struct {
	db   *gorm.DB
	spec ChildSpec[R, C, U]
}

// NewChildStore creates a ChildStore for one kind
func NewChildStore[R models.ChildRecord, C any, U any](db *gorm.DB, spec ChildSpec[R, C, U]) *GormChildStore[R, C, U] {
	return &GormChildStore[R, C, U]{db: db, spec: spec}
}

// Kind returns the store's kind discriminator
func (s *GormChildStore[R, C, U]) Kind() models.ItemKind {
	return s.spec.Kind
}

// ParentRef extracts the parent reference from a create payload
func (s *GormChildStore[R, C, U]) ParentRef(payload C) (uuid.UUID, models.ItemKind, bool) {
	return s.spec.ParentRef(payload)
}

// Create writes the item index row and the child row in a single
// transaction; a failure of either write leaves neither visible.
func (s *GormChildStore[R, C, U]) Create(ctx context.Context, item *models.Item, payload C) (*R, error) {
	var record R

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.ParentID != nil {
			var count int64
			if err := tx.Model(&models.Item{}).
				Where("id = ? AND item_type = ? AND owner_id = ?", *item.ParentID, *item.ParentType, item.OwnerID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check parent: %w", err)
			}
			if count == 0 {
				return ErrParentNotFound
			}
		}

		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateItem, err)
		}

		record = s.spec.FromPayload(item, payload)
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateChild, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Find loads the child row filtered by id and the store's kind, so a
// matching id of another kind can never be returned.
func (s *GormChildStore[R, C, U]) Find(ctx context.Context, id uuid.UUID) (*R, error) {
	var record R
	err := s.db.WithContext(ctx).
		Where("id = ? AND item_type = ?", id, s.spec.Kind).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update modifies only the fields present in the payload, filtered by
// id and kind, and returns the updated row.
func (s *GormChildStore[R, C, U]) Update(ctx context.Context, id uuid.UUID, payload U) (*R, error) {
	updates := s.spec.Patch(payload)
	if len(updates) > 0 {
		var record R
		result := s.db.WithContext(ctx).
			Model(&record).
			Where("id = ? AND item_type = ?", id, s.spec.Kind).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return s.Find(ctx, id)
}

// Delete removes the child row and its item index row in a single
// transaction. The item delete filters by kind as well as id so it can
// never remove another kind's row.
func (s *GormChildStore[R, C, U]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record R
		if err := tx.Where("id = ? AND item_type = ?", id, s.spec.Kind).
			Delete(&record).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND item_type = ?", id, s.spec.Kind).
			Delete(&models.Item{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
