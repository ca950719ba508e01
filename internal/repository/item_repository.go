package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
	"gorm.io/gorm"
)

// GormItemRepository is a GORM implementation of ItemRepository
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

// HasOwner reports whether an item row matching id, kind and owner
// exists. Absence and not-owned are indistinguishable on purpose so
// callers cannot leak which case occurred.
func (r *GormItemRepository) HasOwner(ctx context.Context, id uuid.UUID, kind models.ItemKind, ownerID uuid.UUID) bool {
	var count int64
	r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND item_type = ? AND owner_id = ?", id, kind, ownerID).
		Count(&count)
	return count > 0
}

// UpdateParent repoints an owner's item at a new parent and returns the
// updated row
func (r *GormItemRepository) UpdateParent(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, parentID uuid.UUID, parentKind models.ItemKind) (*models.Item, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]any{
			"parent_id":   parentID,
			"parent_type": parentKind,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var item models.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ParentExists reports whether an owner's item row with the given id
// and kind exists
func (r *GormItemRepository) ParentExists(ctx context.Context, id uuid.UUID, kind models.ItemKind, ownerID uuid.UUID) bool {
	return r.HasOwner(ctx, id, kind, ownerID)
}

// ListByParent lists an owner's item rows under a parent, most recently
// created first
func (r *GormItemRepository) ListByParent(ctx context.Context, parentID uuid.UUID, ownerID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND owner_id = ?", parentID, ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
