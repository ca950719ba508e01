package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// Create creates a new tag
func (r *GormTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// ListByOwner lists all tags owned by a user
func (r *GormTagRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ListItems lists the association rows of a tag
func (r *GormTagRepository) ListItems(ctx context.Context, tagID uuid.UUID) ([]models.TagItem, error) {
	var associations []models.TagItem
	err := r.db.WithContext(ctx).
		Where("tag_id = ?", tagID).
		Find(&associations).Error
	if err != nil {
		return nil, err
	}
	return associations, nil
}

// HasOwner reports whether a tag exists and belongs to the owner
func (r *GormTagRepository) HasOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) bool {
	var count int64
	r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Count(&count)
	return count > 0
}

// Update applies a partial update to an owner's tag and returns the
// updated row
func (r *GormTagRepository) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, updates map[string]any) (*models.Tag, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.Tag{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	var tag models.Tag
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes an owner's tag together with its association rows
func (r *GormTagRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(&models.Tag{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("tag_id = ?", id).Delete(&models.TagItem{}).Error
	})
}

// AddItems inserts association rows, ignoring ones already present
func (r *GormTagRepository) AddItems(ctx context.Context, associations []models.TagItem) error {
	if len(associations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&associations).Error
}

// RemoveItems deletes the matching association rows of a tag
func (r *GormTagRepository) RemoveItems(ctx context.Context, tagID uuid.UUID, refs []models.ItemRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range refs {
			err := tx.Where("tag_id = ? AND item_id = ? AND item_type = ?", tagID, ref.ID, ref.ItemType).
				Delete(&models.TagItem{}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
