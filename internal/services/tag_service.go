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
	// ErrTagNotFound covers both an absent tag and a tag owned by
	// another user, mirroring the item dispatcher's policy.
	ErrTagNotFound = errors.New("tag not found")

	ErrNoItemRefs = errors.New("at least one item reference is required")
)

// TagWithItems pairs a tag with the item references attached to it.
type TagWithItems struct {
	Tag   models.Tag
	Items []models.ItemRef
}

// TagService handles tag CRUD and tag-to-item associations. Tags are
// owner-scoped like items but live outside the item index.
type TagService struct {
	tagRepo  repository.TagRepository
	itemRepo repository.ItemRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repository.TagRepository, itemRepo repository.ItemRepository) *TagService {
	return &TagService{
		tagRepo:  tagRepo,
		itemRepo: itemRepo,
	}
}

// ListForOwner returns all of a user's tags, each with its attached
// item references.
func (s *TagService) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]TagWithItems, error) {
	tags, err := s.tagRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	result := make([]TagWithItems, 0, len(tags))
	for _, tag := range tags {
		associations, err := s.tagRepo.ListItems(ctx, tag.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tag items: %w", err)
		}

		refs := make([]models.ItemRef, 0, len(associations))
		for _, assoc := range associations {
			refs = append(refs, models.ItemRef{
				ID:       assoc.ItemID,
				ItemType: assoc.ItemType,
			})
		}

		result = append(result, TagWithItems{Tag: tag, Items: refs})
	}
	return result, nil
}

// Create creates a tag owned by the caller.
func (s *TagService) Create(ctx context.Context, payload models.NewTag, callerID uuid.UUID) (*models.Tag, error) {
	tag := &models.Tag{
		ID:      uuid.New(),
		Name:    payload.Name,
		Color:   payload.Color,
		OwnerID: callerID,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// Update applies a partial update to the caller's tag.
func (s *TagService) Update(ctx context.Context, id uuid.UUID, payload models.UpdateTag, callerID uuid.UUID) (*models.Tag, error) {
	updates := map[string]any{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Color != nil {
		updates["color"] = *payload.Color
	}

	tag, err := s.tagRepo.Update(ctx, id, callerID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return tag, nil
}

// Delete removes the caller's tag and its associations.
func (s *TagService) Delete(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error {
	if err := s.tagRepo.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// AddItems attaches items to the caller's tag. Both the tag and every
// referenced item must belong to the caller; a single foreign or
// unknown reference fails the whole call.
func (s *TagService) AddItems(ctx context.Context, tagID uuid.UUID, refs []models.ItemRef, callerID uuid.UUID) error {
	if len(refs) == 0 {
		return ErrNoItemRefs
	}
	if !s.tagRepo.HasOwner(ctx, tagID, callerID) {
		return ErrTagNotFound
	}

	associations := make([]models.TagItem, 0, len(refs))
	for _, ref := range refs {
		if !s.itemRepo.HasOwner(ctx, ref.ID, ref.ItemType, callerID) {
			return ErrItemNotFound
		}
		associations = append(associations, models.TagItem{
			TagID:    tagID,
			ItemID:   ref.ID,
			ItemType: ref.ItemType,
		})
	}

	if err := s.tagRepo.AddItems(ctx, associations); err != nil {
		return fmt.Errorf("failed to add tag items: %w", err)
	}
	return nil
}

// RemoveItems detaches items from the caller's tag. References that
// are not attached are ignored.
func (s *TagService) RemoveItems(ctx context.Context, tagID uuid.UUID, refs []models.ItemRef, callerID uuid.UUID) error {
	if len(refs) == 0 {
		return ErrNoItemRefs
	}
	if !s.tagRepo.HasOwner(ctx, tagID, callerID) {
		return ErrTagNotFound
	}

	if err := s.tagRepo.RemoveItems(ctx, tagID, refs); err != nil {
		return fmt.Errorf("failed to remove tag items: %w", err)
	}
	return nil
}
