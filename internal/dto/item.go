package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
)

// ResolvedItemDTO is the tagged union returned when listing the
// children of a parent: the index row's fields plus exactly one
// concrete record, selected by the kind discriminator.
type ResolvedItemDTO struct {
	ID         uuid.UUID        `json:"id"`
	ItemType   models.ItemKind  `json:"item_type"`
	ParentID   *uuid.UUID       `json:"parent_id"`
	ParentType *models.ItemKind `json:"parent_type"`
	OwnerID    uuid.UUID        `json:"owner_id"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	Page      *models.Page      `json:"page,omitempty"`
	Todo      *models.Todo      `json:"todo,omitempty"`
	TodoItem  *models.TodoItem  `json:"todo_item,omitempty"`
	TextField *models.TextField `json:"text_field,omitempty"`
}

// ToResolvedItemDTO converts a resolved child to its response shape
func ToResolvedItemDTO(child models.ResolvedChild) ResolvedItemDTO {
	out := ResolvedItemDTO{
		ID:         child.Item.ID,
		ItemType:   child.Item.ItemType,
		ParentID:   child.Item.ParentID,
		ParentType: child.Item.ParentType,
		OwnerID:    child.Item.OwnerID,
		CreatedAt:  child.Item.CreatedAt,
		UpdatedAt:  child.Item.UpdatedAt,
	}

	switch record := child.Record.(type) {
	case models.Page:
		out.Page = &record
	case models.Todo:
		out.Todo = &record
	case models.TodoItem:
		out.TodoItem = &record
	case models.TextField:
		out.TextField = &record
	}

	return out
}

// ToResolvedItemDTOs converts a slice of resolved children
func ToResolvedItemDTOs(children []models.ResolvedChild) []ResolvedItemDTO {
	items := make([]ResolvedItemDTO, len(children))
	for i, child := range children {
		items[i] = ToResolvedItemDTO(child)
	}
	return items
}
