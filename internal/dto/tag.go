package dto

import (
	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
	"github.com/journali/journal-api/internal/services"
)

// TagDTO represents a tag with its attached item references in API
// responses
type TagDTO struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Color   string           `json:"color"`
	OwnerID uuid.UUID        `json:"owner_id"`
	Items   []models.ItemRef `json:"items"`
}

// ToTagDTO converts a tag and its item references to TagDTO
func ToTagDTO(tag services.TagWithItems) TagDTO {
	items := tag.Items
	if items == nil {
		items = []models.ItemRef{}
	}
	return TagDTO{
		ID:      tag.Tag.ID,
		Name:    tag.Tag.Name,
		Color:   tag.Tag.Color,
		OwnerID: tag.Tag.OwnerID,
		Items:   items,
	}
}

// ToTagDTOs converts a slice of tags with items
func ToTagDTOs(tags []services.TagWithItems) []TagDTO {
	result := make([]TagDTO, len(tags))
	for i, tag := range tags {
		result[i] = ToTagDTO(tag)
	}
	return result
}
