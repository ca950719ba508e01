package models

import "github.com/google/uuid"

// Tag is a user-owned label that can be attached to any item.
// Tags are not items themselves and never appear in the item index.
type Tag struct {
	ID      uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Color   string    `gorm:"type:varchar(50);not null" json:"color"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
}

// NewTag is the payload for creating a tag.
type NewTag struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

// UpdateTag is the payload for partially updating a tag.
type UpdateTag struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
