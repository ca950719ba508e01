package models

import "github.com/google/uuid"

// Page is a root-level document. Pages have no parent item.
type Page struct {
	ID       uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	ItemType ItemKind  `gorm:"not null" json:"item_type"`
	Title    string    `gorm:"not null" json:"title"`
}

func (Page) Kind() ItemKind { return KindPage }

// NewPage is the payload for creating a page.
type NewPage struct {
	Title string `json:"title" binding:"required"`
}

// UpdatePage is the payload for partially updating a page.
type UpdatePage struct {
	Title *string `json:"title"`
}
