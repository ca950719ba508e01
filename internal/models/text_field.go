package models

import "github.com/google/uuid"

// TextField is a free-floating block of text positioned on a page.
type TextField struct {
	ID       uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	ItemType ItemKind  `gorm:"not null" json:"item_type"`
	PageID   uuid.UUID `gorm:"type:uuid;not null" json:"page_id"`
	Text     string    `gorm:"not null" json:"text"`
	CoordX   int32     `gorm:"not null" json:"coord_x"`
	CoordY   int32     `gorm:"not null" json:"coord_y"`
}

func (TextField) Kind() ItemKind { return KindTextField }

// NewTextField is the payload for creating a text field.
type NewTextField struct {
	Text   string    `json:"text" binding:"required"`
	PageID uuid.UUID `json:"page_id" binding:"required"`
	CoordX int32     `json:"coord_x"`
	CoordY int32     `json:"coord_y"`
}

// UpdateTextField is the payload for partially updating a text field.
type UpdateTextField struct {
	Text   *string `json:"text"`
	CoordX *int32  `json:"coord_x"`
	CoordY *int32  `json:"coord_y"`
}
