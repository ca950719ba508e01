package models

import "github.com/google/uuid"

// TagItem links a tag to an (item id, kind) pair. The row has no
// identity of its own; the full triple is the primary key.
type TagItem struct {
	TagID    uuid.UUID `gorm:"type:uuid;primarykey" json:"tag_id"`
	ItemID   uuid.UUID `gorm:"type:uuid;primarykey" json:"item_id"`
	ItemType ItemKind  `gorm:"primarykey" json:"item_type"`
}
