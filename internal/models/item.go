package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemKind discriminates which child table an item row belongs to.
// The values are part of the wire and storage contract and must never
// be renumbered.
type ItemKind int16

const (
	KindPage      ItemKind = 100
	KindTodo      ItemKind = 200
	KindTodoItem  ItemKind = 210
	KindTextField ItemKind = 300
)

// Item is the index row unifying id, kind, parent and owner for every
// content object. Each concrete child row shares its id with exactly
// one Item row of the matching kind; the composite primary key lets
// the storage layer validate an id against its recorded kind.
type Item struct {
	ID         uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	ItemType   ItemKind   `gorm:"primarykey" json:"item_type"`
	ParentID   *uuid.UUID `gorm:"type:uuid;index" json:"parent_id"`
	ParentType *ItemKind  `json:"parent_type"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ChildRecord is implemented by every concrete item type.
type ChildRecord interface {
	Kind() ItemKind
}

// ItemRef identifies an item by id and kind, as carried in tag
// association requests and responses.
type ItemRef struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	ItemType ItemKind  `json:"item_type" binding:"required"`
}

// ResolvedChild pairs an index row with its concrete child record,
// as produced when listing the children of a parent.
type ResolvedChild struct {
	Item   Item
	Record ChildRecord
}
