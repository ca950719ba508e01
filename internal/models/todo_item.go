package models

import "github.com/google/uuid"

// TodoItem is a single checkable entry inside a todo list.
type TodoItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	ItemType  ItemKind  `gorm:"not null" json:"item_type"`
	TodoID    uuid.UUID `gorm:"type:uuid;not null" json:"todo_id"`
	Title     string    `gorm:"not null" json:"title"`
	IsChecked bool      `gorm:"not null;default:false" json:"is_checked"`
}

func (TodoItem) Kind() ItemKind { return KindTodoItem }

// NewTodoItem is the payload for creating a todo entry. New entries
// always start unchecked.
type NewTodoItem struct {
	Title  string    `json:"title" binding:"required"`
	TodoID uuid.UUID `json:"todo_id" binding:"required"`
}

// UpdateTodoItem is the payload for partially updating a todo entry.
type UpdateTodoItem struct {
	Title     *string `json:"title"`
	IsChecked *bool   `json:"is_checked"`
}
