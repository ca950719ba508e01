package models

import "github.com/google/uuid"

// Todo is a to-do list living on a page.
type Todo struct {
	ID       uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	ItemType ItemKind  `gorm:"not null" json:"item_type"`
	PageID   uuid.UUID `gorm:"type:uuid;not null" json:"page_id"`
	Title    string    `gorm:"not null" json:"title"`
}

func (Todo) Kind() ItemKind { return KindTodo }

// NewTodo is the payload for creating a todo list.
type NewTodo struct {
	Title  string    `json:"title" binding:"required"`
	PageID uuid.UUID `json:"page_id" binding:"required"`
}

// UpdateTodo is the payload for partially updating a todo list.
type UpdateTodo struct {
	Title *string `json:"title"`
}
