package repository

import (
	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
	"gorm.io/gorm"
)

// noParent is the ParentRef of root-level kinds.
func noParent[C any](C) (uuid.UUID, models.ItemKind, bool) {
	return uuid.Nil, 0, false
}

// NewPageStore creates the typed store for pages
func NewPageStore(db *gorm.DB) *GormChildStore[models.Page, models.NewPage, models.UpdatePage] {
	return NewChildStore(db, ChildSpec[models.Page, models.NewPage, models.UpdatePage]{
		Kind: models.KindPage,
		FromPayload: func(item *models.Item, payload models.NewPage) models.Page {
			return models.Page{
				ID:       item.ID,
				ItemType: item.ItemType,
				Title:    payload.Title,
			}
		},
		Patch: func(payload models.UpdatePage) map[string]any {
			updates := map[string]any{}
			if payload.Title != nil {
				updates["title"] = *payload.Title
			}
			return updates
		},
		ParentRef: noParent[models.NewPage],
	})
}

// NewTodoStore creates the typed store for todo lists
func NewTodoStore(db *gorm.DB) *GormChildStore[models.Todo, models.NewTodo, models.UpdateTodo] {
	return NewChildStore(db, ChildSpec[models.Todo, models.NewTodo, models.UpdateTodo]{
		Kind: models.KindTodo,
		FromPayload: func(item *models.Item, payload models.NewTodo) models.Todo {
			return models.Todo{
				ID:       item.ID,
				ItemType: item.ItemType,
				PageID:   payload.PageID,
				Title:    payload.Title,
			}
		},
		Patch: func(payload models.UpdateTodo) map[string]any {
			updates := map[string]any{}
			if payload.Title != nil {
				updates["title"] = *payload.Title
			}
			return updates
		},
		ParentRef: func(payload models.NewTodo) (uuid.UUID, models.ItemKind, bool) {
			return payload.PageID, models.KindPage, true
		},
	})
}

// NewTodoItemStore creates the typed store for todo entries
func NewTodoItemStore(db *gorm.DB) *GormChildStore[models.TodoItem, models.NewTodoItem, models.UpdateTodoItem] {
	return NewChildStore(db, ChildSpec[models.TodoItem, models.NewTodoItem, models.UpdateTodoItem]{
		Kind: models.KindTodoItem,
		FromPayload: func(item *models.Item, payload models.NewTodoItem) models.TodoItem {
			return models.TodoItem{
				ID:        item.ID,
				ItemType:  item.ItemType,
				TodoID:    payload.TodoID,
				Title:     payload.Title,
				IsChecked: false,
			}
		},
		Patch: func(payload models.UpdateTodoItem) map[string]any {
			updates := map[string]any{}
			if payload.Title != nil {
				updates["title"] = *payload.Title
			}
			if payload.IsChecked != nil {
				updates["is_checked"] = *payload.IsChecked
			}
			return updates
		},
		ParentRef: func(payload models.NewTodoItem) (uuid.UUID, models.ItemKind, bool) {
			return payload.TodoID, models.KindTodo, true
		},
	})
}

// NewTextFieldStore creates the typed store for text fields
func NewTextFieldStore(db *gorm.DB) *GormChildStore[models.TextField, models.NewTextField, models.UpdateTextField] {
	return NewChildStore(db, ChildSpec[models.TextField, models.NewTextField, models.UpdateTextField]{
		Kind: models.KindTextField,
		FromPayload: func(item *models.Item, payload models.NewTextField) models.TextField {
			return models.TextField{
				ID:       item.ID,
				ItemType: item.ItemType,
				PageID:   payload.PageID,
				Text:     payload.Text,
				CoordX:   payload.CoordX,
				CoordY:   payload.CoordY,
			}
		},
		Patch: func(payload models.UpdateTextField) map[string]any {
			updates := map[string]any{}
			if payload.Text != nil {
				updates["text"] = *payload.Text
			}
			if payload.CoordX != nil {
				updates["coord_x"] = *payload.CoordX
			}
			if payload.CoordY != nil {
				updates["coord_y"] = *payload.CoordY
			}
			return updates
		},
		ParentRef: func(payload models.NewTextField) (uuid.UUID, models.ItemKind, bool) {
			return payload.PageID, models.KindPage, true
		},
	})
}
