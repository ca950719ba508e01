package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Item index lookups: ownership gate and child listing
		{"items", "idx_items_owner_type", "owner_id, item_type"},
		{"items", "idx_items_parent_created", "parent_id, created_at"},

		// Tag association lookups per tag
		{"tag_items", "idx_tag_items_tag_id", "tag_id"},
	}

	for _, idx := range indexes {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
