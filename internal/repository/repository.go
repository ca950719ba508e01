package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Update applies a partial update to a user
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.User, error)
}

// ItemRepository defines the interface for the item index, the single
// authoritative mapping from (id, kind) to owner and from id to parent.
type ItemRepository interface {
	// HasOwner reports whether an item row matching id, kind and owner
	// exists. It never errors; absence and query failure both read as
	// "not owned".
	HasOwner(ctx context.Context, id uuid.UUID, kind models.ItemKind, ownerID uuid.UUID) bool

	// UpdateParent repoints an owner's item at a new parent
	UpdateParent(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, parentID uuid.UUID, parentKind models.ItemKind) (*models.Item, error)

	// ParentExists reports whether an item row matching id, kind and
	// owner exists to serve as a reparent target
	ParentExists(ctx context.Context, id uuid.UUID, kind models.ItemKind, ownerID uuid.UUID) bool

	// ListByParent lists an owner's item rows under a parent, most
	// recently created first
	ListByParent(ctx context.Context, parentID uuid.UUID, ownerID uuid.UUID) ([]models.Item, error)
}

// ChildStore is the uniform capability set of one typed item store.
// Each store is bound to a fixed kind discriminator and always filters
// by both id and kind.
type ChildStore[R models.ChildRecord, C any, U any] interface {
	// Kind returns the store's kind discriminator
	Kind() models.ItemKind

	// ParentRef extracts the parent reference from a create payload,
	// if the kind has one
	ParentRef(payload C) (uuid.UUID, models.ItemKind, bool)

	// Create writes the item index row and the child row atomically
	Create(ctx context.Context, item *models.Item, payload C) (*R, error)

	// Find loads the child row by id, filtered by the store's kind
	Find(ctx context.Context, id uuid.UUID) (*R, error)

	// Update applies a partial update to the child row
	Update(ctx context.Context, id uuid.UUID, payload U) (*R, error)

	// Delete removes the child row and its item index row atomically
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagRepository defines the interface for tags and their item
// associations
type TagRepository interface {
	// Create creates a new tag
	Create(ctx context.Context, tag *models.Tag) error

	// ListByOwner lists all tags owned by a user
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tag, error)

	// ListItems lists the association rows of a tag
	ListItems(ctx context.Context, tagID uuid.UUID) ([]models.TagItem, error)

	// HasOwner reports whether a tag exists and belongs to the owner
	HasOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) bool

	// Update applies a partial update to an owner's tag
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, updates map[string]any) (*models.Tag, error)

	// Delete removes an owner's tag together with its associations
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error

	// AddItems inserts association rows, ignoring ones already present
	AddItems(ctx context.Context, associations []models.TagItem) error

	// RemoveItems deletes the matching association rows of a tag
	RemoveItems(ctx context.Context, tagID uuid.UUID, refs []models.ItemRef) error
}
