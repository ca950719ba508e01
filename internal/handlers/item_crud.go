package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/journali/journal-api/internal/errors"
	"github.com/journali/journal-api/internal/middleware"
	"github.com/journali/journal-api/internal/models"
	"github.com/journali/journal-api/internal/services"
)

// ItemCrudHandler serves the uniform create/find/update/delete routes
// of one item kind. All four kinds share this handler; only the
// payload types differ.
type ItemCrudHandler[R models.ChildRecord, C any, U any] struct {
	svc *services.CrudService[R, C, U]
}

// NewItemCrudHandler creates the handler for one kind
func NewItemCrudHandler[R models.ChildRecord, C any, U any](svc *services.CrudService[R, C, U]) *ItemCrudHandler[R, C, U] {
	return &ItemCrudHandler[R, C, U]{svc: svc}
}

// RegisterItemCrudRoutes mounts a kind's CRUD routes under a path
func RegisterItemCrudRoutes[R models.ChildRecord, C any, U any](rg *gin.RouterGroup, path string, h *ItemCrudHandler[R, C, U]) {
	rg.POST(path, h.Create)
	rg.GET(path+"/:id", h.Find)
	rg.PATCH(path+"/:id", h.Update)
	rg.DELETE(path+"/:id", h.Delete)
}

// Create creates a new item of the handler's kind
func (h *ItemCrudHandler[R, C, U]) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var payload C
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.svc.Create(c.Request.Context(), payload, userID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Find returns one of the caller's items
func (h *ItemCrudHandler[R, C, U]) Find(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	record, err := h.svc.Find(c.Request.Context(), id, userID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update partially updates one of the caller's items
func (h *ItemCrudHandler[R, C, U]) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	var payload U
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.svc.Update(c.Request.Context(), id, payload, userID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete removes one of the caller's items
func (h *ItemCrudHandler[R, C, U]) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, userID); err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, "Item not found")
	case errors.Is(err, services.ErrInvalidParent):
		apierrors.BadRequest(c, "Parent item not found")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
