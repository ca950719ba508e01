package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/dto"
	apierrors "github.com/journali/journal-api/internal/errors"
	"github.com/journali/journal-api/internal/middleware"
	"github.com/journali/journal-api/internal/models"
	"github.com/journali/journal-api/internal/services"
)

// ItemHandler serves the cross-kind item index routes: listing the
// resolved children of a parent and reparenting.
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ListByParent returns the caller's children of a parent, newest
// first, each resolved into its concrete record.
func (h *ItemHandler) ListByParent(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	parentID, err := uuid.Parse(c.Query("parent_id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid parent_id")
		return
	}

	children, err := h.itemService.FindByParent(c.Request.Context(), parentID, userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, dto.ToResolvedItemDTOs(children))
}

// UpdateParent repoints one of the caller's items at a new parent
func (h *ItemHandler) UpdateParent(c *gin.Context) {
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

	type UpdateParentRequest struct {
		ParentID   uuid.UUID       `json:"parent_id" binding:"required"`
		ParentType models.ItemKind `json:"parent_type" binding:"required"`
	}

	var req UpdateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateParent(c.Request.Context(), id, req.ParentID, req.ParentType, userID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
