package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/journali/journal-api/internal/dto"
	apierrors "github.com/journali/journal-api/internal/errors"
	"github.com/journali/journal-api/internal/middleware"
	"github.com/journali/journal-api/internal/models"
	"github.com/journali/journal-api/internal/services"
)

// TagHandler coordinates tag-related HTTP handlers.
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List returns all of the caller's tags with their attached items
func (h *TagHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tags, err := h.tagService.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list tags")
		return
	}

	c.JSON(http.StatusOK, dto.ToTagDTOs(tags))
}

// Create creates a tag owned by the caller
func (h *TagHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var payload models.NewTag
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), payload, userID)
	if err != nil {
		respondTagError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// Update partially updates one of the caller's tags
func (h *TagHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid tag ID")
		return
	}

	var payload models.UpdateTag
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := h.tagService.Update(c.Request.Context(), id, payload, userID)
	if err != nil {
		respondTagError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// Delete removes one of the caller's tags
func (h *TagHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid tag ID")
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), id, userID); err != nil {
		respondTagError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

// AddItems attaches items to one of the caller's tags
func (h *TagHandler) AddItems(c *gin.Context) {
	h.changeItems(c, h.tagService.AddItems)
}

// RemoveItems detaches items from one of the caller's tags
func (h *TagHandler) RemoveItems(c *gin.Context) {
	h.changeItems(c, h.tagService.RemoveItems)
}

func (h *TagHandler) changeItems(c *gin.Context, apply func(ctx context.Context, tagID uuid.UUID, refs []models.ItemRef, callerID uuid.UUID) error) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid tag ID")
		return
	}

	var refs []models.ItemRef
	if err := c.ShouldBindJSON(&refs); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := apply(c.Request.Context(), id, refs, userID); err != nil {
		respondTagError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag items updated"})
}

func respondTagError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTagNotFound):
		apierrors.NotFound(c, "Tag not found")
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, "Item not found")
	case errors.Is(err, services.ErrNoItemRefs):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
