package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Witchkitt/grabbit-clean-main/module/core/domain"
	"github.com/Witchkitt/grabbit-clean-main/module/core/service"
)

type listService interface {
	Add(ctx context.Context, name string) (*domain.ShoppingItem, error)
	Items(ctx context.Context) ([]domain.ShoppingItem, error)
	Toggle(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) (int64, error)
}

type addItemRequest struct {
	Name string `json:"name"`
}

type ItemHandler struct {
	listSvc listService
}

func NewItemHandler(listSvc listService) *ItemHandler {
	return &ItemHandler{listSvc: listSvc}
}

func (h *ItemHandler) Register(r *gin.RouterGroup) {
	r.POST("/items", h.AddItem)
	r.GET("/items", h.ListItems)
	r.POST("/items/:item_id/toggle", h.ToggleItem)
	r.DELETE("/items/:item_id", h.RemoveItem)
	r.DELETE("/items/completed", h.ClearCompleted)
}

func (h *ItemHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.listSvc.Add(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyItemName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.listSvc.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}
	if items == nil {
		items = []domain.ShoppingItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) ToggleItem(c *gin.Context) {
	if err := h.listSvc.Toggle(c.Request.Context(), c.Param("item_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) RemoveItem(c *gin.Context) {
	if err := h.listSvc.Remove(c.Request.Context(), c.Param("item_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) ClearCompleted(c *gin.Context) {
	removed, err := h.listSvc.ClearCompleted(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear completed items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
