package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"promosync/internal/logger"
	"promosync/internal/store"

	"github.com/gin-gonic/gin"
)

// IgnoreHandler serves one ignore list. The same handler backs both the
// supplier and the category lists; field is the JSON array key the endpoint
// requires ("supplier_ids" or "category_ids").
type IgnoreHandler struct {
	list   *store.IgnoreList
	field  string
	logger *logger.Logger
}

func NewIgnoreHandler(list *store.IgnoreList, field string, logger *logger.Logger) *IgnoreHandler {
	return &IgnoreHandler{
		list:   list,
		field:  field,
		logger: logger,
	}
}

func (h *IgnoreHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{h.field: h.list.List()})
}

func (h *IgnoreHandler) Add(c *gin.Context) {
	ids, ok := h.bindIDs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{h.field: h.list.Add(ids)})
}

func (h *IgnoreHandler) Remove(c *gin.Context) {
	ids, ok := h.bindIDs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{h.field: h.list.Remove(ids)})
}

func (h *IgnoreHandler) bindIDs(c *gin.Context) ([]string, bool) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	raw, ok := body[h.field]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s array is required", h.field)})
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be an array of strings", h.field)})
		return nil, false
	}
	return ids, true
}
