package handlers

import (
	"encoding/json"
	"net/http"

	"promosync/internal/logger"
	"promosync/internal/store"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *store.SettingsStore
	logger   *logger.Logger
}

func NewSettingsHandler(settings *store.SettingsStore, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		logger:   logger,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Get())
}

// Update shallow-merges the request body into the current settings and
// returns the merged result.
func (h *SettingsHandler) Update(c *gin.Context) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merged, err := h.settings.Merge(patch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Settings updated")
	c.JSON(http.StatusOK, merged)
}
