package handlers

import (
	"net/http"

	"promosync/internal/logger"
	"promosync/internal/store"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobs   *store.JobStore
	logger *logger.Logger
}

func NewJobHandler(jobs *store.JobStore, logger *logger.Logger) *JobHandler {
	return &JobHandler{
		jobs:   jobs,
		logger: logger,
	}
}

func (h *JobHandler) Get(c *gin.Context) {
	id := c.Param("id")

	summary, ok := h.jobs.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *JobHandler) Logs(c *gin.Context) {
	id := c.Param("id")

	logs, ok := h.jobs.Logs(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
