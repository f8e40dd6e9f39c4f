package handlers

import (
	"errors"
	"net/http"

	"promosync/internal/config"
	"promosync/internal/events"
	"promosync/internal/logger"
	"promosync/internal/models"
	"promosync/internal/services/apierr"
	"promosync/internal/services/promodata"
	"promosync/internal/services/woocommerce"
	"promosync/internal/store"
	"promosync/internal/worker"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	cfg        *config.Config
	jobs       *store.JobStore
	settings   *store.SettingsStore
	dispatcher *worker.Dispatcher
	publisher  *events.Publisher
	logger     *logger.Logger
}

func NewSyncHandler(cfg *config.Config, jobs *store.JobStore, settings *store.SettingsStore, dispatcher *worker.Dispatcher, publisher *events.Publisher, logger *logger.Logger) *SyncHandler {
	return &SyncHandler{
		cfg:        cfg,
		jobs:       jobs,
		settings:   settings,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
	}
}

// TestConnection verifies the WooCommerce store is reachable with the given
// credentials.
func (h *SyncHandler) TestConnection(c *gin.Context) {
	var req models.WooConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.URL == "" || req.Key == "" || req.Secret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url, key and secret are required"})
		return
	}

	client := woocommerce.NewClient(req.URL, req.Key, req.Secret, h.logger)
	if err := client.Ping(c.Request.Context()); err != nil {
		message := "could not reach WooCommerce store"
		var uerr *apierr.UpstreamError
		if errors.As(err, &uerr) {
			message = uerr.Message
		}
		c.JSON(apierr.HTTPStatus(err), gin.H{"success": false, "error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type startSyncRequest struct {
	Kind         string                  `json:"kind"`
	ProductCodes []string                `json:"productCodes"`
	APIConfig    *models.PromodataConfig `json:"apiConfig"`
	WooConfig    *models.WooConfig       `json:"wooConfig"`
	Settings     *models.RuleSet         `json:"settings"`
}

// StartSync validates the submission, creates a queued job and hands a runner
// to the dispatcher. The response is the redacted job summary; credentials
// and the rule snapshot are never echoed back.
func (h *SyncHandler) StartSync(c *gin.Context) {
	var req startSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.APIConfig == nil || req.APIConfig.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "apiConfig with token is required"})
		return
	}
	if req.WooConfig == nil || req.WooConfig.URL == "" || req.WooConfig.Key == "" || req.WooConfig.Secret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wooConfig with url, key and secret is required"})
		return
	}
	if len(req.ProductCodes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productCodes must not be empty"})
		return
	}

	if req.Kind == "" {
		req.Kind = "products"
	}
	if req.APIConfig.BaseURL == "" {
		req.APIConfig.BaseURL = h.cfg.PromodataBaseURL
	}

	// Rules are snapshotted at submission: the request's override when given,
	// else the global settings at this instant. Mid-run settings changes are
	// not honored.
	global := h.settings.Get()
	rules := global.RuleSet()
	if req.Settings != nil {
		rules = *req.Settings
	}

	creds := models.JobCredentials{Promodata: *req.APIConfig, Woo: *req.WooConfig}
	summary := h.jobs.Create(req.Kind, req.ProductCodes, creds, rules)

	runner := worker.NewRunner(worker.RunnerConfig{
		JobID:         summary.ID,
		Codes:         req.ProductCodes,
		Rules:         rules,
		Notifications: global.Notifications,
		Catalog:       promodata.NewClient(req.APIConfig.BaseURL, req.APIConfig.Token, h.logger),
		Storefront:    woocommerce.NewClient(req.WooConfig.URL, req.WooConfig.Key, req.WooConfig.Secret, h.logger),
		Jobs:          h.jobs,
		Publisher:     h.publisher,
		Logger:        h.logger,
		DispatchDelay: h.cfg.SyncDispatchDelay,
		ItemDelay:     h.cfg.SyncItemDelay,
	})
	h.dispatcher.Submit(runner)

	h.logger.Info("Job %s queued: kind=%s total=%d", summary.ID, summary.Kind, summary.Total)
	c.JSON(http.StatusCreated, summary)
}
