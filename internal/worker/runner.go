package worker

import (
	"context"
	"fmt"
	"time"

	"promosync/internal/events"
	"promosync/internal/logger"
	"promosync/internal/models"
	"promosync/internal/services/promodata"
	"promosync/internal/services/woocommerce"
	"promosync/internal/store"
)

// Catalog is the supplier side of a sync run.
type Catalog interface {
	FetchProduct(ctx context.Context, code string) (*promodata.Product, error)
}

// Storefront is the WooCommerce side of a sync run.
type Storefront interface {
	CreateProduct(ctx context.Context, product *woocommerce.Product) (*woocommerce.CreatedProduct, error)
	CreateVariations(ctx context.Context, parentID int64, variations []woocommerce.Variation) error
}

// Runner processes one job: it walks the job's product codes strictly in
// order, one at a time, and records one log entry per code. A failing item
// never aborts the run.
type Runner struct {
	jobID         string
	codes         []string
	rules         models.RuleSet
	notifications models.NotificationSettings

	catalog     Catalog
	storefront  Storefront
	transformer *woocommerce.Transformer

	jobs      *store.JobStore
	publisher *events.Publisher
	logger    *logger.Logger

	dispatchDelay time.Duration
	itemDelay     time.Duration
}

type RunnerConfig struct {
	JobID         string
	Codes         []string
	Rules         models.RuleSet
	Notifications models.NotificationSettings
	Catalog       Catalog
	Storefront    Storefront
	Jobs          *store.JobStore
	Publisher     *events.Publisher
	Logger        *logger.Logger
	DispatchDelay time.Duration
	ItemDelay     time.Duration
}

func NewRunner(cfg RunnerConfig) *Runner {
	return &Runner{
		jobID:         cfg.JobID,
		codes:         cfg.Codes,
		rules:         cfg.Rules,
		notifications: cfg.Notifications,
		catalog:       cfg.Catalog,
		storefront:    cfg.Storefront,
		transformer:   woocommerce.NewTransformer(),
		jobs:          cfg.Jobs,
		publisher:     cfg.Publisher,
		logger:        cfg.Logger,
		dispatchDelay: cfg.DispatchDelay,
		itemDelay:     cfg.ItemDelay,
	}
}

func (r *Runner) Run() {
	// The fixed delay models the async dispatch boundary between submission
	// and execution.
	time.Sleep(r.dispatchDelay)

	ctx := context.Background()

	r.jobs.MarkRunning(r.jobID)
	r.logger.Info("Job %s running: %d product codes", r.jobID, len(r.codes))
	r.publisher.Publish(events.Event{Type: events.TypeJobStarted, JobID: r.jobID})

	for i, code := range r.codes {
		entry := r.processCode(ctx, code)
		r.jobs.AppendLog(r.jobID, entry)
		r.notifyItem(entry)

		// Fixed inter-item delay as a crude rate-limit on the upstreams.
		if i < len(r.codes)-1 {
			time.Sleep(r.itemDelay)
		}
	}

	summary, ok := r.jobs.Finish(r.jobID)
	if !ok {
		return
	}
	r.logger.Info("Job %s finished: status=%s done=%d/%d", r.jobID, summary.Status, summary.Done, summary.Total)
	if r.notifications.OnComplete {
		r.publisher.Publish(events.Event{
			Type:    events.TypeJobFinished,
			JobID:   r.jobID,
			Status:  string(summary.Status),
			Message: summary.Error,
		})
	}
}

// processCode runs the fetch -> transform -> push pipeline for one product
// code and reports the outcome as a log entry. Expected failures come back as
// entries, not errors.
func (r *Runner) processCode(ctx context.Context, code string) models.LogEntry {
	product, err := r.catalog.FetchProduct(ctx, code)
	if err != nil {
		r.logger.Error("Job %s: fetch failed for %s: %v", r.jobID, code, err)
		return failedEntry(code, err)
	}

	payload, variations := r.transformer.Build(product, r.rules)

	created, err := r.storefront.CreateProduct(ctx, payload)
	if err != nil {
		r.logger.Error("Job %s: create failed for %s: %v", r.jobID, code, err)
		return failedEntry(code, err)
	}

	if len(variations) > 0 {
		if err := r.storefront.CreateVariations(ctx, created.ID, variations); err != nil {
			r.logger.Error("Job %s: variations failed for %s: %v", r.jobID, code, err)
			return failedEntry(code, err)
		}
	}

	message := "created simple product"
	if payload.Type == woocommerce.ProductTypeVariable {
		message = fmt.Sprintf("created variable product with %d variations", len(variations))
	}

	return models.LogEntry{
		ItemID:  code,
		Status:  models.LogStatusSuccess,
		Message: message,
		Time:    time.Now().UTC(),
	}
}

func (r *Runner) notifyItem(entry models.LogEntry) {
	event := events.Event{
		JobID:   r.jobID,
		ItemID:  entry.ItemID,
		Status:  string(entry.Status),
		Message: entry.Message,
	}
	switch entry.Status {
	case models.LogStatusSuccess:
		event.Type = events.TypeItemSynced
		r.publisher.Publish(event)
	case models.LogStatusFailed:
		if r.notifications.OnItemFailure {
			event.Type = events.TypeItemFailed
			r.publisher.Publish(event)
		}
	}
}

func failedEntry(code string, err error) models.LogEntry {
	return models.LogEntry{
		ItemID:  code,
		Status:  models.LogStatusFailed,
		Message: err.Error(),
		Time:    time.Now().UTC(),
	}
}
