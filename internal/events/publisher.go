package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"promosync/internal/logger"

	"github.com/segmentio/kafka-go"
)

const (
	TypeJobStarted  = "job.started"
	TypeJobFinished = "job.finished"
	TypeItemSynced  = "item.synced"
	TypeItemFailed  = "item.failed"
)

// Event is one sync notification written to the events topic.
type Event struct {
	Type      string    `json:"type"`
	JobID     string    `json:"job_id"`
	ItemID    string    `json:"item_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher writes sync lifecycle events to Kafka. Publishing is best-effort:
// a broker failure is logged and never surfaces into the sync loop.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers, topic string, logger *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: time.Second,
	}

	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

func (p *Publisher) Publish(event Event) {
	if p == nil {
		return
	}

	event.Timestamp = time.Now().UTC()

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to encode sync event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.JobID),
		Value: value,
	})
	if err != nil {
		p.logger.Warn("Failed to publish sync event %s: %v", event.Type, err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
