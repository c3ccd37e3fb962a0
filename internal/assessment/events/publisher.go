// Package events publishes assessment history entries to Kafka so downstream
// governance consumers get a change feed without polling. The feed is
// best-effort: the write path never fails because the broker is down, it
// logs and moves on. The history table remains the source of truth.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"assure/internal/assessment/models"
)

// Publisher produces history entries to a Kafka topic.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewPublisher connects to the brokers. Returns nil when no brokers are
// configured, so wiring can skip the feed entirely.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

// PublishHistory produces one entry, keyed by the composite assessment key
// so per-assessment ordering is preserved within a partition. Fire-and-forget.
func (p *Publisher) PublishHistory(ctx context.Context, entry models.HistoryEntry) {
	value, err := json.Marshal(entry)
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal history entry for feed", "error", err.Error())
		return
	}
	key := entry.ProjectID.String() + ":" + entry.StandardID.String() + ":" + entry.ProfessionID.String()
	record := &kgo.Record{Topic: p.topic, Key: []byte(key), Value: value}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("history feed publish failed",
				"topic", p.topic,
				"history_id", entry.ID.String(),
				"error", err.Error(),
			)
		}
	})
}

// Close flushes buffered records and releases the client.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.client.Close()
}
