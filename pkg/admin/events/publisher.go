package events

import (
	"context"
	"time"

	"ai-counseling-be/internal/pkg/logger"
	pkgEvents "ai-counseling-be/pkg/events"
	pktNats "ai-counseling-be/pkg/nats"
)

// Publisher abstracts event publishing for admin operations
type Publisher interface {
	PublishScenarioAdded(ctx context.Context, scenarioId, category, severity, addedBy string)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishScenarioAdded emits SCENARIO_ADDED when an admin extends the corpus
func (p *NatsPublisher) PublishScenarioAdded(ctx context.Context, scenarioId, category, severity, addedBy string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "SCENARIO_ADDED",
		Data: map[string]interface{}{
			"scenario_id": scenarioId,
			"category":    category,
			"severity":    severity,
			"added_by":    addedBy,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish SCENARIO_ADDED event", map[string]interface{}{"error": err.Error()})
	}
}
