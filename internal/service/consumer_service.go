package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/pkg/logger"
	"ai-counseling-be/internal/repository/contract"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the analytics topic and persists each record.
// Persistence failures are logged and the message acked anyway: the
// analytics trail is best-effort and must never wedge the queue.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	analysisRepo contract.AnalysisRepository
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	analysisRepo contract.AnalysisRepository,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		analysisRepo: analysisRepo,
		logger:       logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAnalysisMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ANALYTICS", "Failed to unmarshal analytics message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.analysisRepo == nil {
		// No analytics database configured; drop silently.
		msg.Ack()
		return
	}

	analysisType := payload.AnalysisType
	if analysisType == "" {
		analysisType = "general"
	}

	userAnalysis := entity.UserAnalysis{
		Id:           uuid.New(),
		UserId:       payload.UserId,
		SessionId:    payload.SessionId,
		AnalysisType: analysisType,
		Analysis:     payload.Analysis,
		TimeOfDay:    timeOfDay(payload.Timestamp),
		CreatedAt:    payload.Timestamp,
	}

	if err := cs.analysisRepo.SaveUserAnalysis(ctx, &userAnalysis); err != nil {
		cs.logger.Error("ANALYTICS", "Failed to save user analysis", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	analysisId := userAnalysis.Id
	responseRecord := entity.AIResponseRecord{
		Id:             uuid.New(),
		UserId:         payload.UserId,
		SessionId:      payload.SessionId,
		MessageId:      payload.MessageId,
		Prompt:         payload.Prompt,
		Response:       payload.Response,
		Model:          payload.Model,
		Source:         payload.Source,
		ScenarioIds:    payload.ScenarioIds,
		Category:       payload.Category,
		ProcessingTime: time.Duration(payload.ProcessingMs) * time.Millisecond,
		AnalysisId:     &analysisId,
		CreatedAt:      payload.Timestamp,
	}

	if err := cs.analysisRepo.SaveAIResponse(ctx, &responseRecord); err != nil {
		cs.logger.Error("ANALYTICS", "Failed to save AI response record", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
	}

	msg.Ack()
}

func timeOfDay(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}
