package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-counseling-be/internal/constant"
	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/pkg/logger"
	"ai-counseling-be/pkg/analysis"
	"ai-counseling-be/pkg/llm"
	"ai-counseling-be/pkg/prediction"
	"ai-counseling-be/pkg/prompt"
	"ai-counseling-be/pkg/retrieval"
	"ai-counseling-be/pkg/template"
)

const groundingScenarioCount = 3

type ICounselorService interface {
	Chat(ctx context.Context, req *dto.CounselorChatRequest) (*dto.CounselorChatResponse, error)
}

// counselorService handles one counseling message end to end: annotate,
// retrieve grounding scenarios, try the LLM, fall back to the corpus
// template when the LLM is unavailable. It never fails the conversation.
type counselorService struct {
	engine           *retrieval.Engine
	llmProvider      llm.LLMProvider // nil means demo mode
	llmModel         string
	predictionClient *prediction.Client
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCounselorService(
	engine *retrieval.Engine,
	llmProvider llm.LLMProvider,
	llmModel string,
	predictionClient *prediction.Client,
	publisherService IPublisherService,
	logger logger.ILogger,
) ICounselorService {
	return &counselorService{
		engine:           engine,
		llmProvider:      llmProvider,
		llmModel:         llmModel,
		predictionClient: predictionClient,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (cs *counselorService) Chat(ctx context.Context, req *dto.CounselorChatRequest) (*dto.CounselorChatResponse, error) {
	start := time.Now()
	profile := req.UserProfile
	if profile == nil {
		profile = &dto.UserProfile{}
	}

	analysisResult := analysis.Analyze(req.Message)

	predictionScore := cs.predict(ctx, profile)

	scenarios := cs.engine.FindRelevantScenarios(ctx, req.Message, groundingScenarioCount)
	cs.logger.Debug("COUNSELOR", "Retrieved grounding scenarios", map[string]interface{}{
		"count":      len(scenarios),
		"session_id": req.SessionId,
	})

	var reply, source, modelName string
	if cs.llmProvider != nil {
		reply, source, modelName = cs.generateWithLLM(ctx, req, profile, analysisResult, predictionScore, scenarios)
	} else {
		reply = cs.fallbackReply(scenarios, profile, constant.DemoFallbackBodyV1)
		source = constant.ResponseSourceDemo
		modelName = "demo"
	}

	response := &dto.CounselorChatResponse{
		Message:          reply,
		ScenarioIds:      scenarioIds(scenarios),
		Category:         topCategory(scenarios),
		Source:           source,
		Analysis:         analysisResult,
		PredictionScore:  predictionScore,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Timestamp:        time.Now(),
	}

	cs.publishAnalytics(ctx, req, profile, response, modelName)

	return response, nil
}

// generateWithLLM attempts the Gemini call; any failure or empty reply
// degrades to the scenario fallback.
func (cs *counselorService) generateWithLLM(
	ctx context.Context,
	req *dto.CounselorChatRequest,
	profile *dto.UserProfile,
	analysisResult analysis.Result,
	predictionScore *float64,
	scenarios []*entity.Scenario,
) (reply, source, modelName string) {
	systemPrompt := prompt.NewContextualBuilder(profile, analysisResult, predictionScore, scenarios).Build()

	history := make([]llm.Message, 0, len(req.ConversationHistory)+1)
	for _, msg := range req.ConversationHistory {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	if len(history) == 0 || history[len(history)-1].Content != req.Message {
		history = append(history, llm.Message{Role: llm.RoleUser, Content: req.Message})
	}

	text, err := cs.llmProvider.Chat(ctx, systemPrompt, history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(500),
	)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, constant.ResponseSourceGemini, cs.llmModel
	}

	if err != nil {
		cs.logger.Warn("COUNSELOR", "LLM call failed, using scenario fallback", map[string]interface{}{
			"error":      err.Error(),
			"session_id": req.SessionId,
		})
	} else {
		cs.logger.Warn("COUNSELOR", "LLM returned an empty reply, using scenario fallback", map[string]interface{}{
			"session_id": req.SessionId,
		})
	}

	return cs.fallbackReply(scenarios, profile, constant.GenericFallbackBodyV1), constant.ResponseSourceFallback, cs.llmModel
}

// fallbackReply renders the best-matching scenario template, or composes a
// generic reply when the corpus produced nothing at all.
func (cs *counselorService) fallbackReply(scenarios []*entity.Scenario, profile *dto.UserProfile, body string) string {
	if len(scenarios) > 0 {
		return template.Render(scenarios[0].CounselorResponse, profile.FirstName, profile.PartnerName)
	}

	greetingName := profile.FirstName
	if greetingName == "" {
		greetingName = "there"
	}

	partnerClause := ""
	if profile.PartnerName != "" {
		partnerClause = " with " + profile.PartnerName
	}

	return fmt.Sprintf(
		"Hello %s! I understand you're reaching out about your relationship, and I want you to know that seeking support shows real strength and commitment to growth.\n\n%s\n\nCould you tell me more specifically about what's been on your mind lately regarding your relationship%s? I'm here to listen and help however I can.",
		greetingName, body, partnerClause,
	)
}

func (cs *counselorService) predict(ctx context.Context, profile *dto.UserProfile) *float64 {
	if cs.predictionClient == nil {
		return nil
	}

	score, err := cs.predictionClient.Predict(ctx, profile.PredictiveFeatures)
	if err != nil {
		cs.logger.Warn("COUNSELOR", "Prediction service unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return score
}

// publishAnalytics fires the analytics record; failures never affect the reply.
func (cs *counselorService) publishAnalytics(
	ctx context.Context,
	req *dto.CounselorChatRequest,
	profile *dto.UserProfile,
	response *dto.CounselorChatResponse,
	modelName string,
) {
	if cs.publisherService == nil || profile.Uid == "" || req.SessionId == "" {
		return
	}

	analysisType := "general"
	if len(response.Analysis.KeyTopics) > 0 {
		analysisType = response.Analysis.KeyTopics[0]
	}

	payload := dto.PublishAnalysisMessage{
		UserId:       profile.Uid,
		SessionId:    req.SessionId,
		MessageId:    fmt.Sprintf("msg_%d", time.Now().UnixMilli()),
		AnalysisType: analysisType,
		Analysis:     response.Analysis,
		Prompt:       req.Message,
		Response:     response.Message,
		Model:        modelName,
		Source:       response.Source,
		ScenarioIds:  response.ScenarioIds,
		Category:     response.Category,
		ProcessingMs: response.ProcessingTimeMs,
		Timestamp:    time.Now(),
	}

	msgJson, err := json.Marshal(payload)
	if err != nil {
		cs.logger.Error("COUNSELOR", "Failed to marshal analytics payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := cs.publisherService.Publish(ctx, msgJson); err != nil {
		cs.logger.Error("COUNSELOR", "Failed to publish analytics message", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func scenarioIds(scenarios []*entity.Scenario) []string {
	ids := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		ids = append(ids, s.Id)
	}
	return ids
}

func topCategory(scenarios []*entity.Scenario) string {
	if len(scenarios) == 0 {
		return "general"
	}
	return scenarios[0].Category
}
