package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-counseling-be/internal/constant"
	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/repository/memory"
	"ai-counseling-be/pkg/llm"
	"ai-counseling-be/pkg/retrieval"
)

type stubScenarioRepo struct {
	scenarios []*entity.Scenario
}

func (r *stubScenarioRepo) LoadAll(ctx context.Context) ([]*entity.Scenario, error) {
	return r.scenarios, nil
}

func (r *stubScenarioRepo) Append(ctx context.Context, scenario *entity.Scenario) error {
	r.scenarios = append(r.scenarios, scenario)
	return nil
}

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) Chat(ctx context.Context, systemPrompt string, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.reply, s.err
}

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func testEngine() *retrieval.Engine {
	repo := memory.NewCorpusRepository(&stubScenarioRepo{scenarios: []*entity.Scenario{
		{
			Id:                "comm_001",
			Category:          "communication",
			Situation:         "Partner feels unheard during conversations",
			Keywords:          []string{"unheard", "listening", "ignored"},
			CounselorResponse: "I hear you, {first_name}. How does {partner_name} respond?",
		},
		{
			Id:                "trust_001",
			Category:          "trust",
			Situation:         "Trust has been broken",
			Keywords:          []string{"trust", "betrayal"},
			CounselorResponse: "Rebuilding trust takes time.",
		},
	}}, noopLogger{})
	return retrieval.NewEngine(repo, noopLogger{})
}

func TestChatUsesLLMReply(t *testing.T) {
	provider := &stubLLM{reply: "Thank you for sharing that with me."}
	svc := NewCounselorService(testEngine(), provider, "gemini-2.0-flash-exp", nil, nil, noopLogger{})

	res, err := svc.Chat(context.Background(), &dto.CounselorChatRequest{
		Message: "I feel unheard and ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "Thank you for sharing that with me.", res.Message)
	assert.Equal(t, constant.ResponseSourceGemini, res.Source)
	assert.Equal(t, "communication", res.Category)
	assert.Equal(t, 1, provider.calls)
	require.Len(t, res.ScenarioIds, 2)
	assert.Equal(t, "comm_001", res.ScenarioIds[0])
}

func TestChatFallsBackToScenarioOnLLMFailure(t *testing.T) {
	provider := &stubLLM{err: errors.New("quota exceeded")}
	svc := NewCounselorService(testEngine(), provider, "gemini-2.0-flash-exp", nil, nil, noopLogger{})

	res, err := svc.Chat(context.Background(), &dto.CounselorChatRequest{
		Message: "I feel unheard and ignored",
		UserProfile: &dto.UserProfile{
			FirstName:   "Sarah",
			PartnerName: "James",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, constant.ResponseSourceFallback, res.Source)
	assert.Equal(t, "I hear you, Sarah. How does James respond?", res.Message)
}

func TestChatFallbackRendersDefaultPartner(t *testing.T) {
	provider := &stubLLM{err: errors.New("down")}
	svc := NewCounselorService(testEngine(), provider, "m", nil, nil, noopLogger{})

	res, err := svc.Chat(context.Background(), &dto.CounselorChatRequest{
		Message: "I feel unheard",
	})
	require.NoError(t, err)

	assert.Equal(t, "I hear you, . How does your partner respond?", res.Message)
}

func TestChatDemoModeWithoutProvider(t *testing.T) {
	svc := NewCounselorService(testEngine(), nil, "", nil, nil, noopLogger{})

	res, err := svc.Chat(context.Background(), &dto.CounselorChatRequest{
		Message: "I feel unheard and ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.ResponseSourceDemo, res.Source)
	// A scenario matched, so demo mode still renders the corpus template.
	assert.Contains(t, res.Message, "I hear you")
}

func TestChatGenericFallbackWhenNothingMatches(t *testing.T) {
	emptyRepo := memory.NewCorpusRepository(&stubScenarioRepo{}, noopLogger{})
	engine := retrieval.NewEngine(emptyRepo, noopLogger{})
	provider := &stubLLM{err: errors.New("down")}
	svc := NewCounselorService(engine, provider, "m", nil, nil, noopLogger{})

	res, err := svc.Chat(context.Background(), &dto.CounselorChatRequest{
		Message:     "hello",
		UserProfile: &dto.UserProfile{FirstName: "Kim", PartnerName: "Alex"},
	})
	require.NoError(t, err)

	assert.Equal(t, constant.ResponseSourceFallback, res.Source)
	assert.True(t, strings.HasPrefix(res.Message, "Hello Kim!"))
	assert.Contains(t, res.Message, "with Alex")
	assert.Equal(t, "general", res.Category)
	assert.Empty(t, res.ScenarioIds)
}

func TestChatPublishesAnalytics(t *testing.T) {
	publisher := &capturingPublisher{}
	provider := &stubLLM{reply: "ok"}
	svc := NewCounselorService(testEngine(), provider, "gemini-2.0-flash-exp", nil, publisher, noopLogger{})

	_, err := svc.Chat(context.Background(), &dto.CounselorChatRequest{
		Message:     "I feel unheard and can't trust him",
		SessionId:   "sess_1",
		UserProfile: &dto.UserProfile{Uid: "user_1"},
	})
	require.NoError(t, err)

	require.Len(t, publisher.payloads, 1)

	var payload dto.PublishAnalysisMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &payload))
	assert.Equal(t, "user_1", payload.UserId)
	assert.Equal(t, "sess_1", payload.SessionId)
	assert.Equal(t, constant.ResponseSourceGemini, payload.Source)
	assert.Equal(t, "gemini-2.0-flash-exp", payload.Model)
}

func TestChatSkipsAnalyticsWithoutSession(t *testing.T) {
	publisher := &capturingPublisher{}
	provider := &stubLLM{reply: "ok"}
	svc := NewCounselorService(testEngine(), provider, "m", nil, publisher, noopLogger{})

	_, err := svc.Chat(context.Background(), &dto.CounselorChatRequest{Message: "hi"})
	require.NoError(t, err)

	assert.Empty(t, publisher.payloads)
}
