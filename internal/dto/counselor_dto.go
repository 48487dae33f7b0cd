package dto

import (
	"time"

	"ai-counseling-be/pkg/analysis"
)

// UserProfile carries the session-specific personalization data the client
// already holds. Profile management itself lives outside this service.
type UserProfile struct {
	Uid                string             `json:"uid,omitempty"`
	FirstName          string             `json:"first_name,omitempty"`
	PartnerName        string             `json:"partner_name,omitempty"`
	RelationshipStatus string             `json:"relationship_status,omitempty"`
	MainChallenges     []string           `json:"main_challenges,omitempty"`
	PredictiveFeatures map[string]float64 `json:"predictive_features,omitempty"`
}

type ChatHistoryMessage struct {
	Role    string `json:"role" validate:"required,oneof=user model"`
	Content string `json:"content" validate:"required"`
}

type CounselorChatRequest struct {
	Message             string               `json:"message" validate:"required"`
	UserProfile         *UserProfile         `json:"user_profile,omitempty"`
	ConversationHistory []ChatHistoryMessage `json:"conversation_history,omitempty" validate:"dive"`
	SessionId           string               `json:"session_id,omitempty"`
}

type CounselorChatResponse struct {
	Message          string          `json:"message"`
	ScenarioIds      []string        `json:"scenario_ids"`
	Category         string          `json:"category"`
	Source           string          `json:"source"` // "gemini-ai" | "fallback" | "demo-mode"
	Analysis         analysis.Result `json:"analysis"`
	PredictionScore  *float64        `json:"prediction_score,omitempty"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
	Timestamp        time.Time       `json:"timestamp"`
}
