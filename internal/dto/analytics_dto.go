package dto

import (
	"time"

	"ai-counseling-be/pkg/analysis"
)

// PublishAnalysisMessage is the payload published after every counselor
// reply; the consumer persists it as the analytics trail.
type PublishAnalysisMessage struct {
	UserId       string          `json:"user_id"`
	SessionId    string          `json:"session_id"`
	MessageId    string          `json:"message_id"`
	AnalysisType string          `json:"analysis_type"`
	Analysis     analysis.Result `json:"analysis"`
	Prompt       string          `json:"prompt"`
	Response     string          `json:"response"`
	Model        string          `json:"model"`
	Source       string          `json:"source"`
	ScenarioIds  []string        `json:"scenario_ids"`
	Category     string          `json:"category"`
	ProcessingMs int64           `json:"processing_ms"`
	Timestamp    time.Time       `json:"timestamp"`
}
