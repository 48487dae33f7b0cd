package entity

import (
	"time"

	"github.com/google/uuid"

	"ai-counseling-be/pkg/analysis"
)

// UserAnalysis is the persisted analytics record for one message.
type UserAnalysis struct {
	Id           uuid.UUID
	UserId       string
	SessionId    string
	AnalysisType string
	Analysis     analysis.Result
	TimeOfDay    string
	CreatedAt    time.Time
}

// AIResponseRecord captures how a reply was produced, for the analytics trail.
type AIResponseRecord struct {
	Id             uuid.UUID
	UserId         string
	SessionId      string
	MessageId      string
	Prompt         string
	Response       string
	Model          string
	Source         string // "gemini-ai" | "fallback" | "demo-mode"
	ScenarioIds    []string
	Category       string
	ProcessingTime time.Duration
	AnalysisId     *uuid.UUID
	CreatedAt      time.Time
}
