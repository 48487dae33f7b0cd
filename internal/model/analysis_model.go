package model

import (
	"time"

	"github.com/google/uuid"
)

type UserAnalysis struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       string    `gorm:"type:varchar(128);not null;index"`
	SessionId    string    `gorm:"type:varchar(128);not null;index"`
	AnalysisType string    `gorm:"type:varchar(50);not null"`
	Analysis     string    `gorm:"type:jsonb;not null"`
	TimeOfDay    string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time `gorm:"default:now();not null;index"`
}

func (UserAnalysis) TableName() string {
	return "user_analyses"
}

type AIResponse struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId         string     `gorm:"type:varchar(128);not null;index"`
	SessionId      string     `gorm:"type:varchar(128);not null;index"`
	MessageId      string     `gorm:"type:varchar(128);not null"`
	Prompt         string     `gorm:"type:text;not null"`
	Response       string     `gorm:"type:text;not null"`
	Model          string     `gorm:"type:varchar(100)"`
	Source         string     `gorm:"type:varchar(30);not null;index"`
	ScenarioIds    string     `gorm:"type:jsonb"`
	Category       string     `gorm:"type:varchar(50)"`
	ProcessingMs   int64      `gorm:"not null"`
	AnalysisId     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"default:now();not null;index"`
}

func (AIResponse) TableName() string {
	return "ai_responses"
}
