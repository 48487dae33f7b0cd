package implementation

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/model"
	"ai-counseling-be/internal/repository/contract"
)

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates the gorm-backed analytics repository.
func NewAnalysisRepository(db *gorm.DB) contract.AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) SaveUserAnalysis(ctx context.Context, analysis *entity.UserAnalysis) error {
	if analysis.Id == uuid.Nil {
		analysis.Id = uuid.New()
	}

	details, err := json.Marshal(analysis.Analysis)
	if err != nil {
		return err
	}

	m := model.UserAnalysis{
		Id:           analysis.Id,
		UserId:       analysis.UserId,
		SessionId:    analysis.SessionId,
		AnalysisType: analysis.AnalysisType,
		Analysis:     string(details),
		TimeOfDay:    analysis.TimeOfDay,
		CreatedAt:    analysis.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *analysisRepository) SaveAIResponse(ctx context.Context, response *entity.AIResponseRecord) error {
	if response.Id == uuid.Nil {
		response.Id = uuid.New()
	}

	scenarioIds, err := json.Marshal(response.ScenarioIds)
	if err != nil {
		return err
	}

	m := model.AIResponse{
		Id:           response.Id,
		UserId:       response.UserId,
		SessionId:    response.SessionId,
		MessageId:    response.MessageId,
		Prompt:       response.Prompt,
		Response:     response.Response,
		Model:        response.Model,
		Source:       response.Source,
		ScenarioIds:  string(scenarioIds),
		Category:     response.Category,
		ProcessingMs: response.ProcessingTime.Milliseconds(),
		AnalysisId:   response.AnalysisId,
		CreatedAt:    response.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *analysisRepository) CountBySession(ctx context.Context, sessionId string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserAnalysis{}).
		Where("session_id = ?", sessionId).
		Count(&count).Error
	return count, err
}
