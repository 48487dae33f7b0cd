package contract

import (
	"context"

	"ai-counseling-be/internal/entity"
)

// AnalysisRepository persists the analytics trail (message analyses and
// AI response records). Writes are best-effort from the caller's view.
type AnalysisRepository interface {
	SaveUserAnalysis(ctx context.Context, analysis *entity.UserAnalysis) error
	SaveAIResponse(ctx context.Context, response *entity.AIResponseRecord) error
	CountBySession(ctx context.Context, sessionId string) (int64, error)
}
