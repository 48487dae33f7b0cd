package retrieval

import (
	"context"

	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/pkg/logger"
	"ai-counseling-be/internal/repository/contract"
)

// Engine is the retrieval entry point for the counseling flow. It is safe
// for concurrent queries against an already-loaded corpus.
type Engine struct {
	scenarioRepo contract.ScenarioRepository
	logger       logger.ILogger
}

func NewEngine(scenarioRepo contract.ScenarioRepository, logger logger.ILogger) *Engine {
	return &Engine{
		scenarioRepo: scenarioRepo,
		logger:       logger,
	}
}

// FindRelevantScenarios returns the k most relevant scenarios for the
// message. It never fails: a corpus load error is logged and degrades to an
// empty result, because a counseling conversation must not be interrupted
// by a retrieval fault.
func (e *Engine) FindRelevantScenarios(ctx context.Context, message string, k int) []*entity.Scenario {
	scenarios, err := e.scenarioRepo.LoadAll(ctx)
	if err != nil {
		e.logger.Error("RETRIEVAL", "Failed to load scenario corpus", map[string]interface{}{
			"error": err.Error(),
		})
		return []*entity.Scenario{}
	}

	return SelectTopK(message, scenarios, k)
}
