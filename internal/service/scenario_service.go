package service

import (
	"context"

	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/mapper"
	"ai-counseling-be/internal/pkg/logger"
	"ai-counseling-be/internal/repository/contract"
	adminEvents "ai-counseling-be/pkg/admin/events"
)

type IScenarioService interface {
	GetAll(ctx context.Context) ([]*dto.ScenarioResponse, error)
	Add(ctx context.Context, req *dto.AddScenarioRequest, addedBy string) (*dto.AddScenarioResponse, error)
}

type scenarioService struct {
	scenarioRepo contract.ScenarioRepository
	eventPub     adminEvents.Publisher
	logger       logger.ILogger
}

func NewScenarioService(
	scenarioRepo contract.ScenarioRepository,
	eventPub adminEvents.Publisher,
	logger logger.ILogger,
) IScenarioService {
	return &scenarioService{
		scenarioRepo: scenarioRepo,
		eventPub:     eventPub,
		logger:       logger,
	}
}

func (ss *scenarioService) GetAll(ctx context.Context) ([]*dto.ScenarioResponse, error) {
	scenarios, err := ss.scenarioRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		responses = append(responses, mapper.ScenarioEntityToResponse(s))
	}
	return responses, nil
}

func (ss *scenarioService) Add(ctx context.Context, req *dto.AddScenarioRequest, addedBy string) (*dto.AddScenarioResponse, error) {
	scenario := mapper.AddScenarioRequestToEntity(req)

	if err := ss.scenarioRepo.Append(ctx, scenario); err != nil {
		return nil, err
	}

	ss.logger.Info("SCENARIO", "Scenario added to corpus", map[string]interface{}{
		"scenario_id": scenario.Id,
		"category":    scenario.Category,
		"added_by":    addedBy,
	})

	if ss.eventPub != nil {
		ss.eventPub.PublishScenarioAdded(ctx, scenario.Id, scenario.Category, scenario.Severity, addedBy)
	}

	return &dto.AddScenarioResponse{Id: scenario.Id}, nil
}
