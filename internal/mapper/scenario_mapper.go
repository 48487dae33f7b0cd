package mapper

import (
	"fmt"
	"strings"
	"time"

	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/entity"
)

// AddScenarioRequestToEntity normalizes an admin submission into a corpus
// scenario: free-text lists are split and trimmed, empty entries dropped,
// and a fresh time-based id is generated when none was supplied.
func AddScenarioRequestToEntity(req *dto.AddScenarioRequest) *entity.Scenario {
	id := strings.TrimSpace(req.Id)
	if id == "" {
		id = fmt.Sprintf("custom_%d", time.Now().UnixMilli())
	}

	return &entity.Scenario{
		Id:                  id,
		Category:            req.Category,
		Situation:           strings.TrimSpace(req.Situation),
		Keywords:            splitAndTrim(req.Keywords, ","),
		TherapeuticApproach: strings.TrimSpace(req.TherapeuticApproach),
		CounselorResponse:   strings.TrimSpace(req.CounselorResponse),
		Techniques:          splitAndTrim(req.Techniques, ","),
		FollowUpQuestions:   splitAndTrim(req.FollowUpQuestions, "\n"),
		TherapeuticGoals:    splitAndTrim(req.TherapeuticGoals, ","),
		Severity:            req.Severity,
	}
}

// ScenarioEntityToResponse maps a scenario to its wire representation.
func ScenarioEntityToResponse(s *entity.Scenario) *dto.ScenarioResponse {
	return &dto.ScenarioResponse{
		Id:                  s.Id,
		Category:            s.Category,
		Situation:           s.Situation,
		Keywords:            s.Keywords,
		TherapeuticApproach: s.TherapeuticApproach,
		CounselorResponse:   s.CounselorResponse,
		Techniques:          s.Techniques,
		FollowUpQuestions:   s.FollowUpQuestions,
		TherapeuticGoals:    s.TherapeuticGoals,
		Severity:            s.Severity,
	}
}

func splitAndTrim(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
