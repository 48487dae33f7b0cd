package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/model"
	"ai-counseling-be/internal/repository/contract"
)

type scenarioFileRepository struct {
	filePath string
	mu       sync.Mutex
}

// NewScenarioFileRepository stores the corpus as a single JSON document.
// The document schema is byte-compatible with the original counseling
// dataset files (metadata + scenarios, snake_case field names).
func NewScenarioFileRepository(filePath string) contract.ScenarioRepository {
	return &scenarioFileRepository{filePath: filePath}
}

func (r *scenarioFileRepository) LoadAll(ctx context.Context) ([]*entity.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.readDocument()
	if err != nil {
		return nil, err
	}

	scenarios := make([]*entity.Scenario, 0, len(doc.Scenarios))
	for i := range doc.Scenarios {
		scenarios = append(scenarios, scenarioModelToEntity(&doc.Scenarios[i]))
	}
	return scenarios, nil
}

func (r *scenarioFileRepository) Append(ctx context.Context, scenario *entity.Scenario) error {
	if scenario.CounselorResponse == "" || scenario.Situation == "" {
		return contract.ErrIncompleteScenario
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.readDocument()
	if err != nil {
		return fmt.Errorf("read corpus before append: %w", err)
	}

	for i := range doc.Scenarios {
		if doc.Scenarios[i].Id == scenario.Id {
			return contract.ErrDuplicateScenarioId
		}
	}

	doc.Scenarios = append(doc.Scenarios, *scenarioEntityToModel(scenario))
	doc.Metadata.TotalScenarios = len(doc.Scenarios)

	return r.writeDocument(doc)
}

func (r *scenarioFileRepository) readDocument() (*model.CorpusDocument, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, err
	}

	var doc model.CorpusDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", r.filePath, err)
	}
	return &doc, nil
}

// writeDocument writes to a temp file and renames so a crash mid-write can
// never leave a half-written corpus behind.
func (r *scenarioFileRepository) writeDocument(doc *model.CorpusDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := filepath.Join(filepath.Dir(r.filePath), ".corpus.tmp")
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, r.filePath)
}

func scenarioModelToEntity(m *model.Scenario) *entity.Scenario {
	return &entity.Scenario{
		Id:                  m.Id,
		Category:            m.Category,
		Situation:           m.Situation,
		Keywords:            m.Keywords,
		TherapeuticApproach: m.TherapeuticApproach,
		CounselorResponse:   m.CounselorResponse,
		Techniques:          m.Techniques,
		FollowUpQuestions:   m.FollowUpQuestions,
		TherapeuticGoals:    m.TherapeuticGoals,
		Severity:            m.Severity,
	}
}

func scenarioEntityToModel(e *entity.Scenario) *model.Scenario {
	return &model.Scenario{
		Id:                  e.Id,
		Category:            e.Category,
		Situation:           e.Situation,
		Keywords:            e.Keywords,
		TherapeuticApproach: e.TherapeuticApproach,
		CounselorResponse:   e.CounselorResponse,
		Techniques:          e.Techniques,
		FollowUpQuestions:   e.FollowUpQuestions,
		TherapeuticGoals:    e.TherapeuticGoals,
		Severity:            e.Severity,
	}
}
