package retrieval

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"ai-counseling-be/internal/entity"
)

type stubScenarioRepo struct {
	scenarios []*entity.Scenario
	loadErr   error
}

func (r *stubScenarioRepo) LoadAll(ctx context.Context) ([]*entity.Scenario, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.scenarios, nil
}

func (r *stubScenarioRepo) Append(ctx context.Context, scenario *entity.Scenario) error {
	r.scenarios = append(r.scenarios, scenario)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func TestFindRelevantScenariosDeterminism(t *testing.T) {
	repo := &stubScenarioRepo{scenarios: selectorCorpus()}
	engine := NewEngine(repo, noopLogger{})

	first := engine.FindRelevantScenarios(context.Background(), "arguing about money and trust", 3)
	for i := 0; i < 10; i++ {
		again := engine.FindRelevantScenarios(context.Background(), "arguing about money and trust", 3)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("retrieval is not deterministic: run %d differs", i)
		}
	}
}

func TestFindRelevantScenariosEmptyCorpus(t *testing.T) {
	engine := NewEngine(&stubScenarioRepo{}, noopLogger{})

	got := engine.FindRelevantScenarios(context.Background(), "anything", 3)
	if len(got) != 0 {
		t.Errorf("empty corpus returned %d scenarios, want 0", len(got))
	}
}

func TestFindRelevantScenariosLoadFailureDegrades(t *testing.T) {
	repo := &stubScenarioRepo{loadErr: errors.New("disk gone")}
	engine := NewEngine(repo, noopLogger{})

	got := engine.FindRelevantScenarios(context.Background(), "anything", 3)
	if got == nil {
		t.Fatal("load failure returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("load failure returned %d scenarios, want 0", len(got))
	}
}
