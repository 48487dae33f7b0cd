package contract

import (
	"context"
	"errors"

	"ai-counseling-be/internal/entity"
)

var (
	// ErrDuplicateScenarioId is returned when appending a scenario whose id
	// already exists in the corpus.
	ErrDuplicateScenarioId = errors.New("scenario id already exists")

	// ErrIncompleteScenario is returned when a scenario is missing required
	// fields (counselor response or situation).
	ErrIncompleteScenario = errors.New("scenario is missing required fields")
)

// ScenarioRepository abstracts the corpus backing store.
type ScenarioRepository interface {
	// LoadAll returns every scenario currently known, in load order.
	LoadAll(ctx context.Context) ([]*entity.Scenario, error)

	// Append adds one scenario. The scenario must either be fully visible
	// afterwards or the corpus left unchanged.
	Append(ctx context.Context, scenario *entity.Scenario) error
}
