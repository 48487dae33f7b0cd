package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/repository/contract"
)

type countingRepo struct {
	scenarios []*entity.Scenario
	loadCalls int
	loadErr   error
	appendErr error
}

func (r *countingRepo) LoadAll(ctx context.Context) ([]*entity.Scenario, error) {
	r.loadCalls++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.scenarios, nil
}

func (r *countingRepo) Append(ctx context.Context, scenario *entity.Scenario) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.scenarios = append(r.scenarios, scenario)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func seedScenarios() []*entity.Scenario {
	return []*entity.Scenario{
		{Id: "comm_001", Situation: "Partner feels unheard", CounselorResponse: "r1"},
		{Id: "trust_001", Situation: "Trust broken", CounselorResponse: "r2"},
	}
}

func TestCorpusRepositoryCachesLoad(t *testing.T) {
	inner := &countingRepo{scenarios: seedScenarios()}
	repo := NewCorpusRepository(inner, noopLogger{})

	for i := 0; i < 5; i++ {
		scenarios, err := repo.LoadAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, scenarios, 2)
	}

	assert.Equal(t, 1, inner.loadCalls, "backing store should be read once")
}

func TestCorpusRepositoryAppendVisibleImmediately(t *testing.T) {
	inner := &countingRepo{scenarios: seedScenarios()}
	repo := NewCorpusRepository(inner, noopLogger{})

	err := repo.Append(context.Background(), &entity.Scenario{
		Id: "custom_001", Situation: "New situation", CounselorResponse: "r3",
	})
	require.NoError(t, err)

	scenarios, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "custom_001", scenarios[2].Id)
}

func TestCorpusRepositoryAppendDuplicateId(t *testing.T) {
	inner := &countingRepo{scenarios: seedScenarios()}
	repo := NewCorpusRepository(inner, noopLogger{})

	err := repo.Append(context.Background(), &entity.Scenario{
		Id: "comm_001", Situation: "dup", CounselorResponse: "dup",
	})
	assert.True(t, errors.Is(err, contract.ErrDuplicateScenarioId))

	scenarios, loadErr := repo.LoadAll(context.Background())
	require.NoError(t, loadErr)
	assert.Len(t, scenarios, 2, "failed append must not grow the corpus")
}

func TestCorpusRepositoryAppendIncomplete(t *testing.T) {
	repo := NewCorpusRepository(&countingRepo{}, noopLogger{})

	err := repo.Append(context.Background(), &entity.Scenario{Id: "x"})
	assert.True(t, errors.Is(err, contract.ErrIncompleteScenario))
}

func TestCorpusRepositoryAppendSurvivesWriteThroughFailure(t *testing.T) {
	inner := &countingRepo{scenarios: seedScenarios(), appendErr: errors.New("disk full")}
	repo := NewCorpusRepository(inner, noopLogger{})

	err := repo.Append(context.Background(), &entity.Scenario{
		Id: "custom_001", Situation: "New", CounselorResponse: "r",
	})
	require.NoError(t, err, "write-through failure must not surface")

	scenarios, loadErr := repo.LoadAll(context.Background())
	require.NoError(t, loadErr)
	assert.Len(t, scenarios, 3, "scenario stays live in the cache")
}

func TestCorpusRepositoryAppendOnUnreadableStore(t *testing.T) {
	inner := &countingRepo{loadErr: errors.New("corrupt file")}
	repo := NewCorpusRepository(inner, noopLogger{})

	err := repo.Append(context.Background(), &entity.Scenario{
		Id: "custom_001", Situation: "New", CounselorResponse: "r",
	})
	require.NoError(t, err)

	scenarios, loadErr := repo.LoadAll(context.Background())
	require.NoError(t, loadErr)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "custom_001", scenarios[0].Id)
}

func TestCorpusRepositoryReaderSnapshotUnchanged(t *testing.T) {
	inner := &countingRepo{scenarios: seedScenarios()}
	repo := NewCorpusRepository(inner, noopLogger{})

	before, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, repo.Append(context.Background(), &entity.Scenario{
		Id: "custom_001", Situation: "New", CounselorResponse: "r",
	}))

	// The slice handed out before the append must not have grown.
	assert.Len(t, before, 2)
}
