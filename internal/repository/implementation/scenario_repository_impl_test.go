package implementation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/repository/contract"
)

const testCorpus = `{
  "metadata": {
    "version": "1.0",
    "created": "2024-01-20",
    "total_scenarios": 2,
    "frameworks": ["gottman_method"],
    "categories": ["communication", "trust"]
  },
  "scenarios": [
    {
      "id": "comm_001",
      "category": "communication",
      "situation": "Partner feels unheard during conversations",
      "keywords": ["unheard", "listening"],
      "therapeutic_approach": "gottman_method",
      "counselor_response": "I can hear the frustration, {partner_name}.",
      "techniques": ["validation"],
      "follow_up_questions": ["What happened?"],
      "therapeutic_goals": ["improve_communication"],
      "severity": "moderate"
    },
    {
      "id": "trust_001",
      "category": "trust",
      "situation": "Trust has been broken",
      "keywords": ["trust", "betrayal"],
      "therapeutic_approach": "gottman_method",
      "counselor_response": "Rebuilding trust is possible.",
      "techniques": [],
      "follow_up_questions": [],
      "therapeutic_goals": [],
      "severity": "high"
    }
  ]
}`

func writeTestCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(testCorpus), 0644))
	return path
}

func TestScenarioFileRepositoryLoadAll(t *testing.T) {
	repo := NewScenarioFileRepository(writeTestCorpus(t))

	scenarios, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "comm_001", scenarios[0].Id)
	assert.Equal(t, "Partner feels unheard during conversations", scenarios[0].Situation)
	assert.Equal(t, []string{"unheard", "listening"}, scenarios[0].Keywords)
	assert.Equal(t, "gottman_method", scenarios[0].TherapeuticApproach)
	assert.Equal(t, "high", scenarios[1].Severity)
}

func TestScenarioFileRepositoryLoadMissingFile(t *testing.T) {
	repo := NewScenarioFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	_, err := repo.LoadAll(context.Background())
	assert.Error(t, err)
}

func TestScenarioFileRepositoryAppendPersists(t *testing.T) {
	path := writeTestCorpus(t)
	repo := NewScenarioFileRepository(path)

	err := repo.Append(context.Background(), &entity.Scenario{
		Id:                "custom_001",
		Category:          "finances",
		Situation:         "Arguments about money",
		Keywords:          []string{"money"},
		CounselorResponse: "Money conflicts are common.",
		Severity:          "moderate",
	})
	require.NoError(t, err)

	// A fresh repository instance must see the appended scenario.
	fresh := NewScenarioFileRepository(path)
	scenarios, err := fresh.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "custom_001", scenarios[2].Id)
}

func TestScenarioFileRepositoryAppendDuplicateId(t *testing.T) {
	repo := NewScenarioFileRepository(writeTestCorpus(t))

	err := repo.Append(context.Background(), &entity.Scenario{
		Id:                "comm_001",
		Situation:         "Anything",
		CounselorResponse: "Anything",
	})
	assert.True(t, errors.Is(err, contract.ErrDuplicateScenarioId))

	scenarios, loadErr := repo.LoadAll(context.Background())
	require.NoError(t, loadErr)
	assert.Len(t, scenarios, 2, "failed append must not change the corpus")
}

func TestScenarioFileRepositoryAppendIncomplete(t *testing.T) {
	repo := NewScenarioFileRepository(writeTestCorpus(t))

	err := repo.Append(context.Background(), &entity.Scenario{Id: "x_001"})
	assert.True(t, errors.Is(err, contract.ErrIncompleteScenario))
}

func TestScenarioFileRepositoryNoTempFileLeftBehind(t *testing.T) {
	path := writeTestCorpus(t)
	repo := NewScenarioFileRepository(path)

	err := repo.Append(context.Background(), &entity.Scenario{
		Id:                "custom_002",
		Situation:         "Something",
		CounselorResponse: "Something",
	})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(path), ".corpus.tmp"))
	assert.True(t, os.IsNotExist(statErr), "temp file should be renamed away")
}
