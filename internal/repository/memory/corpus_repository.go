package memory

import (
	"context"
	"sync"

	"github.com/patrickmn/go-cache"

	"ai-counseling-be/internal/entity"
	"ai-counseling-be/internal/pkg/logger"
	"ai-counseling-be/internal/repository/contract"
)

const corpusKey = "corpus"

// CorpusRepository decorates a ScenarioRepository with a process-wide cache.
// The corpus is loaded lazily on first access and kept for the process
// lifetime; there is no expiry or invalidation, restarting the process is
// the only way to pick up external changes to the backing store.
type CorpusRepository struct {
	inner  contract.ScenarioRepository
	cache  *cache.Cache
	logger logger.ILogger

	// mu serializes mutations and cache population. A lost update on
	// concurrent appends would silently drop an admin-submitted scenario.
	mu sync.Mutex
}

func NewCorpusRepository(inner contract.ScenarioRepository, logger logger.ILogger) *CorpusRepository {
	return &CorpusRepository{
		inner:  inner,
		cache:  cache.New(cache.NoExpiration, cache.NoExpiration),
		logger: logger,
	}
}

func (r *CorpusRepository) LoadAll(ctx context.Context) ([]*entity.Scenario, error) {
	if x, found := r.cache.Get(corpusKey); found {
		return x.([]*entity.Scenario), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

// loadLocked populates the cache from the backing store. Callers hold mu.
func (r *CorpusRepository) loadLocked(ctx context.Context) ([]*entity.Scenario, error) {
	if x, found := r.cache.Get(corpusKey); found {
		return x.([]*entity.Scenario), nil
	}

	scenarios, err := r.inner.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.Set(corpusKey, scenarios, cache.NoExpiration)
	return scenarios, nil
}

// Append validates against the live corpus, makes the scenario visible to
// subsequent queries immediately, and writes through to the backing store
// best-effort. A write-through failure is logged, never surfaced: the
// scenario stays live for this process.
func (r *CorpusRepository) Append(ctx context.Context, scenario *entity.Scenario) error {
	if scenario.CounselorResponse == "" || scenario.Situation == "" {
		return contract.ErrIncompleteScenario
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	corpus, err := r.loadLocked(ctx)
	if err != nil {
		// Unreadable store degrades to an empty corpus for queries; an
		// admin append still proceeds so the scenario is usable now.
		r.logger.Warn("CORPUS", "Backing store unreadable on append, starting from empty corpus", map[string]interface{}{
			"error": err.Error(),
		})
		corpus = []*entity.Scenario{}
	}

	for _, existing := range corpus {
		if existing.Id == scenario.Id {
			return contract.ErrDuplicateScenarioId
		}
	}

	// Copy-on-write so in-flight readers keep a consistent snapshot.
	updated := make([]*entity.Scenario, len(corpus), len(corpus)+1)
	copy(updated, corpus)
	updated = append(updated, scenario)
	r.cache.Set(corpusKey, updated, cache.NoExpiration)

	if err := r.inner.Append(ctx, scenario); err != nil {
		r.logger.Error("CORPUS", "Failed to persist scenario to backing store", map[string]interface{}{
			"scenario_id": scenario.Id,
			"error":       err.Error(),
		})
	}

	return nil
}
