package retrieval

import (
	"sort"

	"ai-counseling-be/internal/entity"
)

// SelectTopK ranks the corpus by descending score and returns the best k
// scenarios. The sort is stable: scenarios with equal scores keep their
// corpus order, so an all-zero result deterministically surfaces the
// earliest-authored scenarios first. Zero-score scenarios are not filtered
// out; whether a zero-score match is usable is the caller's policy.
func SelectTopK(message string, scenarios []*entity.Scenario, k int) []*entity.Scenario {
	scored := ScoreAll(message, scenarios)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < 0 {
		k = 0
	}
	if k > len(scored) {
		k = len(scored)
	}

	result := make([]*entity.Scenario, 0, k)
	for _, s := range scored[:k] {
		result = append(result, s.Scenario)
	}
	return result
}
