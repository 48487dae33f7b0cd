package retrieval

import (
	"strings"

	"ai-counseling-be/internal/entity"
)

// Score computes the lexical relevance of one scenario for one query message.
// Deterministic, non-negative; 0 means no overlap detected.
//
// Keywords count double because they are curated signal; situation words are
// a weaker secondary signal. Both checks test substring containment of the
// scenario term inside the lower-cased query, so a keyword that happens to be
// a fragment of a longer query word still counts. Scores are intentionally
// not normalized by keyword count or query length: richer scenarios are
// allowed to surface more often.
func Score(message string, scenario *entity.Scenario) int {
	query := strings.ToLower(message)
	score := 0

	for _, keyword := range scenario.Keywords {
		if strings.Contains(query, strings.ToLower(keyword)) {
			score += 2
		}
	}

	// Situation words of 3 characters or fewer are too common to be signal.
	for _, word := range strings.Fields(strings.ToLower(scenario.Situation)) {
		if len(word) > 3 && strings.Contains(query, word) {
			score++
		}
	}

	return score
}

// ScoreAll scores every scenario in the corpus against the query, preserving
// corpus order.
func ScoreAll(message string, scenarios []*entity.Scenario) []entity.ScoredScenario {
	scored := make([]entity.ScoredScenario, 0, len(scenarios))
	for _, s := range scenarios {
		scored = append(scored, entity.ScoredScenario{
			Scenario: s,
			Score:    Score(message, s),
		})
	}
	return scored
}
