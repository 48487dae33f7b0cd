package entity

// Scenario categories form a closed set; values match the corpus dataset.
const (
	CategoryCommunication      = "communication"
	CategoryConflictResolution = "conflict_resolution"
	CategoryIntimacy           = "intimacy"
	CategoryTrust              = "trust"
	CategoryParenting          = "parenting"
	CategoryFinances           = "finances"
	CategoryInLaws             = "in_laws"
	CategoryLifeTransitions    = "life_transitions"
)

const (
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
)

// Scenario is a single counseling template from the corpus.
type Scenario struct {
	Id                  string
	Category            string
	Situation           string
	Keywords            []string
	TherapeuticApproach string
	CounselorResponse   string
	Techniques          []string
	FollowUpQuestions   []string
	TherapeuticGoals    []string
	Severity            string
}

// ScoredScenario pairs a scenario with its relevance score for one query.
// Never persisted.
type ScoredScenario struct {
	Scenario *Scenario
	Score    int
}
