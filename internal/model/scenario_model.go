package model

// Scenario mirrors the JSON schema of the corpus dataset file.
// Field names must stay byte-compatible with existing corpus files.
type Scenario struct {
	Id                  string   `json:"id"`
	Category            string   `json:"category"`
	Situation           string   `json:"situation"`
	Keywords            []string `json:"keywords"`
	TherapeuticApproach string   `json:"therapeutic_approach"`
	CounselorResponse   string   `json:"counselor_response"`
	Techniques          []string `json:"techniques"`
	FollowUpQuestions   []string `json:"follow_up_questions"`
	TherapeuticGoals    []string `json:"therapeutic_goals"`
	Severity            string   `json:"severity"`
}

// CorpusMetadata is the descriptive header block of the dataset file.
type CorpusMetadata struct {
	Version        string   `json:"version"`
	Created        string   `json:"created"`
	TotalScenarios int      `json:"total_scenarios"`
	Frameworks     []string `json:"frameworks"`
	Categories     []string `json:"categories"`
}

// CorpusDocument is the full on-disk shape of the dataset file.
type CorpusDocument struct {
	Metadata  CorpusMetadata `json:"metadata"`
	Scenarios []Scenario     `json:"scenarios"`
}
