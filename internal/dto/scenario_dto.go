package dto

// AddScenarioRequest is the admin scenario editor submission. List fields
// arrive as free text: keywords/techniques/goals comma-separated, follow-up
// questions newline-separated.
type AddScenarioRequest struct {
	Id                  string `json:"id"`
	Category            string `json:"category" validate:"required,oneof=communication conflict_resolution intimacy trust parenting finances in_laws life_transitions"`
	Situation           string `json:"situation" validate:"required"`
	Keywords            string `json:"keywords" validate:"required"`
	TherapeuticApproach string `json:"therapeutic_approach"`
	CounselorResponse   string `json:"counselor_response" validate:"required"`
	Techniques          string `json:"techniques"`
	FollowUpQuestions   string `json:"follow_up_questions"`
	TherapeuticGoals    string `json:"therapeutic_goals"`
	Severity            string `json:"severity" validate:"required,oneof=low moderate high"`
}

type AddScenarioResponse struct {
	Id string `json:"id"`
}

// ScenarioResponse mirrors the corpus wire schema.
type ScenarioResponse struct {
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
