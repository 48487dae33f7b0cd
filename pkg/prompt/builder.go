package prompt

import (
	"fmt"
	"strings"

	"ai-counseling-be/internal/constant"
	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/entity"
	"ai-counseling-be/pkg/analysis"
)

// ContextualBuilder assembles the enhanced system prompt for one message:
// base counselor prompt, user context, message analysis, optional prediction
// score and the retrieved scenarios as grounding context.
type ContextualBuilder struct {
	profile         *dto.UserProfile
	analysisResult  analysis.Result
	predictionScore *float64
	scenarios       []*entity.Scenario
}

func NewContextualBuilder(
	profile *dto.UserProfile,
	analysisResult analysis.Result,
	predictionScore *float64,
	scenarios []*entity.Scenario,
) *ContextualBuilder {
	return &ContextualBuilder{
		profile:         profile,
		analysisResult:  analysisResult,
		predictionScore: predictionScore,
		scenarios:       scenarios,
	}
}

func (b *ContextualBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString(constant.CounselorSystemPromptV1)
	prompt.WriteString("\n\n")

	b.writeUserContext(&prompt)
	b.writeAnalysis(&prompt)
	b.writeGroundingScenarios(&prompt)

	prompt.WriteString("Please provide a personalized, empathetic response that addresses their specific situation and emotional state.")

	return prompt.String()
}

func (b *ContextualBuilder) writeUserContext(prompt *strings.Builder) {
	firstName := "User"
	partnerName := "their partner"
	relationshipStatus := "not specified"
	mainChallenges := "not specified"

	if b.profile != nil {
		if b.profile.FirstName != "" {
			firstName = b.profile.FirstName
		}
		if b.profile.PartnerName != "" {
			partnerName = b.profile.PartnerName
		}
		if b.profile.RelationshipStatus != "" {
			relationshipStatus = b.profile.RelationshipStatus
		}
		if len(b.profile.MainChallenges) > 0 {
			mainChallenges = strings.Join(b.profile.MainChallenges, ", ")
		}
	}

	prompt.WriteString("User Context:\n")
	prompt.WriteString("- Name: " + firstName + "\n")
	prompt.WriteString("- Partner: " + partnerName + "\n")
	prompt.WriteString("- Relationship Status: " + relationshipStatus + "\n")
	prompt.WriteString("- Main Challenges: " + mainChallenges + "\n\n")
}

func (b *ContextualBuilder) writeAnalysis(prompt *strings.Builder) {
	prompt.WriteString("Current Analysis:\n")
	prompt.WriteString("- Sentiment: " + b.analysisResult.Sentiment + "\n")
	prompt.WriteString("- Key Topics: " + strings.Join(b.analysisResult.KeyTopics, ", ") + "\n")
	prompt.WriteString("- Concern Level: " + b.analysisResult.ConcernLevel + "\n")
	prompt.WriteString("- Emotional State: " + strings.Join(b.analysisResult.EmotionalState, ", ") + "\n")

	if b.predictionScore != nil {
		prompt.WriteString(fmt.Sprintf(
			"- Predicted Divorce Risk Score: %.2f. A higher score indicates a higher probability of divorce based on the provided factors. Use this score to inform the level of concern and directness in your counseling.\n",
			*b.predictionScore,
		))
	}
	prompt.WriteString("\n")
}

func (b *ContextualBuilder) writeGroundingScenarios(prompt *strings.Builder) {
	situations := make([]string, 0, len(b.scenarios))
	for _, s := range b.scenarios {
		situations = append(situations, s.Situation)
	}

	prompt.WriteString("Relevant Scenarios: " + strings.Join(situations, "; ") + "\n\n")
}
