package prompt

import (
	"strings"
	"testing"

	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/entity"
	"ai-counseling-be/pkg/analysis"
)

func TestBuildWithFullProfile(t *testing.T) {
	score := 0.73
	builder := NewContextualBuilder(
		&dto.UserProfile{
			FirstName:          "Sarah",
			PartnerName:        "James",
			RelationshipStatus: "married",
			MainChallenges:     []string{"communication", "finances"},
		},
		analysis.Result{
			Sentiment:      "negative",
			KeyTopics:      []string{"communication"},
			ConcernLevel:   "moderate",
			EmotionalState: []string{"stressed"},
		},
		&score,
		[]*entity.Scenario{
			{Situation: "Partner feels unheard during conversations"},
			{Situation: "Couple argues frequently over small things"},
		},
	)

	got := builder.Build()

	wantFragments := []string{
		"- Name: Sarah",
		"- Partner: James",
		"- Relationship Status: married",
		"- Main Challenges: communication, finances",
		"- Sentiment: negative",
		"- Concern Level: moderate",
		"- Predicted Divorce Risk Score: 0.73",
		"Relevant Scenarios: Partner feels unheard during conversations; Couple argues frequently over small things",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("prompt missing fragment %q", frag)
		}
	}
}

func TestBuildWithEmptyProfile(t *testing.T) {
	builder := NewContextualBuilder(nil, analysis.Result{Sentiment: "neutral"}, nil, nil)

	got := builder.Build()

	if !strings.Contains(got, "- Name: User") {
		t.Error("nil profile should default the name to User")
	}
	if !strings.Contains(got, "- Partner: their partner") {
		t.Error("nil profile should default the partner to their partner")
	}
	if strings.Contains(got, "Predicted Divorce Risk Score") {
		t.Error("nil prediction score should omit the risk line")
	}
}

func TestBuildEndsWithInstruction(t *testing.T) {
	builder := NewContextualBuilder(nil, analysis.Result{}, nil, nil)

	got := builder.Build()
	if !strings.HasSuffix(got, "Please provide a personalized, empathetic response that addresses their specific situation and emotional state.") {
		t.Error("prompt should end with the response instruction")
	}
}
