package mapper

import (
	"reflect"
	"strings"
	"testing"

	"ai-counseling-be/internal/dto"
)

func TestAddScenarioRequestToEntity(t *testing.T) {
	req := &dto.AddScenarioRequest{
		Id:                  "custom_test",
		Category:            "communication",
		Situation:           "  Partner feels unheard  ",
		Keywords:            "unheard, listening , ,ignored",
		TherapeuticApproach: "gottman_method",
		CounselorResponse:   "I hear you, {first_name}.",
		Techniques:          "validation,active_listening",
		FollowUpQuestions:   "What happened?\n\nHow did that feel?\n",
		TherapeuticGoals:    "improve_communication",
		Severity:            "moderate",
	}

	got := AddScenarioRequestToEntity(req)

	if got.Id != "custom_test" {
		t.Errorf("Id = %q, want custom_test", got.Id)
	}
	if got.Situation != "Partner feels unheard" {
		t.Errorf("Situation = %q, not trimmed", got.Situation)
	}
	if want := []string{"unheard", "listening", "ignored"}; !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", got.Keywords, want)
	}
	if want := []string{"validation", "active_listening"}; !reflect.DeepEqual(got.Techniques, want) {
		t.Errorf("Techniques = %v, want %v", got.Techniques, want)
	}
	if want := []string{"What happened?", "How did that feel?"}; !reflect.DeepEqual(got.FollowUpQuestions, want) {
		t.Errorf("FollowUpQuestions = %v, want %v", got.FollowUpQuestions, want)
	}
}

func TestAddScenarioRequestGeneratesId(t *testing.T) {
	req := &dto.AddScenarioRequest{
		Category:          "trust",
		Situation:         "Broken promises",
		Keywords:          "promises",
		CounselorResponse: "Let's talk about reliability.",
		Severity:          "low",
	}

	got := AddScenarioRequestToEntity(req)
	if !strings.HasPrefix(got.Id, "custom_") {
		t.Errorf("generated Id = %q, want custom_ prefix", got.Id)
	}
	if len(got.Id) <= len("custom_") {
		t.Errorf("generated Id = %q has no timestamp suffix", got.Id)
	}
}

func TestScenarioEntityToResponseRoundTrip(t *testing.T) {
	req := &dto.AddScenarioRequest{
		Id:                "rt_001",
		Category:          "finances",
		Situation:         "Arguments about money",
		Keywords:          "money,budget",
		CounselorResponse: "Money conflicts are common.",
		Severity:          "moderate",
	}

	res := ScenarioEntityToResponse(AddScenarioRequestToEntity(req))
	if res.Id != "rt_001" || res.Category != "finances" || res.Severity != "moderate" {
		t.Errorf("unexpected response: %+v", res)
	}
	if !reflect.DeepEqual(res.Keywords, []string{"money", "budget"}) {
		t.Errorf("Keywords = %v", res.Keywords)
	}
}
