// Package analysis produces a lightweight keyword-based annotation of an
// incoming user message: sentiment, key topics, concern level and emotional
// state. The retrieval engine never consumes this; it only informs the LLM
// prompt and the analytics trail.
package analysis

import "strings"

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"

	ConcernLow      = "low"
	ConcernModerate = "moderate"
	ConcernHigh     = "high"
)

var positiveWords = []string{"happy", "good", "better", "love", "great", "wonderful", "amazing", "grateful"}

var negativeWords = []string{"sad", "angry", "frustrated", "hurt", "terrible", "awful", "hate", "upset"}

var topicKeywords = map[string][]string{
	"communication": {"talk", "listen", "communicate", "conversation", "discuss"},
	"conflict":      {"fight", "argue", "conflict", "disagreement", "tension"},
	"intimacy":      {"intimate", "close", "connection", "physical", "emotional"},
	"trust":         {"trust", "honest", "lie", "secret", "faithful"},
	"parenting":     {"children", "kids", "parenting", "family", "child"},
}

// topicOrder keeps the annotation deterministic; map iteration is not.
var topicOrder = []string{"communication", "conflict", "intimacy", "trust", "parenting"}

var concernIndicators = []string{"crisis", "emergency", "desperate", "can't take", "breaking up", "divorce"}

// Result is the annotation for one message.
type Result struct {
	Sentiment          string   `json:"sentiment"`
	EmotionalState     []string `json:"emotional_state"`
	KeyTopics          []string `json:"key_topics"`
	ConcernLevel       string   `json:"concern_level"`
	ProgressIndicators []string `json:"progress_indicators"`
	Recommendations    []string `json:"recommendations"`
}

// Analyze annotates a user message. Pure function, substring matching on the
// lower-cased message throughout.
func Analyze(message string) Result {
	lower := strings.ToLower(message)

	positiveCount := countContained(lower, positiveWords)
	negativeCount := countContained(lower, negativeWords)

	sentiment := SentimentNeutral
	if positiveCount > negativeCount {
		sentiment = SentimentPositive
	} else if negativeCount > positiveCount {
		sentiment = SentimentNegative
	}

	keyTopics := make([]string, 0)
	for _, topic := range topicOrder {
		for _, keyword := range topicKeywords[topic] {
			if strings.Contains(lower, keyword) {
				keyTopics = append(keyTopics, topic)
				break
			}
		}
	}

	concernLevel := ConcernLow
	if containsAny(lower, concernIndicators) {
		concernLevel = ConcernHigh
	} else if len(keyTopics) > 2 {
		concernLevel = ConcernModerate
	}

	emotionalState := make([]string, 0)
	if strings.Contains(lower, "stress") || strings.Contains(lower, "overwhelm") {
		emotionalState = append(emotionalState, "stressed")
	}
	if strings.Contains(lower, "confus") || strings.Contains(lower, "unsure") {
		emotionalState = append(emotionalState, "confused")
	}
	if strings.Contains(lower, "hope") || strings.Contains(lower, "optimis") {
		emotionalState = append(emotionalState, "hopeful")
	}
	if strings.Contains(lower, "fear") || strings.Contains(lower, "afraid") {
		emotionalState = append(emotionalState, "fearful")
	}

	progressIndicators := make([]string, 0)
	if sentiment == SentimentPositive {
		progressIndicators = append(progressIndicators, "positive_communication")
	}

	recommendations := make([]string, 0, len(keyTopics))
	for _, topic := range keyTopics {
		recommendations = append(recommendations, "Focus on "+topic+" improvement")
	}

	return Result{
		Sentiment:          sentiment,
		EmotionalState:     emotionalState,
		KeyTopics:          keyTopics,
		ConcernLevel:       concernLevel,
		ProgressIndicators: progressIndicators,
		Recommendations:    recommendations,
	}
}

func countContained(message string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(message, w) {
			count++
		}
	}
	return count
}

func containsAny(message string, words []string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}
