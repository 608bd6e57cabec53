package excuse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

const systemPrompt = "You are an expert at creating believable, helpful excuses for people who need to safely exit uncomfortable social situations. Your responses help people prioritize their safety and comfort."

var categoryPrompts = map[domain.Category]string{
	domain.CategoryWork:      "a work-related emergency that requires immediate attention",
	domain.CategoryFamily:    "a family emergency or urgent family matter",
	domain.CategoryHealth:    "a health concern or medical issue",
	domain.CategoryTransport: "a transportation problem or vehicle issue",
}

var tonePrompts = map[domain.Tone]string{
	domain.ToneFriendly: "polite, apologetic, and understanding tone",
	domain.ToneUrgent:   "urgent and serious tone that conveys real emergency",
	domain.ToneSubtle:   "casual and understated tone that doesn't draw attention",
}

const (
	defaultCategoryPrompt = "an emergency situation"
	defaultTonePrompt     = "polite"
)

// buildPrompt renders the user prompt for a category and tone. Unknown
// values fall back to generic wording.
func buildPrompt(category domain.Category, tone domain.Tone) string {
	situation, ok := categoryPrompts[category]
	if !ok {
		situation = defaultCategoryPrompt
	}
	style, ok := tonePrompts[tone]
	if !ok {
		style = defaultTonePrompt
	}

	return fmt.Sprintf(`Generate a believable excuse for leaving a social situation immediately.

Context: The person needs to leave because of %s.
Tone: Use a %s.

Requirements:
- Keep it under 50 words
- Make it sound natural and conversational
- Include enough detail to be believable but not overly specific
- Suitable for texting or speaking aloud
- Should feel authentic and not rehearsed

Respond with JSON in this exact format:
{
  "excuse": "the generated excuse text",
  "believability": number between 1-10 indicating how believable this excuse sounds
}`, situation, style)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

type modelReply struct {
	Excuse        string          `json:"excuse"`
	Believability json.RawMessage `json:"believability"`
}

// parseReply turns a model reply into excuse text and a clamped
// believability score.
func parseReply(raw string) (string, int, error) {
	obj, err := extractJSON(raw)
	if err != nil {
		return "", 0, err
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(obj), &reply); err != nil {
		return "", 0, fmt.Errorf("decode reply: %w", err)
	}

	text := strings.TrimSpace(reply.Excuse)
	if text == "" {
		return "", 0, fmt.Errorf("reply has no excuse")
	}

	return text, believabilityOf(reply.Believability), nil
}

// believabilityOf rounds and clamps a numeric score given as a JSON number
// or numeric string. Out-of-range magnitudes clamp. Missing or non-numeric
// values score DefaultBelievability.
func believabilityOf(raw json.RawMessage) int {
	var s string
	switch {
	case len(raw) == 0:
		return domain.DefaultBelievability
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &s); err != nil {
			return domain.DefaultBelievability
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return domain.DefaultBelievability
		}
		s = n.String()
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return domain.DefaultBelievability
	}
	if math.IsNaN(f) {
		return domain.DefaultBelievability
	}

	switch {
	case f >= domain.MaxBelievability:
		return domain.MaxBelievability
	case f <= domain.MinBelievability:
		return domain.MinBelievability
	}
	return domain.ClampBelievability(int(math.Round(f)))
}
