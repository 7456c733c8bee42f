package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// NormalizeQuestions turns a stored question list into structured questions.
//
// Lists come in two shapes. Structured lists hold question objects and are
// recognised by an "id" field on the first element; they are returned as is.
// Anything else is a legacy list of plain prompts, and each element becomes a
// text question with id "q-<index>" worth one point, in the original order.
//
// A structured element that fails to decode is dropped from the result, so the
// returned list can be shorter than the input. Callers that read stored lists
// should compare lengths and report the loss.
func NormalizeQuestions(items []json.RawMessage) []Question {
	questions := make([]Question, 0, len(items))
	if len(items) == 0 {
		return questions
	}

	if isStructured(items[0]) {
		for _, item := range items {
			var q Question
			if err := json.Unmarshal(item, &q); err != nil {
				continue
			}
			questions = append(questions, q)
		}
		return questions
	}

	for i, item := range items {
		questions = append(questions, Question{
			ID:     fmt.Sprintf("q-%d", i),
			Text:   gjson.ParseBytes(item).String(),
			Type:   QuestionTypeText,
			Points: 1,
		})
	}
	return questions
}

// NormalizeQuestionsJSON decodes a JSON array and normalizes its elements.
// Empty input and JSON null both yield an empty list.
func NormalizeQuestionsJSON(raw []byte) ([]Question, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []Question{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("scoring: question list is not valid JSON")
	}
	parsed := gjson.ParseBytes(raw)
	if parsed.Type == gjson.Null {
		return []Question{}, nil
	}
	if !parsed.IsArray() {
		return nil, fmt.Errorf("scoring: question list must be a JSON array")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("scoring: decode question list: %w", err)
	}
	return NormalizeQuestions(items), nil
}

func isStructured(item json.RawMessage) bool {
	parsed := gjson.ParseBytes(item)
	return parsed.IsObject() && parsed.Get("id").Exists()
}
