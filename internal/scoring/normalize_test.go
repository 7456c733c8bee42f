package scoring

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawItems(t *testing.T, items ...any) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		b, err := json.Marshal(item)
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

// TestNormalizeQuestions_Legacy verifies that plain prompts become one-point
// text questions with positional ids, in their original order.
func TestNormalizeQuestions_Legacy(t *testing.T) {
	prompts := []any{"Tell me about yourself", "Why this company?", "Describe a conflict"}

	got := NormalizeQuestions(rawItems(t, prompts...))

	require.Len(t, got, len(prompts))
	for i, q := range got {
		assert.Equal(t, fmt.Sprintf("q-%d", i), q.ID)
		assert.Equal(t, prompts[i], q.Text)
		assert.Equal(t, QuestionTypeText, q.Type)
		assert.Equal(t, 1, q.Points)
	}
}

func TestNormalizeQuestions_StructuredIsIdentity(t *testing.T) {
	correct := IndexValue(1)
	structured := []Question{
		{ID: "apt-1", Text: "2 + 2?", Type: QuestionTypeMCQ, Options: []string{"3", "4"}, CorrectAnswer: &correct, Points: 2},
		{ID: "apt-2", Text: "Explain recursion", Type: QuestionTypeText, Difficulty: DifficultyEasy, Points: 1},
		{ID: "code-1", Text: "Reverse a string", Type: QuestionTypeCode, TestCases: []TestCase{{Input: "ab", ExpectedOutput: "ba"}}, Points: 3},
	}
	items := make([]any, 0, len(structured))
	for _, q := range structured {
		items = append(items, q)
	}

	got := NormalizeQuestions(rawItems(t, items...))

	assert.Equal(t, structured, got)
}

func TestNormalizeQuestions_Empty(t *testing.T) {
	assert.Empty(t, NormalizeQuestions(nil))
	assert.NotNil(t, NormalizeQuestions(nil))
}

// TestNormalizeQuestions_FirstElementDecides checks that the shape of the
// first element alone selects the interpretation of the whole list.
func TestNormalizeQuestions_FirstElementDecides(t *testing.T) {
	got := NormalizeQuestions(rawItems(t, map[string]any{"text": "no id here"}, "plain"))

	require.Len(t, got, 2)
	assert.Equal(t, "q-0", got[0].ID)
	assert.Equal(t, "q-1", got[1].ID)
	assert.Equal(t, "plain", got[1].Text)
}

func TestNormalizeQuestions_UndecodableElementIsDropped(t *testing.T) {
	got := NormalizeQuestions(rawItems(t,
		map[string]any{"id": "q1", "text": "first", "type": "text"},
		map[string]any{"id": 7, "text": "numeric id"},
		map[string]any{"id": "q3", "text": "third", "type": "text"},
	))

	require.Len(t, got, 2)
	assert.Equal(t, "q1", got[0].ID)
	assert.Equal(t, "q3", got[1].ID)
}

func TestNormalizeQuestionsJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIDs []string
		wantErr bool
	}{
		{name: "empty input", raw: "", wantIDs: []string{}},
		{name: "json null", raw: "null", wantIDs: []string{}},
		{name: "legacy array", raw: `["a","b"]`, wantIDs: []string{"q-0", "q-1"}},
		{name: "structured array", raw: `[{"id":"x","text":"t","type":"text"}]`, wantIDs: []string{"x"}},
		{name: "object is rejected", raw: `{"id":"x"}`, wantErr: true},
		{name: "garbage is rejected", raw: `[1,`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeQuestionsJSON([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestValue_JSON(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`2`), &v))
	idx, ok := v.Index()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	require.NoError(t, json.Unmarshal([]byte(`"Paris"`), &v))
	_, ok = v.Index()
	assert.False(t, ok)
	assert.Equal(t, "Paris", v.Text())

	require.NoError(t, json.Unmarshal([]byte(`1.5`), &v))
	_, ok = v.Index()
	assert.False(t, ok)

	for _, huge := range []string{`1e20`, `-1e20`, `9223372036854775808`} {
		require.NoError(t, json.Unmarshal([]byte(huge), &v), huge)
		_, ok = v.Index()
		assert.False(t, ok, huge)
		assert.Equal(t, huge, v.Text())
	}

	assert.Error(t, json.Unmarshal([]byte(`true`), &v))

	out, err := json.Marshal(IndexValue(3))
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(out))
}
