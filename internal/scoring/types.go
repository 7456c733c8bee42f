// Package scoring holds the pure scoring and feedback roll-up logic used by the
// submission and feedback services. Nothing in this package performs I/O or
// keeps state, so every function is safe to call from concurrent handlers.
package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

type QuestionType string

const (
	QuestionTypeMCQ  QuestionType = "mcq"
	QuestionTypeText QuestionType = "text"
	QuestionTypeCode QuestionType = "code"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Value is a JSON scalar that is either an option index or free text.
// Question keys and user answers both use it.
type Value struct {
	index *int
	text  string
}

func IndexValue(i int) Value {
	return Value{index: &i}
}

func TextValue(s string) Value {
	return Value{text: s}
}

// Index reports the numeric value, if the value was numeric.
func (v Value) Index() (int, bool) {
	if v.index == nil {
		return 0, false
	}
	return *v.index, true
}

func (v Value) Text() string {
	if v.index != nil {
		return strconv.Itoa(*v.index)
	}
	return v.text
}

func (v Value) IsZero() bool {
	return v.index == nil && v.text == ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.index != nil {
		return []byte(strconv.Itoa(*v.index)), nil
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*v = Value{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &v.text)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
			// Fractional or out of range numbers can never match an option index.
			v.text = string(data)
			return nil
		}
		i := int(f)
		v.index = &i
		return nil
	default:
		return fmt.Errorf("scoring: value must be a number or a string, got %s", string(data))
	}
}

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer *Value       `json:"correct_answer,omitempty"`
	TestCases     []TestCase   `json:"test_cases,omitempty"`
	Difficulty    Difficulty   `json:"difficulty,omitempty"`
	Points        int          `json:"points,omitempty"`
}

// Weight is the number of points the question is worth. Unset points count as 1.
func (q Question) Weight() int {
	if q.Points > 0 {
		return q.Points
	}
	return 1
}

// CorrectIndex resolves the canonical option index of an mcq key. A numeric key
// is used as is; a textual key is looked up in Options.
func (q Question) CorrectIndex() (int, bool) {
	if q.CorrectAnswer == nil {
		return 0, false
	}
	if i, ok := q.CorrectAnswer.Index(); ok {
		return i, true
	}
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer.Text() {
			return i, true
		}
	}
	return 0, false
}

type UserAnswer struct {
	QuestionID string   `json:"question_id"`
	Answer     Value    `json:"answer"`
	Code       string   `json:"code,omitempty"`
	Language   string   `json:"language,omitempty"`
	IsCorrect  *bool    `json:"is_correct,omitempty"`
	Score      *float64 `json:"score,omitempty"`
}

type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// Feedback is the graded narrative produced for one round attempt.
type Feedback struct {
	TotalScore          int             `json:"total_score"`
	CategoryScores      []CategoryScore `json:"category_scores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areas_for_improvement"`
	FinalAssessment     string          `json:"final_assessment"`
}

type RoundFeedback struct {
	Feedback
	RoundID   string    `json:"round_id"`
	RoundName string    `json:"round_name"`
	Attempt   int       `json:"attempt"`
	CreatedAt time.Time `json:"created_at"`
}

type RoundScore struct {
	RoundID   string `json:"round_id"`
	RoundName string `json:"round_name"`
	Score     int    `json:"score"`
	Attempt   int    `json:"attempt"`
}

// CumulativeFeedback is a read-time view over a user's latest round feedback
// for one interview. It is never stored.
type CumulativeFeedback struct {
	AverageScore               int          `json:"average_score"`
	RoundScores                []RoundScore `json:"round_scores"`
	CompletedRounds            int          `json:"completed_rounds"`
	TotalRounds                int          `json:"total_rounds"`
	OverallStrengths           []string     `json:"overall_strengths"`
	OverallAreasForImprovement []string     `json:"overall_areas_for_improvement"`
}
