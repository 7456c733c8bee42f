package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/mockround/config"
	"github.com/lshigami/mockround/internal/metrics"
	"github.com/lshigami/mockround/internal/scoring"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"google.golang.org/api/option"
)

// RoundFeedbackInput is everything the model sees when grading one round attempt.
type RoundFeedbackInput struct {
	Company    string
	Role       string
	RoundName  string
	RoundType  string
	Questions  []scoring.Question
	Answers    []scoring.UserAnswer
	Score      int
	PromptBody string // optional round_feedback prompt template
}

type GeminiLLMService interface {
	GenerateRoundFeedback(ctx context.Context, in RoundFeedbackInput) (*scoring.Feedback, error)
	GenerateQuestions(ctx context.Context, prompt string) ([]scoring.Question, error)
}

type geminiLLMService struct {
	client  *genai.GenerativeModel
	cfg     *config.Config
	metrics *metrics.Metrics
}

func NewGeminiLLMService(cfg *config.Config, m *metrics.Metrics) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, metrics: m}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	model.ResponseMIMEType = "application/json"
	return &geminiLLMService{client: model, cfg: cfg, metrics: m}, nil
}

const feedbackOutputFormat = `
Respond with a single JSON object and nothing else, using exactly these keys:
{
  "total_score": <integer 0-100 reflecting overall performance in this round>,
  "category_scores": [{"name": "<category>", "score": <integer 0-100>, "comment": "<one sentence>"}],
  "strengths": ["<short phrase>", ...],
  "areas_for_improvement": ["<short phrase>", ...],
  "final_assessment": "<two or three sentences addressed to the candidate>"
}
Keep strengths and areas short (under eight words) so they can be merged across rounds.`

const questionOutputFormat = `
Respond with a JSON array and nothing else. Each element must be an object with keys:
"text" (string), "type" ("mcq", "text" or "code"), "options" (array of strings, mcq only),
"correct_answer" (zero-based index of the right option, mcq only),
"test_cases" (array of {"input": string, "expected_output": string}, code only),
"difficulty" ("easy", "medium" or "hard"), "points" (positive integer).`

func (s *geminiLLMService) GenerateRoundFeedback(ctx context.Context, in RoundFeedbackInput) (*scoring.Feedback, error) {
	prompt, err := buildFeedbackPrompt(in)
	if err != nil {
		return nil, err
	}
	raw, err := s.generate(ctx, "round_feedback", prompt)
	if err != nil {
		return nil, err
	}
	feedback, err := parseFeedback(raw)
	if err != nil {
		s.metrics.LLMRequest("round_feedback", "unparseable")
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse round feedback from Gemini response")
		return nil, err
	}
	return feedback, nil
}

func (s *geminiLLMService) GenerateQuestions(ctx context.Context, prompt string) ([]scoring.Question, error) {
	raw, err := s.generate(ctx, "question_generation", prompt+"\n"+questionOutputFormat)
	if err != nil {
		return nil, err
	}
	questions, err := parseGeneratedQuestions(raw)
	if err != nil {
		s.metrics.LLMRequest("question_generation", "unparseable")
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse generated questions from Gemini response")
		return nil, err
	}
	return questions, nil
}

func (s *geminiLLMService) generate(ctx context.Context, operation, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("%w: gemini client not initialized", ErrLLMUnavailable)
	}
	if s.cfg.Gemini.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Gemini.Timeout)
		defer cancel()
	}

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.metrics.LLMRequest(operation, "error")
		log.Error().Err(err).Str("operation", operation).Msg("Gemini API error")
		return "", fmt.Errorf("%w: %s", ErrLLMUnavailable, err.Error())
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		s.metrics.LLMRequest(operation, "empty")
		return "", fmt.Errorf("%w: gemini returned no content", ErrLLMUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		s.metrics.LLMRequest(operation, "empty")
		return "", fmt.Errorf("%w: gemini returned no text content", ErrLLMUnavailable)
	}
	s.metrics.LLMRequest(operation, "ok")
	return sb.String(), nil
}

func buildFeedbackPrompt(in RoundFeedbackInput) (string, error) {
	if in.PromptBody != "" {
		rendered, err := RenderPrompt(in.PromptBody, in)
		if err != nil {
			return "", err
		}
		return rendered + "\n" + feedbackOutputFormat, nil
	}

	answers := make(map[string]scoring.UserAnswer, len(in.Answers))
	for _, a := range in.Answers {
		answers[a.QuestionID] = a
	}

	var b strings.Builder
	b.WriteString("You are an experienced technical interviewer")
	if in.Company != "" {
		fmt.Fprintf(&b, " at %s", in.Company)
	}
	if in.Role != "" {
		fmt.Fprintf(&b, " hiring for the %s role", in.Role)
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Evaluate the candidate's performance in the %q round (type: %s).\n", in.RoundName, in.RoundType)
	fmt.Fprintf(&b, "Automatic checks scored this attempt %d/100; treat that as a signal, not the final grade.\n\n", in.Score)

	for i, q := range in.Questions {
		fmt.Fprintf(&b, "Question %d (%s, %d pts): %s\n", i+1, q.Type, q.Weight(), q.Text)
		if len(q.Options) > 0 {
			fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Options, " | "))
		}
		a, ok := answers[q.ID]
		switch {
		case !ok:
			b.WriteString("Candidate answer: (not answered)\n\n")
		case q.Type == scoring.QuestionTypeCode:
			fmt.Fprintf(&b, "Candidate code (%s):\n---\n%s\n---\n\n", a.Language, a.Code)
		default:
			fmt.Fprintf(&b, "Candidate answer:\n---\n%s\n---\n\n", a.Answer.Text())
		}
	}
	b.WriteString(feedbackOutputFormat)
	return b.String(), nil
}

// extractJSON trims markdown fences and surrounding prose from a model reply.
func extractJSON(raw string, open, close byte) (string, error) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end <= start {
		return "", fmt.Errorf("response does not contain a JSON %c...%c block", open, close)
	}
	body := raw[start : end+1]
	if !gjson.Valid(body) {
		return "", fmt.Errorf("response JSON is malformed")
	}
	return body, nil
}

func firstOf(res gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := res.Get(k); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func stringList(res gjson.Result) []string {
	items := make([]string, 0)
	for _, v := range res.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			items = append(items, s)
		}
	}
	return items
}

func clampScore(v float64) int {
	return int(math.Max(0, math.Min(100, math.Round(v))))
}

func parseFeedback(raw string) (*scoring.Feedback, error) {
	body, err := extractJSON(raw, '{', '}')
	if err != nil {
		return nil, err
	}
	res := gjson.Parse(body)

	total := firstOf(res, "total_score", "totalScore")
	if !total.Exists() {
		return nil, fmt.Errorf("response JSON has no total_score")
	}

	feedback := &scoring.Feedback{
		TotalScore:          clampScore(total.Float()),
		CategoryScores:      make([]scoring.CategoryScore, 0),
		Strengths:           stringList(firstOf(res, "strengths")),
		AreasForImprovement: stringList(firstOf(res, "areas_for_improvement", "areasForImprovement")),
		FinalAssessment:     strings.TrimSpace(firstOf(res, "final_assessment", "finalAssessment").String()),
	}
	for _, c := range firstOf(res, "category_scores", "categoryScores").Array() {
		name := strings.TrimSpace(c.Get("name").String())
		if name == "" {
			continue
		}
		feedback.CategoryScores = append(feedback.CategoryScores, scoring.CategoryScore{
			Name:    name,
			Score:   clampScore(c.Get("score").Float()),
			Comment: strings.TrimSpace(c.Get("comment").String()),
		})
	}
	return feedback, nil
}

func parseGeneratedQuestions(raw string) ([]scoring.Question, error) {
	var items []gjson.Result
	arrayAt, objectAt := strings.IndexByte(raw, '['), strings.IndexByte(raw, '{')
	if arrayAt != -1 && (objectAt == -1 || arrayAt < objectAt) {
		body, err := extractJSON(raw, '[', ']')
		if err != nil {
			return nil, err
		}
		items = gjson.Parse(body).Array()
	} else {
		body, err := extractJSON(raw, '{', '}')
		if err != nil {
			return nil, fmt.Errorf("response has no question list: %w", err)
		}
		items = gjson.Get(body, "questions").Array()
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("response contains no questions")
	}

	questions := make([]scoring.Question, 0, len(items))
	for _, item := range items {
		q := scoring.Question{
			Text:       strings.TrimSpace(firstOf(item, "text", "question").String()),
			Type:       scoring.QuestionType(strings.ToLower(item.Get("type").String())),
			Options:    stringList(item.Get("options")),
			Difficulty: scoring.Difficulty(strings.ToLower(item.Get("difficulty").String())),
			Points:     int(item.Get("points").Int()),
		}
		if len(q.Options) == 0 {
			q.Options = nil
		}
		switch correct := firstOf(item, "correct_answer", "correctAnswer"); correct.Type {
		case gjson.Number:
			v := scoring.IndexValue(int(correct.Int()))
			q.CorrectAnswer = &v
		case gjson.String:
			v := scoring.TextValue(correct.String())
			q.CorrectAnswer = &v
		}
		for _, tc := range firstOf(item, "test_cases", "testCases").Array() {
			q.TestCases = append(q.TestCases, scoring.TestCase{
				Input:          firstOf(tc, "input", "stdin").String(),
				ExpectedOutput: firstOf(tc, "expected_output", "expectedOutput", "output").String(),
			})
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// AnswersJSON exposes the raw answer payload to prompt templates as {{.AnswersJSON}}.
func (in RoundFeedbackInput) AnswersJSON() string {
	b, err := json.Marshal(in.Answers)
	if err != nil {
		return "[]"
	}
	return string(b)
}
