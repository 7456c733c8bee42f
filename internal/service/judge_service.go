package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lshigami/mockround/config"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Judge0 status ids. Anything above statusProcessing is terminal.
const (
	statusInQueue    = 1
	statusProcessing = 2
	statusAccepted   = 3
)

var judge0Languages = map[string]int{
	"c":          50,
	"cpp":        54,
	"csharp":     51,
	"go":         60,
	"java":       62,
	"javascript": 63,
	"python":     71,
	"ruby":       72,
	"rust":       73,
	"typescript": 74,
}

var languageAliases = map[string]string{
	"c++":     "cpp",
	"c#":      "csharp",
	"golang":  "go",
	"js":      "javascript",
	"node":    "javascript",
	"py":      "python",
	"python3": "python",
	"ts":      "typescript",
}

// LanguageID maps a language name to its Judge0 id.
func LanguageID(language string) (int, bool) {
	name := strings.ToLower(strings.TrimSpace(language))
	if alias, ok := languageAliases[name]; ok {
		name = alias
	}
	id, ok := judge0Languages[name]
	return id, ok
}

type JudgeService interface {
	Enabled() bool
	Execute(ctx context.Context, req dto.ExecuteCodeDTO) (*dto.ExecutionResultDTO, error)
}

type judge0Service struct {
	cfg        config.Judge0
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewJudgeService(cfg *config.Config, m *metrics.Metrics) JudgeService {
	if cfg.Judge0.BaseURL == "" {
		log.Warn().Msg("JUDGE0_BASE_URL is not set. Code answers will not be executed.")
	}
	return &judge0Service{
		cfg:        cfg.Judge0,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		metrics:    m,
	}
}

func (s *judge0Service) Enabled() bool {
	return s.cfg.BaseURL != ""
}

type judge0Submission struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin,omitempty"`
	ExpectedOutput string `json:"expected_output,omitempty"`
}

type judge0Result struct {
	Token         string  `json:"token"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Message       *string `json:"message"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
	Status        struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

func (s *judge0Service) Execute(ctx context.Context, req dto.ExecuteCodeDTO) (*dto.ExecutionResultDTO, error) {
	if !s.Enabled() {
		return nil, ErrJudgeUnavailable
	}
	langID, ok := LanguageID(req.Language)
	if !ok {
		return nil, invalidf("unsupported language %q", req.Language)
	}

	token, err := s.submit(ctx, judge0Submission{
		SourceCode:     req.SourceCode,
		LanguageID:     langID,
		Stdin:          req.Stdin,
		ExpectedOutput: req.ExpectedOutput,
	})
	if err != nil {
		s.metrics.JudgePoll("error")
		return nil, err
	}

	maxPolls := s.cfg.MaxPolls
	if maxPolls <= 0 {
		maxPolls = 1
	}
	interval := s.cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for poll := 0; poll < maxPolls; poll++ {
		select {
		case <-ctx.Done():
			s.metrics.JudgePoll("cancelled")
			return nil, ctx.Err()
		case <-ticker.C:
		}

		res, err := s.fetch(ctx, token)
		if err != nil {
			s.metrics.JudgePoll("error")
			return nil, err
		}
		if res.Status.ID == statusInQueue || res.Status.ID == statusProcessing {
			s.metrics.JudgePoll("pending")
			continue
		}
		s.metrics.JudgePoll("finished")
		return toExecutionResult(res, req.ExpectedOutput != ""), nil
	}

	s.metrics.JudgePoll("timeout")
	log.Warn().Str("token", token).Int("polls", maxPolls).Msg("Judge0 submission did not finish in time")
	return nil, ErrJudgeTimeout
}

func (s *judge0Service) submit(ctx context.Context, sub judge0Submission) (string, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("failed to encode judge submission: %w", err)
	}
	var res judge0Result
	if err := s.do(ctx, http.MethodPost, "/submissions?base64_encoded=false&wait=false", body, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", fmt.Errorf("%w: judge returned no submission token", ErrJudgeUnavailable)
	}
	return res.Token, nil
}

func (s *judge0Service) fetch(ctx context.Context, token string) (*judge0Result, error) {
	var res judge0Result
	path := "/submissions/" + token + "?base64_encoded=false&fields=token,stdout,stderr,compile_output,message,time,memory,status"
	if err := s.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *judge0Service) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(s.cfg.BaseURL, "/")+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build judge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("X-RapidAPI-Key", s.cfg.APIKey)
	}
	if s.cfg.APIHost != "" {
		req.Header.Set("X-RapidAPI-Host", s.cfg.APIHost)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s", ErrJudgeUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error().Int("status", resp.StatusCode).Str("body", string(msg)).Str("path", path).Msg("Judge0 request failed")
		return fmt.Errorf("%w: judge responded with status %d", ErrJudgeUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode judge response: %s", ErrJudgeUnavailable, err.Error())
	}
	return nil
}

func toExecutionResult(res *judge0Result, checked bool) *dto.ExecutionResultDTO {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	out := &dto.ExecutionResultDTO{
		Stdout:        deref(res.Stdout),
		Stderr:        deref(res.Stderr),
		CompileOutput: deref(res.CompileOutput),
		Message:       deref(res.Message),
		StatusID:      res.Status.ID,
		Status:        res.Status.Description,
		Time:          deref(res.Time),
	}
	if res.Memory != nil {
		out.Memory = *res.Memory
	}
	if checked {
		passed := res.Status.ID == statusAccepted
		out.Passed = &passed
	}
	return out
}
