package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/mockround/internal/repository"
)

var (
	ErrNotFound         = repository.ErrNotFound
	ErrInvalidInput     = errors.New("invalid input")
	ErrLLMUnavailable   = errors.New("language model is unavailable")
	ErrJudgeUnavailable = errors.New("code execution judge is unavailable")
	ErrJudgeTimeout     = errors.New("code execution judge did not finish in time")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
