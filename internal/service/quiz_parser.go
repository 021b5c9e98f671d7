package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAnswer = errors.New("invalid answer")

// ParseAnswers turns one answer per question into categories. An answer is
// either a 1-based option number for its question or a category key.
func ParseAnswers(answers []string, questions []Question) ([]Category, error) {
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswer, len(questions), len(answers))
	}

	categories := make([]Category, 0, len(answers))
	for i, raw := range answers {
		c, err := parseAnswer(strings.TrimSpace(raw), questions[i])
		if err != nil {
			return nil, fmt.Errorf("answer %d %q: %w", i+1, raw, err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func parseAnswer(answer string, q Question) (Category, error) {
	if answer == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAnswer)
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(q.Options) {
			return 0, fmt.Errorf("%w: option must be between 1 and %d", ErrInvalidAnswer, len(q.Options))
		}
		return q.Options[n-1].Category, nil
	}

	c, err := ParseCategory(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
	}
	return c, nil
}

// Play runs a fresh engine through the given categories.
func Play(categories []Category) (*Engine, error) {
	e := NewEngine()
	for _, c := range categories {
		if err := e.SubmitAnswer(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}
