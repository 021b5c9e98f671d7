package service

import (
	"errors"
	"fmt"
)

var (
	ErrComplete        = errors.New("quiz is already complete")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownOption   = errors.New("unknown option")
)

// Category is one of the four motivation types a respondent is classified into.
// The declaration order is significant: Result breaks ties in favour of the
// earliest category.
type Category int

const (
	SelfReflector Category = iota
	AestheticImmerser
	CreativeSeeker
	CulturalIdentity

	categoryCount
)

var categoryKeys = [categoryCount]string{
	SelfReflector:     "selfReflector",
	AestheticImmerser: "aestheticImmerser",
	CreativeSeeker:    "creativeSeeker",
	CulturalIdentity:  "culturalIdentity",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{SelfReflector, AestheticImmerser, CreativeSeeker, CulturalIdentity}
}

func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryKeys[c]
}

// ParseCategory resolves a wire key such as "creativeSeeker".
func ParseCategory(key string) (Category, error) {
	for c, k := range categoryKeys {
		if k == key {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}

type Option struct {
	Label    string
	Category Category
}

type Question struct {
	Prompt  string
	Options []Option
}

// ScoreBoard holds one counter per category. Every category is always present.
type ScoreBoard [categoryCount]int

func (s ScoreBoard) Get(c Category) int {
	if !c.Valid() {
		return 0
	}
	return s[c]
}

func (s ScoreBoard) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Winner scans the categories in declaration order and keeps the first one
// with a strictly greater count. An all-zero board yields SelfReflector.
func (s ScoreBoard) Winner() Category {
	maxScore := 0
	result := SelfReflector
	for _, c := range Categories() {
		if s[c] > maxScore {
			maxScore = s[c]
			result = c
		}
	}
	return result
}

// Map returns the board keyed by category wire key.
func (s ScoreBoard) Map() map[string]int {
	m := make(map[string]int, len(s))
	for _, c := range Categories() {
		m[c.String()] = s[c]
	}
	return m
}

// Engine is the state of a single questionnaire session. It is not safe for
// concurrent use; SessionStore serialises access per chat.
type Engine struct {
	questions []Question
	step      int
	scores    ScoreBoard
}

func NewEngine() *Engine {
	return &Engine{questions: DefaultQuestions()}
}

func (e *Engine) Step() int {
	return e.step
}

func (e *Engine) Total() int {
	return len(e.questions)
}

func (e *Engine) Scores() ScoreBoard {
	return e.scores
}

func (e *Engine) IsComplete() bool {
	return e.step >= len(e.questions)
}

// Progress is the answered share of the questionnaire, from 0 to 1.
func (e *Engine) Progress() float64 {
	if len(e.questions) == 0 {
		return 1
	}
	return float64(e.step) / float64(len(e.questions))
}

func (e *Engine) CurrentQuestion() (Question, error) {
	if e.IsComplete() {
		return Question{}, ErrComplete
	}
	return e.questions[e.step], nil
}

func (e *Engine) SubmitAnswer(c Category) error {
	if e.IsComplete() {
		return ErrComplete
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	e.scores[c]++
	e.step++
	return nil
}

// SelectOption submits the category of the option at index of the current question.
func (e *Engine) SelectOption(index int) error {
	q, err := e.CurrentQuestion()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("%w: %d of %d", ErrUnknownOption, index, len(q.Options))
	}
	return e.SubmitAnswer(q.Options[index].Category)
}

func (e *Engine) Result() Category {
	return e.scores.Winner()
}

func (e *Engine) Reset() {
	e.step = 0
	e.scores = ScoreBoard{}
}

// Outcome is a snapshot of a session's result.
type Outcome struct {
	Winner  Category
	Scores  ScoreBoard
	Profile CategoryProfile
}

func (e *Engine) Outcome() Outcome {
	winner := e.Result()
	return Outcome{
		Winner:  winner,
		Scores:  e.scores,
		Profile: LookupProfile(winner),
	}
}
