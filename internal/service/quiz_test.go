package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerAll(t *testing.T, e *Engine, categories ...Category) {
	t.Helper()
	for _, c := range categories {
		require.NoError(t, e.SubmitAnswer(c))
	}
}

func TestNewEngine_InitialState(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, 0, e.Step())
	assert.Equal(t, 3, e.Total())
	assert.Equal(t, ScoreBoard{}, e.Scores())
	assert.False(t, e.IsComplete())
	assert.Zero(t, e.Progress())

	q, err := e.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "What do you value most when viewing artworks?", q.Prompt)
	assert.Len(t, q.Options, 4)
}

func TestSubmitAnswer_CountsAndAdvances(t *testing.T) {
	sequences := map[string][]Category{
		"all self":      {SelfReflector, SelfReflector, SelfReflector},
		"mixed":         {CreativeSeeker, AestheticImmerser, CulturalIdentity},
		"two and one":   {CulturalIdentity, SelfReflector, CulturalIdentity},
		"last category": {CulturalIdentity, CulturalIdentity, CulturalIdentity},
	}
	for name, seq := range sequences {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			for i, c := range seq {
				assert.False(t, e.IsComplete(), "complete before answer %d", i)
				require.NoError(t, e.SubmitAnswer(c))
				assert.Equal(t, i+1, e.Step())
			}
			assert.True(t, e.IsComplete())
			assert.Equal(t, len(seq), e.Scores().Total())
			assert.Equal(t, e.Total(), e.Step())
			assert.InDelta(t, 1.0, e.Progress(), 1e-9)
		})
	}
}

func TestSubmitAnswer_AfterCompleteIsRejected(t *testing.T) {
	e := NewEngine()
	answerAll(t, e, CreativeSeeker, CreativeSeeker, CreativeSeeker)
	before := e.Scores()

	err := e.SubmitAnswer(SelfReflector)
	require.ErrorIs(t, err, ErrComplete)
	assert.Equal(t, 3, e.Step())
	assert.Equal(t, before, e.Scores())

	_, err = e.CurrentQuestion()
	assert.ErrorIs(t, err, ErrComplete)
}

func TestSubmitAnswer_UnknownCategory(t *testing.T) {
	e := NewEngine()

	require.ErrorIs(t, e.SubmitAnswer(Category(7)), ErrUnknownCategory)
	require.ErrorIs(t, e.SubmitAnswer(Category(-1)), ErrUnknownCategory)
	assert.Equal(t, 0, e.Step())
	assert.Equal(t, ScoreBoard{}, e.Scores())
}

func TestSelectOption(t *testing.T) {
	e := NewEngine()

	require.NoError(t, e.SelectOption(1))
	assert.Equal(t, 1, e.Scores().Get(AestheticImmerser))

	require.ErrorIs(t, e.SelectOption(4), ErrUnknownOption)
	require.ErrorIs(t, e.SelectOption(-1), ErrUnknownOption)
	assert.Equal(t, 1, e.Step())

	require.NoError(t, e.SelectOption(3))
	require.NoError(t, e.SelectOption(3))
	require.ErrorIs(t, e.SelectOption(0), ErrComplete)
	assert.Equal(t, CulturalIdentity, e.Result())
}

func TestIsComplete_OnlyAtEnd(t *testing.T) {
	e := NewEngine()
	for e.Step() < e.Total() {
		assert.False(t, e.IsComplete())
		require.NoError(t, e.SelectOption(0))
	}
	assert.True(t, e.IsComplete())
}

func TestProgress(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.SelectOption(0))
	assert.InDelta(t, 1.0/3.0, e.Progress(), 1e-9)
	require.NoError(t, e.SelectOption(0))
	assert.InDelta(t, 2.0/3.0, e.Progress(), 1e-9)
}

func TestReset(t *testing.T) {
	t.Run("mid quiz", func(t *testing.T) {
		e := NewEngine()
		answerAll(t, e, CreativeSeeker)
		e.Reset()
		assert.Equal(t, 0, e.Step())
		assert.Equal(t, ScoreBoard{}, e.Scores())
	})

	t.Run("after completion", func(t *testing.T) {
		e := NewEngine()
		answerAll(t, e, CulturalIdentity, CulturalIdentity, CreativeSeeker)
		e.Reset()
		assert.Equal(t, 0, e.Step())
		assert.Equal(t, ScoreBoard{}, e.Scores())
		assert.False(t, e.IsComplete())
	})

	t.Run("fresh engine", func(t *testing.T) {
		e := NewEngine()
		e.Reset()
		assert.Equal(t, 0, e.Step())
		assert.Equal(t, ScoreBoard{}, e.Scores())
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreBoard
		want   Category
	}{
		{"all zero", ScoreBoard{0, 0, 0, 0}, SelfReflector},
		{"tie between first two", ScoreBoard{1, 1, 0, 0}, SelfReflector},
		{"tie between last two", ScoreBoard{0, 0, 1, 1}, CreativeSeeker},
		{"three way tie", ScoreBoard{0, 1, 1, 1}, AestheticImmerser},
		{"single dominant", ScoreBoard{0, 3, 0, 0}, AestheticImmerser},
		{"last wins", ScoreBoard{1, 0, 0, 2}, CulturalIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scores.Winner())
		})
	}
}

func TestResult_WithoutAnswers(t *testing.T) {
	assert.Equal(t, SelfReflector, NewEngine().Result())
}

func TestResult_AllAestheticImmerser(t *testing.T) {
	e := NewEngine()
	answerAll(t, e, AestheticImmerser, AestheticImmerser, AestheticImmerser)

	want := ScoreBoard{AestheticImmerser: 3}
	if diff := cmp.Diff(want, e.Scores()); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, AestheticImmerser, e.Result())
}

func TestEndToEnd_CulturalIdentity(t *testing.T) {
	e := NewEngine()
	answerAll(t, e, CulturalIdentity, CulturalIdentity, CreativeSeeker)

	want := map[string]int{
		"selfReflector":     0,
		"aestheticImmerser": 0,
		"creativeSeeker":    1,
		"culturalIdentity":  2,
	}
	if diff := cmp.Diff(want, e.Scores().Map()); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, e.Step())
	assert.True(t, e.IsComplete())
	assert.Equal(t, CulturalIdentity, e.Result())

	out := e.Outcome()
	assert.Equal(t, CulturalIdentity, out.Winner)
	assert.Equal(t, "Cultural Identity Seeker", out.Profile.Title)
	assert.Equal(t, e.Scores(), out.Scores)
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("selfreflector")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, "Category(9)", Category(9).String())
}

func TestDefaultQuestions_OptionsFollowCategoryOrder(t *testing.T) {
	for i, q := range DefaultQuestions() {
		require.Len(t, q.Options, 4, "question %d", i)
		assert.NotEmpty(t, q.Prompt)
		for j, opt := range q.Options {
			assert.Equal(t, Category(j), opt.Category, "question %d option %d", i, j)
			assert.NotEmpty(t, opt.Label)
		}
	}
}
