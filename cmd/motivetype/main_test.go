package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PoluyanbIch/motivetype/internal/config"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *exitErr
	require.True(t, errors.As(err, &ee), "expected exitErr, got %v", err)
	return ee.code
}

func TestRunAnswer_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runAnswer(&buf, []string{"culturalIdentity", "4", "3"}, "json"))

	var got struct {
		Type   string         `json:"type"`
		Scores map[string]int `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "culturalIdentity", got.Type)
	assert.Equal(t, 2, got.Scores["culturalIdentity"])
	assert.Equal(t, 1, got.Scores["creativeSeeker"])
}

func TestRunAnswer_TieGoesToEarliest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runAnswer(&buf, []string{"2", "1", "3"}, "text"))
	assert.Contains(t, buf.String(), "Self-Reflector")
}

func TestRunAnswer_BadAnswers(t *testing.T) {
	err := runAnswer(&bytes.Buffer{}, []string{"1", "2"}, "text")
	assert.Equal(t, 2, exitCode(t, err))

	err = runAnswer(&bytes.Buffer{}, []string{"1", "2", "7"}, "text")
	assert.Equal(t, 2, exitCode(t, err))
}

func TestRunAnswer_BadFormat(t *testing.T) {
	err := runAnswer(&bytes.Buffer{}, []string{"1", "1", "1"}, "xml")
	assert.Equal(t, 3, exitCode(t, err))
}

func TestRunProfile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runProfile(&buf, "creativeSeeker", "md"))
	assert.Contains(t, buf.String(), "# Creative Seeker")

	err := runProfile(&bytes.Buffer{}, "curator", "md")
	assert.Equal(t, 2, exitCode(t, err))
}

func TestRunBot_RequiresToken(t *testing.T) {
	err := runBot(context.Background(), &config.Config{LogLevel: "info"})
	assert.Equal(t, 3, exitCode(t, err))
}

func TestRunBot_InvalidLogLevel(t *testing.T) {
	err := runBot(context.Background(), &config.Config{TelegramToken: "x", LogLevel: "chatty"})
	assert.Equal(t, 3, exitCode(t, err))
}

func TestRootCmd_AnswerSubcommand(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"answer", "--format", "yaml", "2", "2", "2"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "type: aestheticImmerser")
}
