package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"smartphones/models"
	"smartphones/services/agent"
	"smartphones/services/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingChatter struct{}

func (failingChatter) Respond(ctx context.Context, input string) (string, error) {
	return "", errors.New("unexpected response shape")
}

func (failingChatter) Farewell(ctx context.Context) (string, error) {
	return "bye", nil
}

type echoModel struct{}

func (echoModel) Generate(ctx context.Context, system string, messages []models.Message, tools []llm.ToolDefinition, opts ...llm.CallOption) (models.Message, error) {
	return models.NewAssistantMessage("ok"), nil
}

func TestChatExitStatus(t *testing.T) {
	var out bytes.Buffer
	code := chat(context.Background(), strings.NewReader("hello\n"), &out, failingChatter{})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "An unexpected error occurred in the main loop: unexpected response shape")

	out.Reset()
	svc := agent.NewService(echoModel{}, "HyperUser")
	code = chat(context.Background(), strings.NewReader("hello\nEND\n"), &out, svc)

	assert.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(out.String(), "System: ok"))
}

func TestRunUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "mystery")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "chat.log"))

	var out bytes.Buffer
	code := run(context.Background(), strings.NewReader(""), &out)

	require.Equal(t, 1, code)
	assert.Contains(t, out.String(), "unknown LLM provider")
}
