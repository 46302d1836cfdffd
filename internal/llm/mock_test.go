package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipprompt/clipprompt/internal/llm"
)

func TestMockProvider_ReturnsResponsesInOrder(t *testing.T) {
	m := llm.NewMockProvider(
		llm.MockResponse{Content: "first"},
		llm.MockResponse{Content: "second"},
	)

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content)

	resp, err = m.Complete(context.Background(), llm.Request{Prompt: "b"})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Content)

	// Exhausted: keeps returning the last response.
	resp, err = m.Complete(context.Background(), llm.Request{Prompt: "c"})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Content)
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "ok"})

	_, _ = m.Complete(context.Background(), llm.Request{Prompt: "one"})
	_, _ = m.Complete(context.Background(), llm.Request{Prompt: "two"})

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "one", calls[0].Prompt)
	assert.Equal(t, "two", calls[1].Prompt)
}

func TestMockProvider_ReturnsErrors(t *testing.T) {
	boom := errors.New("boom")
	m := llm.NewMockProvider(llm.MockResponse{Err: boom})

	_, err := m.Complete(context.Background(), llm.Request{Prompt: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestMockProvider_RespectsCancellation(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "never"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, llm.Request{Prompt: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}

func TestMockProvider_Reset(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "a"}, llm.MockResponse{Content: "b"})
	_, _ = m.Complete(context.Background(), llm.Request{Prompt: "x"})
	m.Reset()

	assert.Empty(t, m.Calls())
	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "y"})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Content)
}
