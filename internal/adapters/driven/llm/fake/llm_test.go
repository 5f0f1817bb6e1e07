package fake

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

func TestLLMService_CyclesResponses(t *testing.T) {
	svc := NewLLMService("one", "two")
	ctx := context.Background()

	var got []string
	for i := 0; i < 5; i++ {
		out, err := svc.Generate(ctx, "p", driven.GenerateOptions{})
		require.NoError(t, err)
		got = append(got, out)
	}

	assert.Equal(t, []string{"one", "two", "one", "two", "one"}, got)
}

func TestLLMService_DefaultResponses(t *testing.T) {
	svc := NewLLMService()

	out, err := svc.Chat(context.Background(), nil, driven.ChatOptions{})

	require.NoError(t, err)
	assert.Equal(t, DefaultResponses()[0], out)
	assert.Len(t, DefaultResponses(), 3)
	assert.Contains(t, out, "## Executive Summary")
}

func TestLLMService_RecordsCalls(t *testing.T) {
	svc := NewLLMService("ok")
	ctx := context.Background()

	msgs := []driven.ChatMessage{{Role: driven.RoleSystem, Content: "sys"}, {Role: driven.RoleUser, Content: "usr"}}
	_, err := svc.Chat(ctx, msgs, driven.ChatOptions{})
	require.NoError(t, err)
	msgs[0].Content = "mutated"

	_, err = svc.Summarise(ctx, "instr", "doc")
	require.NoError(t, err)

	calls := svc.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "chat", calls[0].Method)
	assert.Equal(t, "sys", calls[0].Messages[0].Content)
	assert.Equal(t, "summarise", calls[1].Method)
	assert.Equal(t, "instr\n\ndoc", calls[1].Messages[0].Content)
}

func TestLLMService_CancelledContext(t *testing.T) {
	svc := NewLLMService("ok")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, "p", driven.GenerateOptions{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, svc.Calls())
}

func TestLLMService_Metadata(t *testing.T) {
	svc := NewLLMService()

	assert.Equal(t, "fake-list", svc.ModelName())
	assert.NoError(t, svc.Ping(context.Background()))
	assert.NoError(t, svc.Close())
}

func TestLLMService_Concurrent(t *testing.T) {
	svc := NewLLMService("a", "b", "c")
	var wg sync.WaitGroup

	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Generate(context.Background(), "p", driven.GenerateOptions{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, svc.Calls(), 30)
}

func TestLLMService_CallHistoryIsBounded(t *testing.T) {
	svc := NewLLMService("ok")
	ctx := context.Background()

	for i := 0; i < MaxRecordedCalls+50; i++ {
		_, err := svc.Generate(ctx, fmt.Sprintf("p%d", i), driven.GenerateOptions{})
		require.NoError(t, err)
	}

	calls := svc.Calls()
	require.Len(t, calls, MaxRecordedCalls)
	assert.Equal(t, "p50", calls[0].Messages[0].Content)
	assert.Equal(t, fmt.Sprintf("p%d", MaxRecordedCalls+49), calls[len(calls)-1].Messages[0].Content)
}
