package adapter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4ak45h/Legacy-Planner/internal/infrastructure/adapter"
)

func advisorConfigFor(url string) adapter.AdvisorConfig {
	cfg := adapter.DefaultAdvisorConfig()
	cfg.URL = url
	cfg.APIKey = "test-key"
	return cfg
}

func chatReply(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestAdvisorClient_SendsGroundingAsSystemMessage(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(chatReply("You are on track.")))
	}))
	defer srv.Close()

	client := adapter.NewAdvisorClient(advisorConfigFor(srv.URL))
	reply, err := client.Ask(context.Background(), "grounding context", "Can I afford this?")

	require.NoError(t, err)
	assert.Equal(t, "You are on track.", reply)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "grounding context", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "Can I afford this?", captured.Messages[1].Content)
}

func TestAdvisorClient_RetriesOnRateLimitThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(chatReply("eventually")))
	}))
	defer srv.Close()

	client := adapter.NewAdvisorClient(advisorConfigFor(srv.URL))
	reply, err := client.Ask(context.Background(), "g", "q")

	require.NoError(t, err)
	assert.Equal(t, "eventually", reply)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAdvisorClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := adapter.NewAdvisorClient(advisorConfigFor(srv.URL))
	_, err := client.Ask(context.Background(), "g", "q")

	assert.ErrorContains(t, err, "advisor status 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestAdvisorClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := advisorConfigFor(srv.URL)
	cfg.MaxRetries = 2
	client := adapter.NewAdvisorClient(cfg)

	_, err := client.Ask(context.Background(), "g", "q")

	assert.ErrorContains(t, err, "advisor status 503")
	// Initial attempt plus two retries.
	assert.Equal(t, int32(3), calls.Load())
}

func TestAdvisorClient_NegativeMaxRetriesMeansSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := advisorConfigFor(srv.URL)
	cfg.MaxRetries = -1
	client := adapter.NewAdvisorClient(cfg)

	_, err := client.Ask(context.Background(), "g", "q")

	assert.ErrorContains(t, err, "advisor status 503")
	assert.Equal(t, int32(1), calls.Load())
}
