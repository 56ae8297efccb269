package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/moverank/leadgen/internal/entity"
	"github.com/moverank/leadgen/internal/infra/integration/openai"
)

func testLead() *entity.Lead {
	return entity.NewLead(
		"Jane Doe",
		"jane@example.com",
		"555-0101",
		"2026-10-01",
		"94103",
		"10001",
		"3br",
		"5000-10000",
		"asap",
	)
}

func chatReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	out, _ := json.Marshal(reply)
	return string(out)
}

func TestScoreLeadParsesModelResponse(t *testing.T) {
	var gotAuth string
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(`{"score": 85, "reasoning": "High value move with immediate urgency."}`)))
	}))
	defer srv.Close()

	c := openai.NewClient(srv.URL, "sk-test", "test-model", zerolog.Nop())
	score, reasoning := c.ScoreLead(context.Background(), testLead())

	assert.Equal(t, 85, score)
	assert.Equal(t, "High value move with immediate urgency.", reasoning)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)
}

func TestScoreLeadFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := openai.NewClient(srv.URL, "sk-test", "test-model", zerolog.Nop())
	score, reasoning := c.ScoreLead(context.Background(), testLead())

	assert.Equal(t, openai.FallbackScore, score)
	assert.Equal(t, openai.FallbackReasoning, reasoning)
}

func TestScoreLeadFallsBackOnMalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`the lead looks great, I'd say 85 out of 100`)))
	}))
	defer srv.Close()

	c := openai.NewClient(srv.URL, "sk-test", "test-model", zerolog.Nop())
	score, reasoning := c.ScoreLead(context.Background(), testLead())

	assert.Equal(t, openai.FallbackScore, score)
	assert.Equal(t, openai.FallbackReasoning, reasoning)
}

func TestScoreLeadFallsBackOnOutOfRangeScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"score": 250, "reasoning": "off the charts"}`)))
	}))
	defer srv.Close()

	c := openai.NewClient(srv.URL, "sk-test", "test-model", zerolog.Nop())
	score, _ := c.ScoreLead(context.Background(), testLead())

	assert.Equal(t, openai.FallbackScore, score)
}

func TestScoreLeadFallsBackWhenScorerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := openai.NewClient(srv.URL, "sk-test", "test-model", zerolog.Nop())
	score, reasoning := c.ScoreLead(context.Background(), testLead())

	assert.Equal(t, openai.FallbackScore, score)
	assert.Equal(t, openai.FallbackReasoning, reasoning)
}

func TestScoreLeadDefaultsMissingReasoning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"score": 70}`)))
	}))
	defer srv.Close()

	c := openai.NewClient(srv.URL, "sk-test", "test-model", zerolog.Nop())
	score, reasoning := c.ScoreLead(context.Background(), testLead())

	assert.Equal(t, 70, score)
	assert.Equal(t, "No reasoning provided.", reasoning)
}
