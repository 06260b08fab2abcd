package genlang

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

func TestClient_Generate(t *testing.T) {
	var captured generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		fmt.Fprint(w, `{
			"candidates": [
				{
					"content": {
						"parts": [{"text": "The book follows an orphaned wizard."}],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-1.5-flash", nil)

	text, err := client.Generate(context.Background(), "What is this book about?")
	require.NoError(t, err)
	assert.Equal(t, "The book follows an orphaned wizard.", text)

	// The prompt travels in the first content part
	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "What is this book about?", captured.Contents[0].Parts[0].Text)

	// Fixed sampling parameters accompany every request
	assert.InDelta(t, 0.7, captured.GenerationConfig.Temperature, 0.001)
	assert.Equal(t, 40, captured.GenerationConfig.TopK)
	assert.InDelta(t, 0.95, captured.GenerationConfig.TopP, 0.001)
	assert.Equal(t, 1024, captured.GenerationConfig.MaxOutputTokens)
}

func TestClient_Generate_Errors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error": {"message": "API key not valid"}}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, "bad-key", "gemini-1.5-flash", nil)
		_, err := client.Generate(context.Background(), "prompt")
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates": nope`)
		}))
		defer server.Close()

		client := NewClient(server.URL, "key", "gemini-1.5-flash", nil)
		_, err := client.Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, domain.ErrBadResponse)
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates": []}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, "key", "gemini-1.5-flash", nil)
		_, err := client.Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, domain.ErrNoAnswer)
	})

	t.Run("candidate without text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates": [{"content": {"parts": []}, "finishReason": "SAFETY"}]}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, "key", "gemini-1.5-flash", nil)
		_, err := client.Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, domain.ErrNoAnswer)
	})
}

func TestClient_Name(t *testing.T) {
	client := NewClient("http://unused", "key", "gemini-1.5-flash", nil)
	assert.Equal(t, "gemini-1.5-flash (rest)", client.Name())
}
