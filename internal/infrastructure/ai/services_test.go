package ai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cartera-api/internal/infrastructure/ai"
)

// ── Gemini ────────────────────────────────────────────────────────────────────

func TestGemini_ExtraeTextoDelPrimerCandidato(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k-123", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "system_instruction")

		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"  Hola Alice, recuerda tu saldo.  "}]}}]}`)
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("k-123", "gemini-test", ai.WithEndpoint(srv.URL))
	text, err := svc.GenerateText(context.Background(), "sistema", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Hola Alice, recuerda tu saldo.", text)
}

func TestGemini_ErrorHTTPConMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid"}}`)
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("bad", "gemini-test", ai.WithEndpoint(srv.URL))
	_, err := svc.GenerateText(context.Background(), "", "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGemini_RespuestaSinCandidatos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("k", "m", ai.WithEndpoint(srv.URL))
	_, err := svc.GenerateText(context.Background(), "", "prompt")
	assert.Error(t, err)
}

func TestGemini_SinAPIKey(t *testing.T) {
	_, err := ai.NewGeminiService("", "m").GenerateText(context.Background(), "", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

// ── Anthropic ─────────────────────────────────────────────────────────────────

func TestAnthropic_ConcatenaBloquesDeTexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))
		_, _ = io.WriteString(w, `{"content":[{"type":"text","text":"Hi Alice, "},{"type":"text","text":"please pay."}]}`)
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("sk-test", "claude-test", ai.WithEndpoint(srv.URL))
	text, err := svc.GenerateText(context.Background(), "system", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Hi Alice, please pay.", text)
}

func TestAnthropic_ErrorDeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("sk-bad", "claude-test", ai.WithEndpoint(srv.URL))
	_, err := svc.GenerateText(context.Background(), "", "prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestAnthropic_JSONMalformado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"content":`)
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("sk", "m", ai.WithEndpoint(srv.URL))
	_, err := svc.GenerateText(context.Background(), "", "prompt")
	assert.Error(t, err)
}
