package ollama

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartmarshall/articulate-words/internal/domain"
	"github.com/heartmarshall/articulate-words/internal/prompt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Profile: domain.PlayerProfile{Ages: []int{30}, Interests: []string{"Hiking"}},
		Amount:  5,
	}
}

func TestGenerator_Generate_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "tinyllama" {
			t.Errorf("model: got %q", req.Model)
		}
		if req.Stream {
			t.Error("stream should be false")
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[0].Content != prompt.System {
			t.Error("system message should carry the standing prompt")
		}
		if !strings.Contains(req.Messages[1].Content, "Amount: 5 words for each category") {
			t.Errorf("user message: %q", req.Messages[1].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":{"role":"assistant","content":"--BEGIN JSON--{}--END JSON--"}}`))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL+"/", "tinyllama", 5*time.Second, newTestLogger())
	got, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "--BEGIN JSON--{}--END JSON--" {
		t.Errorf("reply: got %q", got)
	}
}

func TestGenerator_Generate_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"message":{"role":"assistant","content":"ok"}}`))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "", 5*time.Second, newTestLogger())
	got, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("reply: got %q", got)
	}
	if calls.Load() != 2 {
		t.Errorf("calls: got %d, want 2", calls.Load())
	}
}

func TestGenerator_Generate_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "missing", 5*time.Second, newTestLogger())
	_, err := g.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "model not found") {
		t.Errorf("error should carry status and body: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls: got %d, want 1", calls.Load())
	}
}

func TestGenerator_Generate_EmptyReply(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"role":"assistant","content":"  "}}`))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "", 5*time.Second, newTestLogger())
	if _, err := g.Generate(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error for empty reply")
	}
}

func TestNewGenerator_Defaults(t *testing.T) {
	t.Parallel()

	g := NewGenerator("", "", time.Second, newTestLogger())
	if g.baseURL != DefaultBaseURL {
		t.Errorf("baseURL: got %q", g.baseURL)
	}
	if g.model != DefaultModel {
		t.Errorf("model: got %q", g.model)
	}
}
