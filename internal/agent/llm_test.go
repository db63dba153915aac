package agent

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteFallsBackAcrossModels(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hola"}}]}`))
	}))
	defer server.Close()

	client := NewLLMClient(server.URL, "test-key", []string{"model-a", "model-b"})
	reply, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hola"}})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "hola" {
		t.Errorf("Expected reply %q, got %q", "hola", reply)
	}
	if calls != 2 {
		t.Errorf("Expected 2 upstream calls, got %d", calls)
	}
}

func TestCompleteExhaustionCarriesRateLimitInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewLLMClient(server.URL, "test-key", []string{"model-a", "model-b"})
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hola"}})
	if !errors.Is(err, ErrModelsExhausted) {
		t.Fatalf("Expected ErrModelsExhausted, got %v", err)
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("Expected ErrRateLimited to be wrapped, got %v", err)
	}
}

func TestCompleteExhaustionWithoutRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewLLMClient(server.URL, "test-key", []string{"model-a"})
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hola"}})
	if !errors.Is(err, ErrModelsExhausted) {
		t.Fatalf("Expected ErrModelsExhausted, got %v", err)
	}
	if errors.Is(err, ErrRateLimited) {
		t.Errorf("A non-429 exhaustion must not carry ErrRateLimited: %v", err)
	}
}
