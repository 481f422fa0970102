package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRewriteHappyPath(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode upstream request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Polished text.  "}}]}`))
	}))
	defer upstream.Close()

	svc := NewRewriteService(upstream.URL, "sk-test", "test-model", 2*time.Second)
	got, apiErr := svc.Rewrite(context.Background(), "rough text", "formal")
	if apiErr != nil {
		t.Fatalf("rewrite: %v", apiErr)
	}
	if got != "Polished text." {
		t.Fatalf("unexpected result %q", got)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotReq.Model != "test-model" || len(gotReq.Messages) != 1 {
		t.Fatalf("unexpected upstream request: %+v", gotReq)
	}
}

func TestRewriteValidation(t *testing.T) {
	svc := NewRewriteService("http://127.0.0.1:0", "sk-test", "m", time.Second)

	if _, apiErr := svc.Rewrite(context.Background(), "   ", ""); apiErr == nil || apiErr.Code != "invalid_text" {
		t.Fatalf("expected invalid_text, got %v", apiErr)
	}

	long := make([]byte, 4001)
	for i := range long {
		long[i] = 'a'
	}
	if _, apiErr := svc.Rewrite(context.Background(), string(long), ""); apiErr == nil || apiErr.Code != "text_too_long" {
		t.Fatalf("expected text_too_long, got %v", apiErr)
	}
}

func TestRewriteUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewRewriteService(upstream.URL, "sk-test", "m", time.Second)
	_, apiErr := svc.Rewrite(context.Background(), "text", "")
	if apiErr == nil || apiErr.Status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %v", apiErr)
	}
}

func TestRewriteUnconfigured(t *testing.T) {
	svc := NewRewriteService("http://127.0.0.1:0", "", "m", time.Second)
	_, apiErr := svc.Rewrite(context.Background(), "text", "")
	if apiErr == nil || apiErr.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 when unconfigured, got %v", apiErr)
	}
}
