package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPostOnceSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClientWithTimeout(zap.NewNop(), time.Second)
	resp, err := client.PostOnce(context.Background(), srv.URL, nil, map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one attempt, got %d", calls.Load())
	}
}

func TestPostRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClientWithTimeout(zap.NewNop(), time.Second)
	resp, err := client.Post(context.Background(), srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if calls.Load() < 2 {
		t.Fatalf("expected a retry, got %d attempts", calls.Load())
	}
}

func TestPostSendsJSONHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if got := r.Header.Get("Authorization"); got != "Basic abc" {
			t.Errorf("unexpected authorization header %q", got)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClientWithTimeout(zap.NewNop(), time.Second)
	headers := map[string]string{"Authorization": "Basic abc"}
	if _, err := client.PostOnce(context.Background(), srv.URL, headers, map[string]int{"n": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJoinEndpoint(t *testing.T) {
	tests := []struct {
		base     string
		endpoint string
		want     string
	}{
		{"https://crm.example.com/API.svc", "LogIn", "https://crm.example.com/API.svc/LogIn"},
		{"https://crm.example.com/API.svc/", "LogIn", "https://crm.example.com/API.svc/LogIn"},
		{"https://crm.example.com/API.svc/", "/LogIn", "https://crm.example.com/API.svc/LogIn"},
	}
	for _, tt := range tests {
		if got := JoinEndpoint(tt.base, tt.endpoint); got != tt.want {
			t.Errorf("JoinEndpoint(%q, %q) = %q, want %q", tt.base, tt.endpoint, got, tt.want)
		}
	}
}
