package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/mkadlec/leadgate/pkg/config"
	"github.com/mkadlec/leadgate/pkg/leadintake"
)

func testModeHandler() http.Handler {
	cfg := &config.Config{
		TestMode:    true,
		HTTPTimeout: 5 * time.Second,
	}
	return leadintake.NewHandler(cfg, zap.NewNop())
}

func postEvent(body string, b64 bool) events.APIGatewayV2HTTPRequest {
	evt := events.APIGatewayV2HTTPRequest{
		RawPath:         "/api/lead",
		Body:            body,
		IsBase64Encoded: b64,
		Headers:         map[string]string{"Content-Type": "application/json"},
	}
	evt.RequestContext.HTTP.Method = http.MethodPost
	return evt
}

func TestHandleHealth(t *testing.T) {
	evt := events.APIGatewayV2HTTPRequest{RawPath: "/health"}
	resp := handle(context.Background(), testModeHandler(), evt)
	if resp.StatusCode != http.StatusOK || resp.Body != "ok" {
		t.Fatalf("unexpected health response: %d %q", resp.StatusCode, resp.Body)
	}
}

func TestHandlePassesThroughHandlerResponse(t *testing.T) {
	evt := postEvent(`{"name":"Jana Novakova","email":"jana@firma.cz"}`, false)
	resp := handle(context.Background(), testModeHandler(), evt)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}
	if ct := resp.Headers["content-type"]; ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["testMode"] != true {
		t.Fatalf("expected test mode payload, got %v", body)
	}
}

func TestHandleDecodesBase64Body(t *testing.T) {
	raw := `{"name":"Jana Novakova","email":"jana@firma.cz"}`
	evt := postEvent(base64.StdEncoding.EncodeToString([]byte(raw)), true)
	resp := handle(context.Background(), testModeHandler(), evt)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}
}

func TestHandleRejectsBadBase64(t *testing.T) {
	evt := postEvent("%%% not base64 %%%", true)
	resp := handle(context.Background(), testModeHandler(), evt)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandlePropagatesMethod(t *testing.T) {
	evt := postEvent("", false)
	evt.RequestContext.HTTP.Method = http.MethodGet
	resp := handle(context.Background(), testModeHandler(), evt)
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}
