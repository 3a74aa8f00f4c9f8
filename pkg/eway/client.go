// Package eway provides a client for the eWay CRM legacy JSON-over-HTTP API.
//
// The API is session based: LogIn returns an opaque session id that every
// subsequent call must carry in its body until LogOut. The client owns exactly
// one session at a time. It is meant to be constructed per lead submission and
// is not safe for sharing across concurrent submissions; each request should
// build its own instance (or serialize access).
//
// The API's response shapes are inconsistent (SessionId vs sessionId, and the
// LogOut endpoint alone wants Basic Auth instead of the session id). Those
// quirks are isolated into small per-endpoint adapters here so they do not
// leak into the intake flow.
package eway

import (
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mkadlec/leadgate/pkg/config"
	httpclient "github.com/mkadlec/leadgate/pkg/http"
)

// Client talks to one eWay CRM service on behalf of one lead submission.
type Client struct {
	cfg        *config.Config
	httpClient *httpclient.Client
	session    *sessionState
	logger     *zap.Logger

	// Sent with LogIn so the CRM can tell integration instances apart.
	machineID   string
	machineName string
}

// sessionState holds the one mutable piece of client state with thread-safe
// access.
type sessionState struct {
	mu        sync.RWMutex
	sessionID string
}

// NewClient creates a CRM client with a default production logger.
func NewClient(cfg *config.Config) *Client {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, logger)
}

// NewClientWithLogger creates a CRM client with a custom logger.
func NewClientWithLogger(cfg *config.Config, logger *zap.Logger) *Client {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "leadgate"
	}
	return &Client{
		cfg:         cfg,
		httpClient:  httpclient.NewClientWithTimeout(logger, cfg.HTTPTimeout),
		session:     &sessionState{},
		logger:      logger,
		machineID:   uuid.NewString(),
		machineName: hostname,
	}
}

func (c *Client) endpoint(name string) string {
	return httpclient.JoinEndpoint(c.cfg.ServiceURL, name)
}

func (c *Client) sessionID() string {
	c.session.mu.RLock()
	defer c.session.mu.RUnlock()
	return c.session.sessionID
}

func (c *Client) setSessionID(id string) {
	c.session.mu.Lock()
	c.session.sessionID = id
	c.session.mu.Unlock()
}

func (c *Client) clearSession() {
	c.setSessionID("")
}
