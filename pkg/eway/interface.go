package eway

import (
	"context"
	"encoding/json"
)

// ContactAPI defines the CRM operations the lead intake flow drives.
type ContactAPI interface {
	// LogIn authenticates and returns the session id.
	LogIn(ctx context.Context) (string, error)

	// SaveContact creates a contact, logging in implicitly when needed.
	SaveContact(ctx context.Context, contact ContactRecord) (json.RawMessage, error)

	// FindContactByEmail returns a matching contact or nil; it never fails.
	FindContactByEmail(ctx context.Context, email string) *Contact

	// LogOut releases the session; failures are swallowed.
	LogOut(ctx context.Context)
}

var _ ContactAPI = (*Client)(nil)
