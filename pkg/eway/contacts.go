package eway

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

// SaveContact creates a contact in the CRM, logging in first if no session is
// held. The 2xx response body is CRM-defined and returned verbatim rather than
// modeled strictly.
func (c *Client) SaveContact(ctx context.Context, contact ContactRecord) (json.RawMessage, error) {
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	body := saveContactRequest{
		SessionID:         c.sessionID(),
		TransmitObject:    contact,
		DieOnItemConflict: false,
	}

	resp, err := c.httpClient.PostOnce(ctx, c.endpoint("SaveContact"), nil, body)
	if err != nil {
		return nil, &RequestError{Endpoint: "SaveContact", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("eWay SaveContact rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", truncateBody(resp.Body)))
		return nil, &RequestError{
			Endpoint:   "SaveContact",
			StatusCode: resp.StatusCode,
			Body:       truncateBody(resp.Body),
		}
	}

	c.logger.Info("Created eWay contact", zap.String("file_as", contact.FileAs))

	return json.RawMessage(resp.Body), nil
}

// FindContactByEmail looks for an existing contact with the given email,
// logging in first if needed. The lookup is strictly best-effort: a failed
// call, unparsable JSON, or a missing Data array all report "no duplicate"
// instead of erroring, because duplicate detection must never block a lead.
// Matching is case-insensitive after trimming.
func (c *Client) FindContactByEmail(ctx context.Context, email string) *Contact {
	if err := c.ensureSession(ctx); err != nil {
		c.logger.Warn("Skipping duplicate check, login failed", zap.Error(err))
		return nil
	}

	body := getContactsRequest{
		SessionID: c.sessionID(),
		TransmitObject: contactQuery{
			Email:      email,
			MaxRecords: 1,
		},
	}

	resp, err := c.httpClient.PostOnce(ctx, c.endpoint("GetContacts"), nil, body)
	if err != nil {
		c.logger.Warn("Duplicate check request failed", zap.Error(err))
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Duplicate check rejected", zap.Int("status_code", resp.StatusCode))
		return nil
	}

	var parsed getContactsResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		c.logger.Warn("Duplicate check response unparsable", zap.Error(err))
		return nil
	}

	want := strings.ToLower(strings.TrimSpace(email))
	for i := range parsed.Data {
		if strings.ToLower(strings.TrimSpace(parsed.Data[i].Email)) == want {
			c.logger.Info("Found existing eWay contact", zap.String("item_guid", parsed.Data[i].ItemGUID))
			return &parsed.Data[i]
		}
	}

	return nil
}
