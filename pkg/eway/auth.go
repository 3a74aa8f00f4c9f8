package eway

import (
	"context"
	"encoding/base64"

	"go.uber.org/zap"
)

// LogIn authenticates against the CRM and stores the returned session id on
// the client. Calling it while a session is already held simply overwrites the
// stored id. The plaintext password never leaves this method unhashed and is
// never logged.
func (c *Client) LogIn(ctx context.Context) (string, error) {
	url := c.endpoint("LogIn")
	c.logger.Info("Logging in to eWay CRM",
		zap.String("url", url),
		zap.String("user", c.cfg.Username))

	body := loginRequest{
		UserName:                c.cfg.Username,
		PasswordHash:            HashPassword(c.cfg.Password),
		AppVersion:              c.cfg.AppVersion,
		ClientMachineIdentifier: c.machineID,
		ClientMachineName:       c.machineName,
	}

	resp, err := c.httpClient.PostOnce(ctx, url, nil, body)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("eWay login rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", truncateBody(resp.Body)))
		return "", &AuthError{StatusCode: resp.StatusCode, Body: truncateBody(resp.Body)}
	}

	sessionID, ok := sessionIDFromLogin(resp.Body)
	if !ok {
		c.logger.Error("eWay login response carried no session id")
		return "", &AuthError{}
	}

	c.setSessionID(sessionID)
	c.logger.Info("Logged in to eWay CRM", zap.Int("session_id_len", len(sessionID)))

	return sessionID, nil
}

// ensureSession performs the implicit login: authenticated calls must never go
// out with an empty session id, and callers should not have to log in by hand.
// Unlike LogIn it does nothing when a session is already held, so one client
// issues at most one login per lifecycle.
func (c *Client) ensureSession(ctx context.Context) error {
	if c.sessionID() != "" {
		return nil
	}
	_, err := c.LogIn(ctx)
	return err
}

// LogOut releases the CRM session. It is a no-op without a session. The stored
// session id is cleared whatever the HTTP outcome, and failures are logged and
// swallowed: a dangling CRM session is not worth failing a submission over.
//
// This endpoint alone authenticates with a Basic Auth header on top of the
// session id in the body. The asymmetry is how the deployed CRM behaves, so it
// is kept as observed rather than unified with the other calls.
func (c *Client) LogOut(ctx context.Context) {
	sessionID := c.sessionID()
	if sessionID == "" {
		return
	}
	defer c.clearSession()

	basic := base64.StdEncoding.EncodeToString([]byte(c.cfg.Username + ":" + c.cfg.Password))
	headers := map[string]string{
		"Authorization": "Basic " + basic,
	}

	resp, err := c.httpClient.PostOnce(ctx, c.endpoint("LogOut"), headers, logoutRequest{SessionID: sessionID})
	if err != nil {
		c.logger.Warn("eWay logout failed", zap.Error(err))
		return
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("eWay logout rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", truncateBody(resp.Body)))
		return
	}

	c.logger.Info("Logged out of eWay CRM")
}
