package eway

import "fmt"

// maxErrorBody bounds how much CRM response text an error may carry. The raw
// bodies can contain verbose internal diagnostics that must not be passed on
// verbatim.
const maxErrorBody = 500

// AuthError means LogIn was rejected or returned no usable session id.
// It never carries credentials.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("eway login failed: %v", e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("eway login failed with status %d: %s", e.StatusCode, e.Body)
	}
	return "eway login failed: no session id in response"
}

func (e *AuthError) Unwrap() error { return e.Err }

// RequestError means an authenticated CRM call returned non-2xx, could not be
// reached, or produced an unreadable response.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("eway %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("eway %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}
	return string(body)
}
