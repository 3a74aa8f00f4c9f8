package eway

import "encoding/json"

// ContactRecord is the payload SaveContact transmits. LastName must never be
// empty: the CRM rejects records with empty required fields, so callers have
// to synthesize a fallback before handing the record over.
type ContactRecord struct {
	FirstName     string `json:"FirstName"`
	LastName      string `json:"LastName"`
	Email1Address string `json:"Email1Address"`
	FileAs        string `json:"FileAs"`
	CompanyName   string `json:"CompanyName,omitempty"`
	BusinessPhone string `json:"BusinessPhone,omitempty"`
	Note          string `json:"Note,omitempty"`
}

// Contact is the slice of a GetContacts entry the duplicate precheck cares
// about. The CRM returns many more fields; they are ignored.
type Contact struct {
	ItemGUID string `json:"ItemGUID"`
	FileAs   string `json:"FileAs"`
	Email    string `json:"Email"`
}

type loginRequest struct {
	UserName                string `json:"userName"`
	PasswordHash            string `json:"passwordHash"`
	AppVersion              string `json:"appVersion"`
	ClientMachineIdentifier string `json:"clientMachineIdentifier"`
	ClientMachineName       string `json:"clientMachineName"`
}

type saveContactRequest struct {
	SessionID         string        `json:"sessionId"`
	TransmitObject    ContactRecord `json:"transmitObject"`
	DieOnItemConflict bool          `json:"dieOnItemConflict"`
}

type contactQuery struct {
	Email      string `json:"Email"`
	MaxRecords int    `json:"maxRecords"`
}

type getContactsRequest struct {
	SessionID      string       `json:"sessionId"`
	TransmitObject contactQuery `json:"transmitObject"`
}

type getContactsResponse struct {
	Data []Contact `json:"Data"`
}

type logoutRequest struct {
	SessionID string `json:"sessionId"`
}

// sessionIDFromLogin digs the session id out of a LogIn response, tolerating
// the casing the CRM happens to use that day: "SessionId" first, then
// "sessionId".
func sessionIDFromLogin(body []byte) (string, bool) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}
	for _, key := range []string{"SessionId", "sessionId"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var id string
		if err := json.Unmarshal(raw, &id); err == nil && id != "" {
			return id, true
		}
	}
	return "", false
}
