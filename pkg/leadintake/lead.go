// Package leadintake is the boundary between the marketing site's form posts
// and the eWay CRM client: it validates submissions, decides test mode versus
// live mode, drives one CRM session per request, and shapes the HTTP response.
package leadintake

import (
	"strings"

	"github.com/mkadlec/leadgate/pkg/eway"
)

// fallbackLastName keeps the CRM happy when a submission carries no usable
// name tokens at all; the CRM rejects records with an empty LastName.
const fallbackLastName = "User"

// LeadSubmission is the untrusted inbound payload. The marketing site posts
// one of two shapes: separate firstName/lastName fields, or a combined name
// with company/phone/content. One struct accepts both.
type LeadSubmission struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Content   string `json:"content"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	Consent   bool   `json:"consent"`
}

// names resolves the submission to a first/last pair, whichever shape came
// in. A combined name splits on whitespace: first token is the first name,
// the rest joined by single spaces is the last name. A missing last name
// falls back to the first name, and failing that to a literal placeholder.
func (l *LeadSubmission) names() (string, string) {
	first := strings.TrimSpace(l.FirstName)
	last := strings.TrimSpace(l.LastName)

	if first == "" && last == "" {
		tokens := strings.Fields(l.Name)
		if len(tokens) > 0 {
			first = tokens[0]
			last = strings.Join(tokens[1:], " ")
		}
	}

	if last == "" {
		last = first
	}
	if last == "" {
		last = fallbackLastName
	}

	return first, last
}

// note folds the free-text fields into the CRM contact note.
func (l *LeadSubmission) note() string {
	text := strings.TrimSpace(l.Content)
	if text == "" {
		text = strings.TrimSpace(l.Message)
	}
	if source := strings.TrimSpace(l.Source); source != "" {
		if text != "" {
			text += "\n"
		}
		text += "Source: " + source
	}
	return text
}

// ContactRecord maps the submission onto the outbound CRM shape.
func (l *LeadSubmission) ContactRecord() eway.ContactRecord {
	first, last := l.names()

	fileAs := strings.TrimSpace(first + " " + last)

	return eway.ContactRecord{
		FirstName:     first,
		LastName:      last,
		Email1Address: strings.TrimSpace(l.Email),
		FileAs:        fileAs,
		CompanyName:   strings.TrimSpace(l.Company),
		BusinessPhone: strings.TrimSpace(l.Phone),
		Note:          l.note(),
	}
}
