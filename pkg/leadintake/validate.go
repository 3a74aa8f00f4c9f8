package leadintake

import (
	"regexp"
	"strings"
)

// emailPattern accepts anything of the form something@something.something
// with no whitespace or extra @ in any part. Deliberately loose; the CRM is
// the system of record, this only keeps obvious garbage out.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate returns one human-readable message per missing or invalid required
// field. An empty slice means the submission may proceed.
func (l *LeadSubmission) Validate() []string {
	var errs []string

	if strings.TrimSpace(l.Name) == "" && strings.TrimSpace(l.FirstName) == "" {
		errs = append(errs, "name is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(l.Email)) {
		errs = append(errs, "a valid email is required")
	}

	return errs
}
