package leadintake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactRecordNameSplitting(t *testing.T) {
	tests := []struct {
		name      string
		lead      LeadSubmission
		wantFirst string
		wantLast  string
	}{
		{
			name:      "two tokens",
			lead:      LeadSubmission{Name: "Jana Novakova"},
			wantFirst: "Jana",
			wantLast:  "Novakova",
		},
		{
			name:      "many tokens join the tail",
			lead:      LeadSubmission{Name: "Anna Maria van Berg"},
			wantFirst: "Anna",
			wantLast:  "Maria van Berg",
		},
		{
			name:      "single token falls back to first name",
			lead:      LeadSubmission{Name: "Madonna"},
			wantFirst: "Madonna",
			wantLast:  "Madonna",
		},
		{
			name:      "split fields pass through",
			lead:      LeadSubmission{FirstName: "Jana", LastName: "Novakova"},
			wantFirst: "Jana",
			wantLast:  "Novakova",
		},
		{
			name:      "missing last name falls back to first",
			lead:      LeadSubmission{FirstName: "Jana"},
			wantFirst: "Jana",
			wantLast:  "Jana",
		},
		{
			name:      "no name at all gets the placeholder",
			lead:      LeadSubmission{},
			wantFirst: "",
			wantLast:  "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := tt.lead.ContactRecord()
			assert.Equal(t, tt.wantFirst, record.FirstName)
			assert.Equal(t, tt.wantLast, record.LastName)
			assert.NotEmpty(t, record.LastName, "LastName must never be empty")
		})
	}
}

func TestContactRecordMapping(t *testing.T) {
	lead := LeadSubmission{
		Name:    "Jana Novakova",
		Email:   " jana@firma.cz ",
		Company: "Firma s.r.o.",
		Phone:   "+420 777 123 456",
		Content: "Please call me back.",
		Source:  "pricing-page",
	}

	record := lead.ContactRecord()
	assert.Equal(t, "jana@firma.cz", record.Email1Address)
	assert.Equal(t, "Jana Novakova", record.FileAs)
	assert.Equal(t, "Firma s.r.o.", record.CompanyName)
	assert.Equal(t, "+420 777 123 456", record.BusinessPhone)
	assert.Equal(t, "Please call me back.\nSource: pricing-page", record.Note)
}

func TestContactRecordMessageField(t *testing.T) {
	lead := LeadSubmission{Name: "Jana", Email: "j@f.cz", Message: "hello"}
	assert.Equal(t, "hello", lead.ContactRecord().Note)
}
