package entity_test

import (
	"testing"

	"github.com/pledgerhq/pledger_backend/internal/utils/entity"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantEntity  string
		wantNote    string
	}{
		{
			name:        "no marker",
			description: "Lunch with friends",
			wantEntity:  "Unknown",
			wantNote:    "Lunch with friends",
		},
		{
			name:        "marker with no following space",
			description: "Lent to @Alice",
			wantEntity:  "Alice",
			wantNote:    "Lent to",
		},
		{
			name:        "marker with trailing text",
			description: "Borrowed @Bob for rent",
			wantEntity:  "Bob",
			wantNote:    "Borrowed for rent",
		},
		{
			name:        "marker at start",
			description: "@Carol dinner split",
			wantEntity:  "Carol",
			wantNote:    "dinner split",
		},
		{
			name:        "empty counterparty falls back",
			description: "Paid @ the market",
			wantEntity:  "Unknown",
			wantNote:    "Paid the market",
		},
		{
			name:        "empty description",
			description: "",
			wantEntity:  "Unknown",
			wantNote:    "",
		},
		{
			name:        "bare marker",
			description: "@",
			wantEntity:  "Unknown",
			wantNote:    "",
		},
		{
			name:        "whitespace around segments is collapsed",
			description: "  repayment   @Dave   second installment  ",
			wantEntity:  "Dave",
			wantNote:    "repayment second installment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotEntity, gotNote := entity.Parse(tt.description)
			assert.Equal(t, tt.wantEntity, gotEntity)
			assert.Equal(t, tt.wantNote, gotNote)
		})
	}
}
