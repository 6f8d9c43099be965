package handlers

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/services/gigflow"
)

func TestIsValidationErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rejected gig input", (gigflow.GigInput{}).Validate(), true},
		{"rejected proposal input", (gigflow.ProposalInput{}).Validate(), true},
		{"duplicate proposal", gigflow.ErrDuplicateProposal, false},
		{"gig not open", gigflow.ErrGigNotOpen, false},
		{"not owner", gigflow.ErrNotGigOwner, false},
		{"record not found", gorm.ErrRecordNotFound, false},
		{"store failure", errors.New("driver: bad connection"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidationErr(tt.err); got != tt.want {
				t.Errorf("isValidationErr(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
