package gigflow

import (
	"encoding/json"
	"strings"

	"github.com/raulniraj/CampusGig/internal/models"
)

// ValidationError marks rejected input. Everything else coming out of the
// flow is a precondition sentinel or a store failure, and handlers must not
// echo those back as bad-request messages.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type GigInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Budget      float64  `json:"budget"`
}

type ProposalInput struct {
	CoverLetter string  `json:"cover_letter"`
	BidAmount   float64 `json:"bid_amount"`
}

func (in GigInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ValidationError("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return ValidationError("description is required")
	}
	if in.Budget < 0 {
		return ValidationError("budget must not be negative")
	}
	return nil
}

func (in ProposalInput) Validate() error {
	if strings.TrimSpace(in.CoverLetter) == "" {
		return ValidationError("cover letter is required")
	}
	if in.BidAmount <= 0 {
		return ValidationError("bid amount must be positive")
	}
	return nil
}

// ProfileComplete is the submit-proposal gate: non-empty bio, at least one
// skill, non-empty phone.
func ProfileComplete(u *models.User) bool {
	if strings.TrimSpace(u.Bio) == "" || strings.TrimSpace(u.Phone) == "" {
		return false
	}
	var skills []string
	if len(u.Skills) == 0 {
		return false
	}
	if err := json.Unmarshal(u.Skills, &skills); err != nil {
		return false
	}
	return len(skills) > 0
}

// CanAccept checks the accept-proposal preconditions against loaded rows.
func CanAccept(gig *models.Gig, callerID string) error {
	if gig.ClientID.String() != callerID {
		return ErrNotGigOwner
	}
	if gig.Status != models.GigStatusOpen {
		return ErrGigNotOpen
	}
	return nil
}

// CanEditGig checks the edit-gig preconditions.
func CanEditGig(gig *models.Gig, callerID string) error {
	if gig.ClientID.String() != callerID {
		return ErrNotGigOwner
	}
	if gig.Status != models.GigStatusOpen {
		return ErrGigNotOpen
	}
	return nil
}

// CanEditProposal checks the edit-proposal preconditions. Accepted proposals
// are frozen.
func CanEditProposal(p *models.Proposal, callerID string) error {
	if p.StudentID.String() != callerID {
		return ErrNotProposalAuthor
	}
	if p.Status != models.ProposalStatusPending {
		return ErrProposalNotPending
	}
	return nil
}
