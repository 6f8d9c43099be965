package gigflow

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/raulniraj/CampusGig/internal/models"
)

func TestGigInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      GigInput
		wantErr bool
	}{
		{"valid", GigInput{Title: "Tutor needed", Description: "Weekly calculus help", Budget: 50}, false},
		{"zero budget ok", GigInput{Title: "t", Description: "d", Budget: 0}, false},
		{"missing title", GigInput{Description: "d", Budget: 10}, true},
		{"blank title", GigInput{Title: "   ", Description: "d", Budget: 10}, true},
		{"missing description", GigInput{Title: "t", Budget: 10}, true},
		{"negative budget", GigInput{Title: "t", Description: "d", Budget: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProposalInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ProposalInput
		wantErr bool
	}{
		{"valid", ProposalInput{CoverLetter: "I can help", BidAmount: 40}, false},
		{"empty cover letter", ProposalInput{BidAmount: 40}, true},
		{"blank cover letter", ProposalInput{CoverLetter: " ", BidAmount: 40}, true},
		{"zero bid", ProposalInput{CoverLetter: "x", BidAmount: 0}, true},
		{"negative bid", ProposalInput{CoverLetter: "x", BidAmount: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func completeStudent() *models.User {
	return &models.User{
		ID:     uuid.New(),
		Role:   models.RoleStudent,
		Bio:    "Math tutor, 3rd year",
		Skills: datatypes.JSON([]byte(`["math"]`)),
		Phone:  "555-0101",
	}
}

func TestProfileComplete(t *testing.T) {
	u := completeStudent()
	if !ProfileComplete(u) {
		t.Fatal("expected complete profile to pass")
	}

	missingPhone := completeStudent()
	missingPhone.Phone = ""
	if ProfileComplete(missingPhone) {
		t.Error("expected missing phone to fail")
	}

	missingBio := completeStudent()
	missingBio.Bio = "  "
	if ProfileComplete(missingBio) {
		t.Error("expected blank bio to fail")
	}

	noSkills := completeStudent()
	noSkills.Skills = datatypes.JSON([]byte(`[]`))
	if ProfileComplete(noSkills) {
		t.Error("expected empty skills to fail")
	}

	nilSkills := completeStudent()
	nilSkills.Skills = nil
	if ProfileComplete(nilSkills) {
		t.Error("expected nil skills to fail")
	}
}

func TestCanAccept(t *testing.T) {
	owner := uuid.New()
	gig := &models.Gig{ID: uuid.New(), ClientID: owner, Status: models.GigStatusOpen}

	if err := CanAccept(gig, owner.String()); err != nil {
		t.Errorf("owner on open gig: %v", err)
	}
	if err := CanAccept(gig, uuid.New().String()); err != ErrNotGigOwner {
		t.Errorf("stranger: got %v, want ErrNotGigOwner", err)
	}

	gig.Status = models.GigStatusInProgress
	if err := CanAccept(gig, owner.String()); err != ErrGigNotOpen {
		t.Errorf("in-progress gig: got %v, want ErrGigNotOpen", err)
	}
}

func TestCanEditGig(t *testing.T) {
	owner := uuid.New()
	gig := &models.Gig{ID: uuid.New(), ClientID: owner, Status: models.GigStatusInProgress}

	if err := CanEditGig(gig, owner.String()); err != ErrGigNotOpen {
		t.Errorf("in-progress gig: got %v, want ErrGigNotOpen", err)
	}

	gig.Status = models.GigStatusOpen
	if err := CanEditGig(gig, owner.String()); err != nil {
		t.Errorf("owner on open gig: %v", err)
	}
}

func TestCanEditProposal(t *testing.T) {
	author := uuid.New()
	p := &models.Proposal{ID: uuid.New(), StudentID: author, Status: models.ProposalStatusPending}

	if err := CanEditProposal(p, author.String()); err != nil {
		t.Errorf("author on pending proposal: %v", err)
	}
	if err := CanEditProposal(p, uuid.New().String()); err != ErrNotProposalAuthor {
		t.Errorf("stranger: got %v, want ErrNotProposalAuthor", err)
	}

	p.Status = models.ProposalStatusAccepted
	if err := CanEditProposal(p, author.String()); err != ErrProposalNotPending {
		t.Errorf("accepted proposal: got %v, want ErrProposalNotPending", err)
	}
}
