package gigflow

import "errors"

// Precondition failures. Races between two callers (two tabs, client and
// student acting at once) surface as these; they are expected outcomes, not
// faults, and handlers map them to 4xx responses.
var (
	ErrGigNotOpen         = errors.New("gig is no longer open")
	ErrNotGigOwner        = errors.New("only the gig's client can do this")
	ErrNotProposalAuthor  = errors.New("only the proposal's author can do this")
	ErrProposalNotPending = errors.New("proposal is no longer pending")
	ErrDuplicateProposal  = errors.New("a proposal for this gig already exists")
	ErrProfileIncomplete  = errors.New("complete your profile (bio, skills, phone) before submitting")
	ErrNotStudent         = errors.New("only students can submit proposals")
	ErrNotClient          = errors.New("only clients can post gigs")
)
