package gigflow

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raulniraj/CampusGig/internal/models"
	"github.com/raulniraj/CampusGig/internal/realtime"
	"github.com/raulniraj/CampusGig/internal/services/notify"
)

// Service performs the multi-row writes behind gig and proposal state
// changes. Preconditions are checked here, at the single choke point in
// front of every write, instead of being scattered across handlers.
type Service struct {
	DB     *gorm.DB
	Notify *notify.Dispatcher
	Events *realtime.Events
}

func NewService(db *gorm.DB, dispatcher *notify.Dispatcher, events *realtime.Events) *Service {
	return &Service{DB: db, Notify: dispatcher, Events: events}
}

func (s *Service) publish(topics ...string) {
	if s.Events != nil {
		s.Events.Publish(topics...)
	}
}

func skillsJSON(skills []string) datatypes.JSON {
	if skills == nil {
		skills = []string{}
	}
	b, _ := json.Marshal(skills)
	return datatypes.JSON(b)
}

// lockForUpdate takes a row lock, so concurrent transitions on the same row
// serialize and the loser re-reads the already-changed state.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// PostGig creates an open gig owned by the calling client.
func (s *Service) PostGig(client *models.User, in GigInput) (*models.Gig, error) {
	if client.Role != models.RoleClient {
		return nil, ErrNotClient
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	gig := models.Gig{
		ID:          uuid.New(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Title:       in.Title,
		Description: in.Description,
		Skills:      skillsJSON(in.Skills),
		Budget:      in.Budget,
		Status:      models.GigStatusOpen,
		PostedAt:    time.Now(),
	}
	if err := s.DB.Create(&gig).Error; err != nil {
		return nil, err
	}

	s.publish(realtime.TopicGigs)
	return &gig, nil
}

// EditGig overwrites title/description/skills/budget while the gig is open.
// Existing proposals are untouched.
func (s *Service) EditGig(callerID uuid.UUID, gigID uuid.UUID, in GigInput) (*models.Gig, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var gig models.Gig
	if err := s.DB.First(&gig, "id = ?", gigID).Error; err != nil {
		return nil, err
	}
	if err := CanEditGig(&gig, callerID.String()); err != nil {
		return nil, err
	}

	gig.Title = in.Title
	gig.Description = in.Description
	gig.Skills = skillsJSON(in.Skills)
	gig.Budget = in.Budget
	if err := s.DB.Save(&gig).Error; err != nil {
		return nil, err
	}

	s.publish(realtime.TopicGigs, realtime.TopicGig(gig.ID))
	return &gig, nil
}

// SubmitProposal creates a pending proposal. The duplicate check is
// check-then-write, but the (gig_id, student_id) unique index catches the
// two-tabs race the check cannot.
func (s *Service) SubmitProposal(student *models.User, gigID uuid.UUID, in ProposalInput) (*models.Proposal, error) {
	if student.Role != models.RoleStudent {
		return nil, ErrNotStudent
	}
	if !ProfileComplete(student) {
		return nil, ErrProfileIncomplete
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var gig models.Gig
	if err := s.DB.First(&gig, "id = ?", gigID).Error; err != nil {
		return nil, err
	}
	if gig.Status != models.GigStatusOpen {
		return nil, ErrGigNotOpen
	}

	exists, err := s.proposalExists(gigID, student.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateProposal
	}

	proposal := models.Proposal{
		ID:          uuid.New(),
		GigID:       gigID,
		StudentID:   student.ID,
		StudentName: student.Name,
		CoverLetter: in.CoverLetter,
		BidAmount:   in.BidAmount,
		Status:      models.ProposalStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.DB.Create(&proposal).Error; err != nil {
		return nil, duplicateProposalErr(err)
	}

	s.publish(realtime.TopicProposals(gigID))
	return &proposal, nil
}

func (s *Service) proposalExists(gigID, studentID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Proposal{}).
		Where("gig_id = ? AND student_id = ?", gigID, studentID).
		Count(&count).Error
	return count > 0, err
}

// duplicateProposalErr translates the unique-index violation from the
// two-tabs race into the same sentinel the pre-check uses.
func duplicateProposalErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateProposal
	}
	return err
}

// EditProposal overwrites cover letter and bid while the proposal is pending.
// GigID, StudentID and Status never change here.
func (s *Service) EditProposal(callerID uuid.UUID, proposalID uuid.UUID, in ProposalInput) (*models.Proposal, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var proposal models.Proposal
	if err := s.DB.First(&proposal, "id = ?", proposalID).Error; err != nil {
		return nil, err
	}
	if err := CanEditProposal(&proposal, callerID.String()); err != nil {
		return nil, err
	}

	proposal.CoverLetter = in.CoverLetter
	proposal.BidAmount = in.BidAmount
	if err := s.DB.Save(&proposal).Error; err != nil {
		return nil, err
	}

	s.publish(realtime.TopicProposals(proposal.GigID))
	return &proposal, nil
}

// AcceptProposal moves a gig from open to in-progress: one notification for
// the student, the gig update, and the proposal update, committed together.
// The gig row is locked so two concurrent accepts cannot both pass the
// status check; the loser sees ErrGigNotOpen. Other pending proposals are
// left pending.
func (s *Service) AcceptProposal(callerID uuid.UUID, proposalID uuid.UUID) (*models.Gig, *models.Proposal, error) {
	var gig models.Gig
	var proposal models.Proposal

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&proposal, "id = ?", proposalID).Error; err != nil {
			return err
		}

		if err := lockForUpdate(tx).First(&gig, "id = ?", proposal.GigID).Error; err != nil {
			return err
		}

		if err := CanAccept(&gig, callerID.String()); err != nil {
			return err
		}

		if _, err := s.Notify.Create(tx, proposal.StudentID,
			"Proposal accepted",
			"Your proposal for \""+gig.Title+"\" was accepted. You can now chat with the client.",
			"/gig/"+gig.ID.String(),
		); err != nil {
			return err
		}

		now := time.Now()
		bid := proposal.BidAmount
		gig.Status = models.GigStatusInProgress
		gig.AcceptedStudentID = &proposal.StudentID
		gig.FinalBid = &bid
		gig.UpdatedAt = now
		if err := tx.Save(&gig).Error; err != nil {
			return err
		}

		proposal.Status = models.ProposalStatusAccepted
		proposal.UpdatedAt = now
		return tx.Save(&proposal).Error
	})
	if err != nil {
		return nil, nil, err
	}

	s.publish(
		realtime.TopicGigs,
		realtime.TopicGig(gig.ID),
		realtime.TopicProposals(gig.ID),
		realtime.TopicNotifications(proposal.StudentID),
	)
	return &gig, &proposal, nil
}
