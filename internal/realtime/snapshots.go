package realtime

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raulniraj/CampusGig/internal/models"
)

// Topic names understood by the snapshot store. Each maps a page's data need
// onto one live query.
const (
	TopicGigs = "gigs"

	topicGigPrefix           = "gig:"
	topicProposalsPrefix     = "proposals:"
	topicNotificationsPrefix = "notifications:"
	topicChatPrefix          = "chat:"
)

func TopicGig(id uuid.UUID) string            { return topicGigPrefix + id.String() }
func TopicProposals(gigID uuid.UUID) string   { return topicProposalsPrefix + gigID.String() }
func TopicNotifications(uid uuid.UUID) string { return topicNotificationsPrefix + uid.String() }
func TopicChat(threadID string) string        { return topicChatPrefix + threadID }

// Store resolves topics to snapshots straight from the database, so every
// push reflects committed state at delivery time.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Snapshot(topic string) (interface{}, error) {
	switch {
	case topic == TopicGigs:
		var gigs []models.Gig
		err := s.DB.
			Where("status = ?", models.GigStatusOpen).
			Order("posted_at DESC").
			Find(&gigs).Error
		return gigs, err

	case strings.HasPrefix(topic, topicGigPrefix):
		id, err := uuid.Parse(strings.TrimPrefix(topic, topicGigPrefix))
		if err != nil {
			return nil, err
		}
		var gig models.Gig
		if err := s.DB.First(&gig, "id = ?", id).Error; err != nil {
			return nil, err
		}
		return gig, nil

	case strings.HasPrefix(topic, topicProposalsPrefix):
		gigID, err := uuid.Parse(strings.TrimPrefix(topic, topicProposalsPrefix))
		if err != nil {
			return nil, err
		}
		var proposals []models.Proposal
		err = s.DB.
			Where("gig_id = ?", gigID).
			Order("submitted_at DESC").
			Find(&proposals).Error
		return proposals, err

	case strings.HasPrefix(topic, topicNotificationsPrefix):
		uid, err := uuid.Parse(strings.TrimPrefix(topic, topicNotificationsPrefix))
		if err != nil {
			return nil, err
		}
		var notifs []models.Notification
		err = s.DB.
			Where("user_id = ?", uid).
			Order("created_at DESC").
			Find(&notifs).Error
		return notifs, err

	case strings.HasPrefix(topic, topicChatPrefix):
		threadID := strings.TrimPrefix(topic, topicChatPrefix)
		var messages []models.ChatMessage
		err := s.DB.
			Where("thread_id = ?", threadID).
			Order("created_at ASC").
			Find(&messages).Error
		return messages, err
	}

	return nil, fmt.Errorf("unknown topic: %s", topic)
}
