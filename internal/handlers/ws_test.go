package handlers

import (
	"testing"

	"github.com/google/uuid"

	"github.com/raulniraj/CampusGig/internal/utils"
)

func TestCanSubscribe(t *testing.T) {
	me := uuid.New()
	peer := uuid.New()
	stranger := uuid.New()
	threadID := utils.ThreadID(me, peer)

	tests := []struct {
		name  string
		uid   uuid.UUID
		topic string
		want  bool
	}{
		{"own notifications", me, "notifications:" + me.String(), true},
		{"someone else's notifications", me, "notifications:" + stranger.String(), false},
		{"own chat thread", me, "chat:" + threadID, true},
		{"peer's side of same thread", peer, "chat:" + threadID, true},
		{"stranger on chat thread", stranger, "chat:" + threadID, false},
		{"public gigs", me, "gigs", true},
		{"public gig detail", me, "gig:" + uuid.New().String(), true},
		{"public proposals", me, "proposals:" + uuid.New().String(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canSubscribe(tt.uid, tt.topic); got != tt.want {
				t.Errorf("canSubscribe(%s) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}
