package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestThreadID_OrderIndependent(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	if ThreadID(a, b) != ThreadID(b, a) {
		t.Errorf("ThreadID(a,b) = %s, ThreadID(b,a) = %s; want equal", ThreadID(a, b), ThreadID(b, a))
	}
}

func TestThreadID_Deterministic(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	want := "11111111-1111-1111-1111-111111111111_22222222-2222-2222-2222-222222222222"
	if got := ThreadID(b, a); got != want {
		t.Errorf("ThreadID = %s, want %s", got, want)
	}
}

func TestThreadHasParticipant(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	other := uuid.New()
	threadID := ThreadID(a, b)

	if !ThreadHasParticipant(threadID, a) {
		t.Error("expected a to be a participant")
	}
	if !ThreadHasParticipant(threadID, b) {
		t.Error("expected b to be a participant")
	}
	if ThreadHasParticipant(threadID, other) {
		t.Error("expected other not to be a participant")
	}
	if ThreadHasParticipant("garbage", a) {
		t.Error("expected malformed thread id to match nobody")
	}
}
