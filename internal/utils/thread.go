package utils

import "github.com/google/uuid"

// ThreadID derives the chat thread identity from its two participants:
// the ids sorted and joined with "_". Both sides (and any reconnect) compute
// the same id without a lookup, so threads are never stored as rows.
func ThreadID(a, b uuid.UUID) string {
	x, y := a.String(), b.String()
	if x > y {
		x, y = y, x
	}
	return x + "_" + y
}

// ThreadHasParticipant reports whether uid is one of the two ids a thread id
// was derived from.
func ThreadHasParticipant(threadID string, uid uuid.UUID) bool {
	s := uid.String()
	if len(threadID) != 2*len(s)+1 {
		return false
	}
	return threadID[:len(s)] == s || threadID[len(s)+1:] == s
}
