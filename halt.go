package okta

import (
	"context"
	"time"
)

// unknownUserID is the sentinel reported when a halted invocation never
// carried a user identifier.
const unknownUserID = "unknown"

// HaltAck acknowledges a framework-initiated cancellation.
type HaltAck struct {
	UserID           string    `json:"userId"`
	Reason           string    `json:"reason"`
	HaltedAt         time.Time `json:"haltedAt"`
	CleanupCompleted bool      `json:"cleanupCompleted"`
}

// HandleHalt is the framework cancellation hook. Both outbound calls are
// atomic on the provider side and nothing persists between them, so there is
// no state to roll back; the acknowledgment is unconditional and no network
// calls are made.
func (h *UnsuspendUserHandler) HandleHalt(ctx context.Context, msg UnsuspendUserMessage, reason string) HaltAck {
	userID := msg.UserID
	if userID == "" {
		userID = unknownUserID
	}

	h.logger.Info("halting unsuspend for user %q: %s", userID, reason)

	return HaltAck{
		UserID:           userID,
		Reason:           reason,
		HaltedAt:         h.now().UTC(),
		CleanupCompleted: true,
	}
}
