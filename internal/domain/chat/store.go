package chat

import (
	"context"

	"github.com/barberiapro/booking-api/internal/models"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Store is the append-only per-session transcript. AppendMessage assigns
// the id and timestamp server-side; ListMessages returns the session's
// messages in append (chronological) order.
type Store interface {
	AppendMessage(ctx context.Context, sessionID, role, content string) (*models.ChatMessage, error)

	ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}
