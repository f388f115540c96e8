package chat

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/barberiapro/booking-api/internal/ai"
	"github.com/barberiapro/booking-api/internal/audit"
	domainAppt "github.com/barberiapro/booking-api/internal/domain/appointment"
	domain "github.com/barberiapro/booking-api/internal/domain/chat"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type SendMessage struct {
	catalog   domainAppt.Repository
	store     domain.Store
	completer ai.Completer
	timeout   time.Duration
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewSendMessage(
	catalog domainAppt.Repository,
	store domain.Store,
	completer ai.Completer,
	timeout time.Duration,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *SendMessage {
	return &SendMessage{
		catalog:   catalog,
		store:     store,
		completer: completer,
		timeout:   timeout,
		audit:     auditDispatcher,
		log:       log,
	}
}

// Execute appends the user's turn, produces a reply, and appends the
// assistant's turn. The two entries are never merged, and the user always
// gets some textual reply: every upstream failure resolves to a canned
// answer locally.
func (uc *SendMessage) Execute(
	ctx context.Context,
	sessionID string,
	message string,
) (*models.ChatMessage, error) {

	ve := httperr.NewValidation()
	if strings.TrimSpace(sessionID) == "" {
		ve.Add("session_id", "required")
	}
	if strings.TrimSpace(message) == "" {
		ve.Add("message", "required")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	if _, err := uc.store.AppendMessage(ctx, sessionID, domain.RoleUser, message); err != nil {
		return nil, err
	}

	reply := uc.respond(ctx, sessionID, message)

	assistant, err := uc.store.AppendMessage(ctx, sessionID, domain.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}

	return assistant, nil
}

// respond attempts the AI completion and falls back to the keyword
// matcher on any failure or empty reply.
func (uc *SendMessage) respond(ctx context.Context, sessionID, message string) string {
	system, err := uc.systemPrompt(ctx)
	if err != nil {
		uc.log.Warn("catalog unavailable for chat prompt", zap.Error(err))
		uc.dispatchFallback(sessionID, "catalog_error")
		return domain.Fallback(message)
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	reply, err := uc.completer.Complete(callCtx, system, message)
	if err != nil {
		reason := "upstream_error"
		if ai.IsQuota(err) {
			reason = "quota_exceeded"
		}
		uc.log.Warn("AI completion failed, using fallback",
			zap.String("reason", reason),
			zap.Error(err),
		)
		uc.dispatchFallback(sessionID, reason)
		return domain.Fallback(message)
	}

	if strings.TrimSpace(reply) == "" {
		uc.dispatchFallback(sessionID, "empty_completion")
		return domain.Fallback(message)
	}

	return reply
}

func (uc *SendMessage) systemPrompt(ctx context.Context) (string, error) {
	barbers, err := uc.catalog.ListBarbers(ctx)
	if err != nil {
		return "", err
	}

	services, err := uc.catalog.ListServices(ctx)
	if err != nil {
		return "", err
	}

	return domain.SystemPrompt(barbers, services), nil
}

func (uc *SendMessage) dispatchFallback(sessionID, reason string) {
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionChatFallback,
		Entity:   "chat_session",
		EntityID: sessionID,
		Metadata: map[string]string{"reason": reason},
	})
}
