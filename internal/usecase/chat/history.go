package chat

import (
	"context"
	"strings"

	domain "github.com/barberiapro/booking-api/internal/domain/chat"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/models"
)

type GetHistory struct {
	store domain.Store
}

func NewGetHistory(store domain.Store) *GetHistory {
	return &GetHistory{store: store}
}

func (uc *GetHistory) Execute(
	ctx context.Context,
	sessionID string,
) ([]models.ChatMessage, error) {

	if strings.TrimSpace(sessionID) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeSessionRequired)
	}

	messages, err := uc.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages, nil
}
