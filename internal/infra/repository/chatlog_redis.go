package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/barberiapro/booking-api/internal/domain/chat"
	"github.com/barberiapro/booking-api/internal/models"
)

const chatKeyPrefix = "chat:session:"

// ChatLogRedisStore keeps one redis list per session. RPUSH preserves
// append order, which is the transcript's chronological order.
type ChatLogRedisStore struct {
	rdb *redis.Client
}

func NewChatLogRedisStore(rdb *redis.Client) *ChatLogRedisStore {
	return &ChatLogRedisStore{rdb: rdb}
}

func chatKey(sessionID string) string {
	return chatKeyPrefix + sessionID
}

func (s *ChatLogRedisStore) AppendMessage(
	ctx context.Context,
	sessionID string,
	role string,
	content string,
) (*models.ChatMessage, error) {

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	if err := s.rdb.RPush(ctx, chatKey(sessionID), payload).Err(); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (s *ChatLogRedisStore) ListMessages(
	ctx context.Context,
	sessionID string,
) ([]models.ChatMessage, error) {

	raw, err := s.rdb.LRange(ctx, chatKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]models.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Compile-time check
var _ chat.Store = (*ChatLogRedisStore)(nil)
