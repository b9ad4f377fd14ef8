// Package chat реализует личные сообщения между пользователями.
package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// ChatService представляет сервис личных сообщений
type ChatService struct {
	users    storage.UserRepo
	messages storage.MessageRepo
	log      zerolog.Logger
}

// NewChatService создает новый экземпляр ChatService
func NewChatService(store *storage.Store, log zerolog.Logger) *ChatService {
	return &ChatService{
		users:    store.Users,
		messages: store.Messages,
		log:      log.With().Str("service", "chat").Logger(),
	}
}

// Send отправляет сообщение другому пользователю
func (s *ChatService) Send(ctx context.Context, fromUserID, toUserID uuid.UUID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "текст сообщения пуст")
	}
	if fromUserID == toUserID {
		return nil, apperrors.New(apperrors.CodeValidation, "нельзя отправить сообщение самому себе")
	}
	if _, err := s.users.GetByID(ctx, toUserID); err != nil {
		return nil, err
	}
	return s.messages.Insert(ctx, fromUserID, toUserID, text)
}

// Conversation возвращает переписку с другим пользователем и попутно
// помечает его входящие сообщения прочитанными
func (s *ChatService) Conversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error) {
	msgs, err := s.messages.Conversation(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	if err := s.messages.MarkRead(ctx, userID, otherUserID); err != nil {
		// Непрочитанный счётчик поправится при следующем открытии
		s.log.Error().Err(err).Msg("не удалось пометить сообщения прочитанными")
	}
	return msgs, nil
}

// Chats группирует сообщения пользователя по собеседникам: последнее
// сообщение каждой переписки и число непрочитанных
func (s *ChatService) Chats(ctx context.Context, userID uuid.UUID) ([]models.ChatPreview, error) {
	msgs, err := s.messages.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	previews := make([]models.ChatPreview, 0)
	index := make(map[uuid.UUID]int)

	// Сообщения идут от новых к старым: первое встреченное для собеседника
	// и есть последнее в переписке
	for i := range msgs {
		m := msgs[i]
		otherID := m.ToUserID
		other := m.ToUser
		if m.ToUserID == userID {
			otherID = m.FromUserID
			other = m.FromUser
		}

		pos, ok := index[otherID]
		if !ok {
			index[otherID] = len(previews)
			previews = append(previews, models.ChatPreview{
				User:        other,
				LastMessage: &msgs[i],
			})
			pos = index[otherID]
		}
		if m.ToUserID == userID && !m.IsRead {
			previews[pos].UnreadCount++
		}
	}

	return previews, nil
}
