package chat

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (r *fakeUserRepo) GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	return nil, apperrors.New(apperrors.CodeNotFound, "пользователь не найден")
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "пользователь не найден")
	}
	return u, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, telegramID, name, username string) (*models.User, error) {
	return nil, apperrors.New(apperrors.CodeDB, "не используется")
}

func (r *fakeUserRepo) UpdateRegion(ctx context.Context, id uuid.UUID, region string) (*models.User, error) {
	return nil, apperrors.New(apperrors.CodeDB, "не используется")
}

func (r *fakeUserRepo) IncrementExchangeStats(ctx context.Context, id uuid.UUID) error {
	return apperrors.New(apperrors.CodeDB, "не используется")
}

func (r *fakeUserRepo) IDsByRegion(ctx context.Context, region string) ([]uuid.UUID, error) {
	return nil, nil
}

type fakeMessageRepo struct {
	users    *fakeUserRepo
	messages []*models.Message
}

func (r *fakeMessageRepo) Insert(ctx context.Context, fromUserID, toUserID uuid.UUID, text string) (*models.Message, error) {
	m := &models.Message{
		ID:          uuid.New(),
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		MessageText: text,
		CreatedAt:   time.Now().Add(time.Duration(len(r.messages)) * time.Second),
	}
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *fakeMessageRepo) Conversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if (m.FromUserID == userID && m.ToUserID == otherUserID) ||
			(m.FromUserID == otherUserID && m.ToUserID == userID) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, toUserID, fromUserID uuid.UUID) error {
	for _, m := range r.messages {
		if m.ToUserID == toUserID && m.FromUserID == fromUserID {
			m.IsRead = true
		}
	}
	return nil
}

func (r *fakeMessageRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	var out []models.Message
	// От новых к старым
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		if m.FromUserID != userID && m.ToUserID != userID {
			continue
		}
		copied := *m
		copied.FromUser = r.users.users[m.FromUserID]
		copied.ToUser = r.users.users[m.ToUserID]
		out = append(out, copied)
	}
	return out, nil
}

type fixture struct {
	svc   *ChatService
	msgs  *fakeMessageRepo
	anna  *models.User
	boris *models.User
	vera  *models.User
}

func newFixture() *fixture {
	users := &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
	msgs := &fakeMessageRepo{users: users}
	store := &storage.Store{Users: users, Messages: msgs}

	f := &fixture{
		svc:   NewChatService(store, zerolog.Nop()),
		msgs:  msgs,
		anna:  &models.User{ID: uuid.New(), Name: "anna"},
		boris: &models.User{ID: uuid.New(), Name: "boris"},
		vera:  &models.User{ID: uuid.New(), Name: "vera"},
	}
	users.users[f.anna.ID] = f.anna
	users.users[f.boris.ID] = f.boris
	users.users[f.vera.ID] = f.vera
	return f
}

func TestSendValidation(t *testing.T) {
	f := newFixture()

	if _, err := f.svc.Send(context.Background(), f.anna.ID, f.boris.ID, "   "); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Fatalf("blank text err = %v, want validation", err)
	}
	if _, err := f.svc.Send(context.Background(), f.anna.ID, f.anna.ID, "привет"); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Fatalf("self message err = %v, want validation", err)
	}
	if _, err := f.svc.Send(context.Background(), f.anna.ID, uuid.New(), "привет"); !apperrors.IsNotFound(err) {
		t.Fatalf("unknown recipient err = %v, want not found", err)
	}

	msg, err := f.svc.Send(context.Background(), f.anna.ID, f.boris.ID, "  привет  ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.MessageText != "привет" {
		t.Fatalf("text = %q, want trimmed", msg.MessageText)
	}
}

func TestConversationMarksRead(t *testing.T) {
	f := newFixture()
	_, _ = f.svc.Send(context.Background(), f.boris.ID, f.anna.ID, "привет")
	_, _ = f.svc.Send(context.Background(), f.boris.ID, f.anna.ID, "как дела?")

	msgs, err := f.svc.Conversation(context.Background(), f.anna.ID, f.boris.ID)
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}

	for _, m := range f.msgs.messages {
		if m.ToUserID == f.anna.ID && !m.IsRead {
			t.Fatal("incoming message left unread after opening conversation")
		}
	}
}

func TestChatsGroupsByCounterpart(t *testing.T) {
	f := newFixture()
	_, _ = f.svc.Send(context.Background(), f.boris.ID, f.anna.ID, "привет")
	_, _ = f.svc.Send(context.Background(), f.anna.ID, f.boris.ID, "привет, boris")
	_, _ = f.svc.Send(context.Background(), f.boris.ID, f.anna.ID, "меняемся?")
	_, _ = f.svc.Send(context.Background(), f.vera.ID, f.anna.ID, "ще актуально?")

	chats, err := f.svc.Chats(context.Background(), f.anna.ID)
	if err != nil {
		t.Fatalf("Chats: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("chats = %d, want 2", len(chats))
	}

	// Сначала переписка с самым свежим сообщением
	if chats[0].User.ID != f.vera.ID {
		t.Fatalf("first chat with %s, want vera", chats[0].User.Name)
	}
	if chats[0].LastMessage.MessageText != "ще актуально?" || chats[0].UnreadCount != 1 {
		t.Fatalf("vera preview = %+v", chats[0])
	}

	if chats[1].User.ID != f.boris.ID {
		t.Fatalf("second chat with %s, want boris", chats[1].User.Name)
	}
	if chats[1].LastMessage.MessageText != "меняемся?" {
		t.Fatalf("boris last message = %q", chats[1].LastMessage.MessageText)
	}
	if chats[1].UnreadCount != 2 {
		t.Fatalf("boris unread = %d, want 2", chats[1].UnreadCount)
	}
}
