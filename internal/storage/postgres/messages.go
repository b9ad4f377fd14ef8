package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

type messageRepo struct {
	pool *pgxpool.Pool
}

const messageColumns = `id, from_user_id, to_user_id, message_text, is_read, created_at`

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.MessageText, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepo) Insert(ctx context.Context, fromUserID, toUserID uuid.UUID, text string) (*models.Message, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx, `
		INSERT INTO messages (id, from_user_id, to_user_id, message_text, is_read)
		VALUES ($1, $2, $3, $4, false)
		RETURNING `+messageColumns+`
	`, uuid.New(), fromUserID, toUserID, text))
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка отправки сообщения")
	}
	return m, nil
}

func (r *messageRepo) Conversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
		ORDER BY created_at ASC
	`, userID, otherUserID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса сообщений")
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

func (r *messageRepo) MarkRead(ctx context.Context, toUserID, fromUserID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE messages SET is_read = true
		WHERE to_user_id = $1 AND from_user_id = $2 AND is_read = false
	`, toUserID, fromUserID)
	if err != nil {
		return apperrors.FromPg(err, "ошибка отметки сообщений прочитанными")
	}
	return nil
}

func (r *messageRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса сообщений")
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса сообщений")
	}

	// Подтягиваем собеседников для группировки чатов
	users := &userRepo{pool: r.pool}
	cache := make(map[uuid.UUID]*models.User)
	resolve := func(id uuid.UUID) *models.User {
		if u, ok := cache[id]; ok {
			return u
		}
		u, _ := users.GetByID(ctx, id)
		cache[id] = u
		return u
	}
	for i := range messages {
		messages[i].FromUser = resolve(messages[i].FromUserID)
		messages[i].ToUser = resolve(messages[i].ToUserID)
	}
	return messages, nil
}
