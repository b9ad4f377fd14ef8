package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

type notificationRepo struct {
	pool *pgxpool.Pool
}

func (r *notificationRepo) Insert(ctx context.Context, n models.MutualLikeNotification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO mutual_like_notifications (id, user1_id, user2_id, user1_case_id, user2_case_id)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), n.User1ID, n.User2ID, n.User1CaseID, n.User2CaseID)
	if err != nil {
		return apperrors.FromPg(err, "ошибка сохранения уведомления")
	}
	return nil
}

func (r *notificationRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.MutualLikeNotification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user1_id, user2_id, user1_case_id, user2_case_id, created_at
		FROM mutual_like_notifications
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса уведомлений")
	}
	defer rows.Close()

	var notifications []models.MutualLikeNotification
	for rows.Next() {
		var n models.MutualLikeNotification
		if err := rows.Scan(&n.ID, &n.User1ID, &n.User2ID, &n.User1CaseID, &n.User2CaseID, &n.CreatedAt); err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса уведомлений")
	}

	// Разрешаем участников и кейсы по одному; исчезнувшие ссылки остаются
	// nil, а не валят весь список
	users := &userRepo{pool: r.pool}
	cases := &caseRepo{pool: r.pool}
	for i := range notifications {
		n := &notifications[i]
		n.User1, _ = users.GetByID(ctx, n.User1ID)
		n.User2, _ = users.GetByID(ctx, n.User2ID)
		n.User1Case, _ = cases.GetWithOwner(ctx, n.User1CaseID)
		n.User2Case, _ = cases.GetWithOwner(ctx, n.User2CaseID)
	}
	return notifications, nil
}
