package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

type interestRepo struct {
	pool *pgxpool.Pool
}

func (r *interestRepo) Create(ctx context.Context, userID uuid.UUID, itemType, priceCategory string) (*models.Interest, error) {
	var interest models.Interest
	err := r.pool.QueryRow(ctx, `
		INSERT INTO interests (id, user_id, item_type, price_category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, item_type, price_category, created_at
	`, uuid.New(), userID, itemType, priceCategory).Scan(
		&interest.ID, &interest.UserID, &interest.ItemType, &interest.PriceCategory, &interest.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка сохранения пожелания")
	}
	return &interest, nil
}

func (r *interestRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Interest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, item_type, price_category, created_at
		FROM interests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса пожеланий")
	}
	defer rows.Close()

	var interests []models.Interest
	for rows.Next() {
		var interest models.Interest
		if err := rows.Scan(&interest.ID, &interest.UserID, &interest.ItemType,
			&interest.PriceCategory, &interest.CreatedAt); err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}
		interests = append(interests, interest)
	}
	return interests, rows.Err()
}

func (r *interestRepo) DeleteOwned(ctx context.Context, userID, interestID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM interests WHERE id = $1 AND user_id = $2
	`, interestID, userID)
	if err != nil {
		return apperrors.FromPg(err, "ошибка удаления пожелания")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "пожелание не найдено или нет доступа")
	}
	return nil
}
