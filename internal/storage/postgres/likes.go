package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

type likeRepo struct {
	pool *pgxpool.Pool
}

func (r *likeRepo) Insert(ctx context.Context, userID, caseID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO likes (id, user_id, case_id)
		VALUES ($1, $2, $3)
	`, uuid.New(), userID, caseID)
	if err != nil {
		return apperrors.FromPg(err, "ошибка сохранения лайка")
	}
	return nil
}

func (r *likeRepo) CaseIDsLikedByWithin(ctx context.Context, userID uuid.UUID, within []uuid.UUID) ([]uuid.UUID, error) {
	if len(within) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT case_id FROM likes
		WHERE user_id = $1 AND case_id = ANY($2)
		ORDER BY created_at ASC
	`, userID, within)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса лайков")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type likedCaseRepo struct {
	pool *pgxpool.Pool
}

func (r *likedCaseRepo) Insert(ctx context.Context, lc models.LikedCase) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO liked_cases (id, user_id, case_id, title, item_type, description,
		                         price_category, photo1, photo2, photo3, owner_telegram_id, owner_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, uuid.New(), lc.UserID, lc.CaseID, lc.Title, lc.ItemType, lc.Description,
		lc.PriceCategory, nullable(lc.Photo1), nullable(lc.Photo2), nullable(lc.Photo3),
		lc.OwnerTelegramID, lc.OwnerName)
	if err != nil {
		return apperrors.FromPg(err, "ошибка сохранения снимка кейса")
	}
	return nil
}

func (r *likedCaseRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LikedCase, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, case_id, title, item_type, description, price_category,
		       photo1, photo2, photo3, owner_telegram_id, owner_name, created_at
		FROM liked_cases
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса избранного")
	}
	defer rows.Close()

	var liked []models.LikedCase
	for rows.Next() {
		var lc models.LikedCase
		var photo1, photo2, photo3 pgtype.Text

		if err := rows.Scan(
			&lc.ID, &lc.UserID, &lc.CaseID, &lc.Title, &lc.ItemType, &lc.Description,
			&lc.PriceCategory, &photo1, &photo2, &photo3, &lc.OwnerTelegramID,
			&lc.OwnerName, &lc.CreatedAt,
		); err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}

		lc.Photo1 = photo1.String
		lc.Photo2 = photo2.String
		lc.Photo3 = photo3.String
		liked = append(liked, lc)
	}
	return liked, rows.Err()
}
