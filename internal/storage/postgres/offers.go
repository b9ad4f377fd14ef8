package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

type offerRepo struct {
	pool *pgxpool.Pool
}

const offerColumns = `id, from_user_id, to_user_id, offered_case_id, requested_case_id, status, created_at, updated_at`

func scanOffer(row pgx.Row) (*models.ExchangeOffer, error) {
	var offer models.ExchangeOffer
	err := row.Scan(
		&offer.ID,
		&offer.FromUserID,
		&offer.ToUserID,
		&offer.OfferedCaseID,
		&offer.RequestedCaseID,
		&offer.Status,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepo) Create(ctx context.Context, fromUserID, toUserID, offeredCaseID, requestedCaseID uuid.UUID) (*models.ExchangeOffer, error) {
	offer, err := scanOffer(r.pool.QueryRow(ctx, `
		INSERT INTO exchange_offers (id, from_user_id, to_user_id, offered_case_id, requested_case_id, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING `+offerColumns+`
	`, uuid.New(), fromUserID, toUserID, offeredCaseID, requestedCaseID))
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка создания предложения обмена")
	}
	return offer, nil
}

func (r *offerRepo) Get(ctx context.Context, id uuid.UUID) (*models.ExchangeOffer, error) {
	offer, err := scanOffer(r.pool.QueryRow(ctx, `
		SELECT `+offerColumns+` FROM exchange_offers WHERE id = $1
	`, id))
	if err != nil {
		return nil, apperrors.FromPg(err, "предложение обмена не найдено")
	}
	return offer, nil
}

func (r *offerRepo) ResolveIfPending(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	// Переход разрешён только из pending: повторный ответ не применяется
	tag, err := r.pool.Exec(ctx, `
		UPDATE exchange_offers
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`, status, id)
	if err != nil {
		return false, apperrors.FromPg(err, "ошибка обновления статуса предложения")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *offerRepo) AcceptedForUser(ctx context.Context, userID uuid.UUID) ([]models.ExchangeOffer, error) {
	return r.list(ctx, `
		SELECT `+offerColumns+` FROM exchange_offers
		WHERE status = 'accepted' AND (from_user_id = $1 OR to_user_id = $1)
		ORDER BY created_at DESC
	`, userID)
}

func (r *offerRepo) PendingForUser(ctx context.Context, userID uuid.UUID) ([]models.ExchangeOffer, error) {
	return r.list(ctx, `
		SELECT `+offerColumns+` FROM exchange_offers
		WHERE status = 'pending' AND to_user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *offerRepo) list(ctx context.Context, query string, userID uuid.UUID) ([]models.ExchangeOffer, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса предложений обмена")
	}
	defer rows.Close()

	var offers []models.ExchangeOffer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}
		offers = append(offers, *offer)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса предложений обмена")
	}

	// Разрешаем участников и кейсы; удалённый кейс оставляет поле nil
	users := &userRepo{pool: r.pool}
	cases := &caseRepo{pool: r.pool}
	for i := range offers {
		offer := &offers[i]
		offer.FromUser, _ = users.GetByID(ctx, offer.FromUserID)
		offer.ToUser, _ = users.GetByID(ctx, offer.ToUserID)
		if offer.OfferedCaseID != nil {
			offer.OfferedCase, _ = cases.GetWithOwner(ctx, *offer.OfferedCaseID)
		}
		if offer.RequestedCaseID != nil {
			offer.RequestedCase, _ = cases.GetWithOwner(ctx, *offer.RequestedCaseID)
		}
	}
	return offers, nil
}
