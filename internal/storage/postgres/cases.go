package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

type caseRepo struct {
	pool *pgxpool.Pool
}

const caseColumns = `id, user_id, title, item_type, description, price_category, photo1, photo2, photo3, created_at`

func scanCase(row pgx.Row) (*models.Case, error) {
	var c models.Case
	var photo1, photo2, photo3 pgtype.Text

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.ItemType,
		&c.Description,
		&c.PriceCategory,
		&photo1,
		&photo2,
		&photo3,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Photo1 = photo1.String
	c.Photo2 = photo2.String
	c.Photo3 = photo3.String
	return &c, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *caseRepo) Create(ctx context.Context, c *models.Case) (*models.Case, error) {
	created, err := scanCase(r.pool.QueryRow(ctx, `
		INSERT INTO cases (id, user_id, title, item_type, description, price_category, photo1, photo2, photo3)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+caseColumns+`
	`, uuid.New(), c.UserID, c.Title, c.ItemType, c.Description, c.PriceCategory,
		nullable(c.Photo1), nullable(c.Photo2), nullable(c.Photo3)))
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка сохранения кейса")
	}
	return created, nil
}

func (r *caseRepo) GetWithOwner(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	var owner models.User
	var photo1, photo2, photo3, username, region pgtype.Text

	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.user_id, c.title, c.item_type, c.description, c.price_category,
		       c.photo1, c.photo2, c.photo3, c.created_at,
		       u.id, u.telegram_id, u.name, u.username, u.region, u.rating, u.successful_exchanges, u.created_at
		FROM cases c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`, id).Scan(
		&c.ID, &c.UserID, &c.Title, &c.ItemType, &c.Description, &c.PriceCategory,
		&photo1, &photo2, &photo3, &c.CreatedAt,
		&owner.ID, &owner.TelegramID, &owner.Name, &username, &region,
		&owner.Rating, &owner.SuccessfulExchanges, &owner.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPg(err, "кейс не найден")
	}

	c.Photo1 = photo1.String
	c.Photo2 = photo2.String
	c.Photo3 = photo3.String
	owner.Username = username.String
	owner.Region = region.String
	c.Owner = &owner
	return &c, nil
}

func (r *caseRepo) UpdateOwned(ctx context.Context, ownerID, caseID uuid.UUID, upd storage.CaseUpdate) (*models.Case, error) {
	set := make([]string, 0, 7)
	args := make([]any, 0, 9)

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, nullable(*value))
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	appendSet("title", upd.Title)
	appendSet("item_type", upd.ItemType)
	appendSet("description", upd.Description)
	appendSet("price_category", upd.PriceCategory)
	appendSet("photo1", upd.Photo1)
	appendSet("photo2", upd.Photo2)
	appendSet("photo3", upd.Photo3)

	if len(set) == 0 {
		// Нечего менять — возвращаем текущее состояние с той же проверкой
		// владения
		c, err := scanCase(r.pool.QueryRow(ctx, `
			SELECT `+caseColumns+` FROM cases WHERE id = $1 AND user_id = $2
		`, caseID, ownerID))
		if err != nil {
			return nil, apperrors.FromPg(err, "кейс не найден или нет доступа")
		}
		return c, nil
	}

	args = append(args, caseID, ownerID)
	query := fmt.Sprintf(`
		UPDATE cases SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+caseColumns,
		strings.Join(set, ", "), len(args)-1, len(args))

	c, err := scanCase(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, apperrors.FromPg(err, "кейс не найден или нет доступа")
	}
	return c, nil
}

func (r *caseRepo) DeleteOwned(ctx context.Context, ownerID, caseID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM cases WHERE id = $1 AND user_id = $2
	`, caseID, ownerID)
	if err != nil {
		return apperrors.FromPg(err, "ошибка удаления кейса")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "кейс не найден или нет доступа")
	}
	return nil
}

func (r *caseRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Case, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+caseColumns+` FROM cases
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса кейсов")
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}
		cases = append(cases, *c)
	}
	return cases, rows.Err()
}

func (r *caseRepo) IDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id FROM cases WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса кейсов")
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

func (r *caseRepo) Search(ctx context.Context, excludeUserID uuid.UUID, itemType string, ownerIDs []uuid.UUID) ([]models.Case, error) {
	conditions := []string{"c.user_id != $1"}
	args := []any{excludeUserID}

	if itemType != "" {
		args = append(args, itemType)
		conditions = append(conditions, fmt.Sprintf("c.item_type = $%d", len(args)))
	}
	if ownerIDs != nil {
		args = append(args, ownerIDs)
		conditions = append(conditions, fmt.Sprintf("c.user_id = ANY($%d)", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.user_id, c.title, c.item_type, c.description, c.price_category,
		       c.photo1, c.photo2, c.photo3, c.created_at,
		       u.id, u.telegram_id, u.name, u.username, u.region, u.rating, u.successful_exchanges, u.created_at
		FROM cases c
		JOIN users u ON u.id = c.user_id
		WHERE %s
		ORDER BY c.created_at DESC
	`, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка поиска кейсов")
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		var c models.Case
		var owner models.User
		var photo1, photo2, photo3, username, region pgtype.Text

		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Title, &c.ItemType, &c.Description, &c.PriceCategory,
			&photo1, &photo2, &photo3, &c.CreatedAt,
			&owner.ID, &owner.TelegramID, &owner.Name, &username, &region,
			&owner.Rating, &owner.SuccessfulExchanges, &owner.CreatedAt,
		); err != nil {
			return nil, apperrors.FromPg(err, "ошибка сканирования строки")
		}

		c.Photo1 = photo1.String
		c.Photo2 = photo2.String
		c.Photo3 = photo3.String
		owner.Username = username.String
		owner.Region = region.String
		c.Owner = &owner
		cases = append(cases, c)
	}
	return cases, rows.Err()
}
