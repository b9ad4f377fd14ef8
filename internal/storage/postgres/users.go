package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

type userRepo struct {
	pool *pgxpool.Pool
}

const userColumns = `id, telegram_id, name, username, region, rating, successful_exchanges, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var username, region pgtype.Text

	err := row.Scan(
		&user.ID,
		&user.TelegramID,
		&user.Name,
		&username,
		&region,
		&user.Rating,
		&user.SuccessfulExchanges,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Username = username.String
	user.Region = region.String
	return &user, nil
}

func (r *userRepo) GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE telegram_id = $1
	`, telegramID))
	if err != nil {
		return nil, apperrors.FromPg(err, "пользователь не найден")
	}
	return user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
	if err != nil {
		return nil, apperrors.FromPg(err, "пользователь не найден")
	}
	return user, nil
}

func (r *userRepo) Create(ctx context.Context, telegramID, name, username string) (*models.User, error) {
	var usernameArg any
	if username != "" {
		usernameArg = username
	}

	user, err := scanUser(r.pool.QueryRow(ctx, `
		INSERT INTO users (id, telegram_id, name, username)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns+`
	`, uuid.New(), telegramID, name, usernameArg))
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка создания пользователя")
	}
	return user, nil
}

func (r *userRepo) UpdateRegion(ctx context.Context, id uuid.UUID, region string) (*models.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET region = $1 WHERE id = $2
		RETURNING `+userColumns+`
	`, region, id))
	if err != nil {
		return nil, apperrors.FromPg(err, "пользователь не найден")
	}
	return user, nil
}

func (r *userRepo) IncrementExchangeStats(ctx context.Context, id uuid.UUID) error {
	// Атомарный инкремент вместо read-modify-write: параллельные принятые
	// обмены не теряют обновления
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET rating = rating + 1, successful_exchanges = successful_exchanges + 1
		WHERE id = $1
	`, id)
	if err != nil {
		return apperrors.FromPg(err, "ошибка обновления рейтинга")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "пользователь не найден")
	}
	return nil
}

func (r *userRepo) IDsByRegion(ctx context.Context, region string) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id FROM users WHERE region = $1
	`, region)
	if err != nil {
		return nil, apperrors.FromPg(err, "ошибка запроса пользователей по области")
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
