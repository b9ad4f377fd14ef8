package apperrors

// Преобразование ошибок pgx в коды проекта.

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Интересующие нас коды SQLSTATE
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCannotConnectNow    = "57P03"
)

// IsSQLState проверяет, что причина — ошибка Postgres с данным SQLSTATE
func IsSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return stderrs.As(err, &pgErr) && pgErr.Code == code
}

// IsUniqueViolation сообщает о нарушении уникального ограничения
func IsUniqueViolation(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsForeignKeyViolation сообщает о нарушении внешнего ключа
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, pgErrForeignKeyViolation) }

// FromPg классифицирует ошибку запроса pgx. Сообщение исходной ошибки
// сохраняется в цепочке и доступно для логов.
func FromPg(err error, msg string) *Error {
	switch {
	case err == nil:
		return nil
	case stderrs.Is(err, pgx.ErrNoRows):
		return Wrap(err, CodeNotFound, msg)
	case IsUniqueViolation(err):
		return Wrap(err, CodeDuplicateKey, msg)
	case IsSQLState(err, pgErrCannotConnectNow):
		return Wrap(err, CodeUnavailable, msg)
	default:
		var connErr *pgconn.ConnectError
		if stderrs.As(err, &connErr) {
			return Wrap(err, CodeUnavailable, msg)
		}
		return Wrap(err, CodeDB, msg)
	}
}
