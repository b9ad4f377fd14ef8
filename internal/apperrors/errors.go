// Package apperrors предоставляет структурированную ошибку с кодом,
// сообщением и обёрнутой причиной.
package apperrors

import (
	stderrs "errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
)

// Code определяет машинно-читаемый класс ошибки
type Code uint8

const (
	// CodeUnknown — неклассифицированная ошибка
	CodeUnknown Code = iota

	// CodeValidation — значение вне справочника или отсутствует обязательное поле
	CodeValidation

	// CodeUnauthorized — отказ аутентификации
	CodeUnauthorized

	// CodeForbidden — действие запрещено для этого пользователя
	CodeForbidden

	// CodeNotFound — сущность не найдена. Используется и для чужих сущностей:
	// снаружи «не найдено» и «нет доступа» неразличимы
	CodeNotFound

	// CodeAlreadyResolved — предложение обмена уже принято или отклонено
	CodeAlreadyResolved

	// CodeDuplicateKey — нарушение уникального ограничения. Гасится внутри
	// сервисов, наружу не отдаётся
	CodeDuplicateKey

	// CodeUnavailable — хранилище недоступно или не сконфигурировано
	CodeUnavailable

	// CodeDB — прочая ошибка базы данных
	CodeDB
)

// Error — ошибка с кодом и обёрнутой причиной
type Error struct {
	code Code
	msg  string
	orig error
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap возвращает обёрнутую причину
func (e *Error) Unwrap() error { return e.orig }

// Message возвращает текст ошибки без технической причины
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Code возвращает код ошибки
func (e *Error) Code() Code { return e.code }

// New создаёт ошибку с кодом и сообщением
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Newf создаёт ошибку с форматированным сообщением
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap оборачивает причину, сохраняя её для errors.Is/As
func Wrap(err error, code Code, msg string) *Error {
	return &Error{code: code, msg: msg, orig: err}
}

// CodeOf извлекает код из цепочки ошибок; CodeUnknown, если ошибка не наша
func CodeOf(err error) Code {
	var e *Error
	if stderrs.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// IsNotFound сообщает, что сущность отсутствует или недоступна
func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }

// IsDuplicate сообщает о нарушении уникального ограничения
func IsDuplicate(err error) bool { return CodeOf(err) == CodeDuplicateKey }

// IsUnavailable сообщает о недоступности хранилища
func IsUnavailable(err error) bool { return CodeOf(err) == CodeUnavailable }

// HTTPStatus переводит код ошибки в HTTP-статус для обработчика Fiber
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeAlreadyResolved, CodeDuplicateKey:
		return fiber.StatusConflict
	case CodeUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
