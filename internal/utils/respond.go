package utils

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
)

// RespondError отдаёт ошибку сервиса в JSON со статусом по её коду
func RespondError(c fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"error": userMessage(err),
	})
}

// userMessage возвращает текст для клиента без технических подробностей
func userMessage(err error) string {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeUnavailable:
		return "Сервис временно недоступен"
	case apperrors.CodeDB, apperrors.CodeUnknown:
		return "Внутренняя ошибка сервера"
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return err.Error()
}
