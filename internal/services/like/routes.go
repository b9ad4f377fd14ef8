package like

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
)

// SetupRoutes настраивает маршруты для API лайков
func (s *LikeService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	api := app.Group("/api/likes")
	api.Use(middleware.AuthMiddleware(jwtService))

	// Лайк кейса
	api.Post("/", s.handleLikeCase)

	// Список лайкнутых кейсов
	api.Get("/", s.handleLikedCases)
}

func (s *LikeService) handleLikeCase(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var requestData struct {
		CaseID string `json:"case_id"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	caseID, err := uuid.Parse(requestData.CaseID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID кейса"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	if err := s.LikeCase(ctx, userID, caseID); err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (s *LikeService) handleLikedCases(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	cases, err := s.LikedCases(ctx, userID)
	if err != nil {
		// Просмотр избранного деградирует до пустого списка
		if apperrors.IsUnavailable(err) || apperrors.CodeOf(err) == apperrors.CodeDB {
			s.log.Error().Err(err).Msg("не удалось загрузить избранное")
			return c.JSON(fiber.Map{"cases": []any{}})
		}
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"cases": cases, "total": len(cases)})
}
