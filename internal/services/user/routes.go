package user

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
	"github.com/swapeasyapp/swapeasy-api/internal/validation"
)

// SetupRoutes настраивает маршруты для API пользователей
func (s *UserService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	api := app.Group("/api/users")
	api.Use(middleware.AuthMiddleware(jwtService))

	// Профиль текущего пользователя
	api.Get("/me", s.handleMe)

	// Установка области
	api.Put("/me/region", s.handleAssignRegion)

	// Профиль другого пользователя с его кейсами
	api.Get("/:id", s.handleProfile)
}

func (s *UserService) handleMe(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

func (s *UserService) handleAssignRegion(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var requestData struct {
		Region string `json:"region" validate:"required,region"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}
	if err := validation.Struct(requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неизвестная область"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	user, err := s.AssignRegion(ctx, userID, requestData.Region)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

func (s *UserService) handleProfile(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	user, list, err := s.ProfileWithCases(ctx, id)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user, "cases": list})
}
