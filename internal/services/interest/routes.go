package interest

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
	"github.com/swapeasyapp/swapeasy-api/internal/validation"
)

// SetupRoutes настраивает маршруты для API пожеланий
func (s *InterestService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	api := app.Group("/api/interests")
	api.Use(middleware.AuthMiddleware(jwtService))

	// Добавление пожелания
	api.Post("/", s.handleAdd)

	// Список пожеланий
	api.Get("/", s.handleList)

	// Удаление пожелания
	api.Delete("/:id", s.handleDelete)
}

func (s *InterestService) handleAdd(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var requestData struct {
		ItemType      string `json:"item_type" validate:"required,itemtype"`
		PriceCategory string `json:"price_category" validate:"required,pricecategory"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}
	if err := validation.Struct(requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверные данные пожелания"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	created, err := s.Add(ctx, userID, requestData.ItemType, requestData.PriceCategory)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "interest": created})
}

func (s *InterestService) handleList(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	list, err := s.List(ctx, userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"interests": list, "total": len(list)})
}

func (s *InterestService) handleDelete(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	interestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пожелания"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	if err := s.Delete(ctx, userID, interestID); err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
