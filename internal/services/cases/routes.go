package cases

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
	"github.com/swapeasyapp/swapeasy-api/internal/validation"
)

// SetupRoutes настраивает маршруты для API кейсов
func (s *CaseService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	api := app.Group("/api/cases")
	api.Use(middleware.AuthMiddleware(jwtService))

	// Создание кейса
	api.Post("/", s.handleCreate)

	// Кейсы текущего пользователя
	api.Get("/my", s.handleMyCases)

	// Поиск чужих кейсов
	api.Get("/search", s.handleSearch)

	// Справочники для форм
	api.Get("/meta", s.handleMeta)

	// Обновление кейса
	api.Put("/:id", s.handleUpdate)

	// Удаление кейса
	api.Delete("/:id", s.handleDelete)
}

func (s *CaseService) handleCreate(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var in CreateCaseInput
	if err := c.Bind().Body(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверные данные кейса"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	created, err := s.Create(ctx, userID, in)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"case":    created,
	})
}

func (s *CaseService) handleMyCases(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	list, err := s.MyCases(ctx, userID)
	if err != nil {
		if apperrors.IsUnavailable(err) || apperrors.CodeOf(err) == apperrors.CodeDB {
			s.log.Error().Err(err).Msg("не удалось загрузить кейсы пользователя")
			return c.JSON(fiber.Map{"cases": []any{}})
		}
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"cases": list, "total": len(list)})
}

func (s *CaseService) handleSearch(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	itemType := c.Query("item_type")
	region := c.Query("region")

	if itemType != "" && !models.ValidItemType(itemType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неизвестный тип предмета"})
	}
	if region != "" && !models.ValidRegion(region) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неизвестная область"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	list, err := s.Search(ctx, userID, itemType, region)
	if err != nil {
		// Лента деградирует до пустой вместо ошибки
		if apperrors.IsUnavailable(err) || apperrors.CodeOf(err) == apperrors.CodeDB {
			s.log.Error().Err(err).Msg("поиск кейсов недоступен")
			return c.JSON(fiber.Map{"cases": []any{}})
		}
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"cases": list, "total": len(list)})
}

func (s *CaseService) handleMeta(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"item_types":       models.ItemTypes,
		"price_categories": models.PriceCategories,
		"regions":          models.Regions,
	})
}

func (s *CaseService) handleUpdate(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	caseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID кейса"})
	}

	var in UpdateCaseInput
	if err := c.Bind().Body(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверные данные кейса"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	updated, err := s.Update(ctx, userID, caseID, in)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "case": updated})
}

func (s *CaseService) handleDelete(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	caseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID кейса"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	if err := s.Delete(ctx, userID, caseID); err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
