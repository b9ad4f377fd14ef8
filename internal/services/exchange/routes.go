package exchange

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
	"github.com/swapeasyapp/swapeasy-api/internal/validation"
)

// SetupRoutes настраивает маршруты для API обменов
func (s *ExchangeService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	api := app.Group("/api/exchanges")
	api.Use(middleware.AuthMiddleware(jwtService))

	// Создание предложения обмена
	api.Post("/", s.handlePropose)

	// Ответ на предложение (принять или отклонить)
	api.Post("/:id/respond", s.handleRespond)

	// История принятых обменов
	api.Get("/history", s.handleHistory)

	// Входящие ожидающие предложения
	api.Get("/pending", s.handlePending)
}

func (s *ExchangeService) handlePropose(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var requestData struct {
		OfferedCaseID   string `json:"offered_case_id"`
		RequestedCaseID string `json:"requested_case_id"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	offeredID, err := uuid.Parse(requestData.OfferedCaseID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID предлагаемого кейса"})
	}
	requestedID, err := uuid.Parse(requestData.RequestedCaseID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID запрашиваемого кейса"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	offer, err := s.Propose(ctx, userID, offeredID, requestedID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"offer":   offer,
	})
}

func (s *ExchangeService) handleRespond(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID предложения"})
	}

	var requestData struct {
		Decision string `json:"decision" validate:"required,offerdecision"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}
	if err := validation.Struct(requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Решение должно быть accepted или declined"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	accept := requestData.Decision == models.OfferStatusAccepted
	if err := s.Respond(ctx, userID, offerID, accept); err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "status": requestData.Decision})
}

func (s *ExchangeService) handleHistory(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	offers, err := s.History(ctx, userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"offers": offers, "total": len(offers)})
}

func (s *ExchangeService) handlePending(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	offers, err := s.InboxPending(ctx, userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"offers": offers, "total": len(offers)})
}
