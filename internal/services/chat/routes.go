package chat

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
)

// SetupRoutes настраивает маршруты для API чатов
func (s *ChatService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	api := app.Group("/api/chats")
	api.Use(middleware.AuthMiddleware(jwtService))

	// Список переписок
	api.Get("/", s.handleChats)

	// Переписка с пользователем
	api.Get("/:user_id", s.handleConversation)

	// Отправка сообщения
	api.Post("/:user_id/messages", s.handleSend)
}

func (s *ChatService) handleChats(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	previews, err := s.Chats(ctx, userID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"chats": previews, "total": len(previews)})
}

func (s *ChatService) handleConversation(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	otherID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	msgs, err := s.Conversation(ctx, userID, otherID)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"messages": msgs, "total": len(msgs)})
}

func (s *ChatService) handleSend(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	otherID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат ID пользователя"})
	}

	var requestData struct {
		Text string `json:"text"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	msg, err := s.Send(ctx, userID, otherID, requestData.Text)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": msg})
}
