package notification

import (
	"github.com/gofiber/fiber/v3"

	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
)

// SetupRoutes настраивает маршруты для API уведомлений
func (s *NotificationService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	api := app.Group("/api/notifications")
	api.Use(middleware.AuthMiddleware(jwtService))

	api.Get("/", s.handleFeed)
}

func (s *NotificationService) handleFeed(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	ctx, cancel := db.GetContext()
	defer cancel()

	feed := s.FeedForUser(ctx, userID)

	return c.JSON(fiber.Map{
		"mutual_likes":   feed.MutualLikes,
		"pending_offers": feed.PendingOffers,
	})
}
