// Package auth реализует вход через Telegram Mini App.
package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/config"
	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
)

// AuthService – структура для обработки авторизации
type AuthService struct {
	cfg        *config.Config
	users      storage.UserRepo
	jwtService *utils.JWTService
	log        zerolog.Logger
}

// NewAuthService – конструктор AuthService
func NewAuthService(cfg *config.Config, store *storage.Store, jwtService *utils.JWTService, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:        cfg,
		users:      store.Users,
		jwtService: jwtService,
		log:        log.With().Str("service", "auth").Logger(),
	}
}

// SetupRoutes настраивает маршруты для API авторизации
func (s *AuthService) SetupRoutes(app *fiber.App) {
	app.Post("/api/auth/telegram", s.TelegramAuthHandler)
}

// TelegramAuthHandler проверяет initData, находит или создаёт пользователя
// и возвращает JWT
func (s *AuthService) TelegramAuthHandler(c fiber.Ctx) error {
	var payload struct {
		InitData string `json:"init_data"`
	}

	if err := c.Bind().Body(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат запроса"})
	}

	// Проверяем initData
	expiration := 24 * time.Hour
	if err := initdata.Validate(payload.InitData, s.cfg.TelegramBotToken, expiration); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Недействительные данные Telegram"})
	}

	// Парсим данные
	data, err := initdata.Parse(payload.InitData)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Не удалось разобрать initData"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	name := strings.TrimSpace(data.User.FirstName + " " + data.User.LastName)
	user, err := s.ResolveOrCreate(ctx, strconv.FormatInt(data.User.ID, 10), name, data.User.Username)
	if err != nil {
		return utils.RespondError(c, err)
	}

	// Генерируем JWT
	jwtToken, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.log.Error().Err(err).Msg("не удалось сгенерировать JWT")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось сгенерировать токен"})
	}

	return c.JSON(fiber.Map{
		"token":        jwtToken,
		"user":         user,
		"needs_region": user.Region == "",
	})
}

// ResolveOrCreate возвращает пользователя по Telegram ID, создавая запись
// при первом входе. Гонка двух первых входов схлопывается в одну запись:
// проигравший перечитывает созданную победителем.
func (s *AuthService) ResolveOrCreate(ctx context.Context, telegramID, name, username string) (*models.User, error) {
	user, err := s.users.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	user, err = s.users.Create(ctx, telegramID, name, username)
	if err == nil {
		s.log.Info().Str("telegram_id", telegramID).Msg("создан новый пользователь")
		return user, nil
	}
	if apperrors.IsDuplicate(err) {
		return s.users.GetByTelegramID(ctx, telegramID)
	}
	return nil, err
}
