// Package cloudinary выдает подписанные параметры прямой загрузки фото.
package cloudinary

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/config"
	"github.com/swapeasyapp/swapeasy-api/internal/middleware"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
)

// CloudinaryService предоставляет методы для работы с Cloudinary
type CloudinaryService struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewCloudinaryService создает новый экземпляр CloudinaryService
func NewCloudinaryService(cfg *config.Config, log zerolog.Logger) *CloudinaryService {
	return &CloudinaryService{
		cfg: cfg,
		log: log.With().Str("service", "cloudinary").Logger(),
	}
}

// SetupRoutes настраивает маршруты для API загрузки изображений
func (s *CloudinaryService) SetupRoutes(app *fiber.App, jwtService *utils.JWTService) {
	group := app.Group("/api/upload")
	group.Use(middleware.AuthMiddleware(jwtService))

	group.Get("/params", s.GenerateUploadParams)
}

// GenerateUploadParams создаёт параметры для загрузки изображений
// напрямую из клиента в Cloudinary
func (s *CloudinaryService) GenerateUploadParams(c fiber.Ctx) error {
	// Генерируем ID для кейса, если не передан
	caseID := c.Query("case_id")
	if caseID == "" {
		caseID = uuid.New().String()
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	params := url.Values{}
	params.Set("timestamp", timestamp)
	params.Set("upload_preset", s.cfg.Cloudinary.UploadPreset)

	signature, err := api.SignParameters(params, s.cfg.Cloudinary.APISecret)
	if err != nil {
		s.log.Error().Err(err).Msg("не удалось подписать параметры загрузки")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Не удалось подготовить загрузку"})
	}

	return c.JSON(fiber.Map{
		"timestamp":     timestamp,
		"signature":     signature,
		"api_key":       s.cfg.Cloudinary.APIKey,
		"cloud_name":    s.cfg.Cloudinary.CloudName,
		"upload_preset": s.cfg.Cloudinary.UploadPreset,
		"case_id":       caseID,
	})
}
