package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/swapeasyapp/swapeasy-api/internal/config"
	"github.com/swapeasyapp/swapeasy-api/internal/db"
	"github.com/swapeasyapp/swapeasy-api/internal/logger"
	"github.com/swapeasyapp/swapeasy-api/internal/services/auth"
	"github.com/swapeasyapp/swapeasy-api/internal/services/cases"
	"github.com/swapeasyapp/swapeasy-api/internal/services/chat"
	"github.com/swapeasyapp/swapeasy-api/internal/services/cloudinary"
	"github.com/swapeasyapp/swapeasy-api/internal/services/exchange"
	"github.com/swapeasyapp/swapeasy-api/internal/services/interest"
	"github.com/swapeasyapp/swapeasy-api/internal/services/like"
	"github.com/swapeasyapp/swapeasy-api/internal/services/notification"
	"github.com/swapeasyapp/swapeasy-api/internal/services/user"
	"github.com/swapeasyapp/swapeasy-api/internal/storage/postgres"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	logg := logger.New(cfg.AppEnv)

	// Инициализируем базу данных
	pool, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Ошибка при инициализации базы данных: %v", err)
	}
	defer pool.Close()

	store := postgres.NewStore(pool)
	jwtService := utils.NewJWTService(cfg.JWTSecret)

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "SwapEasy API",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: false,
	}))

	// Создаём сервисы
	authService := auth.NewAuthService(cfg, store, jwtService, logg)
	userService := user.NewUserService(store, logg)
	caseService := cases.NewCaseService(store, logg)
	likeService := like.NewLikeService(store, logg)
	exchangeService := exchange.NewExchangeService(store, logg)
	interestService := interest.NewInterestService(store, logg)
	chatService := chat.NewChatService(store, logg)
	notificationService := notification.NewNotificationService(store, logg)
	cloudinaryService := cloudinary.NewCloudinaryService(cfg, logg)

	// Регистрируем маршруты
	authService.SetupRoutes(app)
	userService.SetupRoutes(app, jwtService)
	caseService.SetupRoutes(app, jwtService)
	likeService.SetupRoutes(app, jwtService)
	exchangeService.SetupRoutes(app, jwtService)
	interestService.SetupRoutes(app, jwtService)
	chatService.SetupRoutes(app, jwtService)
	notificationService.SetupRoutes(app, jwtService)
	cloudinaryService.SetupRoutes(app, jwtService)

	// Запускаем сервер
	log.Printf("✅ SwapEasy API запущен на порту %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
