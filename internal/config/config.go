package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config структура конфигурации
type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	JWTSecret        string `env:"JWT_SECRET,required"`
	Port             string `env:"PORT" envDefault:"8080"`
	AppEnv           string `env:"APP_ENV" envDefault:"production"`
	Database         DatabaseConfig
	Cloudinary       CloudinaryConfig
}

// DatabaseConfig содержит конфигурацию базы данных
type DatabaseConfig struct {
	Host     string `env:"PGHOST" envDefault:"localhost"`
	Port     string `env:"PGPORT" envDefault:"5432"`
	User     string `env:"PGUSER" envDefault:"swapeasy_user"`
	Password string `env:"PGPASSWORD" envDefault:"swapeasy_pass"`
	Name     string `env:"PGDATABASE" envDefault:"swapeasy"`
	SSLMode  string `env:"PGSSLMODE" envDefault:"disable"`
}

// URL собирает строку подключения к базе данных
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// CloudinaryConfig содержит конфигурацию для Cloudinary
type CloudinaryConfig struct {
	CloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey       string `env:"CLOUDINARY_API_KEY"`
	APISecret    string `env:"CLOUDINARY_API_SECRET"`
	UploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET" envDefault:"swapeasy_app"`
}

// LoadConfig загружает переменные из .env и окружения
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("❌ Ошибка: Не заданы обязательные переменные окружения: %v", err)
	}

	return cfg
}
