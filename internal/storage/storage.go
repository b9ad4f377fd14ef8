// Package storage определяет интерфейс хранилища, который потребляют
// сервисы. Реализация на Postgres живёт в storage/postgres; тесты
// сервисов подставляют собственные фейки.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

// Store объединяет репозитории всех сущностей
type Store struct {
	Users         UserRepo
	Cases         CaseRepo
	Likes         LikeRepo
	LikedCases    LikedCaseRepo
	Notifications NotificationRepo
	Offers        OfferRepo
	Interests     InterestRepo
	Messages      MessageRepo
}

// UserRepo — операции над пользователями
type UserRepo interface {
	// GetByTelegramID возвращает пользователя по внешнему идентификатору
	GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error)
	// GetByID возвращает пользователя по внутреннему идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// Create создаёт пользователя без области. Гонка первого входа
	// возвращает ошибку с кодом CodeDuplicateKey
	Create(ctx context.Context, telegramID, name, username string) (*models.User, error)
	// UpdateRegion устанавливает или перезаписывает область
	UpdateRegion(ctx context.Context, id uuid.UUID, region string) (*models.User, error)
	// IncrementExchangeStats атомарно увеличивает rating и
	// successful_exchanges на единицу
	IncrementExchangeStats(ctx context.Context, id uuid.UUID) error
	// IDsByRegion возвращает идентификаторы пользователей области
	IDsByRegion(ctx context.Context, region string) ([]uuid.UUID, error)
}

// CaseUpdate — частичное обновление кейса; nil-поле не изменяется
type CaseUpdate struct {
	Title         *string
	ItemType      *string
	Description   *string
	PriceCategory *string
	Photo1        *string
	Photo2        *string
	Photo3        *string
}

// CaseRepo — операции над кейсами
type CaseRepo interface {
	Create(ctx context.Context, c *models.Case) (*models.Case, error)
	// GetWithOwner возвращает кейс вместе с владельцем
	GetWithOwner(ctx context.Context, id uuid.UUID) (*models.Case, error)
	// UpdateOwned обновляет кейс владельца. Чужой или отсутствующий кейс —
	// одинаковая ошибка CodeNotFound
	UpdateOwned(ctx context.Context, ownerID, caseID uuid.UUID, upd CaseUpdate) (*models.Case, error)
	// DeleteOwned удаляет кейс владельца, с тем же совмещённым CodeNotFound
	DeleteOwned(ctx context.Context, ownerID, caseID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Case, error)
	IDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// Search возвращает чужие кейсы с владельцами. Пустой itemType — без
	// фильтра по типу; nil ownerIDs — без фильтра по владельцам
	Search(ctx context.Context, excludeUserID uuid.UUID, itemType string, ownerIDs []uuid.UUID) ([]models.Case, error)
}

// LikeRepo — лайки
type LikeRepo interface {
	// Insert добавляет лайк; повтор даёт CodeDuplicateKey
	Insert(ctx context.Context, userID, caseID uuid.UUID) error
	// CaseIDsLikedByWithin возвращает подмножество within, лайкнутое
	// пользователем
	CaseIDsLikedByWithin(ctx context.Context, userID uuid.UUID, within []uuid.UUID) ([]uuid.UUID, error)
}

// LikedCaseRepo — денормализованные снимки лайкнутых кейсов
type LikedCaseRepo interface {
	Insert(ctx context.Context, lc models.LikedCase) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LikedCase, error)
}

// NotificationRepo — уведомления о взаимной симпатии
type NotificationRepo interface {
	// Insert добавляет уведомление; повтор той же четвёрки даёт
	// CodeDuplicateKey
	Insert(ctx context.Context, n models.MutualLikeNotification) error
	// ListForUser возвращает уведомления пользователя с участниками и
	// кейсами; исчезнувшие ссылки остаются nil
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.MutualLikeNotification, error)
}

// OfferRepo — предложения обмена
type OfferRepo interface {
	Create(ctx context.Context, fromUserID, toUserID, offeredCaseID, requestedCaseID uuid.UUID) (*models.ExchangeOffer, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ExchangeOffer, error)
	// ResolveIfPending переводит предложение в терминальный статус только из
	// pending; возвращает false, если строка уже была разрешена
	ResolveIfPending(ctx context.Context, id uuid.UUID, status string) (bool, error)
	// AcceptedForUser — принятые предложения с участием пользователя,
	// разрешённые вместе с участниками и кейсами (исчезнувшие — nil)
	AcceptedForUser(ctx context.Context, userID uuid.UUID) ([]models.ExchangeOffer, error)
	// PendingForUser — входящие предложения в ожидании
	PendingForUser(ctx context.Context, userID uuid.UUID) ([]models.ExchangeOffer, error)
}

// InterestRepo — список пожеланий
type InterestRepo interface {
	Create(ctx context.Context, userID uuid.UUID, itemType, priceCategory string) (*models.Interest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Interest, error)
	DeleteOwned(ctx context.Context, userID, interestID uuid.UUID) error
}

// MessageRepo — сообщения
type MessageRepo interface {
	Insert(ctx context.Context, fromUserID, toUserID uuid.UUID, text string) (*models.Message, error)
	// Conversation возвращает переписку двух пользователей от старых к новым
	Conversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error)
	// MarkRead помечает прочитанными сообщения от fromUserID к toUserID
	MarkRead(ctx context.Context, toUserID, fromUserID uuid.UUID) error
	// ListForUser возвращает все сообщения с участием пользователя от новых
	// к старым, с разрешёнными отправителем и получателем
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Message, error)
}
