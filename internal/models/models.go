package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя в системе
type User struct {
	ID                  uuid.UUID `json:"id"`
	TelegramID          string    `json:"telegram_id"`
	Name                string    `json:"name"`
	Username            string    `json:"username,omitempty"`
	Region              string    `json:"region,omitempty"`
	Rating              int       `json:"rating"`
	SuccessfulExchanges int       `json:"successful_exchanges"`
	CreatedAt           time.Time `json:"created_at"`
}

// Case представляет кейс (предмет для обмена)
type Case struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	ItemType      string    `json:"item_type"`
	Description   string    `json:"description"`
	PriceCategory string    `json:"price_category"`
	Photo1        string    `json:"photo1,omitempty"`
	Photo2        string    `json:"photo2,omitempty"`
	Photo3        string    `json:"photo3,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	// Дополнительные поля для API
	Owner *User `json:"owner,omitempty"`
}

// Like представляет лайк пользователя на чужой кейс
type Like struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CaseID    uuid.UUID `json:"case_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikedCase представляет денормализованную копию лайкнутого кейса
// на момент лайка. Живёт отдельно от кейса, поэтому остаётся доступной
// даже после удаления оригинала.
type LikedCase struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	CaseID          uuid.UUID `json:"case_id"`
	Title           string    `json:"title"`
	ItemType        string    `json:"item_type"`
	Description     string    `json:"description"`
	PriceCategory   string    `json:"price_category"`
	Photo1          string    `json:"photo1,omitempty"`
	Photo2          string    `json:"photo2,omitempty"`
	Photo3          string    `json:"photo3,omitempty"`
	OwnerTelegramID string    `json:"owner_telegram_id"`
	OwnerName       string    `json:"owner_name"`
	CreatedAt       time.Time `json:"created_at"`

	// Дополнительные поля для API
	Owner *User `json:"owner,omitempty"`
}

// MutualLikeNotification представляет уведомление о взаимной симпатии.
// Пара хранится в каноническом порядке (User1ID < User2ID), чтобы
// уникальный индекс отсекал дубликаты при смене ролей.
type MutualLikeNotification struct {
	ID          uuid.UUID `json:"id"`
	User1ID     uuid.UUID `json:"user1_id"`
	User2ID     uuid.UUID `json:"user2_id"`
	User1CaseID uuid.UUID `json:"user1_case_id"`
	User2CaseID uuid.UUID `json:"user2_case_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Дополнительные поля для API
	User1     *User `json:"user1,omitempty"`
	User2     *User `json:"user2,omitempty"`
	User1Case *Case `json:"user1_case,omitempty"`
	User2Case *Case `json:"user2_case,omitempty"`
}

// Статусы предложения обмена
const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusDeclined = "declined"
)

// ExchangeOffer представляет предложение обмена
type ExchangeOffer struct {
	ID              uuid.UUID  `json:"id"`
	FromUserID      uuid.UUID  `json:"from_user_id"`
	ToUserID        uuid.UUID  `json:"to_user_id"`
	OfferedCaseID   *uuid.UUID `json:"offered_case_id"`
	RequestedCaseID *uuid.UUID `json:"requested_case_id"`
	Status          string     `json:"status"` // pending, accepted, declined
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Дополнительные поля для API
	FromUser      *User `json:"from_user,omitempty"`
	ToUser        *User `json:"to_user,omitempty"`
	OfferedCase   *Case `json:"offered_case,omitempty"`
	RequestedCase *Case `json:"requested_case,omitempty"`
}

// Interest представляет позицию списка пожеланий пользователя
type Interest struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ItemType      string    `json:"item_type"`
	PriceCategory string    `json:"price_category"`
	CreatedAt     time.Time `json:"created_at"`
}

// Message представляет сообщение в переписке двух пользователей
type Message struct {
	ID          uuid.UUID `json:"id"`
	FromUserID  uuid.UUID `json:"from_user_id"`
	ToUserID    uuid.UUID `json:"to_user_id"`
	MessageText string    `json:"message_text"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`

	// Дополнительные поля для API
	FromUser *User `json:"from_user,omitempty"`
	ToUser   *User `json:"to_user,omitempty"`
}

// ChatPreview представляет переписку в списке чатов
type ChatPreview struct {
	User        *User    `json:"user"`
	LastMessage *Message `json:"last_message,omitempty"`
	UnreadCount int      `json:"unread_count"`
}
