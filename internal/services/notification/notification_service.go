// Package notification собирает ленту уведомлений пользователя.
package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// NotificationService представляет сервис уведомлений
type NotificationService struct {
	notifications storage.NotificationRepo
	offers        storage.OfferRepo
	log           zerolog.Logger
}

// NewNotificationService создает новый экземпляр NotificationService
func NewNotificationService(store *storage.Store, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		notifications: store.Notifications,
		offers:        store.Offers,
		log:           log.With().Str("service", "notification").Logger(),
	}
}

// Feed — уведомления пользователя: взаимные симпатии и входящие
// предложения обмена
type Feed struct {
	MutualLikes   []models.MutualLikeNotification `json:"mutual_likes"`
	PendingOffers []models.ExchangeOffer          `json:"pending_offers"`
}

// FeedForUser собирает ленту. Недоступная половина источников отдается
// пустой, а не валит всю ленту.
func (s *NotificationService) FeedForUser(ctx context.Context, userID uuid.UUID) Feed {
	feed := Feed{
		MutualLikes:   []models.MutualLikeNotification{},
		PendingOffers: []models.ExchangeOffer{},
	}

	likes, err := s.notifications.ListForUser(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("не удалось загрузить уведомления о симпатиях")
	} else {
		feed.MutualLikes = likes
	}

	offers, err := s.offers.PendingForUser(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("не удалось загрузить ожидающие предложения")
	} else {
		feed.PendingOffers = offers
	}

	return feed
}
