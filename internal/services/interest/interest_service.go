// Package interest реализует список пожеланий пользователя.
package interest

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// InterestService представляет сервис пожеланий
type InterestService struct {
	interests storage.InterestRepo
	log       zerolog.Logger
}

// NewInterestService создает новый экземпляр InterestService
func NewInterestService(store *storage.Store, log zerolog.Logger) *InterestService {
	return &InterestService{
		interests: store.Interests,
		log:       log.With().Str("service", "interest").Logger(),
	}
}

// Add добавляет пожелание пользователя
func (s *InterestService) Add(ctx context.Context, userID uuid.UUID, itemType, priceCategory string) (*models.Interest, error) {
	return s.interests.Create(ctx, userID, itemType, priceCategory)
}

// List возвращает пожелания пользователя
func (s *InterestService) List(ctx context.Context, userID uuid.UUID) ([]models.Interest, error) {
	return s.interests.ListByUser(ctx, userID)
}

// Delete удаляет пожелание владельца
func (s *InterestService) Delete(ctx context.Context, userID, interestID uuid.UUID) error {
	return s.interests.DeleteOwned(ctx, userID, interestID)
}
