// Package user реализует профиль пользователя и выбор области.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// UserService представляет сервис для работы с пользователями
type UserService struct {
	users storage.UserRepo
	cases storage.CaseRepo
	log   zerolog.Logger
}

// NewUserService создает новый экземпляр UserService
func NewUserService(store *storage.Store, log zerolog.Logger) *UserService {
	return &UserService{
		users: store.Users,
		cases: store.Cases,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// Profile возвращает пользователя по идентификатору
func (s *UserService) Profile(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// AssignRegion устанавливает область пользователя. Повторный вызов
// перезаписывает прежнее значение.
func (s *UserService) AssignRegion(ctx context.Context, id uuid.UUID, region string) (*models.User, error) {
	user, err := s.users.UpdateRegion(ctx, id, region)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id.String()).Str("region", region).Msg("область пользователя обновлена")
	return user, nil
}

// ProfileWithCases возвращает пользователя вместе с его кейсами
func (s *UserService) ProfileWithCases(ctx context.Context, id uuid.UUID) (*models.User, []models.Case, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	list, err := s.cases.ListByUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return user, list, nil
}
