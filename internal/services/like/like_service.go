// Package like реализует лайки, избранное и обнаружение взаимной
// симпатии.
package like

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// LikeService представляет сервис лайков и взаимной симпатии
type LikeService struct {
	cases         storage.CaseRepo
	likes         storage.LikeRepo
	likedCases    storage.LikedCaseRepo
	notifications storage.NotificationRepo
	log           zerolog.Logger
}

// NewLikeService создает новый экземпляр LikeService
func NewLikeService(store *storage.Store, log zerolog.Logger) *LikeService {
	return &LikeService{
		cases:         store.Cases,
		likes:         store.Likes,
		likedCases:    store.LikedCases,
		notifications: store.Notifications,
		log:           log.With().Str("service", "like").Logger(),
	}
}

// LikeCase ставит лайк на кейс. Операция идемпотентна: повторный лайк не
// ошибка. Записи лайка и снимка фиксируются до проверки взаимности, чтобы
// встречная проверка могла их увидеть.
func (s *LikeService) LikeCase(ctx context.Context, viewerID, caseID uuid.UUID) error {
	liked, err := s.cases.GetWithOwner(ctx, caseID)
	if err != nil {
		return err
	}

	if err := s.likes.Insert(ctx, viewerID, caseID); err != nil && !apperrors.IsDuplicate(err) {
		return err
	}

	snapshot := models.LikedCase{
		UserID:        viewerID,
		CaseID:        caseID,
		Title:         liked.Title,
		ItemType:      liked.ItemType,
		Description:   liked.Description,
		PriceCategory: liked.PriceCategory,
		Photo1:        liked.Photo1,
		Photo2:        liked.Photo2,
		Photo3:        liked.Photo3,
	}
	if liked.Owner != nil {
		snapshot.OwnerTelegramID = liked.Owner.TelegramID
		snapshot.OwnerName = liked.Owner.Name
	}
	if err := s.likedCases.Insert(ctx, snapshot); err != nil && !apperrors.IsDuplicate(err) {
		return err
	}

	return s.checkMutualLike(ctx, viewerID, liked)
}

// LikedCases возвращает снимки лайкнутых кейсов без обращения к живым
// кейсам: избранное доступно и после удаления оригинала
func (s *LikeService) LikedCases(ctx context.Context, viewerID uuid.UUID) ([]models.LikedCase, error) {
	return s.likedCases.ListByUser(ctx, viewerID)
}

// checkMutualLike проверяет взаимность после нового лайка. Обнаружение
// срабатывает только на втором лайке пары: первый лайк видит пустой
// встречный набор и выходит.
func (s *LikeService) checkMutualLike(ctx context.Context, viewerID uuid.UUID, liked *models.Case) error {
	if liked.UserID == viewerID {
		// Лайк собственного кейса совпадением не считается
		return nil
	}

	myCaseIDs, err := s.cases.IDsByUser(ctx, viewerID)
	if err != nil {
		return err
	}
	if len(myCaseIDs) == 0 {
		return nil
	}

	ownerLikes, err := s.likes.CaseIDsLikedByWithin(ctx, liked.UserID, myCaseIDs)
	if err != nil {
		return err
	}
	if len(ownerLikes) == 0 {
		return nil
	}

	// Какой именно встречный кейс попадёт в уведомление, не важно — важно,
	// что уведомление одно; берём первый по порядку выборки
	notification := canonical(models.MutualLikeNotification{
		User1ID:     viewerID,
		User2ID:     liked.UserID,
		User1CaseID: ownerLikes[0],
		User2CaseID: liked.ID,
	})

	err = s.notifications.Insert(ctx, notification)
	if err != nil && !apperrors.IsDuplicate(err) {
		// Лайк идемпотентен, поэтому ошибку отдаем наружу: повтор лайка
		// заново запустит обнаружение и дозапишет уведомление
		s.log.Error().Err(err).Msg("не удалось создать уведомление о взаимной симпатии")
		return err
	}
	return nil
}

// canonical приводит пару к каноническому порядку: меньший UUID первым,
// кейсы переставляются вместе с владельцами. Уникальный индекс по четвёрке
// тогда отсекает дубликат и при смене ролей сторон.
func canonical(n models.MutualLikeNotification) models.MutualLikeNotification {
	if bytes.Compare(n.User1ID[:], n.User2ID[:]) <= 0 {
		return n
	}
	return models.MutualLikeNotification{
		User1ID:     n.User2ID,
		User2ID:     n.User1ID,
		User1CaseID: n.User2CaseID,
		User2CaseID: n.User1CaseID,
	}
}
