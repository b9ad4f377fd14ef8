// Package exchange реализует предложения обмена и их разрешение.
package exchange

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// ExchangeService представляет сервис предложений обмена
type ExchangeService struct {
	users  storage.UserRepo
	cases  storage.CaseRepo
	offers storage.OfferRepo
	log    zerolog.Logger
}

// NewExchangeService создает новый экземпляр ExchangeService
func NewExchangeService(store *storage.Store, log zerolog.Logger) *ExchangeService {
	return &ExchangeService{
		users:  store.Users,
		cases:  store.Cases,
		offers: store.Offers,
		log:    log.With().Str("service", "exchange").Logger(),
	}
}

// Propose создает предложение обмена: offeredCaseID должен принадлежать
// инициатору, requestedCaseID — другому пользователю
func (s *ExchangeService) Propose(ctx context.Context, fromUserID, offeredCaseID, requestedCaseID uuid.UUID) (*models.ExchangeOffer, error) {
	offered, err := s.cases.GetWithOwner(ctx, offeredCaseID)
	if err != nil {
		return nil, err
	}
	if offered.UserID != fromUserID {
		return nil, apperrors.New(apperrors.CodeForbidden, "можно предлагать только собственный кейс")
	}

	requested, err := s.cases.GetWithOwner(ctx, requestedCaseID)
	if err != nil {
		return nil, err
	}
	if requested.UserID == fromUserID {
		return nil, apperrors.New(apperrors.CodeValidation, "нельзя предложить обмен самому себе")
	}

	offer, err := s.offers.Create(ctx, fromUserID, requested.UserID, offered.ID, requested.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("offer_id", offer.ID.String()).
		Str("from", fromUserID.String()).
		Str("to", requested.UserID.String()).
		Msg("создано предложение обмена")

	return offer, nil
}

// Respond разрешает предложение обмена. Отвечать может только получатель,
// и только пока предложение в статусе pending. При принятии обе стороны
// получают прибавку к рейтингу и счетчику обменов; если хотя бы одно
// начисление не прошло, возвращается ошибка.
func (s *ExchangeService) Respond(ctx context.Context, userID, offerID uuid.UUID, accept bool) error {
	offer, err := s.offers.Get(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.ToUserID != userID {
		return apperrors.New(apperrors.CodeForbidden, "отвечать на предложение может только его получатель")
	}

	status := models.OfferStatusDeclined
	if accept {
		status = models.OfferStatusAccepted
	}

	resolved, err := s.offers.ResolveIfPending(ctx, offerID, status)
	if err != nil {
		return err
	}
	if !resolved {
		return apperrors.New(apperrors.CodeAlreadyResolved, "предложение уже разрешено")
	}

	if accept {
		// Статус уже терминальный, поэтому ошибку инкремента нельзя глотать:
		// клиент должен увидеть, что начисление не применилось
		var failed error
		if err := s.users.IncrementExchangeStats(ctx, offer.FromUserID); err != nil {
			s.log.Error().Err(err).Str("user_id", offer.FromUserID.String()).Msg("не удалось обновить статистику инициатора")
			failed = err
		}
		if err := s.users.IncrementExchangeStats(ctx, offer.ToUserID); err != nil {
			s.log.Error().Err(err).Str("user_id", offer.ToUserID.String()).Msg("не удалось обновить статистику получателя")
			if failed == nil {
				failed = err
			}
		}
		return failed
	}

	return nil
}

// History возвращает принятые обмены пользователя, где он был любой из сторон
func (s *ExchangeService) History(ctx context.Context, userID uuid.UUID) ([]models.ExchangeOffer, error) {
	return s.offers.AcceptedForUser(ctx, userID)
}

// InboxPending возвращает ожидающие предложения, адресованные пользователю
func (s *ExchangeService) InboxPending(ctx context.Context, userID uuid.UUID) ([]models.ExchangeOffer, error) {
	return s.offers.PendingForUser(ctx, userID)
}
