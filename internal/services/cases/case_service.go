// Package cases реализует управление кейсами и ленту поиска.
package cases

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

// CaseService представляет сервис для работы с кейсами
type CaseService struct {
	users storage.UserRepo
	cases storage.CaseRepo
	log   zerolog.Logger
}

// NewCaseService создает новый экземпляр CaseService
func NewCaseService(store *storage.Store, log zerolog.Logger) *CaseService {
	return &CaseService{
		users: store.Users,
		cases: store.Cases,
		log:   log.With().Str("service", "cases").Logger(),
	}
}

// CreateCaseInput — данные нового кейса
type CreateCaseInput struct {
	Title         string `json:"title" validate:"required,max=200"`
	ItemType      string `json:"item_type" validate:"required,itemtype"`
	Description   string `json:"description" validate:"max=2000"`
	PriceCategory string `json:"price_category" validate:"required,pricecategory"`
	Photo1        string `json:"photo1"`
	Photo2        string `json:"photo2"`
	Photo3        string `json:"photo3"`
}

// UpdateCaseInput — частичное обновление кейса; отсутствующее поле не меняется
type UpdateCaseInput struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	ItemType      *string `json:"item_type" validate:"omitempty,itemtype"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
	PriceCategory *string `json:"price_category" validate:"omitempty,pricecategory"`
	Photo1        *string `json:"photo1"`
	Photo2        *string `json:"photo2"`
	Photo3        *string `json:"photo3"`
}

// Create создает кейс от имени пользователя
func (s *CaseService) Create(ctx context.Context, userID uuid.UUID, in CreateCaseInput) (*models.Case, error) {
	c := &models.Case{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         in.Title,
		ItemType:      in.ItemType,
		Description:   in.Description,
		PriceCategory: in.PriceCategory,
		Photo1:        in.Photo1,
		Photo2:        in.Photo2,
		Photo3:        in.Photo3,
	}
	return s.cases.Create(ctx, c)
}

// Update обновляет кейс владельца
func (s *CaseService) Update(ctx context.Context, userID, caseID uuid.UUID, in UpdateCaseInput) (*models.Case, error) {
	upd := storage.CaseUpdate{
		Title:         in.Title,
		ItemType:      in.ItemType,
		Description:   in.Description,
		PriceCategory: in.PriceCategory,
		Photo1:        in.Photo1,
		Photo2:        in.Photo2,
		Photo3:        in.Photo3,
	}
	return s.cases.UpdateOwned(ctx, userID, caseID, upd)
}

// Delete удаляет кейс владельца
func (s *CaseService) Delete(ctx context.Context, userID, caseID uuid.UUID) error {
	return s.cases.DeleteOwned(ctx, userID, caseID)
}

// MyCases возвращает кейсы пользователя
func (s *CaseService) MyCases(ctx context.Context, userID uuid.UUID) ([]models.Case, error) {
	return s.cases.ListByUser(ctx, userID)
}

// Search возвращает чужие кейсы с необязательными фильтрами по типу
// предмета и области владельца. Область без единого пользователя дает
// пустой результат, а не полный список.
func (s *CaseService) Search(ctx context.Context, viewerID uuid.UUID, itemType, region string) ([]models.Case, error) {
	var ownerIDs []uuid.UUID
	if region != "" {
		ids, err := s.users.IDsByRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []models.Case{}, nil
		}
		ownerIDs = ids
	}
	return s.cases.Search(ctx, viewerID, itemType, ownerIDs)
}
