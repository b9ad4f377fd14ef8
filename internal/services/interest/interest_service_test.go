package interest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

type fakeInterestRepo struct {
	interests map[uuid.UUID]*models.Interest
}

func (r *fakeInterestRepo) Create(ctx context.Context, userID uuid.UUID, itemType, priceCategory string) (*models.Interest, error) {
	i := &models.Interest{ID: uuid.New(), UserID: userID, ItemType: itemType, PriceCategory: priceCategory}
	r.interests[i.ID] = i
	return i, nil
}

func (r *fakeInterestRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Interest, error) {
	var out []models.Interest
	for _, i := range r.interests {
		if i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *fakeInterestRepo) DeleteOwned(ctx context.Context, userID, interestID uuid.UUID) error {
	i, ok := r.interests[interestID]
	if !ok || i.UserID != userID {
		return apperrors.New(apperrors.CodeNotFound, "пожелание не найдено")
	}
	delete(r.interests, interestID)
	return nil
}

func TestInterestLifecycle(t *testing.T) {
	repo := &fakeInterestRepo{interests: make(map[uuid.UUID]*models.Interest)}
	svc := NewInterestService(&storage.Store{Interests: repo}, zerolog.Nop())
	anna := uuid.New()
	boris := uuid.New()

	created, err := svc.Add(context.Background(), anna, "Електроніка", "1000-5000 грн")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := svc.List(context.Background(), anna)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("list = %+v", list)
	}

	// Чужое пожелание удалить нельзя
	if err := svc.Delete(context.Background(), boris, created.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("foreign delete err = %v, want not found", err)
	}

	if err := svc.Delete(context.Background(), anna, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	left, _ := svc.List(context.Background(), anna)
	if len(left) != 0 {
		t.Fatalf("list after delete = %+v", left)
	}
}
