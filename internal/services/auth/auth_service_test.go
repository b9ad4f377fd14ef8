package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/config"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
	"github.com/swapeasyapp/swapeasy-api/internal/utils"
)

type fakeUserRepo struct {
	byTelegramID map[string]*models.User

	// Имитация гонки: Create всегда отвечает нарушением уникальности
	createConflicts bool
	createCalls     int
}

func (r *fakeUserRepo) GetByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	u, ok := r.byTelegramID[telegramID]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "пользователь не найден")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return nil, apperrors.New(apperrors.CodeNotFound, "пользователь не найден")
}

func (r *fakeUserRepo) Create(ctx context.Context, telegramID, name, username string) (*models.User, error) {
	r.createCalls++
	if r.createConflicts {
		// Победитель гонки уже создал запись
		winner := &models.User{ID: uuid.New(), TelegramID: telegramID, Name: "winner"}
		r.byTelegramID[telegramID] = winner
		return nil, apperrors.New(apperrors.CodeDuplicateKey, "пользователь уже существует")
	}
	u := &models.User{ID: uuid.New(), TelegramID: telegramID, Name: name, Username: username}
	r.byTelegramID[telegramID] = u
	return u, nil
}

func (r *fakeUserRepo) UpdateRegion(ctx context.Context, id uuid.UUID, region string) (*models.User, error) {
	return nil, apperrors.New(apperrors.CodeDB, "не используется")
}

func (r *fakeUserRepo) IncrementExchangeStats(ctx context.Context, id uuid.UUID) error {
	return apperrors.New(apperrors.CodeDB, "не используется")
}

func (r *fakeUserRepo) IDsByRegion(ctx context.Context, region string) ([]uuid.UUID, error) {
	return nil, nil
}

func newService(repo *fakeUserRepo) *AuthService {
	cfg := &config.Config{JWTSecret: "test-secret"}
	store := &storage.Store{Users: repo}
	return NewAuthService(cfg, store, utils.NewJWTService(cfg.JWTSecret), zerolog.Nop())
}

func TestResolveOrCreateExisting(t *testing.T) {
	existing := &models.User{ID: uuid.New(), TelegramID: "42", Name: "anna"}
	repo := &fakeUserRepo{byTelegramID: map[string]*models.User{"42": existing}}
	svc := newService(repo)

	got, err := svc.ResolveOrCreate(context.Background(), "42", "другое имя", "anna")
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if got.ID != existing.ID {
		t.Fatalf("got %s, want existing %s", got.ID, existing.ID)
	}
	if repo.createCalls != 0 {
		t.Fatalf("createCalls = %d, want 0", repo.createCalls)
	}
}

func TestResolveOrCreateNew(t *testing.T) {
	repo := &fakeUserRepo{byTelegramID: make(map[string]*models.User)}
	svc := newService(repo)

	got, err := svc.ResolveOrCreate(context.Background(), "42", "Анна Иванова", "anna")
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if got.TelegramID != "42" || got.Name != "Анна Иванова" {
		t.Fatalf("created = %+v", got)
	}
	// Новый пользователь ещё не выбрал область
	if got.Region != "" {
		t.Fatalf("region = %q, want empty", got.Region)
	}
}

func TestResolveOrCreateRaceCollapses(t *testing.T) {
	repo := &fakeUserRepo{byTelegramID: make(map[string]*models.User), createConflicts: true}
	svc := newService(repo)

	got, err := svc.ResolveOrCreate(context.Background(), "42", "проигравший", "loser")
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	// Проигравший гонку получает запись победителя
	if got.Name != "winner" {
		t.Fatalf("got = %+v, want winner's row", got)
	}
}
