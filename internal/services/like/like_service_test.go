package like

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/swapeasyapp/swapeasy-api/internal/apperrors"
	"github.com/swapeasyapp/swapeasy-api/internal/models"
	"github.com/swapeasyapp/swapeasy-api/internal/storage"
)

type fakeCaseRepo struct {
	cases map[uuid.UUID]*models.Case
}

func (r *fakeCaseRepo) Create(ctx context.Context, c *models.Case) (*models.Case, error) {
	r.cases[c.ID] = c
	return c, nil
}

func (r *fakeCaseRepo) GetWithOwner(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	c, ok := r.cases[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "кейс не найден")
	}
	return c, nil
}

func (r *fakeCaseRepo) UpdateOwned(ctx context.Context, ownerID, caseID uuid.UUID, upd storage.CaseUpdate) (*models.Case, error) {
	return nil, apperrors.New(apperrors.CodeDB, "не используется")
}

func (r *fakeCaseRepo) DeleteOwned(ctx context.Context, ownerID, caseID uuid.UUID) error {
	return apperrors.New(apperrors.CodeDB, "не используется")
}

func (r *fakeCaseRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Case, error) {
	var out []models.Case
	for _, c := range r.cases {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCaseRepo) IDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, c := range r.cases {
		if c.UserID == userID {
			out = append(out, c.ID)
		}
	}
	return out, nil
}

func (r *fakeCaseRepo) Search(ctx context.Context, excludeUserID uuid.UUID, itemType string, ownerIDs []uuid.UUID) ([]models.Case, error) {
	return nil, nil
}

type likeKey struct {
	userID uuid.UUID
	caseID uuid.UUID
}

type fakeLikeRepo struct {
	likes map[likeKey]bool
}

func (r *fakeLikeRepo) Insert(ctx context.Context, userID, caseID uuid.UUID) error {
	k := likeKey{userID, caseID}
	if r.likes[k] {
		return apperrors.New(apperrors.CodeDuplicateKey, "лайк уже есть")
	}
	r.likes[k] = true
	return nil
}

func (r *fakeLikeRepo) CaseIDsLikedByWithin(ctx context.Context, userID uuid.UUID, within []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, id := range within {
		if r.likes[likeKey{userID, id}] {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeLikedCaseRepo struct {
	snapshots []models.LikedCase
}

func (r *fakeLikedCaseRepo) Insert(ctx context.Context, lc models.LikedCase) error {
	for _, s := range r.snapshots {
		if s.UserID == lc.UserID && s.CaseID == lc.CaseID {
			return apperrors.New(apperrors.CodeDuplicateKey, "снимок уже есть")
		}
	}
	r.snapshots = append(r.snapshots, lc)
	return nil
}

func (r *fakeLikedCaseRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LikedCase, error) {
	var out []models.LikedCase
	for _, s := range r.snapshots {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []models.MutualLikeNotification
	fail          bool
}

func (r *fakeNotificationRepo) Insert(ctx context.Context, n models.MutualLikeNotification) error {
	if r.fail {
		return apperrors.New(apperrors.CodeDB, "ошибка сохранения уведомления")
	}
	for _, have := range r.notifications {
		if have.User1ID == n.User1ID && have.User2ID == n.User2ID &&
			have.User1CaseID == n.User1CaseID && have.User2CaseID == n.User2CaseID {
			return apperrors.New(apperrors.CodeDuplicateKey, "уведомление уже есть")
		}
	}
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.MutualLikeNotification, error) {
	var out []models.MutualLikeNotification
	for _, n := range r.notifications {
		if n.User1ID == userID || n.User2ID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

type fixture struct {
	svc           *LikeService
	cases         *fakeCaseRepo
	likes         *fakeLikeRepo
	likedCases    *fakeLikedCaseRepo
	notifications *fakeNotificationRepo
}

func newFixture() *fixture {
	f := &fixture{
		cases:         &fakeCaseRepo{cases: make(map[uuid.UUID]*models.Case)},
		likes:         &fakeLikeRepo{likes: make(map[likeKey]bool)},
		likedCases:    &fakeLikedCaseRepo{},
		notifications: &fakeNotificationRepo{},
	}
	store := &storage.Store{
		Cases:         f.cases,
		Likes:         f.likes,
		LikedCases:    f.likedCases,
		Notifications: f.notifications,
	}
	f.svc = NewLikeService(store, zerolog.Nop())
	return f
}

func (f *fixture) addCase(owner *models.User, title string) *models.Case {
	c := &models.Case{
		ID:       uuid.New(),
		UserID:   owner.ID,
		Title:    title,
		ItemType: "Електроніка",
		Owner:    owner,
	}
	f.cases.cases[c.ID] = c
	return c
}

func newUser(name string) *models.User {
	return &models.User{ID: uuid.New(), TelegramID: name, Name: name}
}

func TestLikeCaseStoresSnapshot(t *testing.T) {
	f := newFixture()
	anna := newUser("anna")
	boris := newUser("boris")
	phone := f.addCase(boris, "Телефон")

	if err := f.svc.LikeCase(context.Background(), anna.ID, phone.ID); err != nil {
		t.Fatalf("LikeCase: %v", err)
	}

	snapshots, _ := f.likedCases.ListByUser(context.Background(), anna.ID)
	if len(snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snapshots))
	}
	s := snapshots[0]
	if s.Title != "Телефон" || s.OwnerName != "boris" || s.OwnerTelegramID != boris.TelegramID {
		t.Fatalf("snapshot fields = %+v", s)
	}

	// Первый лайк пары взаимности не даёт
	if len(f.notifications.notifications) != 0 {
		t.Fatalf("notifications = %d, want 0", len(f.notifications.notifications))
	}
}

func TestLikeCaseUnknownCase(t *testing.T) {
	f := newFixture()
	anna := newUser("anna")

	err := f.svc.LikeCase(context.Background(), anna.ID, uuid.New())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestMutualLikeSecondLikeCreatesNotification(t *testing.T) {
	f := newFixture()
	anna := newUser("anna")
	boris := newUser("boris")
	annasBike := f.addCase(anna, "Велосипед")
	borisPhone := f.addCase(boris, "Телефон")

	if err := f.svc.LikeCase(context.Background(), boris.ID, annasBike.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if len(f.notifications.notifications) != 0 {
		t.Fatal("notification created before reciprocity")
	}

	if err := f.svc.LikeCase(context.Background(), anna.ID, borisPhone.ID); err != nil {
		t.Fatalf("second like: %v", err)
	}
	if len(f.notifications.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(f.notifications.notifications))
	}

	n := f.notifications.notifications[0]
	if bytes.Compare(n.User1ID[:], n.User2ID[:]) > 0 {
		t.Fatal("pair stored out of canonical order")
	}
	pair := map[uuid.UUID]uuid.UUID{n.User1ID: n.User1CaseID, n.User2ID: n.User2CaseID}
	if pair[anna.ID] != annasBike.ID || pair[boris.ID] != borisPhone.ID {
		t.Fatalf("notification cases mismatched: %+v", n)
	}
}

func TestMutualLikeRelikeDoesNotDuplicate(t *testing.T) {
	f := newFixture()
	anna := newUser("anna")
	boris := newUser("boris")
	annasBike := f.addCase(anna, "Велосипед")
	borisPhone := f.addCase(boris, "Телефон")

	for _, step := range []struct {
		viewer uuid.UUID
		caseID uuid.UUID
	}{
		{boris.ID, annasBike.ID},
		{anna.ID, borisPhone.ID},
		// Повторные лайки в обе стороны
		{anna.ID, borisPhone.ID},
		{boris.ID, annasBike.ID},
	} {
		if err := f.svc.LikeCase(context.Background(), step.viewer, step.caseID); err != nil {
			t.Fatalf("LikeCase: %v", err)
		}
	}

	if len(f.notifications.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(f.notifications.notifications))
	}
}

func TestMutualLikeNotificationFailureSurfacesAndHeals(t *testing.T) {
	f := newFixture()
	anna := newUser("anna")
	boris := newUser("boris")
	annasBike := f.addCase(anna, "Велосипед")
	borisPhone := f.addCase(boris, "Телефон")

	if err := f.svc.LikeCase(context.Background(), boris.ID, annasBike.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}

	f.notifications.fail = true
	err := f.svc.LikeCase(context.Background(), anna.ID, borisPhone.ID)
	if apperrors.CodeOf(err) != apperrors.CodeDB {
		t.Fatalf("err = %v, want DB code", err)
	}
	if len(f.notifications.notifications) != 0 {
		t.Fatal("notification stored despite insert failure")
	}

	// Повторный лайк заново запускает обнаружение и дозаписывает уведомление
	f.notifications.fail = false
	if err := f.svc.LikeCase(context.Background(), anna.ID, borisPhone.ID); err != nil {
		t.Fatalf("retry like: %v", err)
	}
	if len(f.notifications.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(f.notifications.notifications))
	}
}

func TestSelfLikeNoNotification(t *testing.T) {
	f := newFixture()
	anna := newUser("anna")
	bike := f.addCase(anna, "Велосипед")

	if err := f.svc.LikeCase(context.Background(), anna.ID, bike.ID); err != nil {
		t.Fatalf("LikeCase: %v", err)
	}
	if len(f.notifications.notifications) != 0 {
		t.Fatal("self-like produced a notification")
	}
}

func TestMutualLikeRequiresViewerCases(t *testing.T) {
	f := newFixture()
	anna := newUser("anna")
	boris := newUser("boris")
	borisPhone := f.addCase(boris, "Телефон")

	// У anna нет кейсов, взаимность невозможна
	if err := f.svc.LikeCase(context.Background(), anna.ID, borisPhone.ID); err != nil {
		t.Fatalf("LikeCase: %v", err)
	}
	if len(f.notifications.notifications) != 0 {
		t.Fatal("notification created without reciprocal case")
	}
}
