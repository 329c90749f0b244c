package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/media"
	"github.com/globalreach-edu/consultancy-api/internal/models"
)

type testEnv struct {
	store   *Store[models.Class, *models.Class]
	storage media.Storage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Class{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st, err := media.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	return &testEnv{
		store:   NewStore[models.Class, *models.Class](db, media.NewLifecycle(st), "level"),
		storage: st,
	}
}

func errKind(t *testing.T, err error) httperr.Kind {
	t.Helper()
	kind, ok := httperr.KindOf(err)
	if !ok {
		t.Fatalf("not a business error: %v", err)
	}
	return kind
}

// storeUpload places a fake image file the way the upload boundary would,
// so create/update paths see an already durable file.
func (e *testEnv) storeUpload(t *testing.T, name string) *media.Upload {
	t.Helper()

	ref, err := e.storage.Save(context.Background(), name, strings.NewReader("img-bytes"))
	if err != nil {
		t.Fatalf("save upload: %v", err)
	}
	return &media.Upload{Ref: ref, Name: name}
}

func TestCreateSlugsTitle(t *testing.T) {
	env := newTestEnv(t)

	rec, err := env.store.Create(context.Background(), map[string]string{
		"title":       "IELTS Prep!!",
		"description": "Band 7+ drills",
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rec.Slug != "ielts-prep" {
		t.Fatalf("slug = %q, want %q", rec.Slug, "ielts-prep")
	}
	if rec.Status != StatusActive {
		t.Fatalf("status = %q, want default %q", rec.Status, StatusActive)
	}
	if rec.Description != "Band 7+ drills" {
		t.Fatalf("description = %q", rec.Description)
	}

	got, err := env.store.GetBySlug(context.Background(), "ielts-prep")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("lookup returned id %d, want %d", got.ID, rec.ID)
	}
}

func TestCreateRejectsUnsluggableTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.store.Create(context.Background(), map[string]string{"title": "!!!"}, nil)
	if errKind(t, err) != httperr.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}

	_, err = env.store.Create(context.Background(), map[string]string{"title": "   "}, nil)
	if errKind(t, err) != httperr.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestCreateDuplicateSlugCompensates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.store.Create(ctx, map[string]string{"title": "Visa Counseling"}, nil); err != nil {
		t.Fatalf("first create: %v", err)
	}

	up := env.storeUpload(t, "brochure.jpg")
	if !env.storage.Exists(ctx, up.Ref) {
		t.Fatalf("upload not stored")
	}

	// Same slug from an equivalent title.
	_, err := env.store.Create(ctx, map[string]string{"title": "Visa  Counseling!"}, up)
	if errKind(t, err) != httperr.KindConflict {
		t.Fatalf("err = %v, want conflict", err)
	}

	// The rejected create must not strand the uploaded file.
	if env.storage.Exists(ctx, up.Ref) {
		t.Fatalf("orphaned upload left behind after rejected create")
	}
}

func TestCreateInvalidStatusRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.store.Create(context.Background(), map[string]string{
		"title":  "PTE Prep",
		"status": "archived",
	}, nil)
	if errKind(t, err) != httperr.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestUpdatePartialKeepsTitleAndSlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec, err := env.store.Create(ctx, map[string]string{"title": "Study in Australia"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before := rec.UpdatedAt
	time.Sleep(10 * time.Millisecond)

	got, err := env.store.Update(ctx, rec.ID, map[string]string{
		"description": "Updated description only",
	}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Title != "Study in Australia" || got.Slug != "study-in-australia" {
		t.Fatalf("title/slug changed on partial update: %q / %q", got.Title, got.Slug)
	}
	if got.Description != "Updated description only" {
		t.Fatalf("description = %q", got.Description)
	}
	if !got.UpdatedAt.After(before) {
		t.Fatalf("updated_at did not advance: %v -> %v", before, got.UpdatedAt)
	}
}

func TestUpdateTitleRecomputesSlug(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec, err := env.store.Create(ctx, map[string]string{"title": "Old Name"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := env.store.Update(ctx, rec.ID, map[string]string{"title": "New Name"}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Slug != "new-name" {
		t.Fatalf("slug = %q, want %q", got.Slug, "new-name")
	}
}

func TestUpdateSlugCollisionRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.store.Create(ctx, map[string]string{"title": "Taken"}, nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	rec, err := env.store.Create(ctx, map[string]string{"title": "Other"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = env.store.Update(ctx, rec.ID, map[string]string{"title": "Taken"}, nil)
	if errKind(t, err) != httperr.KindConflict {
		t.Fatalf("err = %v, want conflict", err)
	}

	// Renaming back to its own title is not a collision.
	if _, err := env.store.Update(ctx, rec.ID, map[string]string{"title": "Other"}, nil); err != nil {
		t.Fatalf("self rename: %v", err)
	}
}

func TestUpdateReplacesImageAfterPersist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.storeUpload(t, "one.jpg")
	rec, err := env.store.Create(ctx, map[string]string{"title": "With Image"}, first)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Image != first.Ref {
		t.Fatalf("image = %q, want %q", rec.Image, first.Ref)
	}

	second := env.storeUpload(t, "two.jpg")
	got, err := env.store.Update(ctx, rec.ID, nil, second)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if got.Image != second.Ref {
		t.Fatalf("image = %q, want %q", got.Image, second.Ref)
	}
	if env.storage.Exists(ctx, first.Ref) {
		t.Fatalf("replaced file not released")
	}
	if !env.storage.Exists(ctx, second.Ref) {
		t.Fatalf("new file missing after update")
	}
}

func TestUpdateMissingRecordCompensates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	up := env.storeUpload(t, "ghost.jpg")
	_, err := env.store.Update(ctx, 9999, map[string]string{"title": "x"}, up)
	if errKind(t, err) != httperr.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
	if env.storage.Exists(ctx, up.Ref) {
		t.Fatalf("upload stranded after not-found update")
	}
}

func TestDeleteReleasesImage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	up := env.storeUpload(t, "gone.jpg")
	rec, err := env.store.Create(ctx, map[string]string{"title": "Doomed"}, up)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := env.store.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if env.storage.Exists(ctx, up.Ref) {
		t.Fatalf("image file survived record delete")
	}
	if _, err := env.store.GetByID(ctx, rec.ID); errKind(t, err) != httperr.KindNotFound {
		t.Fatalf("record still readable after delete: %v", err)
	}

	if err := env.store.Delete(ctx, rec.ID); errKind(t, err) != httperr.KindNotFound {
		t.Fatalf("second delete err = %v, want not found", err)
	}
}

func TestListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	mk := func(title, level, status string) {
		t.Helper()
		if _, err := env.store.Create(ctx, map[string]string{
			"title": title, "level": level, "status": status,
		}, nil); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	mk("A Class", "Beginner", StatusActive)
	mk("B Class", "Advanced", StatusActive)
	mk("C Class", "Beginner", StatusInactive)

	all, err := env.store.List(ctx, Filters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	active, err := env.store.List(ctx, Filters{Status: StatusActive})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active len = %d, want 2", len(active))
	}

	// Category filter is a case-insensitive substring match.
	beg, err := env.store.List(ctx, Filters{Category: "begin"})
	if err != nil {
		t.Fatalf("list level: %v", err)
	}
	if len(beg) != 2 {
		t.Fatalf("level len = %d, want 2", len(beg))
	}
}
