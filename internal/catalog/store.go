package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/media"
	"github.com/globalreach-edu/consultancy-api/internal/slug"
)

// Filters narrows List results; zero values mean "no filter".
type Filters struct {
	Status   string
	Category string
}

// Store is the CRUD engine for one media-backed catalog entity type.
// The database row is the sole authority for a record's existence; the
// media lifecycle keeps the referenced file consistent with it.
type Store[T any, P interface {
	*T
	Record
}] struct {
	db    *gorm.DB
	media *media.Lifecycle

	// categoryColumn is the variant-specific column the Category
	// filter matches against ("level" for classes, "category" for
	// programs).
	categoryColumn string
}

func NewStore[T any, P interface {
	*T
	Record
}](db *gorm.DB, lc *media.Lifecycle, categoryColumn string) *Store[T, P] {
	return &Store[T, P]{
		db:             db,
		media:          lc,
		categoryColumn: categoryColumn,
	}
}

func (s *Store[T, P]) List(ctx context.Context, f Filters) ([]T, error) {
	q := s.db.WithContext(ctx).Model(new(T))

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("LOWER("+s.categoryColumn+") LIKE ?",
			"%"+strings.ToLower(f.Category)+"%")
	}

	var recs []T
	if err := q.Order("created_at DESC, id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Store[T, P]) GetBySlug(ctx context.Context, slugVal string) (P, error) {
	var zero P

	rec := P(new(T))
	if err := s.db.WithContext(ctx).Where("slug = ?", slugVal).First(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, httperr.NotFoundErr(rec.EntityName() + "_not_found")
		}
		return zero, err
	}
	return rec, nil
}

func (s *Store[T, P]) GetByID(ctx context.Context, id uint) (P, error) {
	var zero P

	rec := P(new(T))
	if err := s.db.WithContext(ctx).First(rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, httperr.NotFoundErr(rec.EntityName() + "_not_found")
		}
		return zero, err
	}
	return rec, nil
}

// Create inserts a new record. Any rejection after a file was uploaded
// runs the compensating delete, so a failed create never strands the
// upload; a compensation failure takes precedence over the rejection.
func (s *Store[T, P]) Create(ctx context.Context, fields map[string]string, up *media.Upload) (P, error) {
	var zero P

	reject := func(err error) (P, error) {
		if derr := s.media.Discard(ctx, up); derr != nil {
			return zero, derr
		}
		return zero, err
	}

	rec := P(new(T))

	title := strings.TrimSpace(fields["title"])
	if title == "" {
		return reject(httperr.Validation("title_required"))
	}

	sl := slug.Make(title)
	if sl == "" {
		return reject(httperr.Validation("title_not_sluggable"))
	}

	status := fields["status"]
	if status == "" {
		status = StatusActive
	}
	if !ValidStatus(status) {
		return reject(httperr.Validation("invalid_status"))
	}

	if taken, err := s.slugTaken(ctx, sl, 0); err != nil {
		return reject(err)
	} else if taken {
		return reject(httperr.Conflict("slug_already_exists"))
	}

	rec.SetTitle(title)
	rec.SetSlug(sl)
	rec.SetStatus(status)
	for key, ptr := range rec.TextFields() {
		if v, ok := fields[key]; ok {
			*ptr = v
		}
	}
	rec.SetImage(s.media.AttachOnCreate(up))

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			// Lost the race with a concurrent create; the constraint
			// is the serialization point.
			return reject(httperr.Conflict("slug_already_exists"))
		}
		return reject(err)
	}

	return rec, nil
}

// Update merges a sparse payload onto the stored row. The slug is
// recomputed only when the title changed; the replaced media file is
// released only after the row write succeeds.
func (s *Store[T, P]) Update(ctx context.Context, id uint, fields map[string]string, up *media.Upload) (P, error) {
	var zero P

	reject := func(err error) (P, error) {
		if derr := s.media.Discard(ctx, up); derr != nil {
			return zero, derr
		}
		return zero, err
	}

	rec := P(new(T))
	if err := s.db.WithContext(ctx).First(rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reject(httperr.NotFoundErr(rec.EntityName() + "_not_found"))
		}
		return reject(err)
	}

	if v, ok := fields["status"]; ok && v != "" && !ValidStatus(v) {
		return reject(httperr.Validation("invalid_status"))
	}

	res := BuildUpdate(rec, fields)

	if res.TitleChanged {
		sl := slug.Make(rec.GetTitle())
		if sl == "" {
			return reject(httperr.Validation("title_not_sluggable"))
		}
		if sl != rec.GetSlug() {
			if taken, err := s.slugTaken(ctx, sl, rec.GetID()); err != nil {
				return reject(err)
			} else if taken {
				return reject(httperr.Conflict("slug_already_exists"))
			}
			rec.SetSlug(sl)
		}
	}

	oldRef := rec.GetImage()
	rec.SetImage(s.media.ReconcileOnUpdate(oldRef, up))
	rec.Touch(time.Now())

	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return reject(httperr.Conflict("slug_already_exists"))
		}
		return reject(err)
	}

	if up != nil {
		s.media.ReleaseReplaced(ctx, oldRef, rec.GetImage())
	}

	return rec, nil
}

// Delete looks the row up first (to learn its media reference), releases
// the file best-effort, then deletes the row. A failing file delete
// never blocks the row delete: the row is the source of truth.
func (s *Store[T, P]) Delete(ctx context.Context, id uint) error {
	rec := P(new(T))
	if err := s.db.WithContext(ctx).First(rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFoundErr(rec.EntityName() + "_not_found")
		}
		return err
	}

	s.media.ReleaseOnDelete(ctx, rec.GetImage())

	return s.db.WithContext(ctx).Delete(rec).Error
}

func (s *Store[T, P]) slugTaken(ctx context.Context, sl string, excludeID uint) (bool, error) {
	q := s.db.WithContext(ctx).Model(new(T)).Where("slug = ?", sl)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
