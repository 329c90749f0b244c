package media

import (
	"context"
	"log"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
)

// Lifecycle keeps a record's media reference and the stored file
// consistent: at most one durable file per record, no row ever pointing
// at a file that is gone. Stranded files (no row pointing at them) are a
// tolerated leak; dangling references are not.
type Lifecycle struct {
	storage Storage
}

func NewLifecycle(st Storage) *Lifecycle {
	return &Lifecycle{storage: st}
}

func (l *Lifecycle) Storage() Storage { return l.storage }

// AttachOnCreate records the already-stored upload's reference. No file
// movement happens here; the boundary layer stored it before the row
// write began.
func (l *Lifecycle) AttachOnCreate(up *Upload) string {
	if up == nil {
		return ""
	}
	return up.Ref
}

// ReconcileOnUpdate decides the reference the updated row will carry:
// a new upload wins, otherwise the existing reference stays. Pure
// decision; the replaced file is released only after the row persists
// (ReleaseReplaced), so a failed write can never strand a dangling ref.
func (l *Lifecycle) ReconcileOnUpdate(existing string, up *Upload) string {
	if up == nil {
		return existing
	}
	return up.Ref
}

// ReleaseReplaced deletes the file an update displaced, once the row
// carrying newRef has been persisted. Best effort: a failed delete
// leaks a file, never a reference.
func (l *Lifecycle) ReleaseReplaced(ctx context.Context, oldRef, newRef string) {
	if oldRef == "" || oldRef == newRef {
		return
	}
	l.bestEffortDelete(ctx, oldRef)
}

// ReleaseOnDelete removes the file for a record that is being deleted.
// Best effort: a missing file is fine, and a failing storage backend
// must not block deleting the row, which is the source of truth.
func (l *Lifecycle) ReleaseOnDelete(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	l.bestEffortDelete(ctx, ref)
}

// Discard is the compensating delete for an upload whose row write was
// rejected. Unlike the paths above this one fails loudly: an orphan we
// silently keep after telling the caller "rejected" is an unbounded leak.
func (l *Lifecycle) Discard(ctx context.Context, up *Upload) error {
	if up == nil {
		return nil
	}

	if err := l.storage.Delete(ctx, up.Ref); err != nil {
		log.Printf("media: compensating delete failed for %s: %v", up.Ref, err)
		return httperr.Storage("upload_cleanup_failed")
	}
	if err := l.storage.Delete(ctx, ThumbRef(up.Ref)); err != nil {
		log.Printf("media: compensating thumb delete failed for %s: %v", up.Ref, err)
	}
	return nil
}

func (l *Lifecycle) bestEffortDelete(ctx context.Context, ref string) {
	if err := l.storage.Delete(ctx, ref); err != nil {
		log.Printf("media: delete failed for %s: %v", ref, err)
	}
	if err := l.storage.Delete(ctx, ThumbRef(ref)); err != nil {
		log.Printf("media: thumb delete failed for %s: %v", ref, err)
	}
}
