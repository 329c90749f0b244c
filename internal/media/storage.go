package media

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Upload is a file the transport layer has already placed on durable
// storage, waiting to be bound to a record.
type Upload struct {
	// Ref is the relative reference persisted on the record,
	// e.g. "/uploads/20260115-<uuid>-brochure.jpg".
	Ref string

	// Name is the original client-supplied filename.
	Name string
}

// Storage is the durable-file boundary. Save stores src under the given
// filename and returns its "/uploads/..." ref. Delete must tolerate an
// already absent file; only unexpected failures are errors.
type Storage interface {
	Save(ctx context.Context, name string, src io.Reader) (ref string, err error)
	Exists(ctx context.Context, ref string) bool
	Delete(ctx context.Context, ref string) error
}

const refPrefix = "/uploads/"

var reUnsafeName = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(name string) string {
	return reUnsafeName.ReplaceAllString(name, "_")
}

// UniqueFilename prefixes the original name with the date and a UUID so
// concurrent uploads of the same file never collide.
func UniqueFilename(original string) string {
	return fmt.Sprintf("%s-%s-%s",
		time.Now().Format("20060102"),
		uuid.New().String(),
		sanitizeFilename(original),
	)
}

// ThumbRef is where the generated thumbnail for ref lives.
func ThumbRef(ref string) string {
	return ref + ".thumb.webp"
}
