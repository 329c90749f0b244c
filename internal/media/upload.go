package media

import (
	"bytes"
	"context"
	"io"
	"log"
	"mime/multipart"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
)

// SaveUploadedImage validates and stores a multipart image upload, plus a
// best-effort webp thumbnail next to it. This is the boundary step that
// runs before any row is written; the returned Upload is what the
// lifecycle later binds to (or discards from) a record.
func SaveUploadedImage(ctx context.Context, st Storage, fh *multipart.FileHeader) (*Upload, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, httperr.Storage("upload_read_failed")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, httperr.Storage("upload_read_failed")
	}

	if !sniffImage(data) {
		return nil, httperr.Validation("unsupported_image_format")
	}

	ref, err := st.Save(ctx, UniqueFilename(fh.Filename), bytes.NewReader(data))
	if err != nil {
		return nil, httperr.Storage("upload_store_failed")
	}

	// Thumbnail failures never fail the upload; the original is what the
	// record references.
	if thumb, terr := thumbnailWebP(data); terr == nil {
		if _, terr = st.Save(ctx, ThumbRef(ref), bytes.NewReader(thumb)); terr != nil {
			log.Printf("media: thumbnail store failed for %s: %v", ref, terr)
		}
	} else {
		log.Printf("media: thumbnail encode failed for %s: %v", ref, terr)
	}

	return &Upload{Ref: ref, Name: fh.Filename}, nil
}
