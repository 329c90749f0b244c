package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/globalreach-edu/consultancy-api/internal/media"
	"github.com/globalreach-edu/consultancy-api/internal/middleware"
)

// formFields collects the recognized keys that are actually present in
// the (multipart or urlencoded) form, so the stores can tell "absent"
// from "supplied empty".
func formFields(c *gin.Context, keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := c.GetPostForm(k); ok {
			out[k] = v
		}
	}
	return out
}

// imageUpload stores the optional "image" file of a multipart request
// before any row is touched. A missing file is not an error.
func imageUpload(c *gin.Context, st media.Storage) (*media.Upload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return media.SaveUploadedImage(c.Request.Context(), st, fh)
}

func adminIDFrom(c *gin.Context) *uint {
	id := c.MustGet(middleware.ContextAdminID).(uint)
	return &id
}
