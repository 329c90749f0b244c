package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func ConflictStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From maps a core error to its HTTP status. Unrecognized errors become
// the given fallback internal code so handlers never leak raw details.
func From(c *gin.Context, err error, fallbackCode string) {
	kind, ok := KindOf(err)
	if !ok {
		Internal(c, fallbackCode, "Something went wrong.")
		return
	}

	switch kind {
	case KindValidation:
		BadRequest(c, err.Error(), "Invalid request.")
	case KindNotFound:
		NotFound(c, err.Error(), "Not found.")
	case KindConflict:
		ConflictStatus(c, err.Error(), "Conflict.")
	default:
		Internal(c, err.Error(), "Something went wrong.")
	}
}
