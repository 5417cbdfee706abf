package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// ErrorResponse is the structured body rendered for translated domain
// failures. Error carries the stable machine-readable code; Message the human
// prose; Path the request URI that triggered the failure.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// genericResponse is the envelope for everything the translation table does
// not cover.
type genericResponse struct {
	Error string `json:"error"`
}

// statusByCode is the translation table: only these domain error kinds are
// handled here. Any other failure falls through to the generic paths below.
var statusByCode = map[string]int{
	domain.CodeUserNotFound:   http.StatusNotFound,
	domain.CodeUsernameExists: http.StatusConflict,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Translates mapped domain failures into the structured ErrorResponse body.
//   - Renders Echo's own errors (bind failures, 404 from router, auth rejections)
//     as a plain {"error": "<message>"} envelope.
//   - Logs anything unexpected without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var de *domain.Error
		if errors.As(err, &de) {
			if status, ok := statusByCode[de.Code]; ok {
				_ = c.JSON(status, ErrorResponse{
					Timestamp: time.Now().UTC(),
					Status:    status,
					Error:     de.Code,
					Message:   de.Message,
					Path:      c.Request().URL.Path,
				})
				return
			}
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, genericResponse{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, genericResponse{Error: "internal server error"})
	}
}
