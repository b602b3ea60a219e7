package stub

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var (
	errInvalidCredentials = errors.New("invalid credentials")
	errUserExists         = errors.New("user already exists")
	errOrderNotFound      = errors.New("order not found")
)

// errorResponse is the canonical error envelope for all stub API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// newErrorHandler maps known errors to deterministic HTTP codes, logs
// unexpected ones without leaking details, and always renders the
// {"error": "<message>"} envelope.
func newErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, errInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, errUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, errOrderNotFound):
		return http.StatusNotFound, "order not found"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("stub: unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
