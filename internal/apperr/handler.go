package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler logs the underlying error and answers with a generic
// JSON body. Internal error text never reaches the client.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if ve, ok := AsValidation(err); ok {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Public(), "title": "validation error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				slog.Error("Request failed", "uri", c.Request().RequestURI, "status", he.Code, "error", he.Internal)
			}
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "uri", c.Request().RequestURI, "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
