package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/todoapp/internal/apierror"
)

// NewHTTPErrorHandler returns a middleware that formats rendered errors.
// Outside production, internal errors carry their message and stack trace.
func NewHTTPErrorHandler(environment string) echo.HTTPErrorHandler {
	production := environment == "production"

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		switch err := err.(type) {
		case *echo.HTTPError:
			if err.Code == http.StatusNotFound || err.Code == http.StatusMethodNotAllowed {
				_ = c.JSON(http.StatusNotFound, echo.Map{"message": "Route not found"})
				return
			}

			log.Printf("Error [ECHO]: %v", err.Message)
			_ = c.JSON(err.Code, echo.Map{"message": fmt.Sprintf("%v", err.Message)})
		case *apierror.Error:
			status := apierror.StatusCode(err)
			if status < 500 || status == http.StatusServiceUnavailable {
				_ = c.JSON(status, err)
				return
			}

			internal(err, c, production)
		default:
			internal(err, c, production)
		}
	}
}

func internal(err error, c echo.Context, production bool) {
	id := uuid.Must(uuid.NewV4()).String()
	log.Printf("Error [%s]: %+v", id, err)

	if production {
		_ = c.JSON(http.StatusInternalServerError, echo.Map{
			"message": fmt.Sprintf("Server error (id: %s)", id),
		})
		return
	}

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"message": fmt.Sprintf("Server error (id: %s)", id),
		"detail":  err.Error(),
		"stack":   fmt.Sprintf("%+v", err),
	})
}
