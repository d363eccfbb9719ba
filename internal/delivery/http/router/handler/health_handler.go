// Package handler contains the echo handlers of the HTTP delivery.
package handler

import (
	"net/http"

	"addressbook/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
