package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Root answers the base path with a short running message.  POS
// terminals call it on startup to confirm the backend is reachable,
// and load balancers can use it as a liveness probe.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "POS API Server is running"})
}
