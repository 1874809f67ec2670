package handler // handler package contains the liveness endpoint

import (
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers
)

// Health reports process liveness for load balancers and uptime
// probes. It answers JSON like every other endpoint in this API.
func Health(c echo.Context) error { // Health handler accepts an echo context and returns an error
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"}) // 200 with a small status body
}
