package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// StatusHandler serves the diagnostic endpoints.
type StatusHandler struct {
    DB       Pinger   // DB answers the liveness query
    Upstream Upstream // Upstream is called by /ping
}

// healthResp keeps the field order of the health payload stable.
type healthResp struct {
    Status   string `json:"status"`
    Database string `json:"database"`
}

// Health handles GET /health.  It runs a trivial query against the store
// and reports 200 when it answers, 503 otherwise.  Failures are logged and
// never escape the handler.
func (h *StatusHandler) Health(c echo.Context) error {
    if err := h.DB.Ping(c.Request().Context()); err != nil {
        c.Logger().Errorf("health: %v", err)
        return c.JSON(http.StatusServiceUnavailable, healthResp{Status: "error", Database: "disconnected"})
    }
    return c.JSON(http.StatusOK, healthResp{Status: "ok", Database: "connected"})
}
