package handler // handler package holds the diagnostic endpoints too

import (
    "net/http" // http provides status code constants

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers
)

// pingOK is the success payload; a struct keeps the field order stable.
type pingOK struct {
    Status string `json:"status"` // always "ok"
    Echo   string `json:"echo"`   // url reported by the upstream
}

// pingFailed is the 502 payload.
type pingFailed struct {
    Status  string `json:"status"`  // always "error"
    Message string `json:"message"` // upstream failure message
}

// Ping handles GET /ping, an external reachability smoke test.  Any
// upstream failure, timeouts included, becomes a 502 carrying the failure
// message.
func (h *StatusHandler) Ping(c echo.Context) error {
    echoed, err := h.Upstream.Echo(c.Request().Context()) // bounded by the client timeout
    if err != nil {
        c.Logger().Warnf("ping upstream: %v", err)
        return c.JSON(http.StatusBadGateway, pingFailed{Status: "error", Message: err.Error()}) // message is shown verbatim
    }
    return c.JSON(http.StatusOK, pingOK{Status: "ok", Echo: echoed})
}
