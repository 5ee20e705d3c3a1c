package handler // handler package also serves the static pages

import (
    "net/http" // http provides status code constants

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/iliyamo/ice-cream-parlor/internal/view" // view holds the page templates
)

// Landing handles GET / with the static landing page.  No data access.
func Landing(c echo.Context) error {
    return c.Render(http.StatusOK, view.LandingPage, nil) // renderer is set on the echo instance
}
