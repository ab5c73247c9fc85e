package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for splitting the header

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "doctors-portal-api/internal/utils"
)

// EmailKey is the context key under which RequireAuth stores the
// authenticated email for downstream handlers.
const EmailKey = "email"

// RequireAuth returns an Echo middleware that validates a Bearer session
// token and injects the token's email into the request context.  The guard
// is opt-in per route, not global: several portal endpoints are deliberately
// reachable without it (see the router's policy table).
//
// A missing Authorization header is an authentication failure (401); a
// header that is present but carries a token that does not verify is a
// privilege failure (403).  The token is whatever follows the first space
// in the header value.
func RequireAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            header := c.Request().Header.Get("Authorization")
            if header == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
            }

            raw := ""
            if _, after, found := strings.Cut(header, " "); found {
                raw = after
            }
            claims, err := utils.ParseToken(raw, secret)
            if err != nil {
                return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
            }

            c.Set(EmailKey, claims.Email)
            return next(c)
        }
    }
}
