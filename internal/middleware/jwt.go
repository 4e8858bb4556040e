// Package middleware contains reusable HTTP middleware for the portal API.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth validates a Bearer access token and injects the subject and role
// claims into the request context. Handlers on protected routes read the
// authenticated user via UserID(c) and c.Get("role"). Without a valid
// token the request stops here with a 401 — this is the server-side
// equivalent of the client never rendering protected views while no
// session is loaded.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}

			claims, err := parseBearer(strings.TrimPrefix(auth, "Bearer "), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			uid, ok := subjectID(claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid subject"})
			}
			c.Set("user_id", uid)
			c.Set("role", claims["role"])
			return next(c)
		}
	}
}

// UserID returns the authenticated user id stored by JWTAuth.
func UserID(c echo.Context) (uint64, bool) {
	uid, ok := c.Get("user_id").(uint64)
	return uid, ok
}

// BearerSubject validates the Authorization header of a request on a route
// that does not carry JWTAuth and returns the subject's user id. Logout
// lives on the unauthenticated auth group but still accepts a bearer token
// as its credential for the revoke-all mode.
func BearerSubject(c echo.Context, secret string) (uint64, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return 0, false
	}
	claims, err := parseBearer(strings.TrimPrefix(auth, "Bearer "), secret)
	if err != nil {
		return 0, false
	}
	return subjectID(claims)
}

// parseBearer verifies an HS256 token and returns its claims.
func parseBearer(raw, secret string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, echo.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.ErrUnauthorized
	}
	return claims, nil
}

// subjectID normalizes the "sub" claim: JSON numbers decode as float64,
// some issuers encode numeric strings.
func subjectID(claims jwt.MapClaims) (uint64, bool) {
	switch v := claims["sub"].(type) {
	case float64:
		return uint64(v), true
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
