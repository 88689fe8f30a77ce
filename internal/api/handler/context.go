package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// ctxCaller extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role and
// user id prove the middleware ran and the token carried a usable identity.
func ctxCaller(c echo.Context) (userID string, role domain.Role, err error) {
	r, _ := c.Get("role").(string)
	if r == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	return userID, domain.Role(r), nil
}

// ctxViewerRole resolves the caller's role on optional-auth routes. An
// anonymous caller yields the zero Role, which visibility rules treat
// exactly like READER.
func ctxViewerRole(c echo.Context) domain.Role {
	r, _ := c.Get("role").(string)
	return domain.Role(r)
}
