package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rolebase/blog-api/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth, which
// guarantees a role claim is present for authenticated callers.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
