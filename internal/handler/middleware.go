package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/session"
)

const userContextKey = "current_user"

// AccessRules is the single authorization table consulted by the gate,
// keyed by "METHOD /registered/route/path". Routes absent from the
// table require authentication only.
var AccessRules = map[string]model.Role{
	"GET /vacancy/create":      model.RoleCompany,
	"POST /vacancy/create":     model.RoleCompany,
	"GET /vacancy/edit/:id":    model.RoleCompany,
	"POST /vacancy/edit/:id":   model.RoleCompany,
	"POST /vacancy/delete/:id": model.RoleCompany,
	"POST /vacancy/apply/:id":  model.RoleCandidate,
}

// Gate resolves the session cookie to a user and enforces AccessRules
// before a protected handler runs.
type Gate struct {
	sessions session.Manager
	users    repository.UserRepository
}

// NewGate creates the access-control gate.
func NewGate(sessions session.Manager, users repository.UserRepository) *Gate {
	return &Gate{sessions: sessions, users: users}
}

// Require is the middleware applied to every protected route. Requests
// without a live session bounce to the login page; authenticated
// requests whose role does not match the rule table bounce to the
// listing page without an error status.
func (g *Gate) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusFound, "/login")
		}

		userID, err := g.sessions.Get(c.Request().Context(), cookie.Value)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}

		user, err := g.users.FindByID(c.Request().Context(), userID)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}

		rule := c.Request().Method + " " + c.Path()
		if required, ok := AccessRules[rule]; ok && user.Role != required {
			return c.Redirect(http.StatusFound, "/vacancies")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// CurrentUser returns the authenticated user attached by the gate, or
// nil on unguarded routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
