package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/auth"
	"jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/service"
	"jobboard/internal/session"
)

// AuthHandler handles login, signup and the external provider flows.
type AuthHandler struct {
	authService service.AuthService
	sessions    session.Manager
	providers   map[model.Provider]*auth.Provider
	states      *auth.StateService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions session.Manager, providers map[model.Provider]*auth.Provider, states *auth.StateService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		providers:   providers,
		states:      states,
	}
}

// LoginForm represents a local login submission.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SignupForm represents a local registration submission.
type SignupForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required,min=6"`
	Role     string `form:"role" validate:"omitempty,oneof=candidate company"`
}

// Home godoc
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML"
// @Router / [get]
func (h *AuthHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// ShowLogin godoc
// @Summary Render the login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /login [get]
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	data := map[string]interface{}{}
	if c.QueryParam("failed") != "" {
		data["Error"] = "Wrong credentials"
	}
	return c.Render(http.StatusOK, "login.html", data)
}

// Login godoc
// @Summary Log in with local credentials
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 {string} string "redirect"
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, "/login?failed=1")
	}
	if err := c.Validate(&form); err != nil {
		return c.Redirect(http.StatusFound, "/login?failed=1")
	}

	user, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		// Unknown usernames and wrong passwords look identical here.
		return c.Redirect(http.StatusFound, "/login?failed=1")
	}

	if err := h.startSession(c, user); err != nil {
		c.Logger().Errorf("start session: %v", err)
		return c.Redirect(http.StatusFound, "/login?failed=1")
	}
	return c.Redirect(http.StatusFound, "/vacancies")
}

// ShowSignup godoc
// @Summary Render the signup form
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /signup [get]
func (h *AuthHandler) ShowSignup(c echo.Context) error {
	data := map[string]interface{}{}
	if c.QueryParam("taken") != "" {
		data["Error"] = "Username already taken"
	} else if c.QueryParam("invalid") != "" {
		data["Error"] = "Username and a password of at least 6 characters are required"
	}
	return c.Render(http.StatusOK, "signup.html", data)
}

// Signup godoc
// @Summary Register a local account
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param role formData string false "Role (candidate or company)"
// @Success 302 {string} string "redirect"
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var form SignupForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, "/signup?invalid=1")
	}
	if err := c.Validate(&form); err != nil {
		return c.Redirect(http.StatusFound, "/signup?invalid=1")
	}

	_, err := h.authService.Register(c.Request().Context(), form.Username, form.Password, model.Role(form.Role))
	if err == errors.ErrUsernameTaken {
		return c.Redirect(http.StatusFound, "/signup?taken=1")
	}
	if err != nil {
		c.Logger().Errorf("signup: %v", err)
		return c.Redirect(http.StatusFound, "/signup?invalid=1")
	}
	return c.Redirect(http.StatusFound, "/login")
}

// Logout godoc
// @Summary Log out and drop the session
// @Tags auth
// @Success 302 {string} string "redirect"
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			c.Logger().Errorf("delete session: %v", err)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

// OAuthRedirect godoc
// @Summary Start an external provider login
// @Tags auth
// @Param provider path string true "Provider (github, google, linkedin, xing)"
// @Success 302 {string} string "redirect to provider"
// @Router /auth/{provider} [get]
func (h *AuthHandler) OAuthRedirect(c echo.Context) error {
	provider, ok := h.providers[model.Provider(c.Param("provider"))]
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	state, err := h.states.Issue(provider.Name)
	if err != nil {
		c.Logger().Errorf("issue state: %v", err)
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Redirect(http.StatusFound, provider.AuthCodeURL(state))
}

// OAuthCallback godoc
// @Summary Complete an external provider login
// @Tags auth
// @Param provider path string true "Provider (github, google, linkedin, xing)"
// @Param code query string true "Authorization code"
// @Param state query string true "State"
// @Success 302 {string} string "redirect"
// @Router /auth/{provider}/callback [get]
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	provider, ok := h.providers[model.Provider(c.Param("provider"))]
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := h.states.Verify(c.QueryParam("state"), provider.Name); err != nil {
		return c.Redirect(http.StatusFound, "/login")
	}

	subject, err := provider.FetchSubject(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		c.Logger().Errorf("%s login: %v", provider.Name, err)
		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := h.authService.ExternalLogin(c.Request().Context(), provider.Name, subject)
	if err != nil {
		c.Logger().Errorf("%s login: %v", provider.Name, err)
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := h.startSession(c, user); err != nil {
		c.Logger().Errorf("start session: %v", err)
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Redirect(http.StatusFound, "/vacancies")
}

func (h *AuthHandler) startSession(c echo.Context, user *model.User) error {
	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
		HttpOnly: true,
	})
	return nil
}
