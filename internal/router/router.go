package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	gate *handler.Gate,
	authHandler *handler.AuthHandler,
	vacancyHandler *handler.VacancyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", authHandler.Home)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.ShowSignup)
	e.POST("/signup", authHandler.Signup)
	e.GET("/logout", authHandler.Logout)
	e.GET("/auth/:provider", authHandler.OAuthRedirect)
	e.GET("/auth/:provider/callback", authHandler.OAuthCallback)

	// Protected routes (session required; roles enforced by the gate's
	// rule table)
	protected := e.Group("", gate.Require)
	protected.GET("/vacancies", vacancyHandler.List)
	protected.GET("/vacancies/filters", vacancyHandler.Filter)
	protected.GET("/vacancy/create", vacancyHandler.ShowCreate)
	protected.POST("/vacancy/create", vacancyHandler.Create)
	protected.GET("/vacancy/details/:id", vacancyHandler.Details)
	protected.GET("/vacancy/edit/:id", vacancyHandler.ShowEdit)
	protected.POST("/vacancy/edit/:id", vacancyHandler.Edit)
	protected.POST("/vacancy/delete/:id", vacancyHandler.Delete)
	protected.POST("/vacancy/apply/:id", vacancyHandler.Apply)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
