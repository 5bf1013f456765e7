package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jobboard/internal/auth"
	"jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/session"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	args := m.Called(ctx, username, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) ExternalLogin(ctx context.Context, provider model.Provider, subjectID string) (*model.User, error) {
	args := m.Called(ctx, provider, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func testProviders() map[model.Provider]*auth.Provider {
	creds := map[model.Provider]auth.ProviderCredentials{}
	for _, p := range model.Providers {
		creds[p] = auth.ProviderCredentials{ClientID: "client-" + string(p), ClientSecret: "secret"}
	}
	return auth.NewProviders("http://127.0.0.1:8080", creds)
}

func newAuthHandler(svc *MockAuthService, sessions *MockSessionManager) *AuthHandler {
	return NewAuthHandler(svc, sessions, testProviders(), auth.NewStateService("test-secret"))
}

func TestAuthHandler_Login(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleCompany}

	t.Run("success sets session cookie", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "acme", "password123").Return(user, nil)
		sessions := new(MockSessionManager)
		sessions.On("Create", mock.Anything, user.ID).Return("tok-1", nil)

		c, rec := authContext(t, "/login", url.Values{"username": {"acme"}, "password": {"password123"}})
		assert.NoError(t, newAuthHandler(svc, sessions).Login(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/vacancies", rec.Header().Get("Location"))
		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, "tok-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		sessions.AssertExpectations(t)
	})

	t.Run("bad credentials redirect uniformly", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "ghost", "nope").Return(nil, errors.ErrInvalidCredentials)
		sessions := new(MockSessionManager)

		c, rec := authContext(t, "/login", url.Values{"username": {"ghost"}, "password": {"nope"}})
		assert.NoError(t, newAuthHandler(svc, sessions).Login(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?failed=1", rec.Header().Get("Location"))
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		svc := new(MockAuthService)
		sessions := new(MockSessionManager)

		c, rec := authContext(t, "/login", url.Values{"username": {"acme"}})
		assert.NoError(t, newAuthHandler(svc, sessions).Login(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?failed=1", rec.Header().Get("Location"))
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("success redirects to login", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "acme", "password123", model.RoleCompany).
			Return(&model.User{ID: uuid.New(), Role: model.RoleCompany}, nil)

		c, rec := authContext(t, "/signup", url.Values{"username": {"acme"}, "password": {"password123"}, "role": {"company"}})
		assert.NoError(t, newAuthHandler(svc, new(MockSessionManager)).Signup(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("taken username", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "acme", "password123", model.RoleCandidate).
			Return(nil, errors.ErrUsernameTaken)

		c, rec := authContext(t, "/signup", url.Values{"username": {"acme"}, "password": {"password123"}, "role": {"candidate"}})
		assert.NoError(t, newAuthHandler(svc, new(MockSessionManager)).Signup(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/signup?taken=1", rec.Header().Get("Location"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := new(MockSessionManager)
	sessions.On("Delete", mock.Anything, "tok-1").Return(nil)

	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, newAuthHandler(new(MockAuthService), sessions).Logout(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
	sessions.AssertExpectations(t)
}

func TestAuthHandler_OAuthRedirect(t *testing.T) {
	t.Run("known provider", func(t *testing.T) {
		c, rec := authGetContext(t, "/auth/github", "provider", "github")
		assert.NoError(t, newAuthHandler(new(MockAuthService), new(MockSessionManager)).OAuthRedirect(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		location := rec.Header().Get("Location")
		assert.Contains(t, location, "github.com")
		assert.Contains(t, location, "client_id=client-github")
		assert.Contains(t, location, "state=")
	})

	t.Run("unknown provider", func(t *testing.T) {
		c, rec := authGetContext(t, "/auth/myspace", "provider", "myspace")
		assert.NoError(t, newAuthHandler(new(MockAuthService), new(MockSessionManager)).OAuthRedirect(c))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestAuthHandler_OAuthCallback_BadState(t *testing.T) {
	svc := new(MockAuthService)

	c, rec := authGetContext(t, "/auth/github/callback?code=abc&state=forged", "provider", "github")
	assert.NoError(t, newAuthHandler(svc, new(MockSessionManager)).OAuthCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	svc.AssertNotCalled(t, "ExternalLogin", mock.Anything, mock.Anything, mock.Anything)
}

func authContext(t *testing.T, target string, form url.Values) (c echo.Context, rec *httptest.ResponseRecorder) {
	t.Helper()
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authGetContext(t *testing.T, target, paramName, paramValue string) (c echo.Context, rec *httptest.ResponseRecorder) {
	t.Helper()
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames(paramName)
	c.SetParamValues(paramValue)
	return c, rec
}
