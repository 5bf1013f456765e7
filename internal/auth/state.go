package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"jobboard/internal/model"
)

// StateTTL bounds how long an authorize redirect may take before the
// callback's state stops verifying.
const StateTTL = 10 * time.Minute

// ErrInvalidState is returned when a callback's state parameter does
// not verify.
var ErrInvalidState = errors.New("invalid oauth state")

type stateClaims struct {
	Provider string `json:"provider"`
	jwt.RegisteredClaims
}

// StateService mints and verifies the OAuth state parameter as a
// short-lived signed token, binding each callback to the provider the
// flow started with.
type StateService struct {
	secret []byte
}

// NewStateService creates a state service signing with the given secret.
func NewStateService(secret string) *StateService {
	return &StateService{secret: []byte(secret)}
}

// Issue returns a signed state token for the provider.
func (s *StateService) Issue(provider model.Provider) (string, error) {
	claims := &stateClaims{
		Provider: string(provider),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(StateTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the state token's signature, expiry and provider binding.
func (s *StateService) Verify(state string, provider model.Provider) error {
	token, err := jwt.ParseWithClaims(state, &stateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return ErrInvalidState
	}
	claims, ok := token.Claims.(*stateClaims)
	if !ok || !token.Valid || claims.Provider != string(provider) {
		return ErrInvalidState
	}
	return nil
}
