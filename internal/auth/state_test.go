package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobboard/internal/model"
)

func TestStateService_RoundTrip(t *testing.T) {
	states := NewStateService("test-secret")

	state, err := states.Issue(model.ProviderGithub)
	assert.NoError(t, err)
	assert.NotEmpty(t, state)

	assert.NoError(t, states.Verify(state, model.ProviderGithub))
}

func TestStateService_ProviderMismatch(t *testing.T) {
	states := NewStateService("test-secret")

	state, err := states.Issue(model.ProviderGithub)
	assert.NoError(t, err)

	assert.Equal(t, ErrInvalidState, states.Verify(state, model.ProviderGoogle))
}

func TestStateService_WrongSecret(t *testing.T) {
	state, err := NewStateService("secret-a").Issue(model.ProviderXing)
	assert.NoError(t, err)

	assert.Equal(t, ErrInvalidState, NewStateService("secret-b").Verify(state, model.ProviderXing))
}

func TestStateService_Garbage(t *testing.T) {
	states := NewStateService("test-secret")
	assert.Equal(t, ErrInvalidState, states.Verify("not-a-token", model.ProviderGithub))
	assert.Equal(t, ErrInvalidState, states.Verify("", model.ProviderGithub))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))
	assert.False(t, CheckPassword("", "password123"))
}
