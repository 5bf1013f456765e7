package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/linkedin"

	"jobboard/internal/model"
)

// Xing has no endpoint package in golang.org/x/oauth2.
var xingEndpoint = oauth2.Endpoint{
	AuthURL:  "https://api.xing.com/auth/oauth2/authorize",
	TokenURL: "https://api.xing.com/auth/oauth2/token",
}

const maxProfileBody = 1 << 20

// ProviderCredentials holds the client id and secret issued by one
// external identity provider.
type ProviderCredentials struct {
	ClientID     string
	ClientSecret string
}

// Provider performs the code-for-token exchange with one external
// identity provider and extracts the stable subject id from its
// profile endpoint.
type Provider struct {
	Name       model.Provider
	config     *oauth2.Config
	profileURL string
	subjectID  func([]byte) (string, error)
}

// NewProviders builds the four supported providers. Credentials are
// passed in explicitly; nothing is read from the environment here.
func NewProviders(baseURL string, creds map[model.Provider]ProviderCredentials) map[model.Provider]*Provider {
	build := func(name model.Provider, endpoint oauth2.Endpoint, scopes []string, profileURL string, subjectID func([]byte) (string, error)) *Provider {
		return &Provider{
			Name: name,
			config: &oauth2.Config{
				ClientID:     creds[name].ClientID,
				ClientSecret: creds[name].ClientSecret,
				Endpoint:     endpoint,
				Scopes:       scopes,
				RedirectURL:  fmt.Sprintf("%s/auth/%s/callback", baseURL, name),
			},
			profileURL: profileURL,
			subjectID:  subjectID,
		}
	}

	return map[model.Provider]*Provider{
		model.ProviderGithub: build(model.ProviderGithub, github.Endpoint,
			nil, "https://api.github.com/user", githubSubject),
		model.ProviderGoogle: build(model.ProviderGoogle, google.Endpoint,
			[]string{"openid"}, "https://openidconnect.googleapis.com/v1/userinfo", openIDSubject),
		model.ProviderLinkedin: build(model.ProviderLinkedin, linkedin.Endpoint,
			[]string{"openid"}, "https://api.linkedin.com/v2/userinfo", openIDSubject),
		model.ProviderXing: build(model.ProviderXing, xingEndpoint,
			nil, "https://api.xing.com/v1/users/me", xingSubject),
	}
}

// AuthCodeURL returns the provider's authorize URL carrying state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// FetchSubject exchanges the authorization code and returns the
// provider's stable subject id for the authenticated user.
func (p *Provider) FetchSubject(ctx context.Context, code string) (string, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}

	resp, err := p.config.Client(ctx, token).Get(p.profileURL)
	if err != nil {
		return "", fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch profile: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBody))
	if err != nil {
		return "", fmt.Errorf("read profile: %w", err)
	}

	subject, err := p.subjectID(body)
	if err != nil {
		return "", fmt.Errorf("parse profile: %w", err)
	}
	return subject, nil
}

func githubSubject(body []byte) (string, error) {
	var profile struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return "", err
	}
	if profile.ID == "" {
		return "", fmt.Errorf("profile has no id")
	}
	return profile.ID.String(), nil
}

func openIDSubject(body []byte) (string, error) {
	var profile struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return "", err
	}
	if profile.Sub == "" {
		return "", fmt.Errorf("profile has no sub")
	}
	return profile.Sub, nil
}

func xingSubject(body []byte) (string, error) {
	var profile struct {
		Users []struct {
			ID string `json:"id"`
		} `json:"users"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return "", err
	}
	if len(profile.Users) == 0 || profile.Users[0].ID == "" {
		return "", fmt.Errorf("profile has no user id")
	}
	return profile.Users[0].ID, nil
}
