package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies what a user may do with vacancies.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

// Provider identifies an external identity provider.
type Provider string

const (
	ProviderGithub   Provider = "github"
	ProviderGoogle   Provider = "google"
	ProviderLinkedin Provider = "linkedin"
	ProviderXing     Provider = "xing"
)

// Providers lists every supported external identity provider.
var Providers = []Provider{ProviderGithub, ProviderGoogle, ProviderLinkedin, ProviderXing}

// ExternalIDColumn returns the users column holding the provider's
// subject id, or "" for an unknown provider.
func (p Provider) ExternalIDColumn() string {
	switch p {
	case ProviderGithub:
		return "github_id"
	case ProviderGoogle:
		return "google_id"
	case ProviderLinkedin:
		return "linkedin_id"
	case ProviderXing:
		return "xing_id"
	}
	return ""
}

// User represents a person with local credentials, a linked external
// identity, or both. Users created from an external login carry no
// username and no password hash.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     *string   `json:"username,omitempty" gorm:"uniqueIndex;size:255"`
	PasswordHash *string   `json:"-" gorm:"size:255"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;default:'candidate';index"`

	GithubID   *string `json:"-" gorm:"uniqueIndex;size:255"`
	GoogleID   *string `json:"-" gorm:"uniqueIndex;size:255"`
	LinkedinID *string `json:"-" gorm:"uniqueIndex;size:255"`
	XingID     *string `json:"-" gorm:"uniqueIndex;size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is what templates show for a user: the username when one
// exists, otherwise the id.
func (u *User) DisplayName() string {
	if u.Username != nil {
		return *u.Username
	}
	return u.ID.String()
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// NewExternalUser builds the user created on first login through an
// external provider: only that provider's subject id is populated and
// the role defaults to candidate.
func NewExternalUser(provider Provider, subjectID string) (*User, error) {
	u := &User{ID: uuid.New(), Role: RoleCandidate}
	switch provider {
	case ProviderGithub:
		u.GithubID = &subjectID
	case ProviderGoogle:
		u.GoogleID = &subjectID
	case ProviderLinkedin:
		u.LinkedinID = &subjectID
	case ProviderXing:
		u.XingID = &subjectID
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
	return u, nil
}
