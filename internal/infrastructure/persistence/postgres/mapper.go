package postgres

import (
	"encoding/json"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
)

// profileRow mirrors the snake_case profiles table shape. The JSONB columns
// arrive as raw bytes and are decoded defensively: remote rows crossed a
// trust boundary and may have drifted structurally.
type profileRow struct {
	Username      string
	Password      *string
	XP            int
	Progress      []byte
	LastActive    int64
	FollowedUsers []byte
}

// Mapper converts between mirror rows and the canonical domain record.
// Malformed remote fields are defaulted, never trusted: a corrupt progress
// document becomes an empty one and never crashes a login.
type Mapper struct{}

// NewMapper creates a Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// ProfileFromRow maps a database row to a sanitized domain profile.
func (m *Mapper) ProfileFromRow(r profileRow) *profile.Profile {
	p := &profile.Profile{
		Username:   profile.NormalizeUsername(r.Username),
		XP:         r.XP,
		LastActive: r.LastActive,
	}
	if r.Password != nil {
		p.Password = *r.Password
	}

	if len(r.Progress) > 0 {
		var state profile.ProgressState
		if err := json.Unmarshal(r.Progress, &state); err == nil {
			p.Progress = state
		}
	}

	if len(r.FollowedUsers) > 0 {
		var follows []profile.Profile
		if err := json.Unmarshal(r.FollowedUsers, &follows); err == nil {
			p.FollowedUsers = follows
		}
	}

	p.Sanitize()
	return p
}

// RowFromProfile maps a domain profile to the snake_case row shape.
func (m *Mapper) RowFromProfile(p *profile.Profile) (profileRow, error) {
	progress, err := json.Marshal(p.Progress)
	if err != nil {
		return profileRow{}, err
	}

	follows := p.FollowedUsers
	if follows == nil {
		follows = []profile.Profile{}
	}
	followsJSON, err := json.Marshal(follows)
	if err != nil {
		return profileRow{}, err
	}

	password := p.Password
	return profileRow{
		Username:      p.Username.String(),
		Password:      &password,
		XP:            p.XP,
		Progress:      progress,
		LastActive:    p.LastActive,
		FollowedUsers: followsJSON,
	}, nil
}
