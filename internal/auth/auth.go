// Package auth maps login credentials to experiment roles.
//
// The credentials are fixed lab placeholders and are compared as plain
// strings; nothing here is meant to protect real accounts.
package auth

import (
	"strings"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin"
	JudgePrefix   = "judge"
	JudgePassword = "judge"
)

// ResolveRole returns the role for a username/password pair.
func ResolveRole(username, password string) (domain.Role, error) {
	switch {
	case username == AdminUsername && password == AdminPassword:
		return domain.RoleAdmin, nil
	case strings.HasPrefix(username, JudgePrefix) && password == JudgePassword:
		return domain.RoleJudge, nil
	default:
		return "", domain.ErrInvalidCredentials
	}
}

// RequireRole returns domain.ErrForbidden unless have equals want.
func RequireRole(have, want domain.Role) error {
	if have != want {
		return domain.ErrForbidden
	}
	return nil
}
