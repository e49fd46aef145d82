package auth

import (
	"time"

	"roomescape/internal/domain/member"
)

type Credentials struct {
	email    member.Email
	password member.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := member.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := member.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() member.Email {
	return c.email
}

func (c Credentials) Password() member.Password {
	return c.password
}

// Principal is the authenticated member behind a request, as read from its token.
type Principal struct {
	MemberID  int64
	Name      string
	Email     string
	Role      member.Role
	TokenID   string
	ExpiresAt time.Time
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}
