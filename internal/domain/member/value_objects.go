package member

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidName     = errors.New("name must be 1 to 50 characters")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPassword = errors.New("password must be 4 to 72 bytes")
)

const (
	MaxNameLength     = 50
	MinPasswordLength = 4
	// bcrypt ignores everything past 72 bytes.
	MaxPasswordLength = 72
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Password is a plaintext credential as submitted by the member. It never leaves the auth workflow.
type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength || len(s) > MaxPasswordLength {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
