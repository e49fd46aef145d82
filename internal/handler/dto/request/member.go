package request

import (
	"roomescape/internal/domain/auth"
	"roomescape/internal/domain/member"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=72"`
	Name     string `json:"name" binding:"required,max=50"`
}

type SignupFields struct {
	Email    member.Email
	Password member.Password
	Name     member.Name
}

func (r SignupRequest) ToDomain() (SignupFields, error) {
	email, err := member.NewEmail(r.Email)
	if err != nil {
		return SignupFields{}, err
	}
	password, err := member.NewPassword(r.Password)
	if err != nil {
		return SignupFields{}, err
	}
	name, err := member.NewName(r.Name)
	if err != nil {
		return SignupFields{}, err
	}
	return SignupFields{Email: email, Password: password, Name: name}, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}
