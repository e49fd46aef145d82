package response

import "roomescape/internal/usecase/queries"

type MemberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginCheckResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	AccessToken string             `json:"accessToken"`
	Member      LoginCheckResponse `json:"member"`
}

func FromMemberView(v *queries.MemberView) (MemberResponse, error) {
	return copyView[MemberResponse](v)
}

func FromMemberViews(vs []*queries.MemberView) ([]MemberResponse, error) {
	return mapAll(vs, FromMemberView)
}

func FromMemberViewWithRole(v *queries.MemberView) (LoginCheckResponse, error) {
	return copyView[LoginCheckResponse](v)
}
