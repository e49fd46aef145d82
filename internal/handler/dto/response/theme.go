package response

import "roomescape/internal/usecase/queries"

type ThemeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

func FromThemeView(v *queries.ThemeView) (ThemeResponse, error) {
	return copyView[ThemeResponse](v)
}

func FromThemeViews(vs []*queries.ThemeView) ([]ThemeResponse, error) {
	return mapAll(vs, FromThemeView)
}
