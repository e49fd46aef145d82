package request

import "roomescape/internal/domain/theme"

type CreateThemeRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Thumbnail   string `json:"thumbnail" binding:"required,max=512"`
}

func (r CreateThemeRequest) ToDomain() (*theme.Theme, error) {
	return theme.NewTheme(r.Name, r.Description, r.Thumbnail)
}
