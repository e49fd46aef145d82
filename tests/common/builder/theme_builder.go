//go:build unit || e2e

package builder

import (
	"roomescape/internal/domain/theme"
	reqdto "roomescape/internal/handler/dto/request"
	"roomescape/internal/usecase/queries"
)

type ThemeBuilder struct {
	ID          int64
	Name        string
	Description string
	Thumbnail   string
}

func NewThemeBuilder() *ThemeBuilder {
	return &ThemeBuilder{
		ID:          1,
		Name:        "Locked Lab",
		Description: "Escape the lab before the timer runs out",
		Thumbnail:   "https://example.com/locked-lab.png",
	}
}

func (t *ThemeBuilder) With(mutate func(*ThemeBuilder)) *ThemeBuilder {
	mutate(t)
	return t
}

func (t *ThemeBuilder) BuildDomain() *theme.Theme {
	return theme.ReconstructTheme(t.ID, t.Name, t.Description, t.Thumbnail)
}

func (t *ThemeBuilder) BuildCreateRequestDTO() reqdto.CreateThemeRequest {
	return reqdto.CreateThemeRequest{
		Name:        t.Name,
		Description: t.Description,
		Thumbnail:   t.Thumbnail,
	}
}

func (t *ThemeBuilder) BuildView() *queries.ThemeView {
	return &queries.ThemeView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Thumbnail:   t.Thumbnail,
	}
}

func (t *ThemeBuilder) WithID(id int64) *ThemeBuilder {
	t.ID = id
	return t
}

func (t *ThemeBuilder) WithName(name string) *ThemeBuilder {
	t.Name = name
	return t
}
