//go:build unit

package theme_test

import (
	"strings"
	"testing"

	"roomescape/internal/domain/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTheme(t *testing.T) {
	tests := []struct {
		name        string
		themeName   string
		description string
		thumbnail   string
		errIs       error
	}{
		{name: "valid", themeName: "Lost Temple", description: "Find the exit", thumbnail: "https://example.com/t.png"},
		{name: "empty name", themeName: "  ", description: "d", thumbnail: "t", errIs: theme.ErrEmptyThemeName},
		{name: "name too long", themeName: strings.Repeat("a", 256), description: "d", thumbnail: "t", errIs: theme.ErrThemeNameTooLong},
		{name: "empty description", themeName: "n", description: "", thumbnail: "t", errIs: theme.ErrEmptyDescription},
		{name: "empty thumbnail", themeName: "n", description: "d", thumbnail: "", errIs: theme.ErrEmptyThumbnail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := theme.NewTheme(tt.themeName, tt.description, tt.thumbnail)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.themeName, actual.Name())
			assert.Equal(t, tt.description, actual.Description())
			assert.Equal(t, tt.thumbnail, actual.Thumbnail())
		})
	}
}
