package theme

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyThemeName   = errors.New("theme name cannot be empty")
	ErrThemeNameTooLong = errors.New("theme name is too long (max 255 characters)")
	ErrEmptyDescription = errors.New("theme description cannot be empty")
	ErrEmptyThumbnail   = errors.New("theme thumbnail cannot be empty")
	ErrThumbnailTooLong = errors.New("theme thumbnail is too long (max 512 characters)")
)

const (
	MaxThemeNameLength = 255
	MaxThumbnailLength = 512
)

type Theme struct {
	id          int64
	name        string
	description string
	thumbnail   string
}

// Ref points at a theme without carrying its metadata.
type Ref struct {
	ID int64
}

func NewTheme(name, description, thumbnail string) (*Theme, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	thumbnail = strings.TrimSpace(thumbnail)

	if err := validateName(name); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if err := validateThumbnail(thumbnail); err != nil {
		return nil, err
	}

	return &Theme{
		name:        name,
		description: description,
		thumbnail:   thumbnail,
	}, nil
}

func ReconstructTheme(id int64, name, description, thumbnail string) *Theme {
	return &Theme{
		id:          id,
		name:        name,
		description: description,
		thumbnail:   thumbnail,
	}
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyThemeName
	}
	if utf8.RuneCountInString(name) > MaxThemeNameLength {
		return ErrThemeNameTooLong
	}
	return nil
}

func validateThumbnail(thumbnail string) error {
	if thumbnail == "" {
		return ErrEmptyThumbnail
	}
	if len(thumbnail) > MaxThumbnailLength {
		return ErrThumbnailTooLong
	}
	return nil
}

func (t *Theme) Ref() Ref { return Ref{ID: t.id} }

func (t *Theme) ID() int64           { return t.id }
func (t *Theme) Name() string        { return t.name }
func (t *Theme) Description() string { return t.description }
func (t *Theme) Thumbnail() string   { return t.thumbnail }
