package sheet

import "github.com/rowfit/rowfit/pkg/errors"

// DefaultFontSize is the size in points of the sheet default font when none
// is configured explicitly.
const DefaultFontSize = 11.0

// Font holds the metrics the fitting engine needs: size plus the style flags
// that inflate glyph widths. Fonts are immutable once registered.
type Font struct {
	Size   float64 // size in points
	Bold   bool
	Italic bool
}

// FontRef identifies a registered font by index. Cells reference fonts, they
// never carry a copy.
type FontRef int

// AddFont registers a font and returns its reference.
// A non-positive size is rejected.
func (s *Sheet) AddFont(f Font) (FontRef, error) {
	if f.Size <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidFont, "font size must be positive, got %g", f.Size)
	}
	s.fonts = append(s.fonts, f)
	return FontRef(len(s.fonts) - 1), nil
}

// Font resolves a font reference.
// An unknown reference is a caller-visible error, never silently defaulted.
func (s *Sheet) Font(ref FontRef) (Font, error) {
	if ref < 0 || int(ref) >= len(s.fonts) {
		return Font{}, errors.New(errors.ErrCodeFontNotFound, "font #%d is not registered", ref)
	}
	return s.fonts[int(ref)], nil
}

// DefaultFont returns the sheet's default font.
func (s *Sheet) DefaultFont() Font {
	return s.fonts[int(s.defaultFont)]
}

// SetDefaultFont changes the sheet default font.
func (s *Sheet) SetDefaultFont(ref FontRef) error {
	if _, err := s.Font(ref); err != nil {
		return err
	}
	s.defaultFont = ref
	return nil
}
