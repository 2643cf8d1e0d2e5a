// Package fonts provides the label font shared by the PNG and SVG sinks.
//
// The Go Regular font ships inside golang.org/x/image, so rasterised
// labels look the same on every machine without a system font lookup.
// SVG output names the same family first and falls back to system fonts.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name of the label font.
const FontFamily = "Go"

// FallbackFontFamily is the CSS font stack used in SVG output.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

var (
	labelOnce sync.Once
	label     *opentype.Font
	labelErr  error
)

// Label returns the parsed label font. The font is parsed once.
func Label() (*opentype.Font, error) {
	labelOnce.Do(func() {
		label, labelErr = opentype.Parse(goregular.TTF)
	})
	return label, labelErr
}

// LabelTTF returns the raw TrueType data of the label font.
func LabelTTF() []byte {
	return goregular.TTF
}

// NewFace returns a label face of the given point size at 72 DPI, so one
// point equals one device unit. Callers must Close the face.
func NewFace(size float64) (font.Face, error) {
	f, err := Label()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
