package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

const (
	fontHeightRatio = 0.4
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 18.0
)

// FontSize returns a label size that fits the key.
func FontSize(k Key) float64 {
	return fontSizeFor(k.W, k.H, utf8.RuneCountInString(k.Label))
}

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// TruncateLabel shortens the label with ".." when it cannot fit the key
// at the minimum font size.
func TruncateLabel(k Key) string {
	charWidth := FontSize(k) * fontCharWidth
	maxChars := max(3, int(k.W*fontWidthRatio/charWidth))

	if utf8.RuneCountInString(k.Label) <= maxChars {
		return k.Label
	}
	r := []rune(k.Label)
	return string(r[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
