// Package font contains the fixed width 5x8 bitmap font used for text.
package font

const (
	// Width of a glyph in columns.
	Width = 5

	// Height of a glyph in rows, one page.
	Height = 8

	// Advance is the horizontal distance between glyph origins, including the spacing column.
	Advance = Width + 1
)

// Glyph returns the glyph for character code c. Codes outside the table render blank.
func Glyph(c byte) [Width]byte {
	if int(c) >= len(Glyphs) {
		return [Width]byte{}
	}
	return Glyphs[c]
}
