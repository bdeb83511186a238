package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Render turns bytes declared as UTF-8 into a display string. The upstream
// service sometimes tags Windows-1251 text as UTF-8, so invalid input gets one
// more decoding pass with that code page before falling back to replacement.
func Render(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(b)
	if err == nil && utf8.Valid(decoded) {
		return string(decoded)
	}

	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

func RenderString(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return Render([]byte(s))
}

func IsLegacy(b []byte) bool {
	return !utf8.Valid(b)
}
