package schema

import (
	"strings"
	"unicode"
)

// GoName converts a schema name to an exported Go identifier:
// "ardrone3" -> "Ardrone3", "drone_settings" -> "DroneSettings",
// "max-tilt" -> "MaxTilt", "FlyingStateChanged" is kept.
func GoName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			upper = true
			continue
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" {
		return "X"
	}
	if unicode.IsDigit(rune(s[0])) {
		return "X" + s
	}
	return s
}

// FileName converts a feature name to the base name of its generated file,
// "ardrone3" -> "ardrone3", "DroneSettings" -> "drone_settings".
func FileName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r == '-' || r == '.' {
			r = '_'
		}
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
