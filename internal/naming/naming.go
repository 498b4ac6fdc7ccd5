// Package naming composes accessor method names.
package naming

import (
	"strings"

	"github.com/go-openapi/inflect"

	"accessor-generator/internal/options"
)

// Separator joins prefix, field name and suffix.
const Separator = "_"

// Compose returns the method name for a field given its resolved prefix and
// suffix. An empty prefix or suffix is absent.
func Compose(field, prefix, suffix string) string {
	switch {
	case prefix != "" && suffix != "":
		return prefix + Separator + field + Separator + suffix
	case prefix != "":
		return prefix + Separator + field
	case suffix != "":
		return field + Separator + suffix
	default:
		return field
	}
}

// MethodIdent turns a composed name into a Go method identifier: exported
// camel case for public methods, unexported camel case otherwise.
//
//	set_x       -> SetX / setX
//	userID_mut  -> UserIDMut / userIDMut
func MethodIdent(composed string, vis options.Visibility) string {
	if composed == "" {
		return ""
	}

	ident := inflect.Camelize(composed)
	if vis == options.Public {
		return ident
	}

	return lowerFirstWord(ident)
}

// lowerFirstWord lowercases the leading word of a camel-case identifier,
// treating a run of capitals as one word ("URLPath" -> "urlPath").
func lowerFirstWord(ident string) string {
	runes := []rune(ident)

	end := 1
	for end < len(runes) && isUpper(runes[end]) {
		end++
	}

	// In "URLPath" the P starts the next word.
	if end > 1 && end < len(runes) {
		end--
	}

	return strings.ToLower(string(runes[:end])) + string(runes[end:])
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
