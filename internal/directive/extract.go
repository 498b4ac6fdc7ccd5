package directive

import (
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

// Comment markers and the struct tag key carrying accessor options.
const (
	ContainerMarker = "//accessor:gen"
	FieldMarker     = "//accessor:field"
	TagKey          = "access"
)

// Line is the option text following a marker in one comment line.
type Line struct {
	Text string
	Pos  token.Pos // Position of the first byte of Text
}

// Lines returns the directive lines of cg introduced by marker. found is
// true when at least one line carries the marker, even with no options.
func Lines(cg *ast.CommentGroup, marker string) (lines []Line, found bool) {
	if cg == nil {
		return nil, false
	}

	for _, c := range cg.List {
		rest, ok := strings.CutPrefix(c.Text, marker)
		if !ok {
			continue
		}

		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			// A longer marker such as //accessor:generated.
			continue
		}

		found = true
		trimmed := strings.TrimLeft(rest, " \t")
		offset := len(marker) + len(rest) - len(trimmed)

		if trimmed = strings.TrimSpace(trimmed); trimmed != "" {
			lines = append(lines, Line{Text: trimmed, Pos: c.Slash + token.Pos(offset)})
		}
	}

	return lines, found
}

// Tag returns the accessor options of a raw struct tag literal, as found in
// ast.Field.Tag.Value (including its quotes).
func Tag(lit *ast.BasicLit) (string, bool) {
	if lit == nil {
		return "", false
	}

	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	return reflect.StructTag(raw).Lookup(TagKey)
}
