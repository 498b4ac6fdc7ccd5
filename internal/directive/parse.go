package directive

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrSyntax is wrapped by every error returned for malformed options.
var ErrSyntax = errors.New("invalid accessor options")

// SyntaxError reports a problem at a byte offset of the option text.
type SyntaxError struct {
	Offset int
	Msg    string
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrSyntax, e.Offset, e.Msg)
}

// Unwrap makes errors.Is(err, ErrSyntax) hold.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// item is one parsed element of an option list.
type item struct {
	name     string // Empty for a quoted bare value
	value    string
	hasValue bool
	quoted   bool
	args     []item
	hasArgs  bool
	offset   int
}

func (it item) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: it.offset, Msg: fmt.Sprintf(format, args...)}
}

// text returns the bare text of an item used as a value (quoted or not).
func (it item) text() string {
	if it.name == "" {
		return it.value
	}

	return it.name
}

type parser struct {
	src string
	pos int
}

// parseList parses a complete option list.
func parseList(src string) ([]item, error) {
	p := &parser{src: src}

	items, err := p.list()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}

	return items, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// list parses items until the end of input or a closing parenthesis.
func (p *parser) list() ([]item, error) {
	var items []item

	for {
		p.skipSeparators()

		if p.pos >= len(p.src) || p.src[p.pos] == ')' {
			return items, nil
		}

		it, err := p.item()
		if err != nil {
			return nil, err
		}

		items = append(items, it)
	}
}

func (p *parser) item() (item, error) {
	it := item{offset: p.pos}

	if isQuote(p.src[p.pos]) {
		s, err := p.quoted()
		if err != nil {
			return it, err
		}

		it.value, it.hasValue, it.quoted = s, true, true

		return it, nil
	}

	it.name = p.word(true)
	if it.name == "" {
		return it, p.errorf("unexpected %q", p.src[p.pos])
	}

	p.skipSpace()

	if p.pos >= len(p.src) {
		return it, nil
	}

	switch p.src[p.pos] {
	case '=':
		p.pos++
		p.skipSpace()

		if p.pos >= len(p.src) {
			return it, p.errorf("missing value for %q", it.name)
		}

		it.hasValue = true

		if isQuote(p.src[p.pos]) {
			s, err := p.quoted()
			if err != nil {
				return it, err
			}

			it.value, it.quoted = s, true

			return it, nil
		}

		it.value = p.word(false)
		if it.value == "" {
			return it, p.errorf("missing value for %q", it.name)
		}

	case '(':
		p.pos++

		args, err := p.list()
		if err != nil {
			return it, err
		}

		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return it, p.errorf("missing ) for %q", it.name)
		}

		p.pos++
		it.args, it.hasArgs = args, true
	}

	return it, nil
}

// word scans an unquoted token. Brackets and braces nest; at depth zero the
// token ends at a separator or a closing parenthesis, and keys also end at
// '=' and '('.
func (p *parser) word(key bool) string {
	start := p.pos
	depth := 0

	for p.pos < len(p.src) {
		c := p.src[p.pos]

		switch {
		case c == '[' || c == '{' || (!key && c == '('):
			depth++
		case (c == ']' || c == '}' || c == ')') && depth > 0:
			depth--
		case depth == 0 && (c == ',' || c == ')' || isSpace(c)):
			return p.src[start:p.pos]
		case depth == 0 && key && (c == '=' || c == '('):
			return p.src[start:p.pos]
		}

		p.pos++
	}

	return p.src[start:p.pos]
}

func (p *parser) quoted() (string, error) {
	quote := p.src[p.pos]
	start := p.pos + 1

	for i := start; i < len(p.src); i++ {
		if p.src[i] == quote {
			p.pos = i + 1
			return p.src[start:i], nil
		}
	}

	return "", p.errorf("unterminated quoted value")
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.src) && (isSpace(p.src[p.pos]) || p.src[p.pos] == ',') {
		p.pos++
	}
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"' || c == '`'
}

func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}
