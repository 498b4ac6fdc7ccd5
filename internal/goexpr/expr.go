package goexpr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"strings"
)

// ErrEmpty is returned when an empty string is parsed as a type expression.
var ErrEmpty = errors.New("empty type expression")

// Expr is a Go type expression as written in source.
// The zero value is the absent expression.
type Expr struct {
	text string
	node ast.Expr
}

// Parse parses src as a Go type expression.
func Parse(src string) (Expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Expr{}, ErrEmpty
	}

	node, err := parser.ParseExpr(src)
	if err != nil {
		return Expr{}, fmt.Errorf("invalid type expression %q: %w", src, err)
	}

	return FromNode(node), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level values.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return e
}

// FromNode wraps an already parsed expression, e.g. a struct field type.
func FromNode(node ast.Expr) Expr {
	if node == nil {
		return Expr{}
	}

	return Expr{text: types.ExprString(node), node: node}
}

// Node returns the syntax tree of the expression.
func (e Expr) Node() ast.Expr {
	return e.node
}

// String returns the canonical source form.
func (e Expr) String() string {
	return e.text
}

// IsZero reports whether e is the absent expression.
func (e Expr) IsZero() bool {
	return e.node == nil
}

// Equal compares two expressions by their canonical source form.
func (e Expr) Equal(other Expr) bool {
	return e.text == other.text
}

// IsPointer reports whether e is syntactically a pointer type (*T).
// Named types whose underlying type is a pointer are not pointers here.
func (e Expr) IsPointer() bool {
	_, ok := e.node.(*ast.StarExpr)
	return ok
}

// Elem returns the pointee of a pointer expression.
func (e Expr) Elem() (Expr, bool) {
	star, ok := e.node.(*ast.StarExpr)
	if !ok {
		return Expr{}, false
	}

	return FromNode(star.X), true
}

// PointerTo returns *e.
func (e Expr) PointerTo() Expr {
	return FromNode(&ast.StarExpr{X: e.node})
}
