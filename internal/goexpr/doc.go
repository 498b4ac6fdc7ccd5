// Package goexpr holds Go type expressions as opaque, comparable values.
//
// Option layers, field descriptors and synthesized fragments only copy,
// compare and emit type expressions. The one structural question the
// generator asks is whether an expression is a pointer and, if so, what its
// pointee is.
package goexpr
