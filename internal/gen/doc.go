// Package gen assembles and renders accessor methods.
//
// For every record the assembler walks fields in declaration order and
// accessor kinds in Get, GetMut, Set order, resolves the options of each
// (field, kind) pair and synthesizes a method fragment. The renderer turns
// fragments into Go source with github.com/dave/jennifer; files are
// formatted with golang.org/x/tools/imports and written one per package.
//
// Rendering rules:
//   - By-reference receivers are pointer receivers, owned ones value receivers
//   - Shared and mutable borrows both render as pointers
//   - A dereferenced pointer field is returned as is when borrowed and
//     dereferenced when returned by value
//   - Bounds render as compile-time assertions: per method in the body,
//     per record in a blank generic function
package gen
