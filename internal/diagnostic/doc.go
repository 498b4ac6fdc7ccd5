// Package diagnostic provides structured errors, warnings and notes
// produced while loading annotated types and generating accessors.
//
// Key capabilities:
//   - Option syntax errors with file:line:column positions
//   - Warnings for options that have no Go rendering (const_fn)
//   - Warnings for pointer dereference options on non-pointer fields
//   - Notes for fields that are not generated (embedded fields)
package diagnostic
