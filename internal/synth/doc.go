// Package synth turns resolved accessor options into method fragments.
//
// A MethodFragment is a language-level description of one accessor:
// receiver mode, parameters, return shape, body and decorations. It records
// the shared vs mutable distinction of borrows even though Go renders both
// as pointers, so the resolved intent stays inspectable and testable.
//
// Synthesis never fails. Combinations the Go compiler rejects (an explicit
// type that the field is not assignable to, dereferencing a non-pointer)
// surface as compile errors in the generated file.
package synth
