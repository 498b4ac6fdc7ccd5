// Package mapping provides the YAML options file: accessor options for
// types that cannot carry directives, such as types owned by other teams or
// generated by other tools.
//
// # Schema Overview
//
//	version: "1"
//	types:
//	  - name: Point
//	    package: example.com/geo   # optional, matches every loaded package
//	    get: true
//	    set: true
//	    defaults:
//	      all: {cp: true}
//	      get_mut: {vis: private}
//	    bounds: ["Point: fmt.Stringer"]
//	    fields:
//	      X: {get: {prefix: ""}}
//	      Y: {set: false}
//	      cache: {skip: true}
//
// Each variation (a defaults group or a field kind) accepts owned,
// const_fn, skip, cp, ptr_deref, type, prefix, suffix, vis and bounds.
// skip and type are rejected in defaults. A field kind may also be a plain
// boolean: true requests the accessor with inherited options, false skips
// it. An empty prefix or suffix clears any inherited value.
//
// A type configured both in source and in the options file is an error
// (ErrDuplicateType).
package mapping
