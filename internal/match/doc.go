// Package match suggests the closest known name for a misspelled one.
//
// Names are compared after normalization (case folded, separators
// dropped), so "getMut", "get-mut" and "get_mut" are the same name.
package match
