// Package analyze provides package loading and record extraction.
//
// It uses golang.org/x/tools/go/packages to parse the requested packages
// and collects every struct marked with an //accessor:gen directive or
// named in the options file, together with its ordered fields, their
// docs and their access options.
//
// Key types:
//   - TypeID: package import path + type name
//   - Record: an annotated struct with container options and fields
//   - Field: a named field with its declared type, docs and options
//   - PackageInfo: the records found in one package
package analyze
