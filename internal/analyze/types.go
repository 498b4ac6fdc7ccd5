package analyze

import (
	"go/token"

	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/options"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/geo"
	Name    string // e.g., "Point"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Record is an annotated struct declaration: the unit accessors are
// generated for.
type Record struct {
	ID         TypeID
	PkgName    string                   // Package name used in generated files
	File       string                   // Declaring file
	Pos        token.Position           // Position of the type name
	TypeParams []TypeParam              // Generic type parameters, in order
	Options    options.ContainerOptions // Container-level options
	Fields     []Field                  // Named fields, in declaration order
	Imports    map[string]string        // Import name -> path of the declaring file
}

// Name returns the struct name.
func (r *Record) Name() string {
	return r.ID.Name
}

// IsGeneric reports whether the record has type parameters.
func (r *Record) IsGeneric() bool {
	return len(r.TypeParams) > 0
}

// TypeParam is one type parameter of a generic record.
type TypeParam struct {
	Name       string
	Constraint goexpr.Expr
}

// Field describes one named struct field.
type Field struct {
	Name     string               // Go field name
	Exported bool                 // Whether the field is exported
	Type     goexpr.Expr          // Declared type
	Docs     []string             // Doc comment lines, directives removed
	Options  options.FieldOptions // Field-level options
	Pos      token.Position
	Index    int // Field index in the struct
}

// IsPointer reports whether the declared type is a pointer.
func (f *Field) IsPointer() bool {
	return f.Type.IsPointer()
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string    // Import path
	Name    string    // Package name
	Dir     string    // Directory of the package sources
	Records []*Record // Annotated records, in source order
}
