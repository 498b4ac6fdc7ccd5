package mapping

// File is the root of an options file.
type File struct {
	// Version of the schema, "1" when omitted.
	Version string        `yaml:"version"`
	Types   []TypeOptions `yaml:"types"`
}

// TypeOptions configures one struct type.
type TypeOptions struct {
	// Name of the struct type.
	Name string `yaml:"name"`
	// Package is the import path; empty matches the name in any package.
	Package string `yaml:"package,omitempty"`

	Get    bool `yaml:"get,omitempty"`
	GetMut bool `yaml:"get_mut,omitempty"`
	Set    bool `yaml:"set,omitempty"`

	Defaults DefaultsOptions          `yaml:"defaults,omitempty"`
	Bounds   []string                 `yaml:"bounds,omitempty"`
	Fields   map[string]*FieldOptions `yaml:"fields,omitempty"`

	// Line of the entry in the options file.
	Line int `yaml:"-"`
}

// DefaultsOptions mirrors defaults(...) of the container directive.
type DefaultsOptions struct {
	All    *Variation `yaml:"all,omitempty"`
	Get    *Variation `yaml:"get,omitempty"`
	GetMut *Variation `yaml:"get_mut,omitempty"`
	Set    *Variation `yaml:"set,omitempty"`
}

// FieldOptions mirrors the access struct tag.
type FieldOptions struct {
	Skip   bool       `yaml:"skip,omitempty"`
	All    *Variation `yaml:"all,omitempty"`
	Get    *Variation `yaml:"get,omitempty"`
	GetMut *Variation `yaml:"get_mut,omitempty"`
	Set    *Variation `yaml:"set,omitempty"`
}

// Variation is one option list. Pointer members distinguish "not given"
// from an explicit false.
type Variation struct {
	Owned    *bool    `yaml:"owned,omitempty"`
	ConstFn  *bool    `yaml:"const_fn,omitempty"`
	Skip     *bool    `yaml:"skip,omitempty"`
	Copy     *bool    `yaml:"cp,omitempty"`
	PtrDeref *string  `yaml:"ptr_deref,omitempty"`
	Type     string   `yaml:"type,omitempty"`
	Prefix   Affix    `yaml:"prefix,omitempty"`
	Suffix   Affix    `yaml:"suffix,omitempty"`
	Vis      string   `yaml:"vis,omitempty"`
	Bounds   []string `yaml:"bounds,omitempty"`
}

// Affix is a prefix or suffix that keeps "absent", "cleared" and "value"
// apart.
type Affix struct {
	Present bool
	Value   string
}

// IsZero lets omitempty drop an absent affix.
func (a Affix) IsZero() bool {
	return !a.Present
}
