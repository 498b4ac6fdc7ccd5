package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateType reports a type configured twice, in the file or in
	// source and file.
	ErrDuplicateType = errors.New("type configured more than once")
	// ErrInvalid wraps every semantic error in an options file.
	ErrInvalid = errors.New("invalid options file")
)

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML options file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File and checks its structure.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

func (f *File) validate() error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %q", ErrInvalid, f.Version)
	}

	seen := make(map[string]int, len(f.Types))

	for i := range f.Types {
		t := &f.Types[i]
		if t.Name == "" {
			return fmt.Errorf("%w: line %d: type without name", ErrInvalid, t.Line)
		}

		key := t.Package + "." + t.Name
		if line, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s at lines %d and %d", ErrDuplicateType, t.QualifiedName(), line, t.Line)
		}

		seen[key] = t.Line

		// Convert once to surface option errors at load time.
		if _, err := t.ContainerOptions(); err != nil {
			return err
		}

		for name, fo := range t.Fields {
			if _, err := fo.Options(); err != nil {
				return fmt.Errorf("%w: line %d: %s.%s: %w", ErrInvalid, t.Line, t.Name, name, err)
			}
		}
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Lookup returns the entry for a type. An entry with a package path wins
// over a package-less one.
func (f *File) Lookup(pkgPath, name string) (*TypeOptions, bool) {
	if f == nil {
		return nil, false
	}

	var fallback *TypeOptions

	for i := range f.Types {
		t := &f.Types[i]
		if t.Name != name {
			continue
		}

		switch t.Package {
		case pkgPath:
			return t, true
		case "":
			fallback = t
		}
	}

	return fallback, fallback != nil
}

// QualifiedName returns "package.Name" or just the name.
func (t *TypeOptions) QualifiedName() string {
	if t.Package == "" {
		return t.Name
	}

	return t.Package + "." + t.Name
}
