package gen

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// HeaderComment marks generated files; loaders skip files carrying it.
const HeaderComment = "Code generated by accessor-generator. DO NOT EDIT."

// DefaultOutput is the generated file name in each package directory.
const DefaultOutput = "accessors_gen.go"

// Config holds configuration for code generation.
type Config struct {
	// Output is the generated file name, relative to each package directory.
	Output string
	// PointerDeref allows dereferencing pointer fields.
	PointerDeref bool
	// Workers bounds the packages generated concurrently.
	Workers int
	// DryRun renders files without writing them.
	DryRun bool
	// DebugUnformatted writes a sidecar file when formatting fails.
	DebugUnformatted bool
	Logger           *zap.Logger
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Output:           DefaultOutput,
		PointerDeref:     true,
		Workers:          4,
		DebugUnformatted: true,
	}
}

// outputName returns the file name for a package, and for the records
// declared in its _test.go files when test is set.
func (c Config) outputName(test bool) string {
	name := c.Output
	if name == "" {
		name = DefaultOutput
	}

	name = filepath.Base(name)
	if test {
		name = strings.TrimSuffix(name, ".go") + "_test.go"
	}

	return name
}

// OutputNames returns the file names generation writes in a package
// directory: the regular one and the one for _test.go records.
func (c Config) OutputNames() []string {
	return []string{c.outputName(false), c.outputName(true)}
}
