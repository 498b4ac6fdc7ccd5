package gen

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/diagnostic"
)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Path is where the file is written.
	Path string
	// Package is the import path of the package the file belongs to.
	Package string
	// Records and Methods count what the file contains.
	Records int
	Methods int
	// Content is the formatted Go source code.
	Content []byte
}

// Report is the outcome of a generation run.
type Report struct {
	Files       []GeneratedFile
	Diagnostics diagnostic.Diagnostics
}

// Methods returns the number of generated methods.
func (r *Report) Methods() int {
	n := 0
	for _, f := range r.Files {
		n += f.Methods
	}

	return n
}

// Generator renders and writes accessor files.
type Generator struct {
	config Config
	log    *zap.Logger
	asm    *Assembler
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if config.Workers <= 0 {
		config.Workers = 1
	}

	return &Generator{
		config: config,
		log:    log,
		asm:    NewAssembler(config.PointerDeref),
	}
}

// Generate renders one file per package (two when records are declared in
// _test.go files) and writes them unless the run is a dry run. Packages
// are rendered concurrently; the report keeps the order of pkgs. Nothing
// is written when any package reports an error.
func (g *Generator) Generate(ctx context.Context, pkgs []*analyze.PackageInfo) (*Report, error) {
	files := make([][]GeneratedFile, len(pkgs))
	diags := make([]diagnostic.Diagnostics, len(pkgs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)

	for i, pkg := range pkgs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var err error

			files[i], err = g.GeneratePackage(pkg, &diags[i])
			if err != nil {
				return fmt.Errorf("generating %s: %w", pkg.Path, err)
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for i := range pkgs {
		report.Files = append(report.Files, files[i]...)
		report.Diagnostics.Merge(diags[i])
	}

	if report.Diagnostics.HasErrors() {
		return report, fmt.Errorf("generation failed: %w", report.Diagnostics.Error())
	}

	if g.config.DryRun {
		return report, nil
	}

	written, err := WriteFiles(report.Files)
	if err != nil {
		return report, err
	}

	g.log.Info("accessors generated",
		zap.Int("files", len(report.Files)),
		zap.Int("written", written),
		zap.Int("methods", report.Methods()))

	return report, nil
}

// GeneratePackage renders the files of one package without writing them.
func (g *Generator) GeneratePackage(pkg *analyze.PackageInfo, diags *diagnostic.Diagnostics) ([]GeneratedFile, error) {
	var regular, tests []*analyze.Record

	for _, rec := range pkg.Records {
		if strings.HasSuffix(rec.File, "_test.go") {
			tests = append(tests, rec)
		} else {
			regular = append(regular, rec)
		}
	}

	var out []GeneratedFile

	for _, group := range []struct {
		records []*analyze.Record
		test    bool
	}{{regular, false}, {tests, true}} {
		if len(group.records) == 0 {
			continue
		}

		file, err := g.renderFile(pkg, group.records, group.test, diags)
		if err != nil {
			return nil, err
		}

		out = append(out, file)
	}

	return out, nil
}

func (g *Generator) renderFile(
	pkg *analyze.PackageInfo,
	records []*analyze.Record,
	test bool,
	diags *diagnostic.Diagnostics,
) (GeneratedFile, error) {
	name := g.config.outputName(test)
	out := GeneratedFile{
		Path:    filepath.Join(pkg.Dir, name),
		Package: pkg.Path,
		Records: len(records),
	}

	f := NewFile(pkg.Path, pkg.Name)

	for _, rec := range records {
		rm := g.asm.Assemble(rec, diags)
		RenderRecord(f, rm)
		out.Methods += len(rm.Methods)

		g.log.Debug("record rendered",
			zap.Stringer("type", rec.ID),
			zap.Int("methods", len(rm.Methods)))
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return out, fmt.Errorf("rendering %s: %w", name, err)
	}

	formatted, err := imports.Process(out.Path, buf.Bytes(), nil)
	if err != nil {
		if g.config.DebugUnformatted {
			if derr := writeDebugUnformatted(pkg.Dir, name, buf.Bytes()); derr != nil {
				g.log.Warn("writing unformatted output failed", zap.Error(derr))
			}
		}

		return out, fmt.Errorf("formatting %s: %w", name, err)
	}

	out.Content = formatted

	return out, nil
}
