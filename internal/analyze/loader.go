package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/directive"
	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/mapping"
	"accessor-generator/internal/match"
	"accessor-generator/internal/options"
)

// LoadMode specifies what information to load from packages.
// Types are loaded for import names only; type errors do not stop loading
// because stale generated code commonly fails to type-check.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Config controls package loading.
type Config struct {
	Dir       string        // Working directory for patterns, "" for the process cwd
	BuildTags []string      // Extra build tags
	Tests     bool          // Also load _test.go files of each package
	Options   *mapping.File // Optional options file
	Logger    *zap.Logger
}

// Result is the outcome of a load.
type Result struct {
	Packages    []*PackageInfo // Packages with at least one record, in load order
	Diagnostics diagnostic.Diagnostics
}

// Records returns every record of every package.
func (r *Result) Records() []*Record {
	var out []*Record
	for _, p := range r.Packages {
		out = append(out, p.Records...)
	}

	return out
}

// Analyzer loads Go packages and extracts annotated records.
type Analyzer struct {
	cfg  Config
	log  *zap.Logger
	used map[*mapping.TypeOptions]bool
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{
		cfg:  cfg,
		log:  log,
		used: make(map[*mapping.TypeOptions]bool),
	}
}

// LoadPackages loads the packages matching patterns and extracts their
// records. Option syntax problems are reported as error diagnostics in the
// result; the returned error is for loading failures only.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.cfg.Dir,
		Tests:   a.cfg.Tests,
	}

	if len(a.cfg.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.cfg.BuildTags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors; type errors are tolerated.
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				a.log.Debug("type error ignored", zap.String("package", pkg.PkgPath), zap.String("error", e.Msg))
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	res := &Result{}

	for _, pkg := range selectVariants(pkgs) {
		info := a.processPackage(pkg, &res.Diagnostics)
		a.log.Debug("package processed",
			zap.String("package", pkg.PkgPath),
			zap.Int("records", len(info.Records)))

		if len(info.Records) > 0 {
			res.Packages = append(res.Packages, info)
		}
	}

	a.reportUnusedOptions(&res.Diagnostics)

	return res, nil
}

// selectVariants keeps one variant per package path: the test variant when
// tests are loaded, since it holds every file of the plain one. External
// test packages and test mains are dropped.
func selectVariants(pkgs []*packages.Package) []*packages.Package {
	index := make(map[string]int, len(pkgs))

	var out []*packages.Package

	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.Name, "_test") || strings.HasSuffix(pkg.PkgPath, ".test") {
			continue
		}

		i, ok := index[pkg.PkgPath]
		if !ok {
			index[pkg.PkgPath] = len(out)
			out = append(out, pkg)

			continue
		}

		if len(pkg.Syntax) > len(out[i].Syntax) {
			out[i] = pkg
		}
	}

	return out
}

// processPackage extracts records from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package, diags *diagnostic.Diagnostics) *PackageInfo {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}

		imports := fileImports(pkg, file)

		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				rec := a.processType(pkg, ts, doc, diags)
				if rec == nil {
					continue
				}

				rec.Imports = imports
				info.Records = append(info.Records, rec)
			}
		}
	}

	if len(info.Records) > 0 {
		info.Dir = filepath.Dir(info.Records[0].File)
	}

	return info
}

// processType builds the record of one type declaration, or returns nil
// when the type is not annotated.
func (a *Analyzer) processType(
	pkg *packages.Package,
	ts *ast.TypeSpec,
	doc *ast.CommentGroup,
	diags *diagnostic.Diagnostics,
) *Record {
	lines, annotated := directive.Lines(doc, directive.ContainerMarker)
	entry, inFile := a.cfg.Options.Lookup(pkg.PkgPath, ts.Name.Name)

	if !annotated && !inFile {
		return nil
	}

	pos := pkg.Fset.Position(ts.Name.Pos())
	id := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}

	if inFile {
		a.used[entry] = true
	}

	if annotated && inFile {
		diags.AddError(diagnostic.CodeDuplicateType,
			fmt.Sprintf("configured in source and in the options file (line %d): %v", entry.Line, mapping.ErrDuplicateType),
			pos, id.Name, "")

		return nil
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		diags.AddInfo(diagnostic.CodeNotStruct, "accessors are only generated for struct types", pos, id.Name, "")
		return nil
	}

	rec := &Record{
		ID:         id,
		PkgName:    pkg.Name,
		File:       pos.Filename,
		Pos:        pos,
		TypeParams: typeParams(ts),
	}

	if inFile {
		opts, err := entry.ContainerOptions()
		if err != nil {
			diags.AddError(diagnostic.CodeSyntax, err.Error(), pos, id.Name, "")
		}

		rec.Options = opts
	}

	for _, line := range lines {
		if err := directive.ParseContainer(line.Text, &rec.Options); err != nil {
			diags.AddError(diagnostic.CodeSyntax, err.Error(), linePos(pkg.Fset, line, err), id.Name, "")
		}
	}

	a.collectFields(pkg, rec, st, entry, diags)

	if entry != nil {
		for name := range entry.Fields {
			if rec.field(name) == nil {
				diags.AddError(diagnostic.CodeUnknownField,
					fmt.Sprintf("options file line %d names a field that does not exist%s",
						entry.Line, match.DidYouMean(name, rec.fieldNames())),
					pos, id.Name, name)
			}
		}
	}

	a.log.Debug("record found",
		zap.Stringer("type", id),
		zap.Int("fields", len(rec.Fields)),
		zap.Bool("options_file", inFile))

	return rec
}

func (a *Analyzer) collectFields(
	pkg *packages.Package,
	rec *Record,
	st *ast.StructType,
	entry *mapping.TypeOptions,
	diags *diagnostic.Diagnostics,
) {
	index := 0

	for _, af := range st.Fields.List {
		if len(af.Names) == 0 {
			diags.AddInfo(diagnostic.CodeEmbeddedSkipped,
				fmt.Sprintf("embedded field %s gets no accessors", goexpr.FromNode(af.Type)),
				pkg.Fset.Position(af.Pos()), rec.Name(), "")

			index++

			continue
		}

		docs := docLines(af.Doc)
		typ := goexpr.FromNode(af.Type)

		for _, name := range af.Names {
			fieldIndex := index
			index++

			if name.Name == "_" {
				continue
			}

			f := Field{
				Name:     name.Name,
				Exported: name.IsExported(),
				Type:     typ,
				Docs:     docs,
				Pos:      pkg.Fset.Position(name.Pos()),
				Index:    fieldIndex,
			}

			f.Options = a.fieldOptions(pkg, rec, af, &f, entry, diags)
			rec.Fields = append(rec.Fields, f)
		}
	}
}

func (a *Analyzer) fieldOptions(
	pkg *packages.Package,
	rec *Record,
	af *ast.Field,
	f *Field,
	entry *mapping.TypeOptions,
	diags *diagnostic.Diagnostics,
) options.FieldOptions {
	var out options.FieldOptions

	inSource := false

	if tag, ok := directive.Tag(af.Tag); ok {
		inSource = true

		if err := directive.ParseField(tag, &out); err != nil {
			diags.AddError(diagnostic.CodeSyntax, fmt.Sprintf("access tag: %v", err), f.Pos, rec.Name(), f.Name)
		}
	}

	lines, found := directive.Lines(af.Doc, directive.FieldMarker)
	inSource = inSource || found

	for _, line := range lines {
		if err := directive.ParseField(line.Text, &out); err != nil {
			diags.AddError(diagnostic.CodeSyntax, err.Error(), linePos(pkg.Fset, line, err), rec.Name(), f.Name)
		}
	}

	if entry == nil {
		return out
	}

	fo, ok := entry.Fields[f.Name]
	if !ok {
		return out
	}

	if inSource {
		diags.AddError(diagnostic.CodeDuplicateType,
			"field configured in source and in the options file", f.Pos, rec.Name(), f.Name)

		return out
	}

	out, err := fo.Options()
	if err != nil {
		diags.AddError(diagnostic.CodeSyntax, err.Error(), f.Pos, rec.Name(), f.Name)
	}

	return out
}

// reportUnusedOptions flags options file entries that matched no type.
func (a *Analyzer) reportUnusedOptions(diags *diagnostic.Diagnostics) {
	if a.cfg.Options == nil {
		return
	}

	for i := range a.cfg.Options.Types {
		t := &a.cfg.Options.Types[i]
		if a.used[t] {
			continue
		}

		diags.AddError(diagnostic.CodeUnknownType,
			fmt.Sprintf("options file line %d names a type that was not found in the loaded packages", t.Line),
			token.Position{}, t.QualifiedName(), "")
	}
}

func (r *Record) fieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for i := range r.Fields {
		names = append(names, r.Fields[i].Name)
	}

	return names
}

func (r *Record) field(name string) *Field {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}

	return nil
}

// linePos returns the position of a directive syntax error.
func linePos(fset *token.FileSet, line directive.Line, err error) token.Position {
	p := line.Pos

	var se *directive.SyntaxError
	if errors.As(err, &se) {
		p += token.Pos(se.Offset)
	}

	return fset.Position(p)
}

func typeParams(ts *ast.TypeSpec) []TypeParam {
	if ts.TypeParams == nil {
		return nil
	}

	var out []TypeParam

	for _, f := range ts.TypeParams.List {
		constraint := goexpr.FromNode(f.Type)
		for _, n := range f.Names {
			out = append(out, TypeParam{Name: n.Name, Constraint: constraint})
		}
	}

	return out
}

// docLines returns the doc comment without directive lines.
func docLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}

	text := strings.TrimRight(cg.Text(), "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// fileImports maps the names a file uses for its imports to import paths.
func fileImports(pkg *packages.Package, file *ast.File) map[string]string {
	out := make(map[string]string, len(file.Imports))

	for _, spec := range file.Imports {
		p := strings.Trim(spec.Path.Value, "\"`")

		var name string

		switch {
		case spec.Name != nil:
			name = spec.Name.Name
		case pkg.TypesInfo != nil:
			if pn := pkg.TypesInfo.PkgNameOf(spec); pn != nil {
				name = pn.Name()
			}
		}

		if name == "" {
			name = path.Base(p)
		}

		if name == "_" || name == "." {
			continue
		}

		out[name] = p
	}

	return out
}
