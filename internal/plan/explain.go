package plan

import (
	"fmt"
	"io"
	"strings"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/goexpr"
	"accessor-generator/internal/options"
)

// Property names reported by Explain, in display order.
var Properties = []string{
	"owned", "const_fn", "cp", "ptr_deref", "type", "prefix", "suffix", "vis", "bounds",
}

// Explanation describes how one accessor was resolved.
type Explanation struct {
	Kind    options.Kind
	Omitted bool
	// Reason is set when the accessor is omitted.
	Reason string
	// Options are the resolved options when not omitted.
	Options options.FinalOptions
	// Sources maps every property to the layer its value came from.
	Sources map[string]Layer
}

// Explain resolves kind k like Resolve and records which layer supplied
// every property.
func Explain(k options.Kind, l Layers) Explanation {
	ex := Explanation{Kind: k}

	final, ok := Resolve(l)
	if !ok {
		ex.Omitted = true
		ex.Reason = omitReason(l)

		return ex
	}

	ex.Options = final
	ex.Sources = make(map[string]Layer, len(Properties))

	chain := layerChain(l)
	for _, prop := range Properties {
		ex.Sources[prop] = LayerBuiltin

		for _, lr := range chain {
			if lr.explicit[prop] {
				ex.Sources[prop] = lr.layer
				break
			}
		}
	}

	if ex.Sources["prefix"] == LayerBuiltin && l.Naming.Prefix != "" {
		ex.Sources["prefix"] = LayerConvention
	}

	if ex.Sources["suffix"] == LayerBuiltin && l.Naming.Suffix != "" {
		ex.Sources["suffix"] = LayerConvention
	}

	return ex
}

type explicitLayer struct {
	layer    Layer
	explicit map[string]bool
}

// layerChain returns the layers that took part in the merge, highest
// priority first.
func layerChain(l Layers) []explicitLayer {
	var chain []explicitLayer

	if l.FieldKind != nil {
		chain = append(chain, explicitLayer{LayerFieldKind, explicitProps(l.FieldKind)})
	}

	if l.FieldAll != nil {
		chain = append(chain, explicitLayer{LayerFieldAll, explicitProps(l.FieldAll)})
	}

	if l.KindDefaults != nil {
		opts := l.KindDefaults.Options()
		chain = append(chain, explicitLayer{LayerKindDefaults, explicitProps(&opts)})
	}

	if l.AllDefaults != nil {
		opts := l.AllDefaults.Options()
		chain = append(chain, explicitLayer{LayerAllDefaults, explicitProps(&opts)})
	}

	return chain
}

func explicitProps(o *options.VariationOptions) map[string]bool {
	return map[string]bool{
		"owned":     !o.Owned.IsUnset(),
		"const_fn":  !o.ConstFn.IsUnset(),
		"cp":        !o.Copy.IsUnset(),
		"ptr_deref": !o.PtrDeref.IsUnset(),
		"type":      !o.Type.IsUnset(),
		"prefix":    !o.Prefix.IsUnset(),
		"suffix":    !o.Suffix.IsUnset(),
		"vis":       !o.Vis.IsUnset(),
		"bounds":    len(o.Bounds) > 0,
	}
}

func omitReason(l Layers) string {
	switch {
	case l.FieldKind != nil:
		return "skipped by field options"
	case !l.Enabled:
		return "not enabled by default and no field options"
	default:
		return "skipped by field catch-all options"
	}
}

// Value returns the display value of a resolved property.
func (ex *Explanation) Value(prop string) string {
	o := ex.Options

	switch prop {
	case "owned":
		return fmt.Sprint(o.Owned)
	case "const_fn":
		return fmt.Sprint(o.ConstFn)
	case "cp":
		return fmt.Sprint(o.Copy)
	case "ptr_deref":
		return o.PtrDeref.String()
	case "type":
		if o.Type.IsZero() {
			return "-"
		}

		return o.Type.String()
	case "prefix":
		return orDash(o.Prefix)
	case "suffix":
		return orDash(o.Suffix)
	case "vis":
		return o.Vis.String()
	case "bounds":
		if len(o.Bounds) == 0 {
			return "-"
		}

		return strings.Join(goexpr.BoundStrings(o.Bounds), ", ")
	default:
		return ""
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// ExplainRecord explains every (field, kind) pair of a record, including
// omitted accessors, and writes a plain-text report to w.
func ExplainRecord(w io.Writer, rec *analyze.Record) error {
	if _, err := fmt.Fprintf(w, "%s\n", rec.ID); err != nil {
		return err
	}

	for i := range rec.Fields {
		field := &rec.Fields[i]
		if field.Options.Skip {
			if _, err := fmt.Fprintf(w, "  %s: skipped\n", field.Name); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintf(w, "  %s %s\n", field.Name, field.Type); err != nil {
			return err
		}

		for _, k := range options.Kinds {
			ex := Explain(k, LayersFor(k, &rec.Options, &field.Options))
			if err := ex.write(w); err != nil {
				return err
			}
		}
	}

	return nil
}

func (ex *Explanation) write(w io.Writer) error {
	if ex.Omitted {
		_, err := fmt.Fprintf(w, "    %-7s omitted (%s)\n", ex.Kind, ex.Reason)
		return err
	}

	parts := make([]string, 0, len(Properties))
	for _, prop := range Properties {
		parts = append(parts, fmt.Sprintf("%s=%s [%s]", prop, ex.Value(prop), ex.Sources[prop]))
	}

	_, err := fmt.Fprintf(w, "    %-7s %s\n", ex.Kind, strings.Join(parts, " "))

	return err
}
