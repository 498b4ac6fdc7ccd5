// Package plan resolves layered accessor options into the final options of
// every generated accessor.
//
// Resolution pipeline, per record:
//  1. Skip fields marked skip at field level
//  2. For each remaining field, in declaration order, and each accessor kind
//     in Get, GetMut, Set order:
//     - a per-kind skip omits the accessor before any merge
//     - merge field kind, field catch-all, container kind and container
//     catch-all layers, filling only unset slots
//     - materialize and apply the kind's naming convention
//  3. Emit the ordered RecordPlan consumed by code generation
package plan
