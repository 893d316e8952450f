// Package flow composes normalization stages into the named workflows
// the cleaning pipeline runs: strings, addresses, cities, names, zip.
// Stage order within a workflow is fixed and load-bearing.
package flow

import (
	"github.com/massprop-dedup/internal/normalize"
	"github.com/massprop-dedup/internal/table"
)

// Stage consumes a table and target columns and returns a table of the
// same shape with only the targeted text columns rewritten.
type Stage func(*table.Table, []string) *table.Table

func each(fn table.Transform) Stage {
	return func(t *table.Table, cols []string) *table.Table {
		return t.Apply(cols, fn)
	}
}

func column(fn func([]table.Field) []table.Field) Stage {
	return func(t *table.Table, cols []string) *table.Table {
		return t.ApplyColumn(cols, fn)
	}
}

// Workflow is a fixed, ordered chain of stages. Running one is a total
// function: a stage that fails to match leaves values unchanged, and no
// workflow retries or branches.
type Workflow struct {
	Name   string
	stages []Stage
}

// Run applies every stage in order over the target columns.
func (w Workflow) Run(t *table.Table, columns []string) *table.Table {
	for _, s := range w.stages {
		t = s(t, columns)
	}
	return t
}

// Strings is the generic text cleanup applied to any free-text column.
func Strings() Workflow {
	return Workflow{Name: "strings", stages: []Stage{
		each(normalize.SpaceSlashes),
		each(normalize.StripSpecialChars),
		each(normalize.CleanBlanks),
		each(normalize.StripThe),
		each(normalize.ConvertNumberWords),
		each(normalize.StripTrailingWords),
		each(normalize.Uppercase),
	}}
}

// Addresses canonicalizes street-address columns. Street types expand
// before unit segmentation so PO Box variants are already in their
// canonical "PO BOX" spelling when the set-aside predicate runs.
func Addresses() Workflow {
	return Workflow{Name: "addresses", stages: []Stage{
		each(normalize.ExpandStreetTypes),
		column(normalize.SegmentUnits),
		each(normalize.ExpandDirections),
		each(normalize.StripHyphenRanges),
		each(normalize.BlankOneWordAddresses),
		each(normalize.ExpandStateNames),
	}}
}

// Cities rewrites neighborhood names to their parent city, then expands
// direction tokens ("E BOSTON").
func Cities(lookup normalize.CityLookup) Workflow {
	return Workflow{Name: "cities", stages: []Stage{
		each(normalize.SubstituteCity(lookup)),
		each(normalize.ExpandDirections),
	}}
}

// Names canonicalizes owner and corporate name columns.
func Names() Workflow {
	return Workflow{Name: "names", stages: []Stage{
		each(normalize.CanonicalizeCorpSuffixes),
		each(normalize.BlankBoilerplateNames),
		each(normalize.ElideMiddleInitials),
	}}
}

// Zip truncates postal-code columns to their 5-digit form.
func Zip() Workflow {
	return Workflow{Name: "zip", stages: []Stage{
		each(normalize.TruncateZip),
	}}
}

// ByName resolves a workflow from its CLI/API name. The city lookup is
// only consulted by the cities workflow; callers without reference data
// may pass nil for the rest.
func ByName(name string, lookup normalize.CityLookup) (Workflow, bool) {
	switch name {
	case "strings":
		return Strings(), true
	case "addresses":
		return Addresses(), true
	case "cities":
		return Cities(lookup), true
	case "names":
		return Names(), true
	case "zip":
		return Zip(), true
	}
	return Workflow{}, false
}

// Available lists the workflow names ByName accepts.
func Available() []string {
	return []string{"strings", "addresses", "cities", "names", "zip"}
}
