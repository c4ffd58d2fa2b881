/*
Copyright © 2026 the TerraTools authors.
This file is part of TerraTools.

TerraTools is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

TerraTools is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with TerraTools.  If not, see <http://www.gnu.org/licenses/>.
*/

package terratools

// fieldKind classifies how many values a field holds per grid sample.
type fieldKind int

const (
	scalarKind fieldKind = iota

	// vectorKind fields hold a fixed number of components per sample.
	vectorKind

	// compositionKind fields hold one fraction per compositional
	// end-member; the component count is chosen per model.
	compositionKind
)

// fieldDef describes one recognized field.
type fieldDef struct {
	kind fieldKind

	// ncomp is the fixed trailing dimension for vector fields. It is
	// zero for composition fields, whose count is model-defined.
	ncomp int

	// variables holds the external (NetCDF) variable names corresponding
	// to this field, in component order.
	variables []string
}

// fieldCatalog is the closed set of recognized fields. It is read-only
// after package initialization.
var fieldCatalog = map[string]fieldDef{
	"t":       {kind: scalarKind, variables: []string{"Temperature"}},
	"c":       {kind: scalarKind, variables: []string{"Composition"}},
	"p":       {kind: scalarKind, variables: []string{"Pressure"}},
	"vp":      {kind: scalarKind, variables: []string{"Vp"}},
	"vs":      {kind: scalarKind, variables: []string{"Vs"}},
	"vp_an":   {kind: scalarKind, variables: []string{"Vp_an"}},
	"vs_an":   {kind: scalarKind, variables: []string{"Vs_an"}},
	"density": {kind: scalarKind, variables: []string{"Density"}},
	"u_xyz": {kind: vectorKind, ncomp: 3,
		variables: []string{"Velocity_x", "Velocity_y", "Velocity_z"}},
	"u_geog": {kind: vectorKind, ncomp: 3,
		variables: []string{"Velocity_east", "Velocity_north", "Velocity_up"}},
	"c_hist": {kind: compositionKind,
		variables: []string{"BasaltFrac", "LherzFrac"}},
}

// catalogOrder fixes a deterministic iteration order over the catalog.
var catalogOrder = []string{
	"t", "c", "p", "vp", "vs", "vp_an", "vs_an", "density",
	"u_xyz", "u_geog", "c_hist",
}

// variableToField maps each external variable name back to its field; all
// components of a vector or composition field map to the same field name.
var variableToField = make(map[string]string)

func init() {
	for _, name := range catalogOrder {
		for _, v := range fieldCatalog[name].variables {
			variableToField[v] = name
		}
	}
}

// IsValidFieldName reports whether name is a recognized field name.
func IsValidFieldName(name string) bool {
	_, ok := fieldCatalog[name]
	return ok
}

// checkFieldName returns a FieldNameError if name is not in the catalog.
func checkFieldName(name string) error {
	if !IsValidFieldName(name) {
		return FieldNameError{Name: name}
	}
	return nil
}

// VariableNamesForField returns the external (NetCDF) variable names that
// hold the named field, in component order.
func VariableNamesForField(name string) ([]string, error) {
	def, ok := fieldCatalog[name]
	if !ok {
		return nil, FieldNameError{Name: name}
	}
	return def.variables, nil
}

// FieldNameForVariable returns the field name that the external variable
// belongs to. It is the inverse of VariableNamesForField over each of the
// returned variable names.
func FieldNameForVariable(variable string) (string, error) {
	name, ok := variableToField[variable]
	if !ok {
		return "", FieldNameError{Name: variable}
	}
	return name, nil
}

// IsScalarField reports whether name is a recognized field holding one
// value per grid sample.
func IsScalarField(name string) bool {
	def, ok := fieldCatalog[name]
	return ok && def.kind == scalarKind
}

// IsVectorField reports whether name is a recognized field holding a fixed
// number of components per grid sample.
func IsVectorField(name string) bool {
	def, ok := fieldCatalog[name]
	return ok && def.kind == vectorKind
}

// ExpectedVectorComponents returns the per-sample component count the
// catalog fixes for the named field: 1 for scalar fields and the component
// count for vector fields. For fields whose count is chosen per model, such
// as composition histograms, fixed is false and n is zero.
func ExpectedVectorComponents(name string) (n int, fixed bool) {
	def, ok := fieldCatalog[name]
	if !ok {
		return 0, false
	}
	switch def.kind {
	case scalarKind:
		return 1, true
	case vectorKind:
		return def.ncomp, true
	}
	return 0, false
}
