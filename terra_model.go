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

// Package terratools provides an in-memory container for three-dimensional
// geophysical models sampled on an irregular lateral grid stacked over a
// set of concentric spherical shells. A model holds named scalar, vector
// and composition-histogram fields, validates their shapes against the
// grid, and answers nearest-neighbor and interpolated point queries.
package terratools

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// TerraModel holds one model: the lateral grid shared by every layer, the
// layer radii, and the field arrays sampled at every (layer, lateral
// point) combination.
//
// A model is a single-owner, in-memory structure. Construction, field
// creation and the first spatial query mutate it; everything else is
// read-only and safe for concurrent use as long as no goroutine writes to
// a field array another is reading.
type TerraModel struct {
	lon, lat []float64
	radius   []float64

	fields map[string]*sparse.DenseArray
	names  []string // field insertion order

	cNames []string

	buildIndex sync.Once
	tree       *kdtree.Tree
}

// NewTerraModel creates a model from the lateral point coordinates (in
// degrees; lon and lat must be the same length) and the layer radii, which
// must already be sorted strictly ascending. fields maps field names to
// their initial arrays; every array's leading dimensions must be
// (len(radius), len(lon)). compositionNames labels the end-members of
// composition-histogram fields, and when given its length must equal those
// fields' trailing dimension. Both fields and compositionNames may be nil.
//
// The model keeps the slices and arrays it is given rather than copying
// them, so the caller sees mutations made through GetField and vice versa.
// Construction is all-or-nothing: on error no model is returned.
func NewTerraModel(lon, lat, radius []float64, fields map[string]*sparse.DenseArray, compositionNames []string) (*TerraModel, error) {
	if len(lon) != len(lat) {
		return nil, fmt.Errorf("terratools: longitude and latitude lengths differ (%d != %d)", len(lon), len(lat))
	}
	if len(lon) == 0 {
		return nil, fmt.Errorf("terratools: at least one lateral point is required")
	}
	if len(radius) == 0 {
		return nil, fmt.Errorf("terratools: at least one layer radius is required")
	}
	for i := 1; i < len(radius); i++ {
		if radius[i] <= radius[i-1] {
			return nil, fmt.Errorf("terratools: radii must be strictly increasing but radius %d (%g) follows %g",
				i, radius[i], radius[i-1])
		}
	}

	m := &TerraModel{
		lon:    lon,
		lat:    lat,
		radius: radius,
		fields: make(map[string]*sparse.DenseArray),
		cNames: compositionNames,
	}
	for name := range fields {
		if err := checkFieldName(name); err != nil {
			return nil, err
		}
	}
	// Insert in catalog order so that the field list is deterministic.
	for _, name := range catalogOrder {
		arr, ok := fields[name]
		if !ok {
			continue
		}
		if err := m.checkFieldShape(name, arr); err != nil {
			return nil, err
		}
		m.fields[name] = arr
		m.names = append(m.names, name)
	}
	return m, nil
}

// checkFieldShape verifies that arr has the shape the grid and the catalog
// require of the named field.
func (m *TerraModel) checkFieldShape(name string, arr *sparse.DenseArray) error {
	if arr == nil {
		return fmt.Errorf("terratools: field %q array is nil", name)
	}
	def := fieldCatalog[name]
	want := []int{len(m.radius), len(m.lon)}
	switch def.kind {
	case vectorKind:
		want = append(want, def.ncomp)
	case compositionKind:
		switch {
		case m.cNames != nil:
			want = append(want, len(m.cNames))
		case len(arr.Shape) == 3 && arr.Shape[2] >= 1:
			// No names declared; any positive component count works.
			want = append(want, arr.Shape[2])
		default:
			return FieldDimensionError{Name: name,
				Want: append(want, -1), Have: arr.Shape}
		}
	}
	if !intsEqual(arr.Shape, want) {
		return FieldDimensionError{Name: name, Want: want, Have: arr.Shape}
	}
	return nil
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

// GetLateralPoints returns the longitudes and latitudes of the lateral
// grid points. The returned slices are the ones the model was constructed
// with, not copies.
func (m *TerraModel) GetLateralPoints() (lon, lat []float64) {
	return m.lon, m.lat
}

// GetRadii returns the layer radii, sorted ascending. The returned slice
// is the one the model was constructed with, not a copy.
func (m *TerraModel) GetRadii() []float64 {
	return m.radius
}

// Points returns the lateral grid points as geometry points, with X
// holding longitude and Y latitude.
func (m *TerraModel) Points() []geom.Point {
	pts := make([]geom.Point, len(m.lon))
	for i := range m.lon {
		pts[i] = geom.Point{X: m.lon[i], Y: m.lat[i]}
	}
	return pts
}

// LateralBounds returns the longitude/latitude bounding box of the lateral
// grid points.
func (m *TerraModel) LateralBounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, p := range m.Points() {
		b.Extend(p.Bounds())
	}
	return b
}

// GetField returns the live backing array of the named field; writes
// through the returned array are visible to every later reader. It returns
// a FieldNameError if the name is not in the catalog and a NoFieldError if
// the field has no data on this model.
func (m *TerraModel) GetField(name string) (*sparse.DenseArray, error) {
	if err := checkFieldName(name); err != nil {
		return nil, err
	}
	arr, ok := m.fields[name]
	if !ok {
		return nil, NoFieldError{Name: name}
	}
	return arr, nil
}

// HasField reports whether the named field has data on this model.
func (m *TerraModel) HasField(name string) bool {
	_, ok := m.fields[name]
	return ok
}

// FieldNames returns the names of the fields present on this model in
// insertion order.
func (m *TerraModel) FieldNames() []string {
	return m.names
}

// NewField adds a zero-filled field with the shape the grid and the
// catalog imply, replacing any data the field already had, and returns the
// live array. ncomp gives the component count for composition-histogram
// fields, where it is required and must agree with any declared
// composition names; for scalar and vector fields pass 0, or for vector
// fields the fixed catalog count.
func (m *TerraModel) NewField(name string, ncomp int) (*sparse.DenseArray, error) {
	if err := checkFieldName(name); err != nil {
		return nil, err
	}
	def := fieldCatalog[name]
	nlayers, npts := len(m.radius), len(m.lon)
	var arr *sparse.DenseArray
	switch def.kind {
	case scalarKind:
		if ncomp > 0 {
			return nil, fmt.Errorf("terratools: field %q is scalar and cannot have %d components", name, ncomp)
		}
		arr = sparse.ZerosDense(nlayers, npts)
	case vectorKind:
		if ncomp > 0 && ncomp != def.ncomp {
			return nil, fmt.Errorf("terratools: field %q must have %d components, not %d", name, def.ncomp, ncomp)
		}
		arr = sparse.ZerosDense(nlayers, npts, def.ncomp)
	case compositionKind:
		if ncomp <= 0 {
			return nil, fmt.Errorf("terratools: a positive component count is required to create field %q", name)
		}
		if m.cNames != nil && ncomp != len(m.cNames) {
			return nil, fmt.Errorf("terratools: field %q given %d components but %d composition names are declared",
				name, ncomp, len(m.cNames))
		}
		arr = sparse.ZerosDense(nlayers, npts, ncomp)
	}
	if _, ok := m.fields[name]; !ok {
		m.names = append(m.names, name)
	}
	m.fields[name] = arr
	return arr, nil
}

// NumberOfCompositions returns the number of compositional end-members: the
// trailing dimension of the composition-histogram field if one is present,
// otherwise the number of declared composition names.
func (m *TerraModel) NumberOfCompositions() int {
	for _, name := range m.names {
		if fieldCatalog[name].kind != compositionKind {
			continue
		}
		if arr := m.fields[name]; len(arr.Shape) == 3 {
			return arr.Shape[2]
		}
	}
	return len(m.cNames)
}

// GetCompositionNames returns the declared composition end-member labels,
// in component order.
func (m *TerraModel) GetCompositionNames() []string {
	return m.cNames
}

// String returns a fixed-format human-readable summary of the model.
func (m *TerraModel) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TerraModel:\n")
	fmt.Fprintf(&b, "%26s: %d\n", "number of radii", len(m.radius))
	fmt.Fprintf(&b, "%26s: (%.1f, %.1f)\n", "radius limits",
		m.radius[0], m.radius[len(m.radius)-1])
	fmt.Fprintf(&b, "%26s: %d\n", "number of lateral points", len(m.lon))
	fmt.Fprintf(&b, "%26s: %s\n", "fields", quoteList(m.names))
	fmt.Fprintf(&b, "%26s: %s", "composition names", quoteList(m.cNames))
	return b.String()
}

// quoteList formats names as a bracketed, quoted list, e.g. ['t', 'c_hist'].
func quoteList(names []string) string {
	if len(names) == 0 {
		return "[]"
	}
	return "['" + strings.Join(names, "', '") + "']"
}
