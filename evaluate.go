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

import (
	"sort"

	"github.com/ctessum/sparse"
)

// Evaluate returns the value of the named field at an arbitrary point: the
// nearest lateral grid point is found on the sphere and the field is
// linearly interpolated in radius between the two layers bracketing r,
// clamping to the boundary layer when r lies outside the stored range. The
// result has one element for scalar fields and one per component for
// vector and composition-histogram fields, each component interpolated
// independently with the same weight.
//
// Evaluate returns a FieldNameError if fieldName is not in the catalog and
// a NoFieldError if the field has no data on this model.
func (m *TerraModel) Evaluate(lon, lat, r float64, fieldName string) ([]float64, error) {
	arr, err := m.GetField(fieldName)
	if err != nil {
		return nil, err
	}
	i := m.NearestIndex(lon, lat)
	lo, hi, frac := m.bracket(r)

	ncomp := 1
	if len(arr.Shape) == 3 {
		ncomp = arr.Shape[2]
	}
	out := make([]float64, ncomp)
	for k := 0; k < ncomp; k++ {
		var vlo, vhi float64
		if len(arr.Shape) == 3 {
			vlo, vhi = arr.Get(lo, i, k), arr.Get(hi, i, k)
		} else {
			vlo, vhi = arr.Get(lo, i), arr.Get(hi, i)
		}
		out[k] = vlo + frac*(vhi-vlo)
	}
	return out, nil
}

// bracket returns the pair of adjacent layers enclosing radius r and the
// fractional position of r within the pair. Radii outside the stored range
// clamp to the boundary layer.
func (m *TerraModel) bracket(r float64) (lo, hi int, frac float64) {
	n := len(m.radius)
	j := sort.SearchFloat64s(m.radius, r)
	switch {
	case j == 0:
		return 0, 0, 0
	case j == n:
		return n - 1, n - 1, 0
	}
	lo, hi = j-1, j
	frac = (r - m.radius[lo]) / (m.radius[hi] - m.radius[lo])
	return lo, hi, frac
}

// NearestLayer returns the index and radius of the stored layer closest in
// radius to r. On an exact midpoint the lower layer wins.
func (m *TerraModel) NearestLayer(r float64) (layer int, radius float64) {
	lo, hi, frac := m.bracket(r)
	if frac > 0.5 {
		lo = hi
	}
	return lo, m.radius[lo]
}

// Profile returns the column of the named field at the lateral grid point
// nearest (lon, lat): shape (nlayers) for scalar fields and
// (nlayers, ncomp) otherwise. The returned array is freshly allocated, not
// a view of the field. The error contract is the same as Evaluate's.
func (m *TerraModel) Profile(lon, lat float64, fieldName string) (*sparse.DenseArray, error) {
	arr, err := m.GetField(fieldName)
	if err != nil {
		return nil, err
	}
	i := m.NearestIndex(lon, lat)
	nlayers := len(m.radius)
	if len(arr.Shape) == 2 {
		out := sparse.ZerosDense(nlayers)
		for j := 0; j < nlayers; j++ {
			out.Set(arr.Get(j, i), j)
		}
		return out, nil
	}
	ncomp := arr.Shape[2]
	out := sparse.ZerosDense(nlayers, ncomp)
	for j := 0; j < nlayers; j++ {
		for k := 0; k < ncomp; k++ {
			out.Set(arr.Get(j, i, k), j, k)
		}
	}
	return out, nil
}
