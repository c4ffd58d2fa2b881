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

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// gridPoint is one lateral grid point positioned on the unit sphere.
type gridPoint struct {
	vec r3.Vec
	i   int
}

func (p gridPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(gridPoint)
	switch d {
	case 0:
		return p.vec.X - q.vec.X
	case 1:
		return p.vec.Y - q.vec.Y
	default:
		return p.vec.Z - q.vec.Z
	}
}

func (p gridPoint) Dims() int { return 3 }

// Distance returns the squared chordal distance between two points on the
// unit sphere, which is monotonic with great-circle distance and therefore
// unaffected by longitude wraparound or the poles.
func (p gridPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(gridPoint)
	return r3.Norm2(r3.Sub(p.vec, q.vec))
}

// gridPoints implements kdtree.Interface.
type gridPoints []gridPoint

func (p gridPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p gridPoints) Len() int                      { return len(p) }
func (p gridPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p gridPoints) Pivot(d kdtree.Dim) int {
	return gridPlane{gridPoints: p, Dim: d}.Pivot()
}

// gridPlane sorts gridPoints along one axis for kd-tree construction.
type gridPlane struct {
	kdtree.Dim
	gridPoints
}

func (p gridPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.gridPoints[i].vec.X < p.gridPoints[j].vec.X
	case 1:
		return p.gridPoints[i].vec.Y < p.gridPoints[j].vec.Y
	default:
		return p.gridPoints[i].vec.Z < p.gridPoints[j].vec.Z
	}
}
func (p gridPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p gridPlane) Slice(start, end int) kdtree.SortSlicer {
	p.gridPoints = p.gridPoints[start:end]
	return p
}
func (p gridPlane) Swap(i, j int) {
	p.gridPoints[i], p.gridPoints[j] = p.gridPoints[j], p.gridPoints[i]
}

// index returns the nearest-neighbor index over the lateral points,
// building it on first use. The lateral coordinates never change after
// construction, so the tree is built at most once and is read-only
// thereafter.
func (m *TerraModel) index() *kdtree.Tree {
	m.buildIndex.Do(func() {
		pts := make(gridPoints, len(m.lon))
		for i := range m.lon {
			pts[i] = gridPoint{vec: LonLatToVec(m.lon[i], m.lat[i]), i: i}
		}
		m.tree = kdtree.New(pts, false)
	})
	return m.tree
}

// NearestIndex returns the index into the lateral point arrays of the grid
// point closest on the sphere to the given location (in degrees). If
// several points are equidistant the lowest index wins.
func (m *TerraModel) NearestIndex(lon, lat float64) int {
	q := gridPoint{vec: LonLatToVec(lon, lat), i: -1}
	tree := m.index()
	got, dist := tree.Nearest(q)
	best := got.(gridPoint).i

	// Sweep up every point at the winning distance so that ties resolve
	// to the lowest index no matter how the tree is arranged.
	keep := kdtree.NewDistKeeper(dist)
	tree.NearestSet(keep, q)
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		if i := c.Comparable.(gridPoint).i; i < best {
			best = i
		}
	}
	return best
}

// NearestIndices returns the indices of the n lateral grid points closest
// on the sphere to the given location, ordered nearest first with exact
// ties in index order. n larger than the point count is clamped.
func (m *TerraModel) NearestIndices(lon, lat float64, n int) []int {
	if n <= 0 {
		return nil
	}
	if n > len(m.lon) {
		n = len(m.lon)
	}
	q := gridPoint{vec: LonLatToVec(lon, lat), i: -1}
	keep := kdtree.NewNKeeper(n)
	m.index().NearestSet(keep, q)

	type hit struct {
		i int
		d float64
	}
	hits := make([]hit, 0, n)
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		hits = append(hits, hit{i: c.Comparable.(gridPoint).i, d: c.Dist})
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].d != hits[b].d {
			return hits[a].d < hits[b].d
		}
		return hits[a].i < hits[b].i
	})
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.i
	}
	return out
}
