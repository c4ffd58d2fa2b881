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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const degToRad = math.Pi / 180

// LonLatToVec returns the position of a geographic point (in degrees) on
// the unit sphere.
func LonLatToVec(lon, lat float64) r3.Vec {
	sinLon, cosLon := math.Sincos(lon * degToRad)
	sinLat, cosLat := math.Sincos(lat * degToRad)
	return r3.Vec{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}
}

// localBasis returns the orthonormal east, north and up directions at a
// geographic point, expressed in Cartesian coordinates.
func localBasis(lon, lat float64) (east, north, up r3.Vec) {
	sinLon, cosLon := math.Sincos(lon * degToRad)
	sinLat, cosLat := math.Sincos(lat * degToRad)
	east = r3.Vec{X: -sinLon, Y: cosLon}
	north = r3.Vec{X: -sinLat * cosLon, Y: -sinLat * sinLon, Z: cosLat}
	up = r3.Vec{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}
	return east, north, up
}

// GeographicVector re-expresses the Cartesian flow vector v at the
// geographic point (lon, lat) in the local geographic basis, returning the
// east, north and up components in X, Y and Z. It converts between the
// framings of the u_xyz and u_geog fields.
func GeographicVector(v r3.Vec, lon, lat float64) r3.Vec {
	east, north, up := localBasis(lon, lat)
	return r3.Vec{X: r3.Dot(v, east), Y: r3.Dot(v, north), Z: r3.Dot(v, up)}
}

// CartesianVector is the inverse of GeographicVector: it takes east, north
// and up components in X, Y and Z and returns the equivalent Cartesian
// vector at the geographic point (lon, lat).
func CartesianVector(v r3.Vec, lon, lat float64) r3.Vec {
	east, north, up := localBasis(lon, lat)
	return r3.Add(r3.Add(r3.Scale(v.X, east), r3.Scale(v.Y, north)), r3.Scale(v.Z, up))
}
