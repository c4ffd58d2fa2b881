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

import "fmt"

// FieldNameError reports a field name that is not in the field catalog.
type FieldNameError struct {
	Name string
}

func (e FieldNameError) Error() string {
	return fmt.Sprintf("terratools: %q is not a valid field name", e.Name)
}

// NoFieldError reports a valid field name that has no data on this
// particular model.
type NoFieldError struct {
	Name string
}

func (e NoFieldError) Error() string {
	return fmt.Sprintf("terratools: model has no field %q", e.Name)
}

// FieldDimensionError reports a field array whose shape disagrees with the
// model grid or with the field's expected component count.
type FieldDimensionError struct {
	Name string
	Want []int
	Have []int
}

func (e FieldDimensionError) Error() string {
	return fmt.Sprintf("terratools: field %q dims should be %v but are %v",
		e.Name, e.Want, e.Have)
}
