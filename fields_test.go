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
	"errors"
	"reflect"
	"testing"
)

func TestIsValidFieldName(t *testing.T) {
	if IsValidFieldName("incorrect field name") {
		t.Error("'incorrect field name' should not be a valid field name")
	}
	if !IsValidFieldName("t") {
		t.Error("'t' should be a valid field name")
	}
}

func TestVariableNamesForField(t *testing.T) {
	tests := []struct {
		field string
		want  []string
	}{
		{"t", []string{"Temperature"}},
		{"u_xyz", []string{"Velocity_x", "Velocity_y", "Velocity_z"}},
		{"c_hist", []string{"BasaltFrac", "LherzFrac"}},
	}
	for _, test := range tests {
		have, err := VariableNamesForField(test.field)
		if err != nil {
			t.Fatalf("%s: %v", test.field, err)
		}
		if !reflect.DeepEqual(test.want, have) {
			t.Errorf("%s: want %v but have %v", test.field, test.want, have)
		}
	}

	_, err := VariableNamesForField("incorrect field name")
	var fieldErr FieldNameError
	if !errors.As(err, &fieldErr) {
		t.Errorf("want FieldNameError but have %v", err)
	}
}

func TestFieldNameForVariable(t *testing.T) {
	tests := []struct {
		variable, want string
	}{
		{"Temperature", "t"},
		{"Velocity_y", "u_xyz"},
		{"LherzFrac", "c_hist"},
	}
	for _, test := range tests {
		have, err := FieldNameForVariable(test.variable)
		if err != nil {
			t.Fatalf("%s: %v", test.variable, err)
		}
		if have != test.want {
			t.Errorf("%s: want %s but have %s", test.variable, test.want, have)
		}
	}
	if _, err := FieldNameForVariable("NotAVariable"); err == nil {
		t.Error("want error for unknown variable name")
	}
}

// Every variable name a field maps to must map back to the same field.
func TestVariableNameRoundTrip(t *testing.T) {
	for _, field := range catalogOrder {
		variables, err := VariableNamesForField(field)
		if err != nil {
			t.Fatal(err)
		}
		for _, variable := range variables {
			back, err := FieldNameForVariable(variable)
			if err != nil {
				t.Fatal(err)
			}
			if back != field {
				t.Errorf("%s: variable %s maps back to %s", field, variable, back)
			}
		}
	}
}

func TestIsScalarField(t *testing.T) {
	if !IsScalarField("c") {
		t.Error("'c' should be scalar")
	}
	if IsScalarField("c_hist") {
		t.Error("'c_hist' should not be scalar")
	}
	if IsScalarField("incorrect field name") {
		t.Error("an invalid name should not be scalar")
	}
}

func TestIsVectorField(t *testing.T) {
	if !IsVectorField("u_xyz") {
		t.Error("'u_xyz' should be a vector field")
	}
	if IsVectorField("t") {
		t.Error("'t' should not be a vector field")
	}
}

func TestExpectedVectorComponents(t *testing.T) {
	tests := []struct {
		field string
		n     int
		fixed bool
	}{
		{"u_xyz", 3, true},
		{"u_geog", 3, true},
		{"t", 1, true},
		{"c_hist", 0, false},
		{"incorrect field name", 0, false},
	}
	for _, test := range tests {
		n, fixed := ExpectedVectorComponents(test.field)
		if n != test.n || fixed != test.fixed {
			t.Errorf("%s: want (%d, %v) but have (%d, %v)",
				test.field, test.n, test.fixed, n, fixed)
		}
	}
}
