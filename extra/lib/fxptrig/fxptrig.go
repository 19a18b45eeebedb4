// Copyright 2022 Nigel Tao.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ----------------

// Package fxptrig computes sine and cosine of integer angles in fixed point,
// by looking up a quarter-wave table from package sintable.
//
// For a table with tableBits of resolution, a quarter turn is 1<<tableBits
// angle units and a full turn is 4<<tableBits. With the default table, 0x40
// is π/2 and 0x100 is 2π. Results are scaled by 1<<fracBits, so the default
// Sin(0x40) is 64.
package fxptrig

import (
	"github.com/stak-vm/fxp/extra/lib/sintable"
)

// Table is a quarter-wave sine table. The zero value is not usable; use New.
type Table struct {
	quarter  int
	fracBits uint
	values   []int8
}

// New returns a Table of the given resolution and fixed-point scale.
func New(tableBits uint, fracBits uint) (*Table, error) {
	values, err := sintable.Generate(&sintable.Options{
		TableBits: tableBits,
		FracBits:  fracBits,
	})
	if err != nil {
		return nil, err
	}
	return &Table{
		quarter:  1 << tableBits,
		fracBits: fracBits,
		values:   values,
	}, nil
}

// Sin returns sin(angle) in fixed point. Angles wrap modulo a full turn and
// may be negative.
func (t *Table) Sin(angle int) int {
	i := angle & (t.quarter - 1)
	if (angle & t.quarter) != 0 {
		// 2nd or 4th quarter.
		i = t.quarter - i
	}
	if (angle & (2 * t.quarter)) != 0 {
		return -int(t.values[i])
	}
	return int(t.values[i])
}

// Cos returns cos(angle) in fixed point.
func (t *Table) Cos(angle int) int {
	return t.Sin(angle + t.quarter)
}

// Mul returns the fixed-point product of a and b, both scaled like Sin's
// results. The shift is arithmetic, so negative products round toward
// negative infinity.
func (t *Table) Mul(a int, b int) int {
	return (a * b) >> t.fracBits
}

// QuarterTurn returns the number of angle units in π/2.
func (t *Table) QuarterTurn() int {
	return t.quarter
}

// Values returns a copy of the underlying quarter-wave table.
func (t *Table) Values() []int8 {
	return append([]int8(nil), t.values...)
}

var defaultTable *Table

func init() {
	t, err := New(sintable.DefaultTableBits, sintable.DefaultFracBits)
	if err != nil {
		panic("fxptrig: bad default table: " + err.Error())
	}
	defaultTable = t
}

// Sin returns sin(angle) using the default table: 0x100 angle units per full
// turn, results scaled by 64.
func Sin(angle int) int {
	return defaultTable.Sin(angle)
}

// Cos returns cos(angle) using the default table.
func Cos(angle int) int {
	return defaultTable.Cos(angle)
}

// Mul returns the product of a and b in the default table's fixed-point
// scale, where 1.0 is 64.
func Mul(a int, b int) int {
	return defaultTable.Mul(a, b)
}
