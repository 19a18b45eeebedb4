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

// Package sintable generates a quarter-wave sine lookup table in signed 8-bit
// fixed point and formats it as a C array literal.
//
// Sample i of a table with 2^tableBits + 1 entries holds
//
//	round(sin(i / 2^tableBits * π/2) * 2^fracBits)
//
// where round is round-half-away-from-zero.
package sintable

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// DefaultTableBits gives the 65-entry table embedded by the VM.
	DefaultTableBits = 6

	// DefaultFracBits is the VM's fixed-point scale: 1.0 is 0x40.
	DefaultFracBits = 6

	// DefaultName is the C identifier used by the generator programs.
	DefaultName = "sin_table"

	// EntriesPerLine is the number of values WriteC puts on each line.
	EntriesPerLine = 10
)

// These errors can be returned by Quantize and Generate.
var (
	ErrBadFracBits  = errors.New("sintable: bad fractional bits")
	ErrBadTableBits = errors.New("sintable: bad table bits")
	ErrOverflow     = errors.New("sintable: quantized value out of range")
)

// maxTableBits keeps Size within what an int can hold on every platform, with
// plenty of room. A table that large is not useful with 8-bit samples anyway.
const maxTableBits = 24

// Options are optional arguments to Generate. A nil *Options means to use the
// default values.
type Options struct {
	// TableBits is log2 of the number of intervals between 0 and π/2.
	TableBits uint

	// FracBits is the fixed-point scale: 1.0 is 1<<FracBits.
	FracBits uint
}

// Size returns the number of entries in a table with the given resolution:
// 2^tableBits samples plus the endpoint at π/2.
func Size(tableBits uint) int {
	return (1 << tableBits) + 1
}

// Quantize returns x scaled by 2^fracBits and rounded to the nearest integer,
// with ties rounded away from zero. It returns ErrOverflow if the result does
// not fit in T.
func Quantize[T constraints.Signed](x float64, fracBits uint) (T, error) {
	if fracBits >= 63 {
		return 0, ErrBadFracBits
	}
	v := math.Round(math.Ldexp(x, int(fracBits)))
	if b := bound[T](); !(v >= -b && v < b) {
		return 0, fmt.Errorf("%w: %g", ErrOverflow, v)
	}
	return T(v), nil
}

// bound returns 2^(w-1) for a w-bit T, so that T's range is [-bound, bound).
func bound[T constraints.Signed]() float64 {
	w := 0
	for x := ^T(0); x != 0; x <<= 1 {
		w++
	}
	return math.Ldexp(1, w-1)
}

// Generate returns the quarter-wave sine table, Size(opts.TableBits) entries
// long, from sin(0) to sin(π/2) inclusive.
func Generate(opts *Options) ([]int8, error) {
	tableBits, fracBits := uint(DefaultTableBits), uint(DefaultFracBits)
	if opts != nil {
		tableBits, fracBits = opts.TableBits, opts.FracBits
	}
	if tableBits > maxTableBits {
		return nil, ErrBadTableBits
	} else if fracBits > 7 {
		return nil, ErrBadFracBits
	}

	n := Size(tableBits)
	last := float64(n - 1)
	table := make([]int8, n)
	for i := range table {
		s := math.Sin(float64(i) / last * math.Pi * 0.5)
		v, err := Quantize[int8](s, fracBits)
		if err != nil {
			return nil, fmt.Errorf("%w (entry %d)", err, i)
		}
		table[i] = v
	}
	return table, nil
}
