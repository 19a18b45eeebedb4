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

//go:build ignore

package main

// This program prints the sin_table values.

import (
	"os"

	"github.com/stak-vm/fxp/extra/lib/sintable"
)

const (
	fracBits = 6
)

func main() {
	for _, tableBits := range []uint{6} {
		table, err := sintable.Generate(&sintable.Options{
			TableBits: tableBits,
			FracBits:  fracBits,
		})
		if err != nil {
			panic(err)
		}
		if err := sintable.WriteC(os.Stdout, sintable.DefaultName, table); err != nil {
			panic(err)
		}
	}
}
