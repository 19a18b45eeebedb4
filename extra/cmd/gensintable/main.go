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

package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stak-vm/fxp/extra/lib/sintable"
)

const usage = "Usage: gensintable -bits=6 -fracbits=6 -name=sin_table > sin_table.h"

func main() {
	if err := main1(os.Stdout, os.Args[1:]); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1(stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("gensintable", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	bitsList := fs.String("bits", strconv.Itoa(sintable.DefaultTableBits),
		"Comma-separated table resolutions; each table has 2^bits + 1 entries")
	fracBits := fs.Uint("fracbits", sintable.DefaultFracBits,
		"Fixed-point fractional bits, from 0 to 6 (1.0 is 1<<fracbits)")
	name := fs.String("name", sintable.DefaultName, "C identifier of the table")
	if err := fs.Parse(args); err != nil {
		return errors.New(usage)
	} else if fs.NArg() != 0 {
		return errors.New(usage)
	}

	resolutions, err := parseBits(*bitsList)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for _, tableBits := range resolutions {
		table, err := sintable.Generate(&sintable.Options{
			TableBits: tableBits,
			FracBits:  *fracBits,
		})
		if err != nil {
			return err
		}
		if err := sintable.WriteC(w, *name, table); err != nil {
			return err
		}
	}
	return w.Flush()
}

func parseBits(s string) ([]uint, error) {
	var bits []uint
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return nil, errors.New("gensintable: bad -bits value " + strconv.Quote(f))
		}
		bits = append(bits, uint(n))
	}
	return bits, nil
}
