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

package sintable

import (
	"fmt"
	"io"
)

// WriteC writes table to w as a C declaration:
//
//	static const int8_t name[len] = {
//	    0x00, 0x02, 0x03, ...
//	};
//
// followed by a blank line. Lines hold EntriesPerLine values, the last line
// possibly fewer. Negative values are written as their two's complement byte,
// so -1 is 0xff.
func WriteC(w io.Writer, name string, table []int8) error {
	buf := make([]byte, 0, 64+6*len(table))
	buf = fmt.Appendf(buf, "static const int8_t %s[%d] = {\n", name, len(table))
	for i, v := range table {
		if (i % EntriesPerLine) == 0 {
			buf = append(buf, "    "...)
		} else {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "0x%02x,", uint8(v))
		if ((i+1)%EntriesPerLine == 0) || (i+1 == len(table)) {
			buf = append(buf, '\n')
		}
	}
	buf = append(buf, "};\n\n"...)
	_, err := w.Write(buf)
	return err
}
