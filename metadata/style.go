// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"strconv"
	"strings"

	"github.com/bufbuild/linetokens/internal/ext/slicesx"
)

// ColorID indexes into a [ColorMap]. The zero ID means "no color".
type ColorID uint16

// ColorMap is an ordered color table, indexed by [ColorID].
//
// Entry zero is reserved and never looked up for backgrounds. The strings are
// opaque to this package; they are usually CSS colors such as "#ff0000".
type ColorMap []string

// Lookup returns the color for id, or "" if the map has no such entry.
func (c ColorMap) Lookup(id ColorID) string {
	color, _ := slicesx.Get(c, id)
	return color
}

// ClassName returns a CSS-style class list describing this token's
// presentation.
//
// The result is a pure function of the token type, font style and colors of
// m; tokens that differ in any of those fields get different class names.
// The language ID does not participate.
func (m Metadata) ClassName() string {
	var out strings.Builder
	out.WriteString("mtk")
	out.WriteString(strconv.Itoa(int(m.Foreground())))

	if bg := m.Background(); bg != 0 {
		out.WriteString(" mtkbg")
		out.WriteString(strconv.Itoa(int(bg)))
	}

	fs := m.FontStyle()
	if fs.Has(Italic) {
		out.WriteString(" mtki")
	}
	if fs.Has(Bold) {
		out.WriteString(" mtkb")
	}
	if fs.Has(Underline) {
		out.WriteString(" mtku")
	}

	if tt := m.TokenType(); tt != Other {
		out.WriteString(" mtt-")
		out.WriteString(strings.ToLower(tt.String()))
	}

	return out.String()
}

// InlineStyle returns a CSS declaration list for this token, resolving its
// colors through colors.
//
// A zero background is omitted. IDs with no entry in colors resolve to the
// empty string.
func (m Metadata) InlineStyle(colors ColorMap) string {
	var out strings.Builder
	out.WriteString("color: ")
	out.WriteString(colors.Lookup(m.Foreground()))
	out.WriteString(";")

	if bg := m.Background(); bg != 0 {
		out.WriteString("background-color: ")
		out.WriteString(colors.Lookup(bg))
		out.WriteString(";")
	}

	fs := m.FontStyle()
	if fs.Has(Italic) {
		out.WriteString("font-style: italic;")
	}
	if fs.Has(Bold) {
		out.WriteString("font-weight: bold;")
	}
	if fs.Has(Underline) {
		out.WriteString("text-decoration: underline;")
	}

	return out.String()
}
