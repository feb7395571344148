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

import "strings"

// FontStyle is a set of font style flags.
type FontStyle uint8

const (
	Italic FontStyle = 1 << iota
	Bold
	Underline

	// NoStyle is the empty set of flags.
	NoStyle FontStyle = 0
)

var fontStyleNames = [...]struct {
	flag FontStyle
	name string
}{
	{Italic, "Italic"},
	{Bold, "Bold"},
	{Underline, "Underline"},
}

// Has returns whether every flag in flags is set in s.
func (s FontStyle) Has(flags FontStyle) bool {
	return s&flags == flags
}

// String implements [fmt.Stringer].
//
// Set flags are joined with |; the empty set is "None".
func (s FontStyle) String() string {
	if s == NoStyle {
		return "None"
	}

	var out strings.Builder
	for _, f := range fontStyleNames {
		if !s.Has(f.flag) {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte('|')
		}
		out.WriteString(f.name)
	}
	return out.String()
}

// ParseFontStyle parses the output of [FontStyle.String].
func ParseFontStyle(text string) (FontStyle, bool) {
	if text == "None" || text == "" {
		return NoStyle, true
	}

	var s FontStyle
outer:
	for name := range strings.SplitSeq(text, "|") {
		name = strings.TrimSpace(name)
		for _, f := range fontStyleNames {
			if f.name == name {
				s |= f.flag
				continue outer
			}
		}
		return NoStyle, false
	}
	return s, true
}
