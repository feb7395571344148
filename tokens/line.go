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

package tokens

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/linetokens/metadata"
)

// Line is an immutable tokenized line of text.
//
// A nil *Line is not valid; construct one with [New], [MustNew], [Single], or
// a [Builder].
type Line struct {
	text string

	// Two words per token: end offset, then metadata.
	words []uint32
}

// New wraps text and its tokens in a [Line].
//
// The Line takes ownership of tokens; the caller must not modify it
// afterwards. Returns an [*InvariantError] if the tokens do not tile text.
func New(text string, tokens EndOffsets) (*Line, error) {
	if err := tokens.validate(len(text)); err != nil {
		return nil, err
	}
	return &Line{text: text, words: tokens}, nil
}

// MustNew is like [New], but panics on error.
func MustNew(text string, tokens EndOffsets) *Line {
	line, err := New(text, tokens)
	if err != nil {
		panic(fmt.Sprintf("linetokens/tokens: %v", err))
	}
	return line
}

// Single returns a [Line] consisting of a single token that spans all of
// text.
func Single(text string, meta metadata.Metadata) *Line {
	checkTextLen(len(text))
	return &Line{text: text, words: []uint32{uint32(len(text)), uint32(meta)}}
}

// Text returns the line's text.
func (l *Line) Text() string {
	return l.text
}

// Count returns the number of tokens in this line.
func (l *Line) Count() int {
	return len(l.words) / 2
}

// Words returns a copy of the packed token array, in the layout accepted by
// [New].
func (l *Line) Words() EndOffsets {
	return slices.Clone(EndOffsets(l.words))
}

// StartOffset returns the offset at which the i-th token begins.
//
// Panics if i is out of bounds.
func (l *Line) StartOffset(i int) int {
	if i == 0 {
		return 0
	}
	return int(l.words[2*(i-1)])
}

// EndOffset returns the offset at which the i-th token ends, exclusive.
//
// Panics if i is out of bounds.
func (l *Line) EndOffset(i int) int {
	return int(l.words[2*i])
}

// Metadata returns the packed metadata of the i-th token.
//
// Panics if i is out of bounds.
func (l *Line) Metadata(i int) metadata.Metadata {
	return metadata.Metadata(l.words[2*i+1])
}

// LanguageID returns the language of the i-th token.
func (l *Line) LanguageID(i int) metadata.LanguageID {
	return l.Metadata(i).LanguageID()
}

// TokenType returns the standard token type of the i-th token.
func (l *Line) TokenType(i int) metadata.TokenType {
	return l.Metadata(i).TokenType()
}

// FontStyle returns the font style of the i-th token.
func (l *Line) FontStyle(i int) metadata.FontStyle {
	return l.Metadata(i).FontStyle()
}

// Foreground returns the foreground color of the i-th token.
func (l *Line) Foreground(i int) metadata.ColorID {
	return l.Metadata(i).Foreground()
}

// Background returns the background color of the i-th token.
func (l *Line) Background(i int) metadata.ColorID {
	return l.Metadata(i).Background()
}

// ClassName returns the class name of the i-th token; see
// [metadata.Metadata.ClassName].
func (l *Line) ClassName(i int) string {
	return l.Metadata(i).ClassName()
}

// InlineStyle returns the inline style of the i-th token; see
// [metadata.Metadata.InlineStyle].
func (l *Line) InlineStyle(i int, colors metadata.ColorMap) string {
	return l.Metadata(i).InlineStyle(colors)
}

// TokenText returns the text of the i-th token.
func (l *Line) TokenText(i int) string {
	return l.text[l.StartOffset(i):l.EndOffset(i)]
}

// DisplayWidth returns the number of terminal cells the i-th token's text
// occupies, counting grapheme clusters rather than bytes.
func (l *Line) DisplayWidth(i int) int {
	return uniseg.StringWidth(l.TokenText(i))
}

// FindTokenIndexAtOffset returns the index of the token whose range contains
// offset.
//
// An offset that falls on a boundary between two tokens belongs to the token
// that starts there. Offsets at or before zero map to the first token, and
// offsets at or past the end of the line map to the last.
func (l *Line) FindTokenIndexAtOffset(offset int) int {
	n := l.Count()
	if offset <= 0 || n <= 1 {
		return 0
	}
	if offset >= len(l.text) {
		return n - 1
	}

	// The last token always contains offset if no earlier one does, so it is
	// left out of the search.
	return sort.Search(n-1, func(i int) bool {
		return int(l.words[2*i]) > offset
	})
}

// Equal returns whether l and that have the same text and bit-identical
// token arrays.
func (l *Line) Equal(that *Line) bool {
	if l == that {
		return true
	}
	if l == nil || that == nil {
		return false
	}
	return l.text == that.text && slices.Equal(l.words, that.words)
}

// First returns a cursor at the first token.
//
// Returns false if the line's text is empty.
func (l *Line) First() (Cursor, bool) {
	if l.text == "" {
		return Cursor{}, false
	}
	return l.At(0), true
}

// Last returns a cursor at the last token.
//
// Returns false if the line's text is empty.
func (l *Line) Last() (Cursor, bool) {
	if l.text == "" {
		return Cursor{}, false
	}
	return l.At(l.Count() - 1), true
}

// At returns a cursor at the i-th token.
//
// Panics if i is out of bounds.
func (l *Line) At(i int) Cursor {
	c := Cursor{line: l}
	c.set(i)
	return c
}

// Format implements [fmt.Formatter].
//
// %v prints one token per entry, as [start, end) followed by the quoted text;
// %+v additionally prints each token's metadata.
func (l *Line) Format(s fmt.State, verb rune) {
	l.write(s, verb == 'v' && s.Flag('+'))
}

// String implements [fmt.Stringer].
func (l *Line) String() string {
	var out strings.Builder
	l.write(&out, false)
	return out.String()
}

func (l *Line) write(w io.Writer, withMeta bool) {
	if l == nil {
		io.WriteString(w, "<nil>")
		return
	}

	io.WriteString(w, "[")
	for i := range l.Count() {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		fmt.Fprintf(w, "[%d, %d) %q", l.StartOffset(i), l.EndOffset(i), l.TokenText(i))
		if withMeta {
			fmt.Fprintf(w, " %v", l.Metadata(i))
		}
	}
	io.WriteString(w, "]")
}
