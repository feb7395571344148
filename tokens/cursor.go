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

	"github.com/bufbuild/linetokens/metadata"
)

// Cursor is a position within a [Line], caching the current token's offsets
// and metadata.
//
// A Cursor is always positioned at a valid token; [Cursor.Next] and
// [Cursor.Prev] refuse to move past either end. Accessors read the cached
// snapshot, not the line.
//
// The zero Cursor is not positioned anywhere and reports no neighbors.
type Cursor struct {
	line *Line
	idx  int

	start, end int
	meta       metadata.Metadata
}

// IsZero returns whether this is the zero Cursor.
func (c *Cursor) IsZero() bool {
	return c.line == nil
}

// Line returns the line this cursor walks over.
func (c *Cursor) Line() *Line {
	return c.line
}

// Index returns the index of the current token.
func (c *Cursor) Index() int {
	return c.idx
}

// HasPrev returns whether there is a token before the current one.
func (c *Cursor) HasPrev() bool {
	return c.line != nil && c.idx > 0
}

// HasNext returns whether there is a token after the current one.
func (c *Cursor) HasNext() bool {
	return c.line != nil && c.idx+1 < c.line.Count()
}

// Prev moves to the previous token.
//
// Returns false, leaving the cursor untouched, if there is no previous token.
func (c *Cursor) Prev() bool {
	if !c.HasPrev() {
		return false
	}
	c.set(c.idx - 1)
	return true
}

// Next moves to the next token.
//
// Returns false, leaving the cursor untouched, if there is no next token.
func (c *Cursor) Next() bool {
	if !c.HasNext() {
		return false
	}
	c.set(c.idx + 1)
	return true
}

// Seek moves the cursor to the i-th token.
//
// Returns false, leaving the cursor untouched, if i is out of bounds.
func (c *Cursor) Seek(i int) bool {
	if c.line == nil || i < 0 || i >= c.line.Count() {
		return false
	}
	c.set(i)
	return true
}

// Clone returns an independent copy of this cursor.
func (c *Cursor) Clone() Cursor {
	return *c
}

// StartOffset returns the start offset of the current token.
func (c *Cursor) StartOffset() int {
	return c.start
}

// EndOffset returns the end offset of the current token.
func (c *Cursor) EndOffset() int {
	return c.end
}

// Metadata returns the packed metadata of the current token.
func (c *Cursor) Metadata() metadata.Metadata {
	return c.meta
}

// LanguageID returns the language of the current token.
func (c *Cursor) LanguageID() metadata.LanguageID {
	return c.meta.LanguageID()
}

// TokenType returns the standard token type of the current token.
func (c *Cursor) TokenType() metadata.TokenType {
	return c.meta.TokenType()
}

// FontStyle returns the font style of the current token.
func (c *Cursor) FontStyle() metadata.FontStyle {
	return c.meta.FontStyle()
}

// Foreground returns the foreground color of the current token.
func (c *Cursor) Foreground() metadata.ColorID {
	return c.meta.Foreground()
}

// Background returns the background color of the current token.
func (c *Cursor) Background() metadata.ColorID {
	return c.meta.Background()
}

// Text returns the text of the current token.
func (c *Cursor) Text() string {
	if c.line == nil {
		return ""
	}
	return c.line.text[c.start:c.end]
}

// ViewToken returns the current token as a [ViewToken] in the line's own
// coordinates.
func (c *Cursor) ViewToken() ViewToken {
	return ViewToken{Start: c.start, End: c.end, Metadata: c.meta}
}

// String implements [fmt.Stringer].
func (c *Cursor) String() string {
	if c.line == nil {
		return "Cursor(<zero>)"
	}
	return fmt.Sprintf("Cursor(%d: [%d, %d) %q)", c.idx, c.start, c.end, c.Text())
}

func (c *Cursor) set(i int) {
	c.start = c.line.StartOffset(i)
	c.end = c.line.EndOffset(i)
	c.meta = c.line.Metadata(i)
	c.idx = i
}
