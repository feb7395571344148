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
	"iter"

	"github.com/bufbuild/linetokens/metadata"
)

// ViewToken is a token materialized out of a [Line], with absolute offsets.
//
// Unlike the indices a [Line] hands out, a ViewToken does not refer back to
// its line, so it remains meaningful after its offsets have been shifted into
// another coordinate space (for example, a wrapped view line).
type ViewToken struct {
	Start, End int
	Metadata   metadata.Metadata
}

// Len returns the length of this token's range.
func (t ViewToken) Len() int {
	return t.End - t.Start
}

// LanguageID returns the language of this token.
func (t ViewToken) LanguageID() metadata.LanguageID { return t.Metadata.LanguageID() }

// TokenType returns the standard token type of this token.
func (t ViewToken) TokenType() metadata.TokenType { return t.Metadata.TokenType() }

// FontStyle returns the font style of this token.
func (t ViewToken) FontStyle() metadata.FontStyle { return t.Metadata.FontStyle() }

// Foreground returns the foreground color of this token.
func (t ViewToken) Foreground() metadata.ColorID { return t.Metadata.Foreground() }

// Background returns the background color of this token.
func (t ViewToken) Background() metadata.ColorID { return t.Metadata.Background() }

// String implements [fmt.Stringer].
func (t ViewToken) String() string {
	return fmt.Sprintf("[%d, %d) %v", t.Start, t.End, t.Metadata)
}

// SliceAndInflate materializes the tokens overlapping [start, end) as
// [ViewToken]s, shifted by delta.
//
// Tokens that straddle start or end are clipped to the range. Tokens wholly
// outside of the range, and tokens that would be empty after clipping, are
// omitted.
func (l *Line) SliceAndInflate(start, end, delta int) []ViewToken {
	if start >= end {
		return nil
	}

	var out []ViewToken
	for i := l.FindTokenIndexAtOffset(start); i < l.Count(); i++ {
		tokStart := l.StartOffset(i)
		if tokStart >= end {
			break
		}

		a, b := max(tokStart, start), min(l.EndOffset(i), end)
		if a >= b {
			continue
		}

		out = append(out, ViewToken{
			Start:    a + delta,
			End:      b + delta,
			Metadata: l.Metadata(i),
		})
	}
	return out
}

// Inflate materializes every non-empty token in the line.
func (l *Line) Inflate() []ViewToken {
	return l.SliceAndInflate(0, len(l.text), 0)
}

// All returns an iterator over every token in this line and its index,
// including the empty token of an empty line.
func (l *Line) All() iter.Seq2[int, ViewToken] {
	return func(yield func(int, ViewToken) bool) {
		for i := range l.Count() {
			tok := ViewToken{
				Start:    l.StartOffset(i),
				End:      l.EndOffset(i),
				Metadata: l.Metadata(i),
			}
			if !yield(i, tok) {
				return
			}
		}
	}
}
