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
	"math"
)

// EndOffsets is a flat token array whose even words are exclusive end offsets
// and whose odd words are packed metadata.
type EndOffsets []uint32

// Lengths is a flat token array whose even words are token lengths and whose
// odd words are packed metadata.
type Lengths []uint32

// Starts is a flat token array whose even words are token start offsets and
// whose odd words are packed metadata.
type Starts []uint32

// EndOffsets rewrites l in place so that its even words hold cumulative end
// offsets, and returns the same memory as [EndOffsets]. l must not be used
// afterwards.
//
// The last token's end is set to textLen regardless of its recorded length.
//
// Panics if textLen does not fit in a uint32.
func (l Lengths) EndOffsets(textLen int) EndOffsets {
	checkTextLen(textLen)

	n := len(l) / 2
	var end uint32
	for i := range n {
		end += l[2*i]
		l[2*i] = end
	}
	if n > 0 {
		l[2*(n-1)] = uint32(textLen)
	}
	return EndOffsets(l)
}

// EndOffsets rewrites s in place so that its even words hold end offsets, and
// returns the same memory as [EndOffsets]. s must not be used afterwards.
//
// Every token's end is the next token's start; the last token's end is
// textLen.
//
// Panics if textLen does not fit in a uint32.
func (s Starts) EndOffsets(textLen int) EndOffsets {
	checkTextLen(textLen)

	n := len(s) / 2
	for i := range n - 1 {
		s[2*i] = s[2*(i+1)]
	}
	if n > 0 {
		s[2*(n-1)] = uint32(textLen)
	}
	return EndOffsets(s)
}

// Count returns the number of tokens in e.
func (e EndOffsets) Count() int {
	return len(e) / 2
}

// validate checks that e tiles a line of length textLen.
func (e EndOffsets) validate(textLen int) error {
	if len(e)%2 != 0 {
		return malformed(-1, "odd number of words: %d", len(e))
	}

	n := e.Count()
	switch {
	case n == 0:
		return malformed(-1, "no tokens")
	case textLen == 0:
		if n != 1 || e[0] != 0 {
			return malformed(-1, "empty line must have exactly one empty token")
		}
		return nil
	}

	var prev uint32
	for i := range n {
		end := e[2*i]
		if end <= prev {
			return malformed(i, "end offset %d does not follow %d", end, prev)
		}
		prev = end
	}

	if int(prev) != textLen {
		return malformed(n-1, "last end offset is %d, but the text has length %d", prev, textLen)
	}
	return nil
}

func checkTextLen(textLen int) {
	if textLen < 0 || uint64(textLen) > math.MaxUint32 {
		panic(fmt.Sprintf("linetokens/tokens: invalid text length: %d", textLen))
	}
}
