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

	"github.com/bufbuild/linetokens/internal/ext/slicesx"
	"github.com/bufbuild/linetokens/metadata"
)

// Builder assembles a [Line] one token at a time.
//
// The zero Builder is not usable; construct one with [NewBuilder].
type Builder struct {
	text  string
	words []uint32
	built bool
}

// NewBuilder returns a builder for a line with the given text.
func NewBuilder(text string) *Builder {
	checkTextLen(len(text))
	return &Builder{text: text}
}

// Push appends a token of the given length, starting where the previous one
// ended.
//
// Panics if the token would overflow the text, or if [Builder.Build] has
// already been called.
func (b *Builder) Push(length int, meta metadata.Metadata) *Builder {
	if b.built {
		panic("linetokens/tokens: Push() called after Build()")
	}

	prevEnd := b.end()
	if length < 0 || length > len(b.text)-prevEnd {
		panic(fmt.Sprintf("linetokens/tokens: Push() overflowed backing text: %d + %d > %d", prevEnd, length, len(b.text)))
	}

	b.words = append(b.words, uint32(prevEnd+length), uint32(meta))
	return b
}

// Build finishes the line.
//
// If the pushed tokens do not reach the end of the text, the remainder is
// covered by a token with zero metadata. An empty builder produces a single
// token spanning the whole line.
func (b *Builder) Build() (*Line, error) {
	b.built = true
	if rest := len(b.text) - b.end(); rest > 0 || len(b.words) == 0 {
		b.words = append(b.words, uint32(len(b.text)), 0)
	}
	return New(b.text, b.words)
}

func (b *Builder) end() int {
	if len(b.words) == 0 {
		return 0
	}
	end, _ := slicesx.Get(b.words, len(b.words)-2)
	return int(end)
}
