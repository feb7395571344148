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
	"fmt"

	"golang.org/x/exp/constraints" //nolint:exptostd // Needs Unsigned, which cmp lacks.
)

// Constants describing the bit fields of a [Metadata] word.
const (
	languageIDOffset = 0
	languageIDBits   = 8

	tokenTypeOffset = 8
	tokenTypeBits   = 3

	fontStyleOffset = 11
	fontStyleBits   = 3

	foregroundOffset = 14
	foregroundBits   = 9

	backgroundOffset = 23
	backgroundBits   = 9
)

// Metadata is a packed metadata word. See the package documentation for the
// layout.
//
// The zero value is a token of language 0, type [Other], no font style, and no
// colors.
type Metadata uint32

// LanguageID identifies the language or grammar a token was produced by.
type LanguageID uint8

// Encode packs the given fields into a [Metadata] word.
//
// Values wider than their field are truncated; callers are expected to
// validate ranges beforehand.
func Encode(lang LanguageID, tt TokenType, fs FontStyle, fg, bg ColorID) Metadata {
	return Metadata(
		put(lang, languageIDOffset, languageIDBits) |
			put(tt, tokenTypeOffset, tokenTypeBits) |
			put(fs, fontStyleOffset, fontStyleBits) |
			put(fg, foregroundOffset, foregroundBits) |
			put(bg, backgroundOffset, backgroundBits),
	)
}

// LanguageID extracts the language ID.
func (m Metadata) LanguageID() LanguageID {
	return get[LanguageID](m, languageIDOffset, languageIDBits)
}

// TokenType extracts the standard token type.
func (m Metadata) TokenType() TokenType {
	return get[TokenType](m, tokenTypeOffset, tokenTypeBits)
}

// FontStyle extracts the font style flags.
func (m Metadata) FontStyle() FontStyle {
	return get[FontStyle](m, fontStyleOffset, fontStyleBits)
}

// Foreground extracts the foreground color ID.
func (m Metadata) Foreground() ColorID {
	return get[ColorID](m, foregroundOffset, foregroundBits)
}

// Background extracts the background color ID. Zero means no background.
func (m Metadata) Background() ColorID {
	return get[ColorID](m, backgroundOffset, backgroundBits)
}

// WithLanguageID returns a copy of m with its language ID replaced.
func (m Metadata) WithLanguageID(lang LanguageID) Metadata {
	return m.with(put(lang, languageIDOffset, languageIDBits), languageIDOffset, languageIDBits)
}

// WithTokenType returns a copy of m with its token type replaced.
func (m Metadata) WithTokenType(tt TokenType) Metadata {
	return m.with(put(tt, tokenTypeOffset, tokenTypeBits), tokenTypeOffset, tokenTypeBits)
}

// WithFontStyle returns a copy of m with its font style replaced.
func (m Metadata) WithFontStyle(fs FontStyle) Metadata {
	return m.with(put(fs, fontStyleOffset, fontStyleBits), fontStyleOffset, fontStyleBits)
}

// WithForeground returns a copy of m with its foreground replaced.
func (m Metadata) WithForeground(fg ColorID) Metadata {
	return m.with(put(fg, foregroundOffset, foregroundBits), foregroundOffset, foregroundBits)
}

// WithBackground returns a copy of m with its background replaced.
func (m Metadata) WithBackground(bg ColorID) Metadata {
	return m.with(put(bg, backgroundOffset, backgroundBits), backgroundOffset, backgroundBits)
}

// String implements [fmt.Stringer].
func (m Metadata) String() string {
	return fmt.Sprintf(
		"{lang: %d, type: %v, style: %v, fg: %d, bg: %d}",
		m.LanguageID(), m.TokenType(), m.FontStyle(), m.Foreground(), m.Background(),
	)
}

// Format implements [fmt.Formatter].
//
// %x and %X print the raw word; every other verb prints the decoded fields.
func (m Metadata) Format(s fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(s, fmt.FormatString(s, verb), uint32(m))
	default:
		fmt.Fprint(s, m.String())
	}
}

func (m Metadata) with(field uint32, offset, bits uint) Metadata {
	return Metadata(uint32(m)&^mask(offset, bits) | field)
}

func mask(offset, bits uint) uint32 {
	return (uint32(1)<<bits - 1) << offset
}

func put[T constraints.Unsigned](v T, offset, bits uint) uint32 {
	return (uint32(v) << offset) & mask(offset, bits)
}

func get[T constraints.Unsigned](m Metadata, offset, bits uint) T {
	return T((uint32(m) & mask(offset, bits)) >> offset)
}
