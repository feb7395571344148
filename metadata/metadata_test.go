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

package metadata_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bufbuild/linetokens/metadata"
)

func drawFields(t *rapid.T) (metadata.LanguageID, metadata.TokenType, metadata.FontStyle, metadata.ColorID, metadata.ColorID) {
	lang := metadata.LanguageID(rapid.IntRange(0, 0xff).Draw(t, "lang"))
	tt := rapid.SampledFrom([]metadata.TokenType{
		metadata.Other, metadata.Comment, metadata.String, metadata.RegEx,
	}).Draw(t, "type")
	fs := metadata.FontStyle(rapid.IntRange(0, 0b111).Draw(t, "style"))
	fg := metadata.ColorID(rapid.IntRange(0, 0x1ff).Draw(t, "fg"))
	bg := metadata.ColorID(rapid.IntRange(0, 0x1ff).Draw(t, "bg"))
	return lang, tt, fs, fg, bg
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		lang, tt, fs, fg, bg := drawFields(t)
		m := metadata.Encode(lang, tt, fs, fg, bg)

		require.Equal(t, lang, m.LanguageID())
		require.Equal(t, tt, m.TokenType())
		require.Equal(t, fs, m.FontStyle())
		require.Equal(t, fg, m.Foreground())
		require.Equal(t, bg, m.Background())
	})
}

func TestWith(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		lang, tt, fs, fg, bg := drawFields(t)
		m := metadata.Encode(lang, tt, fs, fg, bg)

		fg2 := metadata.ColorID(rapid.IntRange(0, 0x1ff).Draw(t, "fg2"))
		require.Equal(t, metadata.Encode(lang, tt, fs, fg2, bg), m.WithForeground(fg2))

		bg2 := metadata.ColorID(rapid.IntRange(0, 0x1ff).Draw(t, "bg2"))
		require.Equal(t, metadata.Encode(lang, tt, fs, fg, bg2), m.WithBackground(bg2))

		lang2 := metadata.LanguageID(rapid.IntRange(0, 0xff).Draw(t, "lang2"))
		require.Equal(t, metadata.Encode(lang2, tt, fs, fg, bg), m.WithLanguageID(lang2))

		require.Equal(t, metadata.Encode(lang, metadata.Comment, fs, fg, bg), m.WithTokenType(metadata.Comment))
		require.Equal(t, metadata.Encode(lang, tt, metadata.Bold, fg, bg), m.WithFontStyle(metadata.Bold))
	})
}

func TestLayout(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(metadata.Metadata(0x0000_00ff), metadata.Encode(0xff, 0, 0, 0, 0))
	assert.Equal(metadata.Metadata(0x0000_0400), metadata.Encode(0, metadata.RegEx, 0, 0, 0))
	assert.Equal(metadata.Metadata(0x0000_3800), metadata.Encode(0, 0, 0b111, 0, 0))
	assert.Equal(metadata.Metadata(0x007f_c000), metadata.Encode(0, 0, 0, 0x1ff, 0))
	assert.Equal(metadata.Metadata(0xff80_0000), metadata.Encode(0, 0, 0, 0, 0x1ff))
}

func TestTruncation(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Oversized fields lose their high bits and do not bleed into neighbors.
	m := metadata.Encode(0, 0, 0, 0x3ff, 0)
	assert.Equal(metadata.ColorID(0x1ff), m.Foreground())
	assert.Equal(metadata.ColorID(0), m.Background())

	m = metadata.Encode(0, metadata.TokenType(0xf), 0, 0, 0)
	assert.Equal(metadata.TokenType(0x7), m.TokenType())
	assert.Equal(metadata.NoStyle, m.FontStyle())
}

func TestClassName(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("mtk0", metadata.Metadata(0).ClassName())
	assert.Equal("mtk5", metadata.Encode(3, metadata.Other, 0, 5, 0).ClassName())
	assert.Equal(
		"mtk5 mtkbg2 mtki mtkb mtku mtt-comment",
		metadata.Encode(3, metadata.Comment, metadata.Italic|metadata.Bold|metadata.Underline, 5, 2).ClassName(),
	)
	assert.Equal("mtk1 mtt-regex", metadata.Encode(0, metadata.RegEx, 0, 1, 0).ClassName())

	// Language does not participate.
	assert.Equal(
		metadata.Encode(1, metadata.String, metadata.Bold, 7, 0).ClassName(),
		metadata.Encode(2, metadata.String, metadata.Bold, 7, 0).ClassName(),
	)
}

func TestClassNameDistinct(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		_, tt1, fs1, fg1, bg1 := drawFields(t)
		_, tt2, fs2, fg2, bg2 := drawFields(t)
		a := metadata.Encode(0, tt1, fs1, fg1, bg1)
		b := metadata.Encode(0, tt2, fs2, fg2, bg2)

		if a == b {
			require.Equal(t, a.ClassName(), b.ClassName())
		} else {
			require.NotEqual(t, a.ClassName(), b.ClassName())
		}
	})
}

func TestInlineStyle(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	colors := metadata.ColorMap{"", "#000000", "#ff0000", "#00ff00"}

	assert.Equal("color: #ff0000;", metadata.Encode(0, 0, 0, 2, 0).InlineStyle(colors))
	assert.Equal(
		"color: #000000;background-color: #00ff00;font-style: italic;font-weight: bold;text-decoration: underline;",
		metadata.Encode(0, 0, metadata.Italic|metadata.Bold|metadata.Underline, 1, 3).InlineStyle(colors),
	)
	// Unknown IDs do not panic.
	assert.Equal("color: ;background-color: ;", metadata.Encode(0, 0, 0, 100, 200).InlineStyle(colors))
	assert.Equal("color: ;", metadata.Metadata(0).InlineStyle(nil))
}

func TestStrings(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("Comment", metadata.Comment.String())
	assert.Equal("TokenType(3)", metadata.TokenType(3).String())
	assert.Equal("metadata.RegEx", fmt.Sprintf("%#v", metadata.RegEx))

	tt, ok := metadata.ParseTokenType("String")
	assert.True(ok)
	assert.Equal(metadata.String, tt)
	_, ok = metadata.ParseTokenType("Keyword")
	assert.False(ok)

	assert.Equal("None", metadata.NoStyle.String())
	assert.Equal("Italic|Underline", (metadata.Italic | metadata.Underline).String())
	fs, ok := metadata.ParseFontStyle("Bold|Italic")
	assert.True(ok)
	assert.Equal(metadata.Bold|metadata.Italic, fs)
	_, ok = metadata.ParseFontStyle("Bold|Wavy")
	assert.False(ok)

	m := metadata.Encode(1, metadata.Comment, metadata.Bold, 5, 0)
	assert.Equal("{lang: 1, type: Comment, style: Bold, fg: 5, bg: 0}", m.String())
	assert.Equal("{lang: 1, type: Comment, style: Bold, fg: 5, bg: 0}", fmt.Sprint(m))
	assert.Equal("15101", fmt.Sprintf("%x", m))
}
