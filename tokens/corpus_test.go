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

package tokens_test

import (
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/linetokens/internal/corpora"
	"github.com/bufbuild/linetokens/metadata"
	"github.com/bufbuild/linetokens/tokens"
)

// corpusCase is the schema of the files in testdata.
type corpusCase struct {
	Text string `yaml:"text"`
	// One of "ends", "lengths", or "starts"; says how to interpret Tokens[].At.
	Form   string   `yaml:"form"`
	Colors []string `yaml:"colors"`
	Tokens []struct {
		At    uint32 `yaml:"at"`
		Lang  uint8  `yaml:"lang"`
		Type  string `yaml:"type"`
		Style string `yaml:"style"`
		FG    uint16 `yaml:"fg"`
		BG    uint16 `yaml:"bg"`
	} `yaml:"tokens"`
	Find   []int   `yaml:"find"`
	Slices [][]int `yaml:"slices"`
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "LINETOKENS_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "tokens"},
			{Extension: "find"},
			{Extension: "slices"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var tc corpusCase
			if err := yaml.Unmarshal([]byte(text), &tc); err != nil {
				t.Fatalf("parsing %s: %v", path, err)
			}

			line, err := buildCase(t, tc)
			if err != nil {
				return []string{fmt.Sprintf("error: %v\n", err), "", ""}
			}

			return []string{
				dumpTokens(line, tc.Colors),
				dumpFind(line, tc.Find),
				dumpSlices(t, line, tc.Slices),
			}
		},
	}.Run(t)
}

func buildCase(t *testing.T, tc corpusCase) (*tokens.Line, error) {
	words := make([]uint32, 0, 2*len(tc.Tokens))
	for _, tok := range tc.Tokens {
		tt := metadata.Other
		if tok.Type != "" {
			var ok bool
			if tt, ok = metadata.ParseTokenType(tok.Type); !ok {
				t.Fatalf("unknown token type %q", tok.Type)
			}
		}
		fs, ok := metadata.ParseFontStyle(tok.Style)
		if !ok {
			t.Fatalf("unknown font style %q", tok.Style)
		}

		meta := metadata.Encode(
			metadata.LanguageID(tok.Lang), tt, fs,
			metadata.ColorID(tok.FG), metadata.ColorID(tok.BG),
		)
		words = append(words, tok.At, uint32(meta))
	}

	var ends tokens.EndOffsets
	switch tc.Form {
	case "", "ends":
		ends = words
	case "lengths":
		ends = tokens.Lengths(words).EndOffsets(len(tc.Text))
	case "starts":
		ends = tokens.Starts(words).EndOffsets(len(tc.Text))
	default:
		t.Fatalf("unknown form %q", tc.Form)
	}

	return tokens.New(tc.Text, ends)
}

func dumpTokens(line *tokens.Line, colors metadata.ColorMap) string {
	var out strings.Builder

	index := func(c tokens.Cursor, ok bool) string {
		if !ok {
			return "none"
		}
		return fmt.Sprint(c.Index())
	}
	fmt.Fprintf(&out, "count=%d first=%s last=%s\n",
		line.Count(), index(line.First()), index(line.Last()))

	for i := range line.Count() {
		fmt.Fprintf(&out, "%d [%d, %d) %q class=%q style=%q width=%d\n",
			i, line.StartOffset(i), line.EndOffset(i), line.TokenText(i),
			line.ClassName(i), line.InlineStyle(i, colors), line.DisplayWidth(i))
	}
	return out.String()
}

func dumpFind(line *tokens.Line, offsets []int) string {
	var out strings.Builder
	for _, offset := range offsets {
		fmt.Fprintf(&out, "%d -> %d\n", offset, line.FindTokenIndexAtOffset(offset))
	}
	return out.String()
}

func dumpSlices(t *testing.T, line *tokens.Line, slices [][]int) string {
	var out strings.Builder
	for _, s := range slices {
		if len(s) != 3 {
			t.Fatalf("slice must be [start, end, delta], got %v", s)
		}

		fmt.Fprintf(&out, "slice(%d, %d, %d):\n", s[0], s[1], s[2])
		view := line.SliceAndInflate(s[0], s[1], s[2])
		if len(view) == 0 {
			out.WriteString("  (none)\n")
		}
		for _, tok := range view {
			fmt.Fprintf(&out, "  %v\n", tok)
		}
	}
	return out.String()
}
