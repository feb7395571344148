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

// Package metadata packs the rendering metadata of a single token into one
// 32-bit word.
//
// # Layout
//
// The word is split into five independent bit fields:
//
//	 31       23 22      14 13 11 10  8 7        0
//	+----------+----------+-----+-----+----------+
//	|    bg    |    fg    | fs  | tt  |   lang   |
//	+----------+----------+-----+-----+----------+
//
// lang is the [LanguageID] (8 bits), tt is the [TokenType] (3 bits), fs holds
// the [FontStyle] flags (3 bits), and fg and bg are [ColorID]s (9 bits each)
// indexing into a [ColorMap].
//
// This layout is shared with anything that persists packed words, so changing
// any offset or width is a breaking format change.
package metadata

//go:generate go run github.com/bufbuild/linetokens/internal/enum token_type.yaml
