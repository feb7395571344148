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

// Package tokens provides a memory-efficient representation of one tokenized
// line of text.
//
// # Representation
//
// A [Line] stores its tokens as a flat []uint32 holding two words per token:
// the token's end offset (exclusive) followed by its packed
// [metadata.Metadata]. A token's start is implicitly the end of the previous
// token, so the tokens always tile the line with no gaps or overlaps, and the
// last end offset is the length of the text.
//
// Offsets are byte offsets into the line's UTF-8 text.
//
// Upstream tokenizers often produce token lengths or token start offsets
// rather than end offsets. [Lengths] and [Starts] describe those layouts, and
// convert in place to [EndOffsets], which is the only layout [New] accepts.
//
// # Traversal
//
// [Line.FindTokenIndexAtOffset] locates a token by offset with a binary
// search. A [Cursor] walks tokens one at a time, caching the current token's
// offsets and metadata. [Line.SliceAndInflate] materializes a range of the
// line as standalone [ViewToken]s in a shifted coordinate space, for use by a
// renderer.
//
// A Line is never mutated after construction and may be read from many
// goroutines at once. Cursors are not safe for concurrent use; use
// [Cursor.Clone] to fork a traversal.
package tokens
