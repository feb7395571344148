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

// Package store holds the tokenized lines of a whole document.
package store

import (
	"fmt"
	"iter"
	"sync"

	"github.com/tidwall/btree"

	"github.com/bufbuild/linetokens/tokens"
)

// Store maps zero-based line numbers to tokenized lines.
//
// Lines need not be contiguous: a document whose tokenizer has only reached
// some lines simply has no entry for the rest. A zero Store is empty and
// ready to use. A Store is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	tree btree.Map[int, *tokens.Line]
}

// Len returns the number of lines with tokens.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

// Get returns the tokens for the given line, if there are any.
func (s *Store) Get(line int) (*tokens.Line, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Get(line)
}

// Set replaces the tokens for the given line.
//
// Panics if line is negative or l is nil.
func (s *Store) Set(line int, l *tokens.Line) {
	if line < 0 {
		panic(fmt.Sprintf("linetokens/store: negative line number: %d", line))
	}
	if l == nil {
		panic("linetokens/store: Set() called with nil line")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Set(line, l)
}

// Delete removes the tokens for the given line. Returns whether there were
// any.
func (s *Store) Delete(line int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tree.Delete(line)
	return ok
}

// TokenAt returns a cursor at the token covering offset on the given line.
//
// Returns false if the line has no tokens.
func (s *Store) TokenAt(line, offset int) (tokens.Cursor, bool) {
	l, ok := s.Get(line)
	if !ok {
		return tokens.Cursor{}, false
	}
	return l.At(l.FindTokenIndexAtOffset(offset)), true
}

// Range returns an iterator over the lines in [from, to) that have tokens,
// in order.
//
// The iterator walks a snapshot taken when iteration begins, so it is safe to
// modify the store while iterating.
func (s *Store) Range(from, to int) iter.Seq2[int, *tokens.Line] {
	return func(yield func(int, *tokens.Line) bool) {
		type entry struct {
			n int
			l *tokens.Line
		}

		var snapshot []entry
		s.mu.RLock()
		s.tree.Ascend(from, func(n int, l *tokens.Line) bool {
			if n >= to {
				return false
			}
			snapshot = append(snapshot, entry{n, l})
			return true
		})
		s.mu.RUnlock()

		for _, e := range snapshot {
			if !yield(e.n, e.l) {
				return
			}
		}
	}
}

// Splice renumbers lines after an edit that replaced removed lines starting
// at line at with inserted new lines.
//
// Tokens for the removed lines are dropped; tokens for lines after them move
// by inserted - removed. The newly inserted lines have no tokens.
//
// Panics if any argument is negative.
func (s *Store) Splice(at, removed, inserted int) {
	if at < 0 || removed < 0 || inserted < 0 {
		panic(fmt.Sprintf("linetokens/store: invalid Splice(%d, %d, %d)", at, removed, inserted))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []int
	var moved []*tokens.Line
	s.tree.Ascend(at, func(n int, l *tokens.Line) bool {
		keys = append(keys, n)
		if n >= at+removed {
			moved = append(moved, l)
		}
		return true
	})

	for _, n := range keys {
		s.tree.Delete(n)
	}

	delta := inserted - removed
	first := len(keys) - len(moved)
	for i, l := range moved {
		s.tree.Set(keys[first+i]+delta, l)
	}
}
