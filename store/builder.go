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

package store

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/linetokens/tokens"
)

// Form is the layout of the words in a [Raw] line.
type Form int

const (
	EndOffsets Form = iota // Even words are end offsets; see [tokens.EndOffsets].
	Lengths                // Even words are token lengths; see [tokens.Lengths].
	Starts                 // Even words are start offsets; see [tokens.Starts].
)

// String implements [fmt.Stringer].
func (f Form) String() string {
	switch f {
	case EndOffsets:
		return "EndOffsets"
	case Lengths:
		return "Lengths"
	case Starts:
		return "Starts"
	default:
		return fmt.Sprintf("store.Form(%d)", int(f))
	}
}

// Raw is a line of tokenizer output that has not been validated yet.
type Raw struct {
	Line  int
	Text  string
	Form  Form
	Words []uint32
}

// Builder constructs a [Store] from raw tokenizer output.
type Builder struct {
	// The maximum number of lines to validate concurrently. If non-positive,
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
}

// Build validates every raw line and collects the results into a new
// [Store].
//
// Build takes ownership of each Raw's Words, which may be rewritten in place.
// If two entries share a line number, the later one wins.
//
// Returns the first validation error encountered, annotated with its line
// number, or the context's error if it is cancelled first.
func (b *Builder) Build(ctx context.Context, raws []Raw) (*Store, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := b.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	var (
		wg       sync.WaitGroup
		failOnce sync.Once
		failure  error
	)
	fail := func(err error) {
		failOnce.Do(func() {
			failure = err
			cancel()
		})
	}

	lines := make([]*tokens.Line, len(raws))
	for i := range raws {
		if err := sem.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			line, err := raws[i].build()
			if err != nil {
				fail(fmt.Errorf("line %d: %w", raws[i].Line, err))
				return
			}
			lines[i] = line
		}()
	}
	wg.Wait()

	if failure != nil {
		return nil, failure
	}

	s := new(Store)
	for i, line := range lines {
		s.Set(raws[i].Line, line)
	}
	return s, nil
}

func (r Raw) build() (*tokens.Line, error) {
	if r.Line < 0 {
		return nil, errors.New("negative line number")
	}

	var ends tokens.EndOffsets
	switch r.Form {
	case EndOffsets:
		ends = r.Words
	case Lengths:
		ends = tokens.Lengths(r.Words).EndOffsets(len(r.Text))
	case Starts:
		ends = tokens.Starts(r.Words).EndOffsets(len(r.Text))
	default:
		return nil, fmt.Errorf("unknown form %v", r.Form)
	}
	return tokens.New(r.Text, ends)
}
