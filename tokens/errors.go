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
	"errors"
	"fmt"
)

// ErrMalformed is the error wrapped by every [*InvariantError].
var ErrMalformed = errors.New("malformed token buffer")

// InvariantError is returned by [New] when its input does not tile the line.
type InvariantError struct {
	// The token that violates the invariant, or -1 if the problem is with the
	// buffer as a whole.
	Token  int
	Reason string
}

// Error implements [error].
func (e *InvariantError) Error() string {
	if e.Token < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformed, e.Reason)
	}
	return fmt.Sprintf("%v: token %d: %s", ErrMalformed, e.Token, e.Reason)
}

// Unwrap returns [ErrMalformed].
func (e *InvariantError) Unwrap() error {
	return ErrMalformed
}

func malformed(token int, format string, args ...any) error {
	return &InvariantError{Token: token, Reason: fmt.Sprintf(format, args...)}
}
