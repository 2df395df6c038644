// Copyright 2026 The ift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package ift

import (
	"fmt"
	"strconv"

	"github.com/ift-go/ift/pkg/private/serrors"
)

var (
	// ErrSyntax is matched by all parse errors.
	ErrSyntax = serrors.New("syntax error")
	// ErrUnknownArgument indicates a flag or sort attribute that is not
	// supported.
	ErrUnknownArgument = serrors.New("unknown argument")
	// ErrCollaborator indicates that the interface enumeration or the default
	// route lookup failed.
	ErrCollaborator = serrors.New("collaborator failed")
)

// SyntaxError describes where a template fails to parse.
type SyntaxError struct {
	// Pos is the byte offset of the failure.
	Pos int
	// Text is the unconsumed input starting at Pos. It is empty if the
	// parser reached the end of the input.
	Text string
	// Msg describes what the parser expected.
	Msg string
}

func (e *SyntaxError) Error() string {
	text := "end of input"
	if e.Text != "" {
		text = strconv.Quote(e.Text)
	}
	return fmt.Sprintf("syntax error at offset %d: %s: %s", e.Pos, e.Msg, text)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
