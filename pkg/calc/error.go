// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-calcconv/pkg/util/source"
)

// Kind classifies the cause of a failed conversion.
type Kind uint8

// Kinds of conversion failure.
const (
	KindUnknown Kind = iota
	KindUnmatchedDelimiter
	KindUnknownFunction
	KindMalformedReference
	KindMalformedCall
)

func (k Kind) String() string {
	switch k {
	case KindUnmatchedDelimiter:
		return "unmatched delimiter"
	case KindUnknownFunction:
		return "unknown function"
	case KindMalformedReference:
		return "malformed reference"
	case KindMalformedCall:
		return "malformed call"
	default:
		return "unknown"
	}
}

// UnknownFunctionError is reported for a call to a function which has no entry
// in the function table.
type UnknownFunctionError struct {
	Name string
	span source.Span
}

// Span identifies the function name within the expression.
func (e *UnknownFunctionError) Span() source.Span {
	return e.span
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

// MalformedReferenceError is reported for a bracket or quote structure which
// matches neither reference convention.
type MalformedReferenceError struct {
	Text   string
	Reason string
	span   source.Span
}

// Span identifies the offending text within the expression.
func (e *MalformedReferenceError) Span() source.Span {
	return e.span
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed reference %q (%s)", e.Text, e.Reason)
}

// MalformedCallError is reported for a call to the power function which does
// not have exactly two arguments.
type MalformedCallError struct {
	Name  string
	Arity int
	span  source.Span
}

// Span identifies the call within the expression.
func (e *MalformedCallError) Span() source.Span {
	return e.span
}

func (e *MalformedCallError) Error() string {
	return fmt.Sprintf("%s expects 2 arguments, found %d", e.Name, e.Arity)
}

// Frame is one paragraph of context attached to an error: a message, and an
// optional payload rendered indented beneath it.
type Frame struct {
	Message string
	Payload string
}

func (f Frame) String() string {
	if f.Payload == "" {
		return f.Message
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(f.Message)
	//
	for _, line := range strings.Split(f.Payload, "\n") {
		builder.WriteString("\n")
		//
		if line != "" {
			builder.WriteString("    ")
			builder.WriteString(line)
		}
	}
	//
	return builder.String()
}

// TranspileError is returned whenever an expression cannot be converted.  It
// retains the original expression and the underlying cause, along with an
// ordered list of context frames which callers may extend as the error
// propagates outwards.
type TranspileError struct {
	// Expression which failed to convert.
	Expression string
	// Text being scanned when the cause arose.  Since passes run one after the
	// other, this may differ from the original expression.
	Text string
	// Underlying cause.
	Cause  error
	frames []Frame
}

func newTranspileError(expr string, text string, cause error) *TranspileError {
	return &TranspileError{expr, text, cause, []Frame{
		{"Unable to convert expression:", expr},
		{"Error:", cause.Error()},
	}}
}

// Wrap appends a context frame, returning the error itself for chaining.
func (e *TranspileError) Wrap(message string, payload string) *TranspileError {
	e.frames = append(e.frames, Frame{message, payload})
	return e
}

// Frames returns the context frames of this error, innermost first.
func (e *TranspileError) Frames() []Frame {
	return e.frames
}

// Kind classifies the underlying cause of this error.
func (e *TranspileError) Kind() Kind {
	var (
		unmatched  *source.UnmatchedDelimiterError
		unknown    *UnknownFunctionError
		malformed  *MalformedReferenceError
		badPowCall *MalformedCallError
	)
	//
	switch {
	case errors.As(e.Cause, &unmatched):
		return KindUnmatchedDelimiter
	case errors.As(e.Cause, &unknown):
		return KindUnknownFunction
	case errors.As(e.Cause, &malformed):
		return KindMalformedReference
	case errors.As(e.Cause, &badPowCall):
		return KindMalformedCall
	default:
		return KindUnknown
	}
}

// Span returns the region of Text at fault, if the cause records one.
func (e *TranspileError) Span() (source.Span, bool) {
	var spanned interface{ Span() source.Span }
	//
	if errors.As(e.Cause, &spanned) {
		return spanned.Span(), true
	}
	//
	return source.Span{}, false
}

// Unwrap provides access to the underlying cause.
func (e *TranspileError) Unwrap() error {
	return e.Cause
}

func (e *TranspileError) Error() string {
	paragraphs := make([]string, len(e.frames))
	for i, f := range e.frames {
		paragraphs[i] = f.String()
	}
	//
	return strings.Join(paragraphs, "\n")
}
