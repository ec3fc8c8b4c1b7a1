// Copyright (c) 2025, Sugarcube Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeDimensionMismatch indicates a conversion between units of
	// different dimensions with no ingredient bridge.
	ErrCodeDimensionMismatch ErrorCode = "DIMENSION_MISMATCH"
	// ErrCodeMissingIngredient indicates a cross-dimension conversion was
	// attempted on a quantity with no ingredient attached.
	ErrCodeMissingIngredient ErrorCode = "MISSING_INGREDIENT"
	// ErrCodeUnknownIngredient indicates a lookup of an unregistered ingredient name.
	ErrCodeUnknownIngredient ErrorCode = "UNKNOWN_INGREDIENT"
	// ErrCodeUnknownUnit indicates a lookup of an unregistered unit name or symbol.
	ErrCodeUnknownUnit ErrorCode = "UNKNOWN_UNIT"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
)

// StructuredError carries an error code for programmatic handling, a
// human-readable message, the underlying cause, and optional context
// for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err or any error in its chain is a
// StructuredError with the given code.
func HasCode(err error, code ErrorCode) bool {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// CodeOf returns the code of the first StructuredError in the chain,
// or ErrCodeInternal if the error carries no code.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
