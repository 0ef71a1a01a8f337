// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package geometry

import (
	"errors"
	"fmt"
)

// ErrorKind classifies geometry parsing failures.
type ErrorKind int

const (
	// KindUnknown is an unclassified failure.
	KindUnknown ErrorKind = iota
	// KindUnrecognizedFormat means the detector reported FormatUnknown.
	KindUnrecognizedFormat
	// KindMalformedSyntax means the payload is structurally invalid for
	// its detected format.
	KindMalformedSyntax
	// KindMissingField means a required key (type, coordinates, or the
	// geometry column) is absent.
	KindMissingField
	// KindEmptyGeometry means no points were available for the envelope.
	KindEmptyGeometry
)

// ParseError carries the failure kind alongside the message so callers can
// branch without string matching.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func kindOf(err error) ErrorKind {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind
	}

	return KindUnknown
}

// IsUnrecognizedFormat reports whether err stems from an unknown encoding.
func IsUnrecognizedFormat(err error) bool {
	return kindOf(err) == KindUnrecognizedFormat
}

// IsMalformedSyntax reports whether err stems from a structurally invalid
// payload.
func IsMalformedSyntax(err error) bool {
	return kindOf(err) == KindMalformedSyntax
}

// IsMissingField reports whether err stems from an absent required key.
func IsMissingField(err error) bool {
	return kindOf(err) == KindMissingField
}

// IsEmptyGeometry reports whether err stems from a point-less geometry.
func IsEmptyGeometry(err error) bool {
	return kindOf(err) == KindEmptyGeometry
}

func malformed(message string, err error) *ParseError {
	return &ParseError{Kind: KindMalformedSyntax, Message: message, Err: err}
}
