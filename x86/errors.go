// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import "errors"

var (
	// ErrInvalidOperand indicates an operand
	// index outside 0-4.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrNotSupported indicates that an
	// operation is not valid for the
	// operand's kind.
	ErrNotSupported = errors.New("not supported")

	// ErrInvalidIndex indicates an element
	// index outside the declared data.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrRegisterOutOfRange indicates register
	// arithmetic that left the set of valid
	// registers.
	ErrRegisterOutOfRange = errors.New("register out of range")

	// ErrInvalidBinary indicates a binary
	// instruction that could not be decoded.
	ErrInvalidBinary = errors.New("invalid binary instruction")
)
