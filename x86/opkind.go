// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// OpKind describes how an instruction
// operand is stored.
type OpKind uint8

const (
	OpKindRegister        OpKind = iota // A register, see Instruction.OpRegister.
	OpKindNearBranch16                  // A 16-bit near branch target.
	OpKindNearBranch32                  // A 32-bit near branch target.
	OpKindNearBranch64                  // A 64-bit near branch target.
	OpKindFarBranch16                   // A 16-bit offset and selector.
	OpKindFarBranch32                   // A 32-bit offset and selector.
	OpKindImmediate8                    // An 8-bit immediate.
	OpKindImmediate8_2nd                // The second 8-bit immediate, as in enter.
	OpKindImmediate16                   // A 16-bit immediate.
	OpKindImmediate32                   // A 32-bit immediate.
	OpKindImmediate64                   // A 64-bit immediate.
	OpKindImmediate8to16                // An 8-bit immediate sign-extended to 16 bits.
	OpKindImmediate8to32                // An 8-bit immediate sign-extended to 32 bits.
	OpKindImmediate8to64                // An 8-bit immediate sign-extended to 64 bits.
	OpKindImmediate32to64               // A 32-bit immediate sign-extended to 64 bits.
	OpKindMemorySegSI                   // seg:[si].
	OpKindMemorySegESI                  // seg:[esi].
	OpKindMemorySegRSI                  // seg:[rsi].
	OpKindMemorySegDI                   // seg:[di].
	OpKindMemorySegEDI                  // seg:[edi].
	OpKindMemorySegRDI                  // seg:[rdi].
	OpKindMemoryESDI                    // es:[di].
	OpKindMemoryESEDI                   // es:[edi].
	OpKindMemoryESRDI                   // es:[rdi].
	OpKindMemory64                      // A 64-bit absolute address, as in mov al,[moffs].
	OpKindMemory                        // A memory operand with base, index, scale, and displacement.
)

// NumberOfOpKinds is the number of
// OpKind values.
const NumberOfOpKinds = 26

var opKindNames = [...]string{
	OpKindRegister:        "Register",
	OpKindNearBranch16:    "NearBranch16",
	OpKindNearBranch32:    "NearBranch32",
	OpKindNearBranch64:    "NearBranch64",
	OpKindFarBranch16:     "FarBranch16",
	OpKindFarBranch32:     "FarBranch32",
	OpKindImmediate8:      "Immediate8",
	OpKindImmediate8_2nd:  "Immediate8_2nd",
	OpKindImmediate16:     "Immediate16",
	OpKindImmediate32:     "Immediate32",
	OpKindImmediate64:     "Immediate64",
	OpKindImmediate8to16:  "Immediate8to16",
	OpKindImmediate8to32:  "Immediate8to32",
	OpKindImmediate8to64:  "Immediate8to64",
	OpKindImmediate32to64: "Immediate32to64",
	OpKindMemorySegSI:     "MemorySegSI",
	OpKindMemorySegESI:    "MemorySegESI",
	OpKindMemorySegRSI:    "MemorySegRSI",
	OpKindMemorySegDI:     "MemorySegDI",
	OpKindMemorySegEDI:    "MemorySegEDI",
	OpKindMemorySegRDI:    "MemorySegRDI",
	OpKindMemoryESDI:      "MemoryESDI",
	OpKindMemoryESEDI:     "MemoryESEDI",
	OpKindMemoryESRDI:     "MemoryESRDI",
	OpKindMemory64:        "Memory64",
	OpKindMemory:          "Memory",
}

var _ [NumberOfOpKinds]string = opKindNames

func (k OpKind) String() string {
	if int(k) >= NumberOfOpKinds {
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}

	return opKindNames[k]
}

// IsImmediate reports whether the
// operand is an immediate value.
func (k OpKind) IsImmediate() bool {
	return OpKindImmediate8 <= k && k <= OpKindImmediate32to64
}

// IsBranch reports whether the operand
// is a near or far branch target.
func (k OpKind) IsBranch() bool {
	return OpKindNearBranch16 <= k && k <= OpKindFarBranch32
}

// IsMemory reports whether the operand
// references memory.
func (k OpKind) IsMemory() bool {
	return OpKindMemorySegSI <= k && k <= OpKindMemory
}

func (k OpKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *OpKind) UnmarshalText(text []byte) error {
	got, ok := OpKindsByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid operand kind %q", text)
	}

	*k = got

	return nil
}

// OpKindsByName maps operand kind
// names, such as "Immediate8to32",
// to their values.
var OpKindsByName = make(map[string]OpKind)

// CodeSize is the CPU mode an
// instruction was decoded in.
type CodeSize uint8

const (
	CodeSizeUnknown CodeSize = iota
	CodeSize16
	CodeSize32
	CodeSize64
)

func (s CodeSize) String() string {
	switch s {
	case CodeSizeUnknown:
		return "unknown"
	case CodeSize16:
		return "16"
	case CodeSize32:
		return "32"
	case CodeSize64:
		return "64"
	default:
		return fmt.Sprintf("CodeSize(%d)", uint8(s))
	}
}

// Bits returns the size of the CPU
// mode in bits, or 0 if unknown.
func (s CodeSize) Bits() int {
	switch s {
	case CodeSize16:
		return 16
	case CodeSize32:
		return 32
	case CodeSize64:
		return 64
	default:
		return 0
	}
}

// CodeSizeFromBits returns the code size
// for a CPU mode of the given size.
func CodeSizeFromBits(bits int) (CodeSize, error) {
	switch bits {
	case 0:
		return CodeSizeUnknown, nil
	case 16:
		return CodeSize16, nil
	case 32:
		return CodeSize32, nil
	case 64:
		return CodeSize64, nil
	default:
		return CodeSizeUnknown, fmt.Errorf("invalid code size %d", bits)
	}
}

// RoundingControl is the rounding
// mode of an EVEX instruction with
// embedded rounding.
type RoundingControl uint8

const (
	RoundingControlNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)

// NumberOfRoundingControls is the number
// of RoundingControl values.
const NumberOfRoundingControls = 5

var roundingControlNames = [...]string{
	RoundingControlNone: "none",
	RoundToNearest:      "rn-sae",
	RoundDown:           "rd-sae",
	RoundUp:             "ru-sae",
	RoundTowardZero:     "rz-sae",
}

var _ [NumberOfRoundingControls]string = roundingControlNames

func (rc RoundingControl) String() string {
	if int(rc) >= NumberOfRoundingControls {
		return fmt.Sprintf("RoundingControl(%d)", uint8(rc))
	}

	return roundingControlNames[rc]
}

func (rc RoundingControl) MarshalText() ([]byte, error) { return []byte(rc.String()), nil }

func (rc *RoundingControl) UnmarshalText(text []byte) error {
	got, ok := RoundingControlsByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid rounding control %q", text)
	}

	*rc = got

	return nil
}

// RoundingControlsByName maps rounding
// control names, such as "rz-sae", to
// their values.
var RoundingControlsByName = make(map[string]RoundingControl)

func init() {
	for i, name := range opKindNames {
		OpKindsByName[name] = OpKind(i)
	}

	for i, name := range roundingControlNames {
		RoundingControlsByName[name] = RoundingControl(i)
	}
}
