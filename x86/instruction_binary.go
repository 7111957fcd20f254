// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// BinarySize is the size in bytes of
// an instruction's binary form.
const BinarySize = 32

// AppendBinary appends the instruction's
// binary form to b.
//
// The binary form is the instruction's
// fields in big-endian byte order. Every
// bit is kept, so decoding the binary
// form produces an instruction that
// satisfies EqualAllBits.
func (inst *Instruction) AppendBinary(b []byte) ([]byte, error) {
	bld := cryptobyte.NewBuilder(b)
	bld.AddUint32(uint32(inst.nextRIP >> 32))
	bld.AddUint32(uint32(inst.nextRIP))
	bld.AddUint32(inst.codeFlags)
	bld.AddUint32(inst.opKindFlags)
	bld.AddUint32(inst.immediate)
	bld.AddUint32(inst.memDispl)
	bld.AddUint16(inst.memoryFlags)
	bld.AddUint8(inst.memBaseReg)
	bld.AddUint8(inst.memIndexReg)
	bld.AddUint8(inst.reg0)
	bld.AddUint8(inst.reg1)
	bld.AddUint8(inst.reg2)
	bld.AddUint8(inst.reg3)

	return bld.Bytes()
}

// MarshalBinary returns the instruction's
// binary form.
func (inst *Instruction) MarshalBinary() ([]byte, error) {
	return inst.AppendBinary(make([]byte, 0, BinarySize))
}

// UnmarshalBinary decodes an instruction
// from its binary form. The fields that
// hold enumerated values must be valid.
func (inst *Instruction) UnmarshalBinary(data []byte) error {
	s := cryptobyte.String(data)
	out, err := readInstruction(&s)
	if err != nil {
		return err
	}

	if !s.Empty() {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidBinary, len(s))
	}

	*inst = out

	return nil
}

// UnmarshalInstructions decodes a sequence
// of instructions in binary form.
func UnmarshalInstructions(data []byte) ([]Instruction, error) {
	if len(data)%BinarySize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidBinary, len(data), BinarySize)
	}

	s := cryptobyte.String(data)
	insts := make([]Instruction, 0, len(data)/BinarySize)
	for i := 0; !s.Empty(); i++ {
		inst, err := readInstruction(&s)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}

		insts = append(insts, inst)
	}

	return insts, nil
}

// MarshalInstructions returns the binary
// form of a sequence of instructions.
func MarshalInstructions(insts []Instruction) ([]byte, error) {
	b := make([]byte, 0, len(insts)*BinarySize)
	for i := range insts {
		var err error
		b, err = insts[i].AppendBinary(b)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}

	return b, nil
}

func readInstruction(s *cryptobyte.String) (Instruction, error) {
	var inst Instruction
	var hi, lo uint32
	if !s.ReadUint32(&hi) ||
		!s.ReadUint32(&lo) ||
		!s.ReadUint32(&inst.codeFlags) ||
		!s.ReadUint32(&inst.opKindFlags) ||
		!s.ReadUint32(&inst.immediate) ||
		!s.ReadUint32(&inst.memDispl) ||
		!s.ReadUint16(&inst.memoryFlags) ||
		!s.ReadUint8(&inst.memBaseReg) ||
		!s.ReadUint8(&inst.memIndexReg) ||
		!s.ReadUint8(&inst.reg0) ||
		!s.ReadUint8(&inst.reg1) ||
		!s.ReadUint8(&inst.reg2) ||
		!s.ReadUint8(&inst.reg3) {
		return Instruction{}, fmt.Errorf("%w: want %d bytes", ErrInvalidBinary, BinarySize)
	}

	inst.nextRIP = uint64(hi)<<32 | uint64(lo)
	if err := inst.validate(); err != nil {
		return Instruction{}, err
	}

	return inst, nil
}

// validate checks that the enumerated
// values stored in the instruction are
// in range.
func (inst *Instruction) validate() error {
	if code := inst.codeFlags & codeMask; code >= NumberOfCodes {
		return fmt.Errorf("%w: code %d", ErrInvalidBinary, code)
	}

	if rc := (inst.codeFlags >> roundingControlShift) & roundingControlMask; rc >= NumberOfRoundingControls {
		return fmt.Errorf("%w: rounding control %d", ErrInvalidBinary, rc)
	}

	if seg := (uint32(inst.memoryFlags) >> memSegmentPrefixShift) & memSegmentPrefixMask; seg > 6 {
		return fmt.Errorf("%w: segment prefix %d", ErrInvalidBinary, seg)
	}

	// Data directives store data in the
	// operand fields.
	if code := inst.Code(); code.IsDeclareData() {
		if n, limit := inst.DeclareDataLen(), 16/code.DeclareDataSize(); n > limit {
			return fmt.Errorf("%w: %s has %d values, want 1-%d", ErrInvalidBinary, code, n, limit)
		}

		return nil
	}

	for _, shift := range [...]uint{0, op1KindShift, op2KindShift, op3KindShift} {
		if kind := (inst.opKindFlags >> shift) & opKindMask; kind >= NumberOfOpKinds {
			return fmt.Errorf("%w: operand kind %d", ErrInvalidBinary, kind)
		}
	}

	for _, reg := range [...]uint8{inst.memBaseReg, inst.memIndexReg, inst.reg0, inst.reg1, inst.reg2, inst.reg3} {
		if int(reg) >= NumberOfRegisters {
			return fmt.Errorf("%w: register %d", ErrInvalidBinary, reg)
		}
	}

	return nil
}
