// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// The data directives db, dw, dd, and dq
// store their values in the fields used
// for operands by other instructions,
// treated as a 16-byte array:
//
//	0-3    reg0, reg1, reg2, reg3
//	4-7    immediate
//	8-11   memDispl
//	12     memBaseReg
//	13     memIndexReg
//	14-15  the low 16 bits of opKindFlags
//
// These methods must only be used when
// the instruction's code is the matching
// data directive.

// DeclareDataLen returns the number of
// values in a data directive, between 1
// and 16.
func (inst *Instruction) DeclareDataLen() int {
	return int((inst.opKindFlags>>dataLengthShift)&dataLengthMask) + 1
}

// SetDeclareDataLen sets the number of
// values in a data directive. Only the
// low 4 bits of length-1 are stored.
func (inst *Instruction) SetDeclareDataLen(length int) {
	inst.opKindFlags = (inst.opKindFlags &^ (dataLengthMask << dataLengthShift)) |
		(uint32(length-1)&dataLengthMask)<<dataLengthShift
}

func (inst *Instruction) internalSetDeclareDataLen(length int) {
	inst.opKindFlags |= uint32(length-1) << dataLengthShift
}

func invalidIndex(kind string, index, max int) error {
	return fmt.Errorf("%w: %s index %d, want 0-%d", ErrInvalidIndex, kind, index, max)
}

// DeclareByteValue returns the byte at
// the given index, which must be
// between 0 and 15.
func (inst *Instruction) DeclareByteValue(index int) (uint8, error) {
	switch index {
	case 0:
		return inst.reg0, nil
	case 1:
		return inst.reg1, nil
	case 2:
		return inst.reg2, nil
	case 3:
		return inst.reg3, nil
	case 4, 5, 6, 7:
		return uint8(inst.immediate >> (8 * (index - 4))), nil
	case 8, 9, 10, 11:
		return uint8(inst.memDispl >> (8 * (index - 8))), nil
	case 12:
		return inst.memBaseReg, nil
	case 13:
		return inst.memIndexReg, nil
	case 14, 15:
		return uint8(inst.opKindFlags >> (8 * (index - 14))), nil
	default:
		return 0, invalidIndex("byte", index, 15)
	}
}

// SetDeclareByteValue sets the byte at
// the given index, which must be
// between 0 and 15.
func (inst *Instruction) SetDeclareByteValue(index int, value uint8) error {
	switch index {
	case 0:
		inst.reg0 = value
	case 1:
		inst.reg1 = value
	case 2:
		inst.reg2 = value
	case 3:
		inst.reg3 = value
	case 4, 5, 6, 7:
		shift := 8 * uint(index-4)
		inst.immediate = inst.immediate&^(0xff<<shift) | uint32(value)<<shift
	case 8, 9, 10, 11:
		shift := 8 * uint(index-8)
		inst.memDispl = inst.memDispl&^(0xff<<shift) | uint32(value)<<shift
	case 12:
		inst.memBaseReg = value
	case 13:
		inst.memIndexReg = value
	case 14, 15:
		shift := 8 * uint(index-14)
		inst.opKindFlags = inst.opKindFlags&^(0xff<<shift) | uint32(value)<<shift
	default:
		return invalidIndex("byte", index, 15)
	}

	return nil
}

func (inst *Instruction) SetDeclareByteValueI8(index int, value int8) error {
	return inst.SetDeclareByteValue(index, uint8(value))
}

// DeclareWordValue returns the word at
// the given index, which must be
// between 0 and 7.
func (inst *Instruction) DeclareWordValue(index int) (uint16, error) {
	switch index {
	case 0:
		return uint16(inst.reg0) | uint16(inst.reg1)<<8, nil
	case 1:
		return uint16(inst.reg2) | uint16(inst.reg3)<<8, nil
	case 2:
		return uint16(inst.immediate), nil
	case 3:
		return uint16(inst.immediate >> 16), nil
	case 4:
		return uint16(inst.memDispl), nil
	case 5:
		return uint16(inst.memDispl >> 16), nil
	case 6:
		return uint16(inst.memBaseReg) | uint16(inst.memIndexReg)<<8, nil
	case 7:
		return uint16(inst.opKindFlags), nil
	default:
		return 0, invalidIndex("word", index, 7)
	}
}

// SetDeclareWordValue sets the word at
// the given index, which must be
// between 0 and 7.
func (inst *Instruction) SetDeclareWordValue(index int, value uint16) error {
	switch index {
	case 0:
		inst.reg0 = uint8(value)
		inst.reg1 = uint8(value >> 8)
	case 1:
		inst.reg2 = uint8(value)
		inst.reg3 = uint8(value >> 8)
	case 2:
		inst.immediate = inst.immediate&0xffff_0000 | uint32(value)
	case 3:
		inst.immediate = inst.immediate&0xffff | uint32(value)<<16
	case 4:
		inst.memDispl = inst.memDispl&0xffff_0000 | uint32(value)
	case 5:
		inst.memDispl = inst.memDispl&0xffff | uint32(value)<<16
	case 6:
		inst.memBaseReg = uint8(value)
		inst.memIndexReg = uint8(value >> 8)
	case 7:
		inst.opKindFlags = inst.opKindFlags&0xffff_0000 | uint32(value)
	default:
		return invalidIndex("word", index, 7)
	}

	return nil
}

func (inst *Instruction) SetDeclareWordValueI16(index int, value int16) error {
	return inst.SetDeclareWordValue(index, uint16(value))
}

// DeclareDwordValue returns the dword at
// the given index, which must be
// between 0 and 3.
func (inst *Instruction) DeclareDwordValue(index int) (uint32, error) {
	switch index {
	case 0:
		return uint32(inst.reg0) | uint32(inst.reg1)<<8 | uint32(inst.reg2)<<16 | uint32(inst.reg3)<<24, nil
	case 1:
		return inst.immediate, nil
	case 2:
		return inst.memDispl, nil
	case 3:
		return uint32(inst.memBaseReg) | uint32(inst.memIndexReg)<<8 | inst.opKindFlags<<16, nil
	default:
		return 0, invalidIndex("dword", index, 3)
	}
}

// SetDeclareDwordValue sets the dword at
// the given index, which must be
// between 0 and 3.
func (inst *Instruction) SetDeclareDwordValue(index int, value uint32) error {
	switch index {
	case 0:
		inst.reg0 = uint8(value)
		inst.reg1 = uint8(value >> 8)
		inst.reg2 = uint8(value >> 16)
		inst.reg3 = uint8(value >> 24)
	case 1:
		inst.immediate = value
	case 2:
		inst.memDispl = value
	case 3:
		inst.memBaseReg = uint8(value)
		inst.memIndexReg = uint8(value >> 8)
		inst.opKindFlags = inst.opKindFlags&0xffff_0000 | value>>16
	default:
		return invalidIndex("dword", index, 3)
	}

	return nil
}

func (inst *Instruction) SetDeclareDwordValueI32(index int, value int32) error {
	return inst.SetDeclareDwordValue(index, uint32(value))
}

// DeclareQwordValue returns the qword at
// the given index, which must be 0 or 1.
func (inst *Instruction) DeclareQwordValue(index int) (uint64, error) {
	switch index {
	case 0:
		lo, _ := inst.DeclareDwordValue(0)
		return uint64(lo) | uint64(inst.immediate)<<32, nil
	case 1:
		return uint64(inst.memDispl) | uint64(inst.memBaseReg)<<32 | uint64(inst.memIndexReg)<<40 | uint64(inst.opKindFlags)<<48, nil
	default:
		return 0, invalidIndex("qword", index, 1)
	}
}

// SetDeclareQwordValue sets the qword at
// the given index, which must be 0 or 1.
func (inst *Instruction) SetDeclareQwordValue(index int, value uint64) error {
	switch index {
	case 0:
		inst.SetDeclareDwordValue(0, uint32(value))
		inst.immediate = uint32(value >> 32)
	case 1:
		inst.memDispl = uint32(value)
		inst.memBaseReg = uint8(value >> 32)
		inst.memIndexReg = uint8(value >> 40)
		inst.opKindFlags = inst.opKindFlags&0xffff_0000 | uint32(value>>48)
	default:
		return invalidIndex("qword", index, 1)
	}

	return nil
}

func (inst *Instruction) SetDeclareQwordValueI64(index int, value int64) error {
	return inst.SetDeclareQwordValue(index, uint64(value))
}
