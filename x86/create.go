// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// Operand describes one operand of an
// instruction being created with New.
type Operand struct {
	Kind      OpKind
	Register  Register      // For OpKindRegister.
	Immediate uint64        // For the immediate kinds.
	Target    uint64        // For near branches, and the offset of far branches.
	Selector  uint16        // For far branches.
	Memory    MemoryOperand // For OpKindMemory. Memory.Segment is also used by the string and Memory64 kinds.
	Address   uint64        // For OpKindMemory64.
}

// Reg returns a register operand.
func Reg(reg Register) Operand {
	return Operand{Kind: OpKindRegister, Register: reg}
}

// Imm returns an immediate operand of
// the given kind.
func Imm(kind OpKind, value uint64) Operand {
	return Operand{Kind: kind, Immediate: value}
}

// Branch returns a near branch operand
// of the given kind.
func Branch(kind OpKind, target uint64) Operand {
	return Operand{Kind: kind, Target: target}
}

// FarBranch returns a far branch operand
// of the given kind.
func FarBranch(kind OpKind, selector uint16, offset uint32) Operand {
	return Operand{Kind: kind, Selector: selector, Target: uint64(offset)}
}

// Mem returns a memory operand.
func Mem(m MemoryOperand) Operand {
	return Operand{Kind: OpKindMemory, Memory: m}
}

// Mem64 returns a 64-bit absolute memory
// operand, as used by mov al, [moffs].
func Mem64(segment Register, addr uint64) Operand {
	return Operand{Kind: OpKindMemory64, Memory: MemoryOperand{Segment: segment}, Address: addr}
}

// StringMem returns one of the implicit
// memory operands of the string
// instructions, such as
// OpKindMemorySegRSI. The segment is
// ignored by the ES kinds.
func StringMem(kind OpKind, segment Register) Operand {
	return Operand{Kind: kind, Memory: MemoryOperand{Segment: segment}}
}

// Storage used by an operand's payload.
const (
	useImmediate = 1 << iota
	useDispl
	useSegment
)

func (op *Operand) uses() int {
	switch op.Kind {
	case OpKindNearBranch16, OpKindNearBranch32:
		return useImmediate
	case OpKindNearBranch64, OpKindFarBranch16, OpKindFarBranch32, OpKindImmediate64:
		return useImmediate | useDispl
	case OpKindMemory64:
		return useImmediate | useDispl | useSegment
	case OpKindImmediate8_2nd:
		return useDispl
	case OpKindMemory:
		return useDispl | useSegment
	case OpKindMemorySegSI, OpKindMemorySegESI, OpKindMemorySegRSI,
		OpKindMemorySegDI, OpKindMemorySegEDI, OpKindMemorySegRDI:
		return useSegment
	}

	if op.Kind.IsImmediate() {
		return useImmediate
	}

	return 0
}

// New returns an instruction with the
// given code and operands. The number
// of operands must match the code.
//
// Operands that would share storage,
// such as a 64-bit immediate and a
// memory displacement, are rejected.
// Only one operand can use the segment
// override prefix.
func New(code Code, operands ...Operand) (Instruction, error) {
	if int(code) >= NumberOfCodes {
		return Instruction{}, fmt.Errorf("invalid code %d", code)
	}

	if want := code.OpCount(); len(operands) != want {
		return Instruction{}, fmt.Errorf("%s has %d operands, got %d", code, want, len(operands))
	}

	var inst Instruction
	inst.internalSetCode(code)
	var used int
	for i := range operands {
		op := &operands[i]
		if op.Kind >= NumberOfOpKinds {
			return Instruction{}, fmt.Errorf("operand %d: invalid kind %d", i, op.Kind)
		}

		uses := op.uses()
		if used&uses != 0 {
			return Instruction{}, fmt.Errorf("operand %d: %s overlaps an earlier operand: %w", i, op.Kind, ErrNotSupported)
		}

		used |= uses

		if i == 4 {
			if err := inst.SetOp4Kind(op.Kind); err != nil {
				return Instruction{}, err
			}
		} else {
			inst.internalSetOpKind(i, op.Kind)
		}

		var err error
		switch {
		case op.Kind == OpKindRegister:
			if int(op.Register) >= NumberOfRegisters {
				err = fmt.Errorf("invalid register %d", op.Register)
				break
			}

			err = inst.SetOpRegister(i, op.Register)
		case op.Kind.IsImmediate():
			err = inst.SetImmediateU64(i, op.Immediate)
		case op.Kind == OpKindNearBranch16:
			inst.SetNearBranch16(uint16(op.Target))
		case op.Kind == OpKindNearBranch32:
			inst.SetNearBranch32(uint32(op.Target))
		case op.Kind == OpKindNearBranch64:
			inst.SetNearBranch64(op.Target)
		case op.Kind == OpKindFarBranch16:
			inst.SetFarBranch16(uint16(op.Target))
			inst.SetFarBranchSelector(op.Selector)
		case op.Kind == OpKindFarBranch32:
			inst.SetFarBranch32(uint32(op.Target))
			inst.SetFarBranchSelector(op.Selector)
		case op.Kind == OpKindMemory64:
			inst.SetSegmentPrefix(op.Memory.Segment)
			inst.SetMemoryAddress64(op.Address)
		case op.Kind == OpKindMemory:
			err = inst.internalSetMemory(&op.Memory)
		case uses&useSegment != 0:
			inst.SetSegmentPrefix(op.Memory.Segment)
		}

		if err != nil {
			return Instruction{}, fmt.Errorf("operand %d: %w", i, err)
		}
	}

	return inst, nil
}

func (inst *Instruction) internalSetMemory(m *MemoryOperand) error {
	if int(m.Base) >= NumberOfRegisters {
		return fmt.Errorf("invalid base register %d", m.Base)
	}

	if int(m.Index) >= NumberOfRegisters {
		return fmt.Errorf("invalid index register %d", m.Index)
	}

	// The displacement is stored in 32 bits.
	if m.Displacement < -0x8000_0000 || m.Displacement > 0xffff_ffff {
		return fmt.Errorf("displacement %#x does not fit in 32 bits: %w", m.Displacement, ErrNotSupported)
	}

	inst.SetSegmentPrefix(m.Segment)
	inst.memBaseReg = uint8(m.Base)
	inst.memIndexReg = uint8(m.Index)
	inst.internalSetMemoryIndexScale(m.scale())
	inst.memDispl = uint32(m.Displacement)
	displSize := m.DisplSize
	if displSize == 0 && m.Displacement != 0 {
		displSize = minDisplSize(m.Displacement)
	}

	inst.internalSetMemoryDisplSize(displSize)
	if m.Broadcast {
		inst.internalSetIsBroadcast()
	}

	return nil
}

func minDisplSize(displ int64) int {
	switch {
	case -0x80 <= displ && displ <= 0x7f:
		return 1
	default:
		return 4
	}
}

func newDeclareData(code Code, n, max int) (Instruction, error) {
	if n < 1 || n > max {
		return Instruction{}, fmt.Errorf("%s has 1-%d values, got %d", code, max, n)
	}

	var inst Instruction
	inst.internalSetCode(code)
	inst.internalSetDeclareDataLen(n)
	return inst, nil
}

// NewDeclareByte returns a db directive
// with 1-16 bytes.
func NewDeclareByte(data ...uint8) (Instruction, error) {
	inst, err := newDeclareData(CodeDeclareByte, len(data), 16)
	if err != nil {
		return Instruction{}, err
	}

	for i, v := range data {
		inst.SetDeclareByteValue(i, v)
	}

	return inst, nil
}

// NewDeclareWord returns a dw directive
// with 1-8 words.
func NewDeclareWord(data ...uint16) (Instruction, error) {
	inst, err := newDeclareData(CodeDeclareWord, len(data), 8)
	if err != nil {
		return Instruction{}, err
	}

	for i, v := range data {
		inst.SetDeclareWordValue(i, v)
	}

	return inst, nil
}

// NewDeclareDword returns a dd directive
// with 1-4 dwords.
func NewDeclareDword(data ...uint32) (Instruction, error) {
	inst, err := newDeclareData(CodeDeclareDword, len(data), 4)
	if err != nil {
		return Instruction{}, err
	}

	for i, v := range data {
		inst.SetDeclareDwordValue(i, v)
	}

	return inst, nil
}

// NewDeclareQword returns a dq directive
// with 1-2 qwords.
func NewDeclareQword(data ...uint64) (Instruction, error) {
	inst, err := newDeclareData(CodeDeclareQword, len(data), 2)
	if err != nil {
		return Instruction{}, err
	}

	for i, v := range data {
		inst.SetDeclareQwordValue(i, v)
	}

	return inst, nil
}
