// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"math"
)

// SegmentPrefix returns the segment
// override prefix, or RegisterNone if
// the instruction has none.
func (inst *Instruction) SegmentPrefix() Register {
	index := (uint32(inst.memoryFlags) >> memSegmentPrefixShift) & memSegmentPrefixMask
	if index == 0 || index > 6 {
		return RegisterNone
	}

	return ES + Register(index-1)
}

// SetSegmentPrefix sets the segment
// override prefix. Any register other
// than ES, CS, SS, DS, FS, and GS
// clears the prefix.
func (inst *Instruction) SetSegmentPrefix(reg Register) {
	var enc uint32
	if reg.IsSegmentRegister() {
		enc = uint32(reg-ES) + 1
	}

	inst.memoryFlags = uint16((uint32(inst.memoryFlags) &^ (memSegmentPrefixMask << memSegmentPrefixShift)) |
		enc<<memSegmentPrefixShift)
}

// MemorySegment returns the segment used
// by the memory operand. This is the
// segment override prefix if there is
// one. Otherwise, it is SS if the base
// register is a stack register and DS
// if not.
func (inst *Instruction) MemorySegment() Register {
	if seg := inst.SegmentPrefix(); seg != RegisterNone {
		return seg
	}

	switch inst.MemoryBase() {
	case BP, EBP, ESP, RBP, RSP:
		return SS
	default:
		return DS
	}
}

// MemoryDisplSize returns the size of the
// memory displacement in bytes: 0, 1, 2,
// 4, or 8.
func (inst *Instruction) MemoryDisplSize() int {
	switch size := (uint32(inst.memoryFlags) >> memDisplSizeShift) & memDisplSizeMask; size {
	case 0, 1, 2:
		return int(size)
	case 3:
		return 4
	default:
		return 8
	}
}

// SetMemoryDisplSize sets the size of the
// memory displacement in bytes. Sizes
// other than 0, 1, 2, and 4 are stored
// as 8.
func (inst *Instruction) SetMemoryDisplSize(size int) {
	inst.memoryFlags = (inst.memoryFlags &^ (memDisplSizeMask << memDisplSizeShift)) |
		encodeDisplSize(size)<<memDisplSizeShift
}

func (inst *Instruction) internalSetMemoryDisplSize(size int) {
	inst.memoryFlags |= encodeDisplSize(size) << memDisplSizeShift
}

func encodeDisplSize(size int) uint16 {
	switch size {
	case 0, 1, 2:
		return uint16(size)
	case 4:
		return 3
	default:
		return 4
	}
}

// MemoryIndexScale returns the scale of
// the index register: 1, 2, 4, or 8.
func (inst *Instruction) MemoryIndexScale() int {
	return 1 << inst.memoryIndexScaleBits()
}

func (inst *Instruction) memoryIndexScaleBits() uint {
	return uint(inst.memoryFlags & memScaleMask)
}

// SetMemoryIndexScale sets the scale of
// the index register. Scales other than
// 1, 2, and 4 are stored as 8.
func (inst *Instruction) SetMemoryIndexScale(scale int) {
	inst.memoryFlags = (inst.memoryFlags &^ memScaleMask) | encodeScale(scale)
}

func (inst *Instruction) internalSetMemoryIndexScale(scale int) {
	inst.memoryFlags |= encodeScale(scale)
}

func encodeScale(scale int) uint16 {
	switch scale {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 3
	}
}

func (inst *Instruction) MemoryBase() Register           { return register(inst.memBaseReg) }
func (inst *Instruction) SetMemoryBase(reg Register)     { inst.memBaseReg = uint8(reg) }
func (inst *Instruction) MemoryIndex() Register          { return register(inst.memIndexReg) }
func (inst *Instruction) SetMemoryIndex(reg Register)    { inst.memIndexReg = uint8(reg) }
func (inst *Instruction) MemoryDisplacement() uint32     { return inst.memDispl }
func (inst *Instruction) SetMemoryDisplacement(v uint32) { inst.memDispl = v }

// MemoryDisplacement64 returns the memory
// displacement sign-extended to 64 bits.
func (inst *Instruction) MemoryDisplacement64() uint64 {
	return uint64(int64(int32(inst.memDispl)))
}

// MemoryAddress64 returns the absolute
// address of an OpKindMemory64 operand.
func (inst *Instruction) MemoryAddress64() uint64 { return inst.payload64() }

func (inst *Instruction) SetMemoryAddress64(addr uint64) { inst.setPayload64(addr) }

// IsBroadcast reports whether the memory
// operand uses EVEX embedded broadcast.
func (inst *Instruction) IsBroadcast() bool { return inst.memoryFlags&memBroadcast != 0 }

func (inst *Instruction) SetIsBroadcast(on bool) {
	if on {
		inst.memoryFlags |= memBroadcast
	} else {
		inst.memoryFlags &^= memBroadcast
	}
}

func (inst *Instruction) internalSetIsBroadcast() { inst.memoryFlags |= memBroadcast }

// MemorySize returns the size of the
// instruction's memory operand, taking
// broadcasting into account.
func (inst *Instruction) MemorySize() MemorySize {
	index := int(inst.Code())
	if inst.IsBroadcast() {
		index += NumberOfCodes
	}

	return instructionMemorySizes[index]
}

// IsIPRelativeMemoryOperand reports
// whether the memory operand is relative
// to the instruction pointer.
func (inst *Instruction) IsIPRelativeMemoryOperand() bool {
	base := inst.MemoryBase()
	return base == RIP || base == EIP
}

// IPRelativeMemoryAddress returns the
// address referenced by an IP-relative
// memory operand.
func (inst *Instruction) IPRelativeMemoryAddress() uint64 {
	addr := inst.NextIP() + inst.MemoryDisplacement64()
	if inst.MemoryBase() == EIP {
		addr = uint64(uint32(addr))
	}

	return addr
}

// RegisterValues provides the values of
// registers, used to compute the
// addresses of memory operands.
//
// RegisterValue returns the value of reg.
// For segment registers, this is the
// segment's base address. For vector
// index registers, elementIndex and
// elementSize identify an element of
// the register; otherwise they are 0.
type RegisterValues interface {
	RegisterValue(reg Register, elementIndex, elementSize int) uint64
}

// RegisterValueFunc is an adapter to
// allow the use of an ordinary function
// as a RegisterValues.
type RegisterValueFunc func(reg Register, elementIndex, elementSize int) uint64

func (fn RegisterValueFunc) RegisterValue(reg Register, elementIndex, elementSize int) uint64 {
	return fn(reg, elementIndex, elementSize)
}

// VirtualAddress returns the address
// referenced by the given memory operand.
// For VSIB memory operands, elementIndex
// selects the element of the index
// register. Operands that do not
// reference memory return 0.
func (inst *Instruction) VirtualAddress(operand, elementIndex int, regs RegisterValues) (uint64, error) {
	kind, err := inst.OpKind(operand)
	if err != nil {
		return 0, err
	}

	value := func(reg Register) uint64 {
		return regs.RegisterValue(reg, 0, 0)
	}

	switch kind {
	case OpKindMemorySegSI:
		return value(inst.MemorySegment()) + uint64(uint16(value(SI))), nil
	case OpKindMemorySegESI:
		return value(inst.MemorySegment()) + uint64(uint32(value(ESI))), nil
	case OpKindMemorySegRSI:
		return value(inst.MemorySegment()) + value(RSI), nil
	case OpKindMemorySegDI:
		return value(inst.MemorySegment()) + uint64(uint16(value(DI))), nil
	case OpKindMemorySegEDI:
		return value(inst.MemorySegment()) + uint64(uint32(value(EDI))), nil
	case OpKindMemorySegRDI:
		return value(inst.MemorySegment()) + value(RDI), nil
	case OpKindMemoryESDI:
		return value(ES) + uint64(uint16(value(DI))), nil
	case OpKindMemoryESEDI:
		return value(ES) + uint64(uint32(value(EDI))), nil
	case OpKindMemoryESRDI:
		return value(ES) + value(RDI), nil
	case OpKindMemory64:
		return value(inst.MemorySegment()) + inst.MemoryAddress64(), nil
	case OpKindMemory:
	default:
		return 0, nil
	}

	base := inst.MemoryBase()
	index := inst.MemoryIndex()
	offset := uint64(inst.MemoryDisplacement())
	var mask uint64
	switch addressSize(base, index, inst.MemoryDisplSize(), inst.CodeSize()) {
	case 8:
		offset = inst.MemoryDisplacement64()
		mask = math.MaxUint64
	case 4:
		mask = math.MaxUint32
	default:
		mask = math.MaxUint16
	}

	switch base {
	case RegisterNone:
	case RIP:
		offset += inst.NextIP()
	case EIP:
		offset += uint64(inst.NextIP32())
	default:
		offset += value(base)
	}

	if index != RegisterNone {
		scale := inst.memoryIndexScaleBits()
		if is64, ok := inst.VSIB(); ok {
			if is64 {
				offset += regs.RegisterValue(index, elementIndex, 8) << scale
			} else {
				offset += uint64(uint32(regs.RegisterValue(index, elementIndex, 4))) << scale
			}
		} else {
			offset += regs.RegisterValue(index, elementIndex, 0) << scale
		}
	}

	offset &= mask

	return value(inst.MemorySegment()) + offset, nil
}

// addressSize returns the size in bytes
// of the address computed by a memory
// operand.
func addressSize(base, index Register, displSize int, codeSize CodeSize) int {
	switch {
	case base.IsGPR64() || index.IsGPR64() || base == RIP:
		return 8
	case base.IsGPR32() || index.IsGPR32() || base == EIP:
		return 4
	case base == BX || base == BP || base == SI || base == DI || index == SI || index == DI:
		return 2
	}

	switch displSize {
	case 2, 4, 8:
		return displSize
	}

	switch codeSize {
	case CodeSize32:
		return 4
	case CodeSize16:
		return 2
	default:
		return 8
	}
}

// MemoryOperand describes a memory
// operand in an Instruction.
type MemoryOperand struct {
	Segment      Register // Segment override prefix, if any.
	Base         Register
	Index        Register
	Scale        int // 1, 2, 4, or 8. 0 is treated as 1.
	Displacement int64 // Stored in 32 bits.
	DisplSize    int // Size of the displacement in bytes.
	Broadcast    bool
}

// MemoryOperand returns the instruction's
// memory operand.
func (inst *Instruction) MemoryOperand() MemoryOperand {
	return MemoryOperand{
		Segment:      inst.SegmentPrefix(),
		Base:         inst.MemoryBase(),
		Index:        inst.MemoryIndex(),
		Scale:        inst.MemoryIndexScale(),
		Displacement: int64(int32(inst.MemoryDisplacement())),
		DisplSize:    inst.MemoryDisplSize(),
		Broadcast:    inst.IsBroadcast(),
	}
}

func (m MemoryOperand) String() string {
	segment := m.Segment != RegisterNone
	base := m.Base != RegisterNone
	index := m.Index != RegisterNone
	var s string
	switch {
	case base && index:
		s = fmt.Sprintf("%s+%s*%d", m.Base, m.Index, m.scale())
	case base:
		s = m.Base.String()
	case index:
		s = fmt.Sprintf("%s*%d", m.Index, m.scale())
	}

	switch {
	case s == "":
		s = fmt.Sprintf("%#x", m.Displacement)
	case m.Displacement < 0:
		s += fmt.Sprintf("-%#x", -m.Displacement)
	case m.Displacement > 0:
		s += fmt.Sprintf("+%#x", m.Displacement)
	}

	s = "[" + s + "]"
	if segment {
		s = m.Segment.String() + ":" + s
	}
	if m.Broadcast {
		s += "{bcst}"
	}

	return s
}

func (m MemoryOperand) scale() int {
	if m.Scale == 0 {
		return 1
	}

	return m.Scale
}
