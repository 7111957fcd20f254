// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Layout of Instruction.memoryFlags.
const (
	memScaleMask          = 3
	memDisplSizeShift     = 2
	memDisplSizeMask      = 7
	memSegmentPrefixShift = 5
	memSegmentPrefixMask  = 7
	memBroadcast          = 0x8000
)

// Layout of Instruction.opKindFlags.
const (
	opKindBits         = 5
	opKindMask         = 1<<opKindBits - 1
	op1KindShift       = 5
	op2KindShift       = 10
	op3KindShift       = 15
	dataLengthMask     = 0xf
	dataLengthShift    = 20
	codeSizeMask       = 3
	codeSizeShift      = 30
	opKindEqualsIgnore = codeSizeMask << codeSizeShift
)

// Layout of Instruction.codeFlags.
const (
	codeBits              = 13
	codeMask              = 1<<codeBits - 1
	roundingControlMask   = 7
	roundingControlShift  = 13
	opmaskMask            = 7
	opmaskShift           = 16
	instrLengthMask       = 0xf
	instrLengthShift      = 19
	suppressAllExceptions = 0x0200_0000
	zeroingMasking        = 0x0400_0000
	xacquirePrefix        = 0x0800_0000
	xreleasePrefix        = 0x1000_0000
	repePrefix            = 0x2000_0000
	repnePrefix           = 0x4000_0000
	lockPrefix            = 0x8000_0000
	codeEqualsIgnore      = instrLengthMask << instrLengthShift
)

// Instruction is a single 16, 32, or
// 64-bit x86 instruction.
//
// An Instruction is a small value that
// can be copied freely. Its fields are
// packed, so it is read and modified
// through its methods. The zero value
// is an instruction with code
// CodeINVALID, where every operand is
// a register operand with register
// RegisterNone.
//
// Several methods reinterpret the same
// storage depending on the kind of the
// operand being accessed. For example,
// Immediate64, NearBranch64, and
// MemoryAddress64 all share the same
// bits. Callers should check the
// operand's kind with OpKind before
// using these methods. The result of
// using a method for a different kind
// of operand is unspecified.
type Instruction struct {
	nextRIP     uint64
	codeFlags   uint32
	opKindFlags uint32
	// For 64-bit immediates, offsets, and
	// targets, memDispl holds the high 32
	// bits.
	immediate   uint32
	memDispl    uint32
	memoryFlags uint16
	memBaseReg  uint8
	memIndexReg uint8
	reg0        uint8
	reg1        uint8
	reg2        uint8
	reg3        uint8
}

// NewInstruction returns an empty
// instruction with the given code.
func NewInstruction(code Code) Instruction {
	var inst Instruction
	inst.internalSetCode(code)
	return inst
}

// IP and length.

// IP16 returns the 16-bit address of
// the instruction.
func (inst *Instruction) IP16() uint16 {
	return uint16(inst.nextRIP) - uint16(inst.Len())
}

// SetIP16 sets the 16-bit address of the
// instruction, leaving its length
// unchanged.
func (inst *Instruction) SetIP16(ip uint16) {
	inst.nextRIP = uint64(ip) + uint64(inst.Len())
}

// IP32 returns the 32-bit address of
// the instruction.
func (inst *Instruction) IP32() uint32 {
	return uint32(inst.nextRIP) - uint32(inst.Len())
}

// SetIP32 sets the 32-bit address of the
// instruction, leaving its length
// unchanged.
func (inst *Instruction) SetIP32(ip uint32) {
	inst.nextRIP = uint64(ip) + uint64(inst.Len())
}

// IP returns the 64-bit address of
// the instruction.
func (inst *Instruction) IP() uint64 {
	return inst.nextRIP - uint64(inst.Len())
}

// SetIP sets the 64-bit address of the
// instruction, leaving its length
// unchanged.
func (inst *Instruction) SetIP(ip uint64) {
	inst.nextRIP = ip + uint64(inst.Len())
}

// NextIP16 returns the 16-bit address
// of the following instruction.
func (inst *Instruction) NextIP16() uint16      { return uint16(inst.nextRIP) }
func (inst *Instruction) SetNextIP16(ip uint16) { inst.nextRIP = uint64(ip) }
func (inst *Instruction) NextIP32() uint32      { return uint32(inst.nextRIP) }
func (inst *Instruction) SetNextIP32(ip uint32) { inst.nextRIP = uint64(ip) }
func (inst *Instruction) NextIP() uint64        { return inst.nextRIP }
func (inst *Instruction) SetNextIP(ip uint64)   { inst.nextRIP = ip }

// Len returns the length of the
// instruction in bytes, between 0 and
// 15. The length is informational and
// is not updated when the instruction
// is modified.
func (inst *Instruction) Len() int {
	return int((inst.codeFlags >> instrLengthShift) & instrLengthMask)
}

// SetLen sets the length of the
// instruction. Only the low 4 bits of
// length are stored.
func (inst *Instruction) SetLen(length int) {
	inst.codeFlags = (inst.codeFlags &^ (instrLengthMask << instrLengthShift)) |
		(uint32(length)&instrLengthMask)<<instrLengthShift
}

// CodeSize returns the CPU mode the
// instruction was decoded in. This is
// informational.
func (inst *Instruction) CodeSize() CodeSize {
	return CodeSize((inst.opKindFlags >> codeSizeShift) & codeSizeMask)
}

func (inst *Instruction) SetCodeSize(size CodeSize) {
	inst.opKindFlags = (inst.opKindFlags &^ (codeSizeMask << codeSizeShift)) |
		(uint32(size)&codeSizeMask)<<codeSizeShift
}

// Identity.

// Code returns the instruction's form.
// A stored value that is not a valid
// Code returns CodeINVALID.
func (inst *Instruction) Code() Code {
	c := Code(inst.codeFlags & codeMask)
	if int(c) >= NumberOfCodes {
		return CodeINVALID
	}

	return c
}

func (inst *Instruction) SetCode(code Code) {
	inst.codeFlags = (inst.codeFlags &^ codeMask) | (uint32(code) & codeMask)
}

// The internal setters only set bits, so
// they must only be used on a new
// instruction, where the bits are clear.

func (inst *Instruction) internalSetCode(code Code) {
	inst.codeFlags |= uint32(code)
}

// Mnemonic returns the instruction's
// mnemonic.
func (inst *Instruction) Mnemonic() Mnemonic {
	return inst.Code().Mnemonic()
}

// OpCount returns the number of operands
// the instruction has, between 0 and 5.
func (inst *Instruction) OpCount() int {
	return inst.Code().OpCount()
}

// Prefixes.

func (inst *Instruction) setFlag(flag uint32, on bool) {
	if on {
		inst.codeFlags |= flag
	} else {
		inst.codeFlags &^= flag
	}
}

func (inst *Instruction) HasLockPrefix() bool          { return inst.codeFlags&lockPrefix != 0 }
func (inst *Instruction) SetHasLockPrefix(on bool)     { inst.setFlag(lockPrefix, on) }
func (inst *Instruction) HasXacquirePrefix() bool      { return inst.codeFlags&xacquirePrefix != 0 }
func (inst *Instruction) SetHasXacquirePrefix(on bool) { inst.setFlag(xacquirePrefix, on) }
func (inst *Instruction) HasXreleasePrefix() bool      { return inst.codeFlags&xreleasePrefix != 0 }
func (inst *Instruction) SetHasXreleasePrefix(on bool) { inst.setFlag(xreleasePrefix, on) }
func (inst *Instruction) HasRepePrefix() bool          { return inst.codeFlags&repePrefix != 0 }
func (inst *Instruction) SetHasRepePrefix(on bool)     { inst.setFlag(repePrefix, on) }
func (inst *Instruction) HasRepnePrefix() bool         { return inst.codeFlags&repnePrefix != 0 }
func (inst *Instruction) SetHasRepnePrefix(on bool)    { inst.setFlag(repnePrefix, on) }

// HasRepPrefix is the same as
// HasRepePrefix. REP and REPE share
// the F3 prefix.
func (inst *Instruction) HasRepPrefix() bool { return inst.HasRepePrefix() }

// SetHasRepPrefix is the same as
// SetHasRepePrefix.
func (inst *Instruction) SetHasRepPrefix(on bool) { inst.SetHasRepePrefix(on) }

// Operand kinds.

// Op0Kind returns the kind of the first
// operand. Stored values that are not a
// valid OpKind return OpKindRegister.
func (inst *Instruction) Op0Kind() OpKind { return inst.opKind(0) }
func (inst *Instruction) Op1Kind() OpKind { return inst.opKind(op1KindShift) }
func (inst *Instruction) Op2Kind() OpKind { return inst.opKind(op2KindShift) }
func (inst *Instruction) Op3Kind() OpKind { return inst.opKind(op3KindShift) }

// Op4Kind returns the kind of the fifth
// operand, which is always
// OpKindImmediate8.
func (inst *Instruction) Op4Kind() OpKind { return OpKindImmediate8 }

func (inst *Instruction) SetOp0Kind(kind OpKind) { inst.setOpKind(0, kind) }
func (inst *Instruction) SetOp1Kind(kind OpKind) { inst.setOpKind(op1KindShift, kind) }
func (inst *Instruction) SetOp2Kind(kind OpKind) { inst.setOpKind(op2KindShift, kind) }
func (inst *Instruction) SetOp3Kind(kind OpKind) { inst.setOpKind(op3KindShift, kind) }

// SetOp4Kind checks the kind of the
// fifth operand. Only OpKindImmediate8
// is supported.
func (inst *Instruction) SetOp4Kind(kind OpKind) error {
	if kind != OpKindImmediate8 {
		return fmt.Errorf("operand 4 kind %s: %w", kind, ErrNotSupported)
	}

	return nil
}

func (inst *Instruction) opKind(shift uint) OpKind {
	k := OpKind((inst.opKindFlags >> shift) & opKindMask)
	if k >= NumberOfOpKinds {
		return OpKindRegister
	}

	return k
}

func (inst *Instruction) setOpKind(shift uint, kind OpKind) {
	inst.opKindFlags = (inst.opKindFlags &^ (opKindMask << shift)) |
		(uint32(kind)&opKindMask)<<shift
}

func (inst *Instruction) internalSetOpKind(operand int, kind OpKind) {
	inst.opKindFlags |= uint32(kind) << (uint(operand) * opKindBits)
}

// OpKind returns the kind of the given
// operand, which must be between 0
// and 4.
func (inst *Instruction) OpKind(operand int) (OpKind, error) {
	switch operand {
	case 0:
		return inst.Op0Kind(), nil
	case 1:
		return inst.Op1Kind(), nil
	case 2:
		return inst.Op2Kind(), nil
	case 3:
		return inst.Op3Kind(), nil
	case 4:
		return inst.Op4Kind(), nil
	default:
		return OpKindRegister, fmt.Errorf("%w %d", ErrInvalidOperand, operand)
	}
}

// SetOpKind sets the kind of the given
// operand, which must be between 0
// and 4.
func (inst *Instruction) SetOpKind(operand int, kind OpKind) error {
	switch operand {
	case 0:
		inst.SetOp0Kind(kind)
	case 1:
		inst.SetOp1Kind(kind)
	case 2:
		inst.SetOp2Kind(kind)
	case 3:
		inst.SetOp3Kind(kind)
	case 4:
		return inst.SetOp4Kind(kind)
	default:
		return fmt.Errorf("%w %d", ErrInvalidOperand, operand)
	}

	return nil
}

// HasOpKind reports whether any of the
// instruction's operands has the given
// kind.
func (inst *Instruction) HasOpKind(kind OpKind) bool {
	for i := 0; i < inst.OpCount(); i++ {
		if k, _ := inst.OpKind(i); k == kind {
			return true
		}
	}

	return false
}

// Operand registers.

func register(v uint8) Register {
	if int(v) >= NumberOfRegisters {
		return RegisterNone
	}

	return Register(v)
}

// Op0Register returns the register of
// the first operand. This is only
// meaningful if the operand's kind is
// OpKindRegister.
func (inst *Instruction) Op0Register() Register { return register(inst.reg0) }
func (inst *Instruction) Op1Register() Register { return register(inst.reg1) }
func (inst *Instruction) Op2Register() Register { return register(inst.reg2) }
func (inst *Instruction) Op3Register() Register { return register(inst.reg3) }

// Op4Register returns the register of
// the fifth operand, which is always
// RegisterNone.
func (inst *Instruction) Op4Register() Register { return RegisterNone }

func (inst *Instruction) SetOp0Register(reg Register) { inst.reg0 = uint8(reg) }
func (inst *Instruction) SetOp1Register(reg Register) { inst.reg1 = uint8(reg) }
func (inst *Instruction) SetOp2Register(reg Register) { inst.reg2 = uint8(reg) }
func (inst *Instruction) SetOp3Register(reg Register) { inst.reg3 = uint8(reg) }

// SetOp4Register checks the register
// of the fifth operand. Only
// RegisterNone is supported.
func (inst *Instruction) SetOp4Register(reg Register) error {
	if reg != RegisterNone {
		return fmt.Errorf("operand 4 register %s: %w", reg, ErrNotSupported)
	}

	return nil
}

// OpRegister returns the register of
// the given operand, which must be
// between 0 and 4.
func (inst *Instruction) OpRegister(operand int) (Register, error) {
	switch operand {
	case 0:
		return inst.Op0Register(), nil
	case 1:
		return inst.Op1Register(), nil
	case 2:
		return inst.Op2Register(), nil
	case 3:
		return inst.Op3Register(), nil
	case 4:
		return inst.Op4Register(), nil
	default:
		return RegisterNone, fmt.Errorf("%w %d", ErrInvalidOperand, operand)
	}
}

// SetOpRegister sets the register of
// the given operand, which must be
// between 0 and 4.
func (inst *Instruction) SetOpRegister(operand int, reg Register) error {
	switch operand {
	case 0:
		inst.SetOp0Register(reg)
	case 1:
		inst.SetOp1Register(reg)
	case 2:
		inst.SetOp2Register(reg)
	case 3:
		inst.SetOp3Register(reg)
	case 4:
		return inst.SetOp4Register(reg)
	default:
		return fmt.Errorf("%w %d", ErrInvalidOperand, operand)
	}

	return nil
}

// Immediates.

// Immediate returns the value of the
// given immediate operand, extended to
// 64 bits. Sign-extending operand kinds
// are sign-extended.
func (inst *Instruction) Immediate(operand int) (uint64, error) {
	kind, err := inst.OpKind(operand)
	if err != nil {
		return 0, err
	}

	switch kind {
	case OpKindImmediate8:
		return uint64(inst.Immediate8()), nil
	case OpKindImmediate8_2nd:
		return uint64(inst.Immediate8_2nd()), nil
	case OpKindImmediate16:
		return uint64(inst.Immediate16()), nil
	case OpKindImmediate32:
		return uint64(inst.Immediate32()), nil
	case OpKindImmediate64:
		return inst.Immediate64(), nil
	case OpKindImmediate8to16:
		return uint64(inst.Immediate8to16()), nil
	case OpKindImmediate8to32:
		return uint64(inst.Immediate8to32()), nil
	case OpKindImmediate8to64:
		return uint64(inst.Immediate8to64()), nil
	case OpKindImmediate32to64:
		return uint64(inst.Immediate32to64()), nil
	default:
		return 0, fmt.Errorf("immediate of operand %d with kind %s: %w", operand, kind, ErrNotSupported)
	}
}

// SetImmediateU64 sets the value of the
// given immediate operand, truncating
// it to the operand's size.
func (inst *Instruction) SetImmediateU64(operand int, value uint64) error {
	kind, err := inst.OpKind(operand)
	if err != nil {
		return err
	}

	switch kind {
	case OpKindImmediate8, OpKindImmediate8to16, OpKindImmediate8to32, OpKindImmediate8to64:
		inst.immediate = uint32(uint8(value))
	case OpKindImmediate8_2nd:
		inst.memDispl = uint32(uint8(value))
	case OpKindImmediate16:
		inst.immediate = uint32(uint16(value))
	case OpKindImmediate32, OpKindImmediate32to64:
		inst.immediate = uint32(value)
	case OpKindImmediate64:
		inst.SetImmediate64(value)
	default:
		return fmt.Errorf("set immediate of operand %d with kind %s: %w", operand, kind, ErrNotSupported)
	}

	return nil
}

func (inst *Instruction) SetImmediateI64(operand int, value int64) error {
	return inst.SetImmediateU64(operand, uint64(value))
}

func (inst *Instruction) SetImmediateU32(operand int, value uint32) error {
	return inst.SetImmediateU64(operand, uint64(value))
}

func (inst *Instruction) SetImmediateI32(operand int, value int32) error {
	return inst.SetImmediateU64(operand, uint64(value))
}

func (inst *Instruction) Immediate8() uint8          { return uint8(inst.immediate) }
func (inst *Instruction) SetImmediate8(v uint8)      { inst.immediate = uint32(v) }
func (inst *Instruction) Immediate8_2nd() uint8      { return uint8(inst.memDispl) }
func (inst *Instruction) SetImmediate8_2nd(v uint8)  { inst.memDispl = uint32(v) }
func (inst *Instruction) Immediate16() uint16        { return uint16(inst.immediate) }
func (inst *Instruction) SetImmediate16(v uint16)    { inst.immediate = uint32(v) }
func (inst *Instruction) Immediate32() uint32        { return inst.immediate }
func (inst *Instruction) SetImmediate32(v uint32)    { inst.immediate = v }
func (inst *Instruction) Immediate64() uint64        { return inst.payload64() }
func (inst *Instruction) SetImmediate64(v uint64)    { inst.setPayload64(v) }
func (inst *Instruction) Immediate8to16() int16      { return int16(int8(inst.immediate)) }
func (inst *Instruction) SetImmediate8to16(v int16)  { inst.immediate = uint32(int32(int8(v))) }
func (inst *Instruction) Immediate8to32() int32      { return int32(int8(inst.immediate)) }
func (inst *Instruction) SetImmediate8to32(v int32)  { inst.immediate = uint32(int32(int8(v))) }
func (inst *Instruction) Immediate8to64() int64      { return int64(int8(inst.immediate)) }
func (inst *Instruction) SetImmediate8to64(v int64)  { inst.immediate = uint32(int32(int8(v))) }
func (inst *Instruction) Immediate32to64() int64     { return int64(int32(inst.immediate)) }
func (inst *Instruction) SetImmediate32to64(v int64) { inst.immediate = uint32(v) }

func (inst *Instruction) payload64() uint64 {
	return uint64(inst.memDispl)<<32 | uint64(inst.immediate)
}

func (inst *Instruction) setPayload64(v uint64) {
	inst.immediate = uint32(v)
	inst.memDispl = uint32(v >> 32)
}

// Branches.

func (inst *Instruction) NearBranch16() uint16          { return uint16(inst.immediate) }
func (inst *Instruction) SetNearBranch16(v uint16)      { inst.immediate = uint32(v) }
func (inst *Instruction) NearBranch32() uint32          { return inst.immediate }
func (inst *Instruction) SetNearBranch32(v uint32)      { inst.immediate = v }
func (inst *Instruction) NearBranch64() uint64          { return inst.payload64() }
func (inst *Instruction) SetNearBranch64(v uint64)      { inst.setPayload64(v) }
func (inst *Instruction) FarBranch16() uint16           { return uint16(inst.immediate) }
func (inst *Instruction) SetFarBranch16(v uint16)       { inst.immediate = uint32(v) }
func (inst *Instruction) FarBranch32() uint32           { return inst.immediate }
func (inst *Instruction) SetFarBranch32(v uint32)       { inst.immediate = v }
func (inst *Instruction) FarBranchSelector() uint16     { return uint16(inst.memDispl) }
func (inst *Instruction) SetFarBranchSelector(v uint16) { inst.memDispl = uint32(v) }

// NearBranchTarget returns the target of
// a near branch in the first operand,
// or 0 if the first operand is not a
// near branch.
func (inst *Instruction) NearBranchTarget() uint64 {
	switch inst.Op0Kind() {
	case OpKindNearBranch16:
		return uint64(inst.NearBranch16())
	case OpKindNearBranch32:
		return uint64(inst.NearBranch32())
	case OpKindNearBranch64:
		return inst.NearBranch64()
	default:
		return 0
	}
}

// Vector decoration.

// Opmask returns the opmask register
// (K1-K7), or RegisterNone if the
// instruction has no opmask.
func (inst *Instruction) Opmask() Register {
	r := (inst.codeFlags >> opmaskShift) & opmaskMask
	if r == 0 {
		return RegisterNone
	}

	return K0 + Register(r)
}

// SetOpmask sets the opmask register.
// Only the low 3 bits of the register's
// number are stored, so K0 is stored
// the same as RegisterNone.
func (inst *Instruction) SetOpmask(reg Register) {
	var r uint32
	if reg != RegisterNone {
		r = uint32(reg-K0) & opmaskMask
	}

	inst.codeFlags = (inst.codeFlags &^ (opmaskMask << opmaskShift)) | r<<opmaskShift
}

// HasOpmask reports whether the
// instruction has an opmask register.
func (inst *Instruction) HasOpmask() bool {
	return inst.codeFlags&(opmaskMask<<opmaskShift) != 0
}

// ZeroingMasking reports whether the
// instruction uses zeroing masking.
// This is the inverse of MergingMasking.
func (inst *Instruction) ZeroingMasking() bool { return inst.codeFlags&zeroingMasking != 0 }

func (inst *Instruction) SetZeroingMasking(on bool) { inst.setFlag(zeroingMasking, on) }

// MergingMasking reports whether the
// instruction uses merging masking.
// This is the inverse of ZeroingMasking.
func (inst *Instruction) MergingMasking() bool { return inst.codeFlags&zeroingMasking == 0 }

func (inst *Instruction) SetMergingMasking(on bool) { inst.setFlag(zeroingMasking, !on) }

// RoundingControl returns the embedded
// rounding mode. Stored values that are
// not a valid RoundingControl return
// RoundingControlNone.
func (inst *Instruction) RoundingControl() RoundingControl {
	rc := RoundingControl((inst.codeFlags >> roundingControlShift) & roundingControlMask)
	if rc >= NumberOfRoundingControls {
		return RoundingControlNone
	}

	return rc
}

func (inst *Instruction) SetRoundingControl(rc RoundingControl) {
	inst.codeFlags = (inst.codeFlags &^ (roundingControlMask << roundingControlShift)) |
		(uint32(rc)&roundingControlMask)<<roundingControlShift
}

func (inst *Instruction) SuppressAllExceptions() bool {
	return inst.codeFlags&suppressAllExceptions != 0
}

func (inst *Instruction) SetSuppressAllExceptions(on bool) {
	inst.setFlag(suppressAllExceptions, on)
}

// Equality.

// Equal reports whether two instructions
// are the same, ignoring their length
// and code size.
func (inst *Instruction) Equal(other *Instruction) bool {
	return inst.Key() == other.Key()
}

// EqualAllBits reports whether two
// instructions are identical, including
// their length and code size.
func (inst *Instruction) EqualAllBits(other *Instruction) bool {
	return *inst == *other
}

// InstructionKey is a comparable value
// identifying an instruction. Two
// instructions have the same key if
// and only if they are Equal, so keys
// can be used in maps.
type InstructionKey struct {
	inst Instruction
}

// Key returns the instruction's key.
func (inst *Instruction) Key() InstructionKey {
	k := *inst
	k.codeFlags &^= codeEqualsIgnore
	k.opKindFlags &^= opKindEqualsIgnore
	return InstructionKey{inst: k}
}

// Hash returns a hash of the instruction
// that is consistent with Equal.
func (inst *Instruction) Hash() uint64 {
	k := inst.Key()
	data, err := k.inst.MarshalBinary()
	if err != nil {
		panic("internal error: " + err.Error())
	}

	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// GoString returns a description of the
// instruction's fields, for debugging.
func (inst *Instruction) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "x86.Instruction{Code: %s, IP: %#x, Len: %d, CodeSize: %s", inst.Code(), inst.IP(), inst.Len(), inst.CodeSize())
	if inst.Code().IsDeclareData() {
		fmt.Fprintf(&b, ", DataLen: %d", inst.DeclareDataLen())
	}

	for i := 0; i < inst.OpCount(); i++ {
		kind, _ := inst.OpKind(i)
		fmt.Fprintf(&b, ", Op%d: %s", i, kind)
		switch {
		case kind == OpKindRegister:
			reg, _ := inst.OpRegister(i)
			fmt.Fprintf(&b, "(%s)", reg)
		case kind.IsImmediate():
			imm, _ := inst.Immediate(i)
			fmt.Fprintf(&b, "(%#x)", imm)
		case kind == OpKindFarBranch16 || kind == OpKindFarBranch32:
			fmt.Fprintf(&b, "(%#x:%#x)", inst.FarBranchSelector(), inst.FarBranch32())
		case kind.IsBranch():
			fmt.Fprintf(&b, "(%#x)", inst.NearBranchTarget())
		case kind == OpKindMemory64:
			fmt.Fprintf(&b, "(%s:%#x)", inst.MemorySegment(), inst.MemoryAddress64())
		case kind == OpKindMemory:
			fmt.Fprintf(&b, "(%s)", inst.MemoryOperand())
		}
	}

	if inst.HasOpmask() {
		fmt.Fprintf(&b, ", Opmask: %s", inst.Opmask())
		if inst.ZeroingMasking() {
			b.WriteString(", Zeroing")
		}
	}
	if rc := inst.RoundingControl(); rc != RoundingControlNone {
		fmt.Fprintf(&b, ", Rounding: %s", rc)
	}
	if inst.SuppressAllExceptions() {
		b.WriteString(", SAE")
	}
	if inst.HasLockPrefix() {
		b.WriteString(", Lock")
	}
	if inst.HasXacquirePrefix() {
		b.WriteString(", Xacquire")
	}
	if inst.HasXreleasePrefix() {
		b.WriteString(", Xrelease")
	}
	if inst.HasRepePrefix() {
		b.WriteString(", Repe")
	}
	if inst.HasRepnePrefix() {
		b.WriteString(", Repne")
	}

	b.WriteString("}")

	return b.String()
}
