// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInstructionZeroValue(t *testing.T) {
	var inst Instruction
	if inst.Code() != CodeINVALID {
		t.Errorf("Code(): got %s, want %s", inst.Code(), CodeINVALID)
	}

	if inst.Mnemonic() != MnemonicINVALID {
		t.Errorf("Mnemonic(): got %s, want %s", inst.Mnemonic(), MnemonicINVALID)
	}

	for i := 0; i < 4; i++ {
		kind, err := inst.OpKind(i)
		if err != nil {
			t.Fatalf("OpKind(%d): %v", i, err)
		}

		if kind != OpKindRegister {
			t.Errorf("OpKind(%d): got %s, want %s", i, kind, OpKindRegister)
		}

		reg, err := inst.OpRegister(i)
		if err != nil {
			t.Fatalf("OpRegister(%d): %v", i, err)
		}

		if reg != RegisterNone {
			t.Errorf("OpRegister(%d): got %s, want %s", i, reg, RegisterNone)
		}
	}

	if inst.SegmentPrefix() != RegisterNone {
		t.Errorf("SegmentPrefix(): got %s, want %s", inst.SegmentPrefix(), RegisterNone)
	}

	if inst.MemoryIndexScale() != 1 {
		t.Errorf("MemoryIndexScale(): got %d, want 1", inst.MemoryIndexScale())
	}
}

func TestInstructionIP(t *testing.T) {
	inst := NewInstruction(CodeNopd)
	inst.SetLen(5)
	inst.SetIP(0x1_0000_1000)
	if got, want := inst.NextIP(), uint64(0x1_0000_1005); got != want {
		t.Errorf("NextIP(): got %#x, want %#x", got, want)
	}

	if got, want := inst.IP(), uint64(0x1_0000_1000); got != want {
		t.Errorf("IP(): got %#x, want %#x", got, want)
	}

	if got, want := inst.IP32(), uint32(0x1000); got != want {
		t.Errorf("IP32(): got %#x, want %#x", got, want)
	}

	if got, want := inst.NextIP16(), uint16(0x1005); got != want {
		t.Errorf("NextIP16(): got %#x, want %#x", got, want)
	}

	inst.SetIP16(0xfffe)
	if got, want := inst.NextIP(), uint64(0x1_0003); got != want {
		t.Errorf("SetIP16: got next IP %#x, want %#x", got, want)
	}

	if got, want := inst.IP16(), uint16(0xfffe); got != want {
		t.Errorf("IP16(): got %#x, want %#x", got, want)
	}

	inst.SetNextIP32(0x2000)
	if got, want := inst.IP(), uint64(0x1ffb); got != want {
		t.Errorf("IP() after SetNextIP32: got %#x, want %#x", got, want)
	}

	inst.SetLen(16)
	if got := inst.Len(); got != 0 {
		t.Errorf("Len() after SetLen(16): got %d, want 0", got)
	}

	inst.SetCodeSize(CodeSize32)
	if got := inst.CodeSize(); got != CodeSize32 {
		t.Errorf("CodeSize(): got %s, want %s", got, CodeSize32)
	}
}

func TestInstructionImmediates(t *testing.T) {
	tests := []struct {
		Kind OpKind
		Set  uint64
		Want uint64
	}{
		{OpKindImmediate8, 0, 0},
		{OpKindImmediate8, 0x1234, 0x34},
		{OpKindImmediate8_2nd, 0xff, 0xff},
		{OpKindImmediate16, 0x1_2345, 0x2345},
		{OpKindImmediate32, 0x1_2345_6789, 0x2345_6789},
		{OpKindImmediate64, 0, 0},
		{OpKindImmediate64, 0xffff_ffff_ffff_ffff, 0xffff_ffff_ffff_ffff},
		{OpKindImmediate64, 0x1234_5678_9abc_def0, 0x1234_5678_9abc_def0},
		{OpKindImmediate8to16, 0x80, 0xffff_ffff_ffff_ff80},
		{OpKindImmediate8to32, 0x7f, 0x7f},
		{OpKindImmediate8to64, 0xff, 0xffff_ffff_ffff_ffff},
		{OpKindImmediate8to64, 0xffff_ffff_ffff_ffff, 0xffff_ffff_ffff_ffff},
		{OpKindImmediate32to64, 0x8000_0000, 0xffff_ffff_8000_0000},
		{OpKindImmediate32to64, 0x7fff_ffff, 0x7fff_ffff},
	}

	for _, test := range tests {
		var inst Instruction
		inst.SetOp1Kind(test.Kind)
		if err := inst.SetImmediateU64(1, test.Set); err != nil {
			t.Fatalf("%s: SetImmediateU64(1, %#x): %v", test.Kind, test.Set, err)
		}

		got, err := inst.Immediate(1)
		if err != nil {
			t.Fatalf("%s: Immediate(1): %v", test.Kind, err)
		}

		if got != test.Want {
			t.Errorf("%s: set %#x: got %#x, want %#x", test.Kind, test.Set, got, test.Want)
		}
	}
}

func TestInstructionImmediateErrors(t *testing.T) {
	var inst Instruction
	inst.SetOp0Kind(OpKindRegister)
	if _, err := inst.Immediate(0); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Immediate(0) of a register: got error %v, want %v", err, ErrNotSupported)
	}

	if err := inst.SetImmediateI32(0, -1); !errors.Is(err, ErrNotSupported) {
		t.Errorf("SetImmediateI32(0) of a register: got error %v, want %v", err, ErrNotSupported)
	}

	if _, err := inst.Immediate(5); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("Immediate(5): got error %v, want %v", err, ErrInvalidOperand)
	}

	if err := inst.SetImmediateU64(-1, 0); !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("SetImmediateU64(-1): got error %v, want %v", err, ErrInvalidOperand)
	}

	// The fifth operand is always an
	// 8-bit immediate.
	if err := inst.SetImmediateU64(4, 0x1ff); err != nil {
		t.Fatalf("SetImmediateU64(4): %v", err)
	}

	if got, err := inst.Immediate(4); err != nil || got != 0xff {
		t.Errorf("Immediate(4): got %#x, %v, want 0xff", got, err)
	}
}

func TestInstructionOperandRange(t *testing.T) {
	var inst Instruction
	for _, operand := range []int{-1, 5, 100} {
		if _, err := inst.OpKind(operand); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("OpKind(%d): got error %v, want %v", operand, err, ErrInvalidOperand)
		}

		if err := inst.SetOpKind(operand, OpKindRegister); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("SetOpKind(%d): got error %v, want %v", operand, err, ErrInvalidOperand)
		}

		if _, err := inst.OpRegister(operand); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("OpRegister(%d): got error %v, want %v", operand, err, ErrInvalidOperand)
		}

		if err := inst.SetOpRegister(operand, RAX); !errors.Is(err, ErrInvalidOperand) {
			t.Errorf("SetOpRegister(%d): got error %v, want %v", operand, err, ErrInvalidOperand)
		}
	}

	if kind, err := inst.OpKind(4); err != nil || kind != OpKindImmediate8 {
		t.Errorf("OpKind(4): got %s, %v, want %s", kind, err, OpKindImmediate8)
	}

	if err := inst.SetOpKind(4, OpKindImmediate8); err != nil {
		t.Errorf("SetOpKind(4, %s): %v", OpKindImmediate8, err)
	}

	if err := inst.SetOp4Kind(OpKindRegister); !errors.Is(err, ErrNotSupported) {
		t.Errorf("SetOp4Kind(%s): got error %v, want %v", OpKindRegister, err, ErrNotSupported)
	}

	if reg, err := inst.OpRegister(4); err != nil || reg != RegisterNone {
		t.Errorf("OpRegister(4): got %s, %v, want %s", reg, err, RegisterNone)
	}

	if err := inst.SetOpRegister(4, RegisterNone); err != nil {
		t.Errorf("SetOpRegister(4, %s): %v", RegisterNone, err)
	}

	if err := inst.SetOp4Register(RAX); !errors.Is(err, ErrNotSupported) {
		t.Errorf("SetOp4Register(%s): got error %v, want %v", RAX, err, ErrNotSupported)
	}
}

func TestInstructionOperands(t *testing.T) {
	var inst Instruction
	inst.SetCode(CodeInsertq_xmm_xmm_imm8_imm8)
	kinds := []OpKind{OpKindRegister, OpKindRegister, OpKindImmediate8, OpKindImmediate8_2nd}
	for i, kind := range kinds {
		if err := inst.SetOpKind(i, kind); err != nil {
			t.Fatalf("SetOpKind(%d, %s): %v", i, kind, err)
		}
	}

	inst.SetOp0Register(XMM1)
	inst.SetOp1Register(XMM31)
	inst.SetImmediate8(0x12)
	inst.SetImmediate8_2nd(0x34)

	gotKinds := make([]OpKind, inst.OpCount())
	for i := range gotKinds {
		gotKinds[i], _ = inst.OpKind(i)
	}

	if diff := cmp.Diff(kinds, gotKinds); diff != "" {
		t.Fatalf("OpKind(): (-want, +got)\n%s", diff)
	}

	if got := inst.Op1Register(); got != XMM31 {
		t.Errorf("Op1Register(): got %s, want %s", got, XMM31)
	}

	if imm, _ := inst.Immediate(2); imm != 0x12 {
		t.Errorf("Immediate(2): got %#x, want 0x12", imm)
	}

	if imm, _ := inst.Immediate(3); imm != 0x34 {
		t.Errorf("Immediate(3): got %#x, want 0x34", imm)
	}

	if !inst.HasOpKind(OpKindImmediate8_2nd) {
		t.Errorf("HasOpKind(%s): got false, want true", OpKindImmediate8_2nd)
	}

	if inst.HasOpKind(OpKindMemory) {
		t.Errorf("HasOpKind(%s): got true, want false", OpKindMemory)
	}

	// Operand kinds are independent.
	inst.SetOp2Kind(OpKindMemory64)
	if got := inst.Op3Kind(); got != OpKindImmediate8_2nd {
		t.Errorf("Op3Kind() after SetOp2Kind: got %s, want %s", got, OpKindImmediate8_2nd)
	}

	if got := inst.Op1Kind(); got != OpKindRegister {
		t.Errorf("Op1Kind() after SetOp2Kind: got %s, want %s", got, OpKindRegister)
	}
}

func TestInstructionPrefixes(t *testing.T) {
	type prefixes struct {
		Lock, Xacquire, Xrelease, Repe, Repne bool
	}

	get := func(inst *Instruction) prefixes {
		return prefixes{
			Lock:     inst.HasLockPrefix(),
			Xacquire: inst.HasXacquirePrefix(),
			Xrelease: inst.HasXreleasePrefix(),
			Repe:     inst.HasRepePrefix(),
			Repne:    inst.HasRepnePrefix(),
		}
	}

	tests := []struct {
		Name string
		Set  func(*Instruction, bool)
		Want prefixes
	}{
		{"lock", (*Instruction).SetHasLockPrefix, prefixes{Lock: true}},
		{"xacquire", (*Instruction).SetHasXacquirePrefix, prefixes{Xacquire: true}},
		{"xrelease", (*Instruction).SetHasXreleasePrefix, prefixes{Xrelease: true}},
		{"repe", (*Instruction).SetHasRepePrefix, prefixes{Repe: true}},
		{"repne", (*Instruction).SetHasRepnePrefix, prefixes{Repne: true}},
	}

	all := prefixes{true, true, true, true, true}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := NewInstruction(CodeCmpxchg_rm32_r32)
			test.Set(&inst, true)
			if diff := cmp.Diff(test.Want, get(&inst)); diff != "" {
				t.Fatalf("set one prefix: (-want, +got)\n%s", diff)
			}

			for _, other := range tests {
				other.Set(&inst, true)
			}

			test.Set(&inst, false)
			want := all
			switch test.Name {
			case "lock":
				want.Lock = false
			case "xacquire":
				want.Xacquire = false
			case "xrelease":
				want.Xrelease = false
			case "repe":
				want.Repe = false
			case "repne":
				want.Repne = false
			}

			if diff := cmp.Diff(want, get(&inst)); diff != "" {
				t.Fatalf("clear one prefix: (-want, +got)\n%s", diff)
			}

			if inst.Code() != CodeCmpxchg_rm32_r32 {
				t.Fatalf("prefixes changed the code to %s", inst.Code())
			}
		})
	}

	inst := NewInstruction(CodeMovsb_m8_m8)
	inst.SetHasRepPrefix(true)
	if !inst.HasRepePrefix() || !inst.HasRepPrefix() {
		t.Errorf("SetHasRepPrefix: got repe %v, rep %v, want true", inst.HasRepePrefix(), inst.HasRepPrefix())
	}
}

func TestInstructionEqual(t *testing.T) {
	a := NewInstruction(CodeMov_r64_rm64)
	a.SetOp0Register(RAX)
	a.SetOp1Register(RBX)
	a.SetNextIP(0x1003)
	a.SetLen(3)
	a.SetCodeSize(CodeSize64)

	b := a
	b.SetLen(5)
	b.SetCodeSize(CodeSize32)

	if !a.Equal(&b) {
		t.Errorf("Equal(): instructions differing in length and code size are not equal")
	}

	if a.EqualAllBits(&b) {
		t.Errorf("EqualAllBits(): instructions differing in length and code size are equal")
	}

	if a.Hash() != b.Hash() {
		t.Errorf("Hash(): equal instructions have hashes %#x and %#x", a.Hash(), b.Hash())
	}

	c := b
	if !c.EqualAllBits(&b) {
		t.Errorf("EqualAllBits(): copy is not identical")
	}

	others := []func(*Instruction){
		func(inst *Instruction) { inst.SetNextIP(0x1004) },
		func(inst *Instruction) { inst.SetOp1Register(RCX) },
		func(inst *Instruction) { inst.SetCode(CodeMov_rm64_r64) },
		func(inst *Instruction) { inst.SetHasLockPrefix(true) },
		func(inst *Instruction) { inst.SetSegmentPrefix(FS) },
		func(inst *Instruction) { inst.SetOp1Kind(OpKindMemory) },
	}

	keys := map[InstructionKey]int{a.Key(): -1}
	for i, change := range others {
		d := a
		change(&d)
		if a.Equal(&d) {
			t.Errorf("change %d: instructions are still equal", i)
		}

		if _, ok := keys[d.Key()]; ok {
			t.Errorf("change %d: key already seen", i)
		}

		keys[d.Key()] = i
	}

	if got, ok := keys[b.Key()]; !ok || got != -1 {
		t.Errorf("key of equal instruction: got %d, %v, want -1", got, ok)
	}
}

func TestInstructionClamping(t *testing.T) {
	var inst Instruction
	inst.codeFlags = codeMask | (roundingControlMask << roundingControlShift)
	inst.opKindFlags = opKindMask | opKindMask<<op3KindShift
	inst.reg0 = 0xff
	inst.memBaseReg = 0xfe
	inst.memoryFlags = memSegmentPrefixMask << memSegmentPrefixShift

	if got := inst.Code(); got != CodeINVALID {
		t.Errorf("Code(): got %s, want %s", got, CodeINVALID)
	}

	if got := inst.RoundingControl(); got != RoundingControlNone {
		t.Errorf("RoundingControl(): got %s, want %s", got, RoundingControlNone)
	}

	if got := inst.Op0Kind(); got != OpKindRegister {
		t.Errorf("Op0Kind(): got %s, want %s", got, OpKindRegister)
	}

	if got := inst.Op3Kind(); got != OpKindRegister {
		t.Errorf("Op3Kind(): got %s, want %s", got, OpKindRegister)
	}

	if got := inst.Op0Register(); got != RegisterNone {
		t.Errorf("Op0Register(): got %s, want %s", got, RegisterNone)
	}

	if got := inst.MemoryBase(); got != RegisterNone {
		t.Errorf("MemoryBase(): got %s, want %s", got, RegisterNone)
	}

	if got := inst.SegmentPrefix(); got != RegisterNone {
		t.Errorf("SegmentPrefix(): got %s, want %s", got, RegisterNone)
	}
}

func TestInstructionMasking(t *testing.T) {
	inst := NewInstruction(CodeEVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er)
	if inst.HasOpmask() || inst.Opmask() != RegisterNone {
		t.Fatalf("new instruction has opmask %s", inst.Opmask())
	}

	if !inst.MergingMasking() || inst.ZeroingMasking() {
		t.Fatalf("new instruction does not use merging masking")
	}

	inst.SetOpmask(K1)
	inst.SetZeroingMasking(true)
	if !inst.HasOpmask() || inst.Opmask() != K1 {
		t.Errorf("Opmask(): got %s, %v, want %s", inst.Opmask(), inst.HasOpmask(), K1)
	}

	if !inst.ZeroingMasking() || inst.MergingMasking() {
		t.Errorf("ZeroingMasking(): got %v, MergingMasking(): got %v", inst.ZeroingMasking(), inst.MergingMasking())
	}

	inst.SetOpmask(K7)
	if inst.Opmask() != K7 {
		t.Errorf("Opmask(): got %s, want %s", inst.Opmask(), K7)
	}

	inst.SetOpmask(K0)
	if inst.HasOpmask() {
		t.Errorf("SetOpmask(%s): got opmask %s, want none", K0, inst.Opmask())
	}

	inst.SetMergingMasking(true)
	if inst.ZeroingMasking() {
		t.Errorf("SetMergingMasking(true): still zeroing")
	}

	for rc := RoundingControl(0); rc < NumberOfRoundingControls; rc++ {
		inst.SetRoundingControl(rc)
		if got := inst.RoundingControl(); got != rc {
			t.Errorf("RoundingControl(): got %s, want %s", got, rc)
		}
	}

	inst.SetSuppressAllExceptions(true)
	if !inst.SuppressAllExceptions() {
		t.Errorf("SuppressAllExceptions(): got false, want true")
	}

	if inst.Code() != CodeEVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er {
		t.Errorf("Code(): got %s after changing decorations", inst.Code())
	}
}

func TestInstructionMemoryFields(t *testing.T) {
	var inst Instruction
	displSizes := map[int]int{0: 0, 1: 1, 2: 2, 3: 8, 4: 4, 8: 8, 16: 8}
	for set, want := range displSizes {
		inst.SetMemoryDisplSize(set)
		if got := inst.MemoryDisplSize(); got != want {
			t.Errorf("SetMemoryDisplSize(%d): got %d, want %d", set, got, want)
		}
	}

	scales := map[int]int{1: 1, 2: 2, 4: 4, 8: 8, 3: 8}
	for set, want := range scales {
		inst.SetMemoryIndexScale(set)
		if got := inst.MemoryIndexScale(); got != want {
			t.Errorf("SetMemoryIndexScale(%d): got %d, want %d", set, got, want)
		}
	}

	for _, seg := range []Register{ES, CS, SS, DS, FS, GS} {
		inst.SetSegmentPrefix(seg)
		if got := inst.SegmentPrefix(); got != seg {
			t.Errorf("SetSegmentPrefix(%s): got %s", seg, got)
		}
	}

	inst.SetSegmentPrefix(RAX)
	if got := inst.SegmentPrefix(); got != RegisterNone {
		t.Errorf("SetSegmentPrefix(%s): got %s, want %s", RAX, got, RegisterNone)
	}

	inst.SetMemoryDisplacement(0xffff_fff0)
	if got := inst.MemoryDisplacement64(); got != 0xffff_ffff_ffff_fff0 {
		t.Errorf("MemoryDisplacement64(): got %#x", got)
	}

	// The other memory fields are
	// unchanged by the displacement
	// size and scale.
	inst.SetMemoryBase(RBP)
	inst.SetMemoryIndex(R13)
	inst.SetIsBroadcast(true)
	inst.SetMemoryDisplSize(4)
	inst.SetMemoryIndexScale(2)
	want := MemoryOperand{
		Base:         RBP,
		Index:        R13,
		Scale:        2,
		Displacement: -0x10,
		DisplSize:    4,
		Broadcast:    true,
	}

	if diff := cmp.Diff(want, inst.MemoryOperand()); diff != "" {
		t.Fatalf("MemoryOperand(): (-want, +got)\n%s", diff)
	}

	if got := inst.MemorySegment(); got != SS {
		t.Errorf("MemorySegment() with base %s: got %s, want %s", RBP, got, SS)
	}

	inst.SetMemoryBase(RAX)
	if got := inst.MemorySegment(); got != DS {
		t.Errorf("MemorySegment() with base %s: got %s, want %s", RAX, got, DS)
	}

	inst.SetSegmentPrefix(GS)
	if got := inst.MemorySegment(); got != GS {
		t.Errorf("MemorySegment() with prefix %s: got %s", GS, got)
	}

	inst.SetIsBroadcast(false)
	if inst.IsBroadcast() {
		t.Errorf("SetIsBroadcast(false): still broadcast")
	}
}

func TestInstructionMemorySize(t *testing.T) {
	inst := NewInstruction(CodeEVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er)
	if got := inst.MemorySize(); got != MemorySizePacked512_Float32 {
		t.Errorf("MemorySize(): got %s, want %s", got, MemorySizePacked512_Float32)
	}

	inst.SetIsBroadcast(true)
	if got := inst.MemorySize(); got != MemorySizeBroadcast512_Float32 {
		t.Errorf("MemorySize() with broadcast: got %s, want %s", got, MemorySizeBroadcast512_Float32)
	}

	inst = NewInstruction(CodeMov_r64_rm64)
	if got := inst.MemorySize(); got != MemorySizeUInt64 {
		t.Errorf("MemorySize(): got %s, want %s", got, MemorySizeUInt64)
	}
}

func TestInstructionVSIB(t *testing.T) {
	tests := []struct {
		Code Code
		Is64 bool
		OK   bool
	}{
		{CodeEVEX_Vpgatherdd_zmm_k1_vm32z, false, true},
		{CodeEVEX_Vpgatherqq_zmm_k1_vm64z, true, true},
		{CodeVEX_Vgatherdpd_ymm_vm32x_ymm, false, true},
		{CodeEVEX_Vscatterpf1qpd_vm64z_k1, true, true},
		{CodeMov_r64_rm64, false, false},
		{CodeINVALID, false, false},
	}

	for _, test := range tests {
		inst := NewInstruction(test.Code)
		is64, ok := inst.VSIB()
		if is64 != test.Is64 || ok != test.OK {
			t.Errorf("%s.VSIB(): got %v, %v, want %v, %v", test.Code, is64, ok, test.Is64, test.OK)
		}

		if inst.IsVSIB() != test.OK {
			t.Errorf("%s.IsVSIB(): got %v, want %v", test.Code, inst.IsVSIB(), test.OK)
		}

		if inst.IsVSIB32() != (test.OK && !test.Is64) {
			t.Errorf("%s.IsVSIB32(): got %v", test.Code, inst.IsVSIB32())
		}

		if inst.IsVSIB64() != (test.OK && test.Is64) {
			t.Errorf("%s.IsVSIB64(): got %v", test.Code, inst.IsVSIB64())
		}
	}

	// The VSIB codes are exactly those
	// with a vm32 or vm64 operand.
	var vsib32, vsib64 int
	for c := Code(0); int(c) < NumberOfCodes; c++ {
		is64, ok := c.VSIB()
		name := c.String()
		switch {
		case strings.Contains(name, "_vm32"):
			vsib32++
			if !ok || is64 {
				t.Errorf("%s.VSIB(): got %v, %v, want false, true", c, is64, ok)
			}
		case strings.Contains(name, "_vm64"):
			vsib64++
			if !ok || !is64 {
				t.Errorf("%s.VSIB(): got %v, %v, want true, true", c, is64, ok)
			}
		default:
			if ok {
				t.Errorf("%s.VSIB(): got %v, %v, want false, false", c, is64, ok)
			}
		}
	}

	if vsib32 != 40 || vsib64 != 40 {
		t.Errorf("got %d vsib32 and %d vsib64 codes, want 40 of each", vsib32, vsib64)
	}
}

func TestInstructionBranches(t *testing.T) {
	tests := []struct {
		Kind   OpKind
		Set    func(*Instruction)
		Target uint64
	}{
		{OpKindNearBranch16, func(inst *Instruction) { inst.SetNearBranch16(0x1234) }, 0x1234},
		{OpKindNearBranch32, func(inst *Instruction) { inst.SetNearBranch32(0x8000_1234) }, 0x8000_1234},
		{OpKindNearBranch64, func(inst *Instruction) { inst.SetNearBranch64(0xffff_8000_0000_1234) }, 0xffff_8000_0000_1234},
		{OpKindFarBranch16, func(inst *Instruction) { inst.SetFarBranch16(0x1234) }, 0},
	}

	for _, test := range tests {
		var inst Instruction
		inst.SetOp0Kind(test.Kind)
		test.Set(&inst)
		if got := inst.NearBranchTarget(); got != test.Target {
			t.Errorf("%s: NearBranchTarget(): got %#x, want %#x", test.Kind, got, test.Target)
		}
	}

	var inst Instruction
	inst.SetOp0Kind(OpKindFarBranch32)
	inst.SetFarBranch32(0xdead_beef)
	inst.SetFarBranchSelector(0x0008)
	if inst.FarBranch32() != 0xdead_beef || inst.FarBranchSelector() != 0x0008 {
		t.Errorf("far branch: got %#x:%#x, want 0x8:0xdeadbeef", inst.FarBranchSelector(), inst.FarBranch32())
	}
}

func TestInstructionGoString(t *testing.T) {
	inst, err := New(CodeMov_r64_rm64, Reg(RAX), Mem(MemoryOperand{Segment: FS, Base: RBX, Index: RCX, Scale: 8, Displacement: -8}))
	if err != nil {
		t.Fatal(err)
	}

	inst.SetHasLockPrefix(true)
	want := "x86.Instruction{Code: Mov_r64_rm64, IP: 0x0, Len: 0, CodeSize: unknown, Op0: Register(rax), Op1: Memory(fs:[rbx+rcx*8-0x8]), Lock}"
	if got := inst.GoString(); got != want {
		t.Fatalf("GoString():\n got %s\nwant %s", got, want)
	}
}
