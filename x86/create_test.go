// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		Name     string
		Code     Code
		Operands []Operand
		Check    func(t *testing.T, inst *Instruction)
	}{
		{
			Name:     "register register",
			Code:     CodeAdd_rm64_r64,
			Operands: []Operand{Reg(R12), Reg(RSI)},
			Check: func(t *testing.T, inst *Instruction) {
				if inst.Op0Register() != R12 || inst.Op1Register() != RSI {
					t.Errorf("got registers %s, %s", inst.Op0Register(), inst.Op1Register())
				}
			},
		},
		{
			Name:     "sign-extended immediate",
			Code:     CodeAdd_rm32_imm8,
			Operands: []Operand{Reg(EDX), Imm(OpKindImmediate8to32, 0xfe)},
			Check: func(t *testing.T, inst *Instruction) {
				if got := inst.Immediate8to32(); got != -2 {
					t.Errorf("Immediate8to32(): got %d, want -2", got)
				}
			},
		},
		{
			Name:     "64-bit immediate",
			Code:     CodeMov_r64_imm64,
			Operands: []Operand{Reg(RAX), Imm(OpKindImmediate64, 0x1122_3344_5566_7788)},
			Check: func(t *testing.T, inst *Instruction) {
				if got := inst.Immediate64(); got != 0x1122_3344_5566_7788 {
					t.Errorf("Immediate64(): got %#x", got)
				}
			},
		},
		{
			Name:     "enter",
			Code:     CodeEnterq_imm16_imm8,
			Operands: []Operand{Imm(OpKindImmediate16, 0x20), Imm(OpKindImmediate8_2nd, 1)},
			Check: func(t *testing.T, inst *Instruction) {
				if inst.Immediate16() != 0x20 || inst.Immediate8_2nd() != 1 {
					t.Errorf("got immediates %#x, %#x", inst.Immediate16(), inst.Immediate8_2nd())
				}
			},
		},
		{
			Name:     "near branch",
			Code:     CodeJmp_rel32_64,
			Operands: []Operand{Branch(OpKindNearBranch64, 0xffff_ffff_8000_0000)},
			Check: func(t *testing.T, inst *Instruction) {
				if got := inst.NearBranchTarget(); got != 0xffff_ffff_8000_0000 {
					t.Errorf("NearBranchTarget(): got %#x", got)
				}
			},
		},
		{
			Name:     "far branch",
			Code:     CodeJmp_ptr1632,
			Operands: []Operand{FarBranch(OpKindFarBranch32, 0x10, 0x12345678)},
			Check: func(t *testing.T, inst *Instruction) {
				if inst.FarBranchSelector() != 0x10 || inst.FarBranch32() != 0x12345678 {
					t.Errorf("got far branch %#x:%#x", inst.FarBranchSelector(), inst.FarBranch32())
				}
			},
		},
		{
			Name: "memory",
			Code: CodeMov_r64_rm64,
			Operands: []Operand{
				Reg(RAX),
				Mem(MemoryOperand{Base: RSP, Index: R9, Scale: 4, Displacement: 0x100}),
			},
			Check: func(t *testing.T, inst *Instruction) {
				want := MemoryOperand{Base: RSP, Index: R9, Scale: 4, Displacement: 0x100, DisplSize: 4}
				if diff := cmp.Diff(want, inst.MemoryOperand()); diff != "" {
					t.Errorf("MemoryOperand(): (-want, +got)\n%s", diff)
				}
			},
		},
		{
			Name: "broadcast",
			Code: CodeEVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
			Operands: []Operand{
				Reg(ZMM1),
				Reg(ZMM2),
				Mem(MemoryOperand{Base: RDI, Broadcast: true}),
			},
			Check: func(t *testing.T, inst *Instruction) {
				if got := inst.MemorySize(); got != MemorySizeBroadcast512_Float32 {
					t.Errorf("MemorySize(): got %s", got)
				}

				if got := inst.MemoryDisplSize(); got != 0 {
					t.Errorf("MemoryDisplSize(): got %d, want 0", got)
				}
			},
		},
		{
			Name:     "absolute memory",
			Code:     CodeMov_RAX_moffs64,
			Operands: []Operand{Reg(RAX), Mem64(FS, 0x8000_0000_0000_0010)},
			Check: func(t *testing.T, inst *Instruction) {
				if inst.MemoryAddress64() != 0x8000_0000_0000_0010 || inst.SegmentPrefix() != FS {
					t.Errorf("got %s:%#x", inst.SegmentPrefix(), inst.MemoryAddress64())
				}
			},
		},
		{
			Name:     "string",
			Code:     CodeMovsq_m64_m64,
			Operands: []Operand{StringMem(OpKindMemoryESRDI, RegisterNone), StringMem(OpKindMemorySegRSI, GS)},
			Check: func(t *testing.T, inst *Instruction) {
				if inst.Op0Kind() != OpKindMemoryESRDI || inst.Op1Kind() != OpKindMemorySegRSI {
					t.Errorf("got kinds %s, %s", inst.Op0Kind(), inst.Op1Kind())
				}

				if inst.MemorySegment() != GS {
					t.Errorf("MemorySegment(): got %s, want %s", inst.MemorySegment(), GS)
				}
			},
		},
		{
			Name:     "string with es last",
			Code:     CodeCmpsb_m8_m8,
			Operands: []Operand{StringMem(OpKindMemorySegRSI, FS), StringMem(OpKindMemoryESRDI, RegisterNone)},
			Check: func(t *testing.T, inst *Instruction) {
				if inst.SegmentPrefix() != FS {
					t.Errorf("SegmentPrefix(): got %s, want %s", inst.SegmentPrefix(), FS)
				}
			},
		},
		{
			Name: "four operands",
			Code: CodeInsertq_xmm_xmm_imm8_imm8,
			Operands: []Operand{
				Reg(XMM1),
				Reg(XMM2),
				Imm(OpKindImmediate8, 3),
				Imm(OpKindImmediate8_2nd, 4),
			},
			Check: func(t *testing.T, inst *Instruction) {
				if inst.Immediate8() != 3 || inst.Immediate8_2nd() != 4 {
					t.Errorf("got immediates %d, %d", inst.Immediate8(), inst.Immediate8_2nd())
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst, err := New(test.Code, test.Operands...)
			if err != nil {
				t.Fatalf("New(%s): %v", test.Code, err)
			}

			if inst.Code() != test.Code {
				t.Fatalf("Code(): got %s, want %s", inst.Code(), test.Code)
			}

			for i, op := range test.Operands {
				kind, err := inst.OpKind(i)
				if err != nil {
					t.Fatalf("OpKind(%d): %v", i, err)
				}

				if kind != op.Kind {
					t.Errorf("OpKind(%d): got %s, want %s", i, kind, op.Kind)
				}
			}

			test.Check(t, &inst)
		})
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		Name     string
		Code     Code
		Operands []Operand
		Err      error
	}{
		{
			Name:     "invalid code",
			Code:     Code(NumberOfCodes),
			Operands: nil,
		},
		{
			Name:     "too few operands",
			Code:     CodeMov_r64_rm64,
			Operands: []Operand{Reg(RAX)},
		},
		{
			Name:     "too many operands",
			Code:     CodeNopq,
			Operands: []Operand{Reg(RAX)},
		},
		{
			Name:     "invalid kind",
			Code:     CodePush_r64,
			Operands: []Operand{{Kind: NumberOfOpKinds}},
		},
		{
			Name: "immediate and memory",
			Code: CodeMov_rm64_r64,
			Operands: []Operand{
				Imm(OpKindImmediate64, 1),
				Mem(MemoryOperand{Base: RAX}),
			},
			Err: ErrNotSupported,
		},
		{
			Name: "two memory operands",
			Code: CodeMov_rm64_r64,
			Operands: []Operand{
				Mem(MemoryOperand{Base: RAX}),
				StringMem(OpKindMemorySegRSI, RegisterNone),
			},
			Err: ErrNotSupported,
		},
		{
			Name:     "invalid register",
			Code:     CodeMov_r64_rm64,
			Operands: []Operand{Reg(Register(250)), Reg(RBX)},
		},
		{
			Name:     "invalid base register",
			Code:     CodeLea_r64_m,
			Operands: []Operand{Reg(RAX), Mem(MemoryOperand{Base: Register(NumberOfRegisters)})},
		},
		{
			Name:     "invalid index register",
			Code:     CodeLea_r64_m,
			Operands: []Operand{Reg(RAX), Mem(MemoryOperand{Base: RBX, Index: Register(255), Scale: 1})},
		},
		{
			Name:     "large displacement",
			Code:     CodeLea_r64_m,
			Operands: []Operand{Reg(RAX), Mem(MemoryOperand{Base: RBX, Displacement: 0x1_0000_0010})},
			Err:      ErrNotSupported,
		},
		{
			Name:     "small displacement",
			Code:     CodeLea_r64_m,
			Operands: []Operand{Reg(RAX), Mem(MemoryOperand{Base: RBX, Displacement: -0x8000_0001})},
			Err:      ErrNotSupported,
		},
		{
			Name: "two immediates",
			Code: CodeEnterq_imm16_imm8,
			Operands: []Operand{
				Imm(OpKindImmediate16, 1),
				Imm(OpKindImmediate8, 2),
			},
			Err: ErrNotSupported,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst, err := New(test.Code, test.Operands...)
			if err == nil {
				t.Fatalf("New(%s): got %#v, want error", test.Code, &inst)
			}

			if test.Err != nil && !errors.Is(err, test.Err) {
				t.Fatalf("New(%s): got error %v, want %v", test.Code, err, test.Err)
			}
		})
	}
}

func TestNewDisplacement(t *testing.T) {
	tests := []struct {
		Displ     int64
		DisplSize int
		Want      uint32
	}{
		{-0x80, 1, 0xffff_ff80},
		{0x80, 4, 0x80},
		{-0x8000_0000, 4, 0x8000_0000},
		{0xffff_fff0, 4, 0xffff_fff0},
	}

	for _, test := range tests {
		inst, err := New(CodeLea_r32_m, Reg(EAX), Mem(MemoryOperand{Base: EBX, Displacement: test.Displ}))
		if err != nil {
			t.Fatalf("New(%#x): %v", test.Displ, err)
		}

		if got := inst.MemoryDisplacement(); got != test.Want {
			t.Errorf("New(%#x): MemoryDisplacement(): got %#x, want %#x", test.Displ, got, test.Want)
		}

		if got := inst.MemoryDisplSize(); got != test.DisplSize {
			t.Errorf("New(%#x): MemoryDisplSize(): got %d, want %d", test.Displ, got, test.DisplSize)
		}

		// The result must survive the
		// binary round trip.
		data, err := inst.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}

		var got Instruction
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatalf("New(%#x): UnmarshalBinary(): %v", test.Displ, err)
		}
	}
}

func TestNewDeclareData(t *testing.T) {
	if _, err := NewDeclareByte(); err == nil {
		t.Errorf("NewDeclareByte(): got no error for no data")
	}

	if _, err := NewDeclareByte(make([]byte, 17)...); err == nil {
		t.Errorf("NewDeclareByte(): got no error for 17 bytes")
	}

	if _, err := NewDeclareQword(1, 2, 3); err == nil {
		t.Errorf("NewDeclareQword(): got no error for 3 qwords")
	}

	inst, err := NewDeclareDword(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("NewDeclareDword(): %v", err)
	}

	if inst.Code() != CodeDeclareDword || inst.DeclareDataLen() != 4 {
		t.Fatalf("got %s with %d values", inst.Code(), inst.DeclareDataLen())
	}

	got := make([]uint32, inst.DeclareDataLen())
	for i := range got {
		got[i], err = inst.DeclareDwordValue(i)
		if err != nil {
			t.Fatalf("DeclareDwordValue(%d): %v", i, err)
		}
	}

	if diff := cmp.Diff([]uint32{1, 2, 3, 4}, got); diff != "" {
		t.Fatalf("DeclareDwordValue(): (-want, +got)\n%s", diff)
	}
}
