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

func TestRegisterArithmetic(t *testing.T) {
	tests := []struct {
		Name string
		Reg  Register
		N    int
		Want Register
		Err  bool
	}{
		{
			Name: "al plus 19",
			Reg:  AL,
			N:    19,
			Want: R15L,
		},
		{
			Name: "eax plus 1",
			Reg:  EAX,
			N:    1,
			Want: ECX,
		},
		{
			Name: "xmm0 plus 15",
			Reg:  XMM0,
			N:    15,
			Want: XMM15,
		},
		{
			Name: "zero",
			Reg:  K3,
			N:    0,
			Want: K3,
		},
		{
			Name: "negative",
			Reg:  RCX,
			N:    -1,
			Want: RAX,
		},
		{
			Name: "last register",
			Reg:  TR0,
			N:    7,
			Want: TR7,
		},
		{
			Name: "past the end",
			Reg:  TR7,
			N:    1,
			Err:  true,
		},
		{
			Name: "before none",
			Reg:  RegisterNone,
			N:    -1,
			Err:  true,
		},
		{
			Name: "large",
			Reg:  AL,
			N:    1 << 20,
			Err:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := test.Reg.Add(test.N)
			if test.Err {
				if !errors.Is(err, ErrRegisterOutOfRange) {
					t.Fatalf("%s.Add(%d): got error %v, want %v", test.Reg, test.N, err, ErrRegisterOutOfRange)
				}

				return
			}

			if err != nil {
				t.Fatalf("%s.Add(%d): unexpected error: %v", test.Reg, test.N, err)
			}

			if got != test.Want {
				t.Fatalf("%s.Add(%d): got %s, want %s", test.Reg, test.N, got, test.Want)
			}

			// Sub is the inverse of Add.
			back, err := got.Sub(test.N)
			if err != nil {
				t.Fatalf("%s.Sub(%d): unexpected error: %v", got, test.N, err)
			}

			if back != test.Reg {
				t.Fatalf("%s.Sub(%d): got %s, want %s", got, test.N, back, test.Reg)
			}
		})
	}
}

func TestRegisterSubOutOfRange(t *testing.T) {
	if _, err := AL.Sub(2); !errors.Is(err, ErrRegisterOutOfRange) {
		t.Fatalf("AL.Sub(2): got error %v, want %v", err, ErrRegisterOutOfRange)
	}

	if _, err := TR7.Sub(-1); !errors.Is(err, ErrRegisterOutOfRange) {
		t.Fatalf("TR7.Sub(-1): got error %v, want %v", err, ErrRegisterOutOfRange)
	}
}

func TestRegisterClasses(t *testing.T) {
	// Each class must be contiguous and
	// start at the documented register.
	tests := []struct {
		Name  string
		First Register
		Count int
		Is    func(Register) bool
		Type  RegisterType
		Bits  int
	}{
		{"gpr8", AL, 20, Register.IsGPR8, TypeGeneralPurpose, 8},
		{"gpr16", AX, 16, Register.IsGPR16, TypeGeneralPurpose, 16},
		{"gpr32", EAX, 16, Register.IsGPR32, TypeGeneralPurpose, 32},
		{"gpr64", RAX, 16, Register.IsGPR64, TypeGeneralPurpose, 64},
		{"ip", EIP, 2, Register.IsIP, TypeInstructionPointer, 0},
		{"segment", ES, 6, Register.IsSegmentRegister, TypeSegment, 16},
		{"xmm", XMM0, 32, Register.IsXMM, TypeXMM, 128},
		{"ymm", YMM0, 32, Register.IsYMM, TypeYMM, 256},
		{"zmm", ZMM0, 32, Register.IsZMM, TypeZMM, 512},
		{"opmask", K0, 8, Register.IsK, TypeOpmask, 64},
		{"bounds", BND0, 4, Register.IsBND, TypeBounds, 128},
		{"control", CR0, 16, Register.IsCR, TypeControl, 64},
		{"debug", DR0, 16, Register.IsDR, TypeDebug, 64},
		{"x87", ST0, 8, Register.IsST, TypeX87, 80},
		{"mmx", MM0, 8, Register.IsMM, TypeMMX, 64},
		{"test", TR0, 8, Register.IsTR, TypeTest, 32},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			for i := 0; i < test.Count; i++ {
				reg, err := test.First.Add(i)
				if err != nil {
					t.Fatalf("%s.Add(%d): %v", test.First, i, err)
				}

				if !test.Is(reg) {
					t.Errorf("%s: not in class %s", reg, test.Name)
				}

				if reg.Type() != test.Type {
					t.Errorf("%s.Type(): got %s, want %s", reg, reg.Type(), test.Type)
				}

				if test.Bits != 0 && reg.Bits() != test.Bits {
					t.Errorf("%s.Bits(): got %d, want %d", reg, reg.Bits(), test.Bits)
				}

				// The 8-bit registers are numbered
				// by their encoding.
				if !reg.IsGPR8() && reg.Number() != i {
					t.Errorf("%s.Number(): got %d, want %d", reg, reg.Number(), i)
				}
			}

			if before, err := test.First.Sub(1); err == nil && test.Is(before) {
				t.Errorf("%s: register before the class is also in the class", before)
			}

			if after, err := test.First.Add(test.Count); err == nil && test.Is(after) {
				t.Errorf("%s: register after the class is also in the class", after)
			}
		})
	}
}

func TestRegisterNames(t *testing.T) {
	tests := []struct {
		Name string
		Want Register
	}{
		{"al", AL},
		{"R15L", R15L},
		{"r15b", R15L},
		{"r8b", R8L},
		{"EAX", EAX},
		{"rip", RIP},
		{"Xmm31", XMM31},
		{"k7", K7},
		{"none", RegisterNone},
	}

	for _, test := range tests {
		got, ok := RegisterByName(test.Name)
		if !ok {
			t.Errorf("RegisterByName(%q): not found", test.Name)
			continue
		}

		if got != test.Want {
			t.Errorf("RegisterByName(%q): got %s, want %s", test.Name, got, test.Want)
		}
	}

	if got, ok := RegisterByName("eflags"); ok {
		t.Errorf("RegisterByName(%q): got %s, want no register", "eflags", got)
	}

	// Every register's name must map back
	// to the register.
	for i := 0; i < NumberOfRegisters; i++ {
		reg := Register(i)
		name := reg.String()
		if name != strings.ToLower(name) {
			t.Errorf("%s: name is not lower case", name)
		}

		if got := RegistersByName[name]; got != reg {
			t.Errorf("RegistersByName[%q]: got %s, want %s", name, got, reg)
		}
	}

	if got, want := Register(NumberOfRegisters).String(), "Register(241)"; got != want {
		t.Errorf("invalid register: got name %q, want %q", got, want)
	}

	if got, want := XMM3.UpperName(), "XMM3"; got != want {
		t.Errorf("XMM3.UpperName(): got %q, want %q", got, want)
	}
}

func TestRegisterText(t *testing.T) {
	regs := []Register{AL, SPL, R8W, ESP, R15, RIP, GS, YMM7, ZMM31, K1, DR7, MM3, TR5}
	for _, reg := range regs {
		text, err := reg.MarshalText()
		if err != nil {
			t.Fatalf("%s.MarshalText(): %v", reg, err)
		}

		var got Register
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}

		if got != reg {
			t.Errorf("UnmarshalText(%q): got %s, want %s", text, got, reg)
		}
	}

	var reg Register
	if err := reg.UnmarshalText([]byte("r16")); err == nil {
		t.Errorf("UnmarshalText(%q): got %s, want error", "r16", reg)
	}
}

func TestFullRegister(t *testing.T) {
	tests := map[Register]Register{
		AL:           RAX,
		AH:           RAX,
		BH:           RBX,
		SPL:          RSP,
		R15L:         R15,
		R9W:          R9,
		EDI:          RDI,
		R12D:         R12,
		RSI:          RSI,
		EIP:          RIP,
		XMM0:         ZMM0,
		YMM17:        ZMM17,
		ZMM5:         ZMM5,
		K2:           K2,
		ES:           ES,
		RegisterNone: RegisterNone,
	}

	got := make(map[Register]Register)
	for reg := range tests {
		got[reg] = reg.FullRegister()
	}

	if diff := cmp.Diff(tests, got); diff != "" {
		t.Fatalf("FullRegister(): (-want, +got)\n%s", diff)
	}

	numbers := map[Register]int{
		AL:   0,
		BL:   3,
		AH:   4,
		BH:   7,
		SPL:  4,
		DIL:  7,
		R8L:  8,
		R15L: 15,
		R8D:  8,
		XMM3: 3,
		K7:   7,
	}

	gotNumbers := make(map[Register]int)
	for reg := range numbers {
		gotNumbers[reg] = reg.Number()
	}

	if diff := cmp.Diff(numbers, gotNumbers); diff != "" {
		t.Fatalf("Number(): (-want, +got)\n%s", diff)
	}

	for _, reg := range []Register{AH, CH, DH, BH} {
		if !reg.IsHighByte() {
			t.Errorf("%s.IsHighByte(): got false, want true", reg)
		}
	}

	for _, reg := range []Register{AL, SPL, R8L, AX} {
		if reg.IsHighByte() {
			t.Errorf("%s.IsHighByte(): got true, want false", reg)
		}
	}
}
