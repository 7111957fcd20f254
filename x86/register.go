// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// Register identifies an x86 register.
//
// Registers of the same class have
// adjacent values, so the n-th
// register of a class can be found
// with Add. For example, EAX+1 is
// ECX and XMM0+15 is XMM15.
type Register uint8

type registerInfo struct {
	name string
	typ  RegisterType
	bits int
}

// Add returns the register n places
// after r. An error is returned if the
// result would not be a valid register.
func (r Register) Add(n int) (Register, error) {
	v := int(r) + n
	if v < 0 || v >= NumberOfRegisters {
		return RegisterNone, fmt.Errorf("%w: %s%+d", ErrRegisterOutOfRange, r, n)
	}

	return Register(v), nil
}

// Sub returns the register n places
// before r. An error is returned if the
// result would not be a valid register.
func (r Register) Sub(n int) (Register, error) {
	v := int(r) - n
	if v < 0 || v >= NumberOfRegisters {
		return RegisterNone, fmt.Errorf("%w: %s-%d", ErrRegisterOutOfRange, r, n)
	}

	return Register(v), nil
}

func (r Register) info() *registerInfo {
	if int(r) >= NumberOfRegisters {
		return &registerInfos[RegisterNone]
	}

	return &registerInfos[r]
}

func (r Register) String() string {
	if int(r) >= NumberOfRegisters {
		return fmt.Sprintf("Register(%d)", uint8(r))
	}

	return registerInfos[r].name
}

// UpperName returns the register's
// name in upper case.
func (r Register) UpperName() string { return strings.ToUpper(r.String()) }

// Type returns the register's class.
func (r Register) Type() RegisterType { return r.info().typ }

// Bits returns the register's size
// in bits.
func (r Register) Bits() int { return r.info().bits }

// Size returns the register's size
// in bytes.
func (r Register) Size() int { return r.info().bits / 8 }

// Number returns the register's index
// within its class, as used in the
// instruction encoding. For example, the
// number of XMM3 is 3 and the number
// of R8D is 8. AH and SPL are both 4.
func (r Register) Number() int {
	switch {
	case r == RegisterNone || int(r) >= NumberOfRegisters:
		return 0
	case r.IsGPR8() && r >= SPL:
		return int(r-SPL) + 4
	case r.IsGPR8():
		return int(r - AL)
	case r.IsGPR16():
		return int(r - AX)
	case r.IsGPR32():
		return int(r - EAX)
	case r.IsGPR64():
		return int(r - RAX)
	case r.IsIP():
		return int(r - EIP)
	case r.IsSegmentRegister():
		return int(r - ES)
	case r.IsXMM():
		return int(r - XMM0)
	case r.IsYMM():
		return int(r - YMM0)
	case r.IsZMM():
		return int(r - ZMM0)
	case r.IsK():
		return int(r - K0)
	case r.IsBND():
		return int(r - BND0)
	case r.IsCR():
		return int(r - CR0)
	case r.IsDR():
		return int(r - DR0)
	case r.IsST():
		return int(r - ST0)
	case r.IsMM():
		return int(r - MM0)
	default:
		return int(r - TR0)
	}
}

// FullRegister returns the largest
// register that contains r. For the
// general purpose registers this is
// the 64-bit register, so AH and EAX
// both return RAX. Vector registers
// return the ZMM register and EIP
// returns RIP. Any other register is
// returned unchanged.
func (r Register) FullRegister() Register {
	switch {
	case AL <= r && r <= BL:
		return RAX + (r - AL)
	case AH <= r && r <= BH:
		return RAX + (r - AH)
	case r.IsGPR8():
		return RSP + (r - SPL)
	case r.IsGPR16():
		return RAX + (r - AX)
	case r.IsGPR32():
		return RAX + (r - EAX)
	case r == EIP:
		return RIP
	case r.IsXMM():
		return ZMM0 + (r - XMM0)
	case r.IsYMM():
		return ZMM0 + (r - YMM0)
	default:
		return r
	}
}

// IsHighByte reports whether r is one
// of AH, CH, DH, or BH.
func (r Register) IsHighByte() bool { return AH <= r && r <= BH }

func (r Register) IsGPR() bool             { return AL <= r && r <= R15 }
func (r Register) IsGPR8() bool            { return AL <= r && r <= R15L }
func (r Register) IsGPR16() bool           { return AX <= r && r <= R15W }
func (r Register) IsGPR32() bool           { return EAX <= r && r <= R15D }
func (r Register) IsGPR64() bool           { return RAX <= r && r <= R15 }
func (r Register) IsIP() bool              { return r == EIP || r == RIP }
func (r Register) IsSegmentRegister() bool { return ES <= r && r <= GS }
func (r Register) IsXMM() bool             { return XMM0 <= r && r <= XMM31 }
func (r Register) IsYMM() bool             { return YMM0 <= r && r <= YMM31 }
func (r Register) IsZMM() bool             { return ZMM0 <= r && r <= ZMM31 }
func (r Register) IsVectorRegister() bool  { return XMM0 <= r && r <= ZMM31 }
func (r Register) IsK() bool               { return K0 <= r && r <= K7 }
func (r Register) IsBND() bool             { return BND0 <= r && r <= BND3 }
func (r Register) IsCR() bool              { return CR0 <= r && r <= CR15 }
func (r Register) IsDR() bool              { return DR0 <= r && r <= DR15 }
func (r Register) IsST() bool              { return ST0 <= r && r <= ST7 }
func (r Register) IsMM() bool              { return MM0 <= r && r <= MM7 }
func (r Register) IsTR() bool              { return TR0 <= r && r <= TR7 }

func (r Register) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Register) UnmarshalText(text []byte) error {
	got, ok := RegisterByName(string(text))
	if !ok {
		return fmt.Errorf("invalid register %q", text)
	}

	*r = got

	return nil
}

// RegistersByName maps register
// names (lower case) to their
// values. Aliases, such as r8b
// for r8l, are included.
var RegistersByName = make(map[string]Register)

// RegisterByName returns the register
// with the given name. The name is
// not case sensitive.
func RegisterByName(name string) (Register, bool) {
	r, ok := RegistersByName[strings.ToLower(name)]
	return r, ok
}

func init() {
	for i := range registerInfos {
		RegistersByName[registerInfos[i].name] = Register(i)
	}

	for i := 8; i < 16; i++ {
		RegistersByName[fmt.Sprintf("r%db", i)] = R8L + Register(i-8)
	}
}

// RegisterType categorises an x86
// register.
type RegisterType uint8

const (
	TypeNone RegisterType = iota
	TypeGeneralPurpose
	TypeInstructionPointer
	TypeSegment
	TypeXMM
	TypeYMM
	TypeZMM
	TypeOpmask
	TypeBounds
	TypeControl
	TypeDebug
	TypeX87
	TypeMMX
	TypeTest
)

func (t RegisterType) String() string {
	switch t {
	case TypeNone:
		return "no register"
	case TypeGeneralPurpose:
		return "general purpose register"
	case TypeInstructionPointer:
		return "instruction pointer register"
	case TypeSegment:
		return "segment register"
	case TypeXMM:
		return "XMM register"
	case TypeYMM:
		return "YMM register"
	case TypeZMM:
		return "ZMM register"
	case TypeOpmask:
		return "opmask register"
	case TypeBounds:
		return "bounds register"
	case TypeControl:
		return "control register"
	case TypeDebug:
		return "debug register"
	case TypeX87:
		return "x87 register"
	case TypeMMX:
		return "MMX register"
	case TypeTest:
		return "test register"
	default:
		return fmt.Sprintf("RegisterType(%d)", t)
	}
}
