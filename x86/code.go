// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// Code identifies an instruction form: a
// mnemonic together with the shapes of
// its operands. The zero value is
// CodeINVALID.
type Code uint16

// Mnemonic returns the instruction
// mnemonic for the code.
func (c Code) Mnemonic() Mnemonic {
	if int(c) >= NumberOfCodes {
		return MnemonicINVALID
	}

	return codeMnemonics[c]
}

// OpCount returns the number of
// operands the code has.
func (c Code) OpCount() int {
	if int(c) >= NumberOfCodes {
		return 0
	}

	return int(codeOpCounts[c])
}

// MemorySize returns the size of the
// memory operand of the code, if any.
// If broadcast is true, the memory
// size used with EVEX embedded
// broadcasting is returned.
func (c Code) MemorySize(broadcast bool) MemorySize {
	if int(c) >= NumberOfCodes {
		return MemorySizeUnknown
	}

	index := int(c)
	if broadcast {
		index += NumberOfCodes
	}

	return instructionMemorySizes[index]
}

// IsDeclareData reports whether c is
// one of the data directives db, dw,
// dd, or dq.
func (c Code) IsDeclareData() bool {
	return CodeDeclareByte <= c && c <= CodeDeclareQword
}

// DeclareDataSize returns the size in
// bytes of each element of a data
// directive, or 0 if c is not a data
// directive.
func (c Code) DeclareDataSize() int {
	switch c {
	case CodeDeclareByte:
		return 1
	case CodeDeclareWord:
		return 2
	case CodeDeclareDword:
		return 4
	case CodeDeclareQword:
		return 8
	default:
		return 0
	}
}

func (c Code) String() string {
	if int(c) >= NumberOfCodes {
		return fmt.Sprintf("Code(%d)", uint16(c))
	}

	return codeNames[c]
}

func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Code) UnmarshalText(text []byte) error {
	got, ok := CodesByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid code %q", text)
	}

	*c = got

	return nil
}

// CodesByName maps code names, such as
// "EVEX_Vpgatherdd_zmm_k1_vm32z", to
// their values.
var CodesByName = make(map[string]Code)

// Mnemonic identifies an instruction's
// mnemonic.
type Mnemonic uint16

func (m Mnemonic) String() string {
	if int(m) >= NumberOfMnemonics {
		return fmt.Sprintf("Mnemonic(%d)", uint16(m))
	}

	return mnemonicNames[m]
}

// UpperName returns the mnemonic in
// upper case.
func (m Mnemonic) UpperName() string { return strings.ToUpper(m.String()) }

func (m Mnemonic) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mnemonic) UnmarshalText(text []byte) error {
	got, ok := MnemonicsByName[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("invalid mnemonic %q", text)
	}

	*m = got

	return nil
}

// MnemonicsByName maps mnemonics (lower
// case) to their values.
var MnemonicsByName = make(map[string]Mnemonic)

func init() {
	for i, name := range codeNames {
		CodesByName[name] = Code(i)
	}

	for i, name := range mnemonicNames {
		MnemonicsByName[name] = Mnemonic(i)
	}
}
