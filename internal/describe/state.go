// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package describe

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"firefly-os.dev/tools/x86isa/x86"
)

// State holds the register values used
// to compute memory addresses. It is
// read from a TOML file:
//
//	[registers]
//	rax = 0x1000
//	rip = 0x40_1000
//
//	[segments]
//	fs = 0x7000_0000_0000
//
//	[vectors]
//	zmm1 = [0x0000_0020_0000_0010, 0x30]
//
// General purpose registers are given
// by their 64-bit name, and smaller
// registers are read from them. Vector
// registers are given as 64-bit lanes,
// lowest first, and may be named by
// any of their XMM, YMM, or ZMM names.
//
// TOML integers are signed, so values
// with the top bit set are written as
// negative numbers. Registers that are
// not given have the value 0.
type State struct {
	gprs     map[x86.Register]uint64
	segments map[x86.Register]uint64
	vectors  map[x86.Register][]uint64
}

var _ x86.RegisterValues = (*State)(nil)

type stateFile struct {
	Registers map[string]int64   `toml:"registers"`
	Segments  map[string]int64   `toml:"segments"`
	Vectors   map[string][]int64 `toml:"vectors"`
}

// ParseState reads a register state
// from TOML text.
func ParseState(text string) (*State, error) {
	var file stateFile
	md, err := toml.Decode(text, &file)
	if err != nil {
		return nil, err
	}

	return newState(&file, md)
}

// LoadState reads a register state from
// the named TOML file.
func LoadState(name string) (*State, error) {
	var file stateFile
	md, err := toml.DecodeFile(name, &file)
	if err != nil {
		return nil, err
	}

	state, err := newState(&file, md)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return state, nil
}

func newState(file *stateFile, md toml.MetaData) (*State, error) {
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	state := &State{
		gprs:     make(map[x86.Register]uint64),
		segments: make(map[x86.Register]uint64),
		vectors:  make(map[x86.Register][]uint64),
	}

	for name, value := range file.Registers {
		reg, ok := x86.RegistersByName[name]
		if !ok || !(reg.IsGPR64() || reg == x86.RIP) {
			return nil, fmt.Errorf("registers: %q is not a 64-bit general purpose register", name)
		}

		state.gprs[reg] = uint64(value)
	}

	for name, value := range file.Segments {
		reg, ok := x86.RegistersByName[name]
		if !ok || !reg.IsSegmentRegister() {
			return nil, fmt.Errorf("segments: %q is not a segment register", name)
		}

		state.segments[reg] = uint64(value)
	}

	// Sort the names so that duplicates
	// are reported consistently.
	names := make([]string, 0, len(file.Vectors))
	for name := range file.Vectors {
		names = append(names, name)
	}

	slices.Sort(names)
	for _, name := range names {
		values := file.Vectors[name]
		reg, ok := x86.RegistersByName[name]
		if !ok || !reg.IsVectorRegister() {
			return nil, fmt.Errorf("vectors: %q is not a vector register", name)
		}

		if n := reg.Size() / 8; len(values) > n {
			return nil, fmt.Errorf("vectors: %s has %d lanes, got %d", name, n, len(values))
		}

		full := reg.FullRegister()
		if _, ok := state.vectors[full]; ok {
			return nil, fmt.Errorf("vectors: %s is given more than once", full)
		}

		lanes := make([]uint64, len(values))
		for i, v := range values {
			lanes[i] = uint64(v)
		}

		state.vectors[full] = lanes
	}

	return state, nil
}

// RegisterValue returns the value of
// the register, or of one element of a
// vector register.
func (s *State) RegisterValue(reg x86.Register, elementIndex, elementSize int) uint64 {
	switch {
	case reg.IsVectorRegister():
		return s.element(reg.FullRegister(), elementIndex, elementSize)
	case reg.IsSegmentRegister():
		return s.segments[reg]
	case reg == x86.RIP:
		return s.gprs[x86.RIP]
	case reg == x86.EIP:
		return uint64(uint32(s.gprs[x86.RIP]))
	case !reg.IsGPR():
		return 0
	}

	value := s.gprs[reg.FullRegister()]
	if reg.IsHighByte() {
		return (value >> 8) & 0xff
	}

	switch reg.Bits() {
	case 8:
		return value & 0xff
	case 16:
		return value & 0xffff
	case 32:
		return value & 0xffff_ffff
	default:
		return value
	}
}

func (s *State) element(reg x86.Register, index, size int) uint64 {
	lanes := s.vectors[reg]
	switch size {
	case 4:
		lane := index / 2
		if index < 0 || lane >= len(lanes) {
			return 0
		}

		return (lanes[lane] >> (32 * (index % 2))) & 0xffff_ffff
	case 8:
		if index < 0 || index >= len(lanes) {
			return 0
		}

		return lanes[index]
	default:
		return 0
	}
}
