// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package describe

import (
	"fmt"
	"math"

	"firefly-os.dev/tools/x86isa/x86"
)

// Instruction returns the described
// instruction.
func (desc *Description) Instruction() (x86.Instruction, error) {
	var inst x86.Instruction
	var err error
	if desc.Code.IsDeclareData() {
		if len(desc.Operands) != 0 {
			return x86.Instruction{}, fmt.Errorf("%s has no operands, got %d", desc.Code, len(desc.Operands))
		}

		inst, err = desc.declareData()
	} else {
		if len(desc.Data) != 0 {
			return x86.Instruction{}, fmt.Errorf("%s is not a data directive but has data", desc.Code)
		}

		ops := make([]x86.Operand, len(desc.Operands))
		for i := range desc.Operands {
			ops[i] = desc.Operands[i].operand()
		}

		inst, err = x86.New(desc.Code, ops...)
	}

	if err != nil {
		return x86.Instruction{}, err
	}

	if desc.Length < 0 || desc.Length > 15 {
		return x86.Instruction{}, fmt.Errorf("invalid length %d: must be 0-15", desc.Length)
	}

	codeSize, err := x86.CodeSizeFromBits(desc.CodeSize)
	if err != nil {
		return x86.Instruction{}, err
	}

	// The length must be set before the
	// IP, which is stored as the next IP.
	inst.SetLen(desc.Length)
	inst.SetIP(desc.IP)
	inst.SetCodeSize(codeSize)

	if desc.Opmask != x86.RegisterNone && (!desc.Opmask.IsK() || desc.Opmask == x86.K0) {
		return x86.Instruction{}, fmt.Errorf("invalid opmask %s", desc.Opmask)
	}

	inst.SetOpmask(desc.Opmask)
	inst.SetZeroingMasking(desc.Zeroing)
	if int(desc.Rounding) >= x86.NumberOfRoundingControls {
		return x86.Instruction{}, fmt.Errorf("invalid rounding control %s", desc.Rounding)
	}

	inst.SetRoundingControl(desc.Rounding)
	inst.SetSuppressAllExceptions(desc.SAE)
	for _, prefix := range desc.Prefixes {
		set, ok := prefixSetters[prefix]
		if !ok {
			return x86.Instruction{}, fmt.Errorf("unknown prefix %q", prefix)
		}

		set(&inst)
	}

	return inst, nil
}

var prefixSetters = map[string]func(*x86.Instruction){
	"lock":     func(inst *x86.Instruction) { inst.SetHasLockPrefix(true) },
	"xacquire": func(inst *x86.Instruction) { inst.SetHasXacquirePrefix(true) },
	"xrelease": func(inst *x86.Instruction) { inst.SetHasXreleasePrefix(true) },
	"rep":      func(inst *x86.Instruction) { inst.SetHasRepPrefix(true) },
	"repe":     func(inst *x86.Instruction) { inst.SetHasRepePrefix(true) },
	"repne":    func(inst *x86.Instruction) { inst.SetHasRepnePrefix(true) },
}

func (desc *Description) declareData() (x86.Instruction, error) {
	size := desc.Code.DeclareDataSize()
	limit := uint64(math.MaxUint64)
	if size < 8 {
		limit = 1<<(8*size) - 1
	}

	for i, v := range desc.Data {
		if v > limit {
			return x86.Instruction{}, fmt.Errorf("data value %d (%#x) does not fit in %d bytes", i, v, size)
		}
	}

	switch desc.Code {
	case x86.CodeDeclareByte:
		data := make([]uint8, len(desc.Data))
		for i, v := range desc.Data {
			data[i] = uint8(v)
		}

		return x86.NewDeclareByte(data...)
	case x86.CodeDeclareWord:
		data := make([]uint16, len(desc.Data))
		for i, v := range desc.Data {
			data[i] = uint16(v)
		}

		return x86.NewDeclareWord(data...)
	case x86.CodeDeclareDword:
		data := make([]uint32, len(desc.Data))
		for i, v := range desc.Data {
			data[i] = uint32(v)
		}

		return x86.NewDeclareDword(data...)
	default:
		return x86.NewDeclareQword(desc.Data...)
	}
}

func (op *Operand) operand() x86.Operand {
	var kind x86.OpKind
	switch {
	case op.Kind != nil:
		kind = *op.Kind
	case op.Memory != nil:
		kind = x86.OpKindMemory
	default:
		kind = x86.OpKindRegister
	}

	out := x86.Operand{
		Kind:      kind,
		Register:  op.Register,
		Immediate: op.Immediate,
		Target:    op.Target,
		Selector:  op.Selector,
		Address:   op.Address,
	}

	if op.Memory != nil {
		out.Memory = x86.MemoryOperand{
			Segment:      op.Memory.Segment,
			Base:         op.Memory.Base,
			Index:        op.Memory.Index,
			Scale:        op.Memory.Scale,
			Displacement: op.Memory.Displacement,
			DisplSize:    op.Memory.DisplSize,
			Broadcast:    op.Memory.Broadcast,
		}
	} else {
		out.Memory.Segment = op.Segment
	}

	return out
}

// Describe returns a description of
// the instruction.
func Describe(inst *x86.Instruction) Description {
	desc := Description{
		Code:     inst.Code(),
		IP:       inst.IP(),
		Length:   inst.Len(),
		CodeSize: inst.CodeSize().Bits(),
		Opmask:   inst.Opmask(),
		Zeroing:  inst.ZeroingMasking(),
		Rounding: inst.RoundingControl(),
		SAE:      inst.SuppressAllExceptions(),
	}

	prefixes := []struct {
		Name string
		Has  bool
	}{
		{"lock", inst.HasLockPrefix()},
		{"xacquire", inst.HasXacquirePrefix()},
		{"xrelease", inst.HasXreleasePrefix()},
		{"repe", inst.HasRepePrefix()},
		{"repne", inst.HasRepnePrefix()},
	}

	for _, prefix := range prefixes {
		if prefix.Has {
			desc.Prefixes = append(desc.Prefixes, prefix.Name)
		}
	}

	if desc.Code.IsDeclareData() {
		// Values beyond the directive's
		// capacity are not stored.
		desc.Data = make([]uint64, 0, inst.DeclareDataLen())
		for i := 0; i < inst.DeclareDataLen(); i++ {
			var v uint64
			var err error
			switch desc.Code {
			case x86.CodeDeclareByte:
				var b uint8
				b, err = inst.DeclareByteValue(i)
				v = uint64(b)
			case x86.CodeDeclareWord:
				var w uint16
				w, err = inst.DeclareWordValue(i)
				v = uint64(w)
			case x86.CodeDeclareDword:
				var d uint32
				d, err = inst.DeclareDwordValue(i)
				v = uint64(d)
			default:
				v, err = inst.DeclareQwordValue(i)
			}

			if err != nil {
				break
			}

			desc.Data = append(desc.Data, v)
		}

		return desc
	}

	for i := 0; i < inst.OpCount(); i++ {
		kind, err := inst.OpKind(i)
		if err != nil {
			break
		}

		op := Operand{Kind: &kind}
		switch {
		case kind == x86.OpKindRegister:
			op.Register, _ = inst.OpRegister(i)
		case kind.IsImmediate():
			op.Immediate, _ = inst.Immediate(i)
		case kind == x86.OpKindNearBranch16, kind == x86.OpKindNearBranch32, kind == x86.OpKindNearBranch64:
			op.Target = inst.NearBranchTarget()
		case kind == x86.OpKindFarBranch16:
			op.Target = uint64(inst.FarBranch16())
			op.Selector = inst.FarBranchSelector()
		case kind == x86.OpKindFarBranch32:
			op.Target = uint64(inst.FarBranch32())
			op.Selector = inst.FarBranchSelector()
		case kind == x86.OpKindMemory:
			m := inst.MemoryOperand()
			op.Memory = &Memory{
				Segment:      m.Segment,
				Base:         m.Base,
				Index:        m.Index,
				Scale:        m.Scale,
				Displacement: m.Displacement,
				DisplSize:    m.DisplSize,
				Broadcast:    m.Broadcast,
			}
		case kind == x86.OpKindMemory64:
			op.Segment = inst.SegmentPrefix()
			op.Address = inst.MemoryAddress64()
		case kind == x86.OpKindMemorySegSI, kind == x86.OpKindMemorySegESI, kind == x86.OpKindMemorySegRSI,
			kind == x86.OpKindMemorySegDI, kind == x86.OpKindMemorySegEDI, kind == x86.OpKindMemorySegRDI:
			op.Segment = inst.SegmentPrefix()
		}

		desc.Operands = append(desc.Operands, op)
	}

	return desc
}
