// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// VSIB reports whether the instruction's
// memory operand uses a vector index
// register (VSIB), as in the gather and
// scatter instructions. If ok is true,
// is64 reports whether the indices are
// 64-bit rather than 32-bit.
func (inst *Instruction) VSIB() (is64, ok bool) {
	return inst.Code().VSIB()
}

// IsVSIB reports whether the instruction
// uses a VSIB memory operand.
func (inst *Instruction) IsVSIB() bool {
	_, ok := inst.VSIB()
	return ok
}

// IsVSIB32 reports whether the instruction
// uses a VSIB memory operand with 32-bit
// indices.
func (inst *Instruction) IsVSIB32() bool {
	is64, ok := inst.VSIB()
	return ok && !is64
}

// IsVSIB64 reports whether the instruction
// uses a VSIB memory operand with 64-bit
// indices.
func (inst *Instruction) IsVSIB64() bool {
	is64, ok := inst.VSIB()
	return ok && is64
}

// VSIB reports whether the code has a
// VSIB memory operand and, if so,
// whether its indices are 64-bit.
func (c Code) VSIB() (is64, ok bool) {
	switch c {
	case CodeVEX_Vpgatherdd_xmm_vm32x_xmm,
		CodeVEX_Vpgatherdd_ymm_vm32y_ymm,
		CodeVEX_Vpgatherdq_xmm_vm32x_xmm,
		CodeVEX_Vpgatherdq_ymm_vm32x_ymm,
		CodeEVEX_Vpgatherdd_xmm_k1_vm32x,
		CodeEVEX_Vpgatherdd_ymm_k1_vm32y,
		CodeEVEX_Vpgatherdd_zmm_k1_vm32z,
		CodeEVEX_Vpgatherdq_xmm_k1_vm32x,
		CodeEVEX_Vpgatherdq_ymm_k1_vm32x,
		CodeEVEX_Vpgatherdq_zmm_k1_vm32y,
		CodeVEX_Vgatherdps_xmm_vm32x_xmm,
		CodeVEX_Vgatherdps_ymm_vm32y_ymm,
		CodeVEX_Vgatherdpd_xmm_vm32x_xmm,
		CodeVEX_Vgatherdpd_ymm_vm32x_ymm,
		CodeEVEX_Vgatherdps_xmm_k1_vm32x,
		CodeEVEX_Vgatherdps_ymm_k1_vm32y,
		CodeEVEX_Vgatherdps_zmm_k1_vm32z,
		CodeEVEX_Vgatherdpd_xmm_k1_vm32x,
		CodeEVEX_Vgatherdpd_ymm_k1_vm32x,
		CodeEVEX_Vgatherdpd_zmm_k1_vm32y,
		CodeEVEX_Vpscatterdd_vm32x_k1_xmm,
		CodeEVEX_Vpscatterdd_vm32y_k1_ymm,
		CodeEVEX_Vpscatterdd_vm32z_k1_zmm,
		CodeEVEX_Vpscatterdq_vm32x_k1_xmm,
		CodeEVEX_Vpscatterdq_vm32x_k1_ymm,
		CodeEVEX_Vpscatterdq_vm32y_k1_zmm,
		CodeEVEX_Vscatterdps_vm32x_k1_xmm,
		CodeEVEX_Vscatterdps_vm32y_k1_ymm,
		CodeEVEX_Vscatterdps_vm32z_k1_zmm,
		CodeEVEX_Vscatterdpd_vm32x_k1_xmm,
		CodeEVEX_Vscatterdpd_vm32x_k1_ymm,
		CodeEVEX_Vscatterdpd_vm32y_k1_zmm,
		CodeEVEX_Vgatherpf0dps_vm32z_k1,
		CodeEVEX_Vgatherpf0dpd_vm32y_k1,
		CodeEVEX_Vgatherpf1dps_vm32z_k1,
		CodeEVEX_Vgatherpf1dpd_vm32y_k1,
		CodeEVEX_Vscatterpf0dps_vm32z_k1,
		CodeEVEX_Vscatterpf0dpd_vm32y_k1,
		CodeEVEX_Vscatterpf1dps_vm32z_k1,
		CodeEVEX_Vscatterpf1dpd_vm32y_k1:
		return false, true

	case CodeVEX_Vpgatherqd_xmm_vm64x_xmm,
		CodeVEX_Vpgatherqd_xmm_vm64y_xmm,
		CodeVEX_Vpgatherqq_xmm_vm64x_xmm,
		CodeVEX_Vpgatherqq_ymm_vm64y_ymm,
		CodeEVEX_Vpgatherqd_xmm_k1_vm64x,
		CodeEVEX_Vpgatherqd_xmm_k1_vm64y,
		CodeEVEX_Vpgatherqd_ymm_k1_vm64z,
		CodeEVEX_Vpgatherqq_xmm_k1_vm64x,
		CodeEVEX_Vpgatherqq_ymm_k1_vm64y,
		CodeEVEX_Vpgatherqq_zmm_k1_vm64z,
		CodeVEX_Vgatherqps_xmm_vm64x_xmm,
		CodeVEX_Vgatherqps_xmm_vm64y_xmm,
		CodeVEX_Vgatherqpd_xmm_vm64x_xmm,
		CodeVEX_Vgatherqpd_ymm_vm64y_ymm,
		CodeEVEX_Vgatherqps_xmm_k1_vm64x,
		CodeEVEX_Vgatherqps_xmm_k1_vm64y,
		CodeEVEX_Vgatherqps_ymm_k1_vm64z,
		CodeEVEX_Vgatherqpd_xmm_k1_vm64x,
		CodeEVEX_Vgatherqpd_ymm_k1_vm64y,
		CodeEVEX_Vgatherqpd_zmm_k1_vm64z,
		CodeEVEX_Vpscatterqd_vm64x_k1_xmm,
		CodeEVEX_Vpscatterqd_vm64y_k1_xmm,
		CodeEVEX_Vpscatterqd_vm64z_k1_ymm,
		CodeEVEX_Vpscatterqq_vm64x_k1_xmm,
		CodeEVEX_Vpscatterqq_vm64y_k1_ymm,
		CodeEVEX_Vpscatterqq_vm64z_k1_zmm,
		CodeEVEX_Vscatterqps_vm64x_k1_xmm,
		CodeEVEX_Vscatterqps_vm64y_k1_xmm,
		CodeEVEX_Vscatterqps_vm64z_k1_ymm,
		CodeEVEX_Vscatterqpd_vm64x_k1_xmm,
		CodeEVEX_Vscatterqpd_vm64y_k1_ymm,
		CodeEVEX_Vscatterqpd_vm64z_k1_zmm,
		CodeEVEX_Vgatherpf0qps_vm64z_k1,
		CodeEVEX_Vgatherpf0qpd_vm64z_k1,
		CodeEVEX_Vgatherpf1qps_vm64z_k1,
		CodeEVEX_Vgatherpf1qpd_vm64z_k1,
		CodeEVEX_Vscatterpf0qps_vm64z_k1,
		CodeEVEX_Vscatterpf0qpd_vm64z_k1,
		CodeEVEX_Vscatterpf1qps_vm64z_k1,
		CodeEVEX_Vscatterpf1qpd_vm64z_k1:
		return true, true

	default:
		return false, false
	}
}
