// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Instruction forms, in ordinal order. Each names
// a mnemonic together with its operand shapes.
const (
	CodeINVALID Code = iota
	CodeDeclareByte
	CodeDeclareWord
	CodeDeclareDword
	CodeDeclareQword
	CodeAdd_rm8_r8
	CodeAdd_rm16_r16
	CodeAdd_rm32_r32
	CodeAdd_rm64_r64
	CodeAdd_r32_rm32
	CodeAdd_AL_imm8
	CodeAdd_rm16_imm8
	CodeAdd_rm32_imm8
	CodeAdd_rm64_imm8
	CodeAdd_rm64_imm32
	CodeMov_rm8_r8
	CodeMov_rm32_r32
	CodeMov_rm64_r64
	CodeMov_r64_rm64
	CodeMov_r8_imm8
	CodeMov_r16_imm16
	CodeMov_r32_imm32
	CodeMov_r64_imm64
	CodeMov_AL_moffs8
	CodeMov_EAX_moffs32
	CodeMov_RAX_moffs64
	CodeMov_moffs64_RAX
	CodeMov_r64_cr
	CodeMov_cr_r64
	CodeMov_r64_dr
	CodeMov_r32m16_Sreg
	CodeMov_Sreg_r32m16
	CodeLea_r32_m
	CodeLea_r64_m
	CodePush_r64
	CodePop_r64
	CodePush_rm64
	CodePushq_imm8
	CodePushq_imm32
	CodeJmp_rel8_16
	CodeJmp_rel8_32
	CodeJmp_rel8_64
	CodeJmp_rel16
	CodeJmp_rel32_32
	CodeJmp_rel32_64
	CodeJmp_rm16
	CodeJmp_rm32
	CodeJmp_rm64
	CodeJmp_ptr1616
	CodeJmp_ptr1632
	CodeJmp_m1616
	CodeJmp_m1632
	CodeJmp_m1664
	CodeCall_rel16
	CodeCall_rel32_32
	CodeCall_rel32_64
	CodeCall_ptr1616
	CodeCall_ptr1632
	CodeCall_rm64
	CodeRetnd
	CodeRetnq
	CodeRetnq_imm16
	CodeRetfq
	CodeEnterq_imm16_imm8
	CodeNopd
	CodeNopq
	CodeNop_rm32
	CodeInt3
	CodeInt_imm8
	CodeMovsb_m8_m8
	CodeMovsw_m16_m16
	CodeMovsd_m32_m32
	CodeMovsq_m64_m64
	CodeCmpsb_m8_m8
	CodeStosb_m8_AL
	CodeStosq_m64_RAX
	CodeLodsb_AL_m8
	CodeScasb_AL_m8
	CodeOutsb_DX_m8
	CodeInsb_m8_DX
	CodeXlat_m8
	CodeCmpxchg_rm32_r32
	CodeCmpxchg_rm64_r64
	CodeXchg_rm32_r32
	CodeXadd_rm32_r32
	CodeCmpxchg8b_m64
	CodeCmpxchg16b_m128
	CodeBound_r16_m1616
	CodeBound_r32_m3232
	CodeLgdt_m1632_16
	CodeLgdt_m1632
	CodeLgdt_m1664
	CodeLes_r32_m1632
	CodeFld_m32fp
	CodeFld_m64fp
	CodeFld_m80fp
	CodeFild_m16int
	CodeFild_m32int
	CodeFild_m64int
	CodeFbld_m80bcd
	CodeFnstenv_m14byte
	CodeFnstenv_m28byte
	CodeFnsave_m94byte
	CodeFnsave_m108byte
	CodeFxsave_m512byte
	CodeFxsave64_m512byte
	CodeXsave_mem
	CodeXsave64_mem
	CodeBndmov_bnd_bndm64
	CodeBndmov_bnd_bndm128
	CodeMovq_mm_mmm64
	CodePaddd_mm_mmm64
	CodePaddd_xmm_xmmm128
	CodeMovdqu_xmm_xmmm128
	CodeAddps_xmm_xmmm128
	CodeAddss_xmm_xmmm32
	CodeExtrq_xmm_imm8_imm8
	CodeInsertq_xmm_xmm_imm8_imm8
	CodeVEX_Vaddps_ymm_ymm_ymmm256
	CodeVEX_Vblendvps_xmm_xmm_xmmm128_xmm
	CodeVEX_Vcvtph2ps_xmm_xmmm64
	CodeVEX_Vpmadd52luq_ymm_ymm_ymmm256
	CodeVEX_Vbroadcastss_ymm_m32
	CodeVEX_Kmovw_kr_km16
	CodeEVEX_Vaddps_xmm_k1z_xmm_xmmm128b32
	CodeEVEX_Vaddps_ymm_k1z_ymm_ymmm256b32
	CodeEVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er
	CodeEVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er
	CodeEVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32
	CodeEVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64
	CodeEVEX_Vpandd_zmm_k1z_zmm_zmmm512b32
	CodeEVEX_Vpandq_zmm_k1z_zmm_zmmm512b64
	CodeEVEX_Vpmadd52luq_zmm_k1z_zmm_zmmm512b64
	CodeEVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8
	CodeEVEX_Vpdpwssd_zmm_k1z_zmm_zmmm512b32
	CodeEVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32
	CodeEVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32
	CodeEVEX_Vcvtph2ps_zmm_k1z_ymmm256_sae
	CodeEVEX_Vsqrtss_xmm_k1z_xmm_xmmm32_er
	CodeVEX_Vpgatherdd_xmm_vm32x_xmm
	CodeVEX_Vpgatherdd_ymm_vm32y_ymm
	CodeVEX_Vpgatherdq_xmm_vm32x_xmm
	CodeVEX_Vpgatherdq_ymm_vm32x_ymm
	CodeEVEX_Vpgatherdd_xmm_k1_vm32x
	CodeEVEX_Vpgatherdd_ymm_k1_vm32y
	CodeEVEX_Vpgatherdd_zmm_k1_vm32z
	CodeEVEX_Vpgatherdq_xmm_k1_vm32x
	CodeEVEX_Vpgatherdq_ymm_k1_vm32x
	CodeEVEX_Vpgatherdq_zmm_k1_vm32y
	CodeVEX_Vgatherdps_xmm_vm32x_xmm
	CodeVEX_Vgatherdps_ymm_vm32y_ymm
	CodeVEX_Vgatherdpd_xmm_vm32x_xmm
	CodeVEX_Vgatherdpd_ymm_vm32x_ymm
	CodeEVEX_Vgatherdps_xmm_k1_vm32x
	CodeEVEX_Vgatherdps_ymm_k1_vm32y
	CodeEVEX_Vgatherdps_zmm_k1_vm32z
	CodeEVEX_Vgatherdpd_xmm_k1_vm32x
	CodeEVEX_Vgatherdpd_ymm_k1_vm32x
	CodeEVEX_Vgatherdpd_zmm_k1_vm32y
	CodeEVEX_Vpscatterdd_vm32x_k1_xmm
	CodeEVEX_Vpscatterdd_vm32y_k1_ymm
	CodeEVEX_Vpscatterdd_vm32z_k1_zmm
	CodeEVEX_Vpscatterdq_vm32x_k1_xmm
	CodeEVEX_Vpscatterdq_vm32x_k1_ymm
	CodeEVEX_Vpscatterdq_vm32y_k1_zmm
	CodeEVEX_Vscatterdps_vm32x_k1_xmm
	CodeEVEX_Vscatterdps_vm32y_k1_ymm
	CodeEVEX_Vscatterdps_vm32z_k1_zmm
	CodeEVEX_Vscatterdpd_vm32x_k1_xmm
	CodeEVEX_Vscatterdpd_vm32x_k1_ymm
	CodeEVEX_Vscatterdpd_vm32y_k1_zmm
	CodeEVEX_Vgatherpf0dps_vm32z_k1
	CodeEVEX_Vgatherpf0dpd_vm32y_k1
	CodeEVEX_Vgatherpf1dps_vm32z_k1
	CodeEVEX_Vgatherpf1dpd_vm32y_k1
	CodeEVEX_Vscatterpf0dps_vm32z_k1
	CodeEVEX_Vscatterpf0dpd_vm32y_k1
	CodeEVEX_Vscatterpf1dps_vm32z_k1
	CodeEVEX_Vscatterpf1dpd_vm32y_k1
	CodeVEX_Vpgatherqd_xmm_vm64x_xmm
	CodeVEX_Vpgatherqd_xmm_vm64y_xmm
	CodeVEX_Vpgatherqq_xmm_vm64x_xmm
	CodeVEX_Vpgatherqq_ymm_vm64y_ymm
	CodeEVEX_Vpgatherqd_xmm_k1_vm64x
	CodeEVEX_Vpgatherqd_xmm_k1_vm64y
	CodeEVEX_Vpgatherqd_ymm_k1_vm64z
	CodeEVEX_Vpgatherqq_xmm_k1_vm64x
	CodeEVEX_Vpgatherqq_ymm_k1_vm64y
	CodeEVEX_Vpgatherqq_zmm_k1_vm64z
	CodeVEX_Vgatherqps_xmm_vm64x_xmm
	CodeVEX_Vgatherqps_xmm_vm64y_xmm
	CodeVEX_Vgatherqpd_xmm_vm64x_xmm
	CodeVEX_Vgatherqpd_ymm_vm64y_ymm
	CodeEVEX_Vgatherqps_xmm_k1_vm64x
	CodeEVEX_Vgatherqps_xmm_k1_vm64y
	CodeEVEX_Vgatherqps_ymm_k1_vm64z
	CodeEVEX_Vgatherqpd_xmm_k1_vm64x
	CodeEVEX_Vgatherqpd_ymm_k1_vm64y
	CodeEVEX_Vgatherqpd_zmm_k1_vm64z
	CodeEVEX_Vpscatterqd_vm64x_k1_xmm
	CodeEVEX_Vpscatterqd_vm64y_k1_xmm
	CodeEVEX_Vpscatterqd_vm64z_k1_ymm
	CodeEVEX_Vpscatterqq_vm64x_k1_xmm
	CodeEVEX_Vpscatterqq_vm64y_k1_ymm
	CodeEVEX_Vpscatterqq_vm64z_k1_zmm
	CodeEVEX_Vscatterqps_vm64x_k1_xmm
	CodeEVEX_Vscatterqps_vm64y_k1_xmm
	CodeEVEX_Vscatterqps_vm64z_k1_ymm
	CodeEVEX_Vscatterqpd_vm64x_k1_xmm
	CodeEVEX_Vscatterqpd_vm64y_k1_ymm
	CodeEVEX_Vscatterqpd_vm64z_k1_zmm
	CodeEVEX_Vgatherpf0qps_vm64z_k1
	CodeEVEX_Vgatherpf0qpd_vm64z_k1
	CodeEVEX_Vgatherpf1qps_vm64z_k1
	CodeEVEX_Vgatherpf1qpd_vm64z_k1
	CodeEVEX_Vscatterpf0qps_vm64z_k1
	CodeEVEX_Vscatterpf0qpd_vm64z_k1
	CodeEVEX_Vscatterpf1qps_vm64z_k1
	CodeEVEX_Vscatterpf1qpd_vm64z_k1
)

// NumberOfCodes is the number of Code values.
const NumberOfCodes = 219

var codeNames = [...]string{
	"INVALID",
	"DeclareByte",
	"DeclareWord",
	"DeclareDword",
	"DeclareQword",
	"Add_rm8_r8",
	"Add_rm16_r16",
	"Add_rm32_r32",
	"Add_rm64_r64",
	"Add_r32_rm32",
	"Add_AL_imm8",
	"Add_rm16_imm8",
	"Add_rm32_imm8",
	"Add_rm64_imm8",
	"Add_rm64_imm32",
	"Mov_rm8_r8",
	"Mov_rm32_r32",
	"Mov_rm64_r64",
	"Mov_r64_rm64",
	"Mov_r8_imm8",
	"Mov_r16_imm16",
	"Mov_r32_imm32",
	"Mov_r64_imm64",
	"Mov_AL_moffs8",
	"Mov_EAX_moffs32",
	"Mov_RAX_moffs64",
	"Mov_moffs64_RAX",
	"Mov_r64_cr",
	"Mov_cr_r64",
	"Mov_r64_dr",
	"Mov_r32m16_Sreg",
	"Mov_Sreg_r32m16",
	"Lea_r32_m",
	"Lea_r64_m",
	"Push_r64",
	"Pop_r64",
	"Push_rm64",
	"Pushq_imm8",
	"Pushq_imm32",
	"Jmp_rel8_16",
	"Jmp_rel8_32",
	"Jmp_rel8_64",
	"Jmp_rel16",
	"Jmp_rel32_32",
	"Jmp_rel32_64",
	"Jmp_rm16",
	"Jmp_rm32",
	"Jmp_rm64",
	"Jmp_ptr1616",
	"Jmp_ptr1632",
	"Jmp_m1616",
	"Jmp_m1632",
	"Jmp_m1664",
	"Call_rel16",
	"Call_rel32_32",
	"Call_rel32_64",
	"Call_ptr1616",
	"Call_ptr1632",
	"Call_rm64",
	"Retnd",
	"Retnq",
	"Retnq_imm16",
	"Retfq",
	"Enterq_imm16_imm8",
	"Nopd",
	"Nopq",
	"Nop_rm32",
	"Int3",
	"Int_imm8",
	"Movsb_m8_m8",
	"Movsw_m16_m16",
	"Movsd_m32_m32",
	"Movsq_m64_m64",
	"Cmpsb_m8_m8",
	"Stosb_m8_AL",
	"Stosq_m64_RAX",
	"Lodsb_AL_m8",
	"Scasb_AL_m8",
	"Outsb_DX_m8",
	"Insb_m8_DX",
	"Xlat_m8",
	"Cmpxchg_rm32_r32",
	"Cmpxchg_rm64_r64",
	"Xchg_rm32_r32",
	"Xadd_rm32_r32",
	"Cmpxchg8b_m64",
	"Cmpxchg16b_m128",
	"Bound_r16_m1616",
	"Bound_r32_m3232",
	"Lgdt_m1632_16",
	"Lgdt_m1632",
	"Lgdt_m1664",
	"Les_r32_m1632",
	"Fld_m32fp",
	"Fld_m64fp",
	"Fld_m80fp",
	"Fild_m16int",
	"Fild_m32int",
	"Fild_m64int",
	"Fbld_m80bcd",
	"Fnstenv_m14byte",
	"Fnstenv_m28byte",
	"Fnsave_m94byte",
	"Fnsave_m108byte",
	"Fxsave_m512byte",
	"Fxsave64_m512byte",
	"Xsave_mem",
	"Xsave64_mem",
	"Bndmov_bnd_bndm64",
	"Bndmov_bnd_bndm128",
	"Movq_mm_mmm64",
	"Paddd_mm_mmm64",
	"Paddd_xmm_xmmm128",
	"Movdqu_xmm_xmmm128",
	"Addps_xmm_xmmm128",
	"Addss_xmm_xmmm32",
	"Extrq_xmm_imm8_imm8",
	"Insertq_xmm_xmm_imm8_imm8",
	"VEX_Vaddps_ymm_ymm_ymmm256",
	"VEX_Vblendvps_xmm_xmm_xmmm128_xmm",
	"VEX_Vcvtph2ps_xmm_xmmm64",
	"VEX_Vpmadd52luq_ymm_ymm_ymmm256",
	"VEX_Vbroadcastss_ymm_m32",
	"VEX_Kmovw_kr_km16",
	"EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32",
	"EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32",
	"EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er",
	"EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er",
	"EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32",
	"EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64",
	"EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32",
	"EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64",
	"EVEX_Vpmadd52luq_zmm_k1z_zmm_zmmm512b64",
	"EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8",
	"EVEX_Vpdpwssd_zmm_k1z_zmm_zmmm512b32",
	"EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32",
	"EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32",
	"EVEX_Vcvtph2ps_zmm_k1z_ymmm256_sae",
	"EVEX_Vsqrtss_xmm_k1z_xmm_xmmm32_er",
	"VEX_Vpgatherdd_xmm_vm32x_xmm",
	"VEX_Vpgatherdd_ymm_vm32y_ymm",
	"VEX_Vpgatherdq_xmm_vm32x_xmm",
	"VEX_Vpgatherdq_ymm_vm32x_ymm",
	"EVEX_Vpgatherdd_xmm_k1_vm32x",
	"EVEX_Vpgatherdd_ymm_k1_vm32y",
	"EVEX_Vpgatherdd_zmm_k1_vm32z",
	"EVEX_Vpgatherdq_xmm_k1_vm32x",
	"EVEX_Vpgatherdq_ymm_k1_vm32x",
	"EVEX_Vpgatherdq_zmm_k1_vm32y",
	"VEX_Vgatherdps_xmm_vm32x_xmm",
	"VEX_Vgatherdps_ymm_vm32y_ymm",
	"VEX_Vgatherdpd_xmm_vm32x_xmm",
	"VEX_Vgatherdpd_ymm_vm32x_ymm",
	"EVEX_Vgatherdps_xmm_k1_vm32x",
	"EVEX_Vgatherdps_ymm_k1_vm32y",
	"EVEX_Vgatherdps_zmm_k1_vm32z",
	"EVEX_Vgatherdpd_xmm_k1_vm32x",
	"EVEX_Vgatherdpd_ymm_k1_vm32x",
	"EVEX_Vgatherdpd_zmm_k1_vm32y",
	"EVEX_Vpscatterdd_vm32x_k1_xmm",
	"EVEX_Vpscatterdd_vm32y_k1_ymm",
	"EVEX_Vpscatterdd_vm32z_k1_zmm",
	"EVEX_Vpscatterdq_vm32x_k1_xmm",
	"EVEX_Vpscatterdq_vm32x_k1_ymm",
	"EVEX_Vpscatterdq_vm32y_k1_zmm",
	"EVEX_Vscatterdps_vm32x_k1_xmm",
	"EVEX_Vscatterdps_vm32y_k1_ymm",
	"EVEX_Vscatterdps_vm32z_k1_zmm",
	"EVEX_Vscatterdpd_vm32x_k1_xmm",
	"EVEX_Vscatterdpd_vm32x_k1_ymm",
	"EVEX_Vscatterdpd_vm32y_k1_zmm",
	"EVEX_Vgatherpf0dps_vm32z_k1",
	"EVEX_Vgatherpf0dpd_vm32y_k1",
	"EVEX_Vgatherpf1dps_vm32z_k1",
	"EVEX_Vgatherpf1dpd_vm32y_k1",
	"EVEX_Vscatterpf0dps_vm32z_k1",
	"EVEX_Vscatterpf0dpd_vm32y_k1",
	"EVEX_Vscatterpf1dps_vm32z_k1",
	"EVEX_Vscatterpf1dpd_vm32y_k1",
	"VEX_Vpgatherqd_xmm_vm64x_xmm",
	"VEX_Vpgatherqd_xmm_vm64y_xmm",
	"VEX_Vpgatherqq_xmm_vm64x_xmm",
	"VEX_Vpgatherqq_ymm_vm64y_ymm",
	"EVEX_Vpgatherqd_xmm_k1_vm64x",
	"EVEX_Vpgatherqd_xmm_k1_vm64y",
	"EVEX_Vpgatherqd_ymm_k1_vm64z",
	"EVEX_Vpgatherqq_xmm_k1_vm64x",
	"EVEX_Vpgatherqq_ymm_k1_vm64y",
	"EVEX_Vpgatherqq_zmm_k1_vm64z",
	"VEX_Vgatherqps_xmm_vm64x_xmm",
	"VEX_Vgatherqps_xmm_vm64y_xmm",
	"VEX_Vgatherqpd_xmm_vm64x_xmm",
	"VEX_Vgatherqpd_ymm_vm64y_ymm",
	"EVEX_Vgatherqps_xmm_k1_vm64x",
	"EVEX_Vgatherqps_xmm_k1_vm64y",
	"EVEX_Vgatherqps_ymm_k1_vm64z",
	"EVEX_Vgatherqpd_xmm_k1_vm64x",
	"EVEX_Vgatherqpd_ymm_k1_vm64y",
	"EVEX_Vgatherqpd_zmm_k1_vm64z",
	"EVEX_Vpscatterqd_vm64x_k1_xmm",
	"EVEX_Vpscatterqd_vm64y_k1_xmm",
	"EVEX_Vpscatterqd_vm64z_k1_ymm",
	"EVEX_Vpscatterqq_vm64x_k1_xmm",
	"EVEX_Vpscatterqq_vm64y_k1_ymm",
	"EVEX_Vpscatterqq_vm64z_k1_zmm",
	"EVEX_Vscatterqps_vm64x_k1_xmm",
	"EVEX_Vscatterqps_vm64y_k1_xmm",
	"EVEX_Vscatterqps_vm64z_k1_ymm",
	"EVEX_Vscatterqpd_vm64x_k1_xmm",
	"EVEX_Vscatterqpd_vm64y_k1_ymm",
	"EVEX_Vscatterqpd_vm64z_k1_zmm",
	"EVEX_Vgatherpf0qps_vm64z_k1",
	"EVEX_Vgatherpf0qpd_vm64z_k1",
	"EVEX_Vgatherpf1qps_vm64z_k1",
	"EVEX_Vgatherpf1qpd_vm64z_k1",
	"EVEX_Vscatterpf0qps_vm64z_k1",
	"EVEX_Vscatterpf0qpd_vm64z_k1",
	"EVEX_Vscatterpf1qps_vm64z_k1",
	"EVEX_Vscatterpf1qpd_vm64z_k1",
}

var _ [NumberOfCodes]string = codeNames

var codeMnemonics = [...]Mnemonic{
	MnemonicINVALID, // INVALID
	MnemonicDb, // DeclareByte
	MnemonicDw, // DeclareWord
	MnemonicDd, // DeclareDword
	MnemonicDq, // DeclareQword
	MnemonicAdd, // Add_rm8_r8
	MnemonicAdd, // Add_rm16_r16
	MnemonicAdd, // Add_rm32_r32
	MnemonicAdd, // Add_rm64_r64
	MnemonicAdd, // Add_r32_rm32
	MnemonicAdd, // Add_AL_imm8
	MnemonicAdd, // Add_rm16_imm8
	MnemonicAdd, // Add_rm32_imm8
	MnemonicAdd, // Add_rm64_imm8
	MnemonicAdd, // Add_rm64_imm32
	MnemonicMov, // Mov_rm8_r8
	MnemonicMov, // Mov_rm32_r32
	MnemonicMov, // Mov_rm64_r64
	MnemonicMov, // Mov_r64_rm64
	MnemonicMov, // Mov_r8_imm8
	MnemonicMov, // Mov_r16_imm16
	MnemonicMov, // Mov_r32_imm32
	MnemonicMov, // Mov_r64_imm64
	MnemonicMov, // Mov_AL_moffs8
	MnemonicMov, // Mov_EAX_moffs32
	MnemonicMov, // Mov_RAX_moffs64
	MnemonicMov, // Mov_moffs64_RAX
	MnemonicMov, // Mov_r64_cr
	MnemonicMov, // Mov_cr_r64
	MnemonicMov, // Mov_r64_dr
	MnemonicMov, // Mov_r32m16_Sreg
	MnemonicMov, // Mov_Sreg_r32m16
	MnemonicLea, // Lea_r32_m
	MnemonicLea, // Lea_r64_m
	MnemonicPush, // Push_r64
	MnemonicPop, // Pop_r64
	MnemonicPush, // Push_rm64
	MnemonicPush, // Pushq_imm8
	MnemonicPush, // Pushq_imm32
	MnemonicJmp, // Jmp_rel8_16
	MnemonicJmp, // Jmp_rel8_32
	MnemonicJmp, // Jmp_rel8_64
	MnemonicJmp, // Jmp_rel16
	MnemonicJmp, // Jmp_rel32_32
	MnemonicJmp, // Jmp_rel32_64
	MnemonicJmp, // Jmp_rm16
	MnemonicJmp, // Jmp_rm32
	MnemonicJmp, // Jmp_rm64
	MnemonicJmp, // Jmp_ptr1616
	MnemonicJmp, // Jmp_ptr1632
	MnemonicJmp, // Jmp_m1616
	MnemonicJmp, // Jmp_m1632
	MnemonicJmp, // Jmp_m1664
	MnemonicCall, // Call_rel16
	MnemonicCall, // Call_rel32_32
	MnemonicCall, // Call_rel32_64
	MnemonicCall, // Call_ptr1616
	MnemonicCall, // Call_ptr1632
	MnemonicCall, // Call_rm64
	MnemonicRet, // Retnd
	MnemonicRet, // Retnq
	MnemonicRet, // Retnq_imm16
	MnemonicRetf, // Retfq
	MnemonicEnter, // Enterq_imm16_imm8
	MnemonicNop, // Nopd
	MnemonicNop, // Nopq
	MnemonicNop, // Nop_rm32
	MnemonicInt3, // Int3
	MnemonicInt, // Int_imm8
	MnemonicMovsb, // Movsb_m8_m8
	MnemonicMovsw, // Movsw_m16_m16
	MnemonicMovsd, // Movsd_m32_m32
	MnemonicMovsq, // Movsq_m64_m64
	MnemonicCmpsb, // Cmpsb_m8_m8
	MnemonicStosb, // Stosb_m8_AL
	MnemonicStosq, // Stosq_m64_RAX
	MnemonicLodsb, // Lodsb_AL_m8
	MnemonicScasb, // Scasb_AL_m8
	MnemonicOutsb, // Outsb_DX_m8
	MnemonicInsb, // Insb_m8_DX
	MnemonicXlat, // Xlat_m8
	MnemonicCmpxchg, // Cmpxchg_rm32_r32
	MnemonicCmpxchg, // Cmpxchg_rm64_r64
	MnemonicXchg, // Xchg_rm32_r32
	MnemonicXadd, // Xadd_rm32_r32
	MnemonicCmpxchg8b, // Cmpxchg8b_m64
	MnemonicCmpxchg16b, // Cmpxchg16b_m128
	MnemonicBound, // Bound_r16_m1616
	MnemonicBound, // Bound_r32_m3232
	MnemonicLgdt, // Lgdt_m1632_16
	MnemonicLgdt, // Lgdt_m1632
	MnemonicLgdt, // Lgdt_m1664
	MnemonicLes, // Les_r32_m1632
	MnemonicFld, // Fld_m32fp
	MnemonicFld, // Fld_m64fp
	MnemonicFld, // Fld_m80fp
	MnemonicFild, // Fild_m16int
	MnemonicFild, // Fild_m32int
	MnemonicFild, // Fild_m64int
	MnemonicFbld, // Fbld_m80bcd
	MnemonicFnstenv, // Fnstenv_m14byte
	MnemonicFnstenv, // Fnstenv_m28byte
	MnemonicFnsave, // Fnsave_m94byte
	MnemonicFnsave, // Fnsave_m108byte
	MnemonicFxsave, // Fxsave_m512byte
	MnemonicFxsave64, // Fxsave64_m512byte
	MnemonicXsave, // Xsave_mem
	MnemonicXsave64, // Xsave64_mem
	MnemonicBndmov, // Bndmov_bnd_bndm64
	MnemonicBndmov, // Bndmov_bnd_bndm128
	MnemonicMovq, // Movq_mm_mmm64
	MnemonicPaddd, // Paddd_mm_mmm64
	MnemonicPaddd, // Paddd_xmm_xmmm128
	MnemonicMovdqu, // Movdqu_xmm_xmmm128
	MnemonicAddps, // Addps_xmm_xmmm128
	MnemonicAddss, // Addss_xmm_xmmm32
	MnemonicExtrq, // Extrq_xmm_imm8_imm8
	MnemonicInsertq, // Insertq_xmm_xmm_imm8_imm8
	MnemonicVaddps, // VEX_Vaddps_ymm_ymm_ymmm256
	MnemonicVblendvps, // VEX_Vblendvps_xmm_xmm_xmmm128_xmm
	MnemonicVcvtph2ps, // VEX_Vcvtph2ps_xmm_xmmm64
	MnemonicVpmadd52luq, // VEX_Vpmadd52luq_ymm_ymm_ymmm256
	MnemonicVbroadcastss, // VEX_Vbroadcastss_ymm_m32
	MnemonicKmovw, // VEX_Kmovw_kr_km16
	MnemonicVaddps, // EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32
	MnemonicVaddps, // EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32
	MnemonicVaddps, // EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er
	MnemonicVaddpd, // EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er
	MnemonicVpaddd, // EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32
	MnemonicVpaddq, // EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64
	MnemonicVpandd, // EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32
	MnemonicVpandq, // EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64
	MnemonicVpmadd52luq, // EVEX_Vpmadd52luq_zmm_k1z_zmm_zmmm512b64
	MnemonicVpternlogd, // EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8
	MnemonicVpdpwssd, // EVEX_Vpdpwssd_zmm_k1z_zmm_zmmm512b32
	MnemonicVdpbf16ps, // EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32
	MnemonicVcvtne2ps2bf16, // EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32
	MnemonicVcvtph2ps, // EVEX_Vcvtph2ps_zmm_k1z_ymmm256_sae
	MnemonicVsqrtss, // EVEX_Vsqrtss_xmm_k1z_xmm_xmmm32_er
	MnemonicVpgatherdd, // VEX_Vpgatherdd_xmm_vm32x_xmm
	MnemonicVpgatherdd, // VEX_Vpgatherdd_ymm_vm32y_ymm
	MnemonicVpgatherdq, // VEX_Vpgatherdq_xmm_vm32x_xmm
	MnemonicVpgatherdq, // VEX_Vpgatherdq_ymm_vm32x_ymm
	MnemonicVpgatherdd, // EVEX_Vpgatherdd_xmm_k1_vm32x
	MnemonicVpgatherdd, // EVEX_Vpgatherdd_ymm_k1_vm32y
	MnemonicVpgatherdd, // EVEX_Vpgatherdd_zmm_k1_vm32z
	MnemonicVpgatherdq, // EVEX_Vpgatherdq_xmm_k1_vm32x
	MnemonicVpgatherdq, // EVEX_Vpgatherdq_ymm_k1_vm32x
	MnemonicVpgatherdq, // EVEX_Vpgatherdq_zmm_k1_vm32y
	MnemonicVgatherdps, // VEX_Vgatherdps_xmm_vm32x_xmm
	MnemonicVgatherdps, // VEX_Vgatherdps_ymm_vm32y_ymm
	MnemonicVgatherdpd, // VEX_Vgatherdpd_xmm_vm32x_xmm
	MnemonicVgatherdpd, // VEX_Vgatherdpd_ymm_vm32x_ymm
	MnemonicVgatherdps, // EVEX_Vgatherdps_xmm_k1_vm32x
	MnemonicVgatherdps, // EVEX_Vgatherdps_ymm_k1_vm32y
	MnemonicVgatherdps, // EVEX_Vgatherdps_zmm_k1_vm32z
	MnemonicVgatherdpd, // EVEX_Vgatherdpd_xmm_k1_vm32x
	MnemonicVgatherdpd, // EVEX_Vgatherdpd_ymm_k1_vm32x
	MnemonicVgatherdpd, // EVEX_Vgatherdpd_zmm_k1_vm32y
	MnemonicVpscatterdd, // EVEX_Vpscatterdd_vm32x_k1_xmm
	MnemonicVpscatterdd, // EVEX_Vpscatterdd_vm32y_k1_ymm
	MnemonicVpscatterdd, // EVEX_Vpscatterdd_vm32z_k1_zmm
	MnemonicVpscatterdq, // EVEX_Vpscatterdq_vm32x_k1_xmm
	MnemonicVpscatterdq, // EVEX_Vpscatterdq_vm32x_k1_ymm
	MnemonicVpscatterdq, // EVEX_Vpscatterdq_vm32y_k1_zmm
	MnemonicVscatterdps, // EVEX_Vscatterdps_vm32x_k1_xmm
	MnemonicVscatterdps, // EVEX_Vscatterdps_vm32y_k1_ymm
	MnemonicVscatterdps, // EVEX_Vscatterdps_vm32z_k1_zmm
	MnemonicVscatterdpd, // EVEX_Vscatterdpd_vm32x_k1_xmm
	MnemonicVscatterdpd, // EVEX_Vscatterdpd_vm32x_k1_ymm
	MnemonicVscatterdpd, // EVEX_Vscatterdpd_vm32y_k1_zmm
	MnemonicVgatherpf0dps, // EVEX_Vgatherpf0dps_vm32z_k1
	MnemonicVgatherpf0dpd, // EVEX_Vgatherpf0dpd_vm32y_k1
	MnemonicVgatherpf1dps, // EVEX_Vgatherpf1dps_vm32z_k1
	MnemonicVgatherpf1dpd, // EVEX_Vgatherpf1dpd_vm32y_k1
	MnemonicVscatterpf0dps, // EVEX_Vscatterpf0dps_vm32z_k1
	MnemonicVscatterpf0dpd, // EVEX_Vscatterpf0dpd_vm32y_k1
	MnemonicVscatterpf1dps, // EVEX_Vscatterpf1dps_vm32z_k1
	MnemonicVscatterpf1dpd, // EVEX_Vscatterpf1dpd_vm32y_k1
	MnemonicVpgatherqd, // VEX_Vpgatherqd_xmm_vm64x_xmm
	MnemonicVpgatherqd, // VEX_Vpgatherqd_xmm_vm64y_xmm
	MnemonicVpgatherqq, // VEX_Vpgatherqq_xmm_vm64x_xmm
	MnemonicVpgatherqq, // VEX_Vpgatherqq_ymm_vm64y_ymm
	MnemonicVpgatherqd, // EVEX_Vpgatherqd_xmm_k1_vm64x
	MnemonicVpgatherqd, // EVEX_Vpgatherqd_xmm_k1_vm64y
	MnemonicVpgatherqd, // EVEX_Vpgatherqd_ymm_k1_vm64z
	MnemonicVpgatherqq, // EVEX_Vpgatherqq_xmm_k1_vm64x
	MnemonicVpgatherqq, // EVEX_Vpgatherqq_ymm_k1_vm64y
	MnemonicVpgatherqq, // EVEX_Vpgatherqq_zmm_k1_vm64z
	MnemonicVgatherqps, // VEX_Vgatherqps_xmm_vm64x_xmm
	MnemonicVgatherqps, // VEX_Vgatherqps_xmm_vm64y_xmm
	MnemonicVgatherqpd, // VEX_Vgatherqpd_xmm_vm64x_xmm
	MnemonicVgatherqpd, // VEX_Vgatherqpd_ymm_vm64y_ymm
	MnemonicVgatherqps, // EVEX_Vgatherqps_xmm_k1_vm64x
	MnemonicVgatherqps, // EVEX_Vgatherqps_xmm_k1_vm64y
	MnemonicVgatherqps, // EVEX_Vgatherqps_ymm_k1_vm64z
	MnemonicVgatherqpd, // EVEX_Vgatherqpd_xmm_k1_vm64x
	MnemonicVgatherqpd, // EVEX_Vgatherqpd_ymm_k1_vm64y
	MnemonicVgatherqpd, // EVEX_Vgatherqpd_zmm_k1_vm64z
	MnemonicVpscatterqd, // EVEX_Vpscatterqd_vm64x_k1_xmm
	MnemonicVpscatterqd, // EVEX_Vpscatterqd_vm64y_k1_xmm
	MnemonicVpscatterqd, // EVEX_Vpscatterqd_vm64z_k1_ymm
	MnemonicVpscatterqq, // EVEX_Vpscatterqq_vm64x_k1_xmm
	MnemonicVpscatterqq, // EVEX_Vpscatterqq_vm64y_k1_ymm
	MnemonicVpscatterqq, // EVEX_Vpscatterqq_vm64z_k1_zmm
	MnemonicVscatterqps, // EVEX_Vscatterqps_vm64x_k1_xmm
	MnemonicVscatterqps, // EVEX_Vscatterqps_vm64y_k1_xmm
	MnemonicVscatterqps, // EVEX_Vscatterqps_vm64z_k1_ymm
	MnemonicVscatterqpd, // EVEX_Vscatterqpd_vm64x_k1_xmm
	MnemonicVscatterqpd, // EVEX_Vscatterqpd_vm64y_k1_ymm
	MnemonicVscatterqpd, // EVEX_Vscatterqpd_vm64z_k1_zmm
	MnemonicVgatherpf0qps, // EVEX_Vgatherpf0qps_vm64z_k1
	MnemonicVgatherpf0qpd, // EVEX_Vgatherpf0qpd_vm64z_k1
	MnemonicVgatherpf1qps, // EVEX_Vgatherpf1qps_vm64z_k1
	MnemonicVgatherpf1qpd, // EVEX_Vgatherpf1qpd_vm64z_k1
	MnemonicVscatterpf0qps, // EVEX_Vscatterpf0qps_vm64z_k1
	MnemonicVscatterpf0qpd, // EVEX_Vscatterpf0qpd_vm64z_k1
	MnemonicVscatterpf1qps, // EVEX_Vscatterpf1qps_vm64z_k1
	MnemonicVscatterpf1qpd, // EVEX_Vscatterpf1qpd_vm64z_k1
}

var _ [NumberOfCodes]Mnemonic = codeMnemonics

var codeOpCounts = [...]uint8{
	0, // INVALID
	0, // DeclareByte
	0, // DeclareWord
	0, // DeclareDword
	0, // DeclareQword
	2, // Add_rm8_r8
	2, // Add_rm16_r16
	2, // Add_rm32_r32
	2, // Add_rm64_r64
	2, // Add_r32_rm32
	2, // Add_AL_imm8
	2, // Add_rm16_imm8
	2, // Add_rm32_imm8
	2, // Add_rm64_imm8
	2, // Add_rm64_imm32
	2, // Mov_rm8_r8
	2, // Mov_rm32_r32
	2, // Mov_rm64_r64
	2, // Mov_r64_rm64
	2, // Mov_r8_imm8
	2, // Mov_r16_imm16
	2, // Mov_r32_imm32
	2, // Mov_r64_imm64
	2, // Mov_AL_moffs8
	2, // Mov_EAX_moffs32
	2, // Mov_RAX_moffs64
	2, // Mov_moffs64_RAX
	2, // Mov_r64_cr
	2, // Mov_cr_r64
	2, // Mov_r64_dr
	2, // Mov_r32m16_Sreg
	2, // Mov_Sreg_r32m16
	2, // Lea_r32_m
	2, // Lea_r64_m
	1, // Push_r64
	1, // Pop_r64
	1, // Push_rm64
	1, // Pushq_imm8
	1, // Pushq_imm32
	1, // Jmp_rel8_16
	1, // Jmp_rel8_32
	1, // Jmp_rel8_64
	1, // Jmp_rel16
	1, // Jmp_rel32_32
	1, // Jmp_rel32_64
	1, // Jmp_rm16
	1, // Jmp_rm32
	1, // Jmp_rm64
	1, // Jmp_ptr1616
	1, // Jmp_ptr1632
	1, // Jmp_m1616
	1, // Jmp_m1632
	1, // Jmp_m1664
	1, // Call_rel16
	1, // Call_rel32_32
	1, // Call_rel32_64
	1, // Call_ptr1616
	1, // Call_ptr1632
	1, // Call_rm64
	0, // Retnd
	0, // Retnq
	1, // Retnq_imm16
	0, // Retfq
	2, // Enterq_imm16_imm8
	0, // Nopd
	0, // Nopq
	1, // Nop_rm32
	0, // Int3
	1, // Int_imm8
	2, // Movsb_m8_m8
	2, // Movsw_m16_m16
	2, // Movsd_m32_m32
	2, // Movsq_m64_m64
	2, // Cmpsb_m8_m8
	2, // Stosb_m8_AL
	2, // Stosq_m64_RAX
	2, // Lodsb_AL_m8
	2, // Scasb_AL_m8
	2, // Outsb_DX_m8
	2, // Insb_m8_DX
	1, // Xlat_m8
	2, // Cmpxchg_rm32_r32
	2, // Cmpxchg_rm64_r64
	2, // Xchg_rm32_r32
	2, // Xadd_rm32_r32
	1, // Cmpxchg8b_m64
	1, // Cmpxchg16b_m128
	2, // Bound_r16_m1616
	2, // Bound_r32_m3232
	1, // Lgdt_m1632_16
	1, // Lgdt_m1632
	1, // Lgdt_m1664
	2, // Les_r32_m1632
	1, // Fld_m32fp
	1, // Fld_m64fp
	1, // Fld_m80fp
	1, // Fild_m16int
	1, // Fild_m32int
	1, // Fild_m64int
	1, // Fbld_m80bcd
	1, // Fnstenv_m14byte
	1, // Fnstenv_m28byte
	1, // Fnsave_m94byte
	1, // Fnsave_m108byte
	1, // Fxsave_m512byte
	1, // Fxsave64_m512byte
	1, // Xsave_mem
	1, // Xsave64_mem
	2, // Bndmov_bnd_bndm64
	2, // Bndmov_bnd_bndm128
	2, // Movq_mm_mmm64
	2, // Paddd_mm_mmm64
	2, // Paddd_xmm_xmmm128
	2, // Movdqu_xmm_xmmm128
	2, // Addps_xmm_xmmm128
	2, // Addss_xmm_xmmm32
	3, // Extrq_xmm_imm8_imm8
	4, // Insertq_xmm_xmm_imm8_imm8
	3, // VEX_Vaddps_ymm_ymm_ymmm256
	4, // VEX_Vblendvps_xmm_xmm_xmmm128_xmm
	2, // VEX_Vcvtph2ps_xmm_xmmm64
	3, // VEX_Vpmadd52luq_ymm_ymm_ymmm256
	2, // VEX_Vbroadcastss_ymm_m32
	2, // VEX_Kmovw_kr_km16
	3, // EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32
	3, // EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32
	3, // EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er
	3, // EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er
	3, // EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32
	3, // EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64
	3, // EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32
	3, // EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64
	3, // EVEX_Vpmadd52luq_zmm_k1z_zmm_zmmm512b64
	4, // EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8
	3, // EVEX_Vpdpwssd_zmm_k1z_zmm_zmmm512b32
	3, // EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32
	3, // EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32
	2, // EVEX_Vcvtph2ps_zmm_k1z_ymmm256_sae
	3, // EVEX_Vsqrtss_xmm_k1z_xmm_xmmm32_er
	3, // VEX_Vpgatherdd_xmm_vm32x_xmm
	3, // VEX_Vpgatherdd_ymm_vm32y_ymm
	3, // VEX_Vpgatherdq_xmm_vm32x_xmm
	3, // VEX_Vpgatherdq_ymm_vm32x_ymm
	2, // EVEX_Vpgatherdd_xmm_k1_vm32x
	2, // EVEX_Vpgatherdd_ymm_k1_vm32y
	2, // EVEX_Vpgatherdd_zmm_k1_vm32z
	2, // EVEX_Vpgatherdq_xmm_k1_vm32x
	2, // EVEX_Vpgatherdq_ymm_k1_vm32x
	2, // EVEX_Vpgatherdq_zmm_k1_vm32y
	3, // VEX_Vgatherdps_xmm_vm32x_xmm
	3, // VEX_Vgatherdps_ymm_vm32y_ymm
	3, // VEX_Vgatherdpd_xmm_vm32x_xmm
	3, // VEX_Vgatherdpd_ymm_vm32x_ymm
	2, // EVEX_Vgatherdps_xmm_k1_vm32x
	2, // EVEX_Vgatherdps_ymm_k1_vm32y
	2, // EVEX_Vgatherdps_zmm_k1_vm32z
	2, // EVEX_Vgatherdpd_xmm_k1_vm32x
	2, // EVEX_Vgatherdpd_ymm_k1_vm32x
	2, // EVEX_Vgatherdpd_zmm_k1_vm32y
	2, // EVEX_Vpscatterdd_vm32x_k1_xmm
	2, // EVEX_Vpscatterdd_vm32y_k1_ymm
	2, // EVEX_Vpscatterdd_vm32z_k1_zmm
	2, // EVEX_Vpscatterdq_vm32x_k1_xmm
	2, // EVEX_Vpscatterdq_vm32x_k1_ymm
	2, // EVEX_Vpscatterdq_vm32y_k1_zmm
	2, // EVEX_Vscatterdps_vm32x_k1_xmm
	2, // EVEX_Vscatterdps_vm32y_k1_ymm
	2, // EVEX_Vscatterdps_vm32z_k1_zmm
	2, // EVEX_Vscatterdpd_vm32x_k1_xmm
	2, // EVEX_Vscatterdpd_vm32x_k1_ymm
	2, // EVEX_Vscatterdpd_vm32y_k1_zmm
	1, // EVEX_Vgatherpf0dps_vm32z_k1
	1, // EVEX_Vgatherpf0dpd_vm32y_k1
	1, // EVEX_Vgatherpf1dps_vm32z_k1
	1, // EVEX_Vgatherpf1dpd_vm32y_k1
	1, // EVEX_Vscatterpf0dps_vm32z_k1
	1, // EVEX_Vscatterpf0dpd_vm32y_k1
	1, // EVEX_Vscatterpf1dps_vm32z_k1
	1, // EVEX_Vscatterpf1dpd_vm32y_k1
	3, // VEX_Vpgatherqd_xmm_vm64x_xmm
	3, // VEX_Vpgatherqd_xmm_vm64y_xmm
	3, // VEX_Vpgatherqq_xmm_vm64x_xmm
	3, // VEX_Vpgatherqq_ymm_vm64y_ymm
	2, // EVEX_Vpgatherqd_xmm_k1_vm64x
	2, // EVEX_Vpgatherqd_xmm_k1_vm64y
	2, // EVEX_Vpgatherqd_ymm_k1_vm64z
	2, // EVEX_Vpgatherqq_xmm_k1_vm64x
	2, // EVEX_Vpgatherqq_ymm_k1_vm64y
	2, // EVEX_Vpgatherqq_zmm_k1_vm64z
	3, // VEX_Vgatherqps_xmm_vm64x_xmm
	3, // VEX_Vgatherqps_xmm_vm64y_xmm
	3, // VEX_Vgatherqpd_xmm_vm64x_xmm
	3, // VEX_Vgatherqpd_ymm_vm64y_ymm
	2, // EVEX_Vgatherqps_xmm_k1_vm64x
	2, // EVEX_Vgatherqps_xmm_k1_vm64y
	2, // EVEX_Vgatherqps_ymm_k1_vm64z
	2, // EVEX_Vgatherqpd_xmm_k1_vm64x
	2, // EVEX_Vgatherqpd_ymm_k1_vm64y
	2, // EVEX_Vgatherqpd_zmm_k1_vm64z
	2, // EVEX_Vpscatterqd_vm64x_k1_xmm
	2, // EVEX_Vpscatterqd_vm64y_k1_xmm
	2, // EVEX_Vpscatterqd_vm64z_k1_ymm
	2, // EVEX_Vpscatterqq_vm64x_k1_xmm
	2, // EVEX_Vpscatterqq_vm64y_k1_ymm
	2, // EVEX_Vpscatterqq_vm64z_k1_zmm
	2, // EVEX_Vscatterqps_vm64x_k1_xmm
	2, // EVEX_Vscatterqps_vm64y_k1_xmm
	2, // EVEX_Vscatterqps_vm64z_k1_ymm
	2, // EVEX_Vscatterqpd_vm64x_k1_xmm
	2, // EVEX_Vscatterqpd_vm64y_k1_ymm
	2, // EVEX_Vscatterqpd_vm64z_k1_zmm
	1, // EVEX_Vgatherpf0qps_vm64z_k1
	1, // EVEX_Vgatherpf0qpd_vm64z_k1
	1, // EVEX_Vgatherpf1qps_vm64z_k1
	1, // EVEX_Vgatherpf1qpd_vm64z_k1
	1, // EVEX_Vscatterpf0qps_vm64z_k1
	1, // EVEX_Vscatterpf0qpd_vm64z_k1
	1, // EVEX_Vscatterpf1qps_vm64z_k1
	1, // EVEX_Vscatterpf1qpd_vm64z_k1
}

var _ [NumberOfCodes]uint8 = codeOpCounts

// instructionMemorySizes holds the memory size of
// each code, followed by the memory size of each
// code when it uses a broadcast memory operand.
var instructionMemorySizes = [...]MemorySize{
	MemorySizeUnknown, // INVALID
	MemorySizeUnknown, // DeclareByte
	MemorySizeUnknown, // DeclareWord
	MemorySizeUnknown, // DeclareDword
	MemorySizeUnknown, // DeclareQword
	MemorySizeUInt8, // Add_rm8_r8
	MemorySizeUInt16, // Add_rm16_r16
	MemorySizeUInt32, // Add_rm32_r32
	MemorySizeUInt64, // Add_rm64_r64
	MemorySizeUInt32, // Add_r32_rm32
	MemorySizeUnknown, // Add_AL_imm8
	MemorySizeUInt16, // Add_rm16_imm8
	MemorySizeUInt32, // Add_rm32_imm8
	MemorySizeUInt64, // Add_rm64_imm8
	MemorySizeUInt64, // Add_rm64_imm32
	MemorySizeUInt8, // Mov_rm8_r8
	MemorySizeUInt32, // Mov_rm32_r32
	MemorySizeUInt64, // Mov_rm64_r64
	MemorySizeUInt64, // Mov_r64_rm64
	MemorySizeUnknown, // Mov_r8_imm8
	MemorySizeUnknown, // Mov_r16_imm16
	MemorySizeUnknown, // Mov_r32_imm32
	MemorySizeUnknown, // Mov_r64_imm64
	MemorySizeUInt8, // Mov_AL_moffs8
	MemorySizeUInt32, // Mov_EAX_moffs32
	MemorySizeUInt64, // Mov_RAX_moffs64
	MemorySizeUInt64, // Mov_moffs64_RAX
	MemorySizeUnknown, // Mov_r64_cr
	MemorySizeUnknown, // Mov_cr_r64
	MemorySizeUnknown, // Mov_r64_dr
	MemorySizeUInt16, // Mov_r32m16_Sreg
	MemorySizeUInt16, // Mov_Sreg_r32m16
	MemorySizeUnknown, // Lea_r32_m
	MemorySizeUnknown, // Lea_r64_m
	MemorySizeUnknown, // Push_r64
	MemorySizeUnknown, // Pop_r64
	MemorySizeUInt64, // Push_rm64
	MemorySizeUnknown, // Pushq_imm8
	MemorySizeUnknown, // Pushq_imm32
	MemorySizeUnknown, // Jmp_rel8_16
	MemorySizeUnknown, // Jmp_rel8_32
	MemorySizeUnknown, // Jmp_rel8_64
	MemorySizeUnknown, // Jmp_rel16
	MemorySizeUnknown, // Jmp_rel32_32
	MemorySizeUnknown, // Jmp_rel32_64
	MemorySizeWordOffset, // Jmp_rm16
	MemorySizeDwordOffset, // Jmp_rm32
	MemorySizeQwordOffset, // Jmp_rm64
	MemorySizeUnknown, // Jmp_ptr1616
	MemorySizeUnknown, // Jmp_ptr1632
	MemorySizeSegPtr16, // Jmp_m1616
	MemorySizeSegPtr32, // Jmp_m1632
	MemorySizeSegPtr64, // Jmp_m1664
	MemorySizeUnknown, // Call_rel16
	MemorySizeUnknown, // Call_rel32_32
	MemorySizeUnknown, // Call_rel32_64
	MemorySizeUnknown, // Call_ptr1616
	MemorySizeUnknown, // Call_ptr1632
	MemorySizeQwordOffset, // Call_rm64
	MemorySizeUnknown, // Retnd
	MemorySizeUnknown, // Retnq
	MemorySizeUnknown, // Retnq_imm16
	MemorySizeUnknown, // Retfq
	MemorySizeUnknown, // Enterq_imm16_imm8
	MemorySizeUnknown, // Nopd
	MemorySizeUnknown, // Nopq
	MemorySizeUInt32, // Nop_rm32
	MemorySizeUnknown, // Int3
	MemorySizeUnknown, // Int_imm8
	MemorySizeUInt8, // Movsb_m8_m8
	MemorySizeUInt16, // Movsw_m16_m16
	MemorySizeUInt32, // Movsd_m32_m32
	MemorySizeUInt64, // Movsq_m64_m64
	MemorySizeUInt8, // Cmpsb_m8_m8
	MemorySizeUInt8, // Stosb_m8_AL
	MemorySizeUInt64, // Stosq_m64_RAX
	MemorySizeUInt8, // Lodsb_AL_m8
	MemorySizeUInt8, // Scasb_AL_m8
	MemorySizeUInt8, // Outsb_DX_m8
	MemorySizeUInt8, // Insb_m8_DX
	MemorySizeUInt8, // Xlat_m8
	MemorySizeUInt32, // Cmpxchg_rm32_r32
	MemorySizeUInt64, // Cmpxchg_rm64_r64
	MemorySizeUInt32, // Xchg_rm32_r32
	MemorySizeUInt32, // Xadd_rm32_r32
	MemorySizeUInt64, // Cmpxchg8b_m64
	MemorySizeUInt128, // Cmpxchg16b_m128
	MemorySizeBound16_WordWord, // Bound_r16_m1616
	MemorySizeBound32_DwordDword, // Bound_r32_m3232
	MemorySizeFword6, // Lgdt_m1632_16
	MemorySizeFword6, // Lgdt_m1632
	MemorySizeFword10, // Lgdt_m1664
	MemorySizeSegPtr32, // Les_r32_m1632
	MemorySizeFloat32, // Fld_m32fp
	MemorySizeFloat64, // Fld_m64fp
	MemorySizeFloat80, // Fld_m80fp
	MemorySizeInt16, // Fild_m16int
	MemorySizeInt32, // Fild_m32int
	MemorySizeInt64, // Fild_m64int
	MemorySizeBcd, // Fbld_m80bcd
	MemorySizeFpuEnv14, // Fnstenv_m14byte
	MemorySizeFpuEnv28, // Fnstenv_m28byte
	MemorySizeFpuState94, // Fnsave_m94byte
	MemorySizeFpuState108, // Fnsave_m108byte
	MemorySizeFxsave_512Byte, // Fxsave_m512byte
	MemorySizeFxsave64_512Byte, // Fxsave64_m512byte
	MemorySizeXsave, // Xsave_mem
	MemorySizeXsave64, // Xsave64_mem
	MemorySizeBnd32, // Bndmov_bnd_bndm64
	MemorySizeBnd64, // Bndmov_bnd_bndm128
	MemorySizeUInt64, // Movq_mm_mmm64
	MemorySizePacked64_Int32, // Paddd_mm_mmm64
	MemorySizePacked128_Int32, // Paddd_xmm_xmmm128
	MemorySizeUInt128, // Movdqu_xmm_xmmm128
	MemorySizePacked128_Float32, // Addps_xmm_xmmm128
	MemorySizeFloat32, // Addss_xmm_xmmm32
	MemorySizeUnknown, // Extrq_xmm_imm8_imm8
	MemorySizeUnknown, // Insertq_xmm_xmm_imm8_imm8
	MemorySizePacked256_Float32, // VEX_Vaddps_ymm_ymm_ymmm256
	MemorySizePacked128_Float32, // VEX_Vblendvps_xmm_xmm_xmmm128_xmm
	MemorySizePacked64_Float16, // VEX_Vcvtph2ps_xmm_xmmm64
	MemorySizePacked256_UInt52, // VEX_Vpmadd52luq_ymm_ymm_ymmm256
	MemorySizeFloat32, // VEX_Vbroadcastss_ymm_m32
	MemorySizeUInt16, // VEX_Kmovw_kr_km16
	MemorySizePacked128_Float32, // EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32
	MemorySizePacked256_Float32, // EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32
	MemorySizePacked512_Float32, // EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er
	MemorySizePacked512_Float64, // EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er
	MemorySizePacked512_Int32, // EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32
	MemorySizePacked512_Int64, // EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64
	MemorySizePacked512_UInt32, // EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32
	MemorySizePacked512_UInt64, // EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64
	MemorySizePacked512_UInt52, // EVEX_Vpmadd52luq_zmm_k1z_zmm_zmmm512b64
	MemorySizePacked512_UInt32, // EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8
	MemorySizePacked512_Int16, // EVEX_Vpdpwssd_zmm_k1z_zmm_zmmm512b32
	MemorySizePacked512_2xBFloat16, // EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32
	MemorySizePacked512_Float32, // EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32
	MemorySizePacked256_Float16, // EVEX_Vcvtph2ps_zmm_k1z_ymmm256_sae
	MemorySizeFloat32, // EVEX_Vsqrtss_xmm_k1z_xmm_xmmm32_er
	MemorySizeInt32, // VEX_Vpgatherdd_xmm_vm32x_xmm
	MemorySizeInt32, // VEX_Vpgatherdd_ymm_vm32y_ymm
	MemorySizeInt64, // VEX_Vpgatherdq_xmm_vm32x_xmm
	MemorySizeInt64, // VEX_Vpgatherdq_ymm_vm32x_ymm
	MemorySizeInt32, // EVEX_Vpgatherdd_xmm_k1_vm32x
	MemorySizeInt32, // EVEX_Vpgatherdd_ymm_k1_vm32y
	MemorySizeInt32, // EVEX_Vpgatherdd_zmm_k1_vm32z
	MemorySizeInt64, // EVEX_Vpgatherdq_xmm_k1_vm32x
	MemorySizeInt64, // EVEX_Vpgatherdq_ymm_k1_vm32x
	MemorySizeInt64, // EVEX_Vpgatherdq_zmm_k1_vm32y
	MemorySizeFloat32, // VEX_Vgatherdps_xmm_vm32x_xmm
	MemorySizeFloat32, // VEX_Vgatherdps_ymm_vm32y_ymm
	MemorySizeFloat64, // VEX_Vgatherdpd_xmm_vm32x_xmm
	MemorySizeFloat64, // VEX_Vgatherdpd_ymm_vm32x_ymm
	MemorySizeFloat32, // EVEX_Vgatherdps_xmm_k1_vm32x
	MemorySizeFloat32, // EVEX_Vgatherdps_ymm_k1_vm32y
	MemorySizeFloat32, // EVEX_Vgatherdps_zmm_k1_vm32z
	MemorySizeFloat64, // EVEX_Vgatherdpd_xmm_k1_vm32x
	MemorySizeFloat64, // EVEX_Vgatherdpd_ymm_k1_vm32x
	MemorySizeFloat64, // EVEX_Vgatherdpd_zmm_k1_vm32y
	MemorySizeInt32, // EVEX_Vpscatterdd_vm32x_k1_xmm
	MemorySizeInt32, // EVEX_Vpscatterdd_vm32y_k1_ymm
	MemorySizeInt32, // EVEX_Vpscatterdd_vm32z_k1_zmm
	MemorySizeInt64, // EVEX_Vpscatterdq_vm32x_k1_xmm
	MemorySizeInt64, // EVEX_Vpscatterdq_vm32x_k1_ymm
	MemorySizeInt64, // EVEX_Vpscatterdq_vm32y_k1_zmm
	MemorySizeFloat32, // EVEX_Vscatterdps_vm32x_k1_xmm
	MemorySizeFloat32, // EVEX_Vscatterdps_vm32y_k1_ymm
	MemorySizeFloat32, // EVEX_Vscatterdps_vm32z_k1_zmm
	MemorySizeFloat64, // EVEX_Vscatterdpd_vm32x_k1_xmm
	MemorySizeFloat64, // EVEX_Vscatterdpd_vm32x_k1_ymm
	MemorySizeFloat64, // EVEX_Vscatterdpd_vm32y_k1_zmm
	MemorySizeFloat32, // EVEX_Vgatherpf0dps_vm32z_k1
	MemorySizeFloat64, // EVEX_Vgatherpf0dpd_vm32y_k1
	MemorySizeFloat32, // EVEX_Vgatherpf1dps_vm32z_k1
	MemorySizeFloat64, // EVEX_Vgatherpf1dpd_vm32y_k1
	MemorySizeFloat32, // EVEX_Vscatterpf0dps_vm32z_k1
	MemorySizeFloat64, // EVEX_Vscatterpf0dpd_vm32y_k1
	MemorySizeFloat32, // EVEX_Vscatterpf1dps_vm32z_k1
	MemorySizeFloat64, // EVEX_Vscatterpf1dpd_vm32y_k1
	MemorySizeInt32, // VEX_Vpgatherqd_xmm_vm64x_xmm
	MemorySizeInt32, // VEX_Vpgatherqd_xmm_vm64y_xmm
	MemorySizeInt64, // VEX_Vpgatherqq_xmm_vm64x_xmm
	MemorySizeInt64, // VEX_Vpgatherqq_ymm_vm64y_ymm
	MemorySizeInt32, // EVEX_Vpgatherqd_xmm_k1_vm64x
	MemorySizeInt32, // EVEX_Vpgatherqd_xmm_k1_vm64y
	MemorySizeInt32, // EVEX_Vpgatherqd_ymm_k1_vm64z
	MemorySizeInt64, // EVEX_Vpgatherqq_xmm_k1_vm64x
	MemorySizeInt64, // EVEX_Vpgatherqq_ymm_k1_vm64y
	MemorySizeInt64, // EVEX_Vpgatherqq_zmm_k1_vm64z
	MemorySizeFloat32, // VEX_Vgatherqps_xmm_vm64x_xmm
	MemorySizeFloat32, // VEX_Vgatherqps_xmm_vm64y_xmm
	MemorySizeFloat64, // VEX_Vgatherqpd_xmm_vm64x_xmm
	MemorySizeFloat64, // VEX_Vgatherqpd_ymm_vm64y_ymm
	MemorySizeFloat32, // EVEX_Vgatherqps_xmm_k1_vm64x
	MemorySizeFloat32, // EVEX_Vgatherqps_xmm_k1_vm64y
	MemorySizeFloat32, // EVEX_Vgatherqps_ymm_k1_vm64z
	MemorySizeFloat64, // EVEX_Vgatherqpd_xmm_k1_vm64x
	MemorySizeFloat64, // EVEX_Vgatherqpd_ymm_k1_vm64y
	MemorySizeFloat64, // EVEX_Vgatherqpd_zmm_k1_vm64z
	MemorySizeInt32, // EVEX_Vpscatterqd_vm64x_k1_xmm
	MemorySizeInt32, // EVEX_Vpscatterqd_vm64y_k1_xmm
	MemorySizeInt32, // EVEX_Vpscatterqd_vm64z_k1_ymm
	MemorySizeInt64, // EVEX_Vpscatterqq_vm64x_k1_xmm
	MemorySizeInt64, // EVEX_Vpscatterqq_vm64y_k1_ymm
	MemorySizeInt64, // EVEX_Vpscatterqq_vm64z_k1_zmm
	MemorySizeFloat32, // EVEX_Vscatterqps_vm64x_k1_xmm
	MemorySizeFloat32, // EVEX_Vscatterqps_vm64y_k1_xmm
	MemorySizeFloat32, // EVEX_Vscatterqps_vm64z_k1_ymm
	MemorySizeFloat64, // EVEX_Vscatterqpd_vm64x_k1_xmm
	MemorySizeFloat64, // EVEX_Vscatterqpd_vm64y_k1_ymm
	MemorySizeFloat64, // EVEX_Vscatterqpd_vm64z_k1_zmm
	MemorySizeFloat32, // EVEX_Vgatherpf0qps_vm64z_k1
	MemorySizeFloat64, // EVEX_Vgatherpf0qpd_vm64z_k1
	MemorySizeFloat32, // EVEX_Vgatherpf1qps_vm64z_k1
	MemorySizeFloat64, // EVEX_Vgatherpf1qpd_vm64z_k1
	MemorySizeFloat32, // EVEX_Vscatterpf0qps_vm64z_k1
	MemorySizeFloat64, // EVEX_Vscatterpf0qpd_vm64z_k1
	MemorySizeFloat32, // EVEX_Vscatterpf1qps_vm64z_k1
	MemorySizeFloat64, // EVEX_Vscatterpf1qpd_vm64z_k1

	// Broadcast.
	MemorySizeUnknown, // INVALID
	MemorySizeUnknown, // DeclareByte
	MemorySizeUnknown, // DeclareWord
	MemorySizeUnknown, // DeclareDword
	MemorySizeUnknown, // DeclareQword
	MemorySizeUnknown, // Add_rm8_r8
	MemorySizeUnknown, // Add_rm16_r16
	MemorySizeUnknown, // Add_rm32_r32
	MemorySizeUnknown, // Add_rm64_r64
	MemorySizeUnknown, // Add_r32_rm32
	MemorySizeUnknown, // Add_AL_imm8
	MemorySizeUnknown, // Add_rm16_imm8
	MemorySizeUnknown, // Add_rm32_imm8
	MemorySizeUnknown, // Add_rm64_imm8
	MemorySizeUnknown, // Add_rm64_imm32
	MemorySizeUnknown, // Mov_rm8_r8
	MemorySizeUnknown, // Mov_rm32_r32
	MemorySizeUnknown, // Mov_rm64_r64
	MemorySizeUnknown, // Mov_r64_rm64
	MemorySizeUnknown, // Mov_r8_imm8
	MemorySizeUnknown, // Mov_r16_imm16
	MemorySizeUnknown, // Mov_r32_imm32
	MemorySizeUnknown, // Mov_r64_imm64
	MemorySizeUnknown, // Mov_AL_moffs8
	MemorySizeUnknown, // Mov_EAX_moffs32
	MemorySizeUnknown, // Mov_RAX_moffs64
	MemorySizeUnknown, // Mov_moffs64_RAX
	MemorySizeUnknown, // Mov_r64_cr
	MemorySizeUnknown, // Mov_cr_r64
	MemorySizeUnknown, // Mov_r64_dr
	MemorySizeUnknown, // Mov_r32m16_Sreg
	MemorySizeUnknown, // Mov_Sreg_r32m16
	MemorySizeUnknown, // Lea_r32_m
	MemorySizeUnknown, // Lea_r64_m
	MemorySizeUnknown, // Push_r64
	MemorySizeUnknown, // Pop_r64
	MemorySizeUnknown, // Push_rm64
	MemorySizeUnknown, // Pushq_imm8
	MemorySizeUnknown, // Pushq_imm32
	MemorySizeUnknown, // Jmp_rel8_16
	MemorySizeUnknown, // Jmp_rel8_32
	MemorySizeUnknown, // Jmp_rel8_64
	MemorySizeUnknown, // Jmp_rel16
	MemorySizeUnknown, // Jmp_rel32_32
	MemorySizeUnknown, // Jmp_rel32_64
	MemorySizeUnknown, // Jmp_rm16
	MemorySizeUnknown, // Jmp_rm32
	MemorySizeUnknown, // Jmp_rm64
	MemorySizeUnknown, // Jmp_ptr1616
	MemorySizeUnknown, // Jmp_ptr1632
	MemorySizeUnknown, // Jmp_m1616
	MemorySizeUnknown, // Jmp_m1632
	MemorySizeUnknown, // Jmp_m1664
	MemorySizeUnknown, // Call_rel16
	MemorySizeUnknown, // Call_rel32_32
	MemorySizeUnknown, // Call_rel32_64
	MemorySizeUnknown, // Call_ptr1616
	MemorySizeUnknown, // Call_ptr1632
	MemorySizeUnknown, // Call_rm64
	MemorySizeUnknown, // Retnd
	MemorySizeUnknown, // Retnq
	MemorySizeUnknown, // Retnq_imm16
	MemorySizeUnknown, // Retfq
	MemorySizeUnknown, // Enterq_imm16_imm8
	MemorySizeUnknown, // Nopd
	MemorySizeUnknown, // Nopq
	MemorySizeUnknown, // Nop_rm32
	MemorySizeUnknown, // Int3
	MemorySizeUnknown, // Int_imm8
	MemorySizeUnknown, // Movsb_m8_m8
	MemorySizeUnknown, // Movsw_m16_m16
	MemorySizeUnknown, // Movsd_m32_m32
	MemorySizeUnknown, // Movsq_m64_m64
	MemorySizeUnknown, // Cmpsb_m8_m8
	MemorySizeUnknown, // Stosb_m8_AL
	MemorySizeUnknown, // Stosq_m64_RAX
	MemorySizeUnknown, // Lodsb_AL_m8
	MemorySizeUnknown, // Scasb_AL_m8
	MemorySizeUnknown, // Outsb_DX_m8
	MemorySizeUnknown, // Insb_m8_DX
	MemorySizeUnknown, // Xlat_m8
	MemorySizeUnknown, // Cmpxchg_rm32_r32
	MemorySizeUnknown, // Cmpxchg_rm64_r64
	MemorySizeUnknown, // Xchg_rm32_r32
	MemorySizeUnknown, // Xadd_rm32_r32
	MemorySizeUnknown, // Cmpxchg8b_m64
	MemorySizeUnknown, // Cmpxchg16b_m128
	MemorySizeUnknown, // Bound_r16_m1616
	MemorySizeUnknown, // Bound_r32_m3232
	MemorySizeUnknown, // Lgdt_m1632_16
	MemorySizeUnknown, // Lgdt_m1632
	MemorySizeUnknown, // Lgdt_m1664
	MemorySizeUnknown, // Les_r32_m1632
	MemorySizeUnknown, // Fld_m32fp
	MemorySizeUnknown, // Fld_m64fp
	MemorySizeUnknown, // Fld_m80fp
	MemorySizeUnknown, // Fild_m16int
	MemorySizeUnknown, // Fild_m32int
	MemorySizeUnknown, // Fild_m64int
	MemorySizeUnknown, // Fbld_m80bcd
	MemorySizeUnknown, // Fnstenv_m14byte
	MemorySizeUnknown, // Fnstenv_m28byte
	MemorySizeUnknown, // Fnsave_m94byte
	MemorySizeUnknown, // Fnsave_m108byte
	MemorySizeUnknown, // Fxsave_m512byte
	MemorySizeUnknown, // Fxsave64_m512byte
	MemorySizeUnknown, // Xsave_mem
	MemorySizeUnknown, // Xsave64_mem
	MemorySizeUnknown, // Bndmov_bnd_bndm64
	MemorySizeUnknown, // Bndmov_bnd_bndm128
	MemorySizeUnknown, // Movq_mm_mmm64
	MemorySizeUnknown, // Paddd_mm_mmm64
	MemorySizeUnknown, // Paddd_xmm_xmmm128
	MemorySizeUnknown, // Movdqu_xmm_xmmm128
	MemorySizeUnknown, // Addps_xmm_xmmm128
	MemorySizeUnknown, // Addss_xmm_xmmm32
	MemorySizeUnknown, // Extrq_xmm_imm8_imm8
	MemorySizeUnknown, // Insertq_xmm_xmm_imm8_imm8
	MemorySizeUnknown, // VEX_Vaddps_ymm_ymm_ymmm256
	MemorySizeUnknown, // VEX_Vblendvps_xmm_xmm_xmmm128_xmm
	MemorySizeUnknown, // VEX_Vcvtph2ps_xmm_xmmm64
	MemorySizeUnknown, // VEX_Vpmadd52luq_ymm_ymm_ymmm256
	MemorySizeUnknown, // VEX_Vbroadcastss_ymm_m32
	MemorySizeUnknown, // VEX_Kmovw_kr_km16
	MemorySizeBroadcast128_Float32, // EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32
	MemorySizeBroadcast256_Float32, // EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32
	MemorySizeBroadcast512_Float32, // EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er
	MemorySizeBroadcast512_Float64, // EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er
	MemorySizeBroadcast512_Int32, // EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32
	MemorySizeBroadcast512_Int64, // EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64
	MemorySizeBroadcast512_UInt32, // EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32
	MemorySizeBroadcast512_UInt64, // EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64
	MemorySizeBroadcast512_UInt52, // EVEX_Vpmadd52luq_zmm_k1z_zmm_zmmm512b64
	MemorySizeBroadcast512_UInt32, // EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8
	MemorySizeBroadcast512_2xInt16, // EVEX_Vpdpwssd_zmm_k1z_zmm_zmmm512b32
	MemorySizeBroadcast512_2xBFloat16, // EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32
	MemorySizeBroadcast512_Float32, // EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32
	MemorySizeUnknown, // EVEX_Vcvtph2ps_zmm_k1z_ymmm256_sae
	MemorySizeUnknown, // EVEX_Vsqrtss_xmm_k1z_xmm_xmmm32_er
	MemorySizeUnknown, // VEX_Vpgatherdd_xmm_vm32x_xmm
	MemorySizeUnknown, // VEX_Vpgatherdd_ymm_vm32y_ymm
	MemorySizeUnknown, // VEX_Vpgatherdq_xmm_vm32x_xmm
	MemorySizeUnknown, // VEX_Vpgatherdq_ymm_vm32x_ymm
	MemorySizeUnknown, // EVEX_Vpgatherdd_xmm_k1_vm32x
	MemorySizeUnknown, // EVEX_Vpgatherdd_ymm_k1_vm32y
	MemorySizeUnknown, // EVEX_Vpgatherdd_zmm_k1_vm32z
	MemorySizeUnknown, // EVEX_Vpgatherdq_xmm_k1_vm32x
	MemorySizeUnknown, // EVEX_Vpgatherdq_ymm_k1_vm32x
	MemorySizeUnknown, // EVEX_Vpgatherdq_zmm_k1_vm32y
	MemorySizeUnknown, // VEX_Vgatherdps_xmm_vm32x_xmm
	MemorySizeUnknown, // VEX_Vgatherdps_ymm_vm32y_ymm
	MemorySizeUnknown, // VEX_Vgatherdpd_xmm_vm32x_xmm
	MemorySizeUnknown, // VEX_Vgatherdpd_ymm_vm32x_ymm
	MemorySizeUnknown, // EVEX_Vgatherdps_xmm_k1_vm32x
	MemorySizeUnknown, // EVEX_Vgatherdps_ymm_k1_vm32y
	MemorySizeUnknown, // EVEX_Vgatherdps_zmm_k1_vm32z
	MemorySizeUnknown, // EVEX_Vgatherdpd_xmm_k1_vm32x
	MemorySizeUnknown, // EVEX_Vgatherdpd_ymm_k1_vm32x
	MemorySizeUnknown, // EVEX_Vgatherdpd_zmm_k1_vm32y
	MemorySizeUnknown, // EVEX_Vpscatterdd_vm32x_k1_xmm
	MemorySizeUnknown, // EVEX_Vpscatterdd_vm32y_k1_ymm
	MemorySizeUnknown, // EVEX_Vpscatterdd_vm32z_k1_zmm
	MemorySizeUnknown, // EVEX_Vpscatterdq_vm32x_k1_xmm
	MemorySizeUnknown, // EVEX_Vpscatterdq_vm32x_k1_ymm
	MemorySizeUnknown, // EVEX_Vpscatterdq_vm32y_k1_zmm
	MemorySizeUnknown, // EVEX_Vscatterdps_vm32x_k1_xmm
	MemorySizeUnknown, // EVEX_Vscatterdps_vm32y_k1_ymm
	MemorySizeUnknown, // EVEX_Vscatterdps_vm32z_k1_zmm
	MemorySizeUnknown, // EVEX_Vscatterdpd_vm32x_k1_xmm
	MemorySizeUnknown, // EVEX_Vscatterdpd_vm32x_k1_ymm
	MemorySizeUnknown, // EVEX_Vscatterdpd_vm32y_k1_zmm
	MemorySizeUnknown, // EVEX_Vgatherpf0dps_vm32z_k1
	MemorySizeUnknown, // EVEX_Vgatherpf0dpd_vm32y_k1
	MemorySizeUnknown, // EVEX_Vgatherpf1dps_vm32z_k1
	MemorySizeUnknown, // EVEX_Vgatherpf1dpd_vm32y_k1
	MemorySizeUnknown, // EVEX_Vscatterpf0dps_vm32z_k1
	MemorySizeUnknown, // EVEX_Vscatterpf0dpd_vm32y_k1
	MemorySizeUnknown, // EVEX_Vscatterpf1dps_vm32z_k1
	MemorySizeUnknown, // EVEX_Vscatterpf1dpd_vm32y_k1
	MemorySizeUnknown, // VEX_Vpgatherqd_xmm_vm64x_xmm
	MemorySizeUnknown, // VEX_Vpgatherqd_xmm_vm64y_xmm
	MemorySizeUnknown, // VEX_Vpgatherqq_xmm_vm64x_xmm
	MemorySizeUnknown, // VEX_Vpgatherqq_ymm_vm64y_ymm
	MemorySizeUnknown, // EVEX_Vpgatherqd_xmm_k1_vm64x
	MemorySizeUnknown, // EVEX_Vpgatherqd_xmm_k1_vm64y
	MemorySizeUnknown, // EVEX_Vpgatherqd_ymm_k1_vm64z
	MemorySizeUnknown, // EVEX_Vpgatherqq_xmm_k1_vm64x
	MemorySizeUnknown, // EVEX_Vpgatherqq_ymm_k1_vm64y
	MemorySizeUnknown, // EVEX_Vpgatherqq_zmm_k1_vm64z
	MemorySizeUnknown, // VEX_Vgatherqps_xmm_vm64x_xmm
	MemorySizeUnknown, // VEX_Vgatherqps_xmm_vm64y_xmm
	MemorySizeUnknown, // VEX_Vgatherqpd_xmm_vm64x_xmm
	MemorySizeUnknown, // VEX_Vgatherqpd_ymm_vm64y_ymm
	MemorySizeUnknown, // EVEX_Vgatherqps_xmm_k1_vm64x
	MemorySizeUnknown, // EVEX_Vgatherqps_xmm_k1_vm64y
	MemorySizeUnknown, // EVEX_Vgatherqps_ymm_k1_vm64z
	MemorySizeUnknown, // EVEX_Vgatherqpd_xmm_k1_vm64x
	MemorySizeUnknown, // EVEX_Vgatherqpd_ymm_k1_vm64y
	MemorySizeUnknown, // EVEX_Vgatherqpd_zmm_k1_vm64z
	MemorySizeUnknown, // EVEX_Vpscatterqd_vm64x_k1_xmm
	MemorySizeUnknown, // EVEX_Vpscatterqd_vm64y_k1_xmm
	MemorySizeUnknown, // EVEX_Vpscatterqd_vm64z_k1_ymm
	MemorySizeUnknown, // EVEX_Vpscatterqq_vm64x_k1_xmm
	MemorySizeUnknown, // EVEX_Vpscatterqq_vm64y_k1_ymm
	MemorySizeUnknown, // EVEX_Vpscatterqq_vm64z_k1_zmm
	MemorySizeUnknown, // EVEX_Vscatterqps_vm64x_k1_xmm
	MemorySizeUnknown, // EVEX_Vscatterqps_vm64y_k1_xmm
	MemorySizeUnknown, // EVEX_Vscatterqps_vm64z_k1_ymm
	MemorySizeUnknown, // EVEX_Vscatterqpd_vm64x_k1_xmm
	MemorySizeUnknown, // EVEX_Vscatterqpd_vm64y_k1_ymm
	MemorySizeUnknown, // EVEX_Vscatterqpd_vm64z_k1_zmm
	MemorySizeUnknown, // EVEX_Vgatherpf0qps_vm64z_k1
	MemorySizeUnknown, // EVEX_Vgatherpf0qpd_vm64z_k1
	MemorySizeUnknown, // EVEX_Vgatherpf1qps_vm64z_k1
	MemorySizeUnknown, // EVEX_Vgatherpf1qpd_vm64z_k1
	MemorySizeUnknown, // EVEX_Vscatterpf0qps_vm64z_k1
	MemorySizeUnknown, // EVEX_Vscatterpf0qpd_vm64z_k1
	MemorySizeUnknown, // EVEX_Vscatterpf1qps_vm64z_k1
	MemorySizeUnknown, // EVEX_Vscatterpf1qpd_vm64z_k1
}

var _ [2 * NumberOfCodes]MemorySize = instructionMemorySizes
