// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Mnemonics, in ordinal order.
const (
	MnemonicINVALID Mnemonic = iota
	MnemonicDb
	MnemonicDw
	MnemonicDd
	MnemonicDq
	MnemonicAdd
	MnemonicMov
	MnemonicLea
	MnemonicPush
	MnemonicPop
	MnemonicJmp
	MnemonicCall
	MnemonicRet
	MnemonicRetf
	MnemonicEnter
	MnemonicNop
	MnemonicInt3
	MnemonicInt
	MnemonicMovsb
	MnemonicMovsw
	MnemonicMovsd
	MnemonicMovsq
	MnemonicCmpsb
	MnemonicStosb
	MnemonicStosq
	MnemonicLodsb
	MnemonicScasb
	MnemonicOutsb
	MnemonicInsb
	MnemonicXlat
	MnemonicCmpxchg
	MnemonicXchg
	MnemonicXadd
	MnemonicCmpxchg8b
	MnemonicCmpxchg16b
	MnemonicBound
	MnemonicLgdt
	MnemonicLes
	MnemonicFld
	MnemonicFild
	MnemonicFbld
	MnemonicFnstenv
	MnemonicFnsave
	MnemonicFxsave
	MnemonicFxsave64
	MnemonicXsave
	MnemonicXsave64
	MnemonicBndmov
	MnemonicMovq
	MnemonicPaddd
	MnemonicMovdqu
	MnemonicAddps
	MnemonicAddss
	MnemonicExtrq
	MnemonicInsertq
	MnemonicVaddps
	MnemonicVblendvps
	MnemonicVcvtph2ps
	MnemonicVpmadd52luq
	MnemonicVbroadcastss
	MnemonicKmovw
	MnemonicVaddpd
	MnemonicVpaddd
	MnemonicVpaddq
	MnemonicVpandd
	MnemonicVpandq
	MnemonicVpternlogd
	MnemonicVpdpwssd
	MnemonicVdpbf16ps
	MnemonicVcvtne2ps2bf16
	MnemonicVsqrtss
	MnemonicVpgatherdd
	MnemonicVpgatherdq
	MnemonicVgatherdps
	MnemonicVgatherdpd
	MnemonicVpscatterdd
	MnemonicVpscatterdq
	MnemonicVscatterdps
	MnemonicVscatterdpd
	MnemonicVgatherpf0dps
	MnemonicVgatherpf0dpd
	MnemonicVgatherpf1dps
	MnemonicVgatherpf1dpd
	MnemonicVscatterpf0dps
	MnemonicVscatterpf0dpd
	MnemonicVscatterpf1dps
	MnemonicVscatterpf1dpd
	MnemonicVpgatherqd
	MnemonicVpgatherqq
	MnemonicVgatherqps
	MnemonicVgatherqpd
	MnemonicVpscatterqd
	MnemonicVpscatterqq
	MnemonicVscatterqps
	MnemonicVscatterqpd
	MnemonicVgatherpf0qps
	MnemonicVgatherpf0qpd
	MnemonicVgatherpf1qps
	MnemonicVgatherpf1qpd
	MnemonicVscatterpf0qps
	MnemonicVscatterpf0qpd
	MnemonicVscatterpf1qps
	MnemonicVscatterpf1qpd
)

// NumberOfMnemonics is the number of
// Mnemonic values.
const NumberOfMnemonics = 103

var mnemonicNames = [...]string{
	"invalid",
	"db",
	"dw",
	"dd",
	"dq",
	"add",
	"mov",
	"lea",
	"push",
	"pop",
	"jmp",
	"call",
	"ret",
	"retf",
	"enter",
	"nop",
	"int3",
	"int",
	"movsb",
	"movsw",
	"movsd",
	"movsq",
	"cmpsb",
	"stosb",
	"stosq",
	"lodsb",
	"scasb",
	"outsb",
	"insb",
	"xlat",
	"cmpxchg",
	"xchg",
	"xadd",
	"cmpxchg8b",
	"cmpxchg16b",
	"bound",
	"lgdt",
	"les",
	"fld",
	"fild",
	"fbld",
	"fnstenv",
	"fnsave",
	"fxsave",
	"fxsave64",
	"xsave",
	"xsave64",
	"bndmov",
	"movq",
	"paddd",
	"movdqu",
	"addps",
	"addss",
	"extrq",
	"insertq",
	"vaddps",
	"vblendvps",
	"vcvtph2ps",
	"vpmadd52luq",
	"vbroadcastss",
	"kmovw",
	"vaddpd",
	"vpaddd",
	"vpaddq",
	"vpandd",
	"vpandq",
	"vpternlogd",
	"vpdpwssd",
	"vdpbf16ps",
	"vcvtne2ps2bf16",
	"vsqrtss",
	"vpgatherdd",
	"vpgatherdq",
	"vgatherdps",
	"vgatherdpd",
	"vpscatterdd",
	"vpscatterdq",
	"vscatterdps",
	"vscatterdpd",
	"vgatherpf0dps",
	"vgatherpf0dpd",
	"vgatherpf1dps",
	"vgatherpf1dpd",
	"vscatterpf0dps",
	"vscatterpf0dpd",
	"vscatterpf1dps",
	"vscatterpf1dpd",
	"vpgatherqd",
	"vpgatherqq",
	"vgatherqps",
	"vgatherqpd",
	"vpscatterqd",
	"vpscatterqq",
	"vscatterqps",
	"vscatterqpd",
	"vgatherpf0qps",
	"vgatherpf0qpd",
	"vgatherpf1qps",
	"vgatherpf1qpd",
	"vscatterpf0qps",
	"vscatterpf0qpd",
	"vscatterpf1qps",
	"vscatterpf1qpd",
}

var _ [NumberOfMnemonics]string = mnemonicNames
