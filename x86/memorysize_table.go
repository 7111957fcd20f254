// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Memory operand sizes, in ordinal order. The
// broadcast sizes form a suffix starting at
// FirstBroadcastMemorySize.
const (
	MemorySizeUnknown MemorySize = iota
	MemorySizeUInt8
	MemorySizeUInt16
	MemorySizeUInt32
	MemorySizeUInt52
	MemorySizeUInt64
	MemorySizeUInt128
	MemorySizeUInt256
	MemorySizeUInt512
	MemorySizeInt8
	MemorySizeInt16
	MemorySizeInt32
	MemorySizeInt64
	MemorySizeInt128
	MemorySizeInt256
	MemorySizeInt512
	MemorySizeSegPtr16
	MemorySizeSegPtr32
	MemorySizeSegPtr64
	MemorySizeWordOffset
	MemorySizeDwordOffset
	MemorySizeQwordOffset
	MemorySizeBound16_WordWord
	MemorySizeBound32_DwordDword
	MemorySizeBnd32
	MemorySizeBnd64
	MemorySizeFword6
	MemorySizeFword10
	MemorySizeFloat16
	MemorySizeFloat32
	MemorySizeFloat64
	MemorySizeFloat80
	MemorySizeFloat128
	MemorySizeBFloat16
	MemorySizeFpuEnv14
	MemorySizeFpuEnv28
	MemorySizeFpuState94
	MemorySizeFpuState108
	MemorySizeFxsave_512Byte
	MemorySizeFxsave64_512Byte
	MemorySizeXsave
	MemorySizeXsave64
	MemorySizeBcd
	MemorySizePacked16_UInt8
	MemorySizePacked16_Int8
	MemorySizePacked32_UInt8
	MemorySizePacked32_Int8
	MemorySizePacked32_UInt16
	MemorySizePacked32_Int16
	MemorySizePacked32_BFloat16
	MemorySizePacked64_UInt8
	MemorySizePacked64_Int8
	MemorySizePacked64_UInt16
	MemorySizePacked64_Int16
	MemorySizePacked64_UInt32
	MemorySizePacked64_Int32
	MemorySizePacked64_Float16
	MemorySizePacked64_Float32
	MemorySizePacked128_UInt8
	MemorySizePacked128_Int8
	MemorySizePacked128_UInt16
	MemorySizePacked128_Int16
	MemorySizePacked128_UInt32
	MemorySizePacked128_Int32
	MemorySizePacked128_UInt52
	MemorySizePacked128_UInt64
	MemorySizePacked128_Int64
	MemorySizePacked128_Float16
	MemorySizePacked128_Float32
	MemorySizePacked128_Float64
	MemorySizePacked128_2xBFloat16
	MemorySizePacked256_UInt8
	MemorySizePacked256_Int8
	MemorySizePacked256_UInt16
	MemorySizePacked256_Int16
	MemorySizePacked256_UInt32
	MemorySizePacked256_Int32
	MemorySizePacked256_UInt52
	MemorySizePacked256_UInt64
	MemorySizePacked256_Int64
	MemorySizePacked256_UInt128
	MemorySizePacked256_Int128
	MemorySizePacked256_Float16
	MemorySizePacked256_Float32
	MemorySizePacked256_Float64
	MemorySizePacked256_Float128
	MemorySizePacked256_2xBFloat16
	MemorySizePacked512_UInt8
	MemorySizePacked512_Int8
	MemorySizePacked512_UInt16
	MemorySizePacked512_Int16
	MemorySizePacked512_UInt32
	MemorySizePacked512_Int32
	MemorySizePacked512_UInt52
	MemorySizePacked512_UInt64
	MemorySizePacked512_Int64
	MemorySizePacked512_UInt128
	MemorySizePacked512_Float32
	MemorySizePacked512_Float64
	MemorySizePacked512_2xBFloat16
	MemorySizeBroadcast64_UInt32
	MemorySizeBroadcast64_Int32
	MemorySizeBroadcast64_Float32
	MemorySizeBroadcast128_UInt32
	MemorySizeBroadcast128_Int32
	MemorySizeBroadcast128_UInt52
	MemorySizeBroadcast128_UInt64
	MemorySizeBroadcast128_Int64
	MemorySizeBroadcast128_Float32
	MemorySizeBroadcast128_Float64
	MemorySizeBroadcast256_UInt32
	MemorySizeBroadcast256_Int32
	MemorySizeBroadcast256_UInt52
	MemorySizeBroadcast256_UInt64
	MemorySizeBroadcast256_Int64
	MemorySizeBroadcast256_Float32
	MemorySizeBroadcast256_Float64
	MemorySizeBroadcast512_UInt32
	MemorySizeBroadcast512_Int32
	MemorySizeBroadcast512_UInt52
	MemorySizeBroadcast512_UInt64
	MemorySizeBroadcast512_Int64
	MemorySizeBroadcast512_Float32
	MemorySizeBroadcast512_Float64
	MemorySizeBroadcast128_2xInt16
	MemorySizeBroadcast256_2xInt16
	MemorySizeBroadcast512_2xInt16
	MemorySizeBroadcast128_2xUInt32
	MemorySizeBroadcast256_2xUInt32
	MemorySizeBroadcast512_2xUInt32
	MemorySizeBroadcast128_2xInt32
	MemorySizeBroadcast256_2xInt32
	MemorySizeBroadcast512_2xInt32
	MemorySizeBroadcast128_2xBFloat16
	MemorySizeBroadcast256_2xBFloat16
	MemorySizeBroadcast512_2xBFloat16
)

const (
	// NumberOfMemorySizes is the number of
	// MemorySize values.
	NumberOfMemorySizes = 136

	// FirstBroadcastMemorySize is the first
	// broadcast memory size.
	FirstBroadcastMemorySize = MemorySizeBroadcast64_UInt32
)

var memorySizeInfos = [...]MemorySizeInfo{
	{Size: 0, ElementSize: 0, ElementType: MemorySizeUnknown, Signed: false, Broadcast: false, name: "Unknown"},
	{Size: 1, ElementSize: 1, ElementType: MemorySizeUInt8, Signed: false, Broadcast: false, name: "UInt8"},
	{Size: 2, ElementSize: 2, ElementType: MemorySizeUInt16, Signed: false, Broadcast: false, name: "UInt16"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: false, name: "UInt32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt52, Signed: false, Broadcast: false, name: "UInt52"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt64, Signed: false, Broadcast: false, name: "UInt64"},
	{Size: 16, ElementSize: 16, ElementType: MemorySizeUInt128, Signed: false, Broadcast: false, name: "UInt128"},
	{Size: 32, ElementSize: 32, ElementType: MemorySizeUInt256, Signed: false, Broadcast: false, name: "UInt256"},
	{Size: 64, ElementSize: 64, ElementType: MemorySizeUInt512, Signed: false, Broadcast: false, name: "UInt512"},
	{Size: 1, ElementSize: 1, ElementType: MemorySizeInt8, Signed: true, Broadcast: false, name: "Int8"},
	{Size: 2, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: false, name: "Int16"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: false, name: "Int32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeInt64, Signed: true, Broadcast: false, name: "Int64"},
	{Size: 16, ElementSize: 16, ElementType: MemorySizeInt128, Signed: true, Broadcast: false, name: "Int128"},
	{Size: 32, ElementSize: 32, ElementType: MemorySizeInt256, Signed: true, Broadcast: false, name: "Int256"},
	{Size: 64, ElementSize: 64, ElementType: MemorySizeInt512, Signed: true, Broadcast: false, name: "Int512"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeSegPtr16, Signed: false, Broadcast: false, name: "SegPtr16"},
	{Size: 6, ElementSize: 6, ElementType: MemorySizeSegPtr32, Signed: false, Broadcast: false, name: "SegPtr32"},
	{Size: 10, ElementSize: 10, ElementType: MemorySizeSegPtr64, Signed: false, Broadcast: false, name: "SegPtr64"},
	{Size: 2, ElementSize: 2, ElementType: MemorySizeWordOffset, Signed: false, Broadcast: false, name: "WordOffset"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeDwordOffset, Signed: false, Broadcast: false, name: "DwordOffset"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeQwordOffset, Signed: false, Broadcast: false, name: "QwordOffset"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeBound16_WordWord, Signed: false, Broadcast: false, name: "Bound16_WordWord"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeBound32_DwordDword, Signed: false, Broadcast: false, name: "Bound32_DwordDword"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeBnd32, Signed: false, Broadcast: false, name: "Bnd32"},
	{Size: 16, ElementSize: 16, ElementType: MemorySizeBnd64, Signed: false, Broadcast: false, name: "Bnd64"},
	{Size: 6, ElementSize: 6, ElementType: MemorySizeFword6, Signed: false, Broadcast: false, name: "Fword6"},
	{Size: 10, ElementSize: 10, ElementType: MemorySizeFword10, Signed: false, Broadcast: false, name: "Fword10"},
	{Size: 2, ElementSize: 2, ElementType: MemorySizeFloat16, Signed: true, Broadcast: false, name: "Float16"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: false, name: "Float32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeFloat64, Signed: true, Broadcast: false, name: "Float64"},
	{Size: 10, ElementSize: 10, ElementType: MemorySizeFloat80, Signed: true, Broadcast: false, name: "Float80"},
	{Size: 16, ElementSize: 16, ElementType: MemorySizeFloat128, Signed: true, Broadcast: false, name: "Float128"},
	{Size: 2, ElementSize: 2, ElementType: MemorySizeBFloat16, Signed: true, Broadcast: false, name: "BFloat16"},
	{Size: 14, ElementSize: 14, ElementType: MemorySizeFpuEnv14, Signed: false, Broadcast: false, name: "FpuEnv14"},
	{Size: 28, ElementSize: 28, ElementType: MemorySizeFpuEnv28, Signed: false, Broadcast: false, name: "FpuEnv28"},
	{Size: 94, ElementSize: 94, ElementType: MemorySizeFpuState94, Signed: false, Broadcast: false, name: "FpuState94"},
	{Size: 108, ElementSize: 108, ElementType: MemorySizeFpuState108, Signed: false, Broadcast: false, name: "FpuState108"},
	{Size: 512, ElementSize: 512, ElementType: MemorySizeFxsave_512Byte, Signed: false, Broadcast: false, name: "Fxsave_512Byte"},
	{Size: 512, ElementSize: 512, ElementType: MemorySizeFxsave64_512Byte, Signed: false, Broadcast: false, name: "Fxsave64_512Byte"},
	{Size: 0, ElementSize: 0, ElementType: MemorySizeXsave, Signed: false, Broadcast: false, name: "Xsave"},
	{Size: 0, ElementSize: 0, ElementType: MemorySizeXsave64, Signed: false, Broadcast: false, name: "Xsave64"},
	{Size: 10, ElementSize: 10, ElementType: MemorySizeBcd, Signed: true, Broadcast: false, name: "Bcd"},
	{Size: 2, ElementSize: 1, ElementType: MemorySizeUInt8, Signed: false, Broadcast: false, name: "Packed16_UInt8"},
	{Size: 2, ElementSize: 1, ElementType: MemorySizeInt8, Signed: true, Broadcast: false, name: "Packed16_Int8"},
	{Size: 4, ElementSize: 1, ElementType: MemorySizeUInt8, Signed: false, Broadcast: false, name: "Packed32_UInt8"},
	{Size: 4, ElementSize: 1, ElementType: MemorySizeInt8, Signed: true, Broadcast: false, name: "Packed32_Int8"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeUInt16, Signed: false, Broadcast: false, name: "Packed32_UInt16"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: false, name: "Packed32_Int16"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeBFloat16, Signed: true, Broadcast: false, name: "Packed32_BFloat16"},
	{Size: 8, ElementSize: 1, ElementType: MemorySizeUInt8, Signed: false, Broadcast: false, name: "Packed64_UInt8"},
	{Size: 8, ElementSize: 1, ElementType: MemorySizeInt8, Signed: true, Broadcast: false, name: "Packed64_Int8"},
	{Size: 8, ElementSize: 2, ElementType: MemorySizeUInt16, Signed: false, Broadcast: false, name: "Packed64_UInt16"},
	{Size: 8, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: false, name: "Packed64_Int16"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: false, name: "Packed64_UInt32"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: false, name: "Packed64_Int32"},
	{Size: 8, ElementSize: 2, ElementType: MemorySizeFloat16, Signed: true, Broadcast: false, name: "Packed64_Float16"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: false, name: "Packed64_Float32"},
	{Size: 16, ElementSize: 1, ElementType: MemorySizeUInt8, Signed: false, Broadcast: false, name: "Packed128_UInt8"},
	{Size: 16, ElementSize: 1, ElementType: MemorySizeInt8, Signed: true, Broadcast: false, name: "Packed128_Int8"},
	{Size: 16, ElementSize: 2, ElementType: MemorySizeUInt16, Signed: false, Broadcast: false, name: "Packed128_UInt16"},
	{Size: 16, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: false, name: "Packed128_Int16"},
	{Size: 16, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: false, name: "Packed128_UInt32"},
	{Size: 16, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: false, name: "Packed128_Int32"},
	{Size: 16, ElementSize: 8, ElementType: MemorySizeUInt52, Signed: false, Broadcast: false, name: "Packed128_UInt52"},
	{Size: 16, ElementSize: 8, ElementType: MemorySizeUInt64, Signed: false, Broadcast: false, name: "Packed128_UInt64"},
	{Size: 16, ElementSize: 8, ElementType: MemorySizeInt64, Signed: true, Broadcast: false, name: "Packed128_Int64"},
	{Size: 16, ElementSize: 2, ElementType: MemorySizeFloat16, Signed: true, Broadcast: false, name: "Packed128_Float16"},
	{Size: 16, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: false, name: "Packed128_Float32"},
	{Size: 16, ElementSize: 8, ElementType: MemorySizeFloat64, Signed: true, Broadcast: false, name: "Packed128_Float64"},
	{Size: 16, ElementSize: 4, ElementType: MemorySizePacked32_BFloat16, Signed: true, Broadcast: false, name: "Packed128_2xBFloat16"},
	{Size: 32, ElementSize: 1, ElementType: MemorySizeUInt8, Signed: false, Broadcast: false, name: "Packed256_UInt8"},
	{Size: 32, ElementSize: 1, ElementType: MemorySizeInt8, Signed: true, Broadcast: false, name: "Packed256_Int8"},
	{Size: 32, ElementSize: 2, ElementType: MemorySizeUInt16, Signed: false, Broadcast: false, name: "Packed256_UInt16"},
	{Size: 32, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: false, name: "Packed256_Int16"},
	{Size: 32, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: false, name: "Packed256_UInt32"},
	{Size: 32, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: false, name: "Packed256_Int32"},
	{Size: 32, ElementSize: 8, ElementType: MemorySizeUInt52, Signed: false, Broadcast: false, name: "Packed256_UInt52"},
	{Size: 32, ElementSize: 8, ElementType: MemorySizeUInt64, Signed: false, Broadcast: false, name: "Packed256_UInt64"},
	{Size: 32, ElementSize: 8, ElementType: MemorySizeInt64, Signed: true, Broadcast: false, name: "Packed256_Int64"},
	{Size: 32, ElementSize: 16, ElementType: MemorySizeUInt128, Signed: false, Broadcast: false, name: "Packed256_UInt128"},
	{Size: 32, ElementSize: 16, ElementType: MemorySizeInt128, Signed: true, Broadcast: false, name: "Packed256_Int128"},
	{Size: 32, ElementSize: 2, ElementType: MemorySizeFloat16, Signed: true, Broadcast: false, name: "Packed256_Float16"},
	{Size: 32, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: false, name: "Packed256_Float32"},
	{Size: 32, ElementSize: 8, ElementType: MemorySizeFloat64, Signed: true, Broadcast: false, name: "Packed256_Float64"},
	{Size: 32, ElementSize: 16, ElementType: MemorySizeFloat128, Signed: true, Broadcast: false, name: "Packed256_Float128"},
	{Size: 32, ElementSize: 4, ElementType: MemorySizePacked32_BFloat16, Signed: true, Broadcast: false, name: "Packed256_2xBFloat16"},
	{Size: 64, ElementSize: 1, ElementType: MemorySizeUInt8, Signed: false, Broadcast: false, name: "Packed512_UInt8"},
	{Size: 64, ElementSize: 1, ElementType: MemorySizeInt8, Signed: true, Broadcast: false, name: "Packed512_Int8"},
	{Size: 64, ElementSize: 2, ElementType: MemorySizeUInt16, Signed: false, Broadcast: false, name: "Packed512_UInt16"},
	{Size: 64, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: false, name: "Packed512_Int16"},
	{Size: 64, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: false, name: "Packed512_UInt32"},
	{Size: 64, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: false, name: "Packed512_Int32"},
	{Size: 64, ElementSize: 8, ElementType: MemorySizeUInt52, Signed: false, Broadcast: false, name: "Packed512_UInt52"},
	{Size: 64, ElementSize: 8, ElementType: MemorySizeUInt64, Signed: false, Broadcast: false, name: "Packed512_UInt64"},
	{Size: 64, ElementSize: 8, ElementType: MemorySizeInt64, Signed: true, Broadcast: false, name: "Packed512_Int64"},
	{Size: 64, ElementSize: 16, ElementType: MemorySizeUInt128, Signed: false, Broadcast: false, name: "Packed512_UInt128"},
	{Size: 64, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: false, name: "Packed512_Float32"},
	{Size: 64, ElementSize: 8, ElementType: MemorySizeFloat64, Signed: true, Broadcast: false, name: "Packed512_Float64"},
	{Size: 64, ElementSize: 4, ElementType: MemorySizePacked32_BFloat16, Signed: true, Broadcast: false, name: "Packed512_2xBFloat16"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: true, name: "Broadcast64_UInt32"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: true, name: "Broadcast64_Int32"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: true, name: "Broadcast64_Float32"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: true, name: "Broadcast128_UInt32"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: true, name: "Broadcast128_Int32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt52, Signed: false, Broadcast: true, name: "Broadcast128_UInt52"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt64, Signed: false, Broadcast: true, name: "Broadcast128_UInt64"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeInt64, Signed: true, Broadcast: true, name: "Broadcast128_Int64"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: true, name: "Broadcast128_Float32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeFloat64, Signed: true, Broadcast: true, name: "Broadcast128_Float64"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: true, name: "Broadcast256_UInt32"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: true, name: "Broadcast256_Int32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt52, Signed: false, Broadcast: true, name: "Broadcast256_UInt52"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt64, Signed: false, Broadcast: true, name: "Broadcast256_UInt64"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeInt64, Signed: true, Broadcast: true, name: "Broadcast256_Int64"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: true, name: "Broadcast256_Float32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeFloat64, Signed: true, Broadcast: true, name: "Broadcast256_Float64"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: true, name: "Broadcast512_UInt32"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: true, name: "Broadcast512_Int32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt52, Signed: false, Broadcast: true, name: "Broadcast512_UInt52"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeUInt64, Signed: false, Broadcast: true, name: "Broadcast512_UInt64"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeInt64, Signed: true, Broadcast: true, name: "Broadcast512_Int64"},
	{Size: 4, ElementSize: 4, ElementType: MemorySizeFloat32, Signed: true, Broadcast: true, name: "Broadcast512_Float32"},
	{Size: 8, ElementSize: 8, ElementType: MemorySizeFloat64, Signed: true, Broadcast: true, name: "Broadcast512_Float64"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: true, name: "Broadcast128_2xInt16"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: true, name: "Broadcast256_2xInt16"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeInt16, Signed: true, Broadcast: true, name: "Broadcast512_2xInt16"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: true, name: "Broadcast128_2xUInt32"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: true, name: "Broadcast256_2xUInt32"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeUInt32, Signed: false, Broadcast: true, name: "Broadcast512_2xUInt32"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: true, name: "Broadcast128_2xInt32"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: true, name: "Broadcast256_2xInt32"},
	{Size: 8, ElementSize: 4, ElementType: MemorySizeInt32, Signed: true, Broadcast: true, name: "Broadcast512_2xInt32"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeBFloat16, Signed: true, Broadcast: true, name: "Broadcast128_2xBFloat16"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeBFloat16, Signed: true, Broadcast: true, name: "Broadcast256_2xBFloat16"},
	{Size: 4, ElementSize: 2, ElementType: MemorySizeBFloat16, Signed: true, Broadcast: true, name: "Broadcast512_2xBFloat16"},
}

var _ [NumberOfMemorySizes]MemorySizeInfo = memorySizeInfos
