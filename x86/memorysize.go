// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// MemorySize describes the shape of
// a memory operand.
type MemorySize uint8

// MemorySizeInfo contains the static
// details of a MemorySize.
type MemorySizeInfo struct {
	Size        int        // Size of the memory location in bytes, or 0 if unknown.
	ElementSize int        // Size of each element in bytes, or 0 if unknown.
	ElementType MemorySize // Type of each element.
	Signed      bool       // Whether the elements are signed.
	Broadcast   bool       // Whether a single element is broadcast.

	name string
}

// Info returns the memory size's
// details. Unknown values return
// the details of MemorySizeUnknown.
func (ms MemorySize) Info() *MemorySizeInfo {
	if int(ms) >= NumberOfMemorySizes {
		return &memorySizeInfos[MemorySizeUnknown]
	}

	return &memorySizeInfos[ms]
}

func (ms MemorySize) Size() int               { return ms.Info().Size }
func (ms MemorySize) ElementSize() int        { return ms.Info().ElementSize }
func (ms MemorySize) ElementType() MemorySize { return ms.Info().ElementType }
func (ms MemorySize) IsSigned() bool          { return ms.Info().Signed }
func (ms MemorySize) IsBroadcast() bool       { return ms >= FirstBroadcastMemorySize }

// IsPacked reports whether the memory
// location holds more than one element.
func (ms MemorySize) IsPacked() bool {
	info := ms.Info()
	return info.ElementSize < info.Size
}

// ElementCount returns the number of
// elements in the memory location. This
// is 1 for any memory size that is not
// packed, including those of unknown
// size.
func (ms MemorySize) ElementCount() int {
	info := ms.Info()
	if info.ElementSize == 0 || info.ElementSize == info.Size {
		return 1
	}

	return info.Size / info.ElementSize
}

func (ms MemorySize) String() string {
	if int(ms) >= NumberOfMemorySizes {
		return fmt.Sprintf("MemorySize(%d)", uint8(ms))
	}

	return memorySizeInfos[ms].name
}

func (ms MemorySize) MarshalText() ([]byte, error) { return []byte(ms.String()), nil }

func (ms *MemorySize) UnmarshalText(text []byte) error {
	got, ok := MemorySizesByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid memory size %q", text)
	}

	*ms = got

	return nil
}

// MemorySizesByName maps memory size
// names, such as "Packed128_Float32",
// to their values.
var MemorySizesByName = make(map[string]MemorySize)

func init() {
	for i := range memorySizeInfos {
		MemorySizesByName[memorySizeInfos[i].name] = MemorySize(i)
	}
}
