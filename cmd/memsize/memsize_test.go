// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package memsize

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"rsc.io/diff"
)

func TestMemsize(t *testing.T) {
	tests := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "packed",
			Args: []string{"Packed512_Float32", "Packed128_Int16"},
			Want: `Packed512_Float32: MemorySize{
	Size:        64,
	ElementSize: 4,
	ElementType: Float32,
	Elements:    16,
	Packed:      true,
	Signed:      true,
}

Packed128_Int16: MemorySize{
	Size:        16,
	ElementSize: 2,
	ElementType: Int16,
	Elements:    8,
	Packed:      true,
	Signed:      true,
}
`,
		},
		{
			Name: "scalar",
			Args: []string{"Broadcast512_Float32", "Fword6", "Xsave"},
			Want: `Broadcast512_Float32: MemorySize{
	Size:        4,
	ElementSize: 4,
	ElementType: Float32,
	Elements:    1,
	Signed:      true,
	Broadcast:   true,
}

Fword6: MemorySize{
	Size:        6,
	ElementSize: 6,
	ElementType: Fword6,
	Elements:    1,
}

Xsave: MemorySize{
	Size:        0,
	ElementSize: 0,
	ElementType: Xsave,
	Elements:    1,
}
`,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Main(context.Background(), &buf, test.Args)
			if err != nil {
				t.Fatalf("Main(): %v", err)
			}

			got := buf.String()
			if got != test.Want {
				t.Fatalf("Main():\n%s", diff.Format(got, test.Want))
			}
		})
	}
}

func TestMemsizeAll(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"-all"})
	if err != nil {
		t.Fatalf("Main(): %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 136 {
		t.Fatalf("Main(-all): got %d lines, want 136", len(lines))
	}

	want := "Unknown                       0  1 x 0 "
	if lines[0] != want {
		t.Errorf("Main(-all): first line:\n%s", diff.Format(lines[0], want))
	}
}

func TestMemsizeErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"UInt64", "Int1024"})
	if err == nil || err.Error() != `unknown memory size "Int1024"` {
		t.Fatalf("Main(): got error %v", err)
	}
}
