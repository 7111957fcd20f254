// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"rsc.io/diff"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "program",
			Args: []string{"-state", "testdata/state.toml", "testdata/program.yaml"},
			Want: `testdata/program.yaml:0: load op1: 0x2010
testdata/program.yaml:1: Mov_rm64_r64 op0: 0x700000001000
testdata/program.yaml:2: gather op1[0]: 0x1040
testdata/program.yaml:2: gather op1[1]: 0x1080
testdata/program.yaml:2: gather op1[2]: 0x10c0
testdata/program.yaml:2: gather op1[3]: 0x1100
testdata/program.yaml:3: Movsq_m64_m64 op0: 0x80000010
testdata/program.yaml:3: Movsq_m64_m64 op1: 0x70007fff0000
testdata/program.yaml:4: rip op1: 0x401107
`,
		},
		{
			Name: "elements",
			Args: []string{"-state", "testdata/state.toml", "-elements", "2", "testdata/program.yaml"},
			Want: `testdata/program.yaml:0: load op1: 0x2010
testdata/program.yaml:1: Mov_rm64_r64 op0: 0x700000001000
testdata/program.yaml:2: gather op1[0]: 0x1040
testdata/program.yaml:2: gather op1[1]: 0x1080
testdata/program.yaml:3: Movsq_m64_m64 op0: 0x80000010
testdata/program.yaml:3: Movsq_m64_m64 op1: 0x70007fff0000
testdata/program.yaml:4: rip op1: 0x401107
`,
		},
		{
			Name: "no state",
			Args: []string{"testdata/data.yaml", "testdata/program.yaml"},
			Want: `testdata/program.yaml:0: load op1: 0xfffffffffffffff8
testdata/program.yaml:1: Mov_rm64_r64 op0: 0x0
testdata/program.yaml:2: gather op1[0]: 0x0
testdata/program.yaml:2: gather op1[1]: 0x0
testdata/program.yaml:2: gather op1[2]: 0x0
testdata/program.yaml:2: gather op1[3]: 0x0
testdata/program.yaml:3: Movsq_m64_m64 op0: 0x0
testdata/program.yaml:3: Movsq_m64_m64 op1: 0x0
testdata/program.yaml:4: rip op1: 0x401107
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

func TestAddressErrors(t *testing.T) {
	tests := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "missing file",
			Args: []string{"testdata/missing.yaml"},
			Want: "missing.yaml",
		},
		{
			Name: "missing state",
			Args: []string{"-state", "testdata/missing.toml", "testdata/program.yaml"},
			Want: "missing.toml",
		},
		{
			Name: "bad instruction",
			Args: []string{"testdata/bad.yaml"},
			Want: "testdata/bad.yaml: instruction 0 (short): Mov_r64_rm64 has 2 operands, got 1",
		},
		{
			Name: "negative elements",
			Args: []string{"-elements", "-1", "testdata/program.yaml"},
			Want: "invalid -elements -1",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Main(context.Background(), &buf, test.Args)
			if err == nil || !strings.Contains(err.Error(), test.Want) {
				t.Fatalf("Main(): got error %v, want %q", err, test.Want)
			}
		})
	}
}
