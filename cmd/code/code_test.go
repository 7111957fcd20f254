// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package code

import (
	"bytes"
	"context"
	"testing"

	"rsc.io/diff"
)

func TestCode(t *testing.T) {
	tests := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "codes",
			Args: []string{"Cmpxchg_rm32_r32", "EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er", "EVEX_Vpgatherdd_zmm_k1_vm32z", "DeclareDword"},
			Want: `Cmpxchg_rm32_r32: Code{
	Mnemonic:  cmpxchg,
	Operands:  2,
	Memory:    UInt32,
}

EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er: Code{
	Mnemonic:  vaddps,
	Operands:  3,
	Memory:    Packed512_Float32,
	Broadcast: Broadcast512_Float32,
}

EVEX_Vpgatherdd_zmm_k1_vm32z: Code{
	Mnemonic:  vpgatherdd,
	Operands:  2,
	Memory:    Int32,
	VSIB:      32,
}

DeclareDword: Code{
	Mnemonic:  dd,
	Operands:  0,
	DataSize:  4,
}
`,
		},
		{
			Name: "mnemonics",
			Args: []string{"cmpxchg", "VPGATHERDD"},
			Want: `cmpxchg: []Code{
	Cmpxchg_rm32_r32,
	Cmpxchg_rm64_r64,
}

vpgatherdd: []Code{
	VEX_Vpgatherdd_xmm_vm32x_xmm,
	VEX_Vpgatherdd_ymm_vm32y_ymm,
	EVEX_Vpgatherdd_xmm_k1_vm32x,
	EVEX_Vpgatherdd_ymm_k1_vm32y,
	EVEX_Vpgatherdd_zmm_k1_vm32z,
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

func TestCodeErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"mov", "Mov_r64"})
	if err == nil || err.Error() != `unknown code or mnemonic "Mov_r64"` {
		t.Fatalf("Main(): got error %v", err)
	}
}
