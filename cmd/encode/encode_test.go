// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package encode

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rsc.io/diff"

	"firefly-os.dev/tools/x86isa/internal/describe"
	"firefly-os.dev/tools/x86isa/x86"
)

const wantHex = `000000000000100100080022c000000000000000000000000000000038000000
00000000004000050028002cc000000300401000ffff80000000000000000000
`

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"testdata/program.yaml"})
	if err != nil {
		t.Fatalf("Main(): %v", err)
	}

	got := buf.String()
	if got != wantHex {
		t.Fatalf("Main():\n%s", diff.Format(got, wantHex))
	}
}

func loadProgram(t *testing.T) []x86.Instruction {
	t.Helper()

	doc, err := describe.LoadFile("testdata/program.yaml")
	if err != nil {
		t.Fatal(err)
	}

	insts, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}

	return insts
}

func checkDecoded(t *testing.T, text string, want []x86.Instruction) {
	t.Helper()

	doc, err := describe.Load(strings.NewReader(text))
	if err != nil {
		t.Fatalf("decoded output:\n%s\n%v", text, err)
	}

	got, err := doc.Build()
	if err != nil {
		t.Fatalf("decoded output:\n%s\n%v", text, err)
	}

	if len(got) != len(want) {
		t.Fatalf("decoded %d instructions, want %d", len(got), len(want))
	}

	for i := range want {
		if !got[i].EqualAllBits(&want[i]) {
			t.Errorf("instruction %d:\n got %#v\nwant %#v", i, &got[i], &want[i])
		}
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"-d", "testdata/program.hex"})
	if err != nil {
		t.Fatalf("Main(): %v", err)
	}

	text := buf.String()
	for _, want := range []string{"code: Push_r64", "register: rbx", "code: Jmp_rel32_64", "kind: NearBranch64"} {
		if !strings.Contains(text, want) {
			t.Errorf("Main(-d): output does not contain %q:\n%s", want, text)
		}
	}

	checkDecoded(t, text, loadProgram(t))
}

func TestBinary(t *testing.T) {
	var buf bytes.Buffer
	err := Main(context.Background(), &buf, []string{"-binary", "testdata/program.yaml", "testdata/program.yaml"})
	if err != nil {
		t.Fatalf("Main(): %v", err)
	}

	if buf.Len() != 4*x86.BinarySize {
		t.Fatalf("Main(-binary): got %d bytes, want %d", buf.Len(), 4*x86.BinarySize)
	}

	name := filepath.Join(t.TempDir(), "program.bin")
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err = Main(context.Background(), &out, []string{"-d", "-binary", name})
	if err != nil {
		t.Fatalf("Main(-d -binary): %v", err)
	}

	insts := loadProgram(t)
	checkDecoded(t, out.String(), append(insts, insts...))
}

func TestEncodeErrors(t *testing.T) {
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
			Name: "short instruction",
			Args: []string{"-d", "testdata/bad.hex"},
			Want: "testdata/bad.hex:1: invalid binary instruction",
		},
		{
			Name: "not hex",
			Args: []string{"-d", "testdata/program.yaml"},
			Want: "testdata/program.yaml:1:",
		},
		{
			Name: "bad binary",
			Args: []string{"-d", "-binary", "testdata/bad.hex"},
			Want: "testdata/bad.hex: invalid binary instruction",
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
