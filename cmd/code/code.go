// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package code prints the static details of x86 instruction codes.
package code

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"firefly-os.dev/tools/x86isa/x86"
)

var program = filepath.Base(os.Args[0])

// Main prints information about the
// given codes or mnemonics.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("code", flag.ExitOnError)

	var help bool
	flags.BoolVar(&help, "h", false, "Show this message and exit.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] CODE|MNEMONIC...\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	names := flags.Args()
	if len(names) == 0 {
		flags.Usage()
	}

	var buf bytes.Buffer
	for i, name := range names {
		if i > 0 {
			// Add a spacer.
			fmt.Fprintln(&buf)
		}

		// See whether it's a code first.
		if c, ok := x86.CodesByName[name]; ok {
			printCode(&buf, c)
			continue
		}

		var m x86.Mnemonic
		if err := m.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("unknown code or mnemonic %q", name)
		}

		fmt.Fprintf(&buf, "%s: []Code{\n", m)
		for c := x86.Code(0); int(c) < x86.NumberOfCodes; c++ {
			if c.Mnemonic() == m {
				fmt.Fprintf(&buf, "	%s,\n", c)
			}
		}
		fmt.Fprintf(&buf, "}\n")
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func printCode(buf *bytes.Buffer, c x86.Code) {
	fmt.Fprintf(buf, "%s: Code{\n", c)
	fmt.Fprintf(buf, "	Mnemonic:  %s,\n", c.Mnemonic())
	fmt.Fprintf(buf, "	Operands:  %d,\n", c.OpCount())
	if ms := c.MemorySize(false); ms != x86.MemorySizeUnknown {
		fmt.Fprintf(buf, "	Memory:    %s,\n", ms)
	}
	if ms := c.MemorySize(true); ms != x86.MemorySizeUnknown {
		fmt.Fprintf(buf, "	Broadcast: %s,\n", ms)
	}
	if is64, ok := c.VSIB(); ok {
		if is64 {
			fmt.Fprintf(buf, "	VSIB:      64,\n")
		} else {
			fmt.Fprintf(buf, "	VSIB:      32,\n")
		}
	}
	if size := c.DeclareDataSize(); size != 0 {
		fmt.Fprintf(buf, "	DataSize:  %d,\n", size)
	}
	fmt.Fprintf(buf, "}\n")
}
