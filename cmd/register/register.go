// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package register prints the details of x86 registers.
package register

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
// given registers.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("register", flag.ExitOnError)

	var help, all bool
	var add int
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&all, "all", false, "Print every register.")
	flags.IntVar(&add, "add", 0, "Print the register this many places after each register. Negative values move backwards.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] REGISTER...\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	var regs []x86.Register
	if all {
		for r := x86.Register(1); int(r) < x86.NumberOfRegisters; r++ {
			regs = append(regs, r)
		}
	}

	for _, name := range flags.Args() {
		reg, ok := x86.RegisterByName(name)
		if !ok {
			return fmt.Errorf("unknown register %q", name)
		}

		regs = append(regs, reg)
	}

	if len(regs) == 0 {
		flags.Usage()
	}

	var buf bytes.Buffer
	for i, reg := range regs {
		if i > 0 && !all {
			// Add a spacer.
			fmt.Fprintln(&buf)
		}

		if all {
			fmt.Fprintf(&buf, "%3d  %-6s %-3d %s\n", uint8(reg), reg, reg.Bits(), reg.Type())
			continue
		}

		fmt.Fprintf(&buf, "%s: Register{\n", reg)
		fmt.Fprintf(&buf, "	Value:  %d,\n", uint8(reg))
		fmt.Fprintf(&buf, "	Type:   %q,\n", reg.Type())
		if reg.Bits() != 0 {
			fmt.Fprintf(&buf, "	Bits:   %d,\n", reg.Bits())
		}
		fmt.Fprintf(&buf, "	Number: %d,\n", reg.Number())
		if full := reg.FullRegister(); full != reg {
			fmt.Fprintf(&buf, "	Full:   %s,\n", full)
		}
		if reg.IsHighByte() {
			fmt.Fprintf(&buf, "	High:   true,\n")
		}
		if add != 0 {
			next, err := reg.Add(add)
			if err != nil {
				fmt.Fprintf(&buf, "	Add(%d): %q,\n", add, err.Error())
			} else {
				fmt.Fprintf(&buf, "	Add(%d): %s,\n", add, next)
			}
		}
		fmt.Fprintf(&buf, "}\n")
	}

	_, err = w.Write(buf.Bytes())
	return err
}
