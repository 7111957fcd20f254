// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package address computes the memory addresses referenced by
// described x86 instructions.
package address

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"firefly-os.dev/tools/x86isa/internal/describe"
	"firefly-os.dev/tools/x86isa/x86"
)

var program = filepath.Base(os.Args[0])

// Main prints the address of each memory
// operand in the given description
// documents.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("address", flag.ExitOnError)

	var help bool
	var stateFile string
	var elements int
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.StringVar(&stateFile, "state", "", "Path to a TOML file containing register values. Unset registers are 0.")
	flags.IntVar(&elements, "elements", 0, "Number of VSIB elements to print. By default, every element of the index register is printed.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] FILE...\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	filenames := flags.Args()
	if len(filenames) == 0 {
		flags.Usage()
	}

	if elements < 0 {
		return fmt.Errorf("invalid -elements %d: must not be negative", elements)
	}

	// Read the documents and the
	// state in parallel.
	docs := make([]*describe.Document, len(filenames))
	state := new(describe.State)
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range filenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := describe.LoadFile(name)
			if err != nil {
				return err
			}

			docs[i] = doc
			return nil
		})
	}

	if stateFile != "" {
		g.Go(func() error {
			s, err := describe.LoadState(stateFile)
			if err != nil {
				return err
			}

			state = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, doc := range docs {
		insts, err := doc.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", filenames[i], err)
		}

		for j := range insts {
			inst := &insts[j]
			label := doc.Instructions[j].Name
			if label == "" {
				label = inst.Code().String()
			}

			prefix := fmt.Sprintf("%s:%d: %s", filenames[i], j, label)
			err := printAddresses(&buf, prefix, inst, state, elements)
			if err != nil {
				return fmt.Errorf("%s: %w", prefix, err)
			}
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func printAddresses(buf *bytes.Buffer, prefix string, inst *x86.Instruction, regs x86.RegisterValues, elements int) error {
	for op := 0; op < inst.OpCount(); op++ {
		kind, err := inst.OpKind(op)
		if err != nil {
			return err
		}

		if !kind.IsMemory() {
			continue
		}

		is64, vsib := inst.VSIB()
		if !vsib || kind != x86.OpKindMemory {
			addr, err := inst.VirtualAddress(op, 0, regs)
			if err != nil {
				return err
			}

			fmt.Fprintf(buf, "%s op%d: %#x\n", prefix, op, addr)
			continue
		}

		elementSize := 4
		if is64 {
			elementSize = 8
		}

		n := inst.MemoryIndex().Size() / elementSize
		if elements != 0 && elements < n {
			n = elements
		}

		for elt := 0; elt < n; elt++ {
			addr, err := inst.VirtualAddress(op, elt, regs)
			if err != nil {
				return err
			}

			fmt.Fprintf(buf, "%s op%d[%d]: %#x\n", prefix, op, elt, addr)
		}
	}

	return nil
}
