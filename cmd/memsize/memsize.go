// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package memsize prints the details of memory operand sizes.
package memsize

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
// given memory sizes.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("memsize", flag.ExitOnError)

	var help, all bool
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&all, "all", false, "Print a table of every memory size.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] MEMORY_SIZE...\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	var buf bytes.Buffer
	if all {
		for ms := x86.MemorySize(0); int(ms) < x86.NumberOfMemorySizes; ms++ {
			info := ms.Info()
			fmt.Fprintf(&buf, "%-28s %2d %2d x %-2d", ms, info.Size, ms.ElementCount(), info.ElementSize)
			if info.Signed {
				buf.WriteString(" signed")
			}
			if info.Broadcast {
				buf.WriteString(" broadcast")
			}
			buf.WriteByte('\n')
		}

		_, err = w.Write(buf.Bytes())
		return err
	}

	names := flags.Args()
	if len(names) == 0 {
		flags.Usage()
	}

	for i, name := range names {
		ms, ok := x86.MemorySizesByName[name]
		if !ok {
			return fmt.Errorf("unknown memory size %q", name)
		}

		if i > 0 {
			// Add a spacer.
			fmt.Fprintln(&buf)
		}

		info := ms.Info()
		fmt.Fprintf(&buf, "%s: MemorySize{\n", ms)
		fmt.Fprintf(&buf, "	Size:        %d,\n", info.Size)
		fmt.Fprintf(&buf, "	ElementSize: %d,\n", info.ElementSize)
		fmt.Fprintf(&buf, "	ElementType: %s,\n", info.ElementType)
		fmt.Fprintf(&buf, "	Elements:    %d,\n", ms.ElementCount())
		if ms.IsPacked() {
			fmt.Fprintf(&buf, "	Packed:      true,\n")
		}
		if info.Signed {
			fmt.Fprintf(&buf, "	Signed:      true,\n")
		}
		if info.Broadcast {
			fmt.Fprintf(&buf, "	Broadcast:   true,\n")
		}
		fmt.Fprintf(&buf, "}\n")
	}

	_, err = w.Write(buf.Bytes())
	return err
}
