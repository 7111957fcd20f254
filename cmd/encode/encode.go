// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package encode converts described x86 instructions to and from
// their binary form.
package encode

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"firefly-os.dev/tools/x86isa/internal/describe"
	"firefly-os.dev/tools/x86isa/x86"
)

var program = filepath.Base(os.Args[0])

// Main encodes or decodes instructions.
func Main(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("encode", flag.ExitOnError)

	var help, decode, binary bool
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&decode, "d", false, "Decode instructions in binary form and print their descriptions.")
	flags.BoolVar(&binary, "binary", false, "Use raw binary data instead of one hex-encoded instruction per line.")

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

	if decode {
		return decodeFiles(w, filenames, binary)
	}

	var insts []x86.Instruction
	for _, name := range filenames {
		doc, err := describe.LoadFile(name)
		if err != nil {
			return err
		}

		more, err := doc.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		insts = append(insts, more...)
	}

	if binary {
		data, err := x86.MarshalInstructions(insts)
		if err != nil {
			return err
		}

		_, err = w.Write(data)
		return err
	}

	var buf bytes.Buffer
	for i := range insts {
		data, err := insts[i].MarshalBinary()
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}

		fmt.Fprintf(&buf, "%x\n", data)
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func decodeFiles(w io.Writer, filenames []string, binary bool) error {
	doc := &describe.Document{Version: "v1.0.0"}
	for _, name := range filenames {
		var insts []x86.Instruction
		var err error
		if binary {
			insts, err = readBinary(name)
		} else {
			insts, err = readHex(name)
		}

		if err != nil {
			return err
		}

		for i := range insts {
			doc.Instructions = append(doc.Instructions, describe.Describe(&insts[i]))
		}
	}

	return describe.Write(w, doc)
}

func readBinary(name string) ([]x86.Instruction, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	insts, err := x86.UnmarshalInstructions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return insts, nil
}

// readHex reads one hex-encoded instruction
// per line. Blank lines and lines starting
// with '#' are ignored.
func readHex(name string) ([]x86.Instruction, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	var insts []x86.Instruction
	s := bufio.NewScanner(f)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		data, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}

		var inst x86.Instruction
		if err := inst.UnmarshalBinary(data); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}

		insts = append(insts, inst)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return insts, nil
}
