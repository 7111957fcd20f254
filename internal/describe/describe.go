// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package describe reads and writes textual descriptions of x86
// instructions.
//
// A description document is a YAML file listing instructions by
// their code and operands:
//
//	version: v1.0.0
//	instructions:
//	  - name: load
//	    code: Mov_r64_rm64
//	    ip: 0x1000
//	    length: 4
//	    codeSize: 64
//	    operands:
//	      - register: rax
//	      - memory: {base: rbx, index: rcx, scale: 8, displacement: -8}
//
// Register values used to compute memory addresses are read from
// a TOML state file. See State.
package describe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"firefly-os.dev/tools/x86isa/x86"
)

// SupportedVersion is the major version of
// the document format that can be read.
const SupportedVersion = "v1"

// Document is a list of instruction
// descriptions.
type Document struct {
	Version      string        `yaml:"version"`
	Instructions []Description `yaml:"instructions"`
}

// Description describes a single
// instruction.
type Description struct {
	Name     string              `yaml:"name,omitempty"`
	Code     x86.Code            `yaml:"code"`
	IP       uint64              `yaml:"ip,omitempty"`
	Length   int                 `yaml:"length,omitempty"`
	CodeSize int                 `yaml:"codeSize,omitempty"` // In bits.
	Operands []Operand           `yaml:"operands,omitempty"`
	Opmask   x86.Register        `yaml:"opmask,omitempty"`
	Zeroing  bool                `yaml:"zeroing,omitempty"`
	Rounding x86.RoundingControl `yaml:"rounding,omitempty"`
	SAE      bool                `yaml:"sae,omitempty"`
	Prefixes []string            `yaml:"prefixes,omitempty"`
	Data     []uint64            `yaml:"data,omitempty"` // For the data directives.
}

// Operand describes an instruction
// operand. If Kind is omitted, it is
// OpKindMemory if Memory is set and
// OpKindRegister otherwise.
type Operand struct {
	Kind      *x86.OpKind  `yaml:"kind,omitempty"`
	Register  x86.Register `yaml:"register,omitempty"`
	Immediate uint64       `yaml:"immediate,omitempty"`
	Target    uint64       `yaml:"target,omitempty"`
	Selector  uint16       `yaml:"selector,omitempty"`
	Memory    *Memory      `yaml:"memory,omitempty"`
	Segment   x86.Register `yaml:"segment,omitempty"` // For the string and absolute memory kinds.
	Address   uint64       `yaml:"address,omitempty"`
}

// Memory describes a memory operand.
type Memory struct {
	Segment      x86.Register `yaml:"segment,omitempty"`
	Base         x86.Register `yaml:"base,omitempty"`
	Index        x86.Register `yaml:"index,omitempty"`
	Scale        int          `yaml:"scale,omitempty"`
	Displacement int64        `yaml:"displacement,omitempty"`
	DisplSize    int          `yaml:"displSize,omitempty"`
	Broadcast    bool         `yaml:"broadcast,omitempty"`
}

// Load reads a description document.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	err := dec.Decode(&doc)
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty document")
	}

	if err != nil {
		return nil, err
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("invalid document version %q", doc.Version)
	}

	if major := semver.Major(doc.Version); major != SupportedVersion {
		return nil, fmt.Errorf("unsupported document version %s: want %s", doc.Version, SupportedVersion)
	}

	return &doc, nil
}

// LoadFile reads a description document
// from the named file.
func LoadFile(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return doc, nil
}

// Write writes a description document.
func Write(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// Build returns the described
// instructions.
func (doc *Document) Build() ([]x86.Instruction, error) {
	insts := make([]x86.Instruction, len(doc.Instructions))
	for i := range doc.Instructions {
		desc := &doc.Instructions[i]
		inst, err := desc.Instruction()
		if err != nil {
			if desc.Name != "" {
				return nil, fmt.Errorf("instruction %d (%s): %w", i, desc.Name, err)
			}

			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}

		insts[i] = inst
	}

	return insts, nil
}
