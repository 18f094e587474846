// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package parser

import (
	"context"
	"io"
	"sort"
	"testing"

	"pathreport/internal/dataset"
)

// stubParser is a minimal Parser implementation for testing.
type stubParser struct {
	name string
}

func (s *stubParser) Name() string        { return s.name }
func (s *stubParser) DefaultFile() string { return s.name + ".txt" }
func (s *stubParser) Parse(_ context.Context, _ io.Reader, _ *dataset.Bundle) error {
	return nil
}

func TestRegisterAndGet(t *testing.T) {
	resetForTesting()

	p := &stubParser{name: "test-parser"}
	Register(p)

	got := Get("test-parser")
	if got == nil {
		t.Fatal("Get returned nil for registered parser")
	}
	if got.Name() != "test-parser" {
		t.Errorf("Name() = %q, want %q", got.Name(), "test-parser")
	}
}

func TestGetUnknown(t *testing.T) {
	resetForTesting()

	if got := Get("nonexistent"); got != nil {
		t.Errorf("Get returned %v for unregistered parser, want nil", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetForTesting()

	Register(&stubParser{name: "dup"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic when registering duplicate parser")
		}
	}()
	Register(&stubParser{name: "dup"})
}

func TestList(t *testing.T) {
	resetForTesting()

	Register(&stubParser{name: "b"})
	Register(&stubParser{name: "a"})

	names := List()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("List() = %v, want [a b]", names)
	}
}
