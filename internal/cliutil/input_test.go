package cliutil

import (
	"testing"

	"github.com/paiv/icfpc2012/internal/core"
)

func TestProgramTextSkipsMapAndBlankLine(t *testing.T) {
	text := "#####\n#R  #\n#####\n\nRRDDLLUU\n"
	m, _ := core.ReadMap(text)

	got := ProgramText(text, m)
	if got != "RRDDLLUU\n" {
		t.Fatalf("expected program text, got %q", got)
	}
}

func TestProgramTextEmptyWithoutTrailer(t *testing.T) {
	text := "#####\n#R  #\n#####\n"
	m, _ := core.ReadMap(text)

	if got := ProgramText(text, m); got != "" {
		t.Fatalf("expected empty program text, got %q", got)
	}
}
