package main

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestLookupTarget(t *testing.T) {
	t.Parallel()

	got, err := lookupTarget(" Chalk ")
	if err != nil {
		t.Fatalf("lookupTarget: %v", err)
	}
	if !got.Round || got.Mono() {
		t.Fatalf("chalk should be round and color: %+v", got)
	}

	if _, err := lookupTarget("pebble-time-steel"); err == nil {
		t.Fatalf("expected unknown target error")
	}
}

func TestTargetFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cols, rows int
		mono       bool
	}{
		{"aplite", 36, 21, true},
		{"basalt", 36, 21, false},
		{"chalk", 45, 22, false},
		{"diorite", 36, 21, true},
		{"emery", 50, 28, false},
	}
	for _, tt := range tests {
		tg := targets[tt.name]
		if tg.Cols() != tt.cols || tg.Rows() != tt.rows || tg.Mono() != tt.mono {
			t.Errorf("%s: cols %d rows %d mono %t", tt.name, tg.Cols(), tg.Rows(), tg.Mono())
		}
		if tg.Mono() != (tg.profile() == termenv.Ascii) {
			t.Errorf("%s: profile %v does not match color depth", tt.name, tg.profile())
		}
	}
}

func TestDefaultTarget(t *testing.T) {
	t.Parallel()

	if got := defaultTarget(termenv.Ascii).Name; got != "aplite" {
		t.Fatalf("ascii terminal default = %s", got)
	}
	if got := defaultTarget(termenv.TrueColor).Name; got != "basalt" {
		t.Fatalf("color terminal default = %s", got)
	}
}

func TestTargetNamesSorted(t *testing.T) {
	t.Parallel()

	names := targetNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if len(names) != len(targets) {
		t.Fatalf("got %d names for %d targets", len(names), len(targets))
	}
}
