package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want CLIFlags
	}{
		{"flags after paths", []string{"in.ttml", "out.txt", "-timestamps"},
			CLIFlags{Input: "in.ttml", Output: "out.txt", Timestamps: true}},
		{"flags before paths", []string{"-timestamps", "in.ttml", "out.txt"},
			CLIFlags{Input: "in.ttml", Output: "out.txt", Timestamps: true}},
		{"flags between paths", []string{"in.ttml", "-clipboard", "out.txt"},
			CLIFlags{Input: "in.ttml", Output: "out.txt", Clipboard: true}},
		{"batch overrides", []string{"-cache-dir", "c", "-output-dir=o"},
			CLIFlags{CacheDir: "c", OutputDir: "o"}},
		{"explicit config kept", []string{"-config", DefaultConfigName},
			CLIFlags{ConfigPath: DefaultConfigName}},
		{"no config flag", nil, CLIFlags{}},
		{"single path", []string{"in.ttml"}, CLIFlags{Input: "in.ttml"}},
		{"extra paths ignored", []string{"a", "b", "c"}, CLIFlags{Input: "a", Output: "b"}},
		{"double dash", []string{"--", "-in.ttml", "out.txt"}, CLIFlags{Input: "-in.ttml", Output: "out.txt"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseArgs("ttml2txt", tc.args, io.Discard)
			if err != nil {
				t.Fatalf("ParseArgs(%q): %v", tc.args, err)
			}
			if *got != tc.want {
				t.Fatalf("ParseArgs(%q) = %+v; want %+v", tc.args, *got, tc.want)
			}
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	if _, err := ParseArgs("ttml2txt", []string{"-help"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-help: err = %v; want flag.ErrHelp", err)
	}
	if _, err := ParseArgs("ttml2txt", []string{"in", "-nope"}, io.Discard); !errors.Is(err, ErrUsage) {
		t.Fatalf("unknown flag: err = %v; want ErrUsage", err)
	}
	if _, err := ParseArgs("ttml2txt", []string{"-cache-dir"}, io.Discard); !errors.Is(err, ErrUsage) {
		t.Fatalf("missing value: err = %v; want ErrUsage", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{flag.ErrHelp, 0},
		{fmt.Errorf("%w: x", ErrUsage), 2},
		{fmt.Errorf("%w: in.ttml", ErrInputUnreadable), 1},
		{errors.New("other"), 1},
	}
	for _, tc := range tests {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d; want %d", tc.err, got, tc.want)
		}
	}
}
