package model

import (
	"math"
	"testing"
)

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1:40:14.700", 6014.7},
		{"40:15.8", 2415.8},
		{"90", 90},
		{"12.25", 12.25},
		{" 00:00:05 ", 5},
		{"00:04:31.766", 271.766},
		{"bogus", 0},
		{"", 0},
		{"1:2:3:4", 0},
		{"1.5:00", 0}, // minutes entières uniquement
		{"a:10", 0},
		{"10:b", 0},
		{"NaN", 0},
		{"inf", 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := float64(ParseTimecode(tc.in))
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("ParseTimecode(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTimestampHHMMSS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00"},
		{65, "00:01:05"},
		{90, "00:01:30"},
		{3661.9, "01:01:01"}, // troncature, pas d'arrondi
		{59.999, "00:00:59"},
		{360000, "100:00:00"},
		{6014.7, "01:40:14"},
		{1e30, "277777777777777796739760128:24:16"}, // heures au-delà d'un int64
		{-1, "-1:59:59"},
		{-0.0, "00:00:00"},
	}

	for _, tc := range tests {
		if got := FormatTimestamp(tc.in); got != tc.want {
			t.Errorf("FormatTimestamp(%v) = %q; want %q", tc.in, got, tc.want)
		}
		if got := Seconds(tc.in).TimestampHHMMSS(); got != tc.want {
			t.Errorf("Seconds(%v).TimestampHHMMSS() = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseThenFormat(t *testing.T) {
	if got := ParseTimecode("1:40:14.700").TimestampHHMMSS(); got != "01:40:14" {
		t.Fatalf("got %q; want %q", got, "01:40:14")
	}
	if got := ParseTimecode("1e30").TimestampHHMMSS(); got != "277777777777777796739760128:24:16" {
		t.Fatalf("got %q; want exact hours", got)
	}
	if got := ParseTimecode("bogus").TimestampHHMMSS(); got != "00:00:00" {
		t.Fatalf("got %q; want %q", got, "00:00:00")
	}
}
