// Copyright (c) 2025 Lakshya Jain.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timeparse

import (
	"reflect"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "clipped tail",
			in:   "09:00-10:15",
			want: []string{"09:00–09:30", "09:30–10:00", "10:00–10:15"},
		},
		{
			name: "spaced en-dash",
			in:   "14:00 – 15:00",
			want: []string{"14:00–14:30", "14:30–15:00"},
		},
		{
			name: "em-dash",
			in:   "21:30—22:00",
			want: []string{"21:30–22:00"},
		},
		{
			name: "single digit hour gets zero padded",
			in:   "9:00-9:30",
			want: []string{"09:00–09:30"},
		},
		{
			name: "embedded in prose",
			in:   "maybe 18:00-19:00 works?",
			want: []string{"18:00–18:30", "18:30–19:00"},
		},
		{
			name: "not a time",
			in:   "not a time",
			want: nil,
		},
		{
			name: "inverted range",
			in:   "10:00-09:00",
			want: nil,
		},
		{
			name: "zero length range",
			in:   "10:00-10:00",
			want: nil,
		},
		{
			name: "hour out of range",
			in:   "25:00-26:00",
			want: nil,
		},
		{
			name: "minute out of range",
			in:   "09:75-10:00",
			want: nil,
		},
		{
			name: "short range under thirty minutes",
			in:   "10:00-10:10",
			want: []string{"10:00–10:10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRange(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	text := "09:00-09:30\nnot a time\n14:00 - 15:00"
	want := []string{"09:00–09:30", "14:00–14:30", "14:30–15:00"}

	got := ParseLines(text)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLines = %v, want %v", got, want)
	}
}

func TestParseLines_DuplicatesRetained(t *testing.T) {
	// De-duplication is the consumer's job. Two lines covering the same
	// window must both appear.
	got := ParseLines("10:00-10:30\n10:00-10:30")
	want := []string{"10:00–10:30", "10:00–10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLines = %v, want %v", got, want)
	}
}

func TestParseLines_Empty(t *testing.T) {
	if got := ParseLines(""); got != nil {
		t.Errorf("ParseLines(\"\") = %v, want nil", got)
	}
}
