package core

import (
	"strconv"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{SilentLevel, ""},
		{ErrorLevel, "ERROR"},
		{WarningLevel, "WARNING"},
		{InfoLevel, "INFO"},
		{TraceLevel, "TRACE"},
		{VerboseLevel, "VERBOSE"},
		{Level(-1), "UNKNOWN"},
		{Level(6), "UNKNOWN"},
		{Level(127), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(int(tt.level)), func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	order := []Level{SilentLevel, ErrorLevel, WarningLevel, InfoLevel, TraceLevel, VerboseLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should be below %v", order[i-1], order[i])
		}
	}
}

func TestLevel_Accepts(t *testing.T) {
	for threshold := MinLevel; threshold <= MaxLevel; threshold++ {
		for w := MinLevel; w <= MaxLevel; w++ {
			want := w <= threshold
			if got := threshold.Accepts(w); got != want {
				t.Errorf("Level(%d).Accepts(%d) = %v, want %v", threshold, w, got, want)
			}
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"silent", SilentLevel, true},
		{"ERROR", ErrorLevel, true},
		{"warn", WarningLevel, true},
		{"Warning", WarningLevel, true},
		{" info ", InfoLevel, true},
		{"trace", TraceLevel, true},
		{"VERBOSE", VerboseLevel, true},
		{"3", InfoLevel, true},
		{"0", SilentLevel, true},
		{"6", SilentLevel, false},
		{"debug", SilentLevel, false},
		{"", SilentLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
