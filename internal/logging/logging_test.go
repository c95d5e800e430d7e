package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureFirstProfileWins(t *testing.T) {
	first := Configure(ProfileTest)
	if first.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level for test profile, got %v", first.GetLevel())
	}

	// A later call with a different profile must observe the first logger,
	// not reconfigure.
	second := Configure(ProfileRuntime)
	if second.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected first configuration to win, got level %v", second.GetLevel())
	}
}

func TestParseLevelTable(t *testing.T) {
	tests := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{raw: "", want: zerolog.InfoLevel, wantOK: false},
		{raw: "debug", want: zerolog.DebugLevel, wantOK: true},
		{raw: " WARN ", want: zerolog.WarnLevel, wantOK: true},
		{raw: "off", want: zerolog.Disabled, wantOK: true},
		{raw: "bogus", want: zerolog.InfoLevel, wantOK: false},
	}

	for _, tc := range tests {
		got, ok := parseLevel(tc.raw)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("parseLevel(%q) = (%v, %v), expected (%v, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}
