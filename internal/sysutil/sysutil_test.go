package sysutil

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLogLevel(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"  DeBuG  ", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"whatever", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		SetLogLevel(tc.in)
		if got := zerolog.GlobalLevel(); got != tc.want {
			t.Fatalf("SetLogLevel(%q) -> %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitLogger(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	InitLogger("warn", false)
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("InitLogger did not apply the level")
	}
	// Pretty mode only swaps the writer; it must not touch the level.
	InitLogger("error", true)
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Fatalf("pretty mode changed level handling")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("no args should yield empty, got %q", got)
	}
	if got := FirstNonEmpty(" ", "\t"); got != "" {
		t.Fatalf("blank-only args should yield empty, got %q", got)
	}
	if got := FirstNonEmpty("  ", "  hello  ", "world"); got != "  hello  " {
		t.Fatalf("expected first non-blank with spacing preserved, got %q", got)
	}
}
