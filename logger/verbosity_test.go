package logger

import (
	"testing"
)

func TestShouldLogTrace(t *testing.T) {
	for verbosity := VerbosityUser; verbosity < VerbosityTrace; verbosity++ {
		if ShouldLogTrace(verbosity) {
			t.Errorf("ShouldLogTrace(%d) = true, want false", verbosity)
		}
	}
	if !ShouldLogTrace(VerbosityTrace) {
		t.Error("ShouldLogTrace(VerbosityTrace) = false, want true")
	}
	if !ShouldLogTrace(VerbosityTrace + 2) {
		t.Error("ShouldLogTrace above the trace threshold should stay true")
	}
}

func TestLevelName(t *testing.T) {
	cases := []struct {
		verbosity int
		want      string
	}{
		{VerbosityUser, "User"},
		{VerbosityInfo, "Info (-v)"},
		{VerbosityDebug, "Debug (-vv)"},
		{VerbosityTrace, "Trace (-vvv)"},
		{9, "Trace (-vvv)"},
	}
	for _, c := range cases {
		if got := LevelName(c.verbosity); got != c.want {
			t.Errorf("LevelName(%d) = %q, want %q", c.verbosity, got, c.want)
		}
	}
}
