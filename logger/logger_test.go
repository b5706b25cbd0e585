package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	t.Run("console output", func(t *testing.T) {
		if err := Initialize(false); err != nil {
			t.Fatalf("Initialize(false) failed: %v", err)
		}
		if Logger == nil {
			t.Fatal("Logger should not be nil after Initialize")
		}
		if JSONOutput {
			t.Error("JSONOutput should be false")
		}
	})

	t.Run("json output", func(t *testing.T) {
		if err := Initialize(true); err != nil {
			t.Fatalf("Initialize(true) failed: %v", err)
		}
		if !JSONOutput {
			t.Error("JSONOutput should be true")
		}
	})
}

func TestVerbosityToLevel(t *testing.T) {
	cases := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}
	for _, c := range cases {
		if got := VerbosityToLevel(c.verbosity); got != c.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", c.verbosity, got, c.want)
		}
	}
}

func TestPackageLevelHelpersDoNotPanic(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Info("info")
	Infof("info %d", 1)
	Infow("info", "name", "Person")
	Warn("warn")
	Warnf("warn %d", 1)
	Warnw("warn", "name", "Person")
	Error("error")
	Errorf("error %d", 1)
	Errorw("error", "name", "Person")
	Debug("debug")
	Debugf("debug %d", 1)
	Debugw("debug", "name", "Person")
	Cleanup()
}
