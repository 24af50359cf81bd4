package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Fatalf("expected json format")
	}
	if ParseFormat("whatever") != FormatText {
		t.Fatalf("expected text format as default")
	}
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"request_id": "req-1"})

	l.Info("pet created", map[string]any{
		"pet_id": int64(7),
		"err":    errors.New("boom"),
		"  ":     "ignored",
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["request_id"] != "req-1" {
		t.Fatalf("expected request_id from With, got %#v", ctx)
	}
	if ctx["pet_id"] != int64(7) {
		t.Fatalf("expected pet_id=7, got %#v", ctx["pet_id"])
	}
	if ctx["err"] != "boom" {
		t.Fatalf("expected error rendered as string, got %#v", ctx["err"])
	}
	if _, ok := ctx["  "]; ok {
		t.Fatalf("blank keys must be dropped")
	}
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := FromZap(zap.New(core))

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)

	if logs.Len() != 1 {
		t.Fatalf("expected only warn entry, got %d", logs.Len())
	}
}
