package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("device", "/dev/fibonacci"), "device", "/dev/fibonacci"},
		{"Int", Int("writes", 101), "writes", 101},
		{"Int64", Int64("offset", 613), "offset", int64(613)},
		{"Uint64", Uint64("reads", 12345678901234567890), "reads", uint64(12345678901234567890)},
		{"Float64", Float64("seconds", 0.25), "seconds", 0.25},
		{"Duration", Duration("elapsed", 3*time.Millisecond), "elapsed", 3 * time.Millisecond},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}

	t.Run("Err keeps the error", func(t *testing.T) {
		busy := errors.New("device busy")
		if f := Err(busy); f.Value != busy {
			t.Errorf("Err().Value = %v, want %v", f.Value, busy)
		}
	})
}

func TestNewLogger_IncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "device")
	logger.Info("opened")

	out := buf.String()
	for _, want := range []string{`"component":"device"`, "opened", `"level":"info"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("read", Int64("offset", 10), String("value", "55")) },
			contains: []string{"read", `"offset":10`, `"value":"55"`},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("open failed", errors.New("device busy"), String("device", "fib")) },
			contains: []string{"open failed", "device busy", `"level":"error"`, "fib"},
		},
		{
			name:     "error without cause",
			log:      func(l Logger) { l.Error("release", nil) },
			contains: []string{"release", `"level":"error"`},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("seek", Int64("position", 3)) },
			contains: []string{"seek", `"level":"debug"`, `"position":3`},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("F(%d) = %s", 10, "55") },
			contains: []string{"F(10) = 55"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("sweep", "done") },
			contains: []string{"sweep done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)))
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output should contain %q, got: %s", want, out)
				}
			}
		})
	}
}

func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "s", Value: "hello"}, `"s":"hello"`},
		{"int", Field{Key: "n", Value: 42}, `"n":42`},
		{"int64", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"bool", Field{Key: "ok", Value: true}, `"ok":true`},
		{"duration", Field{Key: "d", Value: 2 * time.Millisecond}, `"d":2`},
		{"error", Field{Key: "cause", Value: errors.New("oops")}, `"cause":"oops"`},
		{"struct", Field{Key: "pos", Value: struct{ X int }{X: 1}}, `"X":1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("fields", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output should contain %s, got: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestZerologAdapter_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test").WithLevel(zerolog.WarnLevel)
	logger.Info("hidden")
	logger.Debug("hidden too")
	if buf.Len() != 0 {
		t.Errorf("info/debug should be filtered at warn level, got: %s", buf.String())
	}
	logger.Error("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("error should pass the filter, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{"info", func(l Logger) { l.Info("opened", String("device", "fib")) }, []string{"[INFO]", "opened", "device=fib"}},
		{"error", func(l Logger) { l.Error("busy", errors.New("in use"), Int("attempt", 2)) }, []string{"[ERROR]", "busy", "in use", "attempt=2"}},
		{"debug", func(l Logger) { l.Debug("seek", Int64("position", 7)) }, []string{"[DEBUG]", "seek", "position=7"}},
		{"printf", func(l Logger) { l.Printf("value is %d", 123) }, []string{"value is 123"}},
		{"println", func(l Logger) { l.Println("a", "b") }, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	l.Error("nothing", errors.New("x"))
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = (*ZerologAdapter)(nil)
	var _ Logger = (*StdLoggerAdapter)(nil)
}
