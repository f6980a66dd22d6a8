package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/travel-planner/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{name: "json", format: "json", want: []string{`"level":"INFO"`, `"msg":"project created"`}},
		{name: "text", format: "text", want: []string{"level=INFO", `msg="project created"`}},
		{name: "unknown falls back to json", format: "yaml", want: []string{`"msg":"project created"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("project created")

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output = %q, want it to contain %q", out, w)
				}
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		logAt     slog.Level
		wantEmpty bool
	}{
		{name: "debug passes at debug", level: "debug", logAt: slog.LevelDebug},
		{name: "debug filtered at info", level: "info", logAt: slog.LevelDebug, wantEmpty: true},
		{name: "warn filtered at error", level: "error", logAt: slog.LevelWarn, wantEmpty: true},
		{name: "level is case-insensitive", level: "WARN", logAt: slog.LevelWarn},
		{name: "unknown level means info", level: "chatty", logAt: slog.LevelInfo},
		{name: "unknown level filters debug", level: "chatty", logAt: slog.LevelDebug, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Log(context.Background(), tt.logAt, "catalog loaded")

			if got := buf.Len() == 0; got != tt.wantEmpty {
				t.Errorf("empty output = %v, want %v (output %q)", got, tt.wantEmpty, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want a source field", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source field", infoBuf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext(empty) did not return slog.Default()")
	}

	first := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	second := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext did not return the most recently stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization header", attr: slog.String("authorization", "Basic dXNlcjpwYXNz"), secret: "dXNlcjpwYXNz"},
		{name: "api key header", attr: slog.String("x-api-key", "k-12345"), secret: "k-12345"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "secret prefix", attr: slog.String("secret_key", "s3cr3t"), secret: "s3cr3t"},
		{name: "bearer value", attr: slog.String("raw", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "inline api key", attr: slog.String("query", "api_key=abcdef"), secret: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("catalog request", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsTravelFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("place added",
		slog.Int64("project_id", 12),
		slog.String("place_name", "Izumo"),
	)

	out := buf.String()
	if !strings.Contains(out, `"project_id":12`) || !strings.Contains(out, "Izumo") {
		t.Errorf("output = %q, want project_id and place_name kept", out)
	}
}
