// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katunilya/moona-sub000"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := moona.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics enabled by default")
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
log:
  level: debug
metrics:
  enabled: true
  namespace: edge
serve:
  recover_panics: true
`)
	cfg, err := moona.ParseConfig(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log.level: got %q, want %q", cfg.Log.Level, "debug")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Namespace != "edge" {
		t.Fatalf("metrics: got %+v", cfg.Metrics)
	}
	if !cfg.Serve.RecoverPanics {
		t.Fatal("serve.recover_panics not applied")
	}
	if cfg.Serve.FailureContentType != "text/plain; charset=utf-8" {
		t.Fatalf("serve.failure_content_type default lost: %q", cfg.Serve.FailureContentType)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv(moona.EnvLogLevel, "error")
	cfg, err := moona.ParseConfig([]byte("log:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Fatalf("log.level: got %q, want %q", cfg.Log.Level, "error")
	}
}

func TestParseConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":    "log: [",
		"level":     "log:\n  level: loud\n",
		"namespace": "metrics:\n  enabled: true\n  namespace: \"\"\n",
		"type":      "serve:\n  failure_content_type: \"\"\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := moona.ParseConfig([]byte(data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moona.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := moona.LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log.level: got %q, want %q", cfg.Log.Level, "warn")
	}

	_, err = moona.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("got %v, want an error naming the file", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":   moona.LevelTrace,
		"DEBUG":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"Info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := moona.ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q): got %v, want %v", in, got, want)
		}
	}
	if _, err := moona.ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := moona.DefaultConfig()
	cfg.Log.Level = "warn"
	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("got %q", out)
	}
}

func TestConfigNewMetrics(t *testing.T) {
	cfg := moona.DefaultConfig()
	if m := cfg.NewMetrics(prometheus.NewRegistry()); m != nil {
		t.Fatal("metrics created while disabled")
	}
	cfg.Metrics.Enabled = true
	reg := prometheus.NewRegistry()
	m := cfg.NewMetrics(reg)
	if m == nil {
		t.Fatal("metrics not created while enabled")
	}
	m.ConnectionsTotal.WithLabelValues(moona.OutcomeCompleted).Inc()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "moona_connections_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("moona_connections_total not registered")
	}
}
