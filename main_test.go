package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"lrucache/config"
	"lrucache/lru"
	"lrucache/trace"
)

func TestReadOps_ReferenceScenario(t *testing.T) {
	ops, err := readOps(config.Default())
	if err != nil {
		t.Fatalf("read ops: %v", err)
	}
	if len(ops) != 9 {
		t.Fatalf("expected 9 ops, got %d", len(ops))
	}

	c := lru.MustNew[string, string](2)
	trace.Replay(c, ops, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var buf bytes.Buffer
	display(&buf, c)
	if got, want := buf.String(), "Cache (MRU -> LRU): [4] [3] \n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReadOps_FromConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ops.trace"), []byte("put a 1\nget a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "cache.toml")
	if err := os.WriteFile(cfgPath, []byte("capacity = 4\ntrace = \"ops.trace\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ops, err := readOps(cfg)
	if err != nil {
		t.Fatalf("read ops: %v", err)
	}
	if len(ops) != 2 || ops[1].Kind != trace.Get {
		t.Fatalf("unexpected ops %v", ops)
	}
}
