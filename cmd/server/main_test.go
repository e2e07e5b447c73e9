package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/playperu/worldtour/internal/config"
)

func TestLoadPersona(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "persona.png")
	if err := os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n0000"), 0o600); err != nil {
		t.Fatal(err)
	}
	txt := filepath.Join(dir, "persona.txt")
	if err := os.WriteFile(txt, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	if p, err := loadPersona(""); p != nil || err != nil {
		t.Errorf("expected no persona for empty path, got %v, %v", p, err)
	}
	p, err := loadPersona(png)
	if err != nil {
		t.Fatalf("loading png: %v", err)
	}
	if p.MIMEType != "image/png" {
		t.Errorf("expected image/png, got %q", p.MIMEType)
	}
	if _, err := loadPersona(txt); err == nil {
		t.Error("expected an error for a text file")
	}
	if _, err := loadPersona(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		KVBackend: config.BackendSQLite,
		DBPath:    filepath.Join(t.TempDir(), "data", "worldtour.db"),
	}
	store, closeStore, err := openStore(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer closeStore()

	if err := store.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("expected v, got %q, %v", got, err)
	}
	if err := store.Check(ctx); err != nil {
		t.Errorf("check: %v", err)
	}
}
