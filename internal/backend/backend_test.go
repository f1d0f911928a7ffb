package backend

import (
	"context"
	"strings"
	"testing"

	"billfold/internal/config"
	"billfold/internal/core"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{MemoryBackend, true},
		{SQLiteBackend, true},
		{Type(""), false},
		{Type("sheets"), false},
	}
	for _, tt := range tests {
		if got := tt.typ.IsValid(); got != tt.want {
			t.Errorf("Type(%q).IsValid() = %v, want %v", tt.typ, got, tt.want)
		}
	}

	for _, typ := range Types() {
		if !typ.IsValid() {
			t.Errorf("Types() entry %q is not valid", typ)
		}
	}
}

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(&config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "/tmp/test.db",
		SeedDemoData: true,
	})
	if err != nil {
		t.Fatalf("FromAppConfig: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "/tmp/test.db" || !cfg.SeedDemoData {
		t.Fatalf("config mapping mismatch: %+v", cfg)
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("nil app config should error")
	}

	_, err = FromAppConfig(&config.Config{DataBackend: "sheets"})
	if err == nil {
		t.Fatalf("invalid backend type should error")
	}
	if !strings.Contains(err.Error(), "memory") || !strings.Contains(err.Error(), "sqlite") {
		t.Fatalf("error should list the valid types, got: %v", err)
	}
}

func TestCreateMemoryBackend(t *testing.T) {
	result, err := Create(context.Background(), Config{Type: MemoryBackend, SeedDemoData: true}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.Cleanup != nil {
		t.Fatalf("memory backend needs no cleanup")
	}

	all, err := result.Backend.List(context.Background(), core.TimeFrame(""))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 7 {
		t.Fatalf("seeded backend holds %d rows, want 7", len(all))
	}
}

func TestCreateRejectsInvalidType(t *testing.T) {
	if _, err := Create(context.Background(), Config{Type: Type("cloud")}, nil); err == nil {
		t.Fatalf("invalid backend type should error")
	}
}
