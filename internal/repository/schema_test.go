package repository

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kansah/site/internal/model"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	m := newTestDB(t)

	// newTestDB already ran it once.
	if err := EnsureSchema(context.Background(), m); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
}

func TestEnsureSchema_UnreachableStoreFails(t *testing.T) {
	err := EnsureSchema(context.Background(), unreachableDB(t))
	if !errors.Is(err, model.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestSchemaFor_Driver(t *testing.T) {
	if len(schemaFor("sqlite")) != len(schemaFor("postgres")) {
		t.Error("both dialects must create the same tables")
	}
}

func TestEnsureSchema_LogsReadyOnce(t *testing.T) {
	m := newTestDB(t)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	if err := EnsureSchema(context.Background(), m); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if n := strings.Count(buf.String(), `"msg":"schema ready"`); n != 1 {
		t.Errorf("expected one schema ready entry, got %d:\n%s", n, buf.String())
	}
}
