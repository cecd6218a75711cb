package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := context.Background()
	ctx = log.WithUserID(ctx, "user-123")

	log.Error(ctx, "boom", errors.New("boom"))

	if !bytes.Contains(buf.Bytes(), []byte("\"user_id\"")) {
		t.Fatalf("expected user_id to be preserved; entry=%s", buf.String())
	}
}

func TestLoggerErrorIncludesCode(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	err := pkgerrors.New(pkgerrors.CodeDependency, "backend unavailable")
	log.Error(context.Background(), "request failed", err)

	if !bytes.Contains(buf.Bytes(), []byte("\"error_code\":\"DEPENDENCY_ERROR\"")) {
		t.Fatalf("expected error_code in entry; entry=%s", buf.String())
	}
}

func TestLoggerFieldsAccumulate(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := log.WithEntityKind(context.Background(), "employee")
	ctx = log.WithRecordID(ctx, 42)
	log.Info(ctx, "record updated")

	for _, want := range []string{"\"entity_kind\"", "\"record_id\""} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Fatalf("expected %s in entry; entry=%s", want, buf.String())
		}
	}
}

func TestParseLevel(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", lvl)
	}
	if lvl := ParseLevel("invalid"); lvl != zerolog.InfoLevel {
		t.Fatalf("invalid level should fall back to info, got %v", lvl)
	}
	if lvl := ParseLevel("warn"); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", lvl)
	}
}
