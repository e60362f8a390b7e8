package logger

import (
	"context"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	// Text handler
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize text logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	// JSON handler
	if err := Init(WithFormat("json")); err != nil {
		t.Fatalf("failed to initialize json logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Unknown format is rejected
	if err := Init(WithFormat("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

// Basic logging test (slog-backed)
func TestLoggerBasic(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	log := Get()
	log.Debug(ctx, "debug message", String("key", "value"))
	log.Info(ctx, "info message", Int("count", 3))
	log.Warn(ctx, "warn message", Float64("ratio", 0.5))
	log.Error(ctx, "error message", Any("payload", map[string]int{"a": 1}))
}

func TestLoggerNamedAndWith(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	named := Named("component")
	if named == nil {
		t.Fatal("named logger is nil")
	}
	named.Info(context.Background(), "from named logger")

	scoped := Get().With(String("request_id", "abc"))
	if scoped == nil {
		t.Fatal("scoped logger is nil")
	}
	scoped.Info(context.Background(), "carries fields")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	for _, level := range []string{"debug", "info", "warn", "warning", "error", "", "DEBUG"} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("unexpected error for level %q: %v", level, err)
		}
	}

	if err := SetLevelString("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
