package tests

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/campus-hub/community-service/pkg/logger"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestAttrsFromCtx_PropagatesTraceIDs(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()
	otel.SetTracerProvider(tp)
	tr := tp.Tracer("test")

	ctx, span := tr.Start(context.Background(), "op")
	defer span.End()

	outStr := captureStdOut(func() {
		logger.Init(logger.Config{
			Service:          "demo",
			Env:              logger.EnvProd,
			Backend:          logger.BackendZap,
			SampleInitial:    100000,
			SampleThereafter: 100000,
		})

		slog.InfoContext(ctx, "with trace", toAttrsFromCtx(ctx)...)
	})

	var m map[string]any
	if err := json.Unmarshal([]byte(outStr), &m); err != nil {
		t.Fatalf("expected JSON, got: %s, err=%v", outStr, err)
	}

	if m["trace_id"] == nil || m["span_id"] == nil {
		t.Fatalf("trace_id/span_id missing in log: %v", m)
	}
	if m["msg"] != "with trace" {
		t.Fatalf("msg mismatch: %v", m["msg"])
	}
}
