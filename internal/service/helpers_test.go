package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func passthroughTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T {
	return &v
}
