package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", getRequestID(ctx))
	assert.Equal(t, "", getRequestID(context.Background()))
}

func TestFormatLog(t *testing.T) {
	assert.Equal(t, "[INFO] [req_id=abc] hello world", formatLog("INFO", "abc", "hello %s", "world"))
	assert.Equal(t, "[WARN] plain", formatLog("WARN", "", "plain"))
}

func TestLoggingDoesNotPanic(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	assert.NotPanics(t, func() {
		Info("info %d", 1)
		InfoWithContext(ctx, "info")
		Warn("warn")
		WarnWithContext(ctx, "warn")
		Error("error")
		ErrorWithContext(ctx, "error")
	})
}
