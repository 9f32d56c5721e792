package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), base, "req-abc-123")

	assert.Equal(t, "req-abc-123", GetRequestID(ctx))

	FromContext(ctx).Info("hello")
	enriched.Info("world")

	entries := logs.All()
	assert.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "req-abc-123", entry.ContextMap()["request_id"])
	}
}

func TestGetRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestFromContext_ReturnsNopWhenAbsent(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
