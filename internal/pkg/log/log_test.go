package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", getRequestID(ctx))
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", getRequestID(context.Background()))
}

func TestFormatLog(t *testing.T) {
	t.Run("With request ID", func(t *testing.T) {
		msg := formatLog("req-123", "boom: %d", 7)
		assert.Equal(t, "[req_id=req-123] boom: 7", msg)
	})

	t.Run("Without request ID", func(t *testing.T) {
		msg := formatLog("", "boom: %d", 7)
		assert.Equal(t, "boom: 7", msg)
	})
}
