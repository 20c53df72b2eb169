package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestForContext_IncludesIDs(t *testing.T) {
	SetupTestLogger()

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "RUN123")

	ForContext(ctx).Info("relatório gerado")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+correlationID)
	assert.Contains(t, out, "run_id=RUN123")
	assert.Equal(t, "RUN123", GetRunID(ctx))
}

func TestWithContext_Empty(t *testing.T) {
	SetupTestLogger()
	assert.Equal(t, "", GetRunID(context.Background()))
	assert.NotNil(t, L.WithContext(context.Background()))
}
