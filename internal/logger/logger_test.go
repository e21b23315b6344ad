package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetupWithOutput("debug", &buf)
	t.Cleanup(func() { SetupWithOutput("info", &bytes.Buffer{}) })

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	WithContext(ctx).WithField("member_id", 7).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, float64(7), entry["member_id"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestWithContext_NoRequestID(t *testing.T) {
	l := WithContext(context.Background())
	_, ok := l.Entry.Data["request_id"]
	assert.False(t, ok)
}

func TestSetupWithOutput_Levels(t *testing.T) {
	t.Cleanup(func() { SetupWithOutput("info", &bytes.Buffer{}) })

	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"garbage": logrus.InfoLevel,
	}
	for in, want := range cases {
		SetupWithOutput(in, &bytes.Buffer{})
		assert.Equal(t, want, logrus.GetLevel(), in)
	}
}
