package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json", Output: &buf})

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	entry := decode(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
}

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "bogus", Output: &buf})

	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.NotZero(t, buf.Len())
}

func TestWithContextAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf})

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-1")
	l.WithContext(ctx).Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-1", entry["user_id"])
}

func TestHTTPRequestLevels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		l := New(Config{Level: "debug", Output: &buf})

		var err error
		if tc.status >= 500 {
			err = errors.New("boom")
		}
		l.HTTPRequest(context.Background(), "GET", "/api/v1/places", tc.status, 3*time.Millisecond, err)

		entry := decode(t, &buf)
		assert.Equal(t, tc.level, entry["level"])
		assert.EqualValues(t, tc.status, entry["status_code"])
		assert.Equal(t, "/api/v1/places", entry["path"])
	}
}
