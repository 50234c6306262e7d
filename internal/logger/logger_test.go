package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_EmitsRoleField(t *testing.T) {
	var buf bytes.Buffer

	l := NewLogger("gateway")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "gateway", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	// Must not panic and must not write anywhere.
	l.Error().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()

	ctx := base.WithContext(context.Background())
	l := FromContext(ctx)
	l.Info().Msg("scoped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()

	r := httptest.NewRequest("GET", "/api/court/states", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	FromRequest(r).Info().Msg("scoped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["trace_id"])
}
