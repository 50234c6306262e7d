package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Upstream: Upstream{
			BaseURL:        "https://app.ecourts.gov.in/ecourts_mobile",
			RequestKeyHex:  "4D6251655468576D5A7134743677397A",
			ResponseKeyHex: "3273357638782F413F4428472B4B6250",
			DeviceID:       "a1b2c3d4e5f6",
			HostHeader:     "app.ecourts.gov.in",
			UserAgent:      "Dalvik/2.1.0",
			RequestTimeout: 20 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://mirror.example.com/api")
	t.Setenv("UPSTREAM_REQUEST_KEY", "00112233445566778899aabbccddeeff")
	t.Setenv("UPSTREAM_RESPONSE_KEY", "ffeeddccbbaa99887766554433221100")
	t.Setenv("UPSTREAM_DEVICE_ID", "deadbeef")
	t.Setenv("UPSTREAM_REQUEST_TIMEOUT", "5s")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://mirror.example.com/api", cfg.Upstream.BaseURL)
	assert.Equal(t, "00112233445566778899aabbccddeeff", cfg.Upstream.RequestKeyHex)
	assert.Equal(t, "deadbeef", cfg.Upstream.DeviceID)
	assert.Equal(t, 5*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)

	// Defaults applied when the variable is unset.
	assert.Equal(t, "app.ecourts.gov.in", cfg.Upstream.HostHeader)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().validate())
	})

	t.Run("missing base url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Upstream.BaseURL = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidUpstreamConfigs)
	})

	t.Run("missing envelope keys", func(t *testing.T) {
		cfg := validConfig()
		cfg.Upstream.ResponseKeyHex = ""
		assert.ErrorIs(t, cfg.validate(), ErrMissingEnvelopeKeys)
	})

	t.Run("missing device id", func(t *testing.T) {
		cfg := validConfig()
		cfg.Upstream.DeviceID = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidUpstreamConfigs)
	})

	t.Run("zero upstream timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Upstream.RequestTimeout = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidUpstreamConfigs)
	})

	t.Run("empty server address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})
}

func TestParseJSON(t *testing.T) {
	payload := map[string]any{
		"upstream": map[string]any{
			"base_url":        "https://json.example.com",
			"request_key":     "00112233445566778899aabbccddeeff",
			"response_key":    "ffeeddccbbaa99887766554433221100",
			"device_id":       "cafebabe",
			"request_timeout": "15s",
		},
		"server": map[string]any{
			"http_address":    "localhost:8081",
			"request_timeout": "45s",
		},
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, "cafebabe", cfg.Upstream.DeviceID)
	assert.Equal(t, 15*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"20s"`), &d))
	assert.Equal(t, 20*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestNetAddress_Set(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", a.String())

	assert.Error(t, (&NetAddress{}).Set("no-port"))
	assert.Error(t, (&NetAddress{}).Set("localhost:0"))
	assert.Error(t, (&NetAddress{}).Set("bad-host:1234"))
}
