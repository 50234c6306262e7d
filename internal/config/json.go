package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Upstream struct {
		BaseURL        string   `json:"base_url"`
		RequestKeyHex  string   `json:"request_key"`
		ResponseKeyHex string   `json:"response_key"`
		DeviceID       string   `json:"device_id"`
		HostHeader     string   `json:"host_header"`
		UserAgent      string   `json:"user_agent"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"upstream,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Upstream: Upstream{
			BaseURL:        jsonCfg.Upstream.BaseURL,
			RequestKeyHex:  jsonCfg.Upstream.RequestKeyHex,
			ResponseKeyHex: jsonCfg.Upstream.ResponseKeyHex,
			DeviceID:       jsonCfg.Upstream.DeviceID,
			HostHeader:     jsonCfg.Upstream.HostHeader,
			UserAgent:      jsonCfg.Upstream.UserAgent,
			RequestTimeout: time.Duration(jsonCfg.Upstream.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
