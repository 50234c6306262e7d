package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-upstream-url base URL of the e-courts backend
//	-request-key hex-encoded request envelope key
//	-response-key hex-encoded response envelope key
//	-device-id upstream device identity
//	-upstream-timeout upstream call deadline (e.g., "20s")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var upstreamURL string
	var requestKey string
	var responseKey string
	var deviceID string
	var upstreamTimeout time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&upstreamURL, "upstream-url", "", "Base URL of the e-courts backend")
	flag.StringVar(&requestKey, "request-key", "", "Hex-encoded request envelope key")
	flag.StringVar(&responseKey, "response-key", "", "Hex-encoded response envelope key")
	flag.StringVar(&deviceID, "device-id", "", "Upstream device identity")
	flag.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream call deadline (e.g., 20s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Upstream: Upstream{
			BaseURL:        upstreamURL,
			RequestKeyHex:  requestKey,
			ResponseKeyHex: responseKey,
			DeviceID:       deviceID,
			RequestTimeout: upstreamTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// config merge falls through to the next source.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
