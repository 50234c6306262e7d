package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtlens/ecourts-gateway/internal/config"
	"github.com/courtlens/ecourts-gateway/internal/logger"
)

func testTransport(baseURL string, timeout time.Duration) *Transport {
	return NewTransport(config.Upstream{
		BaseURL:        baseURL,
		HostHeader:     "app.ecourts.gov.in",
		UserAgent:      "test-agent",
		RequestTimeout: timeout,
	}, logger.Nop())
}

func TestWithSessionReleasesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := testTransport(srv.URL, 5*time.Second)

	err := tr.WithSession(context.Background(), func(ctx context.Context, session *resty.Client) error {
		assert.Equal(t, int64(1), tr.ActiveSessions())
		_, err := Exchange(ctx, session, EndpointStates, "envelope", "")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), tr.ActiveSessions())
}

func TestWithSessionReleasesOnError(t *testing.T) {
	tr := testTransport("http://127.0.0.1:1", time.Second)

	err := tr.WithSession(context.Background(), func(ctx context.Context, session *resty.Client) error {
		_, err := Exchange(ctx, session, EndpointStates, "envelope", "")
		return err
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, int64(0), tr.ActiveSessions())
}

func TestWithSessionTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	tr := testTransport(srv.URL, 50*time.Millisecond)

	err := tr.WithSession(context.Background(), func(ctx context.Context, session *resty.Client) error {
		_, err := Exchange(ctx, session, EndpointCauseList, "envelope", "token")
		return err
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
	assert.Equal(t, int64(0), tr.ActiveSessions())
}

func TestWithSessionCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	tr := testTransport(srv.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tr.WithSession(ctx, func(ctx context.Context, session *resty.Client) error {
		_, err := Exchange(ctx, session, EndpointStates, "envelope", "")
		return err
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, ErrUpstreamTimeout)
	assert.Equal(t, int64(0), tr.ActiveSessions())
}

func TestWithSessionIsolation(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]int)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.URL.Query().Get("params")]++
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := testTransport(srv.URL, 5*time.Second)

	var wg sync.WaitGroup
	for _, envelope := range []string{"caller-one", "caller-two"} {
		wg.Add(1)
		go func(envelope string) {
			defer wg.Done()
			err := tr.WithSession(context.Background(), func(ctx context.Context, session *resty.Client) error {
				_, err := Exchange(ctx, session, EndpointDistricts, envelope, "")
				return err
			})
			assert.NoError(t, err)
		}(envelope)
	}
	wg.Wait()

	assert.Equal(t, int64(0), tr.ActiveSessions())
	assert.Equal(t, 1, seen["caller-one"])
	assert.Equal(t, 1, seen["caller-two"])
}

func TestExchangeRequestShape(t *testing.T) {
	var gotAuth, gotHost, gotParams, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotHost = r.Host
		gotParams = r.URL.Query().Get("params")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("cipher-body"))
	}))
	defer srv.Close()

	tr := testTransport(srv.URL, 5*time.Second)

	var body string
	err := tr.WithSession(context.Background(), func(ctx context.Context, session *resty.Client) error {
		var err error
		body, err = Exchange(ctx, session, EndpointCaseHistory, "enc-params", "enc-token")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "cipher-body", body)
	assert.Equal(t, "Bearer enc-token", gotAuth)
	assert.Equal(t, "app.ecourts.gov.in", gotHost)
	assert.Equal(t, "enc-params", gotParams)
	assert.Equal(t, EndpointCaseHistory, gotPath)
}

func TestExchangePlainJSONMeansNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"Record not found"}`))
	}))
	defer srv.Close()

	tr := testTransport(srv.URL, 5*time.Second)
	err := tr.WithSession(context.Background(), func(ctx context.Context, session *resty.Client) error {
		_, err := Exchange(ctx, session, EndpointCaseList, "envelope", "token")
		return err
	})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExchangeStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUpstreamRejected},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUpstreamRejected},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUpstreamStatus},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrUpstreamStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			tr := testTransport(srv.URL, 5*time.Second)
			err := tr.WithSession(context.Background(), func(ctx context.Context, session *resty.Client) error {
				_, err := Exchange(ctx, session, EndpointHandshake, "envelope", "")
				return err
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
