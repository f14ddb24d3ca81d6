package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingTransport(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		quiet         []string
		status        int
		expectedLevel string
	}{
		{name: "200 OK", path: "/transacoes/", status: http.StatusOK, expectedLevel: "level=INFO"},
		{name: "404 Not Found", path: "/transacoes/9/", status: http.StatusNotFound, expectedLevel: "level=WARN"},
		{name: "500 Internal Server Error", path: "/transacoes/", status: http.StatusInternalServerError, expectedLevel: "level=ERROR"},
		{name: "quiet polling path", path: "/transacoes/3/mensagens/", quiet: []string{"/mensagens/"}, status: http.StatusOK, expectedLevel: "level=DEBUG"},
		{name: "quiet path still warns", path: "/transacoes/3/mensagens/", quiet: []string{"/mensagens/"}, status: http.StatusUnauthorized, expectedLevel: "level=WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			var buf bytes.Buffer
			client := &http.Client{Transport: NewLoggingTransport(nil, newBufferLogger(&buf), tt.quiet...)}

			resp, err := client.Get(srv.URL + tt.path + "?depois_de=10")
			require.NoError(t, err)
			_ = resp.Body.Close()

			out := buf.String()
			assert.Contains(t, out, tt.expectedLevel)
			assert.Contains(t, out, "path="+tt.path)
			assert.Contains(t, out, "request_id=")
			assert.NotContains(t, out, "depois_de", "query must not be logged")
		})
	}
}

func TestLoggingTransport_RequestID(t *testing.T) {
	var got []string
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = append(got, r.Header.Get(RequestIDHeader))
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})

	var buf bytes.Buffer
	transport := NewLoggingTransport(next, newBufferLogger(&buf))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/auth/perfil/", nil)
	_, err := transport.RoundTrip(req)
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get(RequestIDHeader), "original request must not be modified")

	req2 := httptest.NewRequest(http.MethodGet, "http://example.com/auth/perfil/", nil)
	req2.Header.Set(RequestIDHeader, "fixed-id")
	_, err = transport.RoundTrip(req2)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Len(t, got[0], 36)
	assert.Equal(t, "fixed-id", got[1])
}

func TestLoggingTransport_DoesNotLogSensitiveHeaders(t *testing.T) {
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})

	var buf bytes.Buffer
	transport := NewLoggingTransport(next, newBufferLogger(&buf))

	req := httptest.NewRequest(http.MethodPost, "http://example.com/auth/login/", strings.NewReader(`{"senha":"hunter2"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	_, err := transport.RoundTrip(req)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "secret-token")
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestLoggingTransport_TransportError(t *testing.T) {
	netErr := errors.New("connection refused")
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, netErr
	})

	var buf bytes.Buffer
	transport := NewLoggingTransport(next, newBufferLogger(&buf))

	req := httptest.NewRequest(http.MethodGet, "http://example.com/transacoes/", nil)
	resp, err := transport.RoundTrip(req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, netErr)
	assert.Contains(t, buf.String(), "HTTP request failed")
	assert.Contains(t, buf.String(), "level=WARN")
}
