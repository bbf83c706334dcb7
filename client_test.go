package pdfrender

// Notes:
// - Render: a TLS httptest server stands in for the render service. We test
//   headers, body, 200 and non-200 answers, transport failures and
//   cancellation. The service's real error format is opaque to us.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method        string
	path          string
	contentType   string
	contentLength int64
	host          string
	key           string
	body          []byte
}

func newRenderServer(t *testing.T, status int, respBody []byte, got *capturedRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if got != nil {
			*got = capturedRequest{
				method:        r.Method,
				path:          r.URL.Path,
				contentType:   r.Header.Get("Content-Type"),
				contentLength: r.ContentLength,
				host:          r.Header.Get(HeaderServiceHost),
				key:           r.Header.Get(HeaderServiceKey),
				body:          body,
			}
		}
		w.WriteHeader(status)
		_, _ = w.Write(respBody)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// TestClientRender_Success - 200 answer
// ---------------------------------------------------------------------------

func TestClientRender_Success(t *testing.T) {
	t.Parallel()

	var got capturedRequest
	srv := newRenderServer(t, http.StatusOK, []byte("PDFDATA"), &got)
	c := NewClient(WithEndpoint(srv.URL+"/pdf"), WithHTTPClient(srv.Client()))

	body := []byte(`{"sourceType":"Template","content":"<p>é</p>"}`)
	pdf, err := c.Render(context.Background(), body, "abc123")
	require.NoError(t, err)

	assert.Equal(t, []byte("PDFDATA"), pdf)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/pdf", got.path)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, int64(len(body)), got.contentLength)
	assert.Equal(t, DefaultServiceHost, got.host)
	assert.Equal(t, "abc123", got.key)
	assert.Equal(t, body, got.body)
}

func TestClientRender_CustomHost(t *testing.T) {
	t.Parallel()

	var got capturedRequest
	srv := newRenderServer(t, http.StatusOK, nil, &got)
	c := NewClient(
		WithEndpoint(srv.URL),
		WithHTTPClient(srv.Client()),
		WithServiceHost("render.example.test"),
		WithUserAgent("test-agent"),
	)

	pdf, err := c.Render(context.Background(), []byte(`{}`), "")
	require.NoError(t, err)
	assert.Empty(t, pdf)
	assert.Equal(t, "render.example.test", got.host)
	assert.Empty(t, got.key)
}

// ---------------------------------------------------------------------------
// TestClientRender_Rejected - Non-200 answers
// ---------------------------------------------------------------------------

func TestClientRender_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusForbidden, `{"message":"You are not subscribed to this API."}`},
		{"rate limited", http.StatusTooManyRequests, "Too many requests"},
		{"server error empty body", http.StatusInternalServerError, ""},
		{"created is not success", http.StatusCreated, "%PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newRenderServer(t, tt.status, []byte(tt.body), nil)
			c := NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))

			pdf, err := c.Render(context.Background(), []byte(`{}`), "k")
			require.Error(t, err)
			assert.Nil(t, pdf)
			assert.ErrorIs(t, err, ErrRemoteRejected)

			var remote *RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.status, remote.StatusCode)
			assert.Equal(t, tt.body, remote.Body)
			assert.Contains(t, err.Error(), tt.body)
		})
	}
}

// ---------------------------------------------------------------------------
// TestClientRender_Transport - Connection-level failures
// ---------------------------------------------------------------------------

func TestClientRender_Transport(t *testing.T) {
	t.Parallel()

	t.Run("server closed", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewTLSServer(http.NotFoundHandler())
		endpoint, client := srv.URL, srv.Client()
		srv.Close()

		_, err := NewClient(WithEndpoint(endpoint), WithHTTPClient(client)).Render(context.Background(), []byte(`{}`), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
		assert.NotErrorIs(t, err, ErrRemoteRejected)
	})

	t.Run("untrusted certificate", func(t *testing.T) {
		t.Parallel()

		srv := newRenderServer(t, http.StatusOK, []byte("PDF"), nil)
		_, err := NewClient(WithEndpoint(srv.URL)).Render(context.Background(), []byte(`{}`), "")
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		srv := newRenderServer(t, http.StatusOK, []byte("PDF"), nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client())).Render(ctx, []byte(`{}`), "")
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := NewClient(WithEndpoint("://bad")).Render(context.Background(), nil, "")
		assert.ErrorIs(t, err, ErrTransport)
	})
}

// ---------------------------------------------------------------------------
// TestNewClient - Defaults and options
// ---------------------------------------------------------------------------

func TestNewClient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultEndpoint, NewClient().Endpoint())
	assert.Equal(t, "https://x.test/pdf", NewClient(WithEndpoint("https://x.test/pdf")).Endpoint())
	assert.Panics(t, func() { WithHTTPClient(nil) })
}

// ---------------------------------------------------------------------------
// TestRemoteError - Error text
// ---------------------------------------------------------------------------

func TestRemoteError(t *testing.T) {
	t.Parallel()

	err := &RemoteError{StatusCode: 401, Body: "bad key"}
	assert.Equal(t, "render service rejected the request: status 401: bad key", err.Error())

	empty := &RemoteError{StatusCode: 502}
	assert.Equal(t, "render service rejected the request: status 502", empty.Error())
}
