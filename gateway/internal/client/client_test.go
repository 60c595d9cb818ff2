package client_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/gateway/config"
	"github.com/Astemirdum/shareit/gateway/internal/client"
	"github.com/Astemirdum/shareit/gateway/internal/errs"
	"github.com/Astemirdum/shareit/gateway/internal/model"
	"github.com/Astemirdum/shareit/pkg/circuit_breaker"
	md "github.com/Astemirdum/shareit/pkg/middleware"
)

func newClient(t *testing.T, srv *httptest.Server, cbCfg circuit_breaker.Config) *client.Client {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	return client.New(zap.NewNop(), config.ShareitServer{Host: host, Port: port, Timeout: time.Second}, circuit_breaker.New(cbCfg))
}

var defaultCB = circuit_breaker.Config{RecordLength: 10, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1}

type seen struct {
	method, path, query, user, body string
}

func TestClient_Forward(t *testing.T) {
	t.Parallel()
	var (
		mu   sync.Mutex
		last seen
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		last = seen{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			user:   r.Header.Get(md.XSharerUserID),
			body:   string(b),
		}
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()
	c := newClient(t, srv, defaultCB)
	got := func() seen {
		mu.Lock()
		defer mu.Unlock()
		return last
	}

	data, code, err := c.AddComment(context.Background(), 2, 3, model.CommentDto{Text: "great"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, `{"id":1}`, string(data))
	assert.Equal(t, seen{method: http.MethodPost, path: "/items/3/comment", user: "2", body: `{"text":"great"}`}, got())

	_, _, err = c.ListOwnerBookings(context.Background(), 1, "PAST", 20, 10)
	require.NoError(t, err)
	assert.Equal(t, seen{method: http.MethodGet, path: "/bookings/owner", query: "from=20&size=10&state=PAST", user: "1"}, got())

	_, _, err = c.DecideBooking(context.Background(), 1, 5, false)
	require.NoError(t, err)
	assert.Equal(t, seen{method: http.MethodPatch, path: "/bookings/5", query: "approved=false", user: "1"}, got())

	_, _, err = c.SearchItems(context.Background(), "drill", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, seen{method: http.MethodGet, path: "/items/search", query: "from=0&size=10&text=drill"}, got())
}

func TestClient_ErrorStatusPassedThrough(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}))
	defer srv.Close()
	c := newClient(t, srv, defaultCB)

	for i := 0; i < 20; i++ {
		data, code, err := c.GetUser(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, `{"message":"not found"}`, string(data))
	}
	assert.Equal(t, circuit_breaker.Closed, c.CB().State())
}

func TestClient_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"internal server error"}`))
	}))
	defer srv.Close()
	c := newClient(t, srv, circuit_breaker.Config{RecordLength: 2, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1})

	data, code, err := c.GetItem(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, `{"message":"internal server error"}`, string(data))
	assert.Equal(t, circuit_breaker.Open, c.CB().State())

	_, code, err = c.GetItem(context.Background(), 1, 1)
	require.ErrorIs(t, err, errs.ErrUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	c := newClient(t, srv, defaultCB)
	srv.Close()

	data, code, err := c.ListUsers(context.Background())
	require.ErrorIs(t, err, errs.ErrUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Nil(t, data)
}
