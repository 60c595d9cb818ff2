package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit/gateway/config"
	"github.com/Astemirdum/shareit/gateway/internal/errs"
	"github.com/Astemirdum/shareit/pkg/circuit_breaker"
	md "github.com/Astemirdum/shareit/pkg/middleware"
)

// Client forwards validated calls to the shareit server and returns its status and body as is.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func New(log *zap.Logger, cfg config.ShareitServer, cb circuit_breaker.CircuitBreaker) *Client {
	return &Client{
		log:     log.Named("client"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: "http://" + net.JoinHostPort(cfg.Host, cfg.Port),
		cb:      cb,
	}
}

func (c *Client) CB() circuit_breaker.CircuitBreaker {
	return c.cb
}

var errUpstream = errors.New("upstream failure")

type call struct {
	method string
	path   string
	query  url.Values
	userID int64
	body   any
}

// do counts transport errors and 5xx answers against the circuit breaker.
// A 5xx body is still passed through to the caller.
func (c *Client) do(ctx context.Context, cl call) ([]byte, int, error) {
	var (
		data []byte
		code int
	)
	err := c.cb.Call(func() error {
		var err error
		data, code, err = c.send(ctx, cl)
		if err != nil {
			return err
		}
		if code >= http.StatusInternalServerError {
			return errUpstream
		}
		return nil
	})
	switch {
	case err == nil, errors.Is(err, errUpstream):
		return data, code, nil
	case errors.Is(err, circuit_breaker.ErrOpenCB):
		c.log.Warn("circuit breaker open", zap.String("path", cl.path))
		return nil, http.StatusServiceUnavailable, errors.Wrap(errs.ErrUnavailable, err.Error())
	default:
		c.log.Error("forward", zap.String("method", cl.method), zap.String("path", cl.path), zap.Error(err))
		return nil, http.StatusServiceUnavailable, errors.Wrap(errs.ErrUnavailable, err.Error())
	}
}

func (c *Client) send(ctx context.Context, cl call) ([]byte, int, error) {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader = http.NoBody
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, 0, errors.Wrap(err, "marshal body")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if cl.userID > 0 {
		req.Header.Set(md.XSharerUserID, strconv.FormatInt(cl.userID, 10))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return data, resp.StatusCode, nil
}

func pageQuery(from, size int) url.Values {
	q := url.Values{}
	q.Set("from", strconv.Itoa(from))
	q.Set("size", strconv.Itoa(size))
	return q
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
