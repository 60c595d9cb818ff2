package client

import (
	"context"
	"net/http"

	"github.com/Astemirdum/shareit/gateway/internal/model"
)

const requestsPath = "/requests"

func (c *Client) CreateRequest(ctx context.Context, userID int64, dto model.ItemRequestDto) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPost, path: requestsPath, userID: userID, body: dto})
}

func (c *Client) ListOwnRequests(ctx context.Context, userID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: requestsPath, userID: userID})
}

func (c *Client) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: requestsPath + "/all", userID: userID, query: pageQuery(from, size)})
}

func (c *Client) GetRequest(ctx context.Context, userID, requestID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: idPath(requestsPath, requestID), userID: userID})
}
