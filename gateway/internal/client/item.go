package client

import (
	"context"
	"net/http"

	"github.com/Astemirdum/shareit/gateway/internal/model"
)

const itemsPath = "/items"

func (c *Client) CreateItem(ctx context.Context, userID int64, dto model.ItemDto) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPost, path: itemsPath, userID: userID, body: dto})
}

func (c *Client) UpdateItem(ctx context.Context, userID, itemID int64, dto model.ItemUpdateDto) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPatch, path: idPath(itemsPath, itemID), userID: userID, body: dto})
}

func (c *Client) GetItem(ctx context.Context, userID, itemID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: idPath(itemsPath, itemID), userID: userID})
}

func (c *Client) ListItems(ctx context.Context, userID int64, from, size int) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: itemsPath, userID: userID, query: pageQuery(from, size)})
}

func (c *Client) SearchItems(ctx context.Context, text string, from, size int) ([]byte, int, error) {
	q := pageQuery(from, size)
	q.Set("text", text)
	return c.do(ctx, call{method: http.MethodGet, path: itemsPath + "/search", query: q})
}

func (c *Client) DeleteItem(ctx context.Context, userID, itemID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodDelete, path: idPath(itemsPath, itemID), userID: userID})
}

func (c *Client) AddComment(ctx context.Context, userID, itemID int64, dto model.CommentDto) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPost, path: idPath(itemsPath, itemID) + "/comment", userID: userID, body: dto})
}
