package client

import (
	"context"
	"net/http"

	"github.com/Astemirdum/shareit/gateway/internal/model"
)

const usersPath = "/users"

func (c *Client) CreateUser(ctx context.Context, dto model.UserDto) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPost, path: usersPath, body: dto})
}

func (c *Client) UpdateUser(ctx context.Context, userID int64, dto model.UserUpdateDto) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodPatch, path: idPath(usersPath, userID), body: dto})
}

func (c *Client) GetUser(ctx context.Context, userID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: idPath(usersPath, userID)})
}

func (c *Client) ListUsers(ctx context.Context) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodGet, path: usersPath})
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) ([]byte, int, error) {
	return c.do(ctx, call{method: http.MethodDelete, path: idPath(usersPath, userID)})
}
