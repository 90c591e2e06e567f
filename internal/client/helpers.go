package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// Get fetches endpoint and decodes the JSON body as T
func Get[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	return send[T](ctx, c, http.MethodGet, endpoint, nil)
}

// Post sends data to endpoint and decodes the JSON body as T
func Post[T any](ctx context.Context, c *Client, endpoint string, data any) (T, error) {
	return send[T](ctx, c, http.MethodPost, endpoint, data)
}

// Put sends data to endpoint and decodes the JSON body as T
func Put[T any](ctx context.Context, c *Client, endpoint string, data any) (T, error) {
	return send[T](ctx, c, http.MethodPut, endpoint, data)
}

// Delete deletes endpoint and decodes the JSON body as T
func Delete[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	return send[T](ctx, c, http.MethodDelete, endpoint, nil)
}

func send[T any](ctx context.Context, c *Client, method, endpoint string, data any) (T, error) {
	var result T

	body, err := c.DoJSON(ctx, method, endpoint, data, DefaultErrorMessage)
	if err != nil {
		return result, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, &Error{Kind: KindDecode, Message: "failed to parse response", Err: err}
	}
	return result, nil
}
