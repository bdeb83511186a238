package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
)

func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	payload, err := c.Get(ctx, path, opts...)

	return convert[T](payload, err)
}

func PostJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	payload, err := c.Post(ctx, path, body, opts...)

	return convert[T](payload, err)
}

func PutJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	payload, err := c.Put(ctx, path, body, opts...)

	return convert[T](payload, err)
}

func DeleteJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	payload, err := c.Delete(ctx, path, opts...)

	return convert[T](payload, err)
}

func DoJSON[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (T, error) {
	payload, err := c.Do(ctx, method, path, body, opts...)

	return convert[T](payload, err)
}

// convert maps the decoded payload onto T by re-encoding it. json.Number
// values survive the round trip without precision loss.
func convert[T any](payload any, err error) (T, error) {
	var result T

	if err != nil {
		return result, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return result, nil
}
