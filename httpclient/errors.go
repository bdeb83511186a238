package httpclient

import (
	"errors"
)

var (
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrEncodeBody       = errors.New("httpclient: failed to encode request body")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
)
