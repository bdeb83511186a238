package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/BrandyMint/moysklad/apierror"
	"github.com/BrandyMint/moysklad/response"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the MoySklad API. Successful calls return the decoded JSON
// payload unchanged; failed calls return an *apierror.Error.
type Client struct {
	baseURL         string
	resty           *resty.Client
	requestIDKey    any
	defaultHeaders  map[string]string
	logger          zerolog.Logger
	maxResponseSize int64 // 0 means no limit
	classifierOpts  []apierror.Option

	decoder    *response.Decoder
	classifier *apierror.Classifier
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		resty:        resty.New().SetTimeout(DefaultTimeout),
		requestIDKey: nil,
		defaultHeaders: map[string]string{
			HeaderContentType: ContentTypeJSONUTF8,
			HeaderAccept:      ContentTypeJSON,
		},
		logger:          zerolog.Nop(),
		maxResponseSize: 0,
		classifierOpts:  nil,
		decoder:         nil,
		classifier:      nil,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.decoder = response.NewDecoder(response.WithLogger(c.logger))
	c.classifier = apierror.NewClassifier(c.classifierOpts...)

	return c
}

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.do(ctx, http.MethodPost, path, body, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (any, error) {
	return c.do(ctx, http.MethodPut, path, body, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts...)
}

func (c *Client) Do(
	ctx context.Context,
	method string,
	path string,
	body any,
	opts ...RequestOption,
) (any, error) {
	return c.do(ctx, method, path, body, opts...)
}

// GetLegacy fetches from the XML API. A 2xx body is returned as is; anything
// else becomes a KindXMLDomain error.
func (c *Client) GetLegacy(ctx context.Context, path string, opts ...RequestOption) ([]byte, error) {
	opts = append([]RequestOption{WithRequestHeader(HeaderAccept, ContentTypeXML)}, opts...)

	raw, requestID, err := c.execute(ctx, http.MethodGet, path, nil, opts...)
	if err != nil {
		return nil, err
	}

	if raw.IsSuccess() {
		return raw.Body, nil
	}

	apiErr := apierror.FromDomainResponse(raw)
	c.logFailure(raw, requestID, apiErr)

	return nil, apiErr
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body any,
	opts ...RequestOption,
) (any, error) {
	raw, requestID, err := c.execute(ctx, method, path, body, opts...)
	if err != nil {
		return nil, err
	}

	payload, err := c.classifier.Classify(raw, c.decoder.Decode(raw))
	if err != nil {
		if apiErr, ok := apierror.As(err); ok {
			c.logFailure(raw, requestID, apiErr)
		}

		return nil, err
	}

	return payload, nil
}

func (c *Client) execute(
	ctx context.Context,
	method string,
	path string,
	body any,
	opts ...RequestOption,
) (*response.RawResponse, string, error) {
	cfg := c.buildRequestConfig(ctx, opts...)

	reqCtx := ctx

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	req := c.resty.R().
		SetContext(reqCtx).
		SetHeaders(c.defaultHeaders).
		SetHeaders(cfg.headers).
		SetHeader(HeaderXRequestID, cfg.requestID).
		SetDoNotParseResponse(true)

	if len(cfg.query) > 0 {
		req.SetQueryParams(cfg.query)
	}

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		req.SetBody(bodyBytes)
	}

	resp, err := req.Execute(method, c.buildURL(path))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	bodyBytes, err := c.readBody(resp.RawBody())
	if err != nil {
		return nil, "", err
	}

	return response.New(resp.StatusCode(), resp.Header(), bodyBytes, resp.Request.URL), cfg.requestID, nil
}

// readBody reads at most maxResponseSize+1 bytes so an oversized body is
// rejected without being buffered in full.
func (c *Client) readBody(rawBody io.ReadCloser) ([]byte, error) {
	if rawBody == nil {
		return nil, nil
	}
	defer rawBody.Close()

	body := io.Reader(rawBody)
	if c.maxResponseSize > 0 {
		body = io.LimitReader(rawBody, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return bodyBytes, nil
}

func (c *Client) buildRequestConfig(ctx context.Context, opts ...RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers:   make(map[string]string),
		query:     nil,
		timeout:   0,
		requestID: "",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.requestID == "" {
		cfg.requestID = c.extractRequestID(ctx)
	}

	return cfg
}

func (c *Client) extractRequestID(ctx context.Context) string {
	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

func (c *Client) logFailure(raw *response.RawResponse, requestID string, apiErr *apierror.Error) {
	if respRequestID := raw.Header.Get(HeaderXRequestID); respRequestID != "" {
		requestID = respRequestID
	}

	c.logger.Debug().
		Int("status", raw.StatusCode).
		Str("url", raw.URL).
		Str("kind", apiErr.Kind.String()).
		Str("request_id", requestID).
		Msg("moysklad: request failed")
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
