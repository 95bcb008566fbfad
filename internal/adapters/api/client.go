package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

// Recorder receives one start event and exactly one terminal event per
// request. Recording never alters the request outcome.
type Recorder interface {
	Start(method, url, tag, requestBody string) string
	End(id string, status int, ok bool, responseBody string)
	Fail(id string, message string)
}

// Client is the single choke point for outbound HTTP. It owns the base URL
// and the installed bearer token; nothing else in the repo touches the
// network directly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	recorder   Recorder

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(c *Client) {
		c.recorder = recorder
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken installs the bearer credential used by every subsequent call.
// The session service is the only caller.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently installed credential, empty when none.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do issues one HTTP call. path is relative to the base URL and may carry a
// query string; body is JSON-marshaled when non-nil; tag is free text for
// log correlation only. A nil RawMessage with a nil error means the server
// answered with no content. Calls run to completion: no timeout, no retry.
func (c *Client) Do(ctx context.Context, method, path string, body any, tag string) (json.RawMessage, error) {
	reqURL := c.baseURL + path

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(headerContentType, contentTypeJSON)
	if token := c.Token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	var entryID string
	if c.recorder != nil {
		entryID = c.recorder.Start(method, reqURL, tag, string(payload))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.recorder != nil {
			c.recorder.Fail(entryID, err.Error())
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		if c.recorder != nil {
			c.recorder.Fail(entryID, err.Error())
		}
		return nil, fmt.Errorf("read response body: %w", err)
	}

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if c.recorder != nil {
		c.recorder.End(entryID, resp.StatusCode, ok, string(text))
	}

	if !ok {
		return nil, newHTTPError(resp.StatusCode, text)
	}

	if resp.StatusCode == http.StatusNoContent || len(text) == 0 {
		return nil, nil
	}

	return json.RawMessage(text), nil
}

func (c *Client) get(ctx context.Context, path, tag string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil, tag)
}

func (c *Client) post(ctx context.Context, path string, body any, tag string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body, tag)
}
