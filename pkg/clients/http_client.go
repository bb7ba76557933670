package clients

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

const timeout = time.Second * 15

var ErrFailedCloseResponseBody = errors.New("failed close response body")

//go:generate mockgen -source=http_client.go -destination=http_client_mock.go -package=clients

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
	Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClientAdapter) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return
	}

	if headers != nil {
		req.Header = headers
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode
	respHeaders = resp.Header

	return
}

func (h *HTTPClientAdapter) Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return
	}

	if headers != nil {
		req.Header = headers
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode

	return
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
	}
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	return h.client.Get(ctx, url, headers)
}

func (h *HTTPClient) Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error) {
	return h.client.Post(ctx, url, headers, body)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
