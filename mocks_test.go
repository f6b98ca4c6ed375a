package medium

import (
	"context"
	"io"
	"strings"

	"medium-feed-client/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)

	// requests records every URL the client was asked to fetch
	requests []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.requests = append(m.requests, url)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// rssClient serves the given RSS body for every request
func rssClient(body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       body,
				headers:    map[string]string{"Content-Type": "text/xml; charset=UTF-8"},
			}, nil
		},
	}
}

// jsonClient serves the given JSON body for every request
func jsonClient(body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       body,
				headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
			}, nil
		},
	}
}
