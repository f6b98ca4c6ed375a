package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewStandardHTTPClient(t *testing.T) {
	timeout := 10 * time.Second
	client := NewStandardHTTPClient(timeout)

	if client == nil {
		t.Fatal("NewStandardHTTPClient returned nil")
	}

	if client.client.Timeout != timeout {
		t.Errorf("Client timeout = %v, want %v", client.client.Timeout, timeout)
	}
}

func TestStandardHTTPClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<rss></rss>"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode(), http.StatusOK)
	}
	if resp.Header("Content-Type") != "text/xml" {
		t.Errorf("Content-Type = %s, want text/xml", resp.Header("Content-Type"))
	}

	body, err := io.ReadAll(resp.Body())
	resp.Body().Close()
	if err != nil {
		t.Errorf("Failed to read body: %v", err)
	}
	if string(body) != "<rss></rss>" {
		t.Errorf("Body = %s, want '<rss></rss>'", string(body))
	}
}

func TestStandardHTTPClient_Get_UserAgent(t *testing.T) {
	var capturedUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if !strings.Contains(capturedUserAgent, "MediumFeedClient") {
		t.Errorf("User-Agent = %s, should contain 'MediumFeedClient'", capturedUserAgent)
	}
}

func TestStandardHTTPClient_Get_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, server.URL)

	if err == nil {
		t.Error("Get should fail when the context deadline passes")
	}
}

func TestStandardHTTPClient_Get_InvalidURL(t *testing.T) {
	client := NewStandardHTTPClient(10 * time.Second)
	ctx := context.Background()

	_, err := client.Get(ctx, "://not-a-url")

	if err == nil {
		t.Error("Get should fail for an invalid URL")
	}
}
