package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestEchoReturnsURLField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://httpbin.org/get","headers":{}}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, time.Second).Echo(context.Background())
	if err != nil {
		t.Fatalf("echo: %v", err)
	}
	if got != "https://httpbin.org/get" {
		t.Fatalf("unexpected echo %q", got)
	}
}

func TestEchoFallsBackWhenURLMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, time.Second).Echo(context.Background())
	if err != nil {
		t.Fatalf("echo: %v", err)
	}
	if got != "httpbin" {
		t.Fatalf("expected fallback echo, got %q", got)
	}
}

func TestEchoNonJSONReplyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>ok</html>`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, time.Second).Echo(context.Background())
	if err != nil {
		t.Fatalf("2xx non-JSON reply should not fail: %v", err)
	}
	if got != "httpbin" {
		t.Fatalf("expected fallback echo, got %q", got)
	}
}

func TestEchoNon2xxIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Echo(context.Background())
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if err.Error() != "Request failed with status code 500" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestEchoTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, 50*time.Millisecond).Echo(context.Background())
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "Client.Timeout") {
		t.Fatalf("expected timeout message, got %q", err.Error())
	}
}

func TestNewClientDefaultsTimeout(t *testing.T) {
	c := NewClient("http://example.invalid", 0)
	if c.http.Timeout != DefaultTimeout {
		t.Fatalf("expected %s, got %s", DefaultTimeout, c.http.Timeout)
	}
}
