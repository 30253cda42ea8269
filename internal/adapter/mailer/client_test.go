package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPSenderValidatesURL(t *testing.T) {
	if _, err := NewHTTPSender("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPSender("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPSenderDeliversCode(t *testing.T) {
	var received message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/send" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender, err := NewHTTPSender(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("create sender: %v", err)
	}
	if err := sender.SendResetCode(context.Background(), "ivan@example.ru", "123456"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if received.To != "ivan@example.ru" {
		t.Fatalf("wrong recipient: %q", received.To)
	}
	if !strings.Contains(received.Body, "123456") {
		t.Fatalf("code missing from body: %q", received.Body)
	}
}

func TestHTTPSenderReportsGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sender, err := NewHTTPSender(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("create sender: %v", err)
	}
	if err := sender.SendResetCode(context.Background(), "ivan@example.ru", "123456"); err == nil {
		t.Fatal("expected error on gateway failure")
	}
}

func TestLogSenderNeverFails(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	if err := sender.SendResetCode(context.Background(), "ivan@example.ru", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "123456") {
		t.Fatalf("code not logged: %s", buf.String())
	}
}
