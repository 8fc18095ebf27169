package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/newsroom-api/internal/config"
	"github.com/newsroom-api/internal/notify"
)

func TestXClientNoCredentialsIsNoOp(t *testing.T) {
	client := notify.NewXClient(&config.SocialConfig{
		BearerToken: "",
		Endpoint:    "http://should-not-be-called.test",
		Timeout:     time.Second,
	})

	posted, err := client.Post(context.Background(), "hello")
	if err != nil {
		t.Fatalf("missing credentials must not be an error, got %v", err)
	}
	if posted {
		t.Error("posted = true without credentials")
	}
}

func TestXClientPostsWithBearerToken(t *testing.T) {
	var gotAuth string
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		gotText = payload["text"]
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := notify.NewXClient(&config.SocialConfig{
		BearerToken: "secret-token",
		Endpoint:    srv.URL,
		Timeout:     time.Second,
	})

	posted, err := client.Post(context.Background(), "NEW: Hello World")
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if !posted {
		t.Error("posted = false, want true")
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotText != "NEW: Hello World" {
		t.Errorf("text = %q", gotText)
	}
}

func TestXClientTruncatesTo280(t *testing.T) {
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		gotText = payload["text"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := notify.NewXClient(&config.SocialConfig{
		BearerToken: "secret-token",
		Endpoint:    srv.URL,
		Timeout:     time.Second,
	})

	if _, err := client.Post(context.Background(), strings.Repeat("x", 400)); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if len(gotText) != 280 {
		t.Errorf("posted text is %d chars, want 280", len(gotText))
	}
}

func TestXClientRejectionIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := notify.NewXClient(&config.SocialConfig{
		BearerToken: "secret-token",
		Endpoint:    srv.URL,
		Timeout:     time.Second,
	})

	posted, err := client.Post(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if posted {
		t.Error("posted = true for rejected request")
	}
}
