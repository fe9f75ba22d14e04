package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(baseURL string, onUnauthorized func()) *Client {
	return New(Config{
		BaseURL:        baseURL,
		Logger:         zerolog.Nop(),
		OnUnauthorized: onUnauthorized,
	})
}

func TestGetDecodesSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/things/1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Error("missing Accept header")
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": 1, "name": "widget"}`)
	}))
	defer srv.Close()

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	c := newTestClient(srv.URL, nil)
	if err := c.Get(context.Background(), "/things/1", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 1 || out.Name != "widget" {
		t.Errorf("decoded %+v", out)
	}
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message": "Product not found"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	err := c.Get(context.Background(), "/things/99", nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if ae.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", ae.StatusCode)
	}
	if ae.Message != "Product not found" {
		t.Errorf("message = %q", ae.Message)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound must match a 404")
	}
	if got := ServerMessage(err, "fallback"); got != "Product not found" {
		t.Errorf("ServerMessage = %q", got)
	}
}

func TestNonEnvelopeErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "<html>gateway exploded</html>")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	err := c.Get(context.Background(), "/boom", nil)

	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if ae.Message != "" {
		t.Errorf("message should be empty for a non-envelope body, got %q", ae.Message)
	}
	if got := ServerMessage(err, "Something went wrong"); got != "Something went wrong" {
		t.Errorf("ServerMessage fallback = %q", got)
	}
}

func TestTransportFailureBecomesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := newTestClient(base, nil)
	err := c.Get(context.Background(), "/anything", nil)
	if err == nil {
		t.Fatal("expected an error against a closed server")
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	var ae *APIError
	if errors.As(err, &ae) {
		t.Error("a transport failure must not look like an API error")
	}
}

func TestUnauthorizedInvokesHookAndPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message": "session expired"}`)
	}))
	defer srv.Close()

	hooked := 0
	c := newTestClient(srv.URL, func() { hooked++ })
	err := c.Post(context.Background(), "/user/cart/items", map[string]int{"productId": 1}, nil)

	if hooked != 1 {
		t.Errorf("OnUnauthorized called %d times, want 1", hooked)
	}
	if !IsUnauthorized(err) {
		t.Error("the 401 must still propagate to the caller")
	}
}

func TestCookieJarForwardsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok", Path: "/"})
			io.WriteString(w, `{}`)
		case "/user/cart":
			cookie, err := r.Cookie("session")
			if err != nil || cookie.Value != "tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			io.WriteString(w, `{}`)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	ctx := context.Background()
	if err := c.Post(ctx, "/auth/login", nil, nil); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := c.Get(ctx, "/user/cart", nil); err != nil {
		t.Fatalf("the credential cookie was not forwarded: %v", err)
	}
}

func TestMultipartDataAndFileParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("data"); !strings.Contains(got, `"name":"Mug"`) {
			t.Errorf("data part = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "mug.png" {
			t.Errorf("filename = %q", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("file content type = %q", ct)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "binary" {
			t.Errorf("file content = %q", content)
		}
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	data := map[string]any{"name": "Mug"}
	file := &FilePart{Filename: "mug.png", ContentType: "image/png", Content: []byte("binary")}
	if err := c.PostMultipart(context.Background(), "/admin/products", data, file, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMultipartWithoutFileOmitsFilePart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("file"); err == nil {
			t.Error("no file part expected")
		}
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	if err := c.PutMultipart(context.Background(), "/admin/products/1", map[string]any{"name": "Mug"}, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
