package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected JSON accept header, got %q", r.Header.Get("Accept"))
		}
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"nm":"x"}`))
		case "/big":
			w.Write([]byte(strings.Repeat("a", 64)))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	body, err := GetJSON(context.Background(), srv.URL+"/ok")
	if err != nil || string(body) != `{"nm":"x"}` {
		t.Fatalf("unexpected result %q, %v", body, err)
	}

	_, err = GetJSON(context.Background(), srv.URL+"/missing")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected a 404 error, got %v", err)
	}

	old := MaxBody
	MaxBody = 16
	defer func() { MaxBody = old }()
	if _, err := GetJSON(context.Background(), srv.URL+"/big"); err == nil {
		t.Fatalf("expected oversize body to fail")
	}
}
