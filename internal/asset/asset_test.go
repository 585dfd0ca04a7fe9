package asset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sample = `{"v":"5.7.4","nm":"coder","fr":30,"ip":0,"op":90,"w":500,"h":400,"layers":[{},{},{}]}`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Name != "coder" || s.Layers != 3 || s.Width != 500 || s.Duration() != 3*time.Second {
		t.Fatalf("unexpected summary %+v", s)
	}
	if !strings.Contains(s.String(), "coder") || !strings.Contains(s.String(), "3 layers") {
		t.Fatalf("unexpected summary text %q", s.String())
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{`[]`, `{"nm":"x"}`, `{"fr":30,"ip":10,"op":10,"layers":[]}`, `nope`} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrNotLottie) {
			t.Fatalf("Parse(%s): expected ErrNotLottie, got %v", in, err)
		}
	}
}

func TestLoadFileAndURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.json")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(context.Background(), path); err != nil {
		t.Fatalf("load file: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/anim.json" {
			w.Write([]byte(sample))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	msg := Cmd(context.Background(), srv.URL+"/anim.json")().(LoadedMsg)
	if msg.Err != nil || msg.Summary.FPS != 30 {
		t.Fatalf("unexpected message %+v", msg)
	}
	msg = Cmd(context.Background(), srv.URL+"/gone.json")().(LoadedMsg)
	if msg.Err == nil {
		t.Fatalf("expected a fetch failure")
	}
	if _, err := Load(context.Background(), ""); err == nil {
		t.Fatalf("expected an error for an empty source")
	}
}
