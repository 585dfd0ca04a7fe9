package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.json")
	s, err := Load(path, true)
	if err != nil {
		t.Fatalf("expected defaults for a missing optional file, got %v", err)
	}
	if s.Threshold != DefaultThreshold {
		t.Fatalf("expected default threshold, got %v", s.Threshold)
	}
	if _, err := Load(path, false); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	want := Default()
	want.Content = "me.json"
	want.Threshold = 0.4
	want.Sound = true
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadRejectsThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"threshold": 1.5}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, false); !errors.Is(err, ErrThreshold) {
		t.Fatalf("expected ErrThreshold, got %v", err)
	}
}

func TestEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	data := "FOLIO_CONTENT=from-dotenv.json\nFOLIO_THRESHOLD=0.25\nUNRELATED=x\n"
	if err := os.WriteFile(dotenv, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvContent, "from-process.json")
	t.Setenv(EnvNoColor, "1")

	env, err := Env(dotenv)
	if err != nil {
		t.Fatalf("env: %v", err)
	}
	if env[EnvContent] != "from-process.json" {
		t.Fatalf("expected process env to win, got %q", env[EnvContent])
	}
	if _, ok := env["UNRELATED"]; ok {
		t.Fatalf("expected unrelated keys to be dropped")
	}

	s := Default()
	if err := s.ApplyEnv(env); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.Threshold != 0.25 || !s.NoColor || s.Content != "from-process.json" {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestEnvMissingDotenv(t *testing.T) {
	if _, err := Env(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("expected a missing dotenv to be skipped, got %v", err)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"threshold parse": {EnvThreshold: "lots"},
		"threshold range": {EnvThreshold: "-1"},
		"bool":            {EnvSound: "loud"},
	}
	for name, env := range cases {
		if err := Default().ApplyEnv(env); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
	if err := Default().ApplyEnv(map[string]string{EnvThreshold: "2"}); !errors.Is(err, ErrThreshold) {
		t.Fatalf("expected ErrThreshold, got %v", err)
	}
}
