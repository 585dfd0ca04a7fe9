package main

import (
    "io"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "folio/internal/config"
)

func TestSettingsPrecedence(t *testing.T) {
    dir := t.TempDir()
    t.Chdir(dir)
    t.Setenv("NO_COLOR", "")
    t.Setenv("FOLIO_ASSET", "")

    file := config.Default()
    file.Content = "from-file.json"
    file.Asset = "file.json"
    file.Threshold = 0.3
    if err := config.Save(filepath.Join(dir, "custom.json"), file); err != nil {
        t.Fatal(err)
    }
    if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_THRESHOLD=0.5\nFOLIO_CONTENT=from-env.json\n"), 0644); err != nil {
        t.Fatal(err)
    }

    f := newPageFlags("show")
    if err := f.fs.Parse([]string{"--config", "custom.json", "--content", "from-flag.json", "-vv"}); err != nil {
        t.Fatal(err)
    }
    s, err := f.settings()
    if err != nil {
        t.Fatalf("settings: %v", err)
    }
    if s.Content != "from-flag.json" {
        t.Fatalf("expected the flag to win, got %q", s.Content)
    }
    if s.Threshold != 0.5 {
        t.Fatalf("expected .env over the file, got %v", s.Threshold)
    }
    if s.Asset != "file.json" {
        t.Fatalf("expected the file value to survive, got %q", s.Asset)
    }
    if f.verbosity() != 2 {
        t.Fatalf("expected debug verbosity")
    }
}

func TestSettingsMissingConfig(t *testing.T) {
    t.Chdir(t.TempDir())

    f := newPageFlags("print")
    _ = f.fs.Parse(nil)
    if _, err := f.settings(); err != nil {
        t.Fatalf("expected the default config file to be optional, got %v", err)
    }

    f = newPageFlags("print")
    _ = f.fs.Parse([]string{"--config", "nope.json"})
    if _, err := f.settings(); err == nil {
        t.Fatalf("expected an explicit missing config to fail")
    }

    f = newPageFlags("print")
    _ = f.fs.Parse([]string{"--threshold", "2"})
    if _, err := f.settings(); err == nil {
        t.Fatalf("expected an out-of-range threshold to fail")
    }
}

// stdout captures what fn prints.
func stdout(t *testing.T, fn func()) string {
    t.Helper()
    r, w, err := os.Pipe()
    if err != nil {
        t.Fatal(err)
    }
    orig := os.Stdout
    os.Stdout = w
    defer func() { os.Stdout = orig }()
    fn()
    _ = w.Close()
    out, err := io.ReadAll(r)
    if err != nil {
        t.Fatal(err)
    }
    return string(out)
}

func TestHelpTextEndsOnce(t *testing.T) {
    for name, fn := range map[string]func(){
        "usage": usage,
        "show":  func() { helpTopic("show") },
        "init":  func() { helpTopic("init") },
    } {
        out := stdout(t, fn)
        if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
            t.Fatalf("%s: expected a single trailing newline, got %q", name, out[max(len(out)-20, 0):])
        }
    }
    if out := stdout(t, func() { helpTopic("show") }); !strings.Contains(out, "--threshold F") {
        t.Fatalf("expected the show options, got %q", out)
    }
}
