// Package asset loads the About animation. The page only needs to know
// whether the file is a usable Lottie document and what it contains; the
// terminal plays a stand-in loop instead of rendering vector frames.
package asset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/httpx"
)

var ErrNotLottie = errors.New("not a Lottie animation")

// Fallback is shown when the animation cannot be loaded.
const Fallback = "Animation will appear here"

// Summary describes a Lottie document.
type Summary struct {
	Name    string
	Version string
	FPS     float64
	Frames  float64
	Width   int
	Height  int
	Layers  int
}

// Duration is the length of one loop.
func (s Summary) Duration() time.Duration {
	if s.FPS <= 0 {
		return 0
	}
	return time.Duration(s.Frames / s.FPS * float64(time.Second))
}

func (s Summary) String() string {
	name := s.Name
	if name == "" {
		name = "untitled"
	}
	return fmt.Sprintf("%s · %dx%d · %.0ffps · %s · %d layers",
		name, s.Width, s.Height, s.FPS, s.Duration().Round(10*time.Millisecond), s.Layers)
}

type document struct {
	Version string            `json:"v"`
	Name    string            `json:"nm"`
	FPS     float64           `json:"fr"`
	In      float64           `json:"ip"`
	Out     float64           `json:"op"`
	Width   int               `json:"w"`
	Height  int               `json:"h"`
	Layers  []json.RawMessage `json:"layers"`
}

// Parse summarizes a Lottie JSON document.
func Parse(data []byte) (Summary, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrNotLottie, err)
	}
	if doc.Layers == nil || doc.FPS <= 0 || doc.Out <= doc.In {
		return Summary{}, ErrNotLottie
	}
	return Summary{
		Name:    doc.Name,
		Version: doc.Version,
		FPS:     doc.FPS,
		Frames:  doc.Out - doc.In,
		Width:   doc.Width,
		Height:  doc.Height,
		Layers:  len(doc.Layers),
	}, nil
}

// Load reads src from disk or over http(s) and summarizes it.
func Load(ctx context.Context, src string) (Summary, error) {
	if src == "" {
		return Summary{}, errors.New("no animation configured")
	}
	var (
		data []byte
		err  error
	)
	if IsURL(src) {
		data, err = httpx.GetJSON(ctx, src)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("load animation: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", src, err)
	}
	return s, nil
}

func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// LoadedMsg reports the outcome of Cmd.
type LoadedMsg struct {
	Src     string
	Summary Summary
	Err     error
}

// Cmd loads src in the background. The load is fire-and-forget: nothing
// waits on it and a failure only changes what the placeholder shows.
func Cmd(ctx context.Context, src string) tea.Cmd {
	return func() tea.Msg {
		s, err := Load(ctx, src)
		return LoadedMsg{Src: src, Summary: s, Err: err}
	}
}
