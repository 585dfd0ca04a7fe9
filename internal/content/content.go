// Package content holds the portfolio copy: the About section and the
// Experience timeline. Content is plain JSON so it can be edited and
// reloaded without rebuilding.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Kind separates jobs from schooling on the timeline.
type Kind string

const (
	Work      Kind = "work"
	Education Kind = "education"
)

var (
	ErrEmpty = errors.New("content has no about paragraphs and no experience items")
	ErrKind  = errors.New("unknown experience type")
)

//go:embed default.json
var defaultJSON []byte

// Portfolio is the full page copy.
type Portfolio struct {
	About      About      `json:"about"`
	Experience Experience `json:"experience"`
}

// About is the introduction section. Paragraphs accept inline markdown.
type About struct {
	Label      string   `json:"label"`
	Heading    string   `json:"heading"`
	Highlight  string   `json:"highlight,omitempty"`
	Paragraphs []string `json:"paragraphs"`
	Animation  string   `json:"animation,omitempty"` // Lottie JSON path or URL
}

// Experience is the timeline section.
type Experience struct {
	Label   string `json:"label"`
	Heading string `json:"heading"`
	Items   []Item `json:"items"`
}

// Item is one timeline entry.
type Item struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Period      string   `json:"period"`
	Location    string   `json:"location,omitempty"`
	URL         string   `json:"url,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	Description []string `json:"description,omitempty"`
	Type        Kind     `json:"type"`
}

// Default returns the built-in portfolio.
func Default() *Portfolio {
	p, err := Parse(defaultJSON)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return p
}

// DefaultJSON returns the built-in portfolio as written by `init`.
func DefaultJSON() []byte {
	return append([]byte(nil), defaultJSON...)
}

// Load reads and validates a portfolio file.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates portfolio JSON.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse content JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the portfolio has something to show.
func (p *Portfolio) Validate() error {
	if len(p.About.Paragraphs) == 0 && len(p.Experience.Items) == 0 {
		return ErrEmpty
	}
	for i, it := range p.Experience.Items {
		switch it.Type {
		case Work, Education:
		case "":
			p.Experience.Items[i].Type = Work
		default:
			return fmt.Errorf("experience %d (%s): %w %q", i, it.Company, ErrKind, it.Type)
		}
	}
	return nil
}

func Save(path string, p *Portfolio) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Period is a parsed "Start - End (duration)" string.
type Period struct {
	Start    string
	End      string
	Duration string
}

// ParsePeriod splits a period. A missing end reads as "Current".
func ParsePeriod(s string) Period {
	var p Period
	if i := strings.LastIndex(s, " ("); i >= 0 && strings.HasSuffix(strings.TrimSpace(s), ")") {
		p.Duration = strings.TrimSuffix(strings.TrimSpace(s[i+2:]), ")")
		s = s[:i]
	}
	start, end, _ := strings.Cut(s, " - ")
	p.Start = strings.TrimSpace(start)
	p.End = strings.TrimSpace(end)
	if p.End == "" {
		p.End = "Current"
	}
	return p
}

// Range renders "Start - End".
func (p Period) Range() string {
	return p.Start + " - " + p.End
}

// Current reports whether the period is still running.
func (p Period) Current() bool {
	switch strings.ToLower(p.End) {
	case "present", "current", "now":
		return true
	}
	return false
}
