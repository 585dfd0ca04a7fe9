// Copyright
// SPDX-License-Identifier: MIT
// folio: a terminal portfolio with scroll-triggered reveals and typewriter text
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "log"
    "os"
    "os/signal"
    "path/filepath"
    "syscall"
    "time"

    tea "github.com/charmbracelet/bubbletea"

    "folio/internal/config"
    "folio/internal/content"
    "folio/internal/sound"
    "folio/internal/sound/device"
    "folio/internal/tui"
)

const Version = "0.3.0"

const (
    defaultContent = "portfolio.json"
    defaultWidth   = 100
)

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 || (len(os.Args[1]) > 0 && os.Args[1][0] == '-' && !isHelpFlag(os.Args[1])) {
        cmdShow(os.Args[1:])
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("folio", Version)
        return
    case "init":
        cmdInit(os.Args[2:])
    case "show":
        cmdShow(os.Args[2:])
    case "print":
        cmdPrint(os.Args[2:])
    default:
        usage()
        os.Exit(2)
    }
}

func isHelpFlag(s string) bool {
    return s == "-h" || s == "--help" || s == "--version"
}

func usage() {
    fmt.Print(`folio ` + Version + `
A portfolio page for the terminal. Sections slide in as you scroll and job titles type themselves out.
USAGE
  folio [command] [options]
COMMANDS
  show         Open the interactive page (default)
  print        Render the whole page at rest to stdout
  init         Scaffold folio.config.json and portfolio.json with the built-in content
  help         Show help (try: folio help show)
  version      Print version
NOTES
  • Settings come from folio.config.json, then .env / FOLIO_* variables, then flags.
  • Logs are quiet by default; use -v or -vv with --log-file to capture them.
`)
}

func helpTopic(name string) {
    switch name {
    case "show", "print":
        fmt.Print(`USAGE
  folio show  [--config PATH] [--content PATH] [--asset PATH|URL] [--threshold F]
              [--no-anim] [--sound] [--no-color] [-v | -vv] [--log-file PATH]
  folio print [same options] [--width N]
DESCRIPTION
  show opens a scrolling page. Each block reveals once when enough of it is on screen,
  after its own delay, and the timeline entries type out company, dates and role.
  print writes the same page with every block already revealed.
OPTIONS
  --config PATH          Settings file (default: folio.config.json if present)
  --content PATH         Portfolio JSON (default: built-in content). Press r in show to reload it.
  --asset PATH|URL       Lottie animation for the About section (overrides the content file)
  --threshold F          Visible fraction, 0..1, that triggers a reveal (default: 0.1)
  --no-anim              Show everything at once
  --sound                Click while typing
  --no-color             Disable colors (NO_COLOR is honoured too)
  -v                     INFO logs
  -vv                    DEBUG logs
  --log-file PATH        Append logs to file (created if missing)
  --width N              print only: page width (default: 100)
KEYS
  j/k ↑/↓ pgup/pgdn g/G  scroll        s  skip animations    y  copy link
  r                      reload        d  reload diff        ?  help       q  quit
ENVIRONMENT
  FOLIO_CONTENT, FOLIO_ASSET, FOLIO_THRESHOLD, FOLIO_SOUND, FOLIO_NO_ANIM, NO_COLOR
`)
    case "init":
        fmt.Print(`USAGE
  folio init [--force]
DESCRIPTION
  Writes folio.config.json and portfolio.json next to you. Existing files are kept
  unless --force is given. Edit portfolio.json, then run: folio show --content portfolio.json
`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func cmdInit(args []string) {
    fs := flag.NewFlagSet("init", flag.ExitOnError)
    fs.Usage = func() { helpTopic("init") }
    force := fs.Bool("force", false, "Overwrite existing files")
    _ = fs.Parse(args)

    writeIfMissing := func(path string, write func() error) {
        if _, err := os.Stat(path); err == nil && !*force {
            fmt.Println(path, "already exists; not overwriting")
            return
        }
        if err := write(); err != nil {
            fmt.Println("Could not write", path+":", err)
            os.Exit(1)
        }
        fmt.Println("Wrote", path)
    }
    writeIfMissing(defaultContent, func() error {
        return os.WriteFile(defaultContent, content.DefaultJSON(), 0644)
    })
    writeIfMissing(config.DefaultPath, func() error {
        s := config.Default()
        s.Content = defaultContent
        return config.Save(config.DefaultPath, s)
    })
}

// pageFlags are shared by show and print.
type pageFlags struct {
    fs        *flag.FlagSet
    config    *string
    content   *string
    asset     *string
    threshold *float64
    noAnim    *bool
    sound     *bool
    noColor   *bool
    verbose   *bool
    debug     *bool
    logPath   *string
}

func newPageFlags(name string) *pageFlags {
    fs := flag.NewFlagSet(name, flag.ExitOnError)
    fs.Usage = func() { helpTopic(name) }
    return &pageFlags{
        fs:        fs,
        config:    fs.String("config", config.DefaultPath, "Settings file"),
        content:   fs.String("content", "", "Portfolio JSON (default: built-in)"),
        asset:     fs.String("asset", "", "Lottie animation path or URL"),
        threshold: fs.Float64("threshold", config.DefaultThreshold, "Visible fraction that triggers a reveal"),
        noAnim:    fs.Bool("no-anim", false, "Show everything at once"),
        sound:     fs.Bool("sound", false, "Click while typing"),
        noColor:   fs.Bool("no-color", false, "Disable colors"),
        verbose:   fs.Bool("v", false, "Verbose logs (INFO)"),
        debug:     fs.Bool("vv", false, "Debug logs (DEBUG)"),
        logPath:   fs.String("log-file", "", "Append logs to file (created if missing)"),
    }
}

// settings resolves defaults, the settings file, the environment and the
// flags that were actually given, in that order.
func (f *pageFlags) settings() (*config.Settings, error) {
    set := map[string]bool{}
    f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

    s, err := config.Load(*f.config, !set["config"])
    if err != nil {
        return nil, err
    }
    env, err := config.Env(config.DefaultEnvFile)
    if err != nil {
        return nil, err
    }
    if err := s.ApplyEnv(env); err != nil {
        return nil, err
    }
    if set["content"] {
        s.Content = *f.content
    }
    if set["asset"] {
        s.Asset = *f.asset
    }
    if set["threshold"] {
        s.Threshold = *f.threshold
    }
    if set["no-anim"] {
        s.NoAnim = *f.noAnim
    }
    if set["sound"] {
        s.Sound = *f.sound
    }
    if set["no-color"] {
        s.NoColor = *f.noColor
    }
    if set["log-file"] {
        s.LogFile = *f.logPath
    }
    return s, s.Validate()
}

func (f *pageFlags) verbosity() int {
    switch {
    case *f.debug:
        return 2
    case *f.verbose:
        return 1
    }
    return 0
}

// loggers returns INFO and DEBUG printf loggers gated by verbosity. Both
// write through the standard logger, so redirecting it moves them too.
func loggers(verbosity int) (logf, debugf func(string, ...any)) {
    logf = func(format string, args ...any) {
        if verbosity >= 1 {
            log.Printf("INFO  "+format, args...)
        }
    }
    debugf = func(format string, args ...any) {
        if verbosity >= 2 {
            log.Printf("DEBUG "+format, args...)
        }
    }
    return logf, debugf
}

func loadPortfolio(s *config.Settings) (*content.Portfolio, error) {
    if s.Content == "" {
        return content.Default(), nil
    }
    return content.Load(s.Content)
}

func cmdShow(args []string) {
    f := newPageFlags("show")
    _ = f.fs.Parse(args)
    s, err := f.settings()
    if err != nil {
        fmt.Println("Invalid settings:", err)
        os.Exit(2)
    }

    // The screen belongs to the page: logs go to the file or nowhere.
    log.SetOutput(io.Discard)
    if s.LogFile != "" {
        if dir := filepath.Dir(s.LogFile); dir != "." && dir != "" {
            _ = os.MkdirAll(dir, 0o755)
        }
        lf, err := tea.LogToFile(s.LogFile, "folio")
        if err != nil {
            fmt.Println("Could not open log file:", err)
        } else {
            defer lf.Close()
            log.Printf("=== folio %s started at %s ===", Version, time.Now().Format(time.RFC3339))
        }
    }
    logf, debugf := loggers(f.verbosity())

    p, err := loadPortfolio(s)
    if err != nil {
        fmt.Println("Could not load content:", err)
        os.Exit(1)
    }

    var clicker sound.Clicker = sound.Nop{}
    if s.Sound {
        c, err := device.New(s.Volume)
        if err != nil {
            logf("sound disabled: %v", err)
        }
        clicker = c
    }
    defer clicker.Close()

    err = tui.Run(tui.Options{
        Portfolio:   p,
        ContentPath: s.Content,
        Asset:       s.Asset,
        Threshold:   s.Threshold,
        NoAnim:      s.NoAnim,
        NoColor:     s.NoColor,
        Clicker:     clicker,
        Logf:        logf,
        Debugf:      debugf,
    })
    if err != nil {
        fmt.Println("folio:", err)
        os.Exit(1)
    }
}

func cmdPrint(args []string) {
    f := newPageFlags("print")
    width := f.fs.Int("width", defaultWidth, "Page width in columns")
    _ = f.fs.Parse(args)
    s, err := f.settings()
    if err != nil {
        fmt.Fprintln(os.Stderr, "Invalid settings:", err)
        os.Exit(2)
    }
    if *width < 20 {
        fmt.Fprintln(os.Stderr, "Invalid settings: --width must be at least 20")
        os.Exit(2)
    }

    out := io.Writer(os.Stderr)
    if s.LogFile != "" {
        lf, err := openLogFile(s.LogFile)
        if err != nil {
            fmt.Fprintln(os.Stderr, "Could not open log file:", err)
        } else {
            defer lf.Close()
            out = io.MultiWriter(os.Stderr, lf)
        }
    }
    log.SetOutput(out)
    logf, debugf := loggers(f.verbosity())

    p, err := loadPortfolio(s)
    if err != nil {
        fmt.Fprintln(os.Stderr, "Could not load content:", err)
        os.Exit(1)
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()
    page := tui.Print(ctx, tui.Options{
        Portfolio: p,
        Asset:     s.Asset,
        NoColor:   s.NoColor,
        Logf:      logf,
        Debugf:    debugf,
    }, *width)
    if errors.Is(ctx.Err(), context.Canceled) {
        os.Exit(130)
    }
    fmt.Println(page)
}

func openLogFile(path string) (*os.File, error) {
    if path == "" {
        return nil, nil
    }
    if dir := filepath.Dir(path); dir != "." && dir != "" {
        _ = os.MkdirAll(dir, 0o755)
    }
    f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
    if err != nil {
        return nil, err
    }
    _, _ = fmt.Fprintf(f, "=== folio %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
    return f, nil
}
