package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/hollis/peel/internal/app"
	"github.com/hollis/peel/internal/config"
	"github.com/hollis/peel/internal/content"
	"github.com/hollis/peel/internal/styles"
)

// Version is set at build time via ldflags.
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	rootDir      = flag.String("root", "", "document root directory (overrides config)")
	themeFlag    = flag.String("theme", "", "color theme for this run")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("peel version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging. Each run gets a short id so interleaved stderr from
	// concurrent sessions can be told apart.
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger.With("run", uuid.NewString()[:8]))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "peel must run in a terminal")
		os.Exit(1)
	}

	if *configPath != "" {
		os.Setenv("PEEL_CONFIG", *configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *rootDir != "" {
		cfg.Content.Root = *rootDir
	}
	if *themeFlag != "" {
		if !styles.IsValidTheme(*themeFlag) {
			fmt.Fprintf(os.Stderr, "Unknown theme %q (available: %v)\n", *themeFlag, styles.ListThemes())
			os.Exit(1)
		}
		cfg.UI.Theme = *themeFlag
	}
	styles.ApplyTheme(cfg.UI.Theme)

	root, err := filepath.Abs(cfg.Content.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve document root: %v\n", err)
		os.Exit(1)
	}

	store, err := content.NewStore(root, cfg.Content.Extensions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open document root: %v\n", err)
		os.Exit(1)
	}

	model := app.New(cfg, store)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: peel [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal reader with swipeable edge panels.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
