package styles

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects the theme registry and the current theme selection.
var themeMu sync.RWMutex

// ColorPalette holds all theme colors.
type ColorPalette struct {
	// Brand colors
	Primary string `mapstructure:"primary"`
	Accent  string `mapstructure:"accent"`

	// Status colors
	Success string `mapstructure:"success"`
	Warning string `mapstructure:"warning"`
	Error   string `mapstructure:"error"`

	// Text colors
	TextPrimary   string `mapstructure:"textPrimary"`
	TextSecondary string `mapstructure:"textSecondary"`
	TextMuted     string `mapstructure:"textMuted"`

	// Background colors
	BgPrimary   string `mapstructure:"bgPrimary"`
	BgPanel     string `mapstructure:"bgPanel"`
	BgSelection string `mapstructure:"bgSelection"`

	// Border colors
	BorderNormal string `mapstructure:"borderNormal"`
	BorderActive string `mapstructure:"borderActive"`

	// Toast foregrounds
	ToastSuccessText string `mapstructure:"toastSuccessText"`
	ToastErrorText   string `mapstructure:"toastErrorText"`

	// Third-party theme names
	SyntaxTheme   string `mapstructure:"syntaxTheme"`
	MarkdownTheme string `mapstructure:"markdownTheme"`
}

// Theme is a named color palette.
type Theme struct {
	Name        string
	DisplayName string
	Colors      ColorPalette
}

// Built-in themes.
var (
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary: "#7C3AED",
			Accent:  "#F59E0B",

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",

			BgPrimary:   "#111827",
			BgPanel:     "#1F2937",
			BgSelection: "#374151",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			ToastSuccessText: "#064E3B",
			ToastErrorText:   "#FEE2E2",

			SyntaxTheme:   "monokai",
			MarkdownTheme: "dark",
		},
	}

	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary: "#6D28D9",
			Accent:  "#B45309",

			Success: "#047857",
			Warning: "#B45309",
			Error:   "#B91C1C",

			TextPrimary:   "#111827",
			TextSecondary: "#374151",
			TextMuted:     "#6B7280",

			BgPrimary:   "#FFFFFF",
			BgPanel:     "#F3F4F6",
			BgSelection: "#E5E7EB",

			BorderNormal: "#D1D5DB",
			BorderActive: "#6D28D9",

			ToastSuccessText: "#ECFDF5",
			ToastErrorText:   "#FEF2F2",

			SyntaxTheme:   "github",
			MarkdownTheme: "light",
		},
	}
)

var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"light":   LightTheme,
}

var currentTheme = DefaultTheme

// Color variables, rebuilt when a theme is applied.
var (
	Primary lipgloss.Color
	Accent  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	BgPrimary   lipgloss.Color
	BgPanel     lipgloss.Color
	BgSelection lipgloss.Color

	BorderNormal lipgloss.Color
	BorderActive lipgloss.Color

	toastSuccessText lipgloss.Color
	toastErrorText   lipgloss.Color
)

// Style variables, rebuilt when a theme is applied.
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	PanelHeader lipgloss.Style

	StatusBar    lipgloss.Style
	StatusBarKey lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	ButtonNormal  lipgloss.Style
	ButtonHover   lipgloss.Style
	ButtonFocused lipgloss.Style
)

// Syntax and markdown theme names for chroma/glamour.
var (
	currentSyntaxTheme   = DefaultTheme.Colors.SyntaxTheme
	currentMarkdownTheme = DefaultTheme.Colors.MarkdownTheme
)

func init() {
	ApplyThemeColors(DefaultTheme)
}

// IsValidTheme reports whether name is a registered theme.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a registered theme, or the default if unknown.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if t, ok := themeRegistry[name]; ok {
		return t
	}
	return DefaultTheme
}

// CurrentTheme returns the theme currently applied.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme looks up name and applies it. Unknown names apply the default.
func ApplyTheme(name string) {
	ApplyThemeColors(GetTheme(name))
}

// ApplyThemeColors updates every color and style variable from the theme.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgPanel = lipgloss.Color(c.BgPanel)
	BgSelection = lipgloss.Color(c.BgSelection)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	toastSuccessText = lipgloss.Color(c.ToastSuccessText)
	toastErrorText = lipgloss.Color(c.ToastErrorText)

	currentSyntaxTheme = c.SyntaxTheme
	currentMarkdownTheme = c.MarkdownTheme

	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()

	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles from the current colors.
func rebuildStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	PanelHeader = lipgloss.NewStyle().
		Bold(true).
		Background(BgPanel).
		Foreground(Primary)

	StatusBar = lipgloss.NewStyle().
		Background(BgPanel).
		Foreground(TextSecondary)

	StatusBarKey = lipgloss.NewStyle().
		Background(BgPanel).
		Foreground(Accent)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(toastSuccessText).
		Bold(true).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(toastErrorText).
		Bold(true).
		Padding(0, 1)

	ButtonNormal = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSelection).
		Padding(0, 2)

	ButtonHover = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSelection).
		Bold(true).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(BgPrimary).
		Background(Primary).
		Bold(true).
		Padding(0, 2)
}

// GetSyntaxTheme returns the chroma theme name for the current theme.
func GetSyntaxTheme() string {
	return currentSyntaxTheme
}

// GetMarkdownTheme returns the glamour style name for the current theme.
func GetMarkdownTheme() string {
	return currentMarkdownTheme
}
