package console

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"consolelog/internal/app/display"
	"consolelog/internal/app/errors"
	"consolelog/internal/app/status"
	"consolelog/internal/config"
)

// Style names a color pair in the style table
type Style string

const (
	StyleStandard     Style = config.StyleStandard
	StyleInfo         Style = config.StyleInfo
	StyleWarning      Style = config.StyleWarning
	StyleError        Style = config.StyleError
	StyleSuccess      Style = config.StyleSuccess
	StyleStandout     Style = config.StyleStandout
	StyleSubtle       Style = config.StyleSubtle
	StyleEvent        Style = config.StyleEvent
	StyleEventWarning Style = config.StyleEventWarning
)

// Valid reports whether the style is one of the known names
func (s Style) Valid() bool {
	for _, name := range config.StyleNames {
		if string(s) == name {
			return true
		}
	}

	return false
}

// Rule decides how a category is dispatched
type Rule struct {
	Style     Style
	Verbose   bool // emitted only when the caller asks for verbose output
	Timestamp bool
}

// StyleEntry is the resolved dispatch decision for one category
type StyleEntry struct {
	Pair      display.Pair
	Verbose   bool
	Timestamp bool
}

// DefaultRules returns the category dispatch table
func DefaultRules() map[status.Category]Rule {
	return map[status.Category]Rule{
		status.Default:  {Style: StyleStandard},
		status.Info:     {Style: StyleInfo, Timestamp: true},
		status.Standout: {Style: StyleStandout, Timestamp: true},
		status.Error:    {Style: StyleError, Timestamp: true},
		status.Subtle:   {Style: StyleSubtle, Verbose: true, Timestamp: true},
		status.Success:  {Style: StyleSuccess, Verbose: true, Timestamp: true},
		status.Warning:  {Style: StyleWarning, Verbose: true, Timestamp: true},
		status.Debug:    {Style: StyleSubtle, Verbose: true, Timestamp: true},
	}
}

// RulesConfig renders rules in the shape of the console.rules config section
func RulesConfig(rules map[status.Category]Rule) map[string]config.Rule {
	out := make(map[string]config.Rule, len(rules))

	for _, c := range status.Categories() {
		rule, ok := rules[c]
		if !ok {
			continue
		}

		out[c.String()] = config.Rule{
			Style:     string(rule.Style),
			Verbose:   rule.Verbose,
			Timestamp: rule.Timestamp,
		}
	}

	return out
}

// StyleTable maps categories to rules and styles to color pairs, safe for concurrent use
type StyleTable struct {
	mu         sync.RWMutex
	pairs      map[Style]display.Pair
	rules      map[status.Category]Rule
	divider    string
	background lipgloss.Color
}

// NewStyleTable creates a table with the default palette, rules and divider
func NewStyleTable() *StyleTable {
	t, _ := NewStyleTableFromConfig(&config.DefaultConfig().Console)

	return t
}

// NewStyleTableFromConfig creates a table from the console configuration
func NewStyleTableFromConfig(cfg *config.Console) (*StyleTable, error) {
	t := &StyleTable{
		pairs:      make(map[Style]display.Pair, len(config.StyleNames)),
		rules:      DefaultRules(),
		divider:    config.DefaultDivider(),
		background: lipgloss.Color(config.Background),
	}

	defaults := config.DefaultStyles()

	for _, name := range config.StyleNames {
		style, ok := cfg.Styles[name]
		if !ok {
			style = defaults[name]
		}

		pair := display.Pair{
			Foreground: lipgloss.Color(style.Foreground),
			Background: lipgloss.Color(style.Background),
		}

		if err := t.SetPair(Style(name), pair); err != nil {
			return nil, err
		}
	}

	for name := range cfg.Styles {
		if !Style(name).Valid() {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidStyleName, name)
		}
	}

	for name, rule := range cfg.Rules {
		c, err := status.ParseCategory(name)
		if err != nil {
			return nil, err
		}

		if err := t.SetRule(c, Rule{Style: Style(rule.Style), Verbose: rule.Verbose, Timestamp: rule.Timestamp}); err != nil {
			return nil, err
		}
	}

	t.SetDivider(cfg.Divider)

	if cfg.Background != "" {
		t.SetBackground(lipgloss.Color(cfg.Background))
	}

	return t, nil
}

// Lookup resolves the rule and color pair for a category
func (t *StyleTable) Lookup(c status.Category) (StyleEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rule, ok := t.rules[c]
	if !ok {
		return StyleEntry{}, false
	}

	return StyleEntry{
		Pair:      t.pairs[rule.Style],
		Verbose:   rule.Verbose,
		Timestamp: rule.Timestamp,
	}, true
}

// Pair returns the color pair of a style
func (t *StyleTable) Pair(s Style) display.Pair {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.pairs[s]
}

// SetPair replaces the color pair of a style
func (t *StyleTable) SetPair(s Style, pair display.Pair) error {
	if !s.Valid() {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidStyleName, s)
	}

	if strings.TrimSpace(string(pair.Foreground)) == "" || strings.TrimSpace(string(pair.Background)) == "" {
		return fmt.Errorf("style %s: %w", s, errors.ErrInvalidColor)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pairs[s] = pair

	return nil
}

// Rule returns the dispatch rule of a category
func (t *StyleTable) Rule(c status.Category) (Rule, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rule, ok := t.rules[c]

	return rule, ok
}

// SetRule replaces the dispatch rule of a category
func (t *StyleTable) SetRule(c status.Category, rule Rule) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", errors.ErrUnknownCategory, c)
	}

	if !rule.Style.Valid() {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidStyleName, rule.Style)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.rules[c] = rule

	return nil
}

// Divider returns the header divider
func (t *StyleTable) Divider() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.divider
}

// SetDivider replaces the header divider, blank values are ignored
func (t *StyleTable) SetDivider(divider string) bool {
	if strings.TrimSpace(divider) == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.divider = divider

	return true
}

// Background returns the panel background color
func (t *StyleTable) Background() lipgloss.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.background
}

// SetBackground replaces the panel background color
func (t *StyleTable) SetBackground(c lipgloss.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.background = c
}
